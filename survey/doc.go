/*
Package survey reads the responses of a survey form.

A form export is a CSV file without a header, one response per row. The
first column holds the name of the person responding, the second the text
of the response. Further columns are ignored. Responses may be HTML
fragments, in which case only their text content is used.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package survey

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
