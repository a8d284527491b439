/*
Package report reads and writes word-frequency records and renders them for
humans.

A record file holds one line per word:

	word,person1;person2,numPeople,count

Records can be dumped as JSON or printed to a console, where the word column is
aligned by display width and fields are colored.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
