/*
Package words counts words and two-word phrases of free-form text responses,
attributing every word to the people who used it.

Texts are split at whitespace and line-break opportunities (UAX #14), then
lower-cased and stripped of surrounding punctuation. Numbers and very common
English words are dropped. Each remaining word becomes a WordInfo, which is
inserted into a balanced word tree; repeated words are merged into the
existing entry.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package words

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
