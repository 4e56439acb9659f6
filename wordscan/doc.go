/*
Package wordscan checks Hunspell word lists for forbidden substrings.

A .dic file starts with an optional line holding the approximate word count,
followed by one entry per line: the word, optionally followed by a slash and
affix flags, optionally followed by a tab and morphological fields.

	3
	hello/S
	world
	wor\/ld/MS	po:noun

A Scanner compiles the forbidden substrings into one automaton and matches
every word against it. Words are distributed over several workers; the
compiled automaton is shared read-only between them.
*/
package wordscan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictlint.wordscan'
func tracer() tracing.Trace {
	return tracing.Select("dictlint.wordscan")
}
