/*
Package ahocorasick implements a multi-pattern string matcher on top of a
double-array trie.

An Automaton is built once from a set of distinct keys, each carrying a value.
It answers two questions:

  - which registered keys occur in a text, and where (Search, SearchFunc, All,
    Contains), following Aho-Corasick failure links so that each rune of the
    text is consumed once;
  - whether a string is exactly one of the keys, and which value it carries
    (ExactMatch, Has, Get).

Offsets reported in hits are rune offsets into the text, as half-open
intervals [Begin, End).

After construction the only mutation is Set, which replaces the value of an
existing key. All other methods only read and may be called concurrently.
Set is not synchronized: callers mixing Set with concurrent reads of the same
key need their own guard.
*/
package ahocorasick

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictlint.ahocorasick'
func tracer() tracing.Trace {
	return tracing.Select("dictlint.ahocorasick")
}
