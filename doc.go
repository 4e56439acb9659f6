/*
Package hyphenate implements Liang's hyphenation algorithm on top of an
Aho-Corasick automaton.

The algorithm is described by Frank Liang (F.M.Liang http://www.tug.org/docs/liang/).
Patterns (available with the TeX distribution) are compiled into a frozen
double-array trie with failure links, so that all patterns occurring in a
word are found in a single left-to-right scan of ".word.". Hyphenation weight
vectors are stored separately in a compact payload store and referenced by
the automaton's values.

Explicit exceptions are looked up by exact match before any pattern is
consulted. Lookups ignore case and are Unicode-aware, including non-ASCII
patterns such as German umlauts.

Further Reading

	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)
	http://www.mnn.ch/hyph/hyphenation2.html  / https://github.com/mnater/hyphenator

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package hyphenate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate")
}
