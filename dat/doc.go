/*
Package dat builds frozen double-array tries.

A key set is first collected in a naive Trie, where every rune is mapped to a
dense alphabet code. Encode then packs the trie into the two parallel arrays
Base and Check. Slot arithmetic is Base[s] + code; a node ending a key owns an
extra terminator slot at Base[s] + 0, whose negative Base encodes the key index.

	trie := dat.NewTrie()
	trie.Insert([]rune("ab"))
	layout := dat.Encode(trie, dat.FirstFit)
	s, ok := layout.DAT.Transition(dat.Root, layout.DAT.Code('a'))

The arrays are never modified after Encode returns and may be shared between
goroutines.
*/
package dat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictlint.dat'
func tracer() tracing.Trace {
	return tracing.Select("dictlint.dat")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
