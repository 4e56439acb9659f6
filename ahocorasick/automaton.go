package ahocorasick

import (
	"github.com/mtrevisan/Hunspeller-sub002/dat"
)

// Automaton is an immutable Aho-Corasick automaton over a double-array trie.
// Only the values attached to keys may change after construction.
type Automaton[V any] struct {
	opts      options
	dat       *dat.DAT
	next      []int32   // failure state per state
	output    [][]int32 // key indices reported on arrival, per state
	keyLength []int32   // rune length per key index
	values    []V       // value per key index
}

// Initialized reports whether the automaton holds at least one key.
func (a *Automaton[V]) Initialized() bool {
	return a != nil && !a.dat.Empty()
}

// Len returns the number of keys.
func (a *Automaton[V]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keyLength)
}

// CaseInsensitive reports whether keys and queries are lower-cased.
func (a *Automaton[V]) CaseInsensitive() bool {
	return a != nil && a.opts.caseInsensitive
}

// KeyLength returns the rune length of the key with index k, or 0 if k is
// out of range.
func (a *Automaton[V]) KeyLength(k int) int {
	if k < 0 || k >= a.Len() {
		return 0
	}
	return int(a.keyLength[k])
}

// Value returns the value of the key with index k.
func (a *Automaton[V]) Value(k int) (V, bool) {
	if k < 0 || k >= a.Len() {
		var zero V
		return zero, false
	}
	return a.values[k], true
}

// Stats reports the density of the underlying double array.
func (a *Automaton[V]) Stats() dat.Stats {
	if a == nil {
		return dat.Stats{}
	}
	return a.dat.Stats()
}

// ExactMatch returns the key index of key, or -1 if key is not registered.
// No failure transitions are followed.
func (a *Automaton[V]) ExactMatch(key string) int {
	if !a.Initialized() {
		return -1
	}
	state := dat.Root
	for _, r := range key {
		next, ok := a.dat.Transition(state, a.code(r))
		if !ok {
			return -1
		}
		state = next
	}
	if k, ok := a.dat.Terminal(state); ok {
		return k
	}
	return -1
}

// Has reports whether key is registered.
func (a *Automaton[V]) Has(key string) bool {
	return a.ExactMatch(key) >= 0
}

// Get returns the value registered for key.
func (a *Automaton[V]) Get(key string) (V, bool) {
	return a.Value(a.ExactMatch(key))
}

// Set replaces the value of an already registered key. It reports false,
// leaving every value untouched, if key is not registered.
func (a *Automaton[V]) Set(key string, value V) bool {
	k := a.ExactMatch(key)
	if k < 0 {
		return false
	}
	a.values[k] = value
	return true
}

func (a *Automaton[V]) code(r rune) uint16 {
	return a.dat.Code(a.opts.fold(r))
}
