package ahocorasick

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/mtrevisan/Hunspeller-sub002/dat"
)

var (
	// ErrDuplicateKey is returned when a key is added twice. With case
	// folding enabled, keys differing only in case are duplicates.
	ErrDuplicateKey = dat.ErrDuplicateKey
	// ErrEmptyKey is returned when an empty key is added.
	ErrEmptyKey = dat.ErrEmptyKey
	// ErrBuilderUsed is returned when a Builder is used after Build.
	ErrBuilderUsed = errors.New("builder already used")
)

// Builder collects key/value pairs for an Automaton. Key indices are
// assigned in the order of Add calls.
//
// The first failing Add poisons the builder: later calls to Add and Build
// return the same error, so no automaton is built from a partial key set.
type Builder[V any] struct {
	opts   options
	trie   *dat.Trie
	values []V
	err    error
}

// NewBuilder creates an empty builder.
func NewBuilder[V any](opts ...Option) *Builder[V] {
	return &Builder[V]{
		opts: newOptions(opts),
		trie: dat.NewTrie(),
	}
}

// Add registers key with value.
func (b *Builder[V]) Add(key string, value V) error {
	if b.err != nil {
		return b.err
	}
	if _, err := b.trie.Insert(b.opts.runes(key)); err != nil {
		b.err = err
		return err
	}
	b.values = append(b.values, value)
	return nil
}

// Len returns the number of keys added so far.
func (b *Builder[V]) Len() int {
	if b.trie == nil {
		return 0
	}
	return b.trie.Keys()
}

// Build encodes the collected keys and links the failure transitions.
// An empty key set yields an uninitialized automaton on which every query
// reports no match.
func (b *Builder[V]) Build() (*Automaton[V], error) {
	if b.err != nil {
		return nil, b.err
	}
	trie := b.trie
	b.trie, b.err = nil, ErrBuilderUsed
	layout := dat.Encode(trie, b.opts.placement)
	a := &Automaton[V]{
		opts:      b.opts,
		dat:       layout.DAT,
		keyLength: trie.KeyLengths(),
		values:    b.values,
	}
	if !layout.DAT.Empty() {
		a.next, a.output = link(trie, layout)
	}
	tracer().Debugf("built automaton: %s", a.Stats())
	return a, nil
}

// Build creates an automaton where keys[i] carries values[i] and has key
// index i.
func Build[V any](keys []string, values []V, opts ...Option) (*Automaton[V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("got %d keys but %d values", len(keys), len(values))
	}
	b := NewBuilder[V](opts...)
	for i, key := range keys {
		if err := b.Add(key, values[i]); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// BuildMap creates an automaton from a map. Key indices follow the sorted
// order of the map keys.
func BuildMap[V any](m map[string]V, opts ...Option) (*Automaton[V], error) {
	b := NewBuilder[V](opts...)
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if err := b.Add(key, m[key]); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
