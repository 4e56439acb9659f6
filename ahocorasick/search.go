package ahocorasick

import (
	"io"
	"iter"

	"github.com/mtrevisan/Hunspeller-sub002/dat"
)

// Hit is one occurrence of a key in a text. Begin and End are rune offsets,
// End exclusive.
type Hit[V any] struct {
	Begin    int
	End      int
	KeyIndex int
	Value    V
}

// Search returns all occurrences of all keys in text. Hits are ordered by
// End; hits sharing an End are ordered longest first.
func (a *Automaton[V]) Search(text string) []Hit[V] {
	var hits []Hit[V]
	a.SearchFunc(text, func(h Hit[V]) bool {
		hits = append(hits, h)
		return true
	})
	return hits
}

// SearchFunc delivers every occurrence of a key in text to handler, in the
// order of Search. Scanning stops as soon as handler returns false; no rune
// after the current one is examined.
func (a *Automaton[V]) SearchFunc(text string, handler func(Hit[V]) bool) {
	if !a.Initialized() {
		return
	}
	state, end := dat.Root, 0
	for _, r := range text {
		end++
		state = a.step(state, r)
		if !a.emit(state, end, handler) {
			return
		}
	}
}

// All returns the occurrences of keys in text as a lazy sequence. The text
// is scanned only as far as the consumer pulls.
func (a *Automaton[V]) All(text string) iter.Seq[Hit[V]] {
	return func(yield func(Hit[V]) bool) {
		a.SearchFunc(text, yield)
	}
}

// SearchReader is SearchFunc over a rune stream. Reading stops at the first
// read error, at io.EOF, or when handler returns false. io.EOF is not
// reported as an error.
func (a *Automaton[V]) SearchReader(rd io.RuneReader, handler func(Hit[V]) bool) error {
	if !a.Initialized() {
		return nil
	}
	state, end := dat.Root, 0
	for {
		r, _, err := rd.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		end++
		state = a.step(state, r)
		if !a.emit(state, end, handler) {
			return nil
		}
	}
}

// Contains reports whether any key occurs in text. Scanning stops at the
// end of the first occurrence.
func (a *Automaton[V]) Contains(text string) bool {
	found := false
	a.SearchFunc(text, func(Hit[V]) bool {
		found = true
		return false
	})
	return found
}

// ContainsReader is Contains over a rune stream. No rune is read after the
// first occurrence ends.
func (a *Automaton[V]) ContainsReader(rd io.RuneReader) (bool, error) {
	found := false
	err := a.SearchReader(rd, func(Hit[V]) bool {
		found = true
		return false
	})
	return found, err
}

// step is the tolerant transition: on a missing edge it follows failure
// states until an edge exists or the root is reached.
func (a *Automaton[V]) step(state uint32, r rune) uint32 {
	code := a.code(r)
	if code == 0 {
		return dat.Root // rune outside the alphabet: no edge anywhere
	}
	for {
		if next, ok := a.dat.Transition(state, code); ok {
			return next
		}
		if state == dat.Root {
			return dat.Root
		}
		state = uint32(a.next[state])
	}
}

func (a *Automaton[V]) emit(state uint32, end int, handler func(Hit[V]) bool) bool {
	for _, k := range a.output[state] {
		hit := Hit[V]{
			Begin:    end - int(a.keyLength[k]),
			End:      end,
			KeyIndex: int(k),
			Value:    a.values[k],
		}
		if !handler(hit) {
			return false
		}
	}
	return true
}
