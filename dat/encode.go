package dat

import (
	"fmt"
	"slices"
	"strings"
)

// Placement selects how the encoder assigns slots to sibling groups.
// Both strategies yield arrays with identical lookup behavior.
type Placement int

const (
	// FirstFit visits the trie breadth-first and gives every node the lowest
	// base at which all of its children fit.
	FirstFit Placement = iota
	// Relocating replays key insertion order edge by edge. When a wanted
	// slot belongs to another sibling group, the smaller group is moved.
	Relocating
)

func (p Placement) String() string {
	switch p {
	case FirstFit:
		return "first-fit"
	case Relocating:
		return "relocating"
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// ParsePlacement accepts the names produced by Placement.String.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-fit", "firstfit":
		return FirstFit, nil
	case "relocating", "relocate":
		return Relocating, nil
	}
	return FirstFit, fmt.Errorf("unknown placement %q", s)
}

// Layout is the result of encoding a trie.
type Layout struct {
	DAT   *DAT
	Slots []int32 // state of every trie node, indexed by node id
}

// Encode packs t into a double array. t must not be modified afterwards.
func Encode(t *Trie, placement Placement) *Layout {
	alpha := t.Alphabet // copied, so the frozen array does not keep t alive
	layout := &Layout{DAT: &DAT{Alphabet: &alpha}}
	if t.Keys() == 0 {
		return layout
	}
	e := newEncoder(t)
	switch placement {
	case Relocating:
		e.encodeRelocating()
	default:
		e.encodeFirstFit()
	}
	e.shrink()
	layout.DAT.Base = e.base
	layout.DAT.Check = e.check
	layout.Slots = e.slots
	tracer().Debugf("encoded %d keys into %d slots (%s, %d relocations)",
		t.Keys(), len(e.base), placement, e.relocations)
	return layout
}

const (
	noSlot = -1
	// maxTrials is how often a free slot may be rejected as a candidate
	// before it is dropped from the free list.
	maxTrials = 16
)

type encoder struct {
	trie        *Trie
	base        []int32
	check       []int32
	used        []bool          // indexed by base value
	owner       map[int32]int32 // base -> trie node, Relocating only
	slots       []int32         // trie node -> slot, -1 while unplaced
	terminated  []bool          // terminator slot placed, Relocating only
	relocations int

	// Free slots form a doubly-linked list threaded through nextFree and
	// prevFree. Slot 0 belongs to the root and is never listed.
	nextFree []int32
	prevFree []int32
	listed   []bool
	trials   []uint8
	freeHead int32
	freeTail int32
	probes   int // candidate bases examined
	released int // slots returned to the free list
}

func newEncoder(t *Trie) *encoder {
	e := &encoder{
		trie:     t,
		slots:    make([]int32, t.NodeCount()),
		freeHead: noSlot,
		freeTail: noSlot,
	}
	for i := range e.slots {
		e.slots[i] = -1
	}
	e.slots[0] = 0
	e.ensure(t.NodeCount())
	return e
}

func (e *encoder) encodeFirstFit() {
	for _, n := range e.trie.BreadthFirst() {
		codes := e.groupCodes(n)
		if len(codes) == 0 {
			continue
		}
		b := e.findBase(codes)
		e.setBase(n, b)
		for _, code := range codes {
			t := int(b) + int(code)
			e.claim(t, b)
			if code == 0 {
				e.base[t] = -(int32(e.trie.Key(n)) + 1)
				continue
			}
			child, _ := e.trie.Child(n, code)
			e.slots[child] = int32(t)
		}
	}
}

func (e *encoder) encodeRelocating() {
	e.owner = make(map[int32]int32)
	e.terminated = make([]bool, e.trie.NodeCount())
	for k := 0; k < e.trie.Keys(); k++ {
		path := e.trie.Path(k)
		for i := 1; i < len(path); i++ {
			n := path[i]
			if e.slots[n] == -1 {
				e.slots[n] = int32(e.place(path[i-1], e.trie.Label(n)))
			}
		}
		last := path[len(path)-1]
		t := e.place(last, 0)
		e.base[t] = -(int32(k) + 1)
		e.terminated[last] = true
	}
}

// groupCodes returns all codes a node needs, terminator first.
func (e *encoder) groupCodes(n int32) []uint16 {
	labels := e.trie.Labels(n)
	if e.trie.Key(n) == NoKey {
		return labels
	}
	return append([]uint16{0}, labels...)
}

// placedCodes returns the codes of n's group which already own a slot.
func (e *encoder) placedCodes(n int32) []uint16 {
	var codes []uint16
	if e.terminated[n] {
		codes = append(codes, 0)
	}
	for _, label := range e.trie.Labels(n) {
		if child, _ := e.trie.Child(n, label); e.slots[child] != -1 {
			codes = append(codes, label)
		}
	}
	return codes
}

// place gives the edge (p, code) a slot, relocating a sibling group on collision.
func (e *encoder) place(p int32, code uint16) int {
	b := e.base[e.slots[p]]
	if b <= 0 {
		b = e.findBase([]uint16{code})
		e.setBase(p, b)
		e.owner[b] = p
		t := int(b) + int(code)
		e.claim(t, b)
		return t
	}
	t := int(b) + int(code)
	if t >= len(e.check) || e.check[t] == 0 {
		e.claim(t, b)
		return t
	}
	q, ok := e.owner[e.check[t]]
	assert(ok && q != p, "slot owned by an unknown group")
	mine := e.placedCodes(p)
	theirs := e.placedCodes(q)
	if len(mine)+1 <= len(theirs) {
		codes := append(mine, code)
		slices.Sort(codes)
		nb := e.relocate(p, codes)
		t = int(nb) + int(code)
		e.claim(t, nb)
		return t
	}
	e.relocate(q, theirs)
	e.claim(t, b)
	return t
}

// relocate moves the group of n to a base where all codes fit. Codes of
// the group which have no slot yet are only reserved, not moved.
func (e *encoder) relocate(n int32, codes []uint16) int32 {
	e.relocations++
	ob := e.base[e.slots[n]]
	nb := e.findBase(codes)
	for _, code := range codes {
		old := int(ob) + int(code)
		if old >= len(e.check) || e.check[old] != ob {
			continue
		}
		moved := int(nb) + int(code)
		e.claim(moved, nb)
		e.base[moved] = e.base[old]
		if code != 0 {
			child, _ := e.trie.Child(n, code)
			e.slots[child] = int32(moved)
		}
		e.release(old)
	}
	e.used[ob] = false
	delete(e.owner, ob)
	e.setBase(n, nb)
	e.owner[nb] = n
	return nb
}

// findBase returns an unused base at which every code lands on a free slot. Candidates are taken from the free list, b = free - codes[0];
// when the list is exhausted the group goes past the end of the arrays.
// codes must be sorted ascending.
//
// A listed slot rejected maxTrials times is unlisted, which bounds the
// total work of all calls by maxTrials times the number of slots ever freed.
func (e *encoder) findBase(codes []uint16) int32 {
	first := int(codes[0])
	for f := e.freeHead; f != noSlot; {
		next := e.nextFree[f]
		e.probes++
		b := int(f) - first
		if b >= 1 && !e.isUsed(b) && e.fits(b, codes) {
			return int32(b)
		}
		e.trials[f]++
		if e.trials[f] >= maxTrials {
			e.unlink(int(f)) // stays free, only no longer offered
		}
		f = next
	}
	b := max(1, len(e.check)-first)
	for e.isUsed(b) || !e.fits(b, codes) {
		b++
	}
	return int32(b)
}

func (e *encoder) isUsed(b int) bool {
	return b < len(e.used) && e.used[b]
}

func (e *encoder) fits(b int, codes []uint16) bool {
	for _, code := range codes {
		t := b + int(code)
		if t < len(e.check) && e.check[t] != 0 {
			return false
		}
	}
	return true
}

func (e *encoder) setBase(n int32, b int32) {
	e.ensure(int(b))
	e.base[e.slots[n]] = b
	e.used[b] = true
}

func (e *encoder) claim(t int, b int32) {
	e.ensure(t)
	e.check[t] = b
	e.unlink(t)
}

// release frees slot t and offers it first to the next search.
func (e *encoder) release(t int) {
	e.check[t] = 0
	e.base[t] = 0
	e.released++
	e.unlink(t)
	e.listed[t] = true
	e.trials[t] = 0
	e.prevFree[t] = noSlot
	e.nextFree[t] = e.freeHead
	if e.freeHead == noSlot {
		e.freeTail = int32(t)
	} else {
		e.prevFree[e.freeHead] = int32(t)
	}
	e.freeHead = int32(t)
}

// listFree lists slot t at the tail of the free list.
func (e *encoder) listFree(t int) {
	e.listed[t] = true
	e.trials[t] = 0
	e.prevFree[t] = e.freeTail
	e.nextFree[t] = noSlot
	if e.freeTail == noSlot {
		e.freeHead = int32(t)
	} else {
		e.nextFree[e.freeTail] = int32(t)
	}
	e.freeTail = int32(t)
}

func (e *encoder) unlink(t int) {
	if !e.listed[t] {
		return
	}
	e.listed[t] = false
	prev, next := e.prevFree[t], e.nextFree[t]
	if prev == noSlot {
		e.freeHead = next
	} else {
		e.nextFree[prev] = next
	}
	if next == noSlot {
		e.freeTail = prev
	} else {
		e.prevFree[next] = prev
	}
}

func (e *encoder) ensure(idx int) {
	if idx < len(e.base) {
		return
	}
	old := len(e.base)
	grow := idx + 1 - old
	e.base = append(e.base, make([]int32, grow)...)
	e.check = append(e.check, make([]int32, grow)...)
	e.used = append(e.used, make([]bool, grow)...)
	e.nextFree = append(e.nextFree, make([]int32, grow)...)
	e.prevFree = append(e.prevFree, make([]int32, grow)...)
	e.listed = append(e.listed, make([]bool, grow)...)
	e.trials = append(e.trials, make([]uint8, grow)...)
	for t := max(old, 1); t <= idx; t++ {
		e.listFree(t)
	}
}

// shrink drops trailing free slots.
func (e *encoder) shrink() {
	last := 0
	for i := len(e.check) - 1; i > 0; i-- {
		if e.check[i] != 0 {
			last = i
			break
		}
	}
	e.base = e.base[:last+1:last+1]
	e.check = e.check[:last+1:last+1]
	e.used = nil
	e.nextFree, e.prevFree, e.listed, e.trials = nil, nil, nil, nil
}
