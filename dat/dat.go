package dat

// Root is the state of the trie root. It is always slot 0.
const Root uint32 = 0

// DAT is a frozen double-array trie.
//   - States are slot indices into Base/Check; Root is slot 0.
//   - Transition: t := Base[s] + code; valid if Check[t] == Base[s].
//   - code is a dense alphabet id in [1..Sigma]. code 0 addresses the
//     terminator slot of a node which ends a key.
//
// Base is non-negative for every state reached by a rune. A terminator slot
// holds Base = -(keyIndex+1). Bases of states with children are unique and
// at least 1, so Check == 0 marks a free slot.
type DAT struct {
	Base  []int32 // len == N
	Check []int32 // len == N

	// Alphabet maps runes to dense code ids. It is read-only once encoded.
	Alphabet *Alphabet
}

// Empty reports whether no key has been encoded.
func (d *DAT) Empty() bool { return d == nil || len(d.Base) == 0 }

// NStates returns number of allocated slots in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Code maps a rune to its dense alphabet id, 0 if it is not in the alphabet.
func (d *DAT) Code(r rune) uint16 {
	if d.Alphabet == nil {
		return 0
	}
	return d.Alphabet.Code(r)
}

// Transition returns (nextState, ok). code must be in [1..Sigma]; other
// values never match.
func (d *DAT) Transition(state uint32, code uint16) (uint32, bool) {
	if code == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	b := d.Base[state]
	if b <= 0 {
		return 0, false
	}
	t := int(b) + int(code)
	if t >= len(d.Check) || d.Check[t] != b {
		return 0, false
	}
	return uint32(t), true
}

// Terminal returns the index of the key ending at state, if any.
func (d *DAT) Terminal(state uint32) (int, bool) {
	if int(state) >= len(d.Base) {
		return 0, false
	}
	b := d.Base[state]
	if b <= 0 || int(b) >= len(d.Check) || d.Check[b] != b {
		return 0, false
	}
	v := d.Base[b]
	if v >= 0 {
		return 0, false
	}
	return int(-v - 1), true
}
