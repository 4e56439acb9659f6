package hyphenate

import "fmt"

const absentPayload = 0xFF

// patternStore keeps packed hyphenation vectors in fixed-width records,
// directly indexed by pattern id.
// Each non-zero vector entry is stored as one byte: high nibble=index, low nibble=value.
type patternStore struct {
	width   uint8
	length  []uint8 // absentPayload for ids without a vector
	payload []byte  // len(length) * width
}

func packPositions(positions []int) ([]byte, error) {
	packed := make([]byte, 0, len(positions))
	for rel, val := range positions {
		if val == 0 {
			continue
		}
		if rel > 15 {
			return nil, fmt.Errorf("relative index out of range (0..15): %d", rel)
		}
		if val < 0 || val > 15 {
			return nil, fmt.Errorf("value out of range (0..15): %d", val)
		}
		packed = append(packed, byte((rel<<4)|val))
	}
	return packed, nil
}

// newPatternStore creates a store with room for count pattern ids.
func newPatternStore(maxPackedEntries uint8, count int) *patternStore {
	if maxPackedEntries > 16 {
		maxPackedEntries = 16
	}
	s := &patternStore{
		width:   maxPackedEntries,
		length:  make([]uint8, count),
		payload: make([]byte, count*int(maxPackedEntries)),
	}
	for i := range s.length {
		s.length[i] = absentPayload
	}
	return s
}

func (s *patternStore) ensure(id int) {
	if id < len(s.length) {
		return
	}
	grow := id + 1 - len(s.length)
	old := len(s.length)
	s.length = append(s.length, make([]uint8, grow)...)
	for i := old; i < len(s.length); i++ {
		s.length[i] = absentPayload
	}
	if s.width > 0 {
		s.payload = append(s.payload, make([]byte, grow*int(s.width))...)
	}
}

// Put stores a positions vector for pattern id.
func (s *patternStore) Put(id int, positions []int) error {
	packed, err := packPositions(positions)
	if err != nil {
		return err
	}
	return s.PutPacked(id, packed)
}

// PutPacked stores an already-packed vector for pattern id.
func (s *patternStore) PutPacked(id int, packed []byte) error {
	if id < 0 {
		return fmt.Errorf("negative pattern id: %d", id)
	}
	if len(packed) > int(s.width) {
		return fmt.Errorf("packed payload too large: %d", len(packed))
	}
	s.ensure(id)
	s.length[id] = uint8(len(packed))
	base := id * int(s.width)
	copy(s.payload[base:base+len(packed)], packed)
	return nil
}

// Packed returns the compact vector of pattern id.
func (s *patternStore) Packed(id int) ([]byte, bool) {
	if id < 0 || id >= len(s.length) {
		return nil, false
	}
	n := s.length[id]
	if n == absentPayload {
		return nil, false
	}
	base := id * int(s.width)
	return s.payload[base : base+int(n)], true
}

// MergeInto merges the vector of pattern id into dst at absolute offset at,
// keeping the maximum per position.
func (s *patternStore) MergeInto(id int, at int, dst []int) []int {
	packed, ok := s.Packed(id)
	if !ok {
		return dst
	}
	for _, b := range packed {
		rel := int(b >> 4)
		val := int(b & 0x0F)
		abs := at + rel
		for abs >= len(dst) {
			dst = append(dst, 0)
		}
		if val > dst[abs] {
			dst[abs] = val
		}
	}
	return dst
}
