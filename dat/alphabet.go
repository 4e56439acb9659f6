package dat

import "errors"

// ErrAlphabetFull is returned when more distinct runes are registered than a
// uint16 code id can address.
var ErrAlphabetFull = errors.New("alphabet exceeds 65535 distinct runes")

// PagedMapBMP maps BMP code points (0..65535) to dense code ids.
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is two array reads. Each populated page costs 512 bytes.
type PagedMapBMP struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
}

// Code returns the dense code id for a BMP code point, 0 if absent.
func (m *PagedMapBMP) Code(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMapBMP) NumPages() int { return len(m.Pages) >> 8 }

func (m *PagedMapBMP) set(bmp uint16, code uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if code == 0 {
			return
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		pi = uint16(len(m.Pages) >> 8)
		m.Top[hi] = pi
	}
	m.Pages[int(pi-1)<<8+int(bmp&0xFF)] = code
}

// Alphabet assigns dense code ids 1..Sigma to runes in first-seen order.
// Code id 0 is reserved for "not in alphabet" on lookup and for the
// terminator slot in the double array.
type Alphabet struct {
	bmp    PagedMapBMP
	astral map[rune]uint16 // runes beyond the BMP, rare in dictionaries
	sigma  uint16
}

// Sigma returns the number of registered runes, which is also the largest code id.
func (a *Alphabet) Sigma() uint16 { return a.sigma }

// Code returns the code id of r, 0 if r has never been registered.
func (a *Alphabet) Code(r rune) uint16 {
	if r >= 0 && r <= 0xFFFF {
		return a.bmp.Code(uint16(r))
	}
	return a.astral[r]
}

// Register returns the code id of r, assigning a fresh one on first sight.
func (a *Alphabet) Register(r rune) (uint16, error) {
	if code := a.Code(r); code != 0 {
		return code, nil
	}
	if a.sigma == ^uint16(0) {
		return 0, ErrAlphabetFull
	}
	a.sigma++
	if r >= 0 && r <= 0xFFFF {
		a.bmp.set(uint16(r), a.sigma)
	} else {
		if a.astral == nil {
			a.astral = make(map[rune]uint16)
		}
		a.astral[r] = a.sigma
	}
	return a.sigma, nil
}
