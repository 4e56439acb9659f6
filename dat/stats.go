package dat

import "fmt"

// Stats holds density metrics of a double array.
type Stats struct {
	States     int // trie nodes, root included
	Keys       int
	UsedSlots  int // slots holding a state or a terminator
	TotalSlots int
	Sigma      int
}

// FillRatio returns UsedSlots/TotalSlots, 0 for an empty array.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

func (s Stats) String() string {
	return fmt.Sprintf("DAT(states=%d,keys=%d,used=%d,total=%d,fill=%.2f,sigma=%d)",
		s.States, s.Keys, s.UsedSlots, s.TotalSlots, s.FillRatio(), s.Sigma)
}

// Stats counts used slots. Root is counted as used.
func (d *DAT) Stats() Stats {
	var stats Stats
	if d.Empty() {
		return stats
	}
	stats.TotalSlots = len(d.Base)
	if d.Alphabet != nil {
		stats.Sigma = int(d.Alphabet.Sigma())
	}
	for i := range d.Check {
		if i == int(Root) || d.Check[i] != 0 {
			stats.UsedSlots++
			if d.Base[i] < 0 {
				stats.Keys++
			} else {
				stats.States++
			}
		}
	}
	return stats
}
