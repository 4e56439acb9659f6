package dat

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var placements = []Placement{FirstFit, Relocating}

func mustTrie(t *testing.T, keys ...string) *Trie {
	t.Helper()
	trie := NewTrie()
	for _, key := range keys {
		if _, err := trie.Insert([]rune(key)); err != nil {
			t.Fatalf("Insert(%q) failed: %v", key, err)
		}
	}
	return trie
}

func lookup(d *DAT, key string) (int, bool) {
	state := Root
	for _, r := range key {
		next, ok := d.Transition(state, d.Code(r))
		if !ok {
			return 0, false
		}
		state = next
	}
	return d.Terminal(state)
}

func TestEncodeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dictlint.dat")
	defer teardown()
	//
	keys := []string{"a", "aba", "ac", "b", "ba", "c", "hyphen", "hyphenation", "für"}
	absent := []string{"", "ab", "abc", "d", "hyp", "hyphenations", "fü"}
	for _, p := range placements {
		layout := Encode(mustTrie(t, keys...), p)
		for i, key := range keys {
			k, ok := lookup(layout.DAT, key)
			if !ok || k != i {
				t.Fatalf("%s: lookup(%q) = %d,%v, want %d", p, key, k, ok, i)
			}
		}
		for _, key := range absent {
			if k, ok := lookup(layout.DAT, key); ok {
				t.Fatalf("%s: lookup(%q) found key %d", p, key, k)
			}
		}
	}
}

func TestEncodeInvariants(t *testing.T) {
	keys := []string{"she", "he", "his", "hers", "her", "s", "sh", "x", "xyz", "hx"}
	for _, p := range placements {
		trie := mustTrie(t, keys...)
		layout := Encode(trie, p)
		d := layout.DAT
		seen := make(map[int32]int32)
		for _, n := range trie.BreadthFirst() {
			s := layout.Slots[n]
			if s < 0 || int(s) >= d.NStates() {
				t.Fatalf("%s: node %d has no slot", p, n)
			}
			if d.Base[s] < 1 {
				t.Fatalf("%s: state %d has base %d", p, s, d.Base[s])
			}
			if other, dup := seen[d.Base[s]]; dup {
				t.Fatalf("%s: nodes %d and %d share base %d", p, n, other, d.Base[s])
			}
			seen[d.Base[s]] = n
			if n == 0 {
				if s != int32(Root) {
					t.Fatalf("%s: root at slot %d", p, s)
				}
				continue
			}
			parent := layout.Slots[trie.Parent(n)]
			if d.Check[s] != d.Base[parent] {
				t.Fatalf("%s: check[%d]=%d, parent base %d", p, s, d.Check[s], d.Base[parent])
			}
			if s != d.Base[parent]+int32(trie.Label(n)) {
				t.Fatalf("%s: node %d not at base+code", p, n)
			}
			if k, ok := d.Terminal(uint32(s)); ok != (trie.Key(n) != NoKey) || (ok && k != trie.Key(n)) {
				t.Fatalf("%s: terminal mismatch at node %d: %d,%v", p, n, k, ok)
			}
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	for _, p := range placements {
		layout := Encode(NewTrie(), p)
		if !layout.DAT.Empty() {
			t.Fatalf("%s: empty trie must yield an empty DAT", p)
		}
		if _, ok := layout.DAT.Transition(Root, 1); ok {
			t.Fatalf("%s: empty DAT must not transition", p)
		}
		if _, ok := layout.DAT.Terminal(Root); ok {
			t.Fatalf("%s: empty DAT must not have terminals", p)
		}
	}
}

func TestRelocatingMovesSmallerGroup(t *testing.T) {
	// "a" puts its terminator right where the root wants to place 'b'.
	e := newEncoder(mustTrie(t, "a", "b"))
	e.encodeRelocating()
	if e.relocations == 0 {
		t.Fatalf("expected a relocation")
	}
	e.shrink()
	d := &DAT{Base: e.base, Check: e.check, Alphabet: &e.trie.Alphabet}
	for i, key := range []string{"a", "b"} {
		if k, ok := lookup(d, key); !ok || k != i {
			t.Fatalf("lookup(%q) = %d,%v after relocation", key, k, ok)
		}
	}
}

func TestParsePlacement(t *testing.T) {
	for _, p := range placements {
		got, err := ParsePlacement(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePlacement(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePlacement("best-fit"); err == nil {
		t.Fatalf("expected error for unknown placement")
	}
}

func TestStats(t *testing.T) {
	layout := Encode(mustTrie(t, "ab", "abc"), FirstFit)
	stats := layout.DAT.Stats()
	if stats.Keys != 2 {
		t.Fatalf("expected 2 terminators, got %d", stats.Keys)
	}
	if stats.States != 4 { // root, a, ab, abc
		t.Fatalf("expected 4 states, got %d", stats.States)
	}
	if fill := stats.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}

func randomKeys(seed int64, n int) []string {
	rnd := rand.New(rand.NewSource(seed))
	seen := make(map[string]bool, n)
	keys := make([]string, 0, n)
	for len(keys) < n {
		k := make([]rune, 3+rnd.Intn(10))
		for i := range k {
			k[i] = rune('a' + rnd.Intn(26))
		}
		if key := string(k); !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func TestEncodeWorkIsLinear(t *testing.T) {
	keys := randomKeys(1, 20000)
	for _, p := range placements {
		e := newEncoder(mustTrie(t, keys...))
		if p == Relocating {
			e.encodeRelocating()
		} else {
			e.encodeFirstFit()
		}
		// every failed candidate costs a trial of a listed slot
		bound := maxTrials*(len(e.check)+e.released) + e.trie.NodeCount() + e.relocations
		if e.probes > bound {
			t.Fatalf("%s: %d candidate probes for %d slots, want at most %d", p, e.probes, len(e.check), bound)
		}
		e.shrink()
		d := &DAT{Base: e.base, Check: e.check, Alphabet: &e.trie.Alphabet}
		for i := 0; i < len(keys); i += 97 {
			if k, ok := lookup(d, keys[i]); !ok || k != i {
				t.Fatalf("%s: lookup(%q) = %d,%v, want %d", p, keys[i], k, ok, i)
			}
		}
		if fill := d.Stats().FillRatio(); fill < 0.25 {
			t.Fatalf("%s: fill ratio %.2f", p, fill)
		}
	}
}

func TestEncodeReleasesTrie(t *testing.T) {
	keys := randomKeys(2, 2000)
	collected := make(chan struct{})
	layout := func() *Layout {
		trie := mustTrie(t, keys...)
		runtime.SetFinalizer(trie, func(*Trie) { close(collected) })
		return Encode(trie, FirstFit)
	}()
	for i := 0; i < 20; i++ {
		runtime.GC()
		select {
		case <-collected:
			if k, ok := lookup(layout.DAT, keys[7]); !ok || k != 7 {
				t.Fatalf("lookup(%q) = %d,%v after the trie was collected", keys[7], k, ok)
			}
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	t.Fatalf("trie is still reachable from the encoded layout")
}

func BenchmarkEncode(b *testing.B) {
	keys := randomKeys(3, 100000)
	for _, p := range placements {
		b.Run(fmt.Sprintf("%s/%d", p, len(keys)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				trie := NewTrie()
				for _, key := range keys {
					trie.Insert([]rune(key))
				}
				b.StartTimer()
				Encode(trie, p)
			}
		})
	}
}
