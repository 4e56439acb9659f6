package hyphenate

import (
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/mtrevisan/Hunspeller-sub002/dat"
)

type slicePatternReader struct {
	entries []Pattern
	index   int
}

func (r *slicePatternReader) Next() ([]rune, []int, error) {
	if r.index >= len(r.entries) {
		return nil, nil, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Sequence, entry.Weights, nil
}

type exception struct {
	word      string
	positions []int
}

type sliceExceptionReader struct {
	entries []exception
	index   int
	err     error // returned after entries are exhausted, io.EOF if nil
}

func (r *sliceExceptionReader) Next() (string, []int, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return "", nil, r.err
		}
		return "", nil, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.word, entry.positions, nil
}

func liangPatterns() *slicePatternReader {
	p := func(seq string, weights ...int) Pattern {
		return Pattern{Sequence: []rune(seq), Weights: weights}
	}
	return &slicePatternReader{entries: []Pattern{
		p("hyph", 0, 0, 3, 0),
		p("hen", 0, 0, 2),
		p("hena", 0, 0, 0, 0, 4),
		p("henat", 0, 0, 0, 5, 0),
		p("na", 1, 0),
		p("nat", 0, 2, 0, 0),
		p("tio", 1, 0, 0),
		p("io", 2, 0),
		p("on", 0, 2),
	}}
}

func TestPatternReaderAPI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyphenate")
	defer teardown()
	//
	dict, err := LoadPatterns("stream-patterns", &slicePatternReader{
		entries: []Pattern{{
			Sequence: []rune("für"),
			Weights:  []int{0, 0, 1},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("fürung"); h != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", h)
	}
	if h := dict.HyphenationString("Fürung"); h != "Fü-rung" {
		t.Fatalf("Fürung should be Fü-rung, is %s", h)
	}
	if dict.PatternCount() != 1 {
		t.Fatalf("expected 1 pattern, got %d", dict.PatternCount())
	}
}

func TestLiangHyphenation(t *testing.T) {
	dict, err := LoadPatterns("liang", liangPatterns())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want string
	}{
		{word: "hyphenation", want: "hy-phen-ation"},
		{word: "nation", want: "na-tion"},
		{word: "on", want: "on"},
		{word: "", want: ""},
	}
	for _, tt := range tests {
		if got := dict.HyphenationString(tt.word); got != tt.want {
			t.Fatalf("hyphenation mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestLeftRightMin(t *testing.T) {
	dict, err := LoadPatterns("edges", &slicePatternReader{
		entries: []Pattern{{Sequence: []rune("b"), Weights: []int{1, 1}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("abaaba"); h != "ab-aa-ba" {
		t.Fatalf("abaaba should be ab-aa-ba, is %s", h)
	}
	dict.LeftMin, dict.RightMin = 1, 1
	if h := dict.HyphenationString("abaaba"); h != "a-b-aa-b-a" {
		t.Fatalf("abaaba should be a-b-aa-b-a, is %s", h)
	}
}

func TestDuplicatePatternFails(t *testing.T) {
	_, err := LoadPatterns("dup", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("ab"), Weights: []int{0, 1}},
			{Sequence: []rune("AB"), Weights: []int{1, 0}},
		},
	})
	if !errors.Is(err, dat.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestInvalidWeightFails(t *testing.T) {
	_, err := LoadPatterns("weights", &slicePatternReader{
		entries: []Pattern{{Sequence: []rune("ab"), Weights: []int{0, 16}}},
	})
	if err == nil {
		t.Fatalf("expected weight out of range to fail")
	}
}

func TestExceptionReaderAPI(t *testing.T) {
	dict, err := LoadPatterns("stream-exceptions", &slicePatternReader{})
	if err != nil {
		t.Fatal(err)
	}
	err = dict.LoadExceptions(&sliceExceptionReader{
		entries: []exception{
			{word: "table", positions: []int{0, 0, 1, 0, 0}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("table"); h != "ta-ble" {
		t.Fatalf("table should be ta-ble, is %s", h)
	}
	if h := dict.HyphenationString("Table"); h != "Ta-ble" {
		t.Fatalf("Table should be Ta-ble, is %s", h)
	}
}

func TestExceptionReaderErrorKeepsEntries(t *testing.T) {
	dict, _ := LoadPatterns("partial", &slicePatternReader{})
	readErr := errors.New("broken stream")
	err := dict.LoadExceptions(&sliceExceptionReader{
		entries: []exception{{word: "table", positions: []int{0, 0, 1, 0, 0}}},
		err:     readErr,
	})
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if dict.ExceptionCount() != 1 {
		t.Fatalf("expected 1 exception, got %d", dict.ExceptionCount())
	}
}

func TestExceptionsOverridePatterns(t *testing.T) {
	dict, err := LoadPatterns("liang", liangPatterns())
	if err != nil {
		t.Fatal(err)
	}
	if err = dict.LoadExceptionList(map[string][]int{
		"hyphenation": {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		"nation":      {0, 0, 0, 1, 0, 0},
	}); err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("hyphenation"); h != "hyphenation" {
		t.Fatalf("hyphenation should not be split, is %s", h)
	}
	if h := dict.HyphenationString("nation"); h != "nat-ion" {
		t.Fatalf("nation should be nat-ion, is %s", h)
	}
}

func TestAddExceptionUpdatesInPlace(t *testing.T) {
	dict, _ := LoadPatterns("update", &slicePatternReader{})
	if err := dict.AddException("table", []int{0, 0, 1, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := dict.AddException("TABLE", []int{0, 0, 0, 1, 0}); err != nil {
		t.Fatal(err)
	}
	if dict.ExceptionCount() != 1 {
		t.Fatalf("expected 1 exception, got %d", dict.ExceptionCount())
	}
	if h := dict.HyphenationString("table"); h != "tab-le" {
		t.Fatalf("table should be tab-le, is %s", h)
	}
	if err := dict.AddException("cable", []int{0, 0, 1, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if dict.ExceptionCount() != 2 {
		t.Fatalf("expected 2 exceptions, got %d", dict.ExceptionCount())
	}
	if h := dict.HyphenationString("table"); h != "tab-le" {
		t.Fatalf("table should survive a rebuild as tab-le, is %s", h)
	}
	if h := dict.HyphenationString("cable"); h != "ca-ble" {
		t.Fatalf("cable should be ca-ble, is %s", h)
	}
}

func TestFailedExceptionLoadChangesNothing(t *testing.T) {
	dict, _ := LoadPatterns("atomic", &slicePatternReader{})
	if err := dict.AddException("table", []int{0, 0, 1, 0, 0}); err != nil {
		t.Fatal(err)
	}
	huge := make([]rune, 65536)
	for i := range huge {
		huge[i] = rune(0x10000 + i)
	}
	err := dict.LoadExceptions(&sliceExceptionReader{
		entries: []exception{
			{word: "table", positions: []int{0, 0, 0, 1, 0}},
			{word: string(huge), positions: make([]int, len(huge))},
		},
	})
	if !errors.Is(err, dat.ErrAlphabetFull) {
		t.Fatalf("expected ErrAlphabetFull, got %v", err)
	}
	if dict.ExceptionCount() != 1 {
		t.Fatalf("expected 1 exception, got %d", dict.ExceptionCount())
	}
	if h := dict.HyphenationString("table"); h != "ta-ble" {
		t.Fatalf("table should still be ta-ble, is %s", h)
	}
}

func TestNilDictionary(t *testing.T) {
	var dict *Dictionary
	if h := dict.HyphenationString("table"); h != "table" {
		t.Fatalf("nil dictionary should not split, got %s", h)
	}
	if dict.PatternCount() != 0 || dict.ExceptionCount() != 0 {
		t.Fatalf("nil dictionary should be empty")
	}
}

func TestPatternTrieStats(t *testing.T) {
	dict, err := LoadPatterns("stats", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("ab"), Weights: []int{0, 1}},
			{Sequence: []rune("abc"), Weights: []int{0, 1, 0}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	stats := dict.PatternTrieStats()
	if stats.States != 4 || stats.Keys != 2 {
		t.Fatalf("expected 4 states and 2 keys, got %s", stats)
	}
	if stats.UsedSlots <= 0 || stats.TotalSlots < stats.UsedSlots {
		t.Fatalf("unexpected slot counts, used=%d total=%d", stats.UsedSlots, stats.TotalSlots)
	}
	if fill := stats.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}
