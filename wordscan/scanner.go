package wordscan

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mtrevisan/Hunspeller-sub002/ahocorasick"
)

// Finding reports one forbidden substring inside a word. Begin and End are
// rune offsets into the word.
type Finding struct {
	Word      Word
	Forbidden string
	Reason    string
	Begin     int
	End       int
}

func (f Finding) String() string {
	return fmt.Sprintf("line %d: %q contains %q (%s)", f.Word.Line, f.Word.Text, f.Forbidden, f.Reason)
}

// Scanner matches words against a set of forbidden substrings.
type Scanner struct {
	forbidden *ahocorasick.Automaton[string] // value: reason
	keys      []string
	// Workers is the number of goroutines used by Scan, GOMAXPROCS if < 1.
	Workers int
	// Progress, if set, is called after every word with the number of words
	// done so far and the total. It is called from worker goroutines.
	Progress func(done, total int)
}

// NewScanner compiles forbidden, which maps a substring to the reason for
// rejecting it.
func NewScanner(forbidden map[string]string, opts ...ahocorasick.Option) (*Scanner, error) {
	automaton, err := ahocorasick.BuildMap(forbidden, opts...)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(forbidden))
	for key := range forbidden {
		keys = append(keys, key)
	}
	slices.Sort(keys) // key index order of BuildMap
	tracer().Infof("forbidden substrings: %s", automaton.Stats())
	return &Scanner{forbidden: automaton, keys: keys}, nil
}

// Check returns the findings for a single word.
func (s *Scanner) Check(w Word) []Finding {
	var findings []Finding
	for hit := range s.forbidden.All(w.Text) {
		findings = append(findings, Finding{
			Word:      w,
			Forbidden: s.keys[hit.KeyIndex],
			Reason:    hit.Value,
			Begin:     hit.Begin,
			End:       hit.End,
		})
	}
	return findings
}

// Scan reads a .dic file from r and checks all of its words.
func (s *Scanner) Scan(ctx context.Context, r io.Reader) ([]Finding, error) {
	words, err := ReadDic(r)
	if err != nil {
		return nil, err
	}
	return s.ScanWords(ctx, words)
}

// ScanWords checks words concurrently. Findings are ordered as words,
// findings within one word in order of Check. If ctx is canceled, ScanWords
// returns the context's error.
func (s *Scanner) ScanWords(ctx context.Context, words []Word) ([]Finding, error) {
	workers := s.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, len(words)))
	results := make([][]Finding, len(words))
	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(words) + workers - 1) / max(1, workers)
	for from := 0; from < len(words); from += chunk {
		to := min(from+chunk, len(words))
		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = s.Check(words[i])
				n := done.Add(1)
				if s.Progress != nil {
					s.Progress(int(n), len(words))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var findings []Finding
	for _, rs := range results {
		findings = append(findings, rs...)
	}
	tracer().Debugf("scanned %d words with %d workers, %d findings", len(words), workers, len(findings))
	return findings, nil
}
