package autocorrect

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
	"golang.org/x/text/unicode/norm"

	"github.com/mtrevisan/Hunspeller-sub002/ahocorasick"
)

// Table is a compiled set of autocorrect entries. A Table is read-only and
// safe for concurrent use.
type Table struct {
	entries  []Entry
	matcher  *ahocorasick.Automaton[int] // value: index into entries
	prefixes *trie.Trie                  // incorrect form -> index into entries
}

// NewTable compiles entries. Two entries with the same incorrect form are an
// error; run Lint first to find them.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries:  make([]Entry, len(entries)),
		prefixes: trie.New(),
	}
	b := ahocorasick.NewBuilder[int]()
	for i, e := range entries {
		e = normalize(e)
		if e.Incorrect == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyEntry)
		}
		if err := b.Add(e.Incorrect, i); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Incorrect, err)
		}
		t.entries[i] = e
		t.prefixes.Add(e.Incorrect, i)
	}
	matcher, err := b.Build()
	if err != nil {
		return nil, err
	}
	t.matcher = matcher
	tracer().Infof("autocorrect table: %s", matcher.Stats())
	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in insertion order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Correct returns the correction for word, if word is a known incorrect form.
func (t *Table) Correct(word string) (string, bool) {
	i, ok := t.matcher.Get(norm.NFC.String(word))
	if !ok {
		return "", false
	}
	return t.entries[i].Correct, true
}

// Completions returns all entries whose incorrect form starts with prefix,
// ordered by incorrect form.
func (t *Table) Completions(prefix string) []Entry {
	keys := t.prefixes.PrefixSearch(norm.NFC.String(prefix))
	slices.Sort(keys)
	completions := make([]Entry, 0, len(keys))
	for _, key := range keys {
		node, ok := t.prefixes.Find(key)
		if !ok {
			continue
		}
		completions = append(completions, t.entries[node.Meta().(int)])
	}
	return completions
}

// Apply replaces every incorrect form occurring as a whole word in text by
// its correction. Overlapping candidates are resolved leftmost-longest.
// Apply returns the rewritten text and the number of replacements.
func (t *Table) Apply(text string) (string, int) {
	text = norm.NFC.String(text)
	runes := []rune(text)
	var hits []ahocorasick.Hit[int]
	for hit := range t.matcher.All(text) {
		if isWordAt(runes, hit.Begin, hit.End) {
			hits = append(hits, hit)
		}
	}
	if len(hits) == 0 {
		return text, 0
	}
	slices.SortFunc(hits, func(a, b ahocorasick.Hit[int]) int {
		if a.Begin != b.Begin {
			return a.Begin - b.Begin
		}
		return b.End - a.End
	})
	var sb strings.Builder
	pos, count := 0, 0
	for _, hit := range hits {
		if hit.Begin < pos {
			continue // overlaps a replacement already made
		}
		sb.WriteString(string(runes[pos:hit.Begin]))
		sb.WriteString(t.entries[hit.Value].Correct)
		pos = hit.End
		count++
	}
	sb.WriteString(string(runes[pos:]))
	return sb.String(), count
}

// isWordAt reports whether runes[begin:end] is delimited by non-letters.
func isWordAt(runes []rune, begin, end int) bool {
	if begin > 0 && isWordRune(runes[begin-1]) {
		return false
	}
	if end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
