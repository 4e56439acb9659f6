package hyphenate

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mtrevisan/Hunspeller-sub002/ahocorasick"
	"github.com/mtrevisan/Hunspeller-sub002/dat"
)

// Pattern is a format-agnostic hyphenation pattern representation.
//
// Sequence is the rune sequence to match (for example: ".ab", "für").
// Weights stores Liang weights by relative position and may be longer than
// Sequence by one entry when a pattern has a trailing weight digit.
type Pattern struct {
	Sequence []rune
	Weights  []int
}

// PatternReader yields compiled pattern entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (sequence []rune, weights []int, err error)
}

// ExceptionReader yields hyphenation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// Dictionary is a loaded hyphenation dictionary.
//
// A dictionary contains:
//   - pattern rules, compiled into an Aho-Corasick automaton whose values
//     index a compact weight store
//   - explicit hyphenation exceptions, compiled into an exact-match automaton.
//
// Both lookups ignore case.
type Dictionary struct {
	patterns       *ahocorasick.Automaton[int32] // value: pattern id in patternsV
	patternsV      *patternStore
	exceptions     *ahocorasick.Automaton[[]int] // e.g., "computer" => [0,0,0,1,0,1,0,0]
	exceptionWords []string                      // keys of exceptions by key index
	Identifier     string                        // Identifies the dictionary
	LeftMin        int                           // no break before this many runes
	RightMin       int                           // no break after len-RightMin runes
}

// PatternTrieStats reports density metrics for the underlying pattern trie.
func (dict *Dictionary) PatternTrieStats() dat.Stats {
	if dict == nil {
		return dat.Stats{}
	}
	return dict.patterns.Stats()
}

// PatternCount returns the number of loaded patterns.
func (dict *Dictionary) PatternCount() int {
	if dict == nil {
		return 0
	}
	return dict.patterns.Len()
}

// ExceptionCount returns the number of loaded exceptions.
func (dict *Dictionary) ExceptionCount() int {
	if dict == nil {
		return 0
	}
	return len(dict.exceptionWords)
}

// LoadPatterns compiles patterns from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package texpatterns to parse concrete formats and feed this API.
// A pattern occurring twice aborts the load.
func LoadPatterns(name string, reader PatternReader) (*Dictionary, error) {
	builder := ahocorasick.NewBuilder[int32](ahocorasick.WithCaseInsensitive())
	pending := make([][]byte, 0, 1024)
	maxPacked := 0
	for {
		sequence, weights, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(sequence) == 0 {
			continue
		}
		packed, err := packPositions(weights)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", string(sequence), err)
		}
		if err = builder.Add(string(sequence), int32(len(pending))); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", string(sequence), err)
		}
		maxPacked = max(maxPacked, len(packed))
		pending = append(pending, packed)
	}
	patterns, err := builder.Build()
	if err != nil {
		return nil, err
	}
	dict := &Dictionary{
		patterns:   patterns,
		patternsV:  newPatternStore(uint8(maxPacked), len(pending)),
		exceptions: emptyExceptions(),
		Identifier: fmt.Sprintf("patterns: %s", name),
		LeftMin:    2,
		RightMin:   2,
	}
	for id, packed := range pending {
		if err := dict.patternsV.PutPacked(id, packed); err != nil {
			return nil, err
		}
	}
	tracer().Infof("pattern trie stats %s", dict.PatternTrieStats())
	return dict, nil
}

func emptyExceptions() *ahocorasick.Automaton[[]int] {
	a, _ := ahocorasick.NewBuilder[[]int](ahocorasick.WithCaseInsensitive()).Build()
	return a
}

// LoadExceptions loads exception entries from a streaming source. Entries
// read before a failing read are kept.
func (dict *Dictionary) LoadExceptions(reader ExceptionReader) error {
	var words []string
	var positions [][]int
	var err error
	for {
		var word string
		var pp []int
		word, pp, err = reader.Next()
		if err != nil {
			break
		}
		words = append(words, word)
		positions = append(positions, pp)
	}
	if err == io.EOF {
		err = nil
	}
	if merr := dict.mergeExceptions(words, positions); merr != nil && err == nil {
		err = merr
	}
	return err
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (dict *Dictionary) LoadExceptionList(exceptions map[string][]int) error {
	words := make([]string, 0, len(exceptions))
	for word := range exceptions {
		words = append(words, word)
	}
	slices.Sort(words)
	positions := make([][]int, len(words))
	for i, word := range words {
		positions[i] = exceptions[word]
	}
	return dict.mergeExceptions(words, positions)
}

// AddException registers one explicit hyphenation exception. Re-adding a
// known word replaces its positions.
//
// Loading exceptions is not safe for concurrent use with Hyphenate.
func (dict *Dictionary) AddException(word string, positions []int) error {
	return dict.mergeExceptions([]string{word}, [][]int{positions})
}

// mergeExceptions updates known words in place and recompiles the exception
// automaton once if new words were added. Later entries win. Nothing changes
// unless the whole batch is accepted.
func (dict *Dictionary) mergeExceptions(words []string, positions [][]int) error {
	if dict.exceptions == nil {
		dict.exceptions = emptyExceptions()
	}
	updates := make(map[int][]int) // key index of a known word -> new positions
	var added []string
	var addedPositions [][]int
	addedIndex := make(map[string]int)
	for i, word := range words {
		if word == "" {
			continue
		}
		pp := slices.Clone(positions[i])
		if k := dict.exceptions.ExactMatch(word); k >= 0 {
			updates[k] = pp
			continue
		}
		folded := strings.Map(unicode.ToLower, word)
		if j, ok := addedIndex[folded]; ok {
			addedPositions[j] = pp
			continue
		}
		addedIndex[folded] = len(added)
		added = append(added, word)
		addedPositions = append(addedPositions, pp)
	}
	if len(added) == 0 {
		for k, pp := range updates {
			dict.exceptions.Set(dict.exceptionWords[k], pp)
		}
		return nil
	}
	builder := ahocorasick.NewBuilder[[]int](ahocorasick.WithCaseInsensitive())
	for k, word := range dict.exceptionWords {
		pp, ok := updates[k]
		if !ok {
			pp, _ = dict.exceptions.Value(k)
		}
		builder.Add(word, pp)
	}
	for i, word := range added {
		builder.Add(word, addedPositions[i])
	}
	exceptions, err := builder.Build()
	if err != nil {
		return err
	}
	dict.exceptions = exceptions
	dict.exceptionWords = append(dict.exceptionWords, added...)
	tracer().Debugf("%d hyphenation exceptions compiled", len(dict.exceptionWords))
	return nil
}

// HyphenationString returns word with discretionary hyphens inserted.
// Example:
//
//	"table" => "ta-ble".
func (dict *Dictionary) HyphenationString(word string) string {
	s := dict.Hyphenate(word)
	return strings.Join(s, "-")
}

// Hyphenate splits word at legal hyphenation positions.
//
// Example:
//
//	"table" => [ "ta", "ble" ].
func (dict *Dictionary) Hyphenate(word string) []string {
	if dict == nil {
		return []string{word}
	}
	if positions, found := dict.exceptions.Get(word); found {
		return splitAtPositions(word, positions)
	}
	if !dict.patterns.Initialized() {
		return []string{word}
	}
	runeCount := utf8.RuneCountInString(word)
	positions := make([]int, runeCount+3) // dots on both sides, trailing weight
	for hit := range dict.patterns.All("." + word + ".") {
		positions = dict.patternsV.MergeInto(int(hit.Value), hit.Begin, positions)
	}
	positions = positions[1 : runeCount+1]
	for i := 0; i < dict.LeftMin && i < len(positions); i++ {
		positions[i] = 0 // disallow breaks too close to the left edge
	}
	rightCutoff := max(0, runeCount-dict.RightMin+1) // indices >= cutoff leave fewer than RightMin chars
	for i := rightCutoff; i < len(positions); i++ {
		positions[i] = 0 // disallow breaks too close to the right edge
	}
	return splitAtPositions(word, positions)
}

// Helper: split a string at positions given by an integer slice.
func splitAtPositions(word string, positions []int) []string {
	offsets := runeByteOffsets(word)
	runeCount := len(offsets) - 1
	var pp = make([]string, 0, max(1, runeCount/3))
	prev := 0                       // holds the last split index
	for i, pos := range positions { // check every position
		if i <= 0 || i >= runeCount {
			continue
		}
		if pos > 0 && pos%2 != 0 { // if position is odd > 0
			split := offsets[i]
			pp = append(pp, word[prev:split]) // append syllable
			prev = split                      // remember last split index
		}
	}
	pp = append(pp, word[prev:]) // append last syllable
	return pp
}

func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}
