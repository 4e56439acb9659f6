package texpatterns

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	hyphenate "github.com/mtrevisan/Hunspeller-sub002"
)

// ErrUnclosedBlock is returned when input ends inside a \patterns block.
var ErrUnclosedBlock = errors.New("unexpected end of file (unclosed \\patterns block)")

// PatternReader streams Liang patterns from TeX-style source files.
type PatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	inBlock    bool
	pending    []string // patterns left over from the current line
	sequence   []rune
	weights    []int
}

// LoadPatterns parses TeX pattern data and returns a ready-to-use dictionary.
//
// Patterns are enclosed in between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal
//	a5ban
//	abe2
//	 ...
//	}
//
// Odd numbers stand for possible discretionary breakpoints, even numbers forbid
// hyphenation. Digits belong to the character immediately after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => positions["aban"] = [0,5,0,0].
//
// Exceptions from \hyphenation{...} are intentionally not loaded here.
func LoadPatterns(name string, reader io.Reader) (*hyphenate.Dictionary, error) {
	return hyphenate.LoadPatterns(name, NewPatternReader(reader))
}

func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{
		scanner:  bufio.NewScanner(reader),
		sequence: make([]rune, 0, 32),
		weights:  make([]int, 0, 32),
	}
}

// Identifier returns the text of a \message{...} line, if one was seen.
func (r *PatternReader) Identifier() string {
	return r.identifier
}

// Next returns the next pattern as (sequence, weights).
// It returns io.EOF when exhausted.
// The returned slices are reused by subsequent calls.
func (r *PatternReader) Next() ([]rune, []int, error) {
	for {
		if len(r.pending) > 0 {
			field := r.pending[0]
			r.pending = r.pending[1:]
			r.decodePattern(field)
			if len(r.sequence) == 0 {
				continue
			}
			return r.sequence, r.weights, nil
		}
		if !r.scanner.Scan() {
			break
		}
		line := r.scanner.Text()
		if !r.inBlock {
			r.readPreamble(line)
			continue
		}
		r.blockLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, nil, err
	}
	if r.inBlock {
		return nil, nil, ErrUnclosedBlock
	}
	return nil, nil, io.EOF
}

func (r *PatternReader) readPreamble(line string) {
	switch {
	case strings.HasPrefix(line, "%     message: "):
		r.identifier = line[15:]
	case strings.HasPrefix(line, "\\message{"):
		r.identifier = strings.TrimSuffix(line[9:], "}")
	case strings.HasPrefix(line, "\\hyphenation{"):
		skipTeXBlock(r.scanner)
	case strings.HasPrefix(line, "\\patterns{"):
		r.inBlock = true
		r.blockLine(line[len("\\patterns{"):])
	}
}

// blockLine queues the patterns of a line inside \patterns{...}.
func (r *PatternReader) blockLine(line string) {
	line = stripComment(line)
	if i := strings.IndexByte(line, '}'); i >= 0 {
		line = line[:i]
		r.inBlock = false
	}
	r.pending = strings.Fields(line)
}

func (r *PatternReader) decodePattern(pattern string) {
	r.sequence = r.sequence[:0]
	r.weights = r.weights[:0]
	wasDigit := false
	for _, ch := range pattern {
		if ch >= '0' && ch <= '9' {
			r.weights = append(r.weights, int(ch-'0'))
			wasDigit = true
			continue
		}
		r.sequence = append(r.sequence, unicode.ToLower(ch))
		if wasDigit {
			wasDigit = false
		} else {
			r.weights = append(r.weights, 0)
		}
	}
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		return line[:i]
	}
	return line
}

func skipTeXBlock(scanner *bufio.Scanner) {
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "}") {
			return
		}
	}
}
