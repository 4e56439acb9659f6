package texexceptions

import (
	"bufio"
	"errors"
	"io"
	"strings"

	hyphenate "github.com/mtrevisan/Hunspeller-sub002"
)

// ErrUnclosedBlock is returned when input ends inside a \hyphenation block.
var ErrUnclosedBlock = errors.New("unexpected end of file (unclosed \\hyphenation block)")

// Reader streams hyphenation exceptions from TeX \hyphenation{...} blocks.
type Reader struct {
	scanner *bufio.Scanner
	inBlock bool
	pending []string // words left over from the current line
}

// LoadExceptions parses TeX exception data from reader and adds all
// \hyphenation{...} entries to this dictionary.
func LoadExceptions(dict *hyphenate.Dictionary, reader io.Reader) error {
	return dict.LoadExceptions(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, positions), where positions[i]
// is 1 if a hyphen precedes rune i of word.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []int, error) {
	for {
		if len(r.pending) > 0 {
			entry := r.pending[0]
			r.pending = r.pending[1:]
			word, positions := decodeException(entry)
			if word == "" {
				continue
			}
			return word, positions, nil
		}
		if !r.scanner.Scan() {
			break
		}
		line := r.scanner.Text()
		if !r.inBlock {
			switch {
			case strings.HasPrefix(line, "\\patterns{"):
				skipTeXBlock(r.scanner)
			case strings.HasPrefix(line, "\\hyphenation{"):
				r.inBlock = true
				r.blockLine(line[len("\\hyphenation{"):])
			}
			continue
		}
		r.blockLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	if r.inBlock {
		return "", nil, ErrUnclosedBlock
	}
	return "", nil, io.EOF
}

func (r *Reader) blockLine(line string) {
	line = stripComment(line)
	if i := strings.IndexByte(line, '}'); i >= 0 {
		line = line[:i]
		r.inBlock = false
	}
	r.pending = strings.Fields(line)
}

func decodeException(entry string) (string, []int) {
	positions := make([]int, 0, len(entry))
	wasHyphen := false
	for _, ch := range entry {
		if ch == '-' {
			positions = append(positions, 1)
			wasHyphen = true
		} else if wasHyphen {
			wasHyphen = false
		} else {
			positions = append(positions, 0)
		}
	}
	return strings.ReplaceAll(entry, "-", ""), positions
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
