package wordscan

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Word is one entry of a .dic file.
type Word struct {
	Line  int // 1-based line number
	Text  string
	Flags string
}

// ReadDic reads all entries of a .dic file.
func ReadDic(r io.Reader) ([]Word, error) {
	var words []Word
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
			if _, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
				continue // word count
			}
		}
		if w, ok := parseEntry(text); ok {
			w.Line = line
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// parseEntry splits a .dic line into word and flags. A slash escaped by a
// backslash belongs to the word.
func parseEntry(line string) (Word, bool) {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		line = line[:i] // morphological fields
	}
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return Word{}, false
	}
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '/':
			sb.WriteByte('/')
			i++
		case line[i] == '/' && i > 0:
			return Word{Text: sb.String(), Flags: line[i+1:]}, true
		default:
			sb.WriteByte(line[i])
		}
	}
	return Word{Text: sb.String()}, true
}
