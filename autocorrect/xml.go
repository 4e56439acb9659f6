package autocorrect

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyEntry flags a block without an incorrect form.
var ErrEmptyEntry = errors.New("autocorrect entry without incorrect form")

const blockListNS = "http://openoffice.org/2001/block-list"

// Entry is one replacement rule.
type Entry struct {
	Incorrect string
	Correct   string
}

func (e Entry) String() string {
	return e.Incorrect + " -> " + e.Correct
}

type blockList struct {
	XMLName xml.Name `xml:"block-list"`
	Blocks  []block  `xml:"block"`
}

type block struct {
	Abbreviated string `xml:"abbreviated-name,attr"`
	Name        string `xml:"name,attr"`
}

// ReadXML reads a DocumentList.xml block list. Entries keep document order.
func ReadXML(r io.Reader) ([]Entry, error) {
	var list blockList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("autocorrect block list: %w", err)
	}
	entries := make([]Entry, 0, len(list.Blocks))
	for i, b := range list.Blocks {
		e := normalize(Entry{Incorrect: b.Abbreviated, Correct: b.Name})
		if e.Incorrect == "" {
			return nil, fmt.Errorf("block %d: %w", i+1, ErrEmptyEntry)
		}
		entries = append(entries, e)
	}
	tracer().Debugf("read %d autocorrect entries", len(entries))
	return entries, nil
}

// WriteXML writes entries as a DocumentList.xml block list.
func WriteXML(w io.Writer, entries []Entry) error {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, "<block-list:block-list xmlns:block-list=%q>\n", blockListNS)
	for _, e := range entries {
		sb.WriteString(`  <block-list:block block-list:abbreviated-name="`)
		xml.EscapeText(&sb, []byte(e.Incorrect))
		sb.WriteString(`" block-list:name="`)
		xml.EscapeText(&sb, []byte(e.Correct))
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</block-list:block-list>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func normalize(e Entry) Entry {
	return Entry{
		Incorrect: norm.NFC.String(strings.TrimSpace(e.Incorrect)),
		Correct:   norm.NFC.String(strings.TrimSpace(e.Correct)),
	}
}
