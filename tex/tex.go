package tex

import (
	"bytes"
	"io"

	hyphenate "github.com/mtrevisan/Hunspeller-sub002"
	"github.com/mtrevisan/Hunspeller-sub002/tex/texexceptions"
	"github.com/mtrevisan/Hunspeller-sub002/tex/texpatterns"
)

// LoadDictionary loads a pattern dictionary and an exception list in TeX format.
//
// Please refer to
//
//	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex
//
// for a list of real-world pattern-files.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//
//	dict, err := tex.LoadDictionary("en-us", f)
//
// The input is read into memory once and scanned twice.
func LoadDictionary(name string, reader io.Reader) (*hyphenate.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	dict, err := texpatterns.LoadPatterns(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	err = texexceptions.LoadExceptions(dict, bytes.NewReader(data))
	return dict, err
}
