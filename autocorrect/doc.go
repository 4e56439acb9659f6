/*
Package autocorrect handles autocorrect replacement tables as used by office
suites: a list of entries mapping a common misspelling to its correction.

Tables are read from the DocumentList.xml block list of OpenOffice and
LibreOffice autocorrect archives. A Table answers exact lookups (Correct),
prefix completions (Completions) and rewrites running text (Apply). Lint
reports entries which make a table inconsistent.

All strings are normalized to NFC on the way in.
*/
package autocorrect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictlint.autocorrect'
func tracer() tracing.Trace {
	return tracing.Select("dictlint.autocorrect")
}
