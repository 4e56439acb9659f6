package ahocorasick

import (
	"unicode"

	"github.com/mtrevisan/Hunspeller-sub002/dat"
)

// Option configures an automaton at construction time.
type Option func(*options)

type options struct {
	caseInsensitive bool
	placement       dat.Placement
}

// WithCaseInsensitive lower-cases keys at build time and every rune of the
// query input before matching.
func WithCaseInsensitive() Option {
	return func(o *options) {
		o.caseInsensitive = true
	}
}

// WithPlacement selects the slot placement strategy of the double-array
// encoder. Placement does not change query results.
func WithPlacement(p dat.Placement) Option {
	return func(o *options) {
		o.placement = p
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fold applies the case mapping rune by rune, so rune offsets are preserved.
func (o options) fold(r rune) rune {
	if o.caseInsensitive {
		return unicode.ToLower(r)
	}
	return r
}

func (o options) runes(key string) []rune {
	runes := []rune(key)
	if o.caseInsensitive {
		for i, r := range runes {
			runes[i] = unicode.ToLower(r)
		}
	}
	return runes
}
