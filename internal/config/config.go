/*
Package config manages the TOML configuration of dictlint.

	[automaton]
	case_insensitive = false
	placement = "first-fit"

	[scan]
	workers = 0
	forbidden = [
	  ["ß", "use ss"],
	  ["  ", "double space"],
	]

	[hyphenation]
	left_min = 2
	right_min = 2

Keys missing from a file keep their default values.
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"github.com/mtrevisan/Hunspeller-sub002/ahocorasick"
	"github.com/mtrevisan/Hunspeller-sub002/dat"
)

// Config holds the entire config structure
type Config struct {
	Automaton   AutomatonConfig   `toml:"automaton"`
	Scan        ScanConfig        `toml:"scan"`
	Hyphenation HyphenationConfig `toml:"hyphenation"`
}

// AutomatonConfig holds options for every automaton built from user data.
type AutomatonConfig struct {
	CaseInsensitive bool   `toml:"case_insensitive"`
	Placement       string `toml:"placement"`
}

// ScanConfig holds word list scanning options.
type ScanConfig struct {
	Workers   int        `toml:"workers"`
	Forbidden [][]string `toml:"forbidden"` // pairs of substring and reason
}

// HyphenationConfig holds hyphenation options.
type HyphenationConfig struct {
	LeftMin  int `toml:"left_min"`
	RightMin int `toml:"right_min"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Automaton: AutomatonConfig{
			Placement: dat.FirstFit.String(),
		},
		Hyphenation: HyphenationConfig{
			LeftMin:  2,
			RightMin: 2,
		},
	}
}

// LoadConfig decodes a TOML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	md, err := toml.Decode(string(data), config)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks values which cannot be expressed by TOML types.
func (c *Config) Validate() error {
	if _, err := dat.ParsePlacement(c.Automaton.Placement); err != nil {
		return err
	}
	seen := make(map[string]int, len(c.Scan.Forbidden))
	for i, pair := range c.Scan.Forbidden {
		if len(pair) != 2 {
			return fmt.Errorf("scan.forbidden[%d]: want [substring, reason], got %d values", i, len(pair))
		}
		if pair[0] == "" {
			return fmt.Errorf("scan.forbidden[%d]: empty substring", i)
		}
		key := pair[0]
		if c.Automaton.CaseInsensitive {
			key = strings.Map(unicode.ToLower, key)
		}
		if j, dup := seen[key]; dup {
			return fmt.Errorf("scan.forbidden[%d]: %q duplicates scan.forbidden[%d]", i, pair[0], j)
		}
		seen[key] = i
	}
	if c.Hyphenation.LeftMin < 1 || c.Hyphenation.RightMin < 1 {
		return fmt.Errorf("hyphenation: left_min and right_min must be positive")
	}
	return nil
}

// AutomatonOptions translates the [automaton] section.
func (c *Config) AutomatonOptions() ([]ahocorasick.Option, error) {
	placement, err := dat.ParsePlacement(c.Automaton.Placement)
	if err != nil {
		return nil, err
	}
	opts := []ahocorasick.Option{ahocorasick.WithPlacement(placement)}
	if c.Automaton.CaseInsensitive {
		opts = append(opts, ahocorasick.WithCaseInsensitive())
	}
	return opts, nil
}

// Forbidden returns scan.forbidden as a map from substring to reason.
// Validate rejects duplicate substrings, so no reason is lost.
func (c *Config) Forbidden() map[string]string {
	m := make(map[string]string, len(c.Scan.Forbidden))
	for _, pair := range c.Scan.Forbidden {
		if len(pair) == 2 {
			m[pair[0]] = pair[1]
		}
	}
	return m
}
