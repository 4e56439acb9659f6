package autocorrect

import (
	"fmt"
	"slices"

	"github.com/mtrevisan/Hunspeller-sub002/ahocorasick"
)

// IssueKind classifies lint findings.
type IssueKind int

const (
	// Duplicate: the incorrect form was already defined by an earlier entry.
	Duplicate IssueKind = iota
	// SelfCorrection: the correction equals the incorrect form.
	SelfCorrection
	// Contained: the incorrect form contains another entry's incorrect form.
	Contained
	// Cascade: the correction contains an incorrect form, so applying the
	// table twice changes the text again.
	Cascade
)

func (k IssueKind) String() string {
	switch k {
	case Duplicate:
		return "duplicate"
	case SelfCorrection:
		return "self-correction"
	case Contained:
		return "contained"
	case Cascade:
		return "cascade"
	}
	return fmt.Sprintf("IssueKind(%d)", int(k))
}

// Issue is one lint finding. Index is the position of Entry in the linted
// list; Other is the conflicting entry, if any.
type Issue struct {
	Kind  IssueKind
	Index int
	Entry Entry
	Other Entry
}

func (i Issue) String() string {
	switch i.Kind {
	case Duplicate, Contained, Cascade:
		return fmt.Sprintf("%d: %s: %s (with %s)", i.Index+1, i.Kind, i.Entry, i.Other)
	}
	return fmt.Sprintf("%d: %s: %s", i.Index+1, i.Kind, i.Entry)
}

// Lint checks entries for duplicates, self corrections, entries contained in
// one another and cascading corrections. Issues are ordered by entry index,
// then by kind.
func Lint(entries []Entry) ([]Issue, error) {
	var issues []Issue
	first := make(map[string]int, len(entries))
	b := ahocorasick.NewBuilder[int]()
	normalized := make([]Entry, len(entries))
	for i, e := range entries {
		e = normalize(e)
		normalized[i] = e
		if j, ok := first[e.Incorrect]; ok {
			issues = append(issues, Issue{Kind: Duplicate, Index: i, Entry: e, Other: normalized[j]})
			continue
		}
		if e.Incorrect == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyEntry)
		}
		first[e.Incorrect] = i
		if err := b.Add(e.Incorrect, i); err != nil {
			return nil, err
		}
	}
	matcher, err := b.Build()
	if err != nil {
		return nil, err
	}
	for i, e := range normalized {
		if first[e.Incorrect] != i {
			continue
		}
		if e.Incorrect == e.Correct {
			issues = append(issues, Issue{Kind: SelfCorrection, Index: i, Entry: e})
		}
		seen := make(map[int]bool)
		for hit := range matcher.All(e.Incorrect) {
			if hit.Value == i || seen[hit.Value] {
				continue
			}
			seen[hit.Value] = true
			issues = append(issues, Issue{Kind: Contained, Index: i, Entry: e, Other: normalized[hit.Value]})
		}
		if e.Incorrect == e.Correct {
			continue
		}
		clear(seen)
		for hit := range matcher.All(e.Correct) {
			if seen[hit.Value] {
				continue
			}
			seen[hit.Value] = true
			issues = append(issues, Issue{Kind: Cascade, Index: i, Entry: e, Other: normalized[hit.Value]})
		}
	}
	slices.SortStableFunc(issues, func(a, b Issue) int {
		if a.Index != b.Index {
			return a.Index - b.Index
		}
		return int(a.Kind) - int(b.Kind)
	})
	tracer().Infof("linted %d autocorrect entries, %d issues", len(entries), len(issues))
	return issues, nil
}
