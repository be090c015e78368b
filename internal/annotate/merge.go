// Package annotate converts raw match positions into disjoint, multi-rule
// display segments. It is a rendering-only view: segments are recomputed
// from a scan result and the original text, never stored.
package annotate

import (
	"sort"

	"github.com/promptwarden/promptwarden/internal/rules"
)

// RuleRef identifies one rule attributed to a segment, carrying just enough
// for a renderer to pick the worst-severity color.
type RuleRef struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Severity rules.Severity `json:"severity"`
}

// Segment is a disjoint span of the original text attributed to every rule
// that touched any part of it.
type Segment struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Text  string    `json:"text"`
	Rules []RuleRef `json:"rules"`
}

// WorstSeverity returns the highest severity among the segment's rules.
func (s *Segment) WorstSeverity() rules.Severity {
	worst := rules.Severity("")
	for _, r := range s.Rules {
		if r.Severity.Rank() > worst.Rank() {
			worst = r.Severity
		}
	}
	return worst
}

// ownedPosition pairs a position with its owning rule for the sweep.
type ownedPosition struct {
	start, end int
	rule       RuleRef
}

// Merge collects every (position, owning rule) pair across the matches,
// sorts by start offset, and sweeps once: a position overlapping the last
// open segment extends its bounds to the union and appends the rule if not
// already attributed; otherwise it opens a new segment. The result is a
// minimal disjoint cover whose union equals the union of all contributing
// position ranges.
func Merge(text string, matches []rules.RuleMatch) []Segment {
	var owned []ownedPosition
	for i := range matches {
		m := &matches[i]
		ref := RuleRef{ID: m.RuleID, Name: m.RuleName, Severity: m.Severity}
		for _, p := range m.Positions {
			owned = append(owned, ownedPosition{start: p.Start, end: p.End, rule: ref})
		}
	}
	if len(owned) == 0 {
		return nil
	}

	sort.SliceStable(owned, func(i, j int) bool {
		if owned[i].start != owned[j].start {
			return owned[i].start < owned[j].start
		}
		return owned[i].end < owned[j].end
	})

	var segments []Segment
	for _, op := range owned {
		if len(segments) > 0 {
			last := &segments[len(segments)-1]
			if op.start < last.End && op.end > last.Start {
				if op.start < last.Start {
					last.Start = op.start
				}
				if op.end > last.End {
					last.End = op.end
				}
				if !attributed(last.Rules, op.rule.ID) {
					last.Rules = append(last.Rules, op.rule)
				}
				continue
			}
		}
		segments = append(segments, Segment{
			Start: op.start,
			End:   op.end,
			Rules: []RuleRef{op.rule},
		})
	}

	for i := range segments {
		segments[i].Text = text[segments[i].Start:segments[i].End]
	}
	return segments
}

func attributed(refs []RuleRef, id string) bool {
	for _, r := range refs {
		if r.ID == id {
			return true
		}
	}
	return false
}
