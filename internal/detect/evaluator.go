// Package detect implements the rule evaluator, confidence scorer and
// compound-threat detector. Everything here is synchronous and
// side-effect-free over immutable inputs: callers may run scans from many
// goroutines as long as a rule set is not mutated mid-call.
package detect

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/heuristics"
	"github.com/promptwarden/promptwarden/internal/rules"
)

const (
	multiMatchBonusStep = 5
	multiMatchBonusCap  = 20
)

// Evaluator dispatches rules to their matchers and heuristics.
type Evaluator struct {
	registry *heuristics.Registry
	logger   *zap.Logger
}

// NewEvaluator creates an evaluator. A nil registry gets the standard one
// with the built-in lexicon tagger; a nil logger is replaced with a no-op.
func NewEvaluator(registry *heuristics.Registry, logger *zap.Logger) *Evaluator {
	if registry == nil {
		registry = heuristics.NewRegistry(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{registry: registry, logger: logger}
}

// ValidateRules runs authoring-time validation over a rule set, including
// resolution of heuristic refs against the registry. Call this when rules
// are created or loaded, not per scan.
func (e *Evaluator) ValidateRules(set []rules.DetectionRule) error {
	for i := range set {
		r := &set[i]
		if err := r.Validate(); err != nil {
			return err
		}
		if r.Type == rules.TypeHeuristic {
			if _, err := e.registry.Lookup(r.Heuristic.Ref); err != nil {
				return fmt.Errorf("rule %s: %w", r.ID, err)
			}
		}
	}
	return nil
}

// Evaluate runs every enabled rule against text and returns the matches in
// discovery order. A failing matcher or heuristic is isolated: the rule is
// skipped and recorded, never aborting the scan, because heuristics can run
// user-editable or third-party logic.
func (e *Evaluator) Evaluate(text string, set []rules.DetectionRule) ([]rules.RuleMatch, []rules.RuleFailure) {
	var matches []rules.RuleMatch
	var failures []rules.RuleFailure

	for i := range set {
		r := &set[i]
		if !r.Enabled {
			continue
		}
		match, err := e.evaluateRule(text, r)
		if err != nil {
			failures = append(failures, rules.RuleFailure{RuleID: r.ID, Reason: err.Error()})
			e.logger.Warn("Rule skipped",
				zap.String("rule_id", r.ID),
				zap.Error(err))
			continue
		}
		if match != nil {
			matches = append(matches, *match)
		}
	}
	return matches, failures
}

// evaluateRule dispatches one rule by variant. Panics from matcher or
// heuristic code are converted to errors.
func (e *Evaluator) evaluateRule(text string, r *rules.DetectionRule) (match *rules.RuleMatch, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			match = nil
			err = fmt.Errorf("rule %s panicked: %v", r.ID, rec)
		}
	}()

	switch r.Type {
	case rules.TypeKeyword:
		matched, positions := matchKeywords(text, r.Keyword)
		if len(positions) == 0 {
			return nil, nil
		}
		return buildMatch(r, matched, positions, ""), nil

	case rules.TypeRegex:
		matched, positions, err := matchRegex(text, r.Regex)
		if err != nil {
			return nil, err
		}
		if len(positions) == 0 {
			return nil, nil
		}
		return buildMatch(r, matched, positions, ""), nil

	case rules.TypeEncoding:
		matched, positions := matchEncoding(text, r.Encoding)
		if len(positions) == 0 {
			return nil, nil
		}
		return buildMatch(r, matched, positions, ""), nil

	case rules.TypeStructural:
		matched, positions, details := matchStructural(text, r.Structural)
		if len(positions) == 0 {
			return nil, nil
		}
		return buildMatch(r, matched, positions, details), nil

	case rules.TypeHeuristic:
		fn, err := e.registry.Lookup(r.Heuristic.Ref)
		if err != nil {
			return nil, err
		}
		result, err := fn(text)
		if err != nil {
			return nil, fmt.Errorf("heuristic %s: %w", r.Heuristic.Ref, err)
		}
		if result == nil || !result.Matched {
			return nil, nil
		}
		// A heuristic yields one logical match; positions are optional.
		m := buildMatch(r, nil, result.Positions, result.Details)
		return m, nil

	default:
		return nil, fmt.Errorf("rule %s has unknown type %q", r.ID, r.Type)
	}
}

// buildMatch assembles a RuleMatch with its confidence impact: the rule's
// base score plus +5 per occurrence beyond the first, capped at +20.
func buildMatch(r *rules.DetectionRule, matched []string, positions []rules.MatchPosition, details string) *rules.RuleMatch {
	occurrences := len(positions)
	if occurrences == 0 {
		occurrences = 1 // position-less heuristic match
	}
	bonus := (occurrences - 1) * multiMatchBonusStep
	if bonus > multiMatchBonusCap {
		bonus = multiMatchBonusCap
	}
	return &rules.RuleMatch{
		RuleID:           r.ID,
		RuleName:         r.Name,
		Type:             r.Type,
		Severity:         r.Severity,
		Category:         r.Category,
		Matches:          matched,
		Positions:        positions,
		ConfidenceImpact: r.BaseScore() + bonus,
		Details:          details,
	}
}
