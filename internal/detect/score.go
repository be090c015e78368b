package detect

import (
	"math"

	"github.com/promptwarden/promptwarden/internal/rules"
)

const (
	criticalMatchBonus = 30
	multipleHighBonus  = 20
	// MaxConfidence is the scoring ceiling; the log dampening saturates
	// certainty well before 100%.
	MaxConfidence = 99
)

// Verdict is the scalar outcome of scoring a match set.
type Verdict struct {
	Confidence int
	IsPositive bool
}

// Score reduces a match set and a threshold to a confidence and verdict.
//
// Each match contributes its ConfidenceImpact (weight override or severity
// default, plus the per-rule multi-match bonus computed by the evaluator).
// Cross-rule bonuses: +30 if any critical rule matched, +20 if two or more
// high-severity rules matched. The total is dampened through
// min(99, round(50 + 50*log10(1 + total/50))): confidence rises quickly
// from a single weak signal but saturates under redundant evidence.
//
// A threshold of 0 disables filtering: every result, including an empty
// match set at confidence 0, satisfies confidence >= threshold.
func Score(matches []rules.RuleMatch, threshold int) Verdict {
	total := 0
	criticalSeen := false
	highCount := 0
	for i := range matches {
		total += matches[i].ConfidenceImpact
		switch matches[i].Severity {
		case rules.SeverityCritical:
			criticalSeen = true
		case rules.SeverityHigh:
			highCount++
		}
	}
	if criticalSeen {
		total += criticalMatchBonus
	}
	if highCount >= 2 {
		total += multipleHighBonus
	}

	confidence := 0
	if total > 0 {
		confidence = int(math.Round(50 + 50*math.Log10(1+float64(total)/50)))
		if confidence > MaxConfidence {
			confidence = MaxConfidence
		}
	}
	return Verdict{
		Confidence: confidence,
		IsPositive: confidence >= threshold,
	}
}
