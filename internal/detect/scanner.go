package detect

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/rules"
)

// ResultCache is the optional scan-result cache. A miss is reported by the
// boolean, never by an error; cache failures must not fail scans.
type ResultCache interface {
	Get(ctx context.Context, key string) (*rules.ScanResult, bool)
	Set(ctx context.Context, key string, result *rules.ScanResult)
	Key(text, ruleFingerprint string, threshold int) string
}

// Scanner is the scan entry point: evaluate, score, derive compound
// threats, assemble the result. The rule set and threshold are explicit on
// every call; the scanner keeps no ambient detection state.
type Scanner struct {
	evaluator *Evaluator
	cache     ResultCache
	logger    *zap.Logger
}

// NewScanner builds a scanner. cache may be nil.
func NewScanner(evaluator *Evaluator, cache ResultCache, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{evaluator: evaluator, cache: cache, logger: logger}
}

// Evaluator exposes the underlying evaluator, mainly for rule validation.
func (s *Scanner) Evaluator() *Evaluator {
	return s.evaluator
}

// Scan runs the full pipeline over text. The returned result is a pure
// value: identical (text, rules, threshold) inputs produce identical
// matched rules and confidence, timestamp excepted.
func (s *Scanner) Scan(ctx context.Context, text string, set []rules.DetectionRule, threshold int) (*rules.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.Key(text, rules.Fingerprint(set), threshold)
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			s.logger.Debug("Scan cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
	}

	start := time.Now()
	matches, failures := s.evaluator.Evaluate(text, set)
	verdict := Score(matches, threshold)
	threats := DetectCompoundThreats(matches)

	checked := 0
	for i := range set {
		if set[i].Enabled {
			checked++
		}
	}

	result := &rules.ScanResult{
		IsPositive:        verdict.IsPositive,
		Confidence:        verdict.Confidence,
		MatchedRules:      matches,
		TotalRulesChecked: checked,
		Reasons:           buildReasons(matches, threats),
		CompoundThreats:   threats,
		Timestamp:         time.Now().UTC(),
	}

	s.logger.Debug("Scan completed",
		zap.Int("confidence", result.Confidence),
		zap.Bool("positive", result.IsPositive),
		zap.Int("matched_rules", len(matches)),
		zap.Int("skipped_rules", len(failures)),
		zap.Duration("duration", time.Since(start)))

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, result)
	}
	return result, nil
}

// buildReasons renders one human-readable line per matched rule plus one
// per compound threat, in discovery order.
func buildReasons(matches []rules.RuleMatch, threats []rules.CompoundThreat) []string {
	reasons := make([]string, 0, len(matches)+len(threats))
	for i := range matches {
		m := &matches[i]
		switch {
		case m.Details != "":
			reasons = append(reasons, fmt.Sprintf("%s (%s): %s", m.RuleName, m.Severity, m.Details))
		case len(m.Positions) > 0:
			reasons = append(reasons, fmt.Sprintf("%s (%s): %d occurrence(s)", m.RuleName, m.Severity, len(m.Positions)))
		default:
			reasons = append(reasons, fmt.Sprintf("%s (%s)", m.RuleName, m.Severity))
		}
	}
	for _, t := range threats {
		reasons = append(reasons, fmt.Sprintf("Compound threat: %s (%s)", t.Name, t.Severity))
	}
	return reasons
}
