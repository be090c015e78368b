package rules

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// RuleType identifies which matcher a rule is dispatched to.
type RuleType string

const (
	TypeKeyword    RuleType = "keyword"
	TypeRegex      RuleType = "regex"
	TypeHeuristic  RuleType = "heuristic"
	TypeEncoding   RuleType = "encoding"
	TypeStructural RuleType = "structural"
)

// Severity classifies how dangerous a matched rule is considered.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// BaseScore returns the default confidence contribution for the severity.
func (s Severity) BaseScore() int {
	switch s {
	case SeverityLow:
		return 10
	case SeverityMedium:
		return 25
	case SeverityHigh:
		return 40
	case SeverityCritical:
		return 60
	default:
		return 0
	}
}

// Rank orders severities from low (1) to critical (4). Unknown severities
// rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Valid reports whether the severity is one of the four known levels.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// KeywordParams holds the payload of a keyword rule.
type KeywordParams struct {
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// RegexParams holds the payload of a regex rule. The pattern is compiled
// once at validation time; a rule whose pattern does not compile is rejected
// at authoring time and never reaches a scan.
type RegexParams struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Flags   string `yaml:"flags,omitempty" json:"flags,omitempty"`

	compiled *regexp.Regexp
}

// Compile builds the matcher from Pattern and Flags. Supported flags are
// "i" (case-insensitive), "m" (multi-line) and "s" (dot matches newline),
// in any combination.
func (p *RegexParams) Compile() error {
	if p.Pattern == "" {
		return fmt.Errorf("regex rule has empty pattern")
	}
	for _, f := range p.Flags {
		if f != 'i' && f != 'm' && f != 's' {
			return fmt.Errorf("unsupported regex flag %q", string(f))
		}
	}
	pattern := p.Pattern
	if p.Flags != "" {
		pattern = "(?" + p.Flags + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", p.Pattern, err)
	}
	p.compiled = re
	return nil
}

// Matcher returns the compiled regexp, compiling on first use if the rule
// was constructed directly rather than through Validate.
func (p *RegexParams) Matcher() (*regexp.Regexp, error) {
	if p.compiled == nil {
		if err := p.Compile(); err != nil {
			return nil, err
		}
	}
	return p.compiled, nil
}

// HeuristicParams references a registered heuristic by stable id. Rules
// serialize only the id so they can cross process boundaries; the function
// itself is resolved from the registry at evaluation time.
type HeuristicParams struct {
	Ref string `yaml:"ref" json:"ref"`
}

// EncodingParams tunes the encoded-span detector.
type EncodingParams struct {
	// MinLength is the minimum span length (in characters) before an
	// encoded-looking run is reported. Guards against short hits like "cafe".
	MinLength int      `yaml:"min_length" json:"minLength"`
	Schemes   []string `yaml:"schemes" json:"schemes"` // "base64", "hex"
}

// StructuralParams tunes the layout-anomaly detector.
type StructuralParams struct {
	// MinClasses is the number of distinct framing constructs that must be
	// present before the rule fires.
	MinClasses int `yaml:"min_classes" json:"minClasses"`
}

// DetectionRule is a closed tagged union over the five rule kinds. Exactly
// one variant payload must be set, and it must match Type.
type DetectionRule struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Type        RuleType `yaml:"type" json:"type"`
	Severity    Severity `yaml:"severity" json:"severity"`
	Category    string   `yaml:"category,omitempty" json:"category,omitempty"`
	Enabled     bool     `yaml:"enabled" json:"enabled"`

	// Weight, when positive, replaces the severity-derived base score.
	Weight int `yaml:"weight,omitempty" json:"weight,omitempty"`

	Keyword    *KeywordParams    `yaml:"keyword,omitempty" json:"keyword,omitempty"`
	Regex      *RegexParams      `yaml:"regex,omitempty" json:"regex,omitempty"`
	Heuristic  *HeuristicParams  `yaml:"heuristic,omitempty" json:"heuristic,omitempty"`
	Encoding   *EncodingParams   `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Structural *StructuralParams `yaml:"structural,omitempty" json:"structural,omitempty"`
}

// BaseScore returns the rule's confidence contribution before bonuses:
// the explicit weight override when set, else the severity default.
func (r *DetectionRule) BaseScore() int {
	if r.Weight > 0 {
		return r.Weight
	}
	return r.Severity.BaseScore()
}

// Validate checks the rule's shape and compiles any regex payload. This is
// the authoring-time gate: rules that pass Validate never produce
// construction errors during a scan.
func (r *DetectionRule) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("rule has empty id")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("rule %s has empty name", r.ID)
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("rule %s has invalid severity %q", r.ID, r.Severity)
	}
	if r.Weight < 0 {
		return fmt.Errorf("rule %s has negative weight", r.ID)
	}

	payloads := 0
	if r.Keyword != nil {
		payloads++
	}
	if r.Regex != nil {
		payloads++
	}
	if r.Heuristic != nil {
		payloads++
	}
	if r.Encoding != nil {
		payloads++
	}
	if r.Structural != nil {
		payloads++
	}
	if payloads != 1 {
		return fmt.Errorf("rule %s must carry exactly one variant payload, has %d", r.ID, payloads)
	}

	switch r.Type {
	case TypeKeyword:
		if r.Keyword == nil {
			return fmt.Errorf("rule %s: type keyword requires keyword payload", r.ID)
		}
		if len(r.Keyword.Keywords) == 0 {
			return fmt.Errorf("rule %s has no keywords", r.ID)
		}
		for _, k := range r.Keyword.Keywords {
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("rule %s has an empty keyword", r.ID)
			}
		}
	case TypeRegex:
		if r.Regex == nil {
			return fmt.Errorf("rule %s: type regex requires regex payload", r.ID)
		}
		if err := r.Regex.Compile(); err != nil {
			return fmt.Errorf("rule %s: %w", r.ID, err)
		}
	case TypeHeuristic:
		if r.Heuristic == nil {
			return fmt.Errorf("rule %s: type heuristic requires heuristic payload", r.ID)
		}
		if strings.TrimSpace(r.Heuristic.Ref) == "" {
			return fmt.Errorf("rule %s has empty heuristic ref", r.ID)
		}
	case TypeEncoding:
		if r.Encoding == nil {
			return fmt.Errorf("rule %s: type encoding requires encoding payload", r.ID)
		}
		if len(r.Encoding.Schemes) == 0 {
			return fmt.Errorf("rule %s has no encoding schemes", r.ID)
		}
	case TypeStructural:
		if r.Structural == nil {
			return fmt.Errorf("rule %s: type structural requires structural payload", r.ID)
		}
	default:
		return fmt.Errorf("rule %s has unknown type %q", r.ID, r.Type)
	}
	return nil
}

// RuleCategory is a named, ordered group of rules. Custom categories are
// user-defined and deletable as a unit.
type RuleCategory struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	RuleIDs     []string `yaml:"rule_ids" json:"ruleIds"`
	Custom      bool     `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// MatchPosition locates one matched span in the original text.
// Invariant: 0 <= Start < End <= len(source) and Text is the exact,
// case-preserving substring source[Start:End].
type MatchPosition struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

// NewPosition builds a MatchPosition for source[start:end], deriving line
// and column (both 1-based) from the preceding text. Text preserves the
// original casing exactly.
func NewPosition(source string, start, end int) MatchPosition {
	before := source[:start]
	line := strings.Count(before, "\n") + 1
	column := start - strings.LastIndexByte(before, '\n')
	return MatchPosition{
		Start:  start,
		End:    end,
		Line:   line,
		Column: column,
		Text:   source[start:end],
	}
}

// RuleMatch records one rule that fired during a scan. It is immutable and
// owned by the ScanResult that produced it.
type RuleMatch struct {
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Type     RuleType `json:"type"`
	Severity Severity `json:"severity"`
	Category string   `json:"category,omitempty"`

	// Matches holds the raw matched substrings, Positions their locations.
	// Heuristic matches may carry no positions.
	Matches   []string        `json:"matches,omitempty"`
	Positions []MatchPosition `json:"positions,omitempty"`

	// ConfidenceImpact is the score this rule contributed: base score plus
	// the per-rule multi-match bonus.
	ConfidenceImpact int    `json:"confidenceImpact"`
	Details          string `json:"details,omitempty"`
}

// HeuristicResult is the optional outcome of a whole-text heuristic.
type HeuristicResult struct {
	Matched    bool
	Details    string
	Confidence int
	Positions  []MatchPosition
}

// RuleFailure records a rule that was skipped because its matcher or
// heuristic failed. Failures never abort a scan.
type RuleFailure struct {
	RuleID string `json:"ruleId"`
	Reason string `json:"reason"`
}

// CompoundThreat is a higher-level finding derived from co-occurring rule
// categories in a single scan. It is never stored apart from its ScanResult.
type CompoundThreat struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Severity            Severity `json:"severity"`
	Description         string   `json:"description"`
	TriggeredCategories []string `json:"triggeredCategories"`
}

// ScanResult is the outcome of one scan call. It is a pure value: re-scanning
// identical inputs yields identical content apart from Timestamp.
type ScanResult struct {
	IsPositive        bool             `json:"isPositive"`
	Confidence        int              `json:"confidence"` // 0..99
	MatchedRules      []RuleMatch      `json:"matchedRules"`
	TotalRulesChecked int              `json:"totalRulesChecked"`
	Reasons           []string         `json:"reasons"`
	CompoundThreats   []CompoundThreat `json:"compoundThreats,omitempty"`
	Timestamp         time.Time        `json:"timestamp"`
}
