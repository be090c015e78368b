package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Category ids used by the default rule set and the compound-threat table.
const (
	CategoryInstructionOverride    = "instruction_override"
	CategoryPromptExtraction       = "prompt_extraction"
	CategoryJailbreak              = "jailbreak"
	CategoryAuthorityImpersonation = "authority_impersonation"
	CategoryEncodingObfuscation    = "encoding_obfuscation"
	CategoryDataExfiltration       = "data_exfiltration"
	CategoryStructural             = "structural"
	CategoryStatistical            = "statistical"
	CategoryLinguistic             = "linguistic"
)

// DefaultRules returns the built-in rule set. Every rule here passes
// Validate; the set is copied so callers can toggle or edit rules without
// affecting other holders.
func DefaultRules() []DetectionRule {
	defaults := []DetectionRule{
		{
			ID:          "kw-instruction-override",
			Name:        "Instruction override phrases",
			Description: "Direct attempts to supersede or cancel prior instructions",
			Type:        TypeKeyword,
			Severity:    SeverityHigh,
			Category:    CategoryInstructionOverride,
			Enabled:     true,
			Keyword: &KeywordParams{Keywords: []string{
				"ignore all previous instructions",
				"ignore previous instructions",
				"disregard your instructions",
				"forget your instructions",
				"override your instructions",
				"your new instructions are",
			}},
		},
		{
			ID:          "kw-prompt-extraction",
			Name:        "System prompt extraction phrases",
			Description: "Requests to disclose hidden or system-level instructions",
			Type:        TypeKeyword,
			Severity:    SeverityHigh,
			Category:    CategoryPromptExtraction,
			Enabled:     true,
			Keyword: &KeywordParams{Keywords: []string{
				"system prompt",
				"reveal your instructions",
				"show me your prompt",
				"your hidden instructions",
				"repeat the words above",
			}},
		},
		{
			ID:          "kw-jailbreak-persona",
			Name:        "Jailbreak persona phrases",
			Description: "Known unrestricted-persona and filter-removal phrasing",
			Type:        TypeKeyword,
			Severity:    SeverityCritical,
			Category:    CategoryJailbreak,
			Enabled:     true,
			Keyword: &KeywordParams{Keywords: []string{
				"do anything now",
				"developer mode",
				"no restrictions apply",
				"free of all restrictions",
				"without any safety limits",
			}},
		},
		{
			ID:          "kw-exfiltration",
			Name:        "Exfiltration phrases",
			Description: "Requests to move conversation or secret data elsewhere",
			Type:        TypeKeyword,
			Severity:    SeverityMedium,
			Category:    CategoryDataExfiltration,
			Enabled:     true,
			Keyword: &KeywordParams{Keywords: []string{
				"send the conversation to",
				"post this conversation",
				"exfiltrate",
				"forward everything above to",
			}},
		},
		{
			ID:          "re-unrestricted-persona",
			Name:        "Unrestricted persona adoption",
			Description: "Role reassignment into an unmoderated or amoral persona",
			Type:        TypeRegex,
			Severity:    SeverityCritical,
			Category:    CategoryJailbreak,
			Enabled:     true,
			Regex: &RegexParams{
				Pattern: `you\s+are\s+now\s+(an?\s+)?(unrestricted|unfiltered|amoral|uncensored|jailbroken)`,
				Flags:   "i",
			},
		},
		{
			ID:          "re-context-recall",
			Name:        "Context recall probe",
			Description: "Asks the model to replay text preceding the user turn",
			Type:        TypeRegex,
			Severity:    SeverityHigh,
			Category:    CategoryPromptExtraction,
			Enabled:     true,
			Regex: &RegexParams{
				Pattern: `repeat\s+(everything|all|the\s+(text|words))\s+(above|before|preceding)`,
				Flags:   "i",
			},
		},
		{
			ID:          "re-authority-claim",
			Name:        "Authority claim",
			Description: "Speaker claims a privileged role over the assistant",
			Type:        TypeRegex,
			Severity:    SeverityMedium,
			Category:    CategoryAuthorityImpersonation,
			Enabled:     true,
			Regex: &RegexParams{
				Pattern: `i\s+am\s+(your\s+)?(an?\s+)?(developer|administrator|admin|creator|supervisor|engineer)`,
				Flags:   "i",
			},
		},
		{
			ID:          "re-hidden-directive",
			Name:        "Bracketed hidden directive",
			Description: "Inline [SYSTEM:]/[ADMIN:] style command framing",
			Type:        TypeRegex,
			Severity:    SeverityHigh,
			Category:    CategoryInstructionOverride,
			Enabled:     true,
			Regex: &RegexParams{
				Pattern: `\[(system|admin|hidden|root)\s*:\s*[^\]]+\]`,
				Flags:   "i",
			},
		},
		{
			ID:          "enc-base64-payload",
			Name:        "Base64 payload",
			Description: "Long base64-looking run that may smuggle instructions",
			Type:        TypeEncoding,
			Severity:    SeverityMedium,
			Category:    CategoryEncodingObfuscation,
			Enabled:     true,
			Encoding:    &EncodingParams{MinLength: 24, Schemes: []string{"base64"}},
		},
		{
			ID:          "enc-hex-payload",
			Name:        "Hex payload",
			Description: "Long hexadecimal run that may smuggle instructions",
			Type:        TypeEncoding,
			Severity:    SeverityMedium,
			Category:    CategoryEncodingObfuscation,
			Enabled:     true,
			Encoding:    &EncodingParams{MinLength: 32, Schemes: []string{"hex"}},
		},
		{
			ID:          "struct-delimiter-frame",
			Name:        "Delimiter framing",
			Description: "Markup or fence constructs framing injected content",
			Type:        TypeStructural,
			Severity:    SeverityMedium,
			Category:    CategoryStructural,
			Enabled:     true,
			Structural:  &StructuralParams{MinClasses: 2},
		},
		{
			ID:          "heur-entropy",
			Name:        "High-entropy regions",
			Description: "Windowed Shannon entropy indicative of obfuscated payloads",
			Type:        TypeHeuristic,
			Severity:    SeverityMedium,
			Category:    CategoryStatistical,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "entropy"},
		},
		{
			ID:          "heur-imperative-density",
			Name:        "Imperative verb density",
			Description: "Unusually command-heavy wording",
			Type:        TypeHeuristic,
			Severity:    SeverityMedium,
			Category:    CategoryStatistical,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "imperative_density"},
		},
		{
			ID:          "heur-nested-delimiters",
			Name:        "Nested delimiter classes",
			Description: "Several distinct delimiter classes in one prompt",
			Type:        TypeHeuristic,
			Severity:    SeverityMedium,
			Category:    CategoryStatistical,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "nested_delimiters"},
		},
		{
			ID:          "heur-script-mixing",
			Name:        "Unicode script mixing",
			Description: "Homoglyph-style mixing of Unicode scripts inside words",
			Type:        TypeHeuristic,
			Severity:    SeverityHigh,
			Category:    CategoryStatistical,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "script_mixing"},
		},
		{
			ID:          "heur-sentiment-shift",
			Name:        "Negative sentiment pressure",
			Description: "Strongly negative emotional framing used as leverage",
			Type:        TypeHeuristic,
			Severity:    SeverityMedium,
			Category:    CategoryLinguistic,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "sentiment_shift"},
		},
		{
			ID:          "heur-pos-imperative",
			Name:        "Imperative sentence openings",
			Description: "High share of sentences opening with a command verb",
			Type:        TypeHeuristic,
			Severity:    SeverityMedium,
			Category:    CategoryLinguistic,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "pos_imperative"},
		},
		{
			ID:          "heur-entity-impersonation",
			Name:        "Authority entity impersonation",
			Description: "Authority entity mentioned together with impersonation context",
			Type:        TypeHeuristic,
			Severity:    SeverityHigh,
			Category:    CategoryAuthorityImpersonation,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "entity_impersonation"},
		},
		{
			ID:          "heur-sentence-structure",
			Name:        "Staccato sentence structure",
			Description: "Bursts of short verb-initial sentences typical of injected command lists",
			Type:        TypeHeuristic,
			Severity:    SeverityLow,
			Category:    CategoryLinguistic,
			Enabled:     true,
			Heuristic:   &HeuristicParams{Ref: "sentence_structure"},
		},
	}

	out := make([]DetectionRule, len(defaults))
	copy(out, defaults)
	return out
}

// DefaultCategories returns the built-in category groupings, ordered from
// most to least directly harmful.
func DefaultCategories() []RuleCategory {
	byCategory := make(map[string][]string)
	for _, r := range DefaultRules() {
		byCategory[r.Category] = append(byCategory[r.Category], r.ID)
	}

	ordered := []struct {
		id, name, description string
	}{
		{CategoryInstructionOverride, "Instruction override", "Attempts to replace or cancel prior instructions"},
		{CategoryJailbreak, "Jailbreak", "Persona and filter-removal attacks"},
		{CategoryPromptExtraction, "Prompt extraction", "System prompt and context disclosure attempts"},
		{CategoryAuthorityImpersonation, "Authority impersonation", "Privileged-role and trusted-entity claims"},
		{CategoryEncodingObfuscation, "Encoding obfuscation", "Encoded or smuggled payloads"},
		{CategoryDataExfiltration, "Data exfiltration", "Attempts to move conversation data elsewhere"},
		{CategoryStructural, "Structural", "Layout and markup framing anomalies"},
		{CategoryStatistical, "Statistical", "Whole-text statistical signals"},
		{CategoryLinguistic, "Linguistic", "Sentiment, part-of-speech and sentence-shape signals"},
	}

	categories := make([]RuleCategory, 0, len(ordered))
	for _, c := range ordered {
		categories = append(categories, RuleCategory{
			ID:          c.id,
			Name:        c.name,
			Description: c.description,
			RuleIDs:     byCategory[c.id],
		})
	}
	return categories
}

// Enabled filters a rule set down to its enabled rules.
func Enabled(set []DetectionRule) []DetectionRule {
	out := make([]DetectionRule, 0, len(set))
	for _, r := range set {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

// Fingerprint returns a stable identity string for a rule set, used for
// scan-result cache keying. It covers id, enabled flag and weight of every
// rule in order; any edit that changes scan behavior changes the fingerprint.
func Fingerprint(set []DetectionRule) string {
	h := sha256.New()
	for _, r := range set {
		fmt.Fprintf(h, "%s|%t|%d\n", r.ID, r.Enabled, r.Weight)
		switch {
		case r.Keyword != nil:
			fmt.Fprintf(h, "kw:%s\n", strings.Join(r.Keyword.Keywords, "\x00"))
		case r.Regex != nil:
			fmt.Fprintf(h, "re:%s/%s\n", r.Regex.Pattern, r.Regex.Flags)
		case r.Heuristic != nil:
			fmt.Fprintf(h, "h:%s\n", r.Heuristic.Ref)
		case r.Encoding != nil:
			fmt.Fprintf(h, "enc:%d:%s\n", r.Encoding.MinLength, strings.Join(r.Encoding.Schemes, ","))
		case r.Structural != nil:
			fmt.Fprintf(h, "st:%d\n", r.Structural.MinClasses)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
