package detect

import (
	"github.com/promptwarden/promptwarden/internal/rules"
)

// compoundPattern describes one co-trigger combination: when matched rules
// span all of the listed categories, the combined finding is emitted.
type compoundPattern struct {
	id          string
	name        string
	severity    rules.Severity
	description string
	categories  []string
}

// compoundPatterns is the configured co-occurrence table. Compound threats
// add narrative to a result; they never change its numeric confidence.
var compoundPatterns = []compoundPattern{
	{
		id:       "compound-obfuscated-takeover",
		name:     "Obfuscated authority takeover",
		severity: rules.SeverityCritical,
		description: "Encoded payload, authority impersonation and instruction " +
			"override in one prompt: a staged attempt to assume control while " +
			"hiding the payload from plain-text review",
		categories: []string{
			rules.CategoryEncodingObfuscation,
			rules.CategoryAuthorityImpersonation,
			rules.CategoryInstructionOverride,
		},
	},
	{
		id:       "compound-encoded-smuggling",
		name:     "Encoded instruction smuggling",
		severity: rules.SeverityHigh,
		description: "Instruction override combined with an encoded payload, " +
			"typically carrying the real directive in the encoded span",
		categories: []string{
			rules.CategoryEncodingObfuscation,
			rules.CategoryInstructionOverride,
		},
	},
	{
		id:       "compound-extraction-override",
		name:     "Override-assisted prompt extraction",
		severity: rules.SeverityHigh,
		description: "Instruction override paired with system prompt extraction: " +
			"the override clears the way for the disclosure request",
		categories: []string{
			rules.CategoryInstructionOverride,
			rules.CategoryPromptExtraction,
		},
	},
	{
		id:       "compound-impersonated-jailbreak",
		name:     "Impersonated jailbreak",
		severity: rules.SeverityHigh,
		description: "Jailbreak persona adoption backed by an authority claim, " +
			"lending the persona switch false legitimacy",
		categories: []string{
			rules.CategoryJailbreak,
			rules.CategoryAuthorityImpersonation,
		},
	},
}

// DetectCompoundThreats inspects the matched-rule set for configured
// category combinations. Emitted threats are ordered by the pattern table
// (most severe combinations first) and are derived views over the scan, not
// independently stored findings.
func DetectCompoundThreats(matches []rules.RuleMatch) []rules.CompoundThreat {
	present := make(map[string]bool)
	for i := range matches {
		if matches[i].Category != "" {
			present[matches[i].Category] = true
		}
	}

	var threats []rules.CompoundThreat
	for _, p := range compoundPatterns {
		all := true
		for _, c := range p.categories {
			if !present[c] {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		threats = append(threats, rules.CompoundThreat{
			ID:                  p.id,
			Name:                p.name,
			Severity:            p.severity,
			Description:         p.description,
			TriggeredCategories: append([]string(nil), p.categories...),
		})
	}
	return threats
}
