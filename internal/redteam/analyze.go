package redteam

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/promptwarden/promptwarden/internal/heuristics"
	"github.com/promptwarden/promptwarden/internal/rules"
)

const (
	// A category is vulnerable when more than half its attacks bypassed.
	vulnerableBypassRate = 0.5

	// Phrase mining keeps n-grams seen in at least this many of a
	// technique's bypassed prompts.
	minPhraseSupport   = 2
	suggestedRulePts   = 20
	criticalFindingPts = 15
)

var phraseStopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "in": true, "is": true,
	"it": true, "its": true, "of": true, "on": true, "or": true,
	"that": true, "the": true, "this": true, "to": true, "was": true,
	"were": true, "will": true, "with": true, "you": true, "your": true,
}

// analyze folds test results into the final Run: per-category findings,
// suggested rules mined from bypass phrasing, and the report.
func analyze(runID string, startedAt time.Time, results []Result) *Run {
	bypasses := 0
	for i := range results {
		if results[i].BypassedDetection {
			bypasses++
		}
	}
	rate := 0.0
	if len(results) > 0 {
		rate = float64(bypasses) / float64(len(results))
	}

	findings := categoryFindings(results)
	suggested := suggestRules(results)
	report := buildReport(rate, findings, suggested)

	return &Run{
		ID:                   runID,
		StartedAt:            startedAt,
		CompletedAt:          time.Now().UTC(),
		TotalAttacks:         len(results),
		BypassCount:          bypasses,
		BypassRate:           rate,
		Results:              results,
		VulnerableCategories: findings,
		SuggestedRules:       suggested,
		Report:               report,
	}
}

// categoryFindings groups results by target category (falling back to the
// technique when none was set) and keeps the groups whose bypass rate
// crosses the vulnerability line.
func categoryFindings(results []Result) []CategoryFinding {
	type tally struct{ attacks, bypasses int }
	tallies := make(map[string]*tally)
	var order []string

	for i := range results {
		cat := results[i].Attack.TargetCategory
		if cat == "" {
			cat = results[i].Attack.Technique
		}
		t, ok := tallies[cat]
		if !ok {
			t = &tally{}
			tallies[cat] = t
			order = append(order, cat)
		}
		t.attacks++
		if results[i].BypassedDetection {
			t.bypasses++
		}
	}

	var findings []CategoryFinding
	for _, cat := range order {
		t := tallies[cat]
		rate := float64(t.bypasses) / float64(t.attacks)
		if rate <= vulnerableBypassRate {
			continue
		}
		severity := rules.SeverityHigh
		if rate >= 0.75 {
			severity = rules.SeverityCritical
		}
		findings = append(findings, CategoryFinding{
			Category:   cat,
			Attacks:    t.attacks,
			Bypasses:   t.bypasses,
			BypassRate: rate,
			Severity:   severity,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].BypassRate > findings[j].BypassRate
	})
	return findings
}

// phraseCount tracks which distinct bypassed attacks contain a phrase.
type phraseCount struct {
	phrase  string
	attacks []string
}

// suggestRules mines bigrams and trigrams from each technique's bypassed
// prompts and emits one disabled keyword-rule candidate per technique; the
// technique's recurring phrases become the candidate's keyword set and its
// bypass count drives severity and confidence. Suggestions are advice for a
// human reviewer, never auto-applied.
func suggestRules(results []Result) []SuggestedRule {
	groups := make(map[string][]*Result)
	var order []string

	for i := range results {
		if !results[i].BypassedDetection {
			continue
		}
		technique := results[i].Attack.Technique
		if _, ok := groups[technique]; !ok {
			order = append(order, technique)
		}
		groups[technique] = append(groups[technique], &results[i])
	}

	var suggestions []SuggestedRule
	for _, technique := range order {
		bypassed := groups[technique]

		counts := make(map[string]*phraseCount)
		for _, r := range bypassed {
			seen := make(map[string]bool)
			for _, phrase := range ngramPhrases(r.Attack.PromptText) {
				if seen[phrase] {
					continue
				}
				seen[phrase] = true
				pc, ok := counts[phrase]
				if !ok {
					pc = &phraseCount{phrase: phrase}
					counts[phrase] = pc
				}
				pc.attacks = append(pc.attacks, r.Attack.ID)
			}
		}

		var recurring []*phraseCount
		for _, pc := range counts {
			if len(pc.attacks) >= minPhraseSupport {
				recurring = append(recurring, pc)
			}
		}
		if len(recurring) == 0 {
			continue
		}
		sort.SliceStable(recurring, func(i, j int) bool {
			if len(recurring[i].attacks) != len(recurring[j].attacks) {
				return len(recurring[i].attacks) > len(recurring[j].attacks)
			}
			return recurring[i].phrase < recurring[j].phrase
		})

		keywords := make([]string, 0, len(recurring))
		caught := make(map[string]bool)
		var catches []string
		for _, pc := range recurring {
			keywords = append(keywords, pc.phrase)
			for _, id := range pc.attacks {
				if !caught[id] {
					caught[id] = true
					catches = append(catches, id)
				}
			}
		}

		n := len(bypassed)
		severity := rules.SeverityMedium
		switch {
		case n >= 5:
			severity = rules.SeverityCritical
		case n >= 3:
			severity = rules.SeverityHigh
		}
		confidence := n * suggestedRulePts
		if confidence > 100 {
			confidence = 100
		}

		suggestions = append(suggestions, SuggestedRule{
			Rule: rules.DetectionRule{
				ID:       fmt.Sprintf("suggested-%s", strings.ReplaceAll(technique, "_", "-")),
				Name:     fmt.Sprintf("Recurring %s bypass phrases", technique),
				Type:     rules.TypeKeyword,
				Severity: severity,
				Category: categoryForTechnique(technique),
				Enabled:  false,
				Keyword:  &rules.KeywordParams{Keywords: keywords},
			},
			CatchesAttacks: catches,
			Confidence:     confidence,
			Rationale: fmt.Sprintf("%d recurring phrases mined from %d bypassed %s attacks",
				len(keywords), n, technique),
		})
	}
	return suggestions
}

// ngramPhrases yields the bigrams and trigrams of a prompt, lowercased,
// skipping any n-gram made entirely of stopwords.
func ngramPhrases(text string) []string {
	words := heuristics.Words(text)
	var phrases []string
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := words[i : i+n]
			allStop := true
			for _, w := range gram {
				if !phraseStopwords[w] {
					allStop = false
					break
				}
			}
			if allStop {
				continue
			}
			phrases = append(phrases, strings.Join(gram, " "))
		}
	}
	return phrases
}

func categoryForTechnique(technique string) string {
	switch technique {
	case TechniqueRolePlay:
		return rules.CategoryJailbreak
	case TechniqueInstructionOverride:
		return rules.CategoryInstructionOverride
	case TechniqueEncodingSmuggling:
		return rules.CategoryEncodingObfuscation
	case TechniqueAuthorityImpersonation:
		return rules.CategoryAuthorityImpersonation
	case TechniqueContextFlooding:
		return rules.CategoryStructural
	case TechniqueEmotionalManipulation:
		return rules.CategoryLinguistic
	default:
		return rules.CategoryJailbreak
	}
}

// buildReport scores the overall posture and ranks remediation steps. The
// score starts at the bypass percentage and climbs for each critical
// finding; higher means more exposed.
func buildReport(bypassRate float64, findings []CategoryFinding, suggested []SuggestedRule) Report {
	score := int(bypassRate * 100)
	for _, f := range findings {
		if f.Severity == rules.SeverityCritical {
			score += criticalFindingPts
		}
	}
	if score > 100 {
		score = 100
	}

	var actions []PriorityAction
	for _, f := range findings {
		actions = append(actions, PriorityAction{
			Severity: f.Severity,
			Action: fmt.Sprintf("Harden %s coverage: %d of %d attacks bypassed (%.0f%%)",
				f.Category, f.Bypasses, f.Attacks, f.BypassRate*100),
		})
	}
	for _, s := range suggested {
		actions = append(actions, PriorityAction{
			Severity: s.Rule.Severity,
			Action:   fmt.Sprintf("Review suggested rule %s (%s)", s.Rule.ID, s.Rationale),
		})
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Severity.Rank() > actions[j].Severity.Rank()
	})

	return Report{
		OverallScore:    score,
		BypassRate:      bypassRate,
		PriorityActions: actions,
	}
}
