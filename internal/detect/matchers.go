package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/promptwarden/promptwarden/internal/rules"
)

// matchKeywords finds every case-insensitive occurrence of each keyword.
// Positions are computed against the original text so the matched substring
// preserves its original casing exactly.
func matchKeywords(text string, params *rules.KeywordParams) ([]string, []rules.MatchPosition) {
	var matched []string
	var positions []rules.MatchPosition
	for _, kw := range params.Keywords {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw))
		for _, loc := range re.FindAllStringIndex(text, -1) {
			pos := rules.NewPosition(text, loc[0], loc[1])
			matched = append(matched, pos.Text)
			positions = append(positions, pos)
		}
	}
	return matched, positions
}

// matchRegex applies the rule's compiled pattern. Compilation errors cannot
// occur here for validated rules; a rule constructed without validation
// surfaces its error and is skipped by the evaluator.
func matchRegex(text string, params *rules.RegexParams) ([]string, []rules.MatchPosition, error) {
	re, err := params.Matcher()
	if err != nil {
		return nil, nil, err
	}
	var matched []string
	var positions []rules.MatchPosition
	for _, loc := range re.FindAllStringIndex(text, -1) {
		pos := rules.NewPosition(text, loc[0], loc[1])
		matched = append(matched, pos.Text)
		positions = append(positions, pos)
	}
	return matched, positions, nil
}

var (
	base64Candidate = regexp.MustCompile(`[A-Za-z0-9+/]{16,}={0,2}`)
	hexCandidate    = regexp.MustCompile(`(?:0x)?[0-9a-fA-F]{16,}`)
)

// matchEncoding detects base64/hex-looking spans. Pattern hits are filtered
// by length and composition heuristics so long ordinary words do not fire.
func matchEncoding(text string, params *rules.EncodingParams) ([]string, []rules.MatchPosition) {
	var matched []string
	var positions []rules.MatchPosition

	for _, scheme := range params.Schemes {
		var candidate *regexp.Regexp
		var accept func(span string) bool
		switch strings.ToLower(scheme) {
		case "base64":
			candidate = base64Candidate
			accept = func(span string) bool {
				if len(span) < params.MinLength || len(span)%4 != 0 {
					return false
				}
				return looksEncoded(span)
			}
		case "hex":
			candidate = hexCandidate
			accept = func(span string) bool {
				body := strings.TrimPrefix(span, "0x")
				return len(span) >= params.MinLength && len(body)%2 == 0 && looksEncoded(body)
			}
		default:
			continue
		}

		for _, loc := range candidate.FindAllStringIndex(text, -1) {
			span := text[loc[0]:loc[1]]
			if !accept(span) {
				continue
			}
			pos := rules.NewPosition(text, loc[0], loc[1])
			matched = append(matched, pos.Text)
			positions = append(positions, pos)
		}
	}
	return matched, positions
}

// looksEncoded requires both letters and non-letters in the span: a long
// run of pure alphabetic characters is almost always a word, not a payload.
func looksEncoded(span string) bool {
	letters, others := 0, 0
	for _, r := range span {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		} else {
			others++
		}
	}
	return letters > 0 && others > 0
}

// structuralClass is one recognizable framing construct.
type structuralClass struct {
	name    string
	pattern *regexp.Regexp
}

var structuralClasses = []structuralClass{
	{"code fence", regexp.MustCompile("```")},
	{"role tag", regexp.MustCompile(`(?i)</?(system|assistant|user|instructions?|admin)\b[^>]*>`)},
	{"bracket directive", regexp.MustCompile(`(?i)\[\s*(system|admin|root|hidden)\b[^\]]*\]`)},
	{"separator line", regexp.MustCompile(`(?m)^[ \t]*[-=_*]{3,}[ \t]*$`)},
	{"role prefix", regexp.MustCompile(`(?im)^[ \t]*(system|assistant|user)[ \t]*:`)},
}

// matchStructural detects layout anomalies: markup constructs that frame
// injected content as if it were a separate conversation turn or document
// section. The rule fires only when MinClasses distinct constructs appear.
func matchStructural(text string, params *rules.StructuralParams) ([]string, []rules.MatchPosition, string) {
	minClasses := params.MinClasses
	if minClasses <= 0 {
		minClasses = 2
	}

	var classNames []string
	var matched []string
	var positions []rules.MatchPosition
	for _, class := range structuralClasses {
		locs := class.pattern.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		classNames = append(classNames, class.name)
		for _, loc := range locs {
			pos := rules.NewPosition(text, loc[0], loc[1])
			matched = append(matched, pos.Text)
			positions = append(positions, pos)
		}
	}

	if len(classNames) < minClasses {
		return nil, nil, ""
	}
	details := fmt.Sprintf("framing constructs present: %s", strings.Join(classNames, ", "))
	return matched, positions, details
}
