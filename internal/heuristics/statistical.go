package heuristics

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/promptwarden/promptwarden/internal/rules"
)

const (
	entropyWindowSize   = 64  // runes per window
	entropyWindowStep   = 32  // runes between window starts
	entropyHighBits     = 4.5 // bits/char above which a window counts as high
	entropyMinHighRatio = 0.30
	entropyMinHighCount = 2

	imperativeMinWords   = 10
	imperativeMinHits    = 3
	imperativeMinDensity = 0.08

	delimitersMinClasses = 3

	scriptMixMinLength     = 20
	scriptMixMinMixedWords = 2
	scriptMixMinScripts    = 3
)

// shannonEntropy returns bits per character over the rune window.
func shannonEntropy(window []rune) float64 {
	if len(window) == 0 {
		return 0
	}
	counts := make(map[rune]float64, len(window))
	for _, r := range window {
		counts[r]++
	}
	total := float64(len(window))
	entropy := 0.0
	for _, c := range counts {
		p := c / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// entropyAnalysis slides a 64-rune window with step 32 and flags texts where
// at least 30% of windows (and no fewer than two) exceed 4.5 bits/char.
// The two-window floor keeps short random-looking strings from firing.
func entropyAnalysis(text string) (*rules.HeuristicResult, error) {
	runes := []rune(text)
	if len(runes) < entropyWindowSize+entropyWindowStep {
		return nil, nil
	}

	// Byte offset of every rune so flagged windows map back to exact spans.
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = len(text)

	var total, high int
	var positions []rules.MatchPosition
	for start := 0; start+entropyWindowSize <= len(runes); start += entropyWindowStep {
		end := start + entropyWindowSize
		total++
		if shannonEntropy(runes[start:end]) > entropyHighBits {
			high++
			bStart, bEnd := offsets[start], offsets[end]
			positions = append(positions, rules.NewPosition(text, bStart, bEnd))
		}
	}

	if total == 0 || high < entropyMinHighCount {
		return nil, nil
	}
	ratio := float64(high) / float64(total)
	if ratio < entropyMinHighRatio {
		return nil, nil
	}

	conf := 50 + int(ratio*40)
	if conf > 90 {
		conf = 90
	}
	return &rules.HeuristicResult{
		Matched:    true,
		Details:    fmt.Sprintf("%d of %d windows above %.1f bits/char", high, total, entropyHighBits),
		Confidence: conf,
		Positions:  positions,
	}, nil
}

// imperativeDensity counts occurrences of the imperative-verb dictionary
// relative to total word count.
func imperativeDensity(text string) (*rules.HeuristicResult, error) {
	words := Words(text)
	if len(words) < imperativeMinWords {
		return nil, nil
	}
	hits := 0
	for _, w := range words {
		if imperativeVerbs[w] {
			hits++
		}
	}
	density := float64(hits) / float64(len(words))
	if hits < imperativeMinHits || density < imperativeMinDensity {
		return nil, nil
	}

	conf := 40 + int(density*200)
	if conf > 85 {
		conf = 85
	}
	return &rules.HeuristicResult{
		Matched:    true,
		Details:    fmt.Sprintf("%d command verbs in %d words (%.0f%% density)", hits, len(words), density*100),
		Confidence: conf,
	}, nil
}

var xmlTagPattern = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9_-]*>`)
var hashSectionPattern = regexp.MustCompile(`(?m)^\s*#{1,6}\s`)

// delimiterClasses reports which of the nine delimiter classes occur in text.
func delimiterClasses(text string) []string {
	var present []string
	add := func(name string, ok bool) {
		if ok {
			present = append(present, name)
		}
	}
	add("brackets", strings.Contains(text, "[") && strings.Contains(text, "]"))
	add("braces", strings.Contains(text, "{") && strings.Contains(text, "}"))
	add("angle brackets", strings.Contains(text, "<") && strings.Contains(text, ">"))
	add("triple backticks", strings.Contains(text, "```"))
	add("triple quotes", strings.Contains(text, `"""`) || strings.Contains(text, "'''"))
	add("xml tags", xmlTagPattern.MatchString(text))
	add("hash sections", hashSectionPattern.MatchString(text))
	add("pipes", strings.Contains(text, "|"))
	add("parentheses", strings.Contains(text, "(") && strings.Contains(text, ")"))
	return present
}

// nestedDelimiters fires when at least three distinct delimiter classes are
// present, a framing pattern typical of injected pseudo-structure.
func nestedDelimiters(text string) (*rules.HeuristicResult, error) {
	present := delimiterClasses(text)
	if len(present) < delimitersMinClasses {
		return nil, nil
	}
	conf := 35 + len(present)*8
	if conf > 85 {
		conf = 85
	}
	return &rules.HeuristicResult{
		Matched:    true,
		Details:    fmt.Sprintf("%d of %d delimiter classes present: %s", len(present), delimiterClassCount, strings.Join(present, ", ")),
		Confidence: conf,
	}, nil
}

// scriptOf classifies a letter into one of the tracked Unicode scripts.
func scriptOf(r rune) string {
	switch {
	case unicode.Is(unicode.Latin, r):
		return "latin"
	case unicode.Is(unicode.Cyrillic, r):
		return "cyrillic"
	case unicode.Is(unicode.Greek, r):
		return "greek"
	case unicode.Is(unicode.Arabic, r):
		return "arabic"
	case unicode.Is(unicode.Han, r), unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r), unicode.Is(unicode.Hangul, r):
		return "cjk"
	case unicode.Is(unicode.Devanagari, r):
		return "devanagari"
	case unicode.Is(unicode.Hebrew, r):
		return "hebrew"
	default:
		return ""
	}
}

// confusablePairs are script combinations with visually identical glyphs.
var confusablePairs = [][2]string{
	{"latin", "cyrillic"},
	{"latin", "greek"},
	{"cyrillic", "greek"},
}

// scriptMixing flags homoglyph-style obfuscation: words mixing scripts
// internally, or three or more scripts with a known confusable pair present.
func scriptMixing(text string) (*rules.HeuristicResult, error) {
	if len([]rune(text)) < scriptMixMinLength {
		return nil, nil
	}

	scriptsPresent := make(map[string]bool)
	mixedWords := 0
	for _, word := range strings.Fields(text) {
		wordScripts := make(map[string]bool)
		for _, r := range word {
			if !unicode.IsLetter(r) {
				continue
			}
			if s := scriptOf(r); s != "" {
				wordScripts[s] = true
				scriptsPresent[s] = true
			}
		}
		if len(wordScripts) >= 2 {
			mixedWords++
		}
	}

	confusable := false
	for _, pair := range confusablePairs {
		if scriptsPresent[pair[0]] && scriptsPresent[pair[1]] {
			confusable = true
			break
		}
	}

	triggered := mixedWords >= scriptMixMinMixedWords ||
		(len(scriptsPresent) >= scriptMixMinScripts && confusable)
	if !triggered {
		return nil, nil
	}

	conf := 45 + mixedWords*10 + len(scriptsPresent)*5
	if conf > 90 {
		conf = 90
	}
	return &rules.HeuristicResult{
		Matched:    true,
		Details:    fmt.Sprintf("%d mixed-script words, %d scripts present", mixedWords, len(scriptsPresent)),
		Confidence: conf,
	}, nil
}
