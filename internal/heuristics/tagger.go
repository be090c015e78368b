package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

// Entity is a named entity recognized in text.
type Entity struct {
	Text string
	Kind string // "org" or "person"
}

// Tagger is the injected tokenizer / part-of-speech / named-entity
// capability the NLP heuristics depend on. Implementations must be safe for
// concurrent use; heuristics may run from multiple scans at once.
type Tagger interface {
	// Sentences splits text into sentences.
	Sentences(text string) []string
	// FirstSignificantTerm returns the lowercase first meaningful word of a
	// sentence, skipping filler openers and punctuation. Empty if none.
	FirstSignificantTerm(sentence string) string
	// IsVerb reports whether the lowercase word reads as a verb.
	IsVerb(word string) bool
	// IsCopulaOrModal reports whether the lowercase word is a copula,
	// auxiliary or modal verb.
	IsCopulaOrModal(word string) bool
	// Entities returns organizations and people mentioned in the text.
	Entities(text string) []Entity
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?\n]+`)
	personPattern = regexp.MustCompile(`\b(Dr|Mr|Mrs|Ms|Prof|Agent|Officer)\.?\s+[A-Z][a-z]+`)
)

// LexiconTagger is the default Tagger: lexicon lookups and light patterns,
// no model inference. Deterministic and allocation-cheap.
type LexiconTagger struct{}

// NewLexiconTagger returns the built-in tagger.
func NewLexiconTagger() *LexiconTagger {
	return &LexiconTagger{}
}

// Sentences splits on terminal punctuation and newlines, dropping blanks.
func (t *LexiconTagger) Sentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FirstSignificantTerm walks the sentence's words past filler openers.
func (t *LexiconTagger) FirstSignificantTerm(sentence string) string {
	for _, w := range Words(sentence) {
		if fillerOpeners[w] {
			continue
		}
		return w
	}
	return ""
}

// IsVerb consults the imperative dictionary plus copulas/modals; the two
// sets together cover the verb forms the heuristics care about.
func (t *LexiconTagger) IsVerb(word string) bool {
	return imperativeVerbs[word] || copulasAndModals[word]
}

// IsCopulaOrModal reports auxiliary verb forms.
func (t *LexiconTagger) IsCopulaOrModal(word string) bool {
	return copulasAndModals[word]
}

// Entities recognizes known organizations and title-prefixed person names.
func (t *LexiconTagger) Entities(text string) []Entity {
	var out []Entity
	lower := strings.ToLower(text)
	for _, org := range knownOrganizations {
		if strings.Contains(lower, strings.ToLower(org)) {
			out = append(out, Entity{Text: org, Kind: "org"})
		}
	}
	for _, m := range personPattern.FindAllString(text, -1) {
		out = append(out, Entity{Text: m, Kind: "person"})
	}
	return out
}

// Words lowercases text and splits it into words, stripping surrounding
// punctuation. Words that are pure punctuation are dropped.
func Words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
