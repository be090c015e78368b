package heuristics

import (
	"fmt"
	"strings"

	"github.com/promptwarden/promptwarden/internal/rules"
)

const (
	sentimentMinWords    = 5
	sentimentMinNegative = 3
	sentimentMeanTrigger = -1.5

	posImperativeMinSentences = 3
	posImperativeMinHits      = 3
	posImperativeMinRatio     = 0.40

	entityConfidenceCap = 80

	structureMinSentences   = 4
	structureShortWordLimit = 8
	structureMinShortRatio  = 0.60
	structureMinVerbInitial = 3
)

// sentimentShift scores each word against the static lexicon and fires on a
// strongly negative mean: emotional-pressure framing ("my grandmother will
// die unless...") that accompanies many jailbreak attempts.
func sentimentShift(text string) (*rules.HeuristicResult, error) {
	words := Words(text)
	if len(words) < sentimentMinWords {
		return nil, nil
	}

	var sum, scored, negative int
	for _, w := range words {
		score, ok := sentimentLexicon[w]
		if !ok {
			continue
		}
		scored++
		sum += score
		if score < 0 {
			negative++
		}
	}
	if scored == 0 || negative < sentimentMinNegative {
		return nil, nil
	}
	mean := float64(sum) / float64(scored)
	if mean > sentimentMeanTrigger {
		return nil, nil
	}

	conf := 40 + int(-mean*10) + negative*3
	if conf > 85 {
		conf = 85
	}
	return &rules.HeuristicResult{
		Matched:    true,
		Details:    fmt.Sprintf("mean sentiment %.2f over %d scored words, %d negative", mean, scored, negative),
		Confidence: conf,
	}, nil
}

// posImperative tags each sentence's first significant term and fires when
// enough sentences open with a non-copula, non-modal verb.
func posImperative(tagger Tagger) func(string) (*rules.HeuristicResult, error) {
	return func(text string) (*rules.HeuristicResult, error) {
		sentences := tagger.Sentences(text)
		if len(sentences) < posImperativeMinSentences {
			return nil, nil
		}

		imperative := 0
		for _, s := range sentences {
			term := tagger.FirstSignificantTerm(s)
			if term == "" {
				continue
			}
			if tagger.IsVerb(term) && !tagger.IsCopulaOrModal(term) {
				imperative++
			}
		}
		ratio := float64(imperative) / float64(len(sentences))
		if imperative < posImperativeMinHits || ratio < posImperativeMinRatio {
			return nil, nil
		}

		conf := 40 + int(ratio*40)
		if conf > 85 {
			conf = 85
		}
		return &rules.HeuristicResult{
			Matched:    true,
			Details:    fmt.Sprintf("%d of %d sentences open with a command verb", imperative, len(sentences)),
			Confidence: conf,
		}, nil
	}
}

// entityImpersonation requires both an authority entity (keyword list or
// recognized org/person) and an impersonation-context phrase. Either alone
// is normal text; together they read as identity assumption.
func entityImpersonation(tagger Tagger) func(string) (*rules.HeuristicResult, error) {
	return func(text string) (*rules.HeuristicResult, error) {
		lower := strings.ToLower(text)

		entityHits := 0
		var firstEntity string
		for _, term := range authorityEntities {
			if strings.Contains(lower, term) {
				entityHits++
				if firstEntity == "" {
					firstEntity = term
				}
			}
		}
		for _, e := range tagger.Entities(text) {
			entityHits++
			if firstEntity == "" {
				firstEntity = e.Text
			}
		}

		phraseHits := 0
		var firstPhrase string
		for _, phrase := range impersonationContexts {
			if strings.Contains(lower, phrase) {
				phraseHits++
				if firstPhrase == "" {
					firstPhrase = phrase
				}
			}
		}

		if entityHits == 0 || phraseHits == 0 {
			return nil, nil
		}

		conf := 30 + entityHits*10 + phraseHits*5
		if conf > entityConfidenceCap {
			conf = entityConfidenceCap
		}
		return &rules.HeuristicResult{
			Matched:    true,
			Details:    fmt.Sprintf("authority entity %q with impersonation context %q (%d entities, %d phrases)", firstEntity, firstPhrase, entityHits, phraseHits),
			Confidence: conf,
		}, nil
	}
}

// sentenceStructure flags bursts of short verb-initial sentences, the shape
// of injected command lists rather than prose.
func sentenceStructure(tagger Tagger) func(string) (*rules.HeuristicResult, error) {
	return func(text string) (*rules.HeuristicResult, error) {
		sentences := tagger.Sentences(text)
		if len(sentences) < structureMinSentences {
			return nil, nil
		}

		short, shortVerbInitial := 0, 0
		for _, s := range sentences {
			words := Words(s)
			if len(words) >= structureShortWordLimit {
				continue
			}
			short++
			term := tagger.FirstSignificantTerm(s)
			if term != "" && tagger.IsVerb(term) && !tagger.IsCopulaOrModal(term) {
				shortVerbInitial++
			}
		}

		ratio := float64(short) / float64(len(sentences))
		if ratio < structureMinShortRatio || shortVerbInitial < structureMinVerbInitial {
			return nil, nil
		}

		conf := 30 + int(ratio*30) + shortVerbInitial*3
		if conf > 80 {
			conf = 80
		}
		return &rules.HeuristicResult{
			Matched:    true,
			Details:    fmt.Sprintf("%d of %d sentences are short, %d verb-initial", short, len(sentences), shortVerbInitial),
			Confidence: conf,
		}, nil
	}
}
