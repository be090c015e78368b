// Package heuristics provides the whole-text statistical and NLP analysis
// functions behind heuristic detection rules. Heuristics are addressed by
// stable id through a Registry so that rules serialize a reference, never
// executable code.
package heuristics

import (
	"fmt"

	"github.com/promptwarden/promptwarden/internal/rules"
)

// Func analyzes whole text and returns at most one result. A nil result
// with nil error means the heuristic did not match (including "sample too
// small to judge" cases).
type Func func(text string) (*rules.HeuristicResult, error)

// Registry resolves heuristic refs to functions. The set of ids is fixed at
// construction; rule files referencing an unknown id are rejected when the
// evaluator is built.
type Registry struct {
	funcs map[string]Func
}

// Heuristic ids, stable across processes and rule files.
const (
	RefEntropy             = "entropy"
	RefImperativeDensity   = "imperative_density"
	RefNestedDelimiters    = "nested_delimiters"
	RefScriptMixing        = "script_mixing"
	RefSentimentShift      = "sentiment_shift"
	RefPOSImperative       = "pos_imperative"
	RefEntityImpersonation = "entity_impersonation"
	RefSentenceStructure   = "sentence_structure"
)

// NewRegistry builds the standard registry with the given tagger injected
// into the NLP heuristics. Pass nil to use the built-in lexicon tagger.
func NewRegistry(tagger Tagger) *Registry {
	if tagger == nil {
		tagger = NewLexiconTagger()
	}
	return &Registry{funcs: map[string]Func{
		RefEntropy:             entropyAnalysis,
		RefImperativeDensity:   imperativeDensity,
		RefNestedDelimiters:    nestedDelimiters,
		RefScriptMixing:        scriptMixing,
		RefSentimentShift:      sentimentShift,
		RefPOSImperative:       posImperative(tagger),
		RefEntityImpersonation: entityImpersonation(tagger),
		RefSentenceStructure:   sentenceStructure(tagger),
	}}
}

// Lookup returns the heuristic registered under ref.
func (r *Registry) Lookup(ref string) (Func, error) {
	fn, ok := r.funcs[ref]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic ref %q", ref)
	}
	return fn, nil
}

// Refs lists the registered ids.
func (r *Registry) Refs() []string {
	out := make([]string, 0, len(r.funcs))
	for ref := range r.funcs {
		out = append(out, ref)
	}
	return out
}

// Register adds or replaces a heuristic under id. Used by tests and by
// embedders that supply custom analyses.
func (r *Registry) Register(id string, fn Func) {
	r.funcs[id] = fn
}
