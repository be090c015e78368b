package redteam

import (
	"time"

	"github.com/promptwarden/promptwarden/internal/rules"
)

// RunState is the engine's lifecycle phase for one run.
type RunState string

const (
	StateIdle       RunState = "idle"
	StateGenerating RunState = "generating"
	StateTesting    RunState = "testing"
	StateAnalyzing  RunState = "analyzing"
	StateDone       RunState = "done"
	StateFailed     RunState = "failed"
)

// Attack techniques the generator knows how to ask for.
const (
	TechniqueRolePlay               = "role_play"
	TechniqueInstructionOverride    = "instruction_override"
	TechniqueEncodingSmuggling      = "encoding_smuggling"
	TechniqueAuthorityImpersonation = "authority_impersonation"
	TechniqueContextFlooding        = "context_flooding"
	TechniqueEmotionalManipulation  = "emotional_manipulation"
)

// DefaultTechniques is the round-robin order used when the config names none.
func DefaultTechniques() []string {
	return []string{
		TechniqueRolePlay,
		TechniqueInstructionOverride,
		TechniqueEncodingSmuggling,
		TechniqueAuthorityImpersonation,
		TechniqueContextFlooding,
		TechniqueEmotionalManipulation,
	}
}

// Config drives one red-team run.
type Config struct {
	Provider         string   `yaml:"provider" mapstructure:"provider"` // "mock" or "http"
	Model            string   `yaml:"model" mapstructure:"model"`
	BaseURL          string   `yaml:"base_url" mapstructure:"base_url"`
	APIKey           string   `yaml:"api_key" mapstructure:"api_key"`
	AttacksPerRun    int      `yaml:"attacks_per_run" mapstructure:"attacks_per_run"`
	Techniques       []string `yaml:"techniques" mapstructure:"techniques"`
	TargetCategories []string `yaml:"target_categories" mapstructure:"target_categories"`

	// BypassThreshold classifies an attack as a bypass when the scan
	// confidence falls below it.
	BypassThreshold int `yaml:"bypass_threshold" mapstructure:"bypass_threshold"`

	// MinNovelty in [0,1] additionally rejects generated attacks whose token
	// overlap with an accepted attack exceeds 1-MinNovelty. Zero keeps only
	// the exact/substring duplicate filter.
	MinNovelty float64 `yaml:"min_novelty" mapstructure:"min_novelty"`

	// RequestsPerMin paces calls to a remote generation backend.
	RequestsPerMin int `yaml:"requests_per_min" mapstructure:"requests_per_min"`
}

// GeneratedAttack is one candidate adversarial prompt.
type GeneratedAttack struct {
	ID             string `json:"id"`
	PromptText     string `json:"promptText"`
	Technique      string `json:"technique"`
	TargetCategory string `json:"targetCategory,omitempty"`
	Rationale      string `json:"rationale,omitempty"`
}

// ScanSummary condenses the detector's response to one attack.
type ScanSummary struct {
	Confidence   int      `json:"confidence"`
	IsPositive   bool     `json:"isPositive"`
	MatchedRules []string `json:"matchedRules,omitempty"`
}

// Result records how the detector handled one attack.
type Result struct {
	Attack            GeneratedAttack `json:"attack"`
	ScanSummary       ScanSummary     `json:"scanSummary"`
	BypassedDetection bool            `json:"bypassedDetection"`
	Reasoning         string          `json:"reasoning"`
}

// CategoryFinding aggregates results per target category.
type CategoryFinding struct {
	Category   string         `json:"category"`
	Attacks    int            `json:"attacks"`
	Bypasses   int            `json:"bypasses"`
	BypassRate float64        `json:"bypassRate"`
	Severity   rules.Severity `json:"severity"`
}

// SuggestedRule is a candidate rule mined from bypass phrase frequency.
// Suggestions are created disabled and require explicit approval; the
// engine never auto-enables them.
type SuggestedRule struct {
	Rule           rules.DetectionRule `json:"rule"`
	CatchesAttacks []string            `json:"catchesAttacks"`
	Confidence     int                 `json:"confidence"`
	Rationale      string              `json:"rationale"`
}

// PriorityAction is one ranked remediation step in a report.
type PriorityAction struct {
	Severity rules.Severity `json:"severity"`
	Action   string         `json:"action"`
}

// Report is the run-level vulnerability assessment.
type Report struct {
	OverallScore    int              `json:"overallScore"` // 0..100
	BypassRate      float64          `json:"bypassRate"`
	PriorityActions []PriorityAction `json:"priorityActions"`
}

// Run is the aggregate outcome of one completed red-team run. A cancelled
// or failed run never produces a Run value.
type Run struct {
	ID                   string            `json:"id"`
	StartedAt            time.Time         `json:"startedAt"`
	CompletedAt          time.Time         `json:"completedAt"`
	TotalAttacks         int               `json:"totalAttacks"`
	BypassCount          int               `json:"bypassCount"`
	BypassRate           float64           `json:"bypassRate"`
	Results              []Result          `json:"results"`
	VulnerableCategories []CategoryFinding `json:"vulnerableCategories"`
	SuggestedRules       []SuggestedRule   `json:"suggestedRules"`
	Report               Report            `json:"report"`
}

// Progress is emitted as the engine advances, for log lines and live feeds.
type Progress struct {
	State     RunState `json:"state"`
	Completed int      `json:"completed"`
	Total     int      `json:"total"`
	Message   string   `json:"message,omitempty"`
}
