package redteam

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/detect"
	"github.com/promptwarden/promptwarden/internal/rules"
)

const (
	defaultAttacksPerRun   = 12
	defaultBypassThreshold = 60

	// A generation that keeps producing duplicates gets this many retries
	// per attack slot before the slot is abandoned.
	noveltyRetries = 3
)

// ProgressFunc receives engine progress events. It is called on the run
// goroutine; implementations must not block.
type ProgressFunc func(Progress)

// Engine executes red-team runs against a scanner and a rule set. One
// engine runs one run at a time; Run reports ErrRunInProgress otherwise.
type Engine struct {
	scanner  *detect.Scanner
	backend  Backend
	cfg      Config
	logger   *zap.Logger
	progress ProgressFunc

	mu      sync.Mutex
	state   RunState
	lastErr error
}

// ErrRunInProgress is returned when Run is called while a run is active.
var ErrRunInProgress = errors.New("red-team run already in progress")

// NewEngine builds an engine. progress may be nil.
func NewEngine(scanner *detect.Scanner, backend Backend, cfg Config, logger *zap.Logger, progress ProgressFunc) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.AttacksPerRun <= 0 {
		cfg.AttacksPerRun = defaultAttacksPerRun
	}
	if cfg.BypassThreshold <= 0 {
		cfg.BypassThreshold = defaultBypassThreshold
	}
	if len(cfg.Techniques) == 0 {
		cfg.Techniques = DefaultTechniques()
	}
	return &Engine{
		scanner:  scanner,
		backend:  backend,
		cfg:      cfg,
		logger:   logger,
		progress: progress,
		state:    StateIdle,
	}
}

// State reports the engine's current phase and, for a failed run, the error
// that ended it.
func (e *Engine) State() (RunState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.lastErr
}

func (e *Engine) setState(state RunState, completed, total int, msg string) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
	if e.progress != nil {
		e.progress(Progress{State: state, Completed: completed, Total: total, Message: msg})
	}
}

// Run executes one full generate/test/analyze cycle against the given rule
// set and detection threshold. Cancellation between attacks returns
// ctx.Err() and no partial run; a backend failure wrapped in ErrBackend
// aborts the run, while per-attack failures are logged and skipped.
func (e *Engine) Run(ctx context.Context, set []rules.DetectionRule, threshold int) (*Run, error) {
	e.mu.Lock()
	switch e.state {
	case StateIdle, StateDone, StateFailed:
		e.state = StateGenerating
		e.lastErr = nil
	default:
		e.mu.Unlock()
		return nil, ErrRunInProgress
	}
	e.mu.Unlock()

	run, err := e.run(ctx, set, threshold)
	if err != nil {
		e.mu.Lock()
		e.state = StateFailed
		e.lastErr = err
		e.mu.Unlock()
		if e.progress != nil {
			e.progress(Progress{State: StateFailed, Message: err.Error()})
		}
		return nil, err
	}

	e.setState(StateDone, run.TotalAttacks, run.TotalAttacks, "run complete")
	return run, nil
}

func (e *Engine) run(ctx context.Context, set []rules.DetectionRule, threshold int) (*Run, error) {
	startedAt := time.Now().UTC()
	runID := uuid.NewString()
	e.logger.Info("Red-team run started",
		zap.String("run_id", runID),
		zap.Int("attacks", e.cfg.AttacksPerRun),
		zap.Strings("techniques", e.cfg.Techniques))

	attacks, err := e.generate(ctx)
	if err != nil {
		return nil, err
	}
	if len(attacks) == 0 {
		return nil, fmt.Errorf("generation produced no usable attacks")
	}

	results, err := e.test(ctx, attacks, set, threshold)
	if err != nil {
		return nil, err
	}

	e.setState(StateAnalyzing, len(results), len(results), "analyzing results")
	run := analyze(runID, startedAt, results)

	e.logger.Info("Red-team run finished",
		zap.String("run_id", runID),
		zap.Int("total_attacks", run.TotalAttacks),
		zap.Int("bypasses", run.BypassCount),
		zap.Int("overall_score", run.Report.OverallScore))
	return run, nil
}

// generate produces the attack batch, cycling techniques and target
// categories round-robin and rejecting near-duplicates.
func (e *Engine) generate(ctx context.Context) ([]GeneratedAttack, error) {
	attacks := make([]GeneratedAttack, 0, e.cfg.AttacksPerRun)

	for i := 0; i < e.cfg.AttacksPerRun; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.setState(StateGenerating, i, e.cfg.AttacksPerRun, "generating attacks")

		technique := e.cfg.Techniques[i%len(e.cfg.Techniques)]
		target := ""
		if len(e.cfg.TargetCategories) > 0 {
			target = e.cfg.TargetCategories[i%len(e.cfg.TargetCategories)]
		}

		attack, err := e.generateOne(ctx, technique, target, attacks)
		if err != nil {
			if errors.Is(err, ErrBackend) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			e.logger.Warn("Attack generation failed, skipping slot",
				zap.String("technique", technique), zap.Error(err))
			continue
		}
		if attack == nil {
			e.logger.Debug("No novel attack produced for slot",
				zap.String("technique", technique))
			continue
		}
		attacks = append(attacks, *attack)
	}
	return attacks, nil
}

// generateOne retries a slot until the backend produces an attack novel
// against everything accepted so far, or the retry budget runs out (nil,
// nil in that case).
func (e *Engine) generateOne(ctx context.Context, technique, target string, accepted []GeneratedAttack) (*GeneratedAttack, error) {
	prompt := buildPrompt(technique, target)
	for attempt := 0; attempt <= noveltyRetries; attempt++ {
		raw, err := e.backend.Generate(ctx, prompt)
		if err != nil {
			return nil, err
		}
		text, rationale, err := parseGenerated(raw)
		if err != nil {
			return nil, err
		}
		if !e.isNovel(text, accepted) {
			continue
		}
		return &GeneratedAttack{
			ID:             uuid.NewString(),
			PromptText:     text,
			Technique:      technique,
			TargetCategory: target,
			Rationale:      rationale,
		}, nil
	}
	return nil, nil
}

// isNovel rejects exact and substring duplicates of accepted attacks, and,
// when MinNovelty is set, candidates whose token overlap with any accepted
// attack is too high.
func (e *Engine) isNovel(candidate string, accepted []GeneratedAttack) bool {
	lower := strings.ToLower(strings.TrimSpace(candidate))
	if lower == "" {
		return false
	}
	for i := range accepted {
		prior := strings.ToLower(accepted[i].PromptText)
		if strings.Contains(prior, lower) || strings.Contains(lower, prior) {
			return false
		}
		if e.cfg.MinNovelty > 0 && jaccard(lower, prior) > 1-e.cfg.MinNovelty {
			return false
		}
	}
	return true
}

// jaccard is token-set Jaccard similarity over whitespace-split words.
func jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

// test scans each attack with the engine's scanner and classifies bypasses.
func (e *Engine) test(ctx context.Context, attacks []GeneratedAttack, set []rules.DetectionRule, threshold int) ([]Result, error) {
	results := make([]Result, 0, len(attacks))

	for i := range attacks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.setState(StateTesting, i, len(attacks), "testing attacks")

		scan, err := e.scanner.Scan(ctx, attacks[i].PromptText, set, threshold)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			e.logger.Warn("Scan failed for attack, skipping",
				zap.String("attack_id", attacks[i].ID), zap.Error(err))
			continue
		}
		results = append(results, classify(attacks[i], scan, e.cfg.BypassThreshold))
	}
	return results, nil
}

// classify turns one scan outcome into a Result. An attack bypasses
// detection when its confidence falls below the bypass threshold,
// regardless of the scan's own positive/negative verdict.
func classify(attack GeneratedAttack, scan *rules.ScanResult, bypassThreshold int) Result {
	matched := make([]string, 0, len(scan.MatchedRules))
	for i := range scan.MatchedRules {
		matched = append(matched, scan.MatchedRules[i].RuleID)
	}

	bypassed := scan.Confidence < bypassThreshold
	var reasoning string
	switch {
	case bypassed && len(matched) == 0:
		reasoning = "complete bypass: no rules matched"
	case bypassed:
		reasoning = fmt.Sprintf("partial bypass: matched %s but confidence %d stayed below %d",
			strings.Join(matched, ", "), scan.Confidence, bypassThreshold)
	default:
		reasoning = fmt.Sprintf("detected with confidence %d by %s",
			scan.Confidence, strings.Join(matched, ", "))
	}

	return Result{
		Attack: attack,
		ScanSummary: ScanSummary{
			Confidence:   scan.Confidence,
			IsPositive:   scan.IsPositive,
			MatchedRules: matched,
		},
		BypassedDetection: bypassed,
		Reasoning:         reasoning,
	}
}
