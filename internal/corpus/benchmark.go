// Package corpus benchmarks the detector against labeled prompt datasets in
// CSV, Parquet or newline-delimited JSON form, reporting precision, recall
// and the prompts the rule set got wrong.
package corpus

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/segmentio/parquet-go"
	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/detect"
	"github.com/promptwarden/promptwarden/internal/rules"
)

const maxWorstMisses = 10

// Benchmark streams a labeled corpus through a scanner and scores the
// detector's verdicts against the labels.
type Benchmark struct {
	scanner *detect.Scanner
	config  Config
	logger  *zap.Logger
}

// NewBenchmark builds a benchmark runner.
func NewBenchmark(scanner *detect.Scanner, config Config, logger *zap.Logger) *Benchmark {
	if config.BatchSize <= 0 {
		config.BatchSize = 500
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Benchmark{scanner: scanner, config: config, logger: logger}
}

// Run evaluates every record in the file at path against the rule set and
// threshold. A positive verdict on a label-1 record is a true positive; the
// confusion matrix and derived metrics accumulate across the whole corpus.
func (b *Benchmark) Run(ctx context.Context, path string, set []rules.DetectionRule, threshold int) (*Result, error) {
	format := DetectFileFormat(path)
	b.logger.Info("Starting corpus benchmark",
		zap.String("file", path),
		zap.String("format", string(format)),
		zap.Int("threshold", threshold))

	start := time.Now()
	result := &Result{}

	var err error
	switch format {
	case FormatCSV:
		err = b.runCSV(ctx, path, set, threshold, result)
	case FormatParquet:
		err = b.runParquet(ctx, path, set, threshold, result)
	case FormatJSON:
		err = b.runJSON(ctx, path, set, threshold, result)
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	finalize(result)

	b.logger.Info("Corpus benchmark completed",
		zap.Int64("total_records", result.TotalRecords),
		zap.Float64("precision", result.Precision),
		zap.Float64("recall", result.Recall),
		zap.Float64("f1", result.F1),
		zap.Duration("duration", result.Duration))
	return result, nil
}

func (b *Benchmark) runCSV(ctx context.Context, path string, set []rules.DetectionRule, threshold int, result *Result) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	textIdx, labelIdx := columnIndexes(header)
	if textIdx < 0 || labelIdx < 0 {
		return fmt.Errorf("corpus CSV missing text or label column: %v", header)
	}

	return b.stream(ctx, set, threshold, result, func() (*LabeledPrompt, error) {
		for {
			record, err := reader.Read()
			if err == io.EOF {
				return nil, io.EOF
			}
			if err != nil {
				result.Errors = append(result.Errors, err.Error())
				if b.config.MaxErrors > 0 && len(result.Errors) > b.config.MaxErrors {
					return nil, fmt.Errorf("too many malformed records: %w", err)
				}
				continue
			}
			if len(record) <= textIdx || len(record) <= labelIdx {
				result.SkippedRecords++
				continue
			}
			label := 0
			if record[labelIdx] == "1" || strings.EqualFold(record[labelIdx], "true") {
				label = 1
			}
			return &LabeledPrompt{
				Text:  strings.TrimSpace(record[textIdx]),
				Label: label,
			}, nil
		}
	})
}

func (b *Benchmark) runParquet(ctx context.Context, path string, set []rules.DetectionRule, threshold int, result *Result) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	reader := parquet.NewReader(file)
	defer reader.Close()

	return b.stream(ctx, set, threshold, result, func() (*LabeledPrompt, error) {
		for {
			var record LabeledPrompt
			if err := reader.Read(&record); err != nil {
				if err == io.EOF {
					return nil, io.EOF
				}
				result.Errors = append(result.Errors, err.Error())
				if b.config.MaxErrors > 0 && len(result.Errors) > b.config.MaxErrors {
					return nil, fmt.Errorf("too many malformed records: %w", err)
				}
				result.SkippedRecords++
				continue
			}
			return &record, nil
		}
	})
}

func (b *Benchmark) runJSON(ctx context.Context, path string, set []rules.DetectionRule, threshold int, result *Result) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	return b.stream(ctx, set, threshold, result, func() (*LabeledPrompt, error) {
		var record LabeledPrompt
		if err := decoder.Decode(&record); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("malformed JSON record: %w", err)
		}
		return &record, nil
	})
}

// stream pulls records until EOF, scans each and updates the confusion
// matrix. Cancellation is honored between records.
func (b *Benchmark) stream(ctx context.Context, set []rules.DetectionRule, threshold int, result *Result, next func() (*LabeledPrompt, error)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if b.config.ValidateData && !validRecord(record) {
			result.SkippedRecords++
			continue
		}

		scan, err := b.scanner.Scan(ctx, record.Text, set, threshold)
		if err != nil {
			return fmt.Errorf("scan failed during benchmark: %w", err)
		}

		result.TotalRecords++
		switch {
		case record.Label == 1 && scan.IsPositive:
			result.TruePositives++
		case record.Label == 1:
			result.FalseNegatives++
			recordMiss(result, record, scan.Confidence)
		case scan.IsPositive:
			result.FalsePositives++
			recordMiss(result, record, scan.Confidence)
		default:
			result.TrueNegatives++
		}

		if b.config.ProgressReport > 0 && result.TotalRecords%int64(b.config.ProgressReport) == 0 {
			b.logger.Info("Benchmark progress",
				zap.Int64("records", result.TotalRecords),
				zap.Int64("false_negatives", result.FalseNegatives),
				zap.Int64("false_positives", result.FalsePositives))
		}
	}
}

func validRecord(record *LabeledPrompt) bool {
	if strings.TrimSpace(record.Text) == "" {
		return false
	}
	if record.Label != 0 && record.Label != 1 {
		return false
	}
	return len(record.Text) <= 10000
}

// recordMiss keeps the most confidently wrong examples: missed injections
// with the lowest confidence, false alarms with the highest.
func recordMiss(result *Result, record *LabeledPrompt, confidence int) {
	result.WorstMisses = append(result.WorstMisses, Misclassified{
		Text:       record.Text,
		Label:      record.Label,
		Confidence: confidence,
	})
	sort.SliceStable(result.WorstMisses, func(i, j int) bool {
		a, b := result.WorstMisses[i], result.WorstMisses[j]
		if a.Label != b.Label {
			return a.Label > b.Label
		}
		if a.Label == 1 {
			return a.Confidence < b.Confidence
		}
		return a.Confidence > b.Confidence
	})
	if len(result.WorstMisses) > maxWorstMisses {
		result.WorstMisses = result.WorstMisses[:maxWorstMisses]
	}
}

func finalize(result *Result) {
	if result.TruePositives+result.FalsePositives > 0 {
		result.Precision = float64(result.TruePositives) / float64(result.TruePositives+result.FalsePositives)
	}
	if result.TruePositives+result.FalseNegatives > 0 {
		result.Recall = float64(result.TruePositives) / float64(result.TruePositives+result.FalseNegatives)
	}
	if result.Precision+result.Recall > 0 {
		result.F1 = 2 * result.Precision * result.Recall / (result.Precision + result.Recall)
	}
	if result.TotalRecords > 0 {
		correct := result.TruePositives + result.TrueNegatives
		result.Accuracy = float64(correct) / float64(result.TotalRecords)
	}
}

func columnIndexes(header []string) (textIdx, labelIdx int) {
	textIdx, labelIdx = -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "text", "prompt":
			textIdx = i
		case "label":
			labelIdx = i
		}
	}
	return textIdx, labelIdx
}
