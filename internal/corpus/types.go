package corpus

import (
	"time"
)

// LabeledPrompt is a single record from a labeled prompt dataset. Label 1
// marks an injection attempt, 0 a benign prompt.
type LabeledPrompt struct {
	Text      string `csv:"text" parquet:"text" json:"text"`
	LabelText string `csv:"label_text" parquet:"label_text" json:"label_text"`
	Label     int    `csv:"label" parquet:"label" json:"label"`
}

// Config contains corpus benchmark configuration.
type Config struct {
	Path           string `yaml:"path" mapstructure:"path"`
	BatchSize      int    `yaml:"batch_size" mapstructure:"batch_size"`
	ValidateData   bool   `yaml:"validate_data" mapstructure:"validate_data"`
	MaxErrors      int    `yaml:"max_errors" mapstructure:"max_errors"`
	ProgressReport int    `yaml:"progress_report" mapstructure:"progress_report"`
}

// DefaultConfig returns the benchmark defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:      500,
		ValidateData:   true,
		MaxErrors:      25,
		ProgressReport: 1000,
	}
}

// Misclassified records one prompt the detector got wrong, kept for
// inspection in benchmark output.
type Misclassified struct {
	Text       string `json:"text"`
	Label      int    `json:"label"`
	Confidence int    `json:"confidence"`
}

// Result summarizes one benchmark pass over a corpus.
type Result struct {
	TotalRecords   int64           `json:"total_records"`
	SkippedRecords int64           `json:"skipped_records"`
	TruePositives  int64           `json:"true_positives"`
	FalsePositives int64           `json:"false_positives"`
	TrueNegatives  int64           `json:"true_negatives"`
	FalseNegatives int64           `json:"false_negatives"`
	Precision      float64         `json:"precision"`
	Recall         float64         `json:"recall"`
	F1             float64         `json:"f1"`
	Accuracy       float64         `json:"accuracy"`
	Duration       time.Duration   `json:"duration"`
	Errors         []string        `json:"errors,omitempty"`
	WorstMisses    []Misclassified `json:"worst_misses,omitempty"`
}

// FileFormat represents supported dataset formats.
type FileFormat string

const (
	FormatCSV     FileFormat = "csv"
	FormatParquet FileFormat = "parquet"
	FormatJSON    FileFormat = "json"
)

// DetectFileFormat detects the dataset format from the file extension.
func DetectFileFormat(filename string) FileFormat {
	switch {
	case len(filename) >= 8 && filename[len(filename)-8:] == ".parquet":
		return FormatParquet
	case len(filename) >= 5 && filename[len(filename)-5:] == ".json":
		return FormatJSON
	case len(filename) >= 6 && filename[len(filename)-6:] == ".jsonl":
		return FormatJSON
	default:
		return FormatCSV
	}
}
