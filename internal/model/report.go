package model

import (
	"time"

	"github.com/go-gota/gota/dataframe"
)

// AnalysisReport is the accumulated result of one analysis run.
// It is created by NewAnalysisReport, passed through every pipeline step,
// and finally rendered by the report writers.
type AnalysisReport struct {
	// SourcePath is the input CSV file that was analyzed.
	SourcePath string `json:"source_path"`

	// OutputPath is where the cleaned CSV was written.
	OutputPath string `json:"output_path,omitempty"`

	// ChartsPath is where the HTML chart dashboard was written.
	// Empty when chart rendering was skipped entirely.
	ChartsPath string `json:"charts_path,omitempty"`

	// AnalyzedAt is when the run started.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is the total wall-clock time of the run.
	Duration time.Duration `json:"duration_ns"`

	// Frame is the in-memory table. The loader attaches the raw frame and
	// the cleaner replaces it with the cleaned one. It is excluded from
	// JSON output; the cleaned CSV file is the canonical serialization.
	Frame dataframe.DataFrame `json:"-"`

	// Capabilities records which optional columns the input provides.
	// Every guarded step consults this instead of re-checking the schema.
	Capabilities Capabilities `json:"capabilities"`

	// RowsLoaded is the row count of the raw table.
	RowsLoaded int `json:"rows_loaded"`

	// RowsAfterCleaning is the row count of the cleaned table.
	RowsAfterCleaning int `json:"rows_after_cleaning"`

	// SparseRowsDropped counts rows removed because more than half of
	// their cells were missing.
	SparseRowsDropped int `json:"sparse_rows_dropped"`

	// DuplicateRowsDropped counts rows removed as exact duplicates of an
	// earlier row.
	DuplicateRowsDropped int `json:"duplicate_rows_dropped"`

	// MissingBefore holds per-column missing-value counts of the raw
	// table, captured before any coercion.
	MissingBefore MissingReport `json:"missing_before"`

	// MissingAfter holds per-column missing-value counts of the cleaned
	// table. All counts are zero unless a numeric column was entirely
	// missing (its median is undefined and it is left untouched).
	MissingAfter MissingReport `json:"missing_after"`

	// Medians maps each imputed numeric column to the median that filled
	// its missing cells.
	Medians map[string]float64 `json:"medians,omitempty"`

	// IncidentTypeFrequency is the value-frequency table of the incident
	// type column, descending by count. Nil when the column is absent.
	IncidentTypeFrequency *FrequencyTable `json:"incident_type_frequency,omitempty"`

	// BoroughFrequency is the value-frequency table of the borough column,
	// descending by count. Nil when the column is absent.
	BoroughFrequency *FrequencyTable `json:"borough_frequency,omitempty"`

	// ChiSquare is the goodness-of-fit test result over borough counts.
	// Nil when the borough column is absent or the test was skipped.
	ChiSquare *ChiSquareResult `json:"chi_square,omitempty"`

	// TTest is the Welch t-test result comparing high and low boroughs.
	// Nil when the borough column is absent or the test was skipped.
	TTest *WelchTTestResult `json:"t_test,omitempty"`

	// Warnings collects non-fatal conditions: absent optional columns,
	// undefined statistics, an empty table after cleaning.
	Warnings []string `json:"warnings,omitempty"`

	// Error holds the fatal error that aborted the pipeline, if any.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewAnalysisReport creates an empty report for the given input file.
func NewAnalysisReport(sourcePath string) *AnalysisReport {
	return &AnalysisReport{
		SourcePath: sourcePath,
		AnalyzedAt: time.Now(),
		Medians:    make(map[string]float64),
	}
}

// AddWarning records a non-fatal condition on the report.
func (r *AnalysisReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// HasWarnings reports whether any non-fatal condition was recorded.
func (r *AnalysisReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// MissingCount is the number of missing cells in one column.
type MissingCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// MissingReport lists missing-value counts per column, preserving the
// column order of the table.
type MissingReport []MissingCount

// Total returns the number of missing cells across all columns.
func (m MissingReport) Total() int {
	total := 0
	for _, c := range m {
		total += c.Count
	}
	return total
}

// FrequencyEntry is one value of a categorical column and its count.
type FrequencyEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FrequencyTable holds the value frequencies of one categorical column,
// sorted descending by count. Ties are broken by value so the order is
// deterministic.
type FrequencyTable struct {
	Column  string           `json:"column"`
	Entries []FrequencyEntry `json:"entries"`
}

// Len returns the number of distinct values.
func (f *FrequencyTable) Len() int {
	return len(f.Entries)
}

// Counts returns all counts in table order as float64 values, ready for
// statistical routines.
func (f *FrequencyTable) Counts() []float64 {
	counts := make([]float64, len(f.Entries))
	for i, e := range f.Entries {
		counts[i] = float64(e.Count)
	}
	return counts
}

// Top returns the counts of the n most frequent values. When the table has
// fewer than n entries, all counts are returned.
func (f *FrequencyTable) Top(n int) []float64 {
	if n > len(f.Entries) {
		n = len(f.Entries)
	}
	return f.Counts()[:n]
}

// Bottom returns the counts of the n least frequent values. When the table
// has fewer than n entries, all counts are returned.
func (f *FrequencyTable) Bottom(n int) []float64 {
	counts := f.Counts()
	if n > len(counts) {
		n = len(counts)
	}
	return counts[len(counts)-n:]
}
