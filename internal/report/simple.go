package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nao1215/asbscan/internal/model"
)

// maxFrequencyRows bounds the frequency listings in terminal output.
// The full tables are available in the Markdown and JSON formats.
const maxFrequencyRows = 10

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and no markup.
type SimpleWriter struct {
	baseWriter

	// verbose enables the full frequency tables instead of the top rows.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with full frequency tables.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeMissing(&sb, report)
	w.writeCleaning(&sb, report)
	w.writeFrequencies(&sb, report)
	w.writeHypothesisTests(&sb, report)
	w.writeWarnings(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                       ASB ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Dataset:       %s\n", report.SourcePath)
	fmt.Fprintf(sb, "Analyzed:      %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Rows loaded:   %d\n", report.RowsLoaded)
	fmt.Fprintf(sb, "Rows cleaned:  %d\n", report.RowsAfterCleaning)
	if report.OutputPath != "" {
		fmt.Fprintf(sb, "Cleaned CSV:   %s\n", report.OutputPath)
	}
	if report.ChartsPath != "" {
		fmt.Fprintf(sb, "Charts:        %s\n", report.ChartsPath)
	}
	sb.WriteString("\n")
}

// writeMissing writes the missing-value counts before and after cleaning.
func (w *SimpleWriter) writeMissing(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("--- Missing Values ---\n\n")

	if len(report.MissingBefore) == 0 {
		sb.WriteString("No columns inspected.\n\n")
		return
	}

	after := make(map[string]int, len(report.MissingAfter))
	for _, c := range report.MissingAfter {
		after[c.Column] = c.Count
	}

	width := 0
	for _, c := range report.MissingBefore {
		if len(c.Column) > width {
			width = len(c.Column)
		}
	}

	fmt.Fprintf(sb, "%-*s  %8s  %8s\n", width, "Column", "Before", "After")
	for _, c := range report.MissingBefore {
		fmt.Fprintf(sb, "%-*s  %8d  %8d\n", width, c.Column, c.Count, after[c.Column])
	}
	fmt.Fprintf(sb, "\nTotal missing: %d before, %d after\n\n",
		report.MissingBefore.Total(), report.MissingAfter.Total())
}

// writeCleaning writes the cleaning summary: medians and dropped rows.
func (w *SimpleWriter) writeCleaning(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("--- Cleaning Summary ---\n\n")

	if len(report.Medians) > 0 {
		sb.WriteString("Imputed numeric columns (median fill):\n")
		for _, column := range sortedKeys(report.Medians) {
			fmt.Fprintf(sb, "  %s = %g\n", column, report.Medians[column])
		}
	} else {
		sb.WriteString("No numeric columns required imputation.\n")
	}

	fmt.Fprintf(sb, "Sparse rows dropped:    %d\n", report.SparseRowsDropped)
	fmt.Fprintf(sb, "Duplicate rows dropped: %d\n", report.DuplicateRowsDropped)

	if report.RowsAfterCleaning == 0 {
		sb.WriteString("\nWARNING: dataset is empty after cleaning. Check the data source.\n")
	}
	sb.WriteString("\n")
}

// writeFrequencies writes the categorical frequency tables.
func (w *SimpleWriter) writeFrequencies(sb *strings.Builder, report *model.AnalysisReport) {
	w.writeFrequencyTable(sb, "Incident Types", report.IncidentTypeFrequency)
	w.writeFrequencyTable(sb, "Boroughs", report.BoroughFrequency)
}

// writeFrequencyTable writes one frequency table, truncated unless verbose.
func (w *SimpleWriter) writeFrequencyTable(sb *strings.Builder, title string, ft *model.FrequencyTable) {
	if ft == nil {
		return
	}

	fmt.Fprintf(sb, "--- %s (%d distinct) ---\n\n", title, ft.Len())

	limit := ft.Len()
	if !w.verbose && limit > maxFrequencyRows {
		limit = maxFrequencyRows
	}

	for _, e := range ft.Entries[:limit] {
		fmt.Fprintf(sb, "  %6d  %s\n", e.Count, e.Value)
	}
	if limit < ft.Len() {
		fmt.Fprintf(sb, "  ... %d more\n", ft.Len()-limit)
	}
	sb.WriteString("\n")
}

// writeHypothesisTests writes both test results with their conclusions.
func (w *SimpleWriter) writeHypothesisTests(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("--- Hypothesis Tests ---\n\n")

	if report.ChiSquare == nil && report.TTest == nil {
		sb.WriteString("No hypothesis tests were run.\n\n")
		return
	}

	if cs := report.ChiSquare; cs != nil {
		sb.WriteString("Chi-square goodness-of-fit (borough distribution):\n")
		fmt.Fprintf(sb, "  statistic = %.4f\n", cs.Statistic)
		fmt.Fprintf(sb, "  p-value   = %.6g\n", cs.PValue)
		fmt.Fprintf(sb, "  dof       = %d\n", cs.DegreesOfFreedom)
		fmt.Fprintf(sb, "  %s\n\n", chiSquareConclusion(cs))
	}

	if tt := report.TTest; tt != nil {
		fmt.Fprintf(sb, "Welch t-test (top %d vs bottom %d boroughs):\n",
			tt.HighGroupSize, tt.LowGroupSize)
		fmt.Fprintf(sb, "  statistic = %.4f\n", tt.Statistic)
		fmt.Fprintf(sb, "  p-value   = %.6g\n", tt.PValue)
		fmt.Fprintf(sb, "  dof       = %.2f\n", tt.DegreesOfFreedom)
		fmt.Fprintf(sb, "  %s\n\n", tTestConclusion(tt))
	}
}

// writeWarnings writes the warnings section when any were recorded.
func (w *SimpleWriter) writeWarnings(sb *strings.Builder, report *model.AnalysisReport) {
	if !report.HasWarnings() {
		return
	}

	sb.WriteString("--- Warnings ---\n\n")
	for _, warning := range report.Warnings {
		fmt.Fprintf(sb, "  ! %s\n", warning)
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// sortedKeys returns the map keys in ascending order for stable output.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
