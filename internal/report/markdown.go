package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/asbscan/internal/model"
)

// pieChartSlices bounds the mermaid pie chart; smaller boroughs collapse
// into an "Other" slice so the chart stays readable.
const pieChartSlices = 10

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, GitHub-flavored alerts, and
// mermaid diagrams.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeMissing(md, report)
	w.writeCleaning(md, report)
	w.writeFrequencies(md, report)
	w.writeHypothesisTests(md, report)
	w.writeWarnings(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("ASB Analysis Report")
	md.PlainText("")

	rows := [][]string{
		{"Dataset", "`" + report.SourcePath + "`"},
		{"Analyzed", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
		{"Rows Loaded", strconv.Itoa(report.RowsLoaded)},
		{"Rows After Cleaning", strconv.Itoa(report.RowsAfterCleaning)},
	}
	if report.OutputPath != "" {
		rows = append(rows, []string{"Cleaned CSV", "`" + report.OutputPath + "`"})
	}
	if report.ChartsPath != "" {
		rows = append(rows, []string{"Charts", "`" + report.ChartsPath + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeMissing writes the per-column missing-value table.
func (w *MarkdownWriter) writeMissing(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Missing Values")
	md.PlainText("")

	if len(report.MissingBefore) == 0 {
		md.PlainText("No columns inspected.")
		md.PlainText("")
		return
	}

	after := make(map[string]int, len(report.MissingAfter))
	for _, c := range report.MissingAfter {
		after[c.Column] = c.Count
	}

	rows := make([][]string, 0, len(report.MissingBefore)+1)
	for _, c := range report.MissingBefore {
		rows = append(rows, []string{
			c.Column,
			strconv.Itoa(c.Count),
			strconv.Itoa(after[c.Column]),
		})
	}
	rows = append(rows, []string{
		"**Total**",
		"**" + strconv.Itoa(report.MissingBefore.Total()) + "**",
		"**" + strconv.Itoa(report.MissingAfter.Total()) + "**",
	})

	md.Table(markdown.TableSet{
		Header: []string{"Column", "Before", "After"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeCleaning writes the cleaning summary with an alert on the outcome.
func (w *MarkdownWriter) writeCleaning(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Cleaning Summary")
	md.PlainText("")

	rows := [][]string{
		{"Sparse rows dropped", strconv.Itoa(report.SparseRowsDropped)},
		{"Duplicate rows dropped", strconv.Itoa(report.DuplicateRowsDropped)},
	}
	for _, column := range sortedKeys(report.Medians) {
		rows = append(rows, []string{
			"Median fill for `" + column + "`",
			strconv.FormatFloat(report.Medians[column], 'g', -1, 64),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Step", "Result"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.RowsAfterCleaning == 0 {
		md.Caution("Dataset is empty after cleaning. Check the data source.")
	} else {
		md.Tipf("Data cleaning complete. %d rows remaining.", report.RowsAfterCleaning)
	}
	md.PlainText("")
}

// writeFrequencies writes the categorical frequency tables and a pie
// chart of the borough distribution.
func (w *MarkdownWriter) writeFrequencies(md *markdown.Markdown, report *model.AnalysisReport) {
	w.writeFrequencyTable(md, "Incident Types", report.IncidentTypeFrequency)
	w.writeFrequencyTable(md, "Boroughs", report.BoroughFrequency)

	if report.BoroughFrequency != nil && report.BoroughFrequency.Len() > 0 {
		w.writePieChart(md, report.BoroughFrequency)
	}
}

// writeFrequencyTable writes one frequency table section.
func (w *MarkdownWriter) writeFrequencyTable(md *markdown.Markdown, title string, ft *model.FrequencyTable) {
	if ft == nil {
		return
	}

	md.H2(title)
	md.PlainText("")

	rows := make([][]string, 0, ft.Len())
	for _, e := range ft.Entries {
		rows = append(rows, []string{e.Value, strconv.Itoa(e.Count)})
	}

	md.Table(markdown.TableSet{
		Header: []string{ft.Column, "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the borough distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, ft *model.FrequencyTable) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Incidents by Borough"),
		piechart.WithShowData(true),
	)

	other := 0
	for i, e := range ft.Entries {
		if i < pieChartSlices {
			chart.LabelAndIntValue(e.Value, uint64(e.Count)) //nolint:gosec // Counts are non-negative
			continue
		}
		other += e.Count
	}
	if other > 0 {
		chart.LabelAndIntValue("Other", uint64(other)) //nolint:gosec // Counts are non-negative
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeHypothesisTests writes both test results with conclusion alerts.
func (w *MarkdownWriter) writeHypothesisTests(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Hypothesis Tests")
	md.PlainText("")

	if report.ChiSquare == nil && report.TTest == nil {
		md.PlainText("No hypothesis tests were run.")
		md.PlainText("")
		return
	}

	if cs := report.ChiSquare; cs != nil {
		md.H3("Chi-Square Goodness-of-Fit")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Statistic", "P-Value", "Degrees of Freedom", "Alpha"},
			Rows: [][]string{{
				strconv.FormatFloat(cs.Statistic, 'f', 4, 64),
				strconv.FormatFloat(cs.PValue, 'g', 6, 64),
				strconv.Itoa(cs.DegreesOfFreedom),
				strconv.FormatFloat(cs.Alpha, 'g', -1, 64),
			}},
		})
		md.PlainText("")
		w.writeConclusion(md, cs.RejectNull, chiSquareConclusion(cs))
	}

	if tt := report.TTest; tt != nil {
		md.H3("Welch T-Test (High vs Low Boroughs)")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Statistic", "P-Value", "Degrees of Freedom", "Group Sizes", "Alpha"},
			Rows: [][]string{{
				strconv.FormatFloat(tt.Statistic, 'f', 4, 64),
				strconv.FormatFloat(tt.PValue, 'g', 6, 64),
				strconv.FormatFloat(tt.DegreesOfFreedom, 'f', 2, 64),
				strconv.Itoa(tt.HighGroupSize) + " / " + strconv.Itoa(tt.LowGroupSize),
				strconv.FormatFloat(tt.Alpha, 'g', -1, 64),
			}},
		})
		md.PlainText("")
		w.writeConclusion(md, tt.RejectNull, tTestConclusion(tt))
	}
}

// writeConclusion renders a decision as a GFM alert.
func (w *MarkdownWriter) writeConclusion(md *markdown.Markdown, reject bool, conclusion string) {
	if reject {
		md.Important(conclusion)
	} else {
		md.Note(conclusion)
	}
	md.PlainText("")
}

// writeWarnings writes recorded warnings as a single alert block.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, report *model.AnalysisReport) {
	if !report.HasWarnings() {
		return
	}

	md.H2("Warnings")
	md.PlainText("")
	md.BulletList(report.Warnings...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [asbscan](https://github.com/nao1215/asbscan)*")
}
