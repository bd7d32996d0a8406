package report

import (
	"strings"
	"testing"
	"time"

	"github.com/nao1215/asbscan/internal/model"
)

// newTestReport builds a fully populated report for writer tests.
func newTestReport() *model.AnalysisReport {
	r := model.NewAnalysisReport("incidents.csv")
	r.AnalyzedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	r.OutputPath = "cleaned_ASB_data.csv"
	r.ChartsPath = "asb_charts.html"
	r.RowsLoaded = 100
	r.RowsAfterCleaning = 95
	r.SparseRowsDropped = 2
	r.DuplicateRowsDropped = 3
	r.MissingBefore = model.MissingReport{
		{Column: "Response_Time", Count: 10},
		{Column: "Borough", Count: 5},
	}
	r.MissingAfter = model.MissingReport{
		{Column: "Response_Time", Count: 0},
		{Column: "Borough", Count: 0},
	}
	r.Medians = map[string]float64{"Response_Time": 7.5}
	r.IncidentTypeFrequency = &model.FrequencyTable{
		Column: "Opening_Type_1",
		Entries: []model.FrequencyEntry{
			{Value: "Noise", Count: 60},
			{Value: "Litter", Count: 35},
		},
	}
	r.BoroughFrequency = &model.FrequencyTable{
		Column: "Borough",
		Entries: []model.FrequencyEntry{
			{Value: "Camden", Count: 50},
			{Value: "Hackney", Count: 30},
			{Value: "Islington", Count: 15},
		},
	}
	r.ChiSquare = &model.ChiSquareResult{
		Statistic:        19.47,
		PValue:           0.00006,
		DegreesOfFreedom: 2,
		Alpha:            0.05,
		RejectNull:       true,
	}
	r.TTest = &model.WelchTTestResult{
		Statistic:        4.2,
		PValue:           0.01,
		DegreesOfFreedom: 3.7,
		HighGroupSize:    3,
		LowGroupSize:     3,
		Alpha:            0.05,
		RejectNull:       true,
	}
	r.AddWarning("column \"Hour\" not found; hour coercion and histogram skipped")
	return r
}

// TestSimpleWriterWrite tests human-readable report output.
func TestSimpleWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("renders every section of a full report", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		w := NewSimpleWriter(&buf)

		n, err := w.Write(newTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n == 0 {
			t.Error("expected bytes written")
		}

		out := buf.String()
		for _, want := range []string{
			"ASB ANALYSIS REPORT",
			"incidents.csv",
			"Rows loaded:   100",
			"Rows cleaned:  95",
			"--- Missing Values ---",
			"Response_Time",
			"--- Cleaning Summary ---",
			"Response_Time = 7.5",
			"Sparse rows dropped:    2",
			"Duplicate rows dropped: 3",
			"--- Incident Types (2 distinct) ---",
			"--- Boroughs (3 distinct) ---",
			"Camden",
			"--- Hypothesis Tests ---",
			"Chi-square goodness-of-fit",
			"Reject H0: incidents are not uniformly distributed across boroughs.",
			"Welch t-test (top 3 vs bottom 3 boroughs)",
			"Reject H0: high-incident boroughs differ significantly",
			"--- Warnings ---",
			"hour coercion and histogram skipped",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("truncates long frequency tables unless verbose", func(t *testing.T) {
		t.Parallel()

		r := newTestReport()
		entries := make([]model.FrequencyEntry, 15)
		for i := range entries {
			entries[i] = model.FrequencyEntry{Value: string(rune('A' + i)), Count: 15 - i}
		}
		r.BoroughFrequency = &model.FrequencyTable{Column: "Borough", Entries: entries}

		var plain strings.Builder
		if _, err := NewSimpleWriter(&plain).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(plain.String(), "... 5 more") {
			t.Error("expected truncation marker in plain output")
		}

		var verbose strings.Builder
		if _, err := NewSimpleWriter(&verbose, WithVerbose(true)).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(verbose.String(), "more") {
			t.Error("expected no truncation in verbose output")
		}
	})

	t.Run("flags an empty dataset after cleaning", func(t *testing.T) {
		t.Parallel()

		r := newTestReport()
		r.RowsAfterCleaning = 0

		var buf strings.Builder
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "WARNING: dataset is empty after cleaning") {
			t.Error("expected empty-dataset warning")
		}
	})

	t.Run("skipped tests produce a placeholder", func(t *testing.T) {
		t.Parallel()

		r := newTestReport()
		r.ChiSquare = nil
		r.TTest = nil

		var buf strings.Builder
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "No hypothesis tests were run.") {
			t.Error("expected placeholder for skipped tests")
		}
	})
}
