package model

import (
	"testing"
)

// TestNewAnalysisReport tests report construction.
func TestNewAnalysisReport(t *testing.T) {
	t.Parallel()

	r := NewAnalysisReport("incidents.csv")

	if r.SourcePath != "incidents.csv" {
		t.Errorf("expected source path, got %q", r.SourcePath)
	}
	if r.AnalyzedAt.IsZero() {
		t.Error("expected analysis timestamp")
	}
	if r.HasWarnings() {
		t.Error("expected no warnings on a fresh report")
	}
}

// TestAnalysisReportWarnings tests warning accumulation.
func TestAnalysisReportWarnings(t *testing.T) {
	t.Parallel()

	r := NewAnalysisReport("incidents.csv")

	r.AddWarning("first")
	r.AddWarning("second")

	if !r.HasWarnings() {
		t.Error("expected warnings recorded")
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d", len(r.Warnings))
	}
	if r.Warnings[0] != "first" || r.Warnings[1] != "second" {
		t.Errorf("expected insertion order preserved, got %v", r.Warnings)
	}
}

// TestMissingReportTotal tests missing-cell aggregation.
func TestMissingReportTotal(t *testing.T) {
	t.Parallel()

	t.Run("sums all columns", func(t *testing.T) {
		t.Parallel()

		m := MissingReport{
			{Column: "A", Count: 3},
			{Column: "B", Count: 0},
			{Column: "C", Count: 2},
		}

		if got := m.Total(); got != 5 {
			t.Errorf("expected total 5, got %d", got)
		}
	})

	t.Run("empty report totals zero", func(t *testing.T) {
		t.Parallel()

		if got := (MissingReport{}).Total(); got != 0 {
			t.Errorf("expected total 0, got %d", got)
		}
	})
}

// TestFrequencyTable tests count extraction helpers.
func TestFrequencyTable(t *testing.T) {
	t.Parallel()

	ft := &FrequencyTable{
		Column: "Borough",
		Entries: []FrequencyEntry{
			{Value: "Camden", Count: 50},
			{Value: "Hackney", Count: 30},
			{Value: "Islington", Count: 15},
			{Value: "Lambeth", Count: 5},
		},
	}

	t.Run("Counts returns table order", func(t *testing.T) {
		t.Parallel()

		want := []float64{50, 30, 15, 5}
		got := ft.Counts()
		for i, v := range want {
			if got[i] != v {
				t.Errorf("count %d: got %g, expected %g", i, got[i], v)
			}
		}
	})

	t.Run("Top returns the leading counts", func(t *testing.T) {
		t.Parallel()

		got := ft.Top(2)
		if len(got) != 2 || got[0] != 50 || got[1] != 30 {
			t.Errorf("expected [50 30], got %v", got)
		}
	})

	t.Run("Bottom returns the trailing counts", func(t *testing.T) {
		t.Parallel()

		got := ft.Bottom(2)
		if len(got) != 2 || got[0] != 15 || got[1] != 5 {
			t.Errorf("expected [15 5], got %v", got)
		}
	})

	t.Run("Top and Bottom cap at the table size", func(t *testing.T) {
		t.Parallel()

		if got := ft.Top(10); len(got) != 4 {
			t.Errorf("expected 4 counts, got %d", len(got))
		}
		if got := ft.Bottom(10); len(got) != 4 {
			t.Errorf("expected 4 counts, got %d", len(got))
		}
	})

	t.Run("Len counts distinct values", func(t *testing.T) {
		t.Parallel()

		if ft.Len() != 4 {
			t.Errorf("expected 4, got %d", ft.Len())
		}
	})
}
