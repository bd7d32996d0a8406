package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/asbscan/internal/config"
	"github.com/nao1215/asbscan/internal/dataset"
	"github.com/nao1215/asbscan/internal/model"
)

// writeTestCSV writes a CSV fixture and returns its path.
func writeTestCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// fullExtract is a small but schema-complete incident extract.
const fullExtract = `Response_Time,Hour,Opening_Type_1,Safer_Neighborhood_Team_Borough_Name
5,08:15,Noise,Camden
bad,14:30,Litter,Hackney
7,09:00,Noise,Camden
3,10:45,Noise,Islington
5,08:15,Noise,Camden
2,11:00,Litter,Camden
4,12:30,Noise,Hackney
`

// testConfig returns a config pointing all outputs into a temp directory.
func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.NewConfig()
	cfg.InputPath = input
	cfg.OutputPath = filepath.Join(dir, "cleaned.csv")
	cfg.ChartsPath = filepath.Join(dir, "charts.html")
	cfg.GroupSize = 2
	return cfg
}

// TestDefaultPipeline tests the fully wired analysis sequence.
func TestDefaultPipeline(t *testing.T) {
	t.Parallel()

	t.Run("registers the full step sequence", func(t *testing.T) {
		t.Parallel()

		p := DefaultPipeline(config.NewConfig())

		want := []string{
			"load", "detect_schema", "clean", "persist",
			"frequency", "charts", "chi_square", "t_test",
		}
		names := p.StepNames()
		if len(names) != len(want) {
			t.Fatalf("expected %d steps, got %d", len(want), len(names))
		}
		for i, name := range want {
			if names[i] != name {
				t.Errorf("step %d: got %q, expected %q", i, names[i], name)
			}
		}
	})

	t.Run("analyzes a schema-complete extract end to end", func(t *testing.T) {
		t.Parallel()

		input := writeTestCSV(t, "incidents.csv", fullExtract)
		cfg := testConfig(t, input)

		report := model.NewAnalysisReport(cfg.InputPath)
		p := DefaultPipeline(cfg)

		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.RowsLoaded != 7 {
			t.Errorf("expected 7 rows loaded, got %d", report.RowsLoaded)
		}
		// One exact duplicate row is removed; the bad response time is
		// median-filled so nothing is sparse.
		if report.DuplicateRowsDropped != 1 {
			t.Errorf("expected 1 duplicate dropped, got %d", report.DuplicateRowsDropped)
		}
		if report.RowsAfterCleaning != 6 {
			t.Errorf("expected 6 rows after cleaning, got %d", report.RowsAfterCleaning)
		}
		if report.MissingAfter.Total() != 0 {
			t.Errorf("expected no missing cells after cleaning, got %d", report.MissingAfter.Total())
		}
		if _, ok := report.Medians["Response_Time"]; !ok {
			t.Error("expected response-time median recorded")
		}

		// Cleaned CSV exists and loads back.
		cleaned, err := dataset.Load(report.OutputPath)
		if err != nil {
			t.Fatalf("failed to reload cleaned CSV: %v", err)
		}
		if cleaned.Nrow() != report.RowsAfterCleaning {
			t.Errorf("cleaned CSV has %d rows, report says %d",
				cleaned.Nrow(), report.RowsAfterCleaning)
		}

		// Charts dashboard exists.
		if report.ChartsPath == "" {
			t.Fatal("expected charts path set")
		}
		if _, err := os.Stat(report.ChartsPath); err != nil {
			t.Errorf("expected charts file to exist: %v", err)
		}

		// Frequency tables and both hypothesis tests ran.
		if report.IncidentTypeFrequency == nil || report.BoroughFrequency == nil {
			t.Fatal("expected both frequency tables")
		}
		if report.BoroughFrequency.Entries[0].Value != "Camden" {
			t.Errorf("expected Camden most frequent, got %q",
				report.BoroughFrequency.Entries[0].Value)
		}
		if report.ChiSquare == nil {
			t.Error("expected chi-square result")
		}
		if report.TTest == nil {
			t.Error("expected t-test result")
		}
	})

	t.Run("borough-less extract skips tests but still cleans", func(t *testing.T) {
		t.Parallel()

		input := writeTestCSV(t, "no-borough.csv",
			"Response_Time,Hour\n5,08:15\nbad,14:30\n7,09:00\n")
		cfg := testConfig(t, input)

		report := model.NewAnalysisReport(cfg.InputPath)
		p := DefaultPipeline(cfg)

		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.ChiSquare != nil || report.TTest != nil {
			t.Error("expected hypothesis tests skipped")
		}
		if report.BoroughFrequency != nil {
			t.Error("expected no borough frequency table")
		}
		if _, err := os.Stat(report.OutputPath); err != nil {
			t.Errorf("expected cleaned CSV despite missing columns: %v", err)
		}

		warned := false
		for _, w := range report.Warnings {
			if strings.Contains(w, "hypothesis tests skipped") {
				warned = true
			}
		}
		if !warned {
			t.Errorf("expected borough warning, got %v", report.Warnings)
		}
	})

	t.Run("missing input aborts at the load step", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t, filepath.Join(t.TempDir(), "no-such.csv"))

		report := model.NewAnalysisReport(cfg.InputPath)
		p := DefaultPipeline(cfg)

		err := p.Execute(context.Background(), report)

		if !errors.Is(err, dataset.ErrDatasetOpen) {
			t.Errorf("expected ErrDatasetOpen, got %v", err)
		}
		if report.Error == nil {
			t.Error("expected error recorded on report")
		}
		if _, statErr := os.Stat(cfg.OutputPath); statErr == nil {
			t.Error("expected no cleaned CSV after a failed load")
		}
	})
}

// TestChiSquareStep tests the guarded goodness-of-fit step.
func TestChiSquareStep(t *testing.T) {
	t.Parallel()

	t.Run("single borough downgrades to a warning", func(t *testing.T) {
		t.Parallel()

		report := model.NewAnalysisReport("test.csv")
		report.BoroughFrequency = &model.FrequencyTable{
			Column:  "Borough",
			Entries: []model.FrequencyEntry{{Value: "Camden", Count: 10}},
		}

		step := NewChiSquareStep(0.05)
		if err := step.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.ChiSquare != nil {
			t.Error("expected no chi-square result")
		}
		if !report.HasWarnings() {
			t.Error("expected skip warning")
		}
	})

	t.Run("nil frequency table is a silent no-op", func(t *testing.T) {
		t.Parallel()

		report := model.NewAnalysisReport("test.csv")

		step := NewChiSquareStep(0.05)
		if err := step.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.HasWarnings() {
			t.Errorf("expected no warnings, got %v", report.Warnings)
		}
	})
}

// TestTTestStep tests the guarded Welch t-test step.
func TestTTestStep(t *testing.T) {
	t.Parallel()

	t.Run("degenerate groups downgrade to a warning", func(t *testing.T) {
		t.Parallel()

		report := model.NewAnalysisReport("test.csv")
		report.BoroughFrequency = &model.FrequencyTable{
			Column:  "Borough",
			Entries: []model.FrequencyEntry{{Value: "Camden", Count: 10}},
		}

		// Groups of one value each cannot carry a t-test.
		step := NewTTestStep(0.05, 10)
		if err := step.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.TTest != nil {
			t.Error("expected no t-test result")
		}
		if !report.HasWarnings() {
			t.Error("expected skip warning")
		}
	})
}
