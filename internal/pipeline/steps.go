package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/nao1215/asbscan/internal/chart"
	"github.com/nao1215/asbscan/internal/clean"
	"github.com/nao1215/asbscan/internal/config"
	"github.com/nao1215/asbscan/internal/dataset"
	"github.com/nao1215/asbscan/internal/model"
	"github.com/nao1215/asbscan/internal/stats"
)

// LoadStep reads the raw CSV into the report's frame.
// A missing or unreadable file is fatal; this is the only step besides
// persistence that can abort a run.
type LoadStep struct{}

// NewLoadStep creates a load step.
func NewLoadStep() *LoadStep {
	return &LoadStep{}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, report *model.AnalysisReport) error {
	df, err := dataset.Load(report.SourcePath)
	if err != nil {
		return err
	}

	report.Frame = df
	report.RowsLoaded = df.Nrow()
	return nil
}

// DetectSchemaStep inspects the loaded table once and records which
// optional columns are present. Later guarded steps consult the result
// instead of re-checking, and every absent column is warned about here
// in one place.
type DetectSchemaStep struct {
	columns config.ColumnNames
}

// NewDetectSchemaStep creates a schema-detection step for the given
// column mapping.
func NewDetectSchemaStep(columns config.ColumnNames) *DetectSchemaStep {
	return &DetectSchemaStep{columns: columns}
}

// Name returns the step name.
func (s *DetectSchemaStep) Name() string {
	return "detect_schema"
}

// Do executes the schema-detection step.
func (s *DetectSchemaStep) Do(_ context.Context, report *model.AnalysisReport) error {
	caps := dataset.DetectCapabilities(report.Frame, s.columns)
	report.Capabilities = caps

	if !caps.HasResponseTime {
		report.AddWarning(fmt.Sprintf("column %q not found; response-time coercion skipped", s.columns.ResponseTime))
	}
	if !caps.HasHour {
		report.AddWarning(fmt.Sprintf("column %q not found; hour coercion and histogram skipped", s.columns.Hour))
	}
	if !caps.HasIncidentType {
		report.AddWarning(fmt.Sprintf("column %q not found; incident-type chart skipped", s.columns.IncidentType))
	}
	if !caps.HasBorough {
		report.AddWarning(fmt.Sprintf("column %q not found; borough chart and hypothesis tests skipped", s.columns.Borough))
	}

	return nil
}

// CleanStep runs the cleaning sequence and records missing-value counts
// before and after. Cleaning itself cannot fail; every data-quality
// problem is absorbed into missing markers or warnings.
type CleanStep struct {
	columns  config.ColumnNames
	sentinel string
	logger   *slog.Logger
}

// CleanStepOption configures a CleanStep.
type CleanStepOption func(*CleanStep)

// WithCleanSentinel overrides the fill value for missing textual cells.
func WithCleanSentinel(sentinel string) CleanStepOption {
	return func(s *CleanStep) {
		s.sentinel = sentinel
	}
}

// WithCleanLogger sets a custom logger for the clean step.
func WithCleanLogger(logger *slog.Logger) CleanStepOption {
	return func(s *CleanStep) {
		s.logger = logger
	}
}

// NewCleanStep creates a cleaning step for the given column mapping.
func NewCleanStep(columns config.ColumnNames, opts ...CleanStepOption) *CleanStep {
	s := &CleanStep{
		columns:  columns,
		sentinel: config.CategoricalFillValue,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *CleanStep) Name() string {
	return "clean"
}

// Do executes the cleaning step.
func (s *CleanStep) Do(_ context.Context, report *model.AnalysisReport) error {
	// Captured before any coercion so the report shows the raw state.
	report.MissingBefore = dataset.CountMissing(report.Frame)

	cleaner := clean.New(
		clean.WithResponseTimeColumn(s.columns.ResponseTime),
		clean.WithHourColumn(s.columns.Hour),
		clean.WithSentinel(s.sentinel),
		clean.WithLogger(s.logger),
	)

	cleaned, result := cleaner.Clean(report.Frame)

	report.Frame = cleaned
	report.Medians = result.Medians
	report.SparseRowsDropped = result.SparseRowsDropped
	report.DuplicateRowsDropped = result.DuplicateRowsDropped
	report.RowsAfterCleaning = cleaned.Nrow()
	report.MissingAfter = dataset.CountMissing(cleaned)

	for _, w := range result.Warnings {
		report.AddWarning(w)
	}
	if report.RowsAfterCleaning == 0 {
		report.AddWarning("dataset is empty after cleaning; check the data source")
	}

	return nil
}

// PersistStep writes the cleaned table to the output CSV.
// An unwritable destination is fatal.
type PersistStep struct {
	path string
}

// NewPersistStep creates a persist step targeting the given path.
func NewPersistStep(path string) *PersistStep {
	return &PersistStep{path: path}
}

// Name returns the step name.
func (s *PersistStep) Name() string {
	return "persist"
}

// Do executes the persist step.
func (s *PersistStep) Do(_ context.Context, report *model.AnalysisReport) error {
	if err := dataset.Write(report.Frame, s.path); err != nil {
		return err
	}

	report.OutputPath = s.path
	return nil
}

// FrequencyStep builds the value-frequency tables of the incident-type
// and borough columns. Absent columns were already warned about by the
// schema step, so missing ones are simply skipped.
type FrequencyStep struct {
	columns config.ColumnNames
}

// NewFrequencyStep creates a frequency step for the given column mapping.
func NewFrequencyStep(columns config.ColumnNames) *FrequencyStep {
	return &FrequencyStep{columns: columns}
}

// Name returns the step name.
func (s *FrequencyStep) Name() string {
	return "frequency"
}

// Do executes the frequency step.
func (s *FrequencyStep) Do(_ context.Context, report *model.AnalysisReport) error {
	if report.Capabilities.HasIncidentType {
		ft, err := dataset.ValueCounts(report.Frame, s.columns.IncidentType)
		if err != nil {
			return err
		}
		report.IncidentTypeFrequency = ft
	}

	if report.Capabilities.HasBorough {
		ft, err := dataset.ValueCounts(report.Frame, s.columns.Borough)
		if err != nil {
			return err
		}
		report.BoroughFrequency = ft
	}

	return nil
}

// ChartStep renders the available charts into one HTML dashboard.
// Each chart is independently guarded on its column; when no chart can
// be produced, no file is written.
type ChartStep struct {
	path    string
	columns config.ColumnNames
}

// NewChartStep creates a chart step targeting the given dashboard path.
func NewChartStep(path string, columns config.ColumnNames) *ChartStep {
	return &ChartStep{path: path, columns: columns}
}

// Name returns the step name.
func (s *ChartStep) Name() string {
	return "charts"
}

// Do executes the chart step.
func (s *ChartStep) Do(_ context.Context, report *model.AnalysisReport) error {
	var cs []components.Charter

	if report.IncidentTypeFrequency != nil && report.IncidentTypeFrequency.Len() > 0 {
		cs = append(cs, chart.FrequencyBar("Most Frequent ASB Types", report.IncidentTypeFrequency))
	}

	if report.Capabilities.HasHour {
		hours := observedValues(report, s.columns.Hour)
		if len(hours) > 0 {
			cs = append(cs, chart.HourHistogram("ASB Incidents by Hour", hours))
		}
	}

	if report.BoroughFrequency != nil && report.BoroughFrequency.Len() > 0 {
		cs = append(cs, chart.FrequencyBar("ASB Incidents by Borough", report.BoroughFrequency))
	}

	if len(cs) == 0 {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create charts directory: %w", err)
		}
	}

	f, err := os.Create(s.path) //nolint:gosec // User-provided charts path is intentional
	if err != nil {
		return fmt.Errorf("failed to create charts file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Render errors are surfaced below

	if err := chart.Render(f, cs...); err != nil {
		return err
	}

	report.ChartsPath = s.path
	return nil
}

// observedValues returns the non-missing values of a numeric column.
func observedValues(report *model.AnalysisReport, column string) []float64 {
	values := report.Frame.Col(column).Float()
	observed := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		observed = append(observed, v)
	}
	return observed
}

// ChiSquareStep runs the goodness-of-fit test over borough counts.
// Degenerate inputs (a single borough) downgrade to a warning.
type ChiSquareStep struct {
	alpha float64
}

// NewChiSquareStep creates a chi-square step with the given significance
// threshold.
func NewChiSquareStep(alpha float64) *ChiSquareStep {
	return &ChiSquareStep{alpha: alpha}
}

// Name returns the step name.
func (s *ChiSquareStep) Name() string {
	return "chi_square"
}

// Do executes the chi-square step.
func (s *ChiSquareStep) Do(_ context.Context, report *model.AnalysisReport) error {
	ft := report.BoroughFrequency
	if ft == nil {
		return nil
	}

	result, err := stats.ChiSquareGoodnessOfFit(ft.Counts(), s.alpha)
	if err != nil {
		report.AddWarning(fmt.Sprintf("chi-square test skipped: %v", err))
		return nil
	}

	report.ChiSquare = result
	return nil
}

// TTestStep runs the Welch t-test between the highest-count and
// lowest-count boroughs. Degenerate samples downgrade to a warning.
type TTestStep struct {
	alpha     float64
	groupSize int
}

// NewTTestStep creates a t-test step with the given significance
// threshold and group size.
func NewTTestStep(alpha float64, groupSize int) *TTestStep {
	return &TTestStep{alpha: alpha, groupSize: groupSize}
}

// Name returns the step name.
func (s *TTestStep) Name() string {
	return "t_test"
}

// Do executes the t-test step.
func (s *TTestStep) Do(_ context.Context, report *model.AnalysisReport) error {
	ft := report.BoroughFrequency
	if ft == nil {
		return nil
	}

	high, low, err := stats.TopBottomSplit(ft, s.groupSize)
	if err != nil {
		report.AddWarning(fmt.Sprintf("t-test skipped: %v", err))
		return nil
	}

	result, err := stats.WelchTTest(high, low, s.alpha)
	if err != nil {
		report.AddWarning(fmt.Sprintf("t-test skipped: %v", err))
		return nil
	}

	report.TTest = result
	return nil
}

// DefaultPipeline wires the full analysis sequence from the given
// configuration: load, detect schema, clean, persist, frequencies,
// charts, chi-square, t-test.
func DefaultPipeline(cfg *config.Config, opts ...Option) *Pipeline {
	p := New(opts...)

	p.AddSteps(
		NewLoadStep(),
		NewDetectSchemaStep(cfg.Columns),
		NewCleanStep(cfg.Columns, WithCleanLogger(p.logger)),
		NewPersistStep(cfg.OutputPath),
		NewFrequencyStep(cfg.Columns),
		NewChartStep(cfg.ChartsPath, cfg.Columns),
		NewChiSquareStep(cfg.Alpha),
		NewTTestStep(cfg.Alpha, cfg.GroupSize),
	)

	return p
}
