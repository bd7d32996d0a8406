package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the Metropolitan Police Service antisocial-behaviour extract
// the tool was originally written against. Differently-labelled extracts
// can override the column names via a .asbscan configuration file.
const (
	// DefaultInputFile is the expected name of the raw incident extract.
	DefaultInputFile = "MPS_Antisocial_Behaviour.csv"

	// DefaultOutputFile is where the cleaned table is written.
	DefaultOutputFile = "cleaned_ASB_data.csv"

	// DefaultChartsFile is the file name of the HTML chart dashboard.
	// It is placed in the XDG data directory unless overridden.
	DefaultChartsFile = "asb_charts.html"

	// DefaultResponseTimeColumn is the numeric response-time column.
	// Extracts mix numeric and free-text values here, so the cleaner
	// coerces it cell by cell.
	DefaultResponseTimeColumn = "Response_Time"

	// DefaultHourColumn holds clock times in 24-hour HH:MM form.
	// The cleaner reduces it to the integer hour component.
	DefaultHourColumn = "Hour"

	// DefaultIncidentTypeColumn is the categorical incident-type column
	// charted as a frequency bar chart.
	DefaultIncidentTypeColumn = "Opening_Type_1"

	// DefaultBoroughColumn is the borough-name column. Both hypothesis
	// tests and the borough chart are guarded on its presence.
	DefaultBoroughColumn = "Safer_Neighborhood_Team_Borough_Name"

	// DefaultAlpha is the significance threshold for both hypothesis
	// tests. 0.05 is the conventional value and the one the original
	// analysis used.
	DefaultAlpha = 0.05

	// DefaultGroupSize is how many top and bottom boroughs the t-test
	// compares. With fewer boroughs the groups are capped at the count.
	DefaultGroupSize = 10

	// DefaultHistogramBins is the bin count of the hour histogram.
	// One bin per hour of the day.
	DefaultHistogramBins = 24

	// CategoricalFillValue replaces missing cells in textual columns.
	// A literal sentinel, not the missing marker, so downstream grouping
	// treats unknowns as their own category.
	CategoricalFillValue = "Unknown"

	// AppName is the application name used for XDG directory paths.
	AppName = "asbscan"
)

// ColumnNames maps the analysis roles to concrete column headers.
// Any of these columns may legitimately be absent from the input; the
// dependent steps are skipped with a warning rather than failing the run.
type ColumnNames struct {
	// ResponseTime is coerced to numeric during cleaning.
	ResponseTime string `yaml:"response_time"`

	// Hour is parsed from HH:MM clock times to an integer 0-23.
	Hour string `yaml:"hour"`

	// IncidentType is charted as a frequency bar chart.
	IncidentType string `yaml:"incident_type"`

	// Borough drives the borough chart and both hypothesis tests.
	Borough string `yaml:"borough"`
}

// DefaultColumnNames returns the column headers of the MPS extract.
func DefaultColumnNames() ColumnNames {
	return ColumnNames{
		ResponseTime: DefaultResponseTimeColumn,
		Hour:         DefaultHourColumn,
		IncidentType: DefaultIncidentTypeColumn,
		Borough:      DefaultBoroughColumn,
	}
}

// Config holds all configuration options for one analysis run.
// It is populated from CLI flags, optionally overlaid from a .asbscan
// file, and passed through the application via dependency injection
// rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for the same reason the option count stays manageable: one run has one
// input, one output, and a handful of thresholds.
type Config struct {
	// InputPath is the raw incident CSV to analyze.
	InputPath string

	// OutputPath is where the cleaned CSV is written.
	OutputPath string

	// ChartsPath is where the HTML chart dashboard is written.
	ChartsPath string

	// ReportFile is the output path for the analysis report.
	// When empty the report goes to stdout.
	ReportFile string

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Alpha is the significance threshold for both hypothesis tests.
	// Must be strictly between 0 and 1.
	Alpha float64

	// GroupSize is how many top and bottom boroughs the t-test compares.
	GroupSize int

	// HistogramBins is the bin count of the hour histogram.
	HistogramBins int

	// Columns maps analysis roles to column headers.
	Columns ColumnNames

	// ConfigFilePath is an explicit path to the configuration file.
	// When empty, .asbscan is searched in the current directory, the
	// home directory, and the XDG config directory, in that order.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
// Users override specific fields after creation (typically from flags).
func NewConfig() *Config {
	return &Config{
		InputPath:     DefaultInputFile,
		OutputPath:    DefaultOutputFile,
		ChartsPath:    filepath.Join(XDGDataDir(), DefaultChartsFile),
		Alpha:         DefaultAlpha,
		GroupSize:     DefaultGroupSize,
		HistogramBins: DefaultHistogramBins,
		Columns:       DefaultColumnNames(),
	}
}

// XDGDataDir returns the XDG data directory for asbscan.
// On Linux: ~/.local/share/asbscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for asbscan.
// On Linux: ~/.config/asbscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found; fixing one often makes the rest
// irrelevant, and a single clear message beats a list.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}

	if c.OutputPath == "" {
		return ErrNoOutput
	}

	// Alpha outside (0, 1) would make every decision rule degenerate.
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return ErrInvalidAlpha
	}

	if c.GroupSize <= 0 {
		return ErrInvalidGroupSize
	}

	if c.HistogramBins <= 0 {
		return ErrInvalidHistogramBins
	}

	// JSONReport and MarkdownReport are mutually exclusive.
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
