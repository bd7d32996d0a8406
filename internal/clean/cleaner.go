package clean

import (
	"log/slog"

	"github.com/go-gota/gota/dataframe"

	"github.com/nao1215/asbscan/internal/config"
)

// Cleaner runs the full cleaning sequence over a raw table.
// Construct with New; the zero value uses no column coercions.
type Cleaner struct {
	// responseTimeColumn is coerced to numeric. Empty disables the step.
	responseTimeColumn string

	// hourColumn is coerced from HH:MM to the integer hour.
	// Empty disables the step.
	hourColumn string

	// sentinel replaces missing cells in textual columns.
	sentinel string

	// logger for structured logging.
	logger *slog.Logger
}

// Result records what the cleaning sequence changed.
type Result struct {
	// Medians maps each imputed numeric column to its fill value.
	Medians map[string]float64

	// CategoricalFilled maps each imputed textual column to the number
	// of cells replaced by the sentinel.
	CategoricalFilled map[string]int

	// SparseRowsDropped is the number of rows removed for sparsity.
	SparseRowsDropped int

	// DuplicateRowsDropped is the number of exact duplicate rows removed.
	DuplicateRowsDropped int

	// Warnings lists non-fatal conditions, currently only numeric
	// columns whose median was undefined.
	Warnings []string
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithResponseTimeColumn names the column coerced to numeric.
func WithResponseTimeColumn(name string) Option {
	return func(c *Cleaner) {
		c.responseTimeColumn = name
	}
}

// WithHourColumn names the HH:MM column reduced to its hour component.
func WithHourColumn(name string) Option {
	return func(c *Cleaner) {
		c.hourColumn = name
	}
}

// WithSentinel sets the fill value for missing textual cells.
func WithSentinel(sentinel string) Option {
	return func(c *Cleaner) {
		c.sentinel = sentinel
	}
}

// WithLogger sets a custom logger for the cleaner.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cleaner) {
		c.logger = logger
	}
}

// New creates a Cleaner with the given options.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		sentinel: config.CategoricalFillValue,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Clean runs the ordered cleaning sequence and returns the cleaned frame
// plus a record of every change. Coercion steps whose column is absent
// are no-ops; Clean itself cannot fail on data quality.
func (c *Cleaner) Clean(df dataframe.DataFrame) (dataframe.DataFrame, *Result) {
	result := &Result{}

	if c.responseTimeColumn != "" {
		df = CoerceNumeric(df, c.responseTimeColumn)
		c.logger.Debug("coerced column to numeric", "column", c.responseTimeColumn)
	}

	if c.hourColumn != "" {
		df = CoerceHour(df, c.hourColumn)
		c.logger.Debug("coerced column to hour of day", "column", c.hourColumn)
	}

	var medians map[string]float64
	df, medians, result.Warnings = ImputeNumeric(df)
	result.Medians = medians
	c.logger.Debug("imputed numeric columns", "columns", len(medians))

	df, result.CategoricalFilled = ImputeCategorical(df, c.sentinel)
	c.logger.Debug("imputed categorical columns", "columns", len(result.CategoricalFilled))

	df, result.SparseRowsDropped = DropSparseRows(df)
	if result.SparseRowsDropped > 0 {
		c.logger.Info("dropped sparse rows", "rows", result.SparseRowsDropped)
	}

	df, result.DuplicateRowsDropped = DropDuplicates(df)
	if result.DuplicateRowsDropped > 0 {
		c.logger.Info("dropped duplicate rows", "rows", result.DuplicateRowsDropped)
	}

	return df, result
}
