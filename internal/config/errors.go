package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no input file path is configured.
	ErrNoInput = errors.New("no input file specified: provide a CSV path or run in a directory containing " + DefaultInputFile)

	// ErrNoOutput is returned when the cleaned-CSV output path is empty.
	ErrNoOutput = errors.New("no output file specified for the cleaned dataset")

	// ErrInvalidAlpha is returned when the significance level is not
	// strictly between 0 and 1.
	ErrInvalidAlpha = errors.New("invalid significance level: must be between 0 and 1 exclusive")

	// ErrInvalidGroupSize is returned when the t-test group size is not
	// positive.
	ErrInvalidGroupSize = errors.New("invalid group size: must be positive")

	// ErrInvalidHistogramBins is returned when the histogram bin count is
	// not positive.
	ErrInvalidHistogramBins = errors.New("invalid histogram bins: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
