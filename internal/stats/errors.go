package stats

import "errors"

// Degenerate-input errors. The pipeline converts these into report
// warnings and skips the affected test; they never abort a run.
var (
	// ErrNotEnoughGroups is returned when a test needs at least two
	// categories and the frequency table has fewer.
	ErrNotEnoughGroups = errors.New("not enough groups for hypothesis test")

	// ErrNoObservations is returned when all counts are zero, leaving
	// the expected frequencies undefined.
	ErrNoObservations = errors.New("no observations in frequency table")
)
