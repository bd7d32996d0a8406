package dataset

import "errors"

// Data-access errors. These are the only error class that aborts a run;
// cell-level parse problems become missing values and absent columns
// become warnings.
var (
	// ErrDatasetOpen is returned when the input file is missing or
	// unreadable.
	ErrDatasetOpen = errors.New("cannot open dataset")

	// ErrDatasetParse is returned when the input file is not parseable
	// as delimited text (malformed CSV structure, not bad cell values).
	ErrDatasetParse = errors.New("cannot parse dataset")

	// ErrDatasetWrite is returned when the cleaned dataset cannot be
	// written to its destination.
	ErrDatasetWrite = errors.New("cannot write dataset")

	// ErrColumnNotFound is returned when an operation targets a column
	// the table does not have. Callers normally guard with HasColumn and
	// never see it.
	ErrColumnNotFound = errors.New("column not found")
)
