package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
)

// Write serializes the table to a CSV file with a header row and no row
// index column. Parent directories are created as needed. Failure to
// create or fill the destination wraps ErrDatasetWrite and is fatal to
// the run.
func Write(df dataframe.DataFrame, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDatasetWrite, path, err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDatasetWrite, path, err)
	}

	if err := df.WriteCSV(f, dataframe.WriteHeader(true)); err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("%w: %s: %v", ErrDatasetWrite, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDatasetWrite, path, err)
	}

	return nil
}
