package dataset

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// nanValues are the cell tokens read as the missing marker.
// The empty string is included because the MPS extract leaves blank cells
// for unknown values rather than writing an explicit NA token.
var nanValues = []string{"", "NA", "NaN", "N/A", "null"}

// Load reads a delimited file into a DataFrame.
//
// Column types are inferred permissively: a column parses as numeric only
// when every non-missing cell does; everything else stays textual. The
// first row is the header. A UTF-8 byte order mark, common in extracts
// saved from Windows tooling, is stripped transparently.
//
// Load fails with ErrDatasetOpen when the file is missing or unreadable
// and ErrDatasetParse when the CSV structure is malformed. Both are fatal
// to the run; bad cell values are not errors here.
func Load(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", ErrDatasetOpen, path, err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	// BOM-tolerant UTF-8 decoding. The decoder passes plain UTF-8
	// through unchanged.
	r := transform.NewReader(f, unicode.UTF8BOM.NewDecoder())

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", ErrDatasetParse, path, df.Err)
	}

	return df, nil
}

// LoadRecords builds a DataFrame from in-memory records using the same
// inference rules as Load. The first record is the header. Intended for
// tests and small fixtures.
func LoadRecords(records [][]string) dataframe.DataFrame {
	return dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
}
