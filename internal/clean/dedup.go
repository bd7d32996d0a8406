package clean

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// rowKeySeparator joins cell values into a row identity key. A unit
// separator cannot appear in CSV cell text that gota produces, so two
// distinct rows never collide.
const rowKeySeparator = "\x1f"

// DropDuplicates removes rows that are exact duplicates of an earlier row
// across all columns, keeping the first occurrence. Missing markers
// compare equal to each other, so two rows missing the same fields are
// duplicates. The operation is idempotent.
//
// Returns the deduplicated frame and the number of rows removed.
func DropDuplicates(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	nrow := df.Nrow()
	if nrow == 0 {
		return df, 0
	}

	// Records returns the header as row 0; skip it.
	rows := df.Records()[1:]

	seen := make(map[string]struct{}, nrow)
	keep := make([]int, 0, nrow)
	for i, row := range rows {
		key := strings.Join(row, rowKeySeparator)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	if len(keep) == nrow {
		return df, 0
	}

	return df.Subset(keep), nrow - len(keep)
}
