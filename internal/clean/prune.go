package clean

import (
	"github.com/go-gota/gota/dataframe"
)

// DropSparseRows removes rows that have fewer than floor(ncol/2)
// non-missing cells, i.e. rows where more than half the fields are
// missing. The threshold is a minimum count of PRESENT values, matching
// the dropna(thresh=...) convention of the reference tooling: a row with
// exactly half its cells missing is kept.
//
// Returns the pruned frame and the number of rows removed.
func DropSparseRows(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	nrow := df.Nrow()
	if nrow == 0 {
		return df, 0
	}

	threshold := df.Ncol() / 2

	// Column-major missing masks, walked row-wise below.
	masks := make([][]bool, 0, df.Ncol())
	for _, name := range df.Names() {
		masks = append(masks, df.Col(name).IsNaN())
	}

	keep := make([]int, 0, nrow)
	for row := 0; row < nrow; row++ {
		present := 0
		for _, mask := range masks {
			if !mask[row] {
				present++
			}
		}
		if present >= threshold {
			keep = append(keep, row)
		}
	}

	if len(keep) == nrow {
		return df, 0
	}

	return df.Subset(keep), nrow - len(keep)
}
