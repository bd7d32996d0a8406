package dataset

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/nao1215/asbscan/internal/model"
)

// CountMissing returns the number of missing cells in each column,
// preserving the table's column order. It is captured twice per run:
// on the raw table before any coercion, and on the cleaned table.
func CountMissing(df dataframe.DataFrame) model.MissingReport {
	report := make(model.MissingReport, 0, df.Ncol())

	for _, name := range df.Names() {
		count := 0
		for _, missing := range df.Col(name).IsNaN() {
			if missing {
				count++
			}
		}
		report = append(report, model.MissingCount{Column: name, Count: count})
	}

	return report
}
