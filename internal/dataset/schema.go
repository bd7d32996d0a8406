package dataset

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/nao1215/asbscan/internal/config"
	"github.com/nao1215/asbscan/internal/model"
)

// HasColumn reports whether the table has a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// DetectCapabilities inspects the table's schema once and records which
// optional columns are present. Guarded steps consult the result instead
// of re-checking the schema at each use site.
func DetectCapabilities(df dataframe.DataFrame, cols config.ColumnNames) model.Capabilities {
	return model.Capabilities{
		HasResponseTime: HasColumn(df, cols.ResponseTime),
		HasHour:         HasColumn(df, cols.Hour),
		HasIncidentType: HasColumn(df, cols.IncidentType),
		HasBorough:      HasColumn(df, cols.Borough),
		Columns:         df.Names(),
	}
}
