package model

// Capabilities records which optional columns the input table provides.
// It is detected once, right after loading, and consulted by every phase
// that depends on an optional column.
//
// Design decision: The original workflow repeated "column exists?" checks
// at each chart and test site. Detecting the schema once and passing the
// result around removes the duplicated conditionals and gives the report
// a single place that explains why steps were skipped.
type Capabilities struct {
	// HasResponseTime reports whether the response-time column is present.
	HasResponseTime bool `json:"has_response_time"`

	// HasHour reports whether the HH:MM hour column is present.
	HasHour bool `json:"has_hour"`

	// HasIncidentType reports whether the incident-type column is present.
	HasIncidentType bool `json:"has_incident_type"`

	// HasBorough reports whether the borough-name column is present.
	// Both hypothesis tests and the borough chart require it.
	HasBorough bool `json:"has_borough"`

	// Columns is the full ordered column set of the table.
	Columns []string `json:"columns"`
}
