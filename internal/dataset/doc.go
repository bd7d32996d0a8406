// Package dataset loads, inspects, and persists the incident table.
//
// The table is a gota DataFrame: columns are typed series, missing values
// are the library's NA marker (NaN for numeric series). Loading is
// permissive by design: column types are inferred per column, anything
// that does not parse as numeric stays textual, and a fixed set of tokens
// ("", "NA", "NaN", "N/A", "null") reads as missing.
//
// Only the errors in this package are fatal to a run; everything else in
// the pipeline degrades to a warning.
package dataset
