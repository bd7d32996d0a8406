// Package clean transforms the raw incident table into one usable for
// analysis. The steps run in a fixed order:
//
//  1. coerce the response-time column to numeric (bad cells -> missing)
//  2. coerce the HH:MM hour column to its integer hour (bad cells -> missing)
//  3. impute numeric columns with their median over observed values
//  4. impute textual columns with the "Unknown" sentinel
//  5. drop rows with fewer than floor(ncol/2) non-missing cells
//  6. drop exact duplicate rows, keeping the first occurrence
//
// Ordering matters: medians must be computed after coercion so that cells
// downgraded to missing do not poison the statistics, and row pruning must
// run after imputation so only columns that could not be imputed (see the
// all-missing policy on Result.Warnings) still count as missing.
//
// Data-quality problems never raise errors here. Every unparseable cell
// becomes the missing marker and every undefined statistic becomes a
// warning on the result.
package clean
