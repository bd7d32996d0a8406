// Package config provides configuration management for asbscan.
//
// All tunable values of the analysis (file paths, expected column names,
// significance level) live in a single flat Config struct. Defaults match
// the Metropolitan Police Service ASB extract the tool was written for;
// a .asbscan YAML file can rename columns for differently-labelled
// extracts without touching any analysis code.
package config
