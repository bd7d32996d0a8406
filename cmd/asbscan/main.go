// Package main provides the entry point for the asbscan CLI.
//
// asbscan is an exploratory analysis tool for antisocial-behaviour (ASB)
// incident extracts. It cleans a raw incident CSV, writes the cleaned
// table back out, renders summary charts, and runs two hypothesis tests
// over the borough distribution.
//
// Usage:
//
//	asbscan analyze <incidents.csv>
//	asbscan analyze --markdown -o report.md <incidents.csv>
//
// See --help for all available options.
package main

// main is the entry point for asbscan.
func main() {
	Execute()
}
