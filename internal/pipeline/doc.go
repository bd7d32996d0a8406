// Package pipeline provides a framework for executing analysis steps in
// sequence.
//
// One run flows through the steps strictly left to right: load the raw
// table, detect which optional columns it has, clean it, persist the
// cleaned CSV, build frequency tables, render charts, and run the two
// hypothesis tests. Each stage is a Step that receives the accumulated
// AnalysisReport and can modify it; no stage feeds back into an earlier
// one.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context
//
// Error policy: only data-access failures (unreadable input, unwritable
// output) abort the pipeline. Schema gaps and undefined statistics are
// recorded as warnings on the report and the remaining steps still run.
package pipeline
