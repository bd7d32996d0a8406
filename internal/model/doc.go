// Package model defines the core data structures shared across asbscan.
//
// The central type is AnalysisReport, which is created once per run and
// accumulated through the pipeline: the loader attaches the raw table, the
// cleaner records what it changed, and the statistical steps attach their
// result records. Report writers in the report package render it for humans
// or machines.
//
// Design decision: Analysis results are structured records rather than
// printed text. The original workflow communicated everything through
// console output, which made the logic untestable without capturing
// stdout. Keeping results in the model lets the formatting layer be
// swapped (text, Markdown, JSON) without touching analysis code.
package model
