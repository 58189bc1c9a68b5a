// Package results records what a harness run did.
//
// It backs Config.Logfile ("write out a parseable log of tests that were
// run") two ways: a SQLite store keyed by run ID for querying across runs,
// and a YAML event stream for a plain logfile. Both are written by the
// driver goroutine that owns the run; workers hand their outcomes back to
// it rather than writing here directly.
//
// Test names are NFC-normalized before persistence so a name keyed on one
// platform matches the same name produced on another.
package results
