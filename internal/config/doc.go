// Package config defines the execution-mode taxonomy and run configuration
// for the compiletest conformance harness.
//
// A test file declares a Mode (the pass/fail contract it is checked
// against), a whole run may additionally carry a CompareMode (an alternate
// compiler configuration the suite is re-run under), and everything a run
// needs - tool paths, target triples, feature probes, filters - lives in a
// single immutable Config value built once at startup.
//
// # Concurrency
//
// Config is never mutated after construction. Workers share one Config by
// pointer and read it without locking. Mode and CompareMode are small value
// types, copied freely. ExpectedOutputPath is a pure function.
//
// # Golden file naming
//
// Expected-output artifacts follow a fixed naming contract:
//
//	<test-stem>[.<revision>][.<compare-mode-tag>].<kind>
//
// where kind is "stdout" or "stderr". Existing golden files on disk were
// named with exactly this ordering; changing it invalidates the corpus.
package config
