// Package suite loads CUE suite manifests.
//
// A manifest captures the host-local part of a run configuration - tool
// paths, target triples, version probes - so an invocation only has to
// supply what varies per run. The driver folds a loaded manifest into a
// config.Config before any test executes.
//
// # Manifest format
//
// Manifests are CUE files with a top-level suite struct:
//
//	suite: {
//		mode:       "ui"
//		target:     "x86_64-unknown-linux-gnu"
//		host:       "x86_64-unknown-linux-gnu"
//		src_base:   "tests/ui"
//		build_base: "build/test/ui"
//		stage_id:   "stage1"
//		tools: {
//			compiler: "/usr/local/bin/rustc"
//			gdb:      "/usr/bin/gdb"
//		}
//		probes: {
//			gdb_version:  7012001
//			llvm_version: "6.0"
//		}
//	}
//
// Everything under tools and probes is optional; an omitted tool means the
// capability is absent on this host and tests requiring it are skipped.
package suite
