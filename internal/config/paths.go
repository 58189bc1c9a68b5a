package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TestPaths identifies one discovered test file.
type TestPaths struct {
	// File is the test file itself, e.g. tests/ui/foo/bar/baz.rs.
	File string

	// Base is the root directory the file was discovered under,
	// e.g. tests/ui.
	Base string

	// RelativeDir is File's directory relative to Base, e.g. foo/bar.
	// It mirrors the source tree's structure into the build tree.
	RelativeDir string
}

// Recognized expected-output artifact kinds.
const (
	UIStdout = "stdout"
	UIStderr = "stderr"
)

// UIExtensions is the closed vocabulary of expected-output kinds.
var UIExtensions = []string{UIStderr, UIStdout}

func validUIExtension(kind string) bool {
	for _, ext := range UIExtensions {
		if ext == kind {
			return true
		}
	}
	return false
}

// ExpectedOutputPath computes the on-disk path of the golden artifact a
// test's output is diffed against, e.g. foo.stderr from foo.rs.
//
// The file keeps its stem and gets a new extension composed of the
// revision tag (if any), then the compare-mode tag (if any), then the
// kind, joined with ".". A test with revision "case1" under compare-mode
// "nll" resolves its stderr artifact to foo.case1.nll.stderr. That
// ordering named every golden file already on disk; it must not change.
//
// kind must be one of UIExtensions. Anything else is a bug in the caller,
// not bad input, and panics.
func ExpectedOutputPath(tp TestPaths, revision string, compareMode CompareMode, kind string) string {
	if !validUIExtension(kind) {
		panic(fmt.Sprintf("unknown expected-output kind %q", kind))
	}

	parts := make([]string, 0, 3)
	if revision != "" {
		parts = append(parts, revision)
	}
	if compareMode != "" {
		parts = append(parts, compareMode.String())
	}
	parts = append(parts, kind)

	stem := strings.TrimSuffix(tp.File, filepath.Ext(tp.File))
	return stem + "." + strings.Join(parts, ".")
}
