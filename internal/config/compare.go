package config

import "fmt"

// CompareMode selects an alternate compiler configuration the whole suite
// is re-run under, to compare output against the primary run. The zero
// value means no compare-mode is active.
//
// Its tags live in a separate namespace from Mode tokens; they appear in
// golden file names (see ExpectedOutputPath), never in user-facing prose.
type CompareMode string

const (
	// CompareNll re-runs the suite with the non-lexical-lifetimes borrow
	// checker enabled.
	CompareNll CompareMode = "nll"
)

// ParseCompareMode maps a tag to its CompareMode.
//
// Unlike ParseMode this panics on unknown input: the tag only ever comes
// from the trusted top-level invocation, and a broken invocation should
// stop the run immediately rather than silently degrade.
func ParseCompareMode(s string) CompareMode {
	switch s {
	case "nll":
		return CompareNll
	default:
		panic(fmt.Sprintf("unknown --compare-mode option: %q", s))
	}
}

// String returns the canonical tag. It is the inverse of ParseCompareMode.
func (m CompareMode) String() string {
	return string(m)
}
