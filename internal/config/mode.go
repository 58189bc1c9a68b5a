package config

import "fmt"

// Mode identifies the pass/fail contract a test file declares.
// The canonical form is the lowercase-hyphenated token used in test
// directives and on the command line.
type Mode string

const (
	CompileFail     Mode = "compile-fail"
	ParseFail       Mode = "parse-fail"
	RunFail         Mode = "run-fail"
	RunPass         Mode = "run-pass"
	RunPassValgrind Mode = "run-pass-valgrind"
	Pretty          Mode = "pretty"
	DebugInfoGdb    Mode = "debuginfo-gdb"
	DebugInfoLldb   Mode = "debuginfo-lldb"
	Codegen         Mode = "codegen"
	Rustdoc         Mode = "rustdoc"
	CodegenUnits    Mode = "codegen-units"
	Incremental     Mode = "incremental"
	RunMake         Mode = "run-make"
	Ui              Mode = "ui"
	MirOpt          Mode = "mir-opt"
)

// AllModes lists every mode in declaration order.
// The parse table is derived from this slice, so the two cannot drift.
var AllModes = []Mode{
	CompileFail,
	ParseFail,
	RunFail,
	RunPass,
	RunPassValgrind,
	Pretty,
	DebugInfoGdb,
	DebugInfoLldb,
	Codegen,
	Rustdoc,
	CodegenUnits,
	Incremental,
	RunMake,
	Ui,
	MirOpt,
}

var modesByToken = func() map[string]Mode {
	m := make(map[string]Mode, len(AllModes))
	for _, mode := range AllModes {
		m[string(mode)] = mode
	}
	return m
}()

// UnknownModeError reports a mode token that is not part of the taxonomy.
// It carries the offending token so the caller can point at the test file
// or flag that produced it and keep processing other tests.
type UnknownModeError struct {
	Token string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unrecognized test mode %q", e.Token)
}

// ParseMode maps a canonical token to its Mode.
// Unknown tokens return an *UnknownModeError; a single malformed directive
// must not abort a whole run, so this never panics.
func ParseMode(s string) (Mode, error) {
	if m, ok := modesByToken[s]; ok {
		return m, nil
	}
	return "", &UnknownModeError{Token: s}
}

// String returns the canonical token. It is the inverse of ParseMode.
func (m Mode) String() string {
	return string(m)
}

// Disambiguator returns the suffix keeping this mode's output files apart
// from a conflicting peer's when both run concurrently against the same
// source file.
//
// Run-pass and pretty run-pass tests can run at the same time, and so can
// debuginfo tests driven by gdb and lldb; each of those needs its own
// suffix. Modes with no conflicting peer share the empty suffix.
func (m Mode) Disambiguator() string {
	switch m {
	case Pretty:
		return ".pretty"
	case DebugInfoGdb:
		return ".gdb"
	case DebugInfoLldb:
		return ".lldb"
	default:
		return ""
	}
}
