package config

import "fmt"

// ColorConfig controls whether test output uses terminal colors.
type ColorConfig string

const (
	ColorAuto   ColorConfig = "auto"
	ColorAlways ColorConfig = "always"
	ColorNever  ColorConfig = "never"
)

// ParseColorConfig maps a flag value to its ColorConfig.
func ParseColorConfig(s string) (ColorConfig, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("unrecognized color setting %q (want auto, always or never)", s)
	}
}

// Config aggregates every resolved setting a harness run needs.
//
// It is built exactly once at process start and never mutated afterwards;
// every worker reads the same value concurrently without locking. Optional
// fields hold their zero value when the tool or probe is absent on the
// host - absence means "skip tests requiring this capability", it is never
// an error at this layer.
type Config struct {
	// CompileLibPath is the library search path for running the compiler.
	CompileLibPath string `json:"compile_lib_path,omitempty"`

	// RunLibPath is the library search path for running compiled programs.
	RunLibPath string `json:"run_lib_path,omitempty"`

	// CompilerPath is the compiler executable under test.
	CompilerPath string `json:"compiler_path,omitempty"`

	// DocPath is the documentation generator executable, if installed.
	DocPath string `json:"doc_path,omitempty"`

	// LldbPython is the python executable used to drive LLDB.
	LldbPython string `json:"lldb_python,omitempty"`

	// DocCheckPython is the python executable used for doc output checks.
	DocCheckPython string `json:"doc_check_python,omitempty"`

	// LLVMFileCheck is the llvm FileCheck binary, if available.
	LLVMFileCheck string `json:"llvm_filecheck,omitempty"`

	// ValgrindPath is the valgrind binary, if available.
	ValgrindPath string `json:"valgrind_path,omitempty"`

	// ForceValgrind fails run-pass-valgrind tests when valgrind is missing
	// instead of silently running them as plain run-pass tests.
	ForceValgrind bool `json:"force_valgrind,omitempty"`

	// SrcBase is the directory containing the tests to run.
	SrcBase string `json:"src_base"`

	// BuildBase is the directory where test programs are built.
	BuildBase string `json:"build_base"`

	// StageID names the toolchain stage being tested (stage1, stage2, ...).
	StageID string `json:"stage_id,omitempty"`

	// Mode is the execution contract for this invocation.
	Mode Mode `json:"mode"`

	// RunIgnored also runs tests marked ignored.
	RunIgnored bool `json:"run_ignored,omitempty"`

	// Filter restricts the run to tests whose name contains this string.
	// Empty means run everything.
	Filter string `json:"filter,omitempty"`

	// FilterExact matches Filter against the whole name, not a substring.
	FilterExact bool `json:"filter_exact,omitempty"`

	// Logfile is where the parseable log of executed tests is written.
	// Empty disables logging.
	Logfile string `json:"logfile,omitempty"`

	// RunTool is a command line prefixed to program execution, e.g. for
	// running under valgrind or an emulator.
	RunTool string `json:"runtool,omitempty"`

	// HostCompileFlags are extra compiler flags for host builds.
	HostCompileFlags string `json:"host_compile_flags,omitempty"`

	// TargetCompileFlags are extra compiler flags for target builds.
	TargetCompileFlags string `json:"target_compile_flags,omitempty"`

	// Target is the triple of the system under test.
	Target string `json:"target"`

	// Host is the triple of the system the compiler runs on.
	Host string `json:"host"`

	// Gdb is the path to or name of the GDB executable, if available.
	Gdb string `json:"gdb,omitempty"`

	// GdbVersion is encoded as ((major*1000)+minor)*1000+patch.
	// Zero when GDB was not probed.
	GdbVersion uint32 `json:"gdb_version,omitempty"`

	// GdbNativeLang reports whether GDB has native support for the
	// language under test.
	GdbNativeLang bool `json:"gdb_native_lang,omitempty"`

	// LldbVersion is the probed LLDB version string, if any.
	LldbVersion string `json:"lldb_version,omitempty"`

	// LLVMVersion is the probed LLVM version string, if any.
	LLVMVersion string `json:"llvm_version,omitempty"`

	// SystemLLVM reports whether LLVM is a system installation rather than
	// one built alongside the compiler.
	SystemLLVM bool `json:"system_llvm,omitempty"`

	// AndroidCrossPath locates the Android cross-compilation toolchain.
	AndroidCrossPath string `json:"android_cross_path,omitempty"`

	// AdbPath is the adb executable used for on-device runs.
	AdbPath string `json:"adb_path,omitempty"`

	// AdbTestDir is the on-device directory tests are pushed to.
	AdbTestDir string `json:"adb_test_dir,omitempty"`

	// AdbDeviceStatus reports whether an Android device is attached.
	AdbDeviceStatus bool `json:"adb_device_status,omitempty"`

	// LldbPythonDir contains LLDB's python module, if known.
	LldbPythonDir string `json:"lldb_python_dir,omitempty"`

	// Verbose explains what is going on.
	Verbose bool `json:"verbose,omitempty"`

	// Quiet prints one character per test instead of one line.
	Quiet bool `json:"quiet,omitempty"`

	// Color controls terminal colors in test output.
	Color ColorConfig `json:"color,omitempty"`

	// RemoteTestClient is the remote test client executable, when tests
	// run on a remote target.
	RemoteTestClient string `json:"remote_test_client,omitempty"`

	// CompareMode, when set, names the alternate configuration whose
	// golden files this run is compared against.
	CompareMode CompareMode `json:"compare_mode,omitempty"`

	// Toolchain settings for run-make tests that drive C compilers or
	// query LLVM component information.
	CC             string `json:"cc,omitempty"`
	CXX            string `json:"cxx,omitempty"`
	CFlags         string `json:"cflags,omitempty"`
	AR             string `json:"ar,omitempty"`
	Linker         string `json:"linker,omitempty"`
	LLVMComponents string `json:"llvm_components,omitempty"`
	LLVMCxxFlags   string `json:"llvm_cxxflags,omitempty"`
	NodeJS         string `json:"nodejs,omitempty"`
}
