package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crucible-lang/compiletest/internal/config"
	"github.com/crucible-lang/compiletest/internal/suite"
)

// ConfigOptions holds flags for the config command.
type ConfigOptions struct {
	*RootOptions
	Suite       string
	Mode        string
	CompareMode string
	Target      string
	Host        string
	SrcBase     string
	BuildBase   string
	StageID     string
	Filter      string
	FilterExact bool
	RunIgnored  bool
	Logfile     string
	Quiet       bool
	Color       string
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Resolve and print a run configuration",
		Long: `Resolve a run configuration from flags and an optional suite manifest,
then print it.

A suite manifest (--suite) supplies the host-local defaults: tool paths,
triples and version probes. Flags given alongside --suite override the
manifest. Without --suite, --mode, --target and --host must be given.

An unknown --mode is reported as a normal error. An unknown
--compare-mode aborts immediately: it can only come from a broken
invocation, not from a test.

Examples:
  compiletest config --suite ./manifests/ui
  compiletest config --suite ./manifests/ui --compare-mode nll
  compiletest config --mode ui --target x86_64-unknown-linux-gnu --host x86_64-unknown-linux-gnu`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts, cmd)
			if err != nil {
				return err
			}

			formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if opts.Format == "json" {
				return formatter.Success(cfg)
			}
			return formatter.Success(renderConfig(cfg))
		},
	}

	cmd.Flags().StringVar(&opts.Suite, "suite", "", "directory containing the suite manifest")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "test mode (compile-fail, run-pass, ui, ...)")
	cmd.Flags().StringVar(&opts.CompareMode, "compare-mode", "", "re-run comparison variant (nll)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "target triple under test")
	cmd.Flags().StringVar(&opts.Host, "host", "", "host triple of the compiler")
	cmd.Flags().StringVar(&opts.SrcBase, "src-base", "", "directory containing the tests")
	cmd.Flags().StringVar(&opts.BuildBase, "build-base", "", "directory test programs are built in")
	cmd.Flags().StringVar(&opts.StageID, "stage-id", "", "toolchain stage being tested")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run tests matching this name")
	cmd.Flags().BoolVar(&opts.FilterExact, "exact", false, "match --filter exactly instead of as a substring")
	cmd.Flags().BoolVar(&opts.RunIgnored, "run-ignored", false, "also run ignored tests")
	cmd.Flags().StringVar(&opts.Logfile, "logfile", "", "write a parseable log of executed tests here")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "one character of output per test")
	cmd.Flags().StringVar(&opts.Color, "color", "auto", "colorize output (auto|always|never)")

	return cmd
}

// resolveConfig builds the immutable run configuration for this
// invocation: suite manifest first (if any), flags on top.
func resolveConfig(opts *ConfigOptions, cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	var cfg *config.Config

	if opts.Suite != "" {
		manifest, err := suite.Load(opts.Suite)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load suite manifest", err)
		}
		if flags.Changed("mode") {
			manifest.Mode = opts.Mode
		}
		slog.Debug("suite manifest loaded", "dir", opts.Suite, "mode", manifest.Mode)

		cfg, err = manifest.Resolve()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to resolve suite manifest", err)
		}
	} else {
		if opts.Mode == "" {
			return nil, NewExitError(ExitCommandError, "--mode is required without --suite")
		}
		mode, err := config.ParseMode(opts.Mode)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid --mode", err)
		}
		cfg = &config.Config{Mode: mode, Color: config.ColorAuto}
	}

	// Per-invocation flags override whatever the manifest said.
	if flags.Changed("target") || cfg.Target == "" {
		cfg.Target = opts.Target
	}
	if flags.Changed("host") || cfg.Host == "" {
		cfg.Host = opts.Host
	}
	if flags.Changed("src-base") || cfg.SrcBase == "" {
		cfg.SrcBase = opts.SrcBase
	}
	if flags.Changed("build-base") || cfg.BuildBase == "" {
		cfg.BuildBase = opts.BuildBase
	}
	if flags.Changed("stage-id") {
		cfg.StageID = opts.StageID
	}

	if cfg.Target == "" || cfg.Host == "" {
		return nil, NewExitError(ExitCommandError, "--target and --host are required without --suite")
	}

	// Fatal on an unknown tag: a broken invocation must not degrade into
	// comparing against the wrong golden files.
	if opts.CompareMode != "" {
		cfg.CompareMode = config.ParseCompareMode(opts.CompareMode)
	}

	if opts.Color != "" {
		color, err := config.ParseColorConfig(opts.Color)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid --color", err)
		}
		cfg.Color = color
	}

	cfg.Filter = opts.Filter
	cfg.FilterExact = opts.FilterExact
	cfg.RunIgnored = opts.RunIgnored
	cfg.Logfile = opts.Logfile
	cfg.Quiet = opts.Quiet
	cfg.Verbose = opts.Verbose

	return cfg, nil
}

// renderConfig prints the resolved configuration, one "key: value" line
// per set field. Absent optional tools and probes are skipped - they mean
// "skip tests requiring this", which needs no line.
func renderConfig(cfg *config.Config) string {
	var b strings.Builder
	add := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", key, value)
		}
	}
	addBool := func(key string, v bool) {
		if v {
			add(key, "true")
		}
	}

	add("mode", cfg.Mode.String())
	add("compare_mode", cfg.CompareMode.String())
	add("target", cfg.Target)
	add("host", cfg.Host)
	add("src_base", cfg.SrcBase)
	add("build_base", cfg.BuildBase)
	add("stage_id", cfg.StageID)

	add("compiler", cfg.CompilerPath)
	add("compile_lib_path", cfg.CompileLibPath)
	add("run_lib_path", cfg.RunLibPath)
	add("doc", cfg.DocPath)
	add("doc_check_python", cfg.DocCheckPython)
	add("gdb", cfg.Gdb)
	if cfg.GdbVersion != 0 {
		add("gdb_version", strconv.FormatUint(uint64(cfg.GdbVersion), 10))
	}
	addBool("gdb_native_lang", cfg.GdbNativeLang)
	add("lldb_python", cfg.LldbPython)
	add("lldb_python_dir", cfg.LldbPythonDir)
	add("lldb_version", cfg.LldbVersion)
	add("llvm_filecheck", cfg.LLVMFileCheck)
	add("llvm_version", cfg.LLVMVersion)
	addBool("system_llvm", cfg.SystemLLVM)
	add("valgrind", cfg.ValgrindPath)
	addBool("force_valgrind", cfg.ForceValgrind)

	add("cc", cfg.CC)
	add("cxx", cfg.CXX)
	add("cflags", cfg.CFlags)
	add("ar", cfg.AR)
	add("linker", cfg.Linker)
	add("llvm_components", cfg.LLVMComponents)
	add("llvm_cxxflags", cfg.LLVMCxxFlags)
	add("nodejs", cfg.NodeJS)

	add("android_cross_path", cfg.AndroidCrossPath)
	add("adb_path", cfg.AdbPath)
	add("adb_test_dir", cfg.AdbTestDir)
	addBool("adb_device_status", cfg.AdbDeviceStatus)
	add("remote_test_client", cfg.RemoteTestClient)
	add("runtool", cfg.RunTool)
	add("host_compile_flags", cfg.HostCompileFlags)
	add("target_compile_flags", cfg.TargetCompileFlags)

	add("filter", cfg.Filter)
	addBool("filter_exact", cfg.FilterExact)
	addBool("run_ignored", cfg.RunIgnored)
	add("logfile", cfg.Logfile)
	addBool("quiet", cfg.Quiet)
	addBool("verbose", cfg.Verbose)
	add("color", string(cfg.Color))

	return b.String()
}
