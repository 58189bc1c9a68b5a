package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crucible-lang/compiletest/internal/config"
)

// ExpectedPathOptions holds flags for the expected-path command.
type ExpectedPathOptions struct {
	*RootOptions
	Revision    string
	CompareMode string
	Kind        string
}

// ExpectedPathResult is the JSON payload for a computed artifact path.
type ExpectedPathResult struct {
	Test string `json:"test"`
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// NewExpectedPathCommand creates the expected-path command.
func NewExpectedPathCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpectedPathOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "expected-path <test-file>",
		Short: "Compute a golden artifact path",
		Long: `Compute the path of the expected-output artifact for a test file.

The path follows the harness naming contract:

  <test-stem>[.<revision>][.<compare-mode-tag>].<kind>

Examples:
  compiletest expected-path tests/ui/foo.rs
  compiletest expected-path tests/ui/foo.rs --kind stdout
  compiletest expected-path tests/ui/foo.rs --revision case1 --compare-mode nll`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpectedPath(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Revision, "revision", "", "test revision tag")
	cmd.Flags().StringVar(&opts.CompareMode, "compare-mode", "", "compare-mode tag (nll)")
	cmd.Flags().StringVar(&opts.Kind, "kind", config.UIStderr, "artifact kind (stdout|stderr)")

	return cmd
}

func runExpectedPath(opts *ExpectedPathOptions, testFile string, cmd *cobra.Command) error {
	// The resolver treats a bad kind as caller misuse and panics; here the
	// kind is user input, so it gets checked up front instead.
	if !validKind(opts.Kind) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid --kind %q: must be one of %v", opts.Kind, config.UIExtensions))
	}

	var compareMode config.CompareMode
	if opts.CompareMode != "" {
		compareMode = config.ParseCompareMode(opts.CompareMode)
	}

	tp := config.TestPaths{
		File:        testFile,
		Base:        filepath.Dir(testFile),
		RelativeDir: ".",
	}
	path := config.ExpectedOutputPath(tp, opts.Revision, compareMode, opts.Kind)

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Success(ExpectedPathResult{Test: testFile, Kind: opts.Kind, Path: path})
	}
	return formatter.Success(path + "\n")
}

func validKind(kind string) bool {
	for _, ext := range config.UIExtensions {
		if ext == kind {
			return true
		}
	}
	return false
}
