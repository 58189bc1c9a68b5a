package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucible-lang/compiletest/internal/results"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Database string
	RunID    string
}

// RunReport is the JSON payload for a summarized run.
type RunReport struct {
	Run     results.Run     `json:"run"`
	Summary results.Summary `json:"summary"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a recorded run",
		Long: `Summarize a run from the results database.

Without --run the most recent run is reported.

Exit codes:
  0 - Run recorded no failures
  1 - Run recorded failures
  2 - Command error (missing database, unknown run)

Examples:
  compiletest report --db ./results.db
  compiletest report --db ./results.db --run 018e1f2a-...
  compiletest report --db ./results.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the results database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run ID to report (default: latest)")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	store, err := results.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open results database", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("error closing results database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var run *results.Run
	if opts.RunID != "" {
		run, err = store.GetRun(ctx, opts.RunID)
	} else {
		run, err = store.LatestRun(ctx)
	}
	if errors.Is(err, results.ErrNoRuns) {
		return WrapExitError(ExitCommandError, "no run to report", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	summary, err := store.Summarize(ctx, run.ID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to summarize run", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		if err := formatter.Success(RunReport{Run: *run, Summary: *summary}); err != nil {
			return err
		}
	} else {
		if err := formatter.Success(renderReport(run, summary)); err != nil {
			return err
		}
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d test(s) failed", summary.Failed))
	}
	return nil
}

func renderReport(run *results.Run, summary *results.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s\n", run.ID)
	fmt.Fprintf(&b, "started: %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "mode: %s", run.Mode)
	if run.CompareMode != "" {
		fmt.Fprintf(&b, " (compare-mode %s)", run.CompareMode)
	}
	fmt.Fprintf(&b, "\ntarget: %s\n", run.Target)
	fmt.Fprintf(&b, "result: %s\n", summary)
	return b.String()
}
