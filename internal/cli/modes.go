package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crucible-lang/compiletest/internal/config"
)

// ModeInfo is one taxonomy entry in JSON output.
type ModeInfo struct {
	Mode          string `json:"mode"`
	Disambiguator string `json:"disambiguator,omitempty"`
}

// NewModesCommand creates the modes command.
func NewModesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List the test mode taxonomy",
		Long: `List every test mode the harness understands, together with the
output-file disambiguator for modes that can run concurrently against
the same source file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				infos := make([]ModeInfo, 0, len(config.AllModes))
				for _, mode := range config.AllModes {
					infos = append(infos, ModeInfo{
						Mode:          mode.String(),
						Disambiguator: mode.Disambiguator(),
					})
				}
				return formatter.Success(infos)
			}
			return formatter.Success(renderModes())
		},
	}
	return cmd
}

func renderModes() string {
	var b strings.Builder
	for _, mode := range config.AllModes {
		if d := mode.Disambiguator(); d != "" {
			fmt.Fprintf(&b, "%-18s %s\n", mode.String(), d)
		} else {
			fmt.Fprintf(&b, "%s\n", mode.String())
		}
	}
	return b.String()
}
