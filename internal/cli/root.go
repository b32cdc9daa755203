package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCmd builds the seqrun command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqrun",
		Short: "Cycle text and frames through terminal elements",
		Long: `Seqrun drives sequence runners: timers that repeat a piece of text or
step through a list of frames, writing each step into every element that
matches a selector. Elements are painted to the terminal as one line each.

Runners and elements come from a YAML config file (seqrun.yaml in the
current directory by default) or from flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("seqrun version {{.Version}}\n")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPresetsCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
