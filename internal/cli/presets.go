package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thruflo/seqrun/internal/sequence"
	"github.com/thruflo/seqrun/internal/tui"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in content presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listPresets(cmd.OutOrStdout())
			return nil
		},
	}
}

func listPresets(out io.Writer) {
	names := sequence.PresetNames()
	width := tui.LabelWidth(names)
	for _, name := range names {
		c, _ := sequence.Preset(name)
		fmt.Fprintf(out, "%s  %-6s  %s\n", tui.PadOrTruncate(name, width), c.Kind(), c)
	}
}
