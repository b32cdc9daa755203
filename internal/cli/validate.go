package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thruflo/seqrun/internal/config"
	"github.com/thruflo/seqrun/internal/logging"
	"github.com/thruflo/seqrun/internal/sequence"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a config file",
		Long: `Loads a config file, reports the first error (unknown keys, bad values,
unparseable elements) and otherwise prints the settings each runner will
use and how many elements it matches. Warnings such as an ignored
duplicate on frame content are written to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
}

func runValidate(out, errOut io.Writer, path string) error {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	page, err := cfg.Page()
	if err != nil {
		return err
	}

	logger := logging.New()
	logger.SetWriter(errOut)

	fmt.Fprintf(out, "%s: ok (%d elements, %d runners)\n", path, len(cfg.Elements), len(cfg.Runners))
	for i, opts := range cfg.Runners {
		r, err := sequence.New(opts, page, sequence.WithLogger(logger.With("runner", i)))
		if err != nil {
			return fmt.Errorf("runners[%d]: %w", i, err)
		}
		fmt.Fprintf(out, "  runner %d: %s\n", i, describeRunner(r))
	}
	return nil
}

func describeRunner(r *sequence.Runner) string {
	s := r.Settings()
	loop := "forever"
	if s.Bounded() {
		loop = fmt.Sprintf("%d", s.Loop)
	}
	return fmt.Sprintf("selector=%q targets=%d %s=%s duplicate=%d delay=%s loop=%s",
		s.Selector, r.Targets(), s.Content.Kind(), s.Content, s.Duplicate, s.Delay, loop)
}
