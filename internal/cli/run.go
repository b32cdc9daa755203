package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thruflo/seqrun/internal/config"
	"github.com/thruflo/seqrun/internal/logging"
	"github.com/thruflo/seqrun/internal/schedule"
	"github.com/thruflo/seqrun/internal/sequence"
)

type runFlags struct {
	config      string
	selector    string
	content     string
	frames      []string
	preset      string
	duplicate   int
	delay       time.Duration
	loop        int
	elements    []string
	logLevel    string
	interactive bool
	duration    time.Duration
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run sequence runners and paint their elements",
		Long: `Builds the elements and runners from the config file, applies any flag
overrides to every runner, starts them and paints the elements until all
bounded runners complete, --duration elapses, or the process is interrupted.

Only flags given on the command line override the config. Passing
--duplicate together with frame content is accepted but ignored with a
warning, exactly as in a config file.

Example:
  seqrun run --content '*' --duplicate 5 --loop 3
  seqrun run --preset braille --delay 80ms --duration 5s
  seqrun run --frames '-,\,|,/' --elements 'span#a.sequence-runner,span#b.sequence-runner'
  seqrun run --config demo.yaml --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "", "config file (default: ./"+config.DefaultFileName+" when present)")
	f.StringVarP(&flags.selector, "selector", "s", sequence.DefaultSelector, "selector for the elements each runner writes into")
	f.StringVar(&flags.content, "content", sequence.DefaultText, "text repeated once more on every tick")
	f.StringSliceVar(&flags.frames, "frames", nil, "comma separated frames to step through")
	f.StringVarP(&flags.preset, "preset", "p", "", "built-in content (see 'seqrun presets')")
	f.IntVarP(&flags.duplicate, "duplicate", "n", sequence.DefaultDuplicate, "ticks per cycle for text content")
	f.DurationVarP(&flags.delay, "delay", "d", sequence.DefaultDelay, "time between ticks")
	f.IntVarP(&flags.loop, "loop", "l", 0, "cycles before a runner completes (0 runs forever)")
	f.StringSliceVarP(&flags.elements, "elements", "e", nil, "elements to create, e.g. span#status.sequence-runner")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "interactive view with pause, restart and stop keys")
	f.DurationVar(&flags.duration, "duration", 0, "stop after this long (0 waits for completion or interrupt)")

	cmd.MarkFlagsMutuallyExclusive("content", "frames", "preset")

	return cmd
}

func runRun(cmd *cobra.Command, flags *runFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadRunConfig(flags, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	logger := logging.New()
	logger.SetWriter(cmd.ErrOrStderr())
	logger.SetLevel(cfg.LogLevel)

	sess, err := newSession(cfg, logger, schedule.NewTicker())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.duration)
		defer cancel()
	}

	if flags.interactive {
		return sess.runInteractive(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return sess.runPlain(ctx, cmd.OutOrStdout())
}

// loadRunConfig loads the config file (or the defaults) and applies the
// flags that changed reports as set.
func loadRunConfig(flags *runFlags, changed func(string) bool) (*config.Config, error) {
	cfg, err := loadConfigFile(flags.config)
	if err != nil {
		return nil, err
	}

	if changed("log-level") {
		level, err := logging.ParseLevel(flags.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	if changed("elements") {
		cfg.Elements = flags.elements
	}

	over, err := flags.overrides(changed)
	if err != nil {
		return nil, err
	}
	for i := range cfg.Runners {
		cfg.Runners[i] = cfg.Runners[i].Merge(over)
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile loads path, or the default file when path is empty and
// the default exists, or falls back to the built-in defaults.
func loadConfigFile(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.LoadConfig(config.DefaultFileName)
	}
	cfg := config.DefaultConfig()
	return &cfg, nil
}

// overrides returns the runner options given on the command line.
func (f *runFlags) overrides(changed func(string) bool) (sequence.Options, error) {
	var o sequence.Options

	if changed("selector") {
		o.Selector = sequence.Ptr(f.selector)
	}

	switch {
	case changed("content"):
		o.Content = sequence.Ptr(sequence.Text(f.content))
	case changed("frames"):
		o.Content = sequence.Ptr(sequence.Frames(f.frames...))
	case changed("preset"):
		c, ok := sequence.Preset(f.preset)
		if !ok {
			return o, fmt.Errorf("unknown preset %q (available: %s)",
				f.preset, strings.Join(sequence.PresetNames(), ", "))
		}
		o.Content = &c
	}

	if changed("duplicate") {
		o.Duplicate = sequence.Ptr(f.duplicate)
	}
	if changed("delay") {
		o.Delay = sequence.Ptr(f.delay)
	}
	if changed("loop") {
		o.Loop = sequence.Ptr(f.loop)
	}

	return o, nil
}
