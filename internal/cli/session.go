package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/thruflo/seqrun/internal/config"
	"github.com/thruflo/seqrun/internal/logging"
	"github.com/thruflo/seqrun/internal/schedule"
	"github.com/thruflo/seqrun/internal/sequence"
	"github.com/thruflo/seqrun/internal/target"
	"github.com/thruflo/seqrun/internal/tui"
)

// session is one page and the runners writing into it.
type session struct {
	page    *target.Page
	runners []*sequence.Runner
	logger  *logging.Logger

	mu        sync.Mutex
	remaining int
	// done is closed once every runner has completed. It stays nil when
	// any runner is unbounded.
	done chan struct{}
}

func newSession(cfg *config.Config, logger *logging.Logger, sched schedule.Scheduler) (*session, error) {
	page, err := cfg.Page()
	if err != nil {
		return nil, err
	}

	s := &session{page: page, logger: logger}
	bounded := true

	for i, opts := range cfg.Runners {
		rl := logger.With("runner", i)
		r, err := sequence.New(opts, page, sequence.WithScheduler(sched), sequence.WithLogger(rl))
		if err != nil {
			return nil, fmt.Errorf("runners[%d]: %w", i, err)
		}

		settings := r.Settings()
		if r.Targets() == 0 {
			rl.Warn("selector matched no elements", "selector", settings.Selector)
		}
		rl.Debug("runner ready",
			"selector", settings.Selector,
			"content", settings.Content,
			"duplicate", settings.Duplicate,
			"delay", settings.Delay,
			"loop", settings.Loop,
			"targets", r.Targets())

		r.OnChange(func(content string, count, loop int) {
			rl.Debug("tick", "content", content, "count", count, "loop", loop)
		})

		if settings.Bounded() {
			s.remaining++
			var once sync.Once
			r.OnComplete(func(content string, count, loop int) {
				rl.Info("runner complete", "content", content, "loops", loop)
				once.Do(s.complete)
			})
		} else {
			bounded = false
		}

		s.runners = append(s.runners, r)
	}

	if bounded {
		s.done = make(chan struct{})
	}
	return s, nil
}

func (s *session) complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remaining--
	if s.remaining == 0 && s.done != nil {
		close(s.done)
	}
}

// Done returns a channel closed once every runner has completed, or nil
// when some runner never completes.
func (s *session) Done() <-chan struct{} {
	return s.done
}

func (s *session) start() {
	for _, r := range s.runners {
		r.Start()
	}
}

func (s *session) pause() {
	for _, r := range s.runners {
		r.Pause()
	}
}

// runPlain starts the runners and paints the page to out until every
// runner completes or ctx is done.
func (s *session) runPlain(ctx context.Context, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	painter := tui.NewPainter(tui.NewTerminal(out), s.page, tui.DefaultFrameInterval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return painter.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		select {
		case <-s.Done():
			s.logger.Info("all runners complete")
		case <-gctx.Done():
		}
		return nil
	})

	s.start()
	err := g.Wait()
	s.pause()
	return err
}

// runInteractive starts the runners under the bubbletea view. The view
// owns the terminal, so log output is dropped while it runs.
func (s *session) runInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	model := tui.NewModel(s.page, s.runners)
	defer model.Close()

	s.logger.SetWriter(io.Discard)

	s.start()
	defer s.pause()

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("interactive view: %w", err)
	}
	return nil
}
