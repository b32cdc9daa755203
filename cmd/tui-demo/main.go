// tui-demo is a manual test program for the terminal views.
// Run with: go run ./cmd/tui-demo
//
// Every built-in preset gets its own element and runner. The demo first
// paints them with the plain Painter for a few seconds, then switches to
// the interactive view (space pauses, r restarts, s stops, q quits).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thruflo/seqrun/internal/logging"
	"github.com/thruflo/seqrun/internal/sequence"
	"github.com/thruflo/seqrun/internal/target"
	"github.com/thruflo/seqrun/internal/tui"
)

func main() {
	fmt.Println("TUI Demo - Preset Gallery")
	fmt.Println("=========================")
	fmt.Println()
	fmt.Println("1. Painter view (3 seconds)")
	fmt.Println("2. Interactive view (space pause/start, r restart, s stop, q quit)")
	fmt.Println()
	fmt.Println("Press Enter to start...")
	fmt.Scanln()

	if err := runDemo(); err != nil {
		fmt.Fprintf(os.Stderr, "Demo error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo() error {
	page, runners, err := gallery()
	if err != nil {
		return err
	}
	for _, r := range runners {
		r.Start()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	painter := tui.NewPainter(tui.NewTerminal(os.Stdout), page, tui.DefaultFrameInterval)
	if err := painter.Run(ctx); err != nil {
		return err
	}

	model := tui.NewModel(page, runners)
	defer model.Close()
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return err
	}

	for _, r := range runners {
		r.Stop()
	}
	fmt.Println("Demo complete!")
	return nil
}

// gallery builds one element and one runner per preset.
func gallery() (*target.Page, []*sequence.Runner, error) {
	names := sequence.PresetNames()

	page, err := target.NewPage()
	if err != nil {
		return nil, nil, err
	}
	for _, name := range names {
		if err := page.Add(target.NewNode("span", name, "preset")); err != nil {
			return nil, nil, err
		}
	}

	logger := logging.Default()
	runners := make([]*sequence.Runner, 0, len(names))
	for _, name := range names {
		content, _ := sequence.Preset(name)
		r, err := sequence.New(sequence.Options{
			Selector: sequence.Ptr("#" + name),
			Content:  &content,
			Delay:    sequence.Ptr(120 * time.Millisecond),
		}, page, sequence.WithLogger(logger.With("preset", name)))
		if err != nil {
			return nil, nil, err
		}
		runners = append(runners, r)
	}
	return page, runners, nil
}
