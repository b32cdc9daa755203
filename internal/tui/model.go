package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thruflo/seqrun/internal/sequence"
	"github.com/thruflo/seqrun/internal/target"
)

const helpText = "space pause/start • r restart • s stop • q quit"

type frameMsg struct{}

// Model is the interactive bubbletea view over a page and the runners
// writing into it.
type Model struct {
	page    *target.Page
	runners []*sequence.Runner

	frames  chan struct{}
	done    chan struct{}
	unwatch func()
}

// NewModel creates a model and subscribes it to page writes. Call Close
// once the program has exited.
func NewModel(page *target.Page, runners []*sequence.Runner) *Model {
	m := &Model{
		page:    page,
		runners: runners,
		frames:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	// Page writes happen under runner locks; never block them.
	m.unwatch = page.Watch(func(*target.Node) {
		select {
		case m.frames <- struct{}{}:
		default:
		}
	})
	return m
}

// Close detaches the model from the page.
func (m *Model) Close() {
	m.unwatch()
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}

func (m *Model) waitForFrame() tea.Msg {
	select {
	case <-m.frames:
		return frameMsg{}
	case <-m.done:
		return nil
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForFrame
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "space", "p":
			m.togglePause()
		case "r", "enter":
			for _, r := range m.runners {
				r.Start()
			}
		case "s":
			for _, r := range m.runners {
				r.Stop()
			}
		}
		return m, nil

	case frameMsg:
		return m, m.waitForFrame
	}
	return m, nil
}

// togglePause pauses every running runner, or restarts all of them when
// none is running.
func (m *Model) togglePause() {
	anyRunning := false
	for _, r := range m.runners {
		if r.State() == sequence.StateRunning {
			anyRunning = true
			r.Pause()
		}
	}
	if anyRunning {
		return
	}
	for _, r := range m.runners {
		r.Start()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	nodes := m.page.Nodes()
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		labels[i] = n.Label()
	}
	lw := LabelWidth(labels)

	rows := make([]string, len(nodes))
	for i, n := range nodes {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(lw).Render(labels[i]),
			"  ",
			contentStyle.Render(n.Content()),
		)
	}

	states := make([]string, len(m.runners))
	for i, r := range m.runners {
		s := r.State()
		states[i] = fmt.Sprintf("%s %s", r.Settings().Selector, stateStyle(s).Render(s.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("seqrun"),
		panelStyle.Render(strings.Join(rows, "\n")),
		strings.Join(states, "  "),
		helpStyle.Render(helpText),
	) + "\n"
}
