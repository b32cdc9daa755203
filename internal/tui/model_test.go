package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/seqrun/internal/schedule"
	"github.com/thruflo/seqrun/internal/sequence"
	"github.com/thruflo/seqrun/internal/testutil"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *sequence.Runner, *schedule.Manual) {
	t.Helper()
	page := testPage(t)
	clock := schedule.NewManual()
	r, err := sequence.New(sequence.Options{
		Content: sequence.Ptr(sequence.Frames("a", "b")),
	}, page, sequence.WithScheduler(clock))
	require.NoError(t, err)

	m := NewModel(page, []*sequence.Runner{r})
	t.Cleanup(m.Close)
	return m, r, clock
}

func TestModel_Keys(t *testing.T) {
	t.Parallel()

	m, r, clock := newTestModel(t)
	r.Start()
	require.Equal(t, sequence.StateRunning, r.State())

	m.Update(key(" "))
	assert.Equal(t, sequence.StatePaused, r.State())

	m.Update(key(" "))
	assert.Equal(t, sequence.StateRunning, r.State())
	testutil.AssertContents(t, m.page, "a", "")

	clock.Advance(r.Settings().Delay)
	testutil.AssertContents(t, m.page, "b", "")

	m.Update(key("r"))
	testutil.AssertContents(t, m.page, "a", "")

	m.Update(key("s"))
	assert.Equal(t, sequence.StateIdle, r.State())
	testutil.AssertBlank(t, m.page)
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)

	for _, msg := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_FrameWaitsForPageWrites(t *testing.T) {
	t.Parallel()

	m, r, _ := newTestModel(t)
	r.Start()

	msg := m.Init()()
	assert.Equal(t, frameMsg{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	m.Close()
	assert.Nil(t, cmd())
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m, r, _ := newTestModel(t)
	r.Start()

	view := m.View()
	assert.Contains(t, view, "#dots")
	assert.Contains(t, view, "#spin")
	assert.Contains(t, view, "running")
	assert.Contains(t, view, helpText)
}
