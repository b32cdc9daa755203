package tui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/thruflo/seqrun/internal/target"
)

// DefaultFrameInterval caps how often a Painter redraws.
const DefaultFrameInterval = 33 * time.Millisecond

// Painter draws a page as one line per element. Writes to the page only mark
// it dirty; Run repaints at most once per interval, so a tick that touches
// several elements is drawn as one frame.
//
// On a terminal the block of lines is redrawn in place. Elsewhere each
// changed frame is appended as a single "label=content | ..." line.
type Painter struct {
	term     *Terminal
	page     *target.Page
	interval time.Duration

	mu    sync.Mutex
	dirty bool

	// paintMu serializes paints and guards drawn and last. Page writers
	// only ever take mu, so a slow terminal never blocks them.
	paintMu sync.Mutex
	drawn   int
	last    string
}

// NewPainter creates a painter for page. A non-positive interval uses
// DefaultFrameInterval.
func NewPainter(term *Terminal, page *target.Page, interval time.Duration) *Painter {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Painter{
		term:     term,
		page:     page,
		interval: interval,
	}
}

// Run paints until ctx is done, then paints the final state once more.
func (p *Painter) Run(ctx context.Context) error {
	unwatch := p.page.Watch(func(*target.Node) { p.markDirty() })
	defer unwatch()

	p.term.HideCursor()
	defer p.term.ShowCursor()

	p.Paint()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Flush()
			return nil
		case <-ticker.C:
			p.Flush()
		}
	}
}

func (p *Painter) markDirty() {
	p.mu.Lock()
	p.dirty = true
	p.mu.Unlock()
}

// Flush paints if the page changed since the last paint. It reports
// whether it painted.
func (p *Painter) Flush() bool {
	p.mu.Lock()
	dirty := p.dirty
	p.mu.Unlock()
	if !dirty {
		return false
	}
	p.Paint()
	return true
}

// Paint draws the current page unconditionally (subject to the
// unchanged-line check in plain mode).
func (p *Painter) Paint() {
	p.paintMu.Lock()
	defer p.paintMu.Unlock()

	p.mu.Lock()
	p.dirty = false
	p.mu.Unlock()

	nodes := p.page.Nodes()
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		labels[i] = n.Label()
	}

	if !p.term.IsTerminal() {
		parts := make([]string, len(nodes))
		for i, n := range nodes {
			parts[i] = labels[i] + "=" + n.Content()
		}
		line := strings.Join(parts, " | ")
		if line == p.last {
			return
		}
		p.last = line
		p.term.Write(line + "\n")
		return
	}

	lw := LabelWidth(labels)
	room := p.term.Width() - 1 - lw - 2

	var sb strings.Builder
	if p.drawn > 0 {
		sb.WriteString("\r" + CursorUp(p.drawn))
	}
	for i, n := range nodes {
		sb.WriteString(ClearLine)
		sb.WriteString(Style(PadOrTruncate(labels[i], lw), Dim))
		sb.WriteString("  ")
		sb.WriteString(Truncate(n.Content(), room))
		sb.WriteString("\n")
	}
	p.drawn = len(nodes)
	p.term.Write(sb.String())
}
