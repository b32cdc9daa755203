package sequence

import (
	"errors"
	"sync"

	"github.com/thruflo/seqrun/internal/logging"
	"github.com/thruflo/seqrun/internal/schedule"
)

// ErrNoDocument is returned by New when no Document is supplied.
var ErrNoDocument = errors.New("sequence: no document to resolve selector against")

// Element is a render target. SetContent replaces its displayed content
// with raw markup.
type Element interface {
	SetContent(markup string)
}

// Document resolves a selector to the ordered elements it matches.
type Document interface {
	Query(selector string) []Element
}

// QueryFunc adapts a function to Document.
type QueryFunc func(selector string) []Element

// Query implements Document.
func (f QueryFunc) Query(selector string) []Element {
	return f(selector)
}

// Logger receives non-fatal configuration warnings.
type Logger interface {
	Warn(msg string, keyVals ...interface{})
}

// Callback receives the content just rendered, its position in the cycle,
// and the number of completed cycles.
type Callback func(content string, count, loop int)

// State is the lifecycle state of a Runner.
type State int

const (
	// StateIdle means no timer and blank elements.
	StateIdle State = iota
	// StateRunning means the timer is active.
	StateRunning
	// StatePaused means no timer, last content still displayed.
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Progress is a snapshot of a runner's position.
type Progress struct {
	// Content is the markup rendered by the last tick.
	Content string
	// Position is the cycle index of the last tick, or -1 before any tick.
	Position int
	// Loops counts completed cycles. Only tracked for bounded runners.
	Loops int
	// Ticks counts ticks since the last Start.
	Ticks int
}

type event struct {
	fn      Callback
	content string
	count   int
	loop    int
}

// Runner cycles content through a fixed set of elements on a timer.
//
// All methods are safe for concurrent use. Callbacks are delivered outside
// the runner's lock, one at a time and in tick order, so a callback may
// call back into the runner.
type Runner struct {
	settings  Settings
	elements  []Element
	scheduler schedule.Scheduler
	logger    Logger

	mu         sync.Mutex
	state      State
	current    string
	count      int
	loops      int
	ticks      int
	timer      schedule.Timer
	generation uint64

	onChange   Callback
	onComplete Callback

	pending     []event
	dispatching bool
}

// Option customises the collaborators of a Runner.
type Option func(*Runner)

// WithScheduler sets the timer service. The default is a wall-clock ticker.
func WithScheduler(s schedule.Scheduler) Option {
	return func(r *Runner) {
		if s != nil {
			r.scheduler = s
		}
	}
}

// WithLogger sets the warning sink. The default is the package logger.
func WithLogger(l Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New builds a Runner from opts. The selector is resolved against doc once;
// the matched elements are fixed for the runner's lifetime and blanked
// before New returns. The timer is not started.
func New(opts Options, doc Document, setters ...Option) (*Runner, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}

	r := &Runner{
		scheduler: schedule.NewTicker(),
		logger:    logging.Default(),
	}
	for _, set := range setters {
		set(r)
	}

	r.settings = opts.resolve(r.logger)
	r.elements = doc.Query(r.settings.Selector)

	return r.Stop(), nil
}

// NewFromMap decodes raw with DecodeOptions and builds a Runner. When raw
// holds an unknown key no element is touched.
func NewFromMap(raw map[string]any, doc Document, setters ...Option) (*Runner, error) {
	opts, err := DecodeOptions(raw)
	if err != nil {
		return nil, err
	}
	return New(opts, doc, setters...)
}

// Settings returns the effective configuration.
func (r *Runner) Settings() Settings {
	return r.settings
}

// Targets returns the number of elements the selector matched.
func (r *Runner) Targets() int {
	return len(r.elements)
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Progress returns the runner's position.
func (r *Runner) Progress() Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Progress{
		Content:  r.current,
		Position: r.count - 1,
		Loops:    r.loops,
		Ticks:    r.ticks,
	}
}

// Start resets the run state, renders the first tick immediately and then
// ticks every Delay. Starting a running runner restarts it.
func (r *Runner) Start() *Runner {
	r.mu.Lock()
	r.current, r.count, r.loops, r.ticks = "", 0, 0, 0
	r.haltLocked()
	r.render("")
	r.state = StateRunning

	r.tickLocked()

	// A loop bound of one single-frame cycle completes on the first tick.
	if r.state == StateRunning {
		gen := r.generation
		r.timer = r.scheduler.Every(r.settings.Delay, func() { r.fire(gen) })
	}
	r.mu.Unlock()

	r.dispatch()
	return r
}

// Pause cancels the timer and leaves the displayed content in place.
func (r *Runner) Pause() *Runner {
	r.mu.Lock()
	r.pauseLocked()
	r.mu.Unlock()
	return r
}

// Stop cancels the timer and blanks every element. The run state is kept
// until the next Start.
func (r *Runner) Stop() *Runner {
	r.mu.Lock()
	r.haltLocked()
	r.render("")
	r.state = StateIdle
	r.mu.Unlock()
	return r
}

// OnChange registers fn to run after every tick, replacing any previous
// callback. A nil fn clears it.
func (r *Runner) OnChange(fn Callback) *Runner {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
	return r
}

// OnComplete registers fn to run when a bounded runner reaches its loop
// count, replacing any previous callback. A nil fn clears it.
func (r *Runner) OnComplete(fn Callback) *Runner {
	r.mu.Lock()
	r.onComplete = fn
	r.mu.Unlock()
	return r
}

// fire runs one timer tick. A fire that lands while an earlier tick's
// callbacks are still being delivered is dropped, like a missed tick of
// time.Ticker.
func (r *Runner) fire(gen uint64) {
	r.mu.Lock()
	if gen != r.generation || r.state != StateRunning || r.dispatching || len(r.pending) > 0 {
		r.mu.Unlock()
		return
	}
	r.tickLocked()
	r.mu.Unlock()

	r.dispatch()
}

func (r *Runner) tickLocked() {
	if r.count >= r.settings.Duplicate {
		r.count = 0
		if !r.settings.Content.IsSequence() {
			r.current = ""
		}
	}

	switch r.settings.Content.Kind() {
	case KindFrames:
		r.current = r.settings.Content.Frame(r.count)
	default:
		r.current += r.settings.Content.Text()
	}

	r.render(r.current)
	r.ticks++
	r.enqueue(r.onChange)

	if r.settings.Bounded() {
		if r.count >= r.settings.Duplicate-1 {
			r.loops++
		}
		if r.loops >= r.settings.Loop {
			r.pauseLocked()
			r.enqueue(r.onComplete)
		}
	}

	r.count++
}

func (r *Runner) render(markup string) {
	for _, el := range r.elements {
		el.SetContent(markup)
	}
}

// haltLocked cancels the timer. Bumping the generation turns away any
// fire already waiting on the lock.
func (r *Runner) haltLocked() {
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Runner) pauseLocked() {
	r.haltLocked()
	if r.state == StateRunning {
		r.state = StatePaused
	}
}

func (r *Runner) enqueue(fn Callback) {
	if fn == nil {
		return
	}
	r.pending = append(r.pending, event{
		fn:      fn,
		content: r.current,
		count:   r.count,
		loop:    r.loops,
	})
}

// dispatch drains the callback queue unless another goroutine, or an outer
// frame of this one, is already doing so.
func (r *Runner) dispatch() {
	r.mu.Lock()
	if r.dispatching {
		r.mu.Unlock()
		return
	}
	r.dispatching = true
	defer func() {
		r.dispatching = false
		r.mu.Unlock()
	}()

	for len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		r.deliver(ev)
	}
}

func (r *Runner) deliver(ev event) {
	r.mu.Unlock()
	defer r.mu.Lock()
	ev.fn(ev.content, ev.count, ev.loop)
}
