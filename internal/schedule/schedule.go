// Package schedule provides the periodic timer service used by runners.
//
// Ticker drives callbacks from a goroutine per task. Manual keeps a virtual
// clock so tests and headless renders can step time explicitly.
package schedule

import (
	"sync"
	"time"
)

// Timer is a handle to a repeating task.
type Timer interface {
	// Stop cancels the task. It is safe to call more than once.
	Stop()
}

// Scheduler runs fn every interval until the returned Timer is stopped.
// The first call happens one interval after Every returns.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

// Ticker is a Scheduler backed by time.Ticker.
//
// Each task runs on its own goroutine, so calls for one task never overlap.
// A callback that outlasts the interval causes the missed ticks to be
// dropped rather than queued.
type Ticker struct{}

// NewTicker returns a wall-clock scheduler.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Every implements Scheduler.
func (t *Ticker) Every(interval time.Duration, fn func()) Timer {
	task := &tickerTask{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go task.run(fn)
	return task
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// Stop may race with a pending tick; prefer the stop.
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

// Stop does not wait for a callback that is already executing.
func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
