// Package sequence cycles text or markup through a set of elements on a
// timer.
//
// A Runner is configured once, resolves its elements from a Document once,
// and then moves between three states:
//
//	Idle     constructed or stopped; no timer, elements blank
//	Running  timer active; elements show the current content
//	Paused   no timer; elements keep the last content
//
// Start always resets to the first frame and renders it synchronously.
// Each following tick fires after Delay. In text mode the content grows by
// one copy per tick ("." then ".." then "...") and starts over after
// Duplicate ticks; in frames mode each tick shows the next frame. A runner
// with a positive Loop pauses itself once that many cycles have completed
// and reports it through OnComplete.
//
// Typical use:
//
//	r, err := sequence.New(sequence.Options{
//	    Selector: sequence.Ptr("#status"),
//	    Content:  sequence.Ptr(sequence.Frames("-", "\\", "|", "/")),
//	    Delay:    sequence.Ptr(100 * time.Millisecond),
//	}, page)
//	if err != nil {
//	    return err
//	}
//	r.OnChange(func(content string, count, loop int) { ... }).Start()
package sequence
