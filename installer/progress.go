package installer

import "sync/atomic"

// ProgressFunc receives progress updates. Callbacks are invoked synchronously
// from the installing goroutine and must not block for long.
type ProgressFunc func(current, total int, message string)

// ProgressState is one published progress tuple.
type ProgressState struct {
	Current int
	Total   int
	Message string
}

// Tracker publishes the latest progress tuple atomically for a foreground
// reader (a UI or terminal renderer) while the install runs on a background
// goroutine. Intermediate values may be dropped: progress is monotonic and
// only the most recent value matters for display.
type Tracker struct {
	state atomic.Pointer[ProgressState]
}

// Publish records a new progress tuple, replacing any unread one.
func (t *Tracker) Publish(current, total int, message string) {
	t.state.Store(&ProgressState{Current: current, Total: total, Message: message})
}

// Latest returns the most recently published state, or a zero state when
// nothing has been published yet.
func (t *Tracker) Latest() ProgressState {
	if s := t.state.Load(); s != nil {
		return *s
	}
	return ProgressState{}
}

// Func returns a ProgressFunc that publishes into the tracker.
func (t *Tracker) Func() ProgressFunc {
	return t.Publish
}
