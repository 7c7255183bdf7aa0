package observe

import "sync"

// Recorder keeps the most recent payloads it observes. Safe for concurrent
// use. A Recorder is registered by pointer, so the same value is a stable
// handle for Unregister and may sit on several channels at once.
type Recorder[T any] struct {
	mu    sync.Mutex
	max   int
	items []T
}

// NewRecorder returns a recorder keeping at most max payloads; max <= 0 means
// unbounded.
func NewRecorder[T any](max int) *Recorder[T] {
	return &Recorder[T]{max: max}
}

func (r *Recorder[T]) OnEvent(payload T) {
	r.mu.Lock()
	r.items = append(r.items, payload)
	if r.max > 0 && len(r.items) > r.max {
		r.items = r.items[len(r.items)-r.max:]
	}
	r.mu.Unlock()
}

// Events returns a copy of the recorded payloads, oldest first.
func (r *Recorder[T]) Events() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.items...)
}

// Reset discards everything recorded so far.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}
