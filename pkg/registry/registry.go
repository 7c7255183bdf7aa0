package registry

import (
	"sort"
	"sync"
)

// Registry is the Subject of the observer pattern: a mapping from event name
// to an ordered list of observers. The zero value is not usable; construct
// with New. All methods are safe for concurrent use.
type Registry[T any] struct {
	mu       sync.RWMutex
	channels map[string][]Observer[T]
	isolate  func(event string, recovered any)
}

// Option configures a Registry at construction time.
type Option[T any] func(*Registry[T])

// WithIsolation makes Fire recover a panicking observer, report the event
// name and recovered value to hook, and continue with the remaining
// observers. Without it, a panic aborts the rest of that fire and propagates
// to Fire's caller.
func WithIsolation[T any](hook func(event string, recovered any)) Option[T] {
	return func(r *Registry[T]) { r.isolate = hook }
}

// New returns an empty registry.
func New[T any](opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{channels: make(map[string][]Observer[T])}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// channel returns the observer list for event, inserting an empty entry on
// first access. Every operation touches channels through this accessor, so
// even Unregister or Fire on a never-seen name leaves the key behind.
// Callers must hold the write lock.
func (r *Registry[T]) channel(event string) []Observer[T] {
	obs, ok := r.channels[event]
	if !ok {
		r.channels[event] = nil
	}
	return obs
}

// Register appends o to the channel for event, creating the channel if
// absent. Duplicates are kept: the same handle registered twice occupies two
// slots and is invoked twice per fire. Any event name is accepted, including
// the empty string.
func (r *Registry[T]) Register(event string, o Observer[T]) *Registry[T] {
	r.mu.Lock()
	r.channels[event] = append(r.channel(event), o)
	r.mu.Unlock()
	return r
}

// RegisterBatch registers one observer per event name, each entry behaving
// exactly like Register. A nil or empty map is a no-op. Entries target
// distinct channels, so the map's unspecified iteration order is not
// observable through Fire.
func (r *Registry[T]) RegisterBatch(batch map[string]Observer[T]) *Registry[T] {
	r.mu.Lock()
	for event, o := range batch {
		r.channels[event] = append(r.channel(event), o)
	}
	r.mu.Unlock()
	return r
}

// Unregister removes the first slot whose handle equals o from event's
// channel, preserving the order of the remaining observers. A missing
// observer is a no-op, not an error. An untouched event name gains an empty
// channel entry as a side effect of the lazy accessor.
func (r *Registry[T]) Unregister(event string, o Observer[T]) *Registry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	obs := r.channel(event)
	for i, existing := range obs {
		if existing == o {
			r.channels[event] = append(append([]Observer[T](nil), obs[:i]...), obs[i+1:]...)
			break
		}
	}
	return r
}

// Fire invokes every observer registered for event, in registration order,
// each receiving payload. Dispatch is synchronous and sequential on the
// caller's goroutine; an empty or unknown channel is a no-op. Fire iterates a
// snapshot taken under the lock, so observers may mutate the registry during
// their own invocation and only later fires see the change. To fire without a
// payload, pass the zero value of T.
func (r *Registry[T]) Fire(event string, payload T) *Registry[T] {
	// Write lock: firing an untouched name creates its channel entry, like
	// every other access.
	r.mu.Lock()
	snapshot := append([]Observer[T](nil), r.channel(event)...)
	r.mu.Unlock()
	for _, o := range snapshot {
		r.invoke(event, o, payload)
	}
	return r
}

// invoke runs one observer, recovering a panic only when isolation is
// configured.
func (r *Registry[T]) invoke(event string, o Observer[T], payload T) {
	if r.isolate == nil {
		o.OnEvent(payload)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.isolate(event, rec)
		}
	}()
	o.OnEvent(payload)
}

// Len reports the number of observers currently registered for event. Unlike
// the mutating operations it does not create the channel.
func (r *Registry[T]) Len(event string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels[event])
}

// Channels returns every channel key ever touched, sorted. Keys persist for
// the registry's lifetime even when their observer list is empty.
func (r *Registry[T]) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
