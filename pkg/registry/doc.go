// Package registry implements a minimal synchronous observer registry: named
// event channels holding ordered observer lists, fired on the caller's
// goroutine. It is structured into small files by concern:
//
//   - registry.go: core Registry type, construction options, the four
//     mutating operations (Register, RegisterBatch, Unregister, Fire) and
//     read accessors (Len, Channels).
//   - observer.go: the Observer interface and the Fn function adapter.
//
// Channels are created lazily on first access and never removed; observers
// are invoked in registration order; dispatch iterates a snapshot, so an
// observer may register or unregister handles mid-fire and only later fires
// see the change. A panicking observer aborts the rest of its fire and the
// panic propagates to the caller unless the registry was built with
// WithIsolation.
//
// External packages should treat a Registry as safe for concurrent use; the
// internal mutex serializes all operations, while observer invocation itself
// always happens outside the lock on the firing goroutine.
package registry
