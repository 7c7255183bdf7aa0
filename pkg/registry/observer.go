package registry

// Observer receives payloads delivered by a Registry. Observers run
// synchronously on the goroutine that calls Fire and are responsible for
// their own error handling.
//
// Handle equality drives Unregister: two handles match iff their interface
// values compare equal, i.e. same dynamic type and identical pointer (or
// equal comparable value). Implementations must be comparable; pointer
// receivers are the safe default.
type Observer[T any] interface {
	OnEvent(payload T)
}

// funcObserver adapts a plain function. Registered by pointer, so each value
// is its own handle.
type funcObserver[T any] struct {
	fn func(T)
}

func (o *funcObserver[T]) OnEvent(payload T) { o.fn(payload) }

// Fn wraps fn into an Observer handle. Every call returns a distinct handle,
// even for the same function: keep the returned value if you intend to
// Unregister it later.
func Fn[T any](fn func(T)) Observer[T] {
	return &funcObserver[T]{fn: fn}
}
