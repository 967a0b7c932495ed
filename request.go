package venture

// OneshotRequest is the weaker send capability: the request may be sent at
// most once. Values that can only be consumed, such as requests carrying a
// non-rewindable body, implement this and nothing more.
type OneshotRequest[C, T any] interface {
	// SendOnce issues the request using the given client. It must not be
	// called a second time.
	SendOnce(client C) Response[T]
}

// Request is a repeatable operation: Send may be called any number of times
// on the same value, each call producing a fresh Response. The retry and
// pagination combinators require this capability because both re-issue the
// request they wrap.
//
// Errors that occur while issuing the call must surface through the returned
// Response, never as a panic from Send.
type Request[C, T any] interface {
	Send(client C) Response[T]
}

// PagedRequest is a request that can step itself to the next page.
type PagedRequest[C, T any] interface {
	Request[C, T]

	// Advance inspects the page that was just received and mutates the
	// request to ask for the next one. It reports false when the received
	// page was the last.
	Advance(page T) bool
}

// RequestFunc adapts a function to the Request contract.
type RequestFunc[C, T any] func(client C) Response[T]

func (f RequestFunc[C, T]) Send(client C) Response[T] { return f(client) }

func (f RequestFunc[C, T]) SendOnce(client C) Response[T] { return f(client) }

// Oneshot restricts a repeatable request to the consume-once capability.
func Oneshot[C, T any](req Request[C, T]) OneshotRequest[C, T] {
	return oneshot[C, T]{inner: req}
}

type oneshot[C, T any] struct {
	inner Request[C, T]
}

func (o oneshot[C, T]) SendOnce(client C) Response[T] {
	return o.inner.Send(client)
}

// Repeat lifts a supply of one-shot requests into a repeatable request. Each
// Send draws a fresh request from next and consumes it.
func Repeat[C, T any](next func() OneshotRequest[C, T]) Request[C, T] {
	return RequestFunc[C, T](func(client C) Response[T] {
		return next().SendOnce(client)
	})
}
