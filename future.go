package ferrite

import "context"

// Future is the polled, non-blocking interface every asynchronous
// operation in this package implements. It is the Go-native stand-in for
// a waker-driven `Future` trait: Go has no language-level coroutines, so
// suspension is modeled explicitly by a poll call plus a waker
// registration, rather than by async/await.
//
// Poll registers w as the task to wake on the next relevant stage
// transition, then reports whether the operation is done. When ready is
// false, the returned value and error are the zero value and nil; the
// caller must wait for w to be woken (or for some other reason to retry,
// e.g. a timeout) before polling again.
//
// Implementations are cancellation-safe: abandoning a Future without
// calling Poll to completion never corrupts the underlying protocol state.
type Future[T any] interface {
	Poll(w Waker) (value T, ready bool, err error)
}

// chanWaker is the default [Waker] used by [Await]: Wake performs a
// non-blocking send on a capacity-1 channel, coalescing any number of
// wakes between polls into a single pending notification. This mirrors the
// teacher's promise.go, where ToChannel hands out a buffered,
// closed-on-settle channel as the bridge between callback-based completion
// and a blocking consumer.
type chanWaker struct {
	ch chan struct{}
}

func newChanWaker() *chanWaker {
	return &chanWaker{ch: make(chan struct{}, 1)}
}

func (w *chanWaker) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// Await is this package's bundled reference executor: it repeatedly polls
// f, parking the calling goroutine on a channel-based waker between polls,
// until f completes or ctx is done. It is not part of the protocol — any
// code able to call Poll may drive a [Future] its own way.
func Await[T any](ctx context.Context, f Future[T]) (T, error) {
	w := newChanWaker()
	for {
		v, ready, err := f.Poll(w)
		if ready {
			return v, err
		}
		select {
		case <-w.ch:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
