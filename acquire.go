package ferrite

import (
	"context"
	"runtime"
	"sync/atomic"
)

// AcquireFuture awaits entry into [Processing], optionally requesting
// processing first. Constructed via [ScalarVar.Acquire] / [ScalarVar.Request]
// or [ArrayVar.Acquire] / [ArrayVar.Request]; V is the typed view
// ([ScalarView][T] or [ArrayView][T]) a completed [ValueGuard] will expose.
//
// AcquireFuture is cancellation-safe: dropping it before it completes
// leaves the stage and the registered waker slot untouched (the slot is
// simply overwritten by whatever polls next).
type AcquireFuture[V any] struct {
	variable *Variable
	request  bool
	view     func(*Variable) V
}

// Poll implements [Future].
func (f *AcquireFuture[V]) Poll(w Waker) (*ValueGuard[V], bool, error) {
	f.variable.state.Register(w)
	switch f.variable.state.Observe() {
	case Idle:
		if f.request {
			if err := f.variable.requestProcessing(); err != nil {
				return nil, true, err
			}
		}
		return nil, false, nil
	case Requested:
		return nil, false, nil
	case Processing:
		return newValueGuard(f.variable, f.view(f.variable)), true, nil
	default: // Committed: the host will move to Idle on its next cycle.
		return nil, false, nil
	}
}

// ValueGuard is obtained from a completed [AcquireFuture]. While alive it
// holds the sole mutable borrow of the variable's typed view V
// ([ScalarView][T] or [ArrayView][T]). Committing (via [ValueGuard.Commit],
// [ValueGuard.Accept], or [ValueGuard.Reject]) consumes the guard and
// returns a [CommitFuture].
//
// Go has no destructors, so a guard left uncommitted would otherwise wedge
// the variable in [Processing] forever. Two things prevent that: prefer
// [WithValueGuard], which always releases the guard it hands to its
// closure before returning, so an abandoned guard cannot happen
// structurally; bare `Acquire`/`Request` callers MUST instead
// `defer guard.Release()` immediately. As a last-resort backstop for code
// that does neither, a `runtime.SetFinalizer` performs the same implicit
// "Unhandled error" rejection when the guard is garbage-collected — but
// finalizers are not guaranteed to run promptly (or, for a guard kept
// alive by a reference cycle, at all), so it must never be the only thing
// standing between a forgotten guard and a deadlocked host.
type ValueGuard[V any] struct {
	variable *Variable
	view     V
	released atomic.Bool
}

func newValueGuard[V any](v *Variable, view V) *ValueGuard[V] {
	g := &ValueGuard[V]{variable: v, view: view}
	runtime.SetFinalizer(g, func(g *ValueGuard[V]) {
		if g.released.Load() {
			return
		}
		logGlobal(LogEntry{
			Level:    LevelError,
			Category: "acquire",
			VarName:  string(g.variable.Name()),
			Message:  "ValueGuard garbage-collected without Release(); performing the implicit rejection now",
		})
		g.Release()
	})
	return g
}

// View returns the guard's typed view of the host storage.
func (g *ValueGuard[V]) View() V { return g.view }

// Commit transitions Processing->Committed with the given status and
// returns a future awaiting the host's corresponding return to Idle.
// Calling Commit (directly, or via Accept/Reject) more than once, or after
// Release has already performed the implicit rejection, is a no-op that
// returns an already-ready CommitFuture. The CompareAndSwap below makes
// this race-safe against a concurrent finalizer-driven Release.
func (g *ValueGuard[V]) Commit(status CommitStatus) *CommitFuture {
	if !g.released.CompareAndSwap(false, true) {
		return &CommitFuture{variable: g.variable, alreadyDone: true}
	}
	runtime.SetFinalizer(g, nil)
	err := g.variable.commit(status)
	return &CommitFuture{variable: g.variable, commitErr: err}
}

// Accept commits the guard with a success status.
func (g *ValueGuard[V]) Accept() *CommitFuture {
	return g.Commit(StatusOK)
}

// Reject commits the guard with a failure status carrying msg.
func (g *ValueGuard[V]) Reject(msg string) *CommitFuture {
	return g.Commit(StatusError(msg))
}

// Release performs the implicit "Unhandled error" rejection if the guard
// has not already been committed; otherwise it is a no-op. It is
// idempotent and safe to call any number of times, from any goroutine,
// including concurrently with an explicit Accept/Reject (Commit's
// CompareAndSwap ensures only one of them actually commits). Bare
// `Acquire`/`Request` callers MUST `defer guard.Release()` immediately
// after obtaining a guard; [WithValueGuard] callers get this for free.
func (g *ValueGuard[V]) Release() {
	if g.released.Load() {
		return
	}
	g.Reject(unhandledGuardMessage)
}

// WithValueGuard awaits f for a guard, passes it to fn, awaits the
// resulting commit, and unconditionally releases the guard before
// returning — including when fn panics. This is the structural
// alternative to a bare `defer guard.Release()`: the guard can never
// escape this call uncommitted, so forgetting to commit cannot leave the
// host wedged in Processing. fn may return nil if it already committed
// and does not want to await the result itself.
func WithValueGuard[V any](ctx context.Context, f *AcquireFuture[V], fn func(*ValueGuard[V]) *CommitFuture) error {
	guard, err := Await[*ValueGuard[V]](ctx, f)
	if err != nil {
		return err
	}
	defer guard.Release()

	commitFuture := fn(guard)
	if commitFuture == nil {
		return nil
	}
	_, err = Await[struct{}](ctx, commitFuture)
	return err
}
