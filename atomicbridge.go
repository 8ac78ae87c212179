package ferrite

import "sync/atomic"

// AtomicBridge publishes an [Atomic] value against a scalar PV without any
// task ever awaiting a future: it registers itself as the variable's
// permanent [Waker] and, on every stage transition, drives the variable
// through exactly the step its current stage allows. User code only ever
// calls Store/Swap/CompareAndSwap/FetchUpdate/Load, all of which return
// immediately.
//
// This is the non-blocking alternative to acquiring the variable directly:
// use it for PVs a background thread publishes to opportunistically, where
// no caller can afford to await a [Processing] cycle.
type AtomicBridge[T Numeric] struct {
	variable *Variable
	view     ScalarView[T]
	value    Atomic[T]
	pending  atomic.Bool
}

// NewAtomicBridge claims ownership of scalar's underlying variable and
// returns a bridge seeded with initial. scalar must not be used directly
// afterwards: the bridge now owns its Acquire/Request cycle.
func NewAtomicBridge[T Numeric](scalar *ScalarVar[T], initial T) *AtomicBridge[T] {
	b := &AtomicBridge[T]{
		variable: scalar.variable,
		view:     scalarView[T](scalar.variable),
	}
	b.value.Store(initial)
	b.variable.state.Register(b)
	return b
}

// Load returns the bridge's current value without touching the host.
func (b *AtomicBridge[T]) Load() T { return b.value.Load() }

// Store sets the bridge's value and asks the host to deliver it on the
// next [Processing] cycle, coalescing with any update still in flight.
func (b *AtomicBridge[T]) Store(v T) {
	b.value.Store(v)
	b.markPendingAndDrive()
}

// Swap sets the bridge's value and returns the value it replaced.
func (b *AtomicBridge[T]) Swap(v T) T {
	old := b.value.Swap(v)
	b.markPendingAndDrive()
	return old
}

// CompareAndSwap sets the bridge's value to new only if it is currently
// old, reporting whether the swap took place.
func (b *AtomicBridge[T]) CompareAndSwap(old, new T) bool {
	ok := b.value.CompareAndSwap(old, new)
	if ok {
		b.markPendingAndDrive()
	}
	return ok
}

// FetchUpdate repeatedly applies update to the current value until it
// succeeds or update declines (returns ok == false), in which case
// FetchUpdate returns the observed value and false without publishing
// anything. On success it returns the pre-update value and true.
func (b *AtomicBridge[T]) FetchUpdate(update func(current T) (next T, ok bool)) (T, bool) {
	for {
		cur := b.value.Load()
		next, ok := update(cur)
		if !ok {
			return cur, false
		}
		if b.value.CompareAndSwap(cur, next) {
			b.markPendingAndDrive()
			return cur, true
		}
	}
}

func (b *AtomicBridge[T]) markPendingAndDrive() {
	b.pending.Store(true)
	guard := Lock(b.variable.host)
	defer guard.Unlock()
	b.drive()
}

// Wake implements [Waker]. The host calls this while already holding the
// variable's mutex, so it must never lock again.
func (b *AtomicBridge[T]) Wake() {
	b.drive()
}

// drive inspects the current stage and performs the one step that stage
// permits: on Idle it turns a pending update into a request, on
// Processing it either publishes the pending update or pulls in a
// host-initiated value, and on Requested/Committed there is nothing this
// bridge can do yet.
//
// The caller must already hold the variable's host lock.
func (b *AtomicBridge[T]) drive() {
	switch b.variable.state.Observe() {
	case Idle:
		if b.pending.Load() {
			_ = b.variable.requestProcessingLocked()
		}
	case Requested:
		// the host has not yet entered Processing; nothing to do.
	case Processing:
		if b.pending.CompareAndSwap(true, false) {
			b.view.Write(b.value.Load())
		} else {
			b.value.Store(b.view.Read())
		}
		_ = b.variable.commitLocked(StatusOK)
	case Committed:
		// the host has not yet returned to Idle; nothing to do.
	}
}
