package ferrite

import (
	"sync"
	"sync/atomic"
)

// Stage is one of the four states of a variable's processing cycle.
//
// State Machine:
//
//	Idle       -> Requested   [user, under lock, via Variable.requestProcessing]
//	Idle       -> Processing  [host, spontaneous]
//	Requested  -> Processing  [host, reacting to the request]
//	Processing -> Committed   [user, under lock, via ValueGuard.Commit]
//	Committed  -> Idle        [host, after observing the commit]
//
// No other transition is legal. Idle is both the initial and the only
// terminal-between-cycles stage; there is no destruction stage.
type Stage uint32

const (
	// Idle indicates the variable is not currently being processed.
	Idle Stage = iota
	// Requested indicates user code has asked the host to process this
	// variable soon.
	Requested
	// Processing indicates the host is currently processing the variable;
	// its value storage may be read or written under the host's lock.
	Processing
	// Committed indicates user code has finished processing and the host
	// has not yet observed it and returned to Idle.
	Committed
)

// String returns a human-readable representation of the stage.
func (s Stage) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Requested:
		return "Requested"
	case Processing:
		return "Processing"
	case Committed:
		return "Committed"
	default:
		return "Unknown"
	}
}

// Waker is the standard task-waker abstraction this package uses to
// schedule a suspended task after a host-initiated stage transition.
//
// Wake must be safe to call from the host's thread while it holds the
// variable's mutex, and safe to call more than once: [SharedState.Wake]
// invokes the same registered waker on every host-initiated transition
// until [SharedState.Register] replaces it.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to a [Waker].
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

// SharedState is the per-variable record shared between the host thread and
// user tasks: a stage register transitioned by sequentially-consistent swap,
// and a single-slot waker woken on every host-initiated transition.
//
// SharedState is allocated once, by [InitVariable], and lives for the
// program's lifetime stored in the host's user-data slot.
type SharedState struct { //nolint:govet
	stage atomic.Uint32

	wakerMu sync.Mutex
	waker   Waker

	// strict, when true, panics with ProtocolViolation on any Transition
	// whose observed previous stage does not match the expected one. It is
	// a pointer to the package/registry-wide flag so every SharedState
	// shares one on/off switch.
	strict *atomic.Bool
}

// NewSharedState returns a SharedState in the Idle stage with no registered
// waker. strict, if non-nil, is consulted on every Transition call; pass
// nil to disable the assertion entirely.
func NewSharedState(strict *atomic.Bool) *SharedState {
	s := &SharedState{strict: strict}
	s.stage.Store(uint32(Idle))
	return s
}

// Observe loads the current stage with acquire ordering.
func (s *SharedState) Observe() Stage {
	return Stage(s.stage.Load())
}

// Transition swaps the stage from expected to next with sequentially
// consistent ordering. If strict-protocol checking is enabled and the
// previously-stored stage was not expected, Transition panics with a
// [ProtocolViolation]: an unexpected previous stage is a programming bug in
// either the host or this library, never a recoverable condition.
func (s *SharedState) Transition(expected, next Stage) {
	s.TransitionAny([]Stage{expected}, next)
}

// TransitionAny swaps the stage to next unconditionally and, when strict
// checking is enabled, asserts the previously-stored stage was one of
// validFrom. It exists because a single host-side transition can be legal
// from more than one prior stage (e.g. ProcBegin from either Idle or
// Requested).
func (s *SharedState) TransitionAny(validFrom []Stage, next Stage) {
	prev := Stage(s.stage.Swap(uint32(next)))
	if s.strict == nil || !s.strict.Load() {
		return
	}
	for _, from := range validFrom {
		if prev == from {
			return
		}
	}
	panic(ProtocolViolation{From: prev, ExpectedOneOf: validFrom, To: next})
}

// Register replaces the single registered waker. It may be called by any
// poller at any time; a previously registered waker is simply discarded,
// never woken by the replacement.
func (s *SharedState) Register(w Waker) {
	s.wakerMu.Lock()
	s.waker = w
	s.wakerMu.Unlock()
}

// Wake invokes the currently registered waker, if any, and is always safe
// to call when no waker is registered. It does not clear the slot: a
// registered waker is woken by every Wake call until [SharedState.Register]
// replaces it, so one registration can be woken more than once
// ([AtomicBridge] registers itself once and is woken on every transition).
func (s *SharedState) Wake() {
	s.wakerMu.Lock()
	w := s.waker
	s.wakerMu.Unlock()
	if w != nil {
		w.Wake()
	}
}
