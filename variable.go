package ferrite

import "sync/atomic"

// Variable is a raw handle to a host-owned PV plus its [SharedState]. It is
// the component the registry stores and the component typed views and the
// atomic bridge are built on top of.
type Variable struct {
	host  Host
	state *SharedState
}

// InitVariable is the host's init entry point, called exactly once per
// variable before any user code runs. It allocates the variable's
// [SharedState], wraps host in a [Variable], and returns it for the caller
// (ordinarily the ffi package) to register with a [Registry]. strict is
// consulted on every subsequent stage transition; pass nil to disable
// assertion-on-violation entirely.
func InitVariable(host Host, strict *atomic.Bool) *Variable {
	return &Variable{
		host:  host,
		state: NewSharedState(strict),
	}
}

// Name returns the variable's stable name.
func (v *Variable) Name() []byte { return v.host.Name() }

// Info returns the variable's static metadata.
func (v *Variable) Info() VarInfo { return v.host.Info() }

// Stage returns the variable's current stage.
func (v *Variable) Stage() Stage { return v.state.Observe() }

// State returns the variable's shared protocol state, for use by code
// layered directly on top of the handoff protocol (typed futures, the
// atomic bridge).
func (v *Variable) State() *SharedState { return v.state }

// Host returns the variable's underlying host handle.
func (v *Variable) Host() Host { return v.host }

// ProcBegin is the host's proc-begin entry point, called while holding the
// variable's mutex: it transitions Idle|Requested -> Processing and wakes
// the registered waker.
func (v *Variable) ProcBegin() {
	v.state.TransitionAny([]Stage{Idle, Requested}, Processing)
	v.state.Wake()
}

// ProcEnd is the host's proc-end entry point, called while holding the
// variable's mutex: it transitions Committed -> Idle and wakes the
// registered waker.
func (v *Variable) ProcEnd() {
	v.state.Transition(Committed, Idle)
	v.state.Wake()
}

// requestProcessing performs the Idle->Requested transition under the
// host's lock, then informs the host. It is only ever called by
// [AcquireFuture.Poll] while the observed stage is Idle.
func (v *Variable) requestProcessing() error {
	guard := Lock(v.host)
	defer guard.Unlock()
	return v.requestProcessingLocked()
}

// requestProcessingLocked is requestProcessing's body, for callers that
// already hold the host's lock (the atomic bridge's adapter pass, invoked
// either under a lock it took itself or inside a host-initiated wake).
func (v *Variable) requestProcessingLocked() error {
	v.state.Transition(Idle, Requested)
	return v.host.RequestProcessing()
}

// commit performs the Processing->Committed transition under the host's
// lock, then informs the host of the outcome. It is only ever called by
// [ValueGuard]'s commit path.
func (v *Variable) commit(status CommitStatus) error {
	guard := Lock(v.host)
	defer guard.Unlock()
	return v.commitLocked(status)
}

// commitLocked is commit's body, for callers that already hold the host's
// lock.
func (v *Variable) commitLocked(status CommitStatus) error {
	v.state.Transition(Processing, Committed)
	return v.host.Commit(status)
}
