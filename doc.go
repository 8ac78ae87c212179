// Package ferrite lets user code interact, concurrently and asynchronously,
// with process variables (PVs) owned by an external real-time control
// database (an EPICS-style IOC host).
//
// # Architecture
//
// A host thread periodically processes a record; user code, running on its
// own goroutines (or whatever cooperative scheduler drives [Future.Poll]),
// observes each processing cycle, reads the current value, optionally
// mutates it, and signals completion without blocking the host thread and
// without racing the host's access to the underlying storage.
//
// The core of the package is a four-state handoff protocol
// ([Stage]: Idle, Requested, Processing, Committed) shared between the host
// (which calls into this package's exported C entry points while holding a
// per-variable mutex) and user tasks (which observe the stage via a
// one-slot [Waker] and mutate it under the same mutex via a [LockGuard]).
//
// # Layers
//
//   - [Host] is the seam towards the record database: an interface so the
//     protocol core never depends on cgo directly. The real implementation
//     lives in the sibling ffi package; tests use an in-memory fake.
//   - [Variable] is a named handle plus its [SharedState]: the host's three
//     entry points ([InitVariable], [Variable.ProcBegin], [Variable.ProcEnd]).
//     User code never calls these directly; it acquires typed handles
//     instead (see below).
//   - [ScalarVar] and [ArrayVar], obtained from a [Registry] via
//     [ClaimScalar]/[ClaimArray], expose [ScalarVar.Acquire]/
//     [ScalarVar.Request] (and the array equivalents), which drive the
//     [AcquireFuture] / [ValueGuard] / [CommitFuture] cycle. Prefer
//     [WithValueGuard] over driving that cycle by hand: it always releases
//     the guard it hands to its closure, so a caller cannot forget to
//     commit and wedge the variable in [Processing].
//   - [ScalarView] and [ArrayView] are typed projections over a
//     [ValueGuard]'s host-owned storage.
//   - [AtomicBridge] mirrors an external atomic cell into a variable across
//     processing cycles without ever suspending a task.
//   - [Registry] is the process-wide name→[Variable] map populated during
//     host init and handed to user code at application start, via the
//     [Context] that [Main]'s registered function receives.
//
// # Thread safety
//
//   - [Registry] methods are safe for concurrent use, but are only actually
//     contended during init and the application-start handoff.
//   - [SharedState] transitions are sequentially consistent; [Variable]'s
//     host-side methods ([Variable.ProcBegin], [Variable.ProcEnd]) must be
//     called with the host's per-variable mutex held, exactly as the host
//     itself already does when invoking the exported C entry points.
//   - [Future] implementations never hold the host's lock across a
//     suspension point; see each type's doc comment for exactly when the
//     lock is taken and released.
//
// # Non-goals
//
// This package implements only the handoff protocol and its typed/atomic
// surfaces. It does not implement a network protocol, record-database
// semantics, or a task scheduler: [Await] is a minimal reference executor,
// not a requirement — any code that can call [Future.Poll] may drive these
// futures.
package ferrite
