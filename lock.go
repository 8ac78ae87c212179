package ferrite

import "sync"

// LockGuard is a scoped acquisition of a [Host]'s per-variable mutex. It is
// acquired by construction and releases on every exit path, including a
// panic unwinding through a deferred Unlock.
type LockGuard struct {
	host    Host
	once    sync.Once
	locking bool
}

// Lock blocks until h's mutex is acquired and returns a guard that releases
// it on Unlock. Callers must defer Unlock immediately.
func Lock(h Host) *LockGuard {
	h.Lock()
	return &LockGuard{host: h, locking: true}
}

// newUnlockedGuard constructs a guard over a mutex the caller already
// holds, without taking it again. This exists for exactly one case: the
// host invokes a variable's registered [Waker] while already holding the
// variable's mutex (spec §4.C), so that callback must not lock again.
//
// Constructing this is unsafe: the caller must prove, by the calling
// context, that the host's mutex is already held for the duration of the
// guard's use.
func newUnlockedGuard(h Host) *LockGuard {
	return &LockGuard{host: h, locking: false}
}

// Unlock releases the guard. It is idempotent: calling it more than once
// has no effect after the first call.
func (g *LockGuard) Unlock() {
	g.once.Do(func() {
		if g.locking {
			g.host.Unlock()
		}
	})
}

// Host returns the guarded host, for use by callers holding the guard.
func (g *LockGuard) Host() Host { return g.host }
