package ferrite

import "sync/atomic"

// Metrics holds lock-free counters for a [Registry], enabled via
// [WithMetrics]. All fields are updated with plain atomic adds or stores; reading
// them concurrently with updates is always safe and never blocks a writer.
type Metrics struct {
	registrations atomic.Int64
	claims        atomic.Int64
	claimFailures atomic.Int64
	unusedAtCheck atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of a [Metrics], safe to pass
// around and compare.
type MetricsSnapshot struct {
	// Registrations counts variables added via [Registry.InitVariable] or
	// [Registry.Add].
	Registrations int64
	// Claims counts successful [ClaimScalar]/[ClaimArray] (and their
	// suffix variants) calls.
	Claims int64
	// ClaimFailures counts claim calls that returned [NotFound] or
	// [WrongType].
	ClaimFailures int64
	// UnusedAtCheck counts PVs [Registry.CheckEmpty] most recently found
	// still registered (i.e. never claimed).
	UnusedAtCheck int64
}

func (m *Metrics) snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Registrations: m.registrations.Load(),
		Claims:        m.claims.Load(),
		ClaimFailures: m.claimFailures.Load(),
		UnusedAtCheck: m.unusedAtCheck.Load(),
	}
}

// Metrics returns a snapshot of the registry's counters, or the zero
// [MetricsSnapshot] if metrics were not enabled via [WithMetrics].
func (r *Registry) Metrics() MetricsSnapshot {
	if r.metrics == nil {
		return MetricsSnapshot{}
	}
	return r.metrics.snapshot()
}
