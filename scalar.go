package ferrite

// ScalarView is a typed view over a scalar variable's host-owned storage.
// It is only safe to use for the lifetime of the [ValueGuard] it was
// obtained from.
type ScalarView[T Numeric] struct {
	host Host
}

func (v ScalarView[T]) ptr() *T {
	return (*T)(v.host.ValuePtr())
}

// Read copies the current value out of host storage without committing.
func (v ScalarView[T]) Read() T {
	return *v.ptr()
}

// Write stores val into host storage without committing.
func (v ScalarView[T]) Write(val T) {
	*v.ptr() = val
}

// ScalarVar is a typed, claimed handle to a scalar PV, obtained from a
// [Registry] via [ClaimScalar].
type ScalarVar[T Numeric] struct {
	variable *Variable
}

// Variable returns the underlying untyped handle.
func (s *ScalarVar[T]) Variable() *Variable { return s.variable }

func scalarView[T Numeric](v *Variable) ScalarView[T] {
	return ScalarView[T]{host: v.host}
}

// Acquire awaits the next Processing cycle without requesting one.
func (s *ScalarVar[T]) Acquire() *AcquireFuture[ScalarView[T]] {
	return &AcquireFuture[ScalarView[T]]{variable: s.variable, view: scalarView[T]}
}

// Request asks the host to process this variable soon and awaits it.
func (s *ScalarVar[T]) Request() *AcquireFuture[ScalarView[T]] {
	return &AcquireFuture[ScalarView[T]]{variable: s.variable, request: true, view: scalarView[T]}
}

// WriteScalar stores val into the guard's storage and commits success in
// one step.
func WriteScalar[T Numeric](g *ValueGuard[ScalarView[T]], val T) *CommitFuture {
	g.view.Write(val)
	return g.Accept()
}

// ReadScalar copies the guard's current value out, commits success, and
// returns both the value and the commit future to await.
func ReadScalar[T Numeric](g *ValueGuard[ScalarView[T]]) (T, *CommitFuture) {
	val := g.view.Read()
	return val, g.Accept()
}
