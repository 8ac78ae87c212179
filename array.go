package ferrite

import "unsafe"

// ArrayView is a typed view over an array variable's host-owned storage: a
// pointer to up to MaxLen elements plus a length cell bounded by MaxLen.
// It is only safe to use for the lifetime of the [ValueGuard] it was
// obtained from.
type ArrayView[T Numeric] struct {
	host Host
}

// Cap returns the array's fixed maximum element count.
func (v ArrayView[T]) Cap() int { return v.host.Info().MaxLen }

// Len returns the array's current element count.
func (v ArrayView[T]) Len() int { return v.host.ArrayLen() }

func (v ArrayView[T]) storage() []T {
	if v.Cap() == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.host.ValuePtr()), v.Cap())
}

// ReadToSlice copies up to len(dst) of the array's current elements into
// dst and returns how many were copied.
func (v ArrayView[T]) ReadToSlice(dst []T) int {
	n := min(v.Len(), len(dst))
	copy(dst, v.storage()[:n])
	return n
}

// ReadToVec copies the array's current elements into a freshly allocated
// slice.
func (v ArrayView[T]) ReadToVec() []T {
	n := v.Len()
	out := make([]T, n)
	copy(out, v.storage()[:n])
	return out
}

// WriteFromSlice clears the array's length, then copies up to Cap elements
// of src into storage, stopping silently (not erroring) if src is longer
// than Cap. It returns how many elements were actually written.
func (v ArrayView[T]) WriteFromSlice(src []T) int {
	n := min(len(src), v.Cap())
	copy(v.storage()[:n], src[:n])
	v.host.SetArrayLen(n)
	return n
}

// WriteFromIter clears the array's length, then pushes values from seq
// until either seq is exhausted or Cap is reached, whichever comes first.
// It returns how many elements were written.
func (v ArrayView[T]) WriteFromIter(seq func(yield func(T) bool)) int {
	storage := v.storage()
	cap_ := v.Cap()
	n := 0
	seq(func(val T) bool {
		if n >= cap_ {
			return false
		}
		storage[n] = val
		n++
		return n < cap_
	})
	v.host.SetArrayLen(n)
	return n
}

// ArrayVar is a typed, claimed handle to an array PV, obtained from a
// [Registry] via [ClaimArray].
type ArrayVar[T Numeric] struct {
	variable *Variable
}

// Variable returns the underlying untyped handle.
func (a *ArrayVar[T]) Variable() *Variable { return a.variable }

func arrayView[T Numeric](v *Variable) ArrayView[T] {
	return ArrayView[T]{host: v.host}
}

// Acquire awaits the next Processing cycle without requesting one.
func (a *ArrayVar[T]) Acquire() *AcquireFuture[ArrayView[T]] {
	return &AcquireFuture[ArrayView[T]]{variable: a.variable, view: arrayView[T]}
}

// Request asks the host to process this variable soon and awaits it.
func (a *ArrayVar[T]) Request() *AcquireFuture[ArrayView[T]] {
	return &AcquireFuture[ArrayView[T]]{variable: a.variable, request: true, view: arrayView[T]}
}

// WriteArrayFromSlice writes src into the guard's storage (silently
// truncating to the array's MaxLen) and commits success.
func WriteArrayFromSlice[T Numeric](g *ValueGuard[ArrayView[T]], src []T) *CommitFuture {
	g.view.WriteFromSlice(src)
	return g.Accept()
}

// ReadArrayToVec copies the guard's current elements out, commits success,
// and returns both the copy and the commit future to await.
func ReadArrayToVec[T Numeric](g *ValueGuard[ArrayView[T]]) ([]T, *CommitFuture) {
	out := g.view.ReadToVec()
	return out, g.Accept()
}

// ReadArrayToSlice copies up to len(dst) of the guard's current elements
// into dst, commits success, and returns the count copied plus the commit
// future to await.
func ReadArrayToSlice[T Numeric](g *ValueGuard[ArrayView[T]], dst []T) (int, *CommitFuture) {
	n := g.view.ReadToSlice(dst)
	return n, g.Accept()
}
