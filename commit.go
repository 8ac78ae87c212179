package ferrite

// CommitFuture awaits the host's Committed->Idle transition after a
// [ValueGuard] has been committed. Other stages are unreachable here by
// protocol invariant: once committed by user code, only the host may move
// the variable onward, and only to Idle.
type CommitFuture struct {
	variable *Variable

	// alreadyDone is set when Commit was called on an already-committed
	// guard (a programming mistake, but harmless): the future resolves
	// immediately, carrying no error of its own.
	alreadyDone bool
	// commitErr is the error (if any) the host's Commit primitive itself
	// returned; it is surfaced once, on the first successful Poll.
	commitErr error
}

// Poll implements [Future]. It registers w, then reports ready once the
// host has observed the commit and returned the variable to Idle.
func (f *CommitFuture) Poll(w Waker) (struct{}, bool, error) {
	if f.alreadyDone {
		return struct{}{}, true, nil
	}
	f.variable.state.Register(w)
	if f.variable.state.Observe() == Idle {
		err := f.commitErr
		f.commitErr = nil
		return struct{}{}, true, err
	}
	return struct{}{}, false, nil
}
