package ferrite

import "fmt"

// NotFound is returned by [Registry] lookups when the requested name (or,
// for suffix lookups, no key with a matching suffix) is not present.
type NotFound struct {
	Name  string
	Cause error
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("ferrite: PV %q not found", e.Name)
}

func (e *NotFound) Unwrap() error {
	return e.Cause
}

// WrongType is returned by a typed [Registry] downcast when the entry
// exists but its element type, scalar/array shape, or permission set does
// not match the requested view.
type WrongType struct {
	Name  string
	Info  VarInfo
	Cause error
}

func (e *WrongType) Error() string {
	return fmt.Sprintf("ferrite: PV %q: wrong type, has %+v", e.Name, e.Info)
}

func (e *WrongType) Unwrap() error {
	return e.Cause
}

// UnusedPVs is returned by [Registry.CheckEmpty] when the host declared
// variables user code never claimed.
type UnusedPVs struct {
	Names []string
	Cause error
}

func (e *UnusedPVs) Error() string {
	return fmt.Sprintf("ferrite: unused PVs: %v", e.Names)
}

func (e *UnusedPVs) Unwrap() error {
	return e.Cause
}

// CommitError wraps a failure message user code voluntarily reported via
// [ValueGuard.Reject]. It is forwarded to the host verbatim; the variable
// still moves through Committed -> Idle normally.
type CommitError struct {
	Cause   error
	Message string
}

func (e *CommitError) Error() string {
	if e.Message == "" {
		return "ferrite: commit rejected"
	}
	return e.Message
}

func (e *CommitError) Unwrap() error {
	return e.Cause
}

// unhandledGuardMessage is the fixed rejection message used when a
// [ValueGuard] is abandoned without an explicit Accept/Reject/Commit.
const unhandledGuardMessage = "Unhandled error"

// ProtocolViolation is panicked, never returned, when strict-protocol
// checking is enabled and a stage transition's observed previous value does
// not match what the caller expected; with checking disabled (the default)
// the transition happens without any check. This
// indicates a bug in the host or in this library's own bookkeeping and is
// unrecoverable by design: it can only happen if two callers raced past
// the stage machine's own guards, which should be unreachable.
type ProtocolViolation struct {
	From          Stage
	ExpectedOneOf []Stage
	To            Stage
	Cause         error
}

func (e ProtocolViolation) Error() string {
	return fmt.Sprintf("ferrite: protocol violation: transition to %s expected previous stage in %v, observed %s",
		e.To, e.ExpectedOneOf, e.From)
}

func (e ProtocolViolation) Unwrap() error {
	return e.Cause
}

// mainMisuse is panicked by [Main] and [Start] when called out of their
// single legal sequence (register once via Main, then start once via
// Start): there is exactly one way this can go, and violating it is a
// build-time mistake, not a runtime condition to recover from.
type mainMisuse struct {
	Reason string
	Cause  error
}

func (e mainMisuse) Error() string {
	return fmt.Sprintf("ferrite: %s", e.Reason)
}

func (e mainMisuse) Unwrap() error {
	return e.Cause
}

// duplicateName is panicked by [Registry.Add] when a name is already
// present: the registry contract treats duplicate PV names as a fatal
// program error, not a recoverable one.
type duplicateName struct {
	Name  string
	Cause error
}

func (e duplicateName) Error() string {
	return fmt.Sprintf("ferrite: duplicate PV name %q", e.Name)
}

func (e duplicateName) Unwrap() error {
	return e.Cause
}
