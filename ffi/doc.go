// Package ffi is the cgo boundary between the pure-Go [ferrite] protocol
// core and a C host process (an EPICS IOC or equivalent). It implements
// [ferrite.Host] over the C ABI declared by ferrite.h, recovers panics in
// the application goroutine it owns, and exports the five C entry points
// the host calls directly: fer_app_init, fer_app_start, fer_var_init,
// fer_var_proc_begin, fer_var_proc_end.
//
// Nothing in this package is reachable from pure-Go tests: cgo code is
// exercised only by a real host process linking this binary. The seam
// ([ferrite.Host]) is what keeps the protocol core itself testable without
// cgo.
package ffi
