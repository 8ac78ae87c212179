package ferrite

import "sync/atomic"

// Context is handed to the function registered via [Main]: it carries the
// registry of variables the host declared, ready for typed claims via
// [ClaimScalar]/[ClaimArray].
type Context struct {
	Registry *Registry
}

var (
	mainFn       func(Context) error
	mainRegistry *Registry
	mainStarted  atomic.Bool
)

// Main registers fn as the application's entry point, to be invoked once
// the ffi package's fer_app_start fires. Rust links a single attributed
// symbol (`extern "Rust" fn ferrite_app_main`) for this; Go has no
// attribute macros, so registration happens via an ordinary function
// call instead, made once from an init() function or from main() before
// the host process reaches fer_app_start.
//
// Calling Main more than once, or after the host has already started the
// application, is a programming error and panics with mainMisuse.
func Main(fn func(ctx Context) error, opts ...RegistryOption) {
	if mainFn != nil || mainStarted.Load() {
		panic(mainMisuse{Reason: "Main called more than once, or after Start"})
	}
	mainFn = fn
	mainRegistry = NewRegistryWithOptions(opts...)
}

// registryForInit returns the registry the ffi package's fer_var_init
// entry point should add newly-initialized variables to. It panics if
// [Main] was never called: the host must not begin initializing variables
// before the application has registered itself.
func registryForInit() *Registry {
	if mainRegistry == nil {
		panic(mainMisuse{Reason: "fer_var_init called before Main registered an application"})
	}
	return mainRegistry
}

// InitHostVariable is the entry point the ffi package's fer_var_init
// calls for every variable the host declares: it adds host to the
// registry [Main] constructed and returns the resulting [Variable].
func InitHostVariable(host Host) *Variable {
	return registryForInit().InitVariable(host)
}

// Start runs the function registered via [Main], handing it a [Context]
// wrapping the registry populated so far, and returns its error. It is
// called exactly once, by the ffi package's fer_app_start entry point.
// Calling it without a prior [Main] registration panics.
func Start() error {
	if mainFn == nil {
		panic(mainMisuse{Reason: "Start called without a prior Main registration"})
	}
	if !mainStarted.CompareAndSwap(false, true) {
		panic(mainMisuse{Reason: "Start called more than once"})
	}
	return mainFn(Context{Registry: mainRegistry})
}
