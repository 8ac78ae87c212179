package ffi

/*
#include "ferrite.h"
*/
import "C"

import (
	"fmt"
	"os"
	"runtime"
	"runtime/cgo"

	"github.com/agerasev/go-ferrite"
)

// fer_app_init has nothing to install: Go recovers panics per-goroutine
// rather than through a single global hook, so that work lives in
// runApp's deferred recover instead. The export still exists because the
// host calls it unconditionally before fer_app_start.
//
//export fer_app_init
func fer_app_init() {}

//export fer_app_start
func fer_app_start() {
	go runApp()
}

func runApp() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "ferrite: panic in application goroutine: %v\n", r)
			C.fer_app_exit(1)
			return
		}
	}()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := ferrite.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "ferrite: application returned error: %v\n", err)
		C.fer_app_exit(1)
		return
	}
	C.fer_app_exit(0)
}

//export fer_var_init
func fer_var_init(raw *C.FerVar) {
	host := &cHost{raw: raw}
	v := ferrite.InitHostVariable(host)
	h := cgo.NewHandle(v)
	setUserDataHandle(raw, h)
}

//export fer_var_proc_begin
func fer_var_proc_begin(raw *C.FerVar) {
	// No lock needed here: the host already holds the variable's mutex
	// for the duration of this call.
	v := handleFromUserData(raw).Value().(*ferrite.Variable)
	v.ProcBegin()
}

//export fer_var_proc_end
func fer_var_proc_end(raw *C.FerVar) {
	v := handleFromUserData(raw).Value().(*ferrite.Variable)
	v.ProcEnd()
}
