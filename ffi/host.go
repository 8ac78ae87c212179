package ffi

/*
#include <stdlib.h>
#include "ferrite.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/agerasev/go-ferrite"
)

// cHost implements [ferrite.Host] over a *C.FerVar handle owned by the
// host process. One cHost is allocated per variable, at fer_var_init, and
// lives for the process's lifetime.
type cHost struct {
	raw *C.FerVar
}

var _ ferrite.Host = (*cHost)(nil)

func (h *cHost) Name() []byte {
	return C.GoBytes(unsafe.Pointer(C.fer_var_name(h.raw)), C.int(C.strlen(C.fer_var_name(h.raw))))
}

func (h *cHost) Info() ferrite.VarInfo {
	info := C.fer_var_info(h.raw)
	return ferrite.VarInfo{
		Perm:   cPermToGo(info.perm),
		Type:   cTypeToGo(info._type),
		MaxLen: int(info.max_len),
	}
}

func (h *cHost) ValuePtr() unsafe.Pointer {
	return unsafe.Pointer(C.fer_var_value(h.raw))
}

func (h *cHost) ArrayLen() int {
	return int(C.fer_var_value_len(h.raw))
}

func (h *cHost) SetArrayLen(n int) {
	C.fer_var_set_value_len(h.raw, C.size_t(n))
}

func (h *cHost) Lock() {
	C.fer_var_lock(h.raw)
}

func (h *cHost) Unlock() {
	C.fer_var_unlock(h.raw)
}

func (h *cHost) RequestProcessing() error {
	C.fer_var_request(h.raw)
	return nil
}

func (h *cHost) Commit(status ferrite.CommitStatus) error {
	if status.OK {
		C.fer_var_commit(h.raw, C.FER_VAR_STATUS_OK, nil, 0)
		return nil
	}
	msg := status.Message
	var msgPtr *C.char
	if len(msg) > 0 {
		msgPtr = (*C.char)(unsafe.Pointer(unsafe.StringData(msg)))
	}
	C.fer_var_commit(h.raw, C.FER_VAR_STATUS_ERROR, msgPtr, C.size_t(len(msg)))
	return &ferrite.CommitError{Message: msg}
}

func cPermToGo(p C.FerVarPerm) ferrite.Perm {
	var out ferrite.Perm
	if p&C.FER_VAR_PERM_READ != 0 {
		out |= ferrite.Read
	}
	if p&C.FER_VAR_PERM_WRITE != 0 {
		out |= ferrite.Write
	}
	if p&C.FER_VAR_PERM_REQUEST != 0 {
		out |= ferrite.RequestProc
	}
	return out
}

func cTypeToGo(t C.FerVarType) ferrite.ElemType {
	switch t {
	case C.FER_VAR_TYPE_U8:
		return ferrite.U8
	case C.FER_VAR_TYPE_I8:
		return ferrite.I8
	case C.FER_VAR_TYPE_U16:
		return ferrite.U16
	case C.FER_VAR_TYPE_I16:
		return ferrite.I16
	case C.FER_VAR_TYPE_U32:
		return ferrite.U32
	case C.FER_VAR_TYPE_I32:
		return ferrite.I32
	case C.FER_VAR_TYPE_U64:
		return ferrite.U64
	case C.FER_VAR_TYPE_I64:
		return ferrite.I64
	case C.FER_VAR_TYPE_F32:
		return ferrite.F32
	default:
		return ferrite.F64
	}
}

// handleFromUserData recovers the [cgo.Handle] this package stashed in
// raw's user-data slot at fer_var_init, mirroring the reference
// implementation's use of that slot to hold its own per-variable state
// (see original_source/src/raw/variable.rs's VariableBase::user_data).
func handleFromUserData(raw *C.FerVar) cgo.Handle {
	return cgo.Handle(uintptr(C.fer_var_user_data(raw)))
}

func setUserDataHandle(raw *C.FerVar, h cgo.Handle) {
	C.fer_var_set_user_data(raw, unsafe.Pointer(uintptr(h)))
}
