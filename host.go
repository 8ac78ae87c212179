package ferrite

import "unsafe"

// ElemType identifies the scalar element type of a variable's storage.
// Values are bit-exact with the host's C ABI (spec §6).
type ElemType uint32

const (
	U8 ElemType = iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

// String returns the canonical name of the element type.
func (t ElemType) String() string {
	switch t {
	case U8:
		return "u8"
	case I8:
		return "i8"
	case U16:
		return "u16"
	case I16:
		return "i16"
	case U32:
		return "u32"
	case I32:
		return "i32"
	case U64:
		return "u64"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "unknown"
	}
}

// Perm is a bitset of operations a variable's declaration permits.
// Values are bit-exact with the host's C ABI (spec §6).
type Perm uint32

const (
	// Read permits reading the variable's current value.
	Read Perm = 1 << iota
	// Write permits writing the variable's value.
	Write
	// RequestProc permits asking the host to process the variable.
	RequestProc
)

// Has reports whether p contains all the bits of other.
func (p Perm) Has(other Perm) bool { return p&other == other }

// VarInfo is a variable's static metadata: its permission set, element
// type, and maximum element count (0 for a scalar, >0 for an array).
type VarInfo struct {
	Perm   Perm
	Type   ElemType
	MaxLen int
}

// IsArray reports whether the variable is declared as an array.
func (i VarInfo) IsArray() bool { return i.MaxLen > 0 }

// CommitStatus accompanies a Processing->Committed transition.
type CommitStatus struct {
	// OK is true for a successful commit. When false, Message carries a
	// short human-readable description of what went wrong, intended for
	// the host's error channel.
	OK      bool
	Message string
}

// StatusOK is the zero-allocation success status.
var StatusOK = CommitStatus{OK: true}

// StatusError builds a failure status carrying msg.
func StatusError(msg string) CommitStatus {
	return CommitStatus{OK: false, Message: msg}
}

// Host is the seam between this package's protocol core and the real-time
// control runtime that owns a variable's storage. The real implementation
// wraps a C handle (see the sibling ffi package); tests use an in-memory
// fake.
//
// All methods operate on host-owned state; Lock/Unlock bracket the host's
// per-variable mutex, and ValuePtr is legal to dereference only while
// locked and the variable's stage is Processing, or while the host itself
// is inside ProcBegin/ProcEnd.
type Host interface {
	// Name returns the variable's stable, human-readable name.
	Name() []byte
	// Info returns the variable's static metadata.
	Info() VarInfo
	// ValuePtr returns a pointer to host-owned storage. For arrays, the
	// storage is MaxLen elements wide; the current length is tracked
	// separately by ArrayLen/SetArrayLen.
	ValuePtr() unsafe.Pointer
	// ArrayLen returns the current element count of array storage. Scalars
	// always report 1.
	ArrayLen() int
	// SetArrayLen sets the current element count of array storage. It is
	// only legal to call while the caller holds the lock and the stage is
	// Processing, i.e. from inside a commit of array storage.
	SetArrayLen(n int)
	// Lock acquires the host-provided per-variable mutex. It may block.
	Lock()
	// Unlock releases the host-provided per-variable mutex.
	Unlock()
	// RequestProcessing informs the host the user wants this variable
	// processed soon. Legal only while locked and only immediately after
	// the Idle->Requested transition.
	RequestProcessing() error
	// Commit informs the host that processing has finished. Legal only
	// while locked and only immediately after the Processing->Committed
	// transition.
	Commit(status CommitStatus) error
}
