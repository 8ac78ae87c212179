package ferrite

import (
	"sync"
	"unsafe"
)

// fakeHost is an in-memory [Host] used across this package's tests. It
// models a single host-owned storage cell (scalar or array) guarded by a
// real mutex, with RequestProcessing/Commit hooks the tests can observe or
// fail to exercise error paths.
type fakeHost struct {
	mu sync.Mutex

	name string
	info VarInfo

	storage []byte
	length  int

	onRequest func() error
	onCommit  func(CommitStatus) error

	requests int
	commits  []CommitStatus
}

func newFakeScalarHost[T Numeric](name string, perm Perm) *fakeHost {
	var zero T
	return &fakeHost{
		name:    name,
		info:    VarInfo{Perm: perm, Type: elemTypeOf[T](), MaxLen: 0},
		storage: make([]byte, unsafe.Sizeof(zero)),
		length:  1,
	}
}

func newFakeArrayHost[T Numeric](name string, perm Perm, maxLen int) *fakeHost {
	var zero T
	return &fakeHost{
		name:    name,
		info:    VarInfo{Perm: perm, Type: elemTypeOf[T](), MaxLen: maxLen},
		storage: make([]byte, int(unsafe.Sizeof(zero))*maxLen),
		length:  0,
	}
}

func (h *fakeHost) Name() []byte { return []byte(h.name) }
func (h *fakeHost) Info() VarInfo { return h.info }

func (h *fakeHost) ValuePtr() unsafe.Pointer {
	if len(h.storage) == 0 {
		return nil
	}
	return unsafe.Pointer(&h.storage[0])
}

func (h *fakeHost) ArrayLen() int      { return h.length }
func (h *fakeHost) SetArrayLen(n int)  { h.length = n }

func (h *fakeHost) Lock()   { h.mu.Lock() }
func (h *fakeHost) Unlock() { h.mu.Unlock() }

func (h *fakeHost) RequestProcessing() error {
	h.requests++
	if h.onRequest != nil {
		return h.onRequest()
	}
	return nil
}

func (h *fakeHost) Commit(status CommitStatus) error {
	h.commits = append(h.commits, status)
	if h.onCommit != nil {
		return h.onCommit(status)
	}
	return nil
}

// countingWaker records how many times Wake was called.
type countingWaker struct {
	mu    sync.Mutex
	count int
}

func (w *countingWaker) Wake() {
	w.mu.Lock()
	w.count++
	w.mu.Unlock()
}

func (w *countingWaker) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}
