package ferrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_S5 exercises S5: Store(7) then Store(8) coalesce so
// that exactly one commit delivers 8; the host never sees 7 if both
// stores happen before Requested.
func TestScenario_S5(t *testing.T) {
	t.Parallel()
	h := newFakeScalarHost[int32]("x", Read|Write|RequestProc)
	v := InitVariable(h, nil)
	sv := &ScalarVar[int32]{variable: v}

	b := NewAtomicBridge[int32](sv, 0)
	b.Store(7)
	b.Store(8)

	require.Equal(t, Requested, v.Stage())
	require.Equal(t, 1, h.requests)

	h.Lock()
	v.ProcBegin()
	h.Unlock()

	require.Len(t, h.commits, 1)
	assert.True(t, h.commits[0].OK)
	assert.Equal(t, int32(8), *(*int32)(h.ValuePtr()))
	assert.Equal(t, Committed, v.Stage())

	h.Lock()
	v.ProcEnd()
	h.Unlock()
	assert.Equal(t, Idle, v.Stage())
}

// TestProperty8 exercises property 8: store(v) then a host cycle
// leaves host storage equal to v; a host-initiated cycle that changes
// host storage leaves the bridge's atomic equal to the new host value on
// the following Load.
func TestProperty8_StoreThenHostCycle(t *testing.T) {
	t.Parallel()
	h := newFakeScalarHost[int32]("x", Read|Write|RequestProc)
	v := InitVariable(h, nil)
	sv := &ScalarVar[int32]{variable: v}
	b := NewAtomicBridge[int32](sv, 0)

	b.Store(42)
	h.Lock()
	v.ProcBegin()
	h.Unlock()
	assert.Equal(t, int32(42), *(*int32)(h.ValuePtr()))
	h.Lock()
	v.ProcEnd()
	h.Unlock()
}

func TestProperty8_HostInitiatedCycleUpdatesAtomic(t *testing.T) {
	t.Parallel()
	h := newFakeScalarHost[int32]("x", Read|Write|RequestProc)
	v := InitVariable(h, nil)
	sv := &ScalarVar[int32]{variable: v}
	b := NewAtomicBridge[int32](sv, 0)

	// host spontaneously writes a new value and cycles through
	// Processing without the bridge ever calling Store.
	*(*int32)(h.ValuePtr()) = 99
	h.Lock()
	v.ProcBegin()
	h.Unlock()

	require.Equal(t, Committed, v.Stage())
	assert.Equal(t, int32(99), b.Load())

	h.Lock()
	v.ProcEnd()
	h.Unlock()
}

func TestAtomicBridge_Swap(t *testing.T) {
	t.Parallel()
	h := newFakeScalarHost[int32]("x", Read|Write|RequestProc)
	v := InitVariable(h, nil)
	b := NewAtomicBridge[int32](&ScalarVar[int32]{variable: v}, 5)

	old := b.Swap(6)
	assert.Equal(t, int32(5), old)
	assert.Equal(t, int32(6), b.Load())
}

func TestAtomicBridge_CompareAndSwap(t *testing.T) {
	t.Parallel()
	h := newFakeScalarHost[int32]("x", Read|Write|RequestProc)
	v := InitVariable(h, nil)
	b := NewAtomicBridge[int32](&ScalarVar[int32]{variable: v}, 5)

	assert.False(t, b.CompareAndSwap(1, 2))
	assert.True(t, b.CompareAndSwap(5, 9))
	assert.Equal(t, int32(9), b.Load())
}

func TestAtomicBridge_FetchUpdate(t *testing.T) {
	t.Parallel()
	h := newFakeScalarHost[int32]("x", Read|Write|RequestProc)
	v := InitVariable(h, nil)
	b := NewAtomicBridge[int32](&ScalarVar[int32]{variable: v}, 5)

	old, ok := b.FetchUpdate(func(cur int32) (int32, bool) { return cur + 1, true })
	assert.True(t, ok)
	assert.Equal(t, int32(5), old)
	assert.Equal(t, int32(6), b.Load())

	_, ok = b.FetchUpdate(func(int32) (int32, bool) { return 0, false })
	assert.False(t, ok)
	assert.Equal(t, int32(6), b.Load())
}
