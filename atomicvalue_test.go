package ferrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomic_LoadStoreRoundTrip(t *testing.T) {
	t.Parallel()
	a := NewAtomic[float64](1.5)
	assert.Equal(t, 1.5, a.Load())
	a.Store(-2.25)
	assert.Equal(t, -2.25, a.Load())
}

func TestAtomic_Swap(t *testing.T) {
	t.Parallel()
	a := NewAtomic[int32](10)
	old := a.Swap(20)
	assert.Equal(t, int32(10), old)
	assert.Equal(t, int32(20), a.Load())
}

func TestAtomic_CompareAndSwap(t *testing.T) {
	t.Parallel()
	a := NewAtomic[uint8](5)
	assert.False(t, a.CompareAndSwap(1, 2))
	assert.True(t, a.CompareAndSwap(5, 9))
	assert.Equal(t, uint8(9), a.Load())
}

func TestAtomic_NegativeIntegers(t *testing.T) {
	t.Parallel()
	a := NewAtomic[int16](-1234)
	assert.Equal(t, int16(-1234), a.Load())
}

func TestAtomic_AllNumericTypes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint8(7), NewAtomic[uint8](7).Load())
	assert.Equal(t, int8(-7), NewAtomic[int8](-7).Load())
	assert.Equal(t, uint16(7), NewAtomic[uint16](7).Load())
	assert.Equal(t, int16(-7), NewAtomic[int16](-7).Load())
	assert.Equal(t, uint32(7), NewAtomic[uint32](7).Load())
	assert.Equal(t, int32(-7), NewAtomic[int32](-7).Load())
	assert.Equal(t, uint64(7), NewAtomic[uint64](7).Load())
	assert.Equal(t, int64(-7), NewAtomic[int64](-7).Load())
	assert.Equal(t, float32(7.5), NewAtomic[float32](7.5).Load())
	assert.Equal(t, float64(7.5), NewAtomic[float64](7.5).Load())
}

// volts is a named type satisfying Numeric's ~float64 element; it must
// not reach the panic default of toBits/fromBits/elemTypeOf, which
// dispatch on reflect.Kind rather than on the exact type.
type volts float64

// ticks is a named type satisfying Numeric's ~int32 element.
type ticks int32

func TestAtomic_NamedNumericType(t *testing.T) {
	t.Parallel()
	a := NewAtomic[volts](12.5)
	assert.Equal(t, volts(12.5), a.Load())
	old := a.Swap(-4)
	assert.Equal(t, volts(12.5), old)
	assert.Equal(t, volts(-4), a.Load())
}

func TestElemTypeOf_NamedNumericType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, F64, elemTypeOf[volts]())
	assert.Equal(t, I32, elemTypeOf[ticks]())
}
