package ferrite

import "reflect"

// Numeric is the set of scalar element types a PV's storage may hold,
// matching the [ElemType] enumeration exactly. The approximation elements
// (~uint8, ~int8, ...) admit named types too (type Volts float64), so
// dispatch on T must go by underlying kind, never by asserting against
// the exact predeclared type.
type Numeric interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64 | ~float32 | ~float64
}

// elemTypeOf returns the [ElemType] code for T.
func elemTypeOf[T Numeric]() ElemType {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint8:
		return U8
	case reflect.Int8:
		return I8
	case reflect.Uint16:
		return U16
	case reflect.Int16:
		return I16
	case reflect.Uint32:
		return U32
	case reflect.Int32:
		return I32
	case reflect.Uint64:
		return U64
	case reflect.Int64:
		return I64
	case reflect.Float32:
		return F32
	case reflect.Float64:
		return F64
	default:
		panic("ferrite: unsupported numeric type")
	}
}
