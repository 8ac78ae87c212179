package ferrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimScalar_Success(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.InitVariable(newFakeScalarHost[int32]("x", Read|Write|RequestProc))

	sv, err := ClaimScalar[int32](r, "x", Read|Write)
	require.NoError(t, err)
	assert.NotNil(t, sv)
}

func TestClaimScalar_NotFound(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_, err := ClaimScalar[int32](r, "missing", Read)
	var nf *NotFound
	assert.ErrorAs(t, err, &nf)
}

// TestProperty10 exercises property 10: downcasting a READ-only
// handle to a view requiring WRITE returns WrongType.
func TestProperty10_PermissionMismatchIsWrongType(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.InitVariable(newFakeScalarHost[int32]("x", Read))

	_, err := ClaimScalar[int32](r, "x", Read|Write)
	var wt *WrongType
	require.ErrorAs(t, err, &wt)
}

func TestClaimScalar_WrongElementType(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.InitVariable(newFakeScalarHost[int32]("x", Read|Write))

	_, err := ClaimScalar[float64](r, "x", Read)
	var wt *WrongType
	assert.ErrorAs(t, err, &wt)
}

// TestScenario_S6 exercises S6: downcasting "trace" (F64 array) as a
// scalar f64 yields WrongType with the original info attached.
func TestScenario_S6(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.InitVariable(newFakeArrayHost[float64]("trace", Read|Write|RequestProc, 4))

	_, err := ClaimScalar[float64](r, "trace", Read)
	var wt *WrongType
	require.ErrorAs(t, err, &wt)
	assert.Equal(t, F64, wt.Info.Type)
	assert.Equal(t, 4, wt.Info.MaxLen)
}

func TestClaimArray_ScalarRejected(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.InitVariable(newFakeScalarHost[int32]("x", Read|Write))

	_, err := ClaimArray[int32](r, "x", Read)
	var wt *WrongType
	assert.ErrorAs(t, err, &wt)
}

func TestClaimScalarBySuffix_Success(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.InitVariable(newFakeScalarHost[int32]("record:field", Read|Write))

	sv, err := ClaimScalarBySuffix[int32](r, "field", Read)
	require.NoError(t, err)
	assert.NotNil(t, sv)
}

func TestClaimArrayBySuffix_NotFound(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_, err := ClaimArrayBySuffix[int32](r, "nope", Read)
	var nf *NotFound
	assert.ErrorAs(t, err, &nf)
}
