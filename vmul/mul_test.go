package vmul_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/vedic/vmul"
	"github.com/db47h/vedic/vtest"
)

func TestMul2_exhaustive(t *testing.T) {
	vtest.VerifyMul(t, 2, vmul.Mul2)
}

func TestMul4_exhaustive(t *testing.T) {
	vtest.VerifyMul(t, 4, vmul.Mul4)
}

func TestMul8_exhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full 8x8 operand sweep in short mode")
	}
	vtest.VerifyMul(t, 8, vmul.Mul8)
}

func TestMul8_ports(t *testing.T) {
	sp := vmul.Mul8("").PartSpec
	require.Equal(t, "Mul8", sp.Name)
	assert.Len(t, sp.Inputs, 16)
	assert.Len(t, sp.Outputs, 16)
	assert.Equal(t, "a[0]", sp.Inputs[0])
	assert.Equal(t, "b[7]", sp.Inputs[15])
	assert.Equal(t, "out[0]", sp.Outputs[0])
	assert.Equal(t, "out[15]", sp.Outputs[15])
}

func TestMulN_widths(t *testing.T) {
	// non powers of two are rejected up front, before any recursion
	for _, bits := range []int{0, 1, 3, 6, 12, 24} {
		assert.PanicsWithValue(t,
			"MulN: bits must be a power of two, got "+strconv.Itoa(bits),
			func() { vmul.MulN(bits) }, "bits=%d", bits)
	}
	assert.NotPanics(t, func() { vmul.MulN(16) })
}

func TestMulN_memoized(t *testing.T) {
	m0, m1 := vmul.MulN(4)(""), vmul.MulN(4)("")
	assert.Same(t, m0.PartSpec, m1.PartSpec)
}
