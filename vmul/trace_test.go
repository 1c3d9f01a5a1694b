package vmul_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/vedic/vmul"
)

func checkTrace8(t *testing.T, a, b uint8) {
	t.Helper()
	tr := vmul.Decompose8(a, b)
	require.Equal(t, uint16(a)*uint16(b), tr.Product, "%d x %d", a, b)

	al, ah := a&0x0f, a>>4
	bl, bh := b&0x0f, b>>4
	assert.Equal(t, al*bl, tr.P00, "%d x %d: P00", a, b)
	assert.Equal(t, al*bh, tr.P01, "%d x %d: P01", a, b)
	assert.Equal(t, ah*bl, tr.P10, "%d x %d: P10", a, b)
	assert.Equal(t, ah*bh, tr.P11, "%d x %d: P11", a, b)

	// merge stages
	assert.Equal(t, tr.P00>>4+tr.P10, tr.S0, "%d x %d: S0", a, b)
	assert.Equal(t, uint16(tr.P01)+uint16(tr.P11)<<4, tr.S1, "%d x %d: S1", a, b)
	assert.Equal(t, uint16(tr.S0)+tr.S1, tr.S2, "%d x %d: S2", a, b)
	assert.Equal(t, tr.S2<<4|uint16(tr.P00&0x0f), tr.Product, "%d x %d: assembly", a, b)

	// structural and decomposed paths agree
	assert.Equal(t, vmul.Multiply8x8(a, b), tr.Product, "%d x %d", a, b)
}

func TestDecompose8(t *testing.T) {
	for _, d := range [][2]uint8{
		{0, 0}, {1, 1}, {15, 15}, {16, 16}, {255, 1}, {1, 255}, {255, 255},
		{173, 91}, {200, 13}, {85, 170},
	} {
		checkTrace8(t, d[0], d[1])
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 64; i++ {
		checkTrace8(t, uint8(rng.Intn(256)), uint8(rng.Intn(256)))
	}
}

func TestDecompose4_exhaustive(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			tr := vmul.Decompose4(a, b)
			require.Equal(t, a*b, tr.Product, "%d x %d", a, b)
			assert.Equal(t, tr.S2<<2|tr.P00&3, tr.Product, "%d x %d: assembly", a, b)
			assert.Equal(t, vmul.Multiply4x4(a, b), tr.Product, "%d x %d", a, b)
		}
	}
}
