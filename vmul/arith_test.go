package vmul_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/vedic/vmul"
)

func TestMultiply8x8(t *testing.T) {
	td := []struct {
		a, b uint8
		p    uint16
	}{
		{0, 0, 0},
		{0, 255, 0},
		{1, 255, 255},
		{255, 1, 255},
		{16, 16, 256},
		{255, 255, 65025},
		{200, 100, 20000},
		{13, 11, 143},
		{173, 91, 15743},
	}
	for _, d := range td {
		assert.Equal(t, d.p, vmul.Multiply8x8(d.a, d.b), "%d x %d", d.a, d.b)
	}
}

func TestMultiply4x4_exhaustive(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			assert.Equal(t, a*b, vmul.Multiply4x4(a, b), "%d x %d", a, b)
		}
	}
}

func TestMultiply2x2_exhaustive(t *testing.T) {
	for a := uint8(0); a < 4; a++ {
		for b := uint8(0); b < 4; b++ {
			assert.Equal(t, a*b, vmul.Multiply2x2(a, b), "%d x %d", a, b)
		}
	}
}

func TestAdd(t *testing.T) {
	td := []struct {
		bits int
		a, b uint16
		cin  bool
		sum  uint16
		cout bool
	}{
		{4, 15, 1, false, 0, true},
		{4, 7, 8, false, 15, false},
		{4, 15, 15, true, 15, true},
		{6, 63, 1, false, 0, true},
		{6, 31, 31, false, 62, false},
		{8, 255, 255, true, 255, true},
		{8, 200, 55, false, 255, false},
		{12, 4095, 0, true, 0, true},
		{12, 2048, 2047, false, 4095, false},
	}
	for _, d := range td {
		sum, cout := vmul.Add(d.bits, d.a, d.b, d.cin)
		assert.Equal(t, d.sum, sum, "Add(%d, %d, %d, %v) sum", d.bits, d.a, d.b, d.cin)
		assert.Equal(t, d.cout, cout, "Add(%d, %d, %d, %v) cout", d.bits, d.a, d.b, d.cin)
	}
}

func TestFullAdd(t *testing.T) {
	for i := 0; i < 8; i++ {
		a, b, cin := i&1 != 0, i&2 != 0, i&4 != 0
		n := i&1 + i>>1&1 + i>>2&1
		sum, cout := vmul.FullAdd(a, b, cin)
		assert.Equal(t, n&1 != 0, sum, "FullAdd(%v, %v, %v) sum", a, b, cin)
		assert.Equal(t, n > 1, cout, "FullAdd(%v, %v, %v) cout", a, b, cin)
	}
}

func TestHalfAdd(t *testing.T) {
	for i := 0; i < 4; i++ {
		a, b := i&1 != 0, i&2 != 0
		sum, carry := vmul.HalfAdd(a, b)
		assert.Equal(t, a != b, sum, "HalfAdd(%v, %v) sum", a, b)
		assert.Equal(t, a && b, carry, "HalfAdd(%v, %v) carry", a, b)
	}
}
