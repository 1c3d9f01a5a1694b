// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vmul

// Trace8 records the intermediate values of the 8x8 decomposition: the four
// 4x4 partial products, the three merge sums and the assembled product.
// It exists so the structural path, and not only the numeric result, can be
// verified.
type Trace8 struct {
	P00, P01, P10, P11 uint8  // 4x4 partial products
	S0                 uint8  // P00>>4 + P10 (8-bit stage, carry discarded)
	S1                 uint16 // P01 + P11<<4 (12-bit stage)
	S2                 uint16 // S0 + S1 (12-bit stage)
	Product            uint16
}

// Decompose8 computes a*b by explicitly driving the 8x8 merge rule through
// the public 4x4 multiplier and the width-8 and width-12 adders, returning
// every intermediate value. The result always equals Multiply8x8(a, b).
func Decompose8(a, b uint8) Trace8 {
	al, ah := a&0x0f, a>>4
	bl, bh := b&0x0f, b>>4
	t := Trace8{
		P00: Multiply4x4(al, bl),
		P01: Multiply4x4(al, bh),
		P10: Multiply4x4(ah, bl),
		P11: Multiply4x4(ah, bh),
	}
	s0, _ := Add(8, uint16(t.P00>>4), uint16(t.P10), false)
	t.S0 = uint8(s0)
	t.S1, _ = Add(12, uint16(t.P01), uint16(t.P11)<<4, false)
	t.S2, _ = Add(12, uint16(t.S0), t.S1, false)
	t.Product = t.S2<<4 | uint16(t.P00&0x0f)
	return t
}

// Trace4 records the intermediate values of the 4x4 decomposition.
type Trace4 struct {
	P00, P01, P10, P11 uint8 // 2x2 partial products
	S0                 uint8 // P00>>2 + P10 (4-bit stage, carry discarded)
	S1                 uint8 // P01 + P11<<2 (6-bit stage)
	S2                 uint8 // S0 + S1 (6-bit stage)
	Product            uint8
}

// Decompose4 computes a*b (operands modulo 16) by explicitly driving the
// 4x4 merge rule through the public 2x2 multiplier and the width-4 and
// width-6 adders. The result always equals Multiply4x4(a, b).
func Decompose4(a, b uint8) Trace4 {
	al, ah := a&3, (a>>2)&3
	bl, bh := b&3, (b>>2)&3
	t := Trace4{
		P00: Multiply2x2(al, bl),
		P01: Multiply2x2(al, bh),
		P10: Multiply2x2(ah, bl),
		P11: Multiply2x2(ah, bh),
	}
	s0, _ := Add(4, uint16(t.P00>>2), uint16(t.P10), false)
	t.S0 = uint8(s0)
	s1, _ := Add(6, uint16(t.P01), uint16(t.P11)<<2, false)
	t.S1 = uint8(s1)
	s2, _ := Add(6, uint16(t.S0), uint16(t.S1), false)
	t.S2 = uint8(s2)
	t.Product = t.S2<<2 | t.P00&3
	return t
}
