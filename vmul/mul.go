// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vmul implements an unsigned 8x8 multiplier as a structural,
// recursive gate-level circuit following the Urdhva Tiryagbhyam
// ("vertically-crosswise") decomposition: all partial products of the
// operand halves are generated in parallel and merged positionally through
// ripple-carry adders. The decomposition hierarchy, down to individual AND
// gates and half adders, is preserved as explicit chip composition; no part
// uses a native multiply.
package vmul

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/db47h/vedic"
	"github.com/db47h/vedic/vlib"
)

// The 2x2 leaf multiplier. The four partial bit conjunctions are generated
// in parallel; a0&b0 is product bit 0 directly, the three cross terms merge
// through two chained half adders. The second half adder's carry has no
// further stage to feed and becomes product bit 3.
var mul2 = mustChip("Mul2", "a[2], b[2]", "out[4]", vedic.Parts{
	vlib.And("a=a[0], b=b[0], out=out[0]"),
	vlib.And("a=a[0], b=b[1], out=x0"),
	vlib.And("a=a[1], b=b[0], out=x1"),
	vlib.And("a=a[1], b=b[1], out=x2"),
	vlib.HalfAdder("a=x0, b=x1, s=out[1], c=c0"),
	vlib.HalfAdder("a=x2, b=c0, s=out[2], c=out[3]"),
})

// Mul2 returns the 2x2 leaf multiplier.
//
//	Inputs: a[2], b[2]
//	Outputs: out[4]
//	Function: out = a * b
func Mul2(c string) vedic.Part {
	return mul2(c)
}

// Mul4 returns a 4x4 multiplier built from four Mul2 partial products.
//
//	Inputs: a[4], b[4]
//	Outputs: out[8]
//	Function: out = a * b
func Mul4(c string) vedic.Part {
	return MulN(4)(c)
}

// Mul8 returns the top level 8x8 multiplier built from four Mul4 partial
// products. This is the entry point handed to the synthesis flow: the chip
// is named "Mul8" with port contract a[8], b[8] -> out[16].
//
//	Inputs: a[8], b[8]
//	Outputs: out[16]
//	Function: out = a * b
func Mul8(c string) vedic.Part {
	return MulN(8)(c)
}

var muls = struct {
	sync.Mutex
	m map[int]vedic.NewPartFn
}{m: map[int]vedic.NewPartFn{2: mul2}}

// MulN returns a bits x bits -> 2*bits unsigned multiplier. bits must be a
// power of two so that successive halvings reach the Mul2 leaf.
//
// For bits > 2 the multiplier splits each operand into two bits/2 halves,
// computes the four partial products P00=lo(a)*lo(b), P01=lo(a)*hi(b),
// P10=hi(a)*lo(b) and P11=hi(a)*hi(b) with four MulN(bits/2) instances and
// merges them in three ripple adder stages:
//
//	S0 = P00>>half + P10                  (AdderN(bits))
//	S1 = P01 + P11<<half                  (AdderN(bits+half))
//	S2 = S0 + S1                          (AdderN(bits+half))
//	out = {S2, P00 & (1<<half - 1)}
//
// Zero extension of the shifted operands is expressed by leaving adder input
// pins unconnected (grounded); each stage's carry out is left unconnected
// because the operand magnitudes at that stage cannot overflow the chosen
// width.
func MulN(bits int) vedic.NewPartFn {
	if bits < 2 || bits&(bits-1) != 0 {
		panic("MulN: bits must be a power of two, got " + strconv.Itoa(bits))
	}
	muls.Lock()
	m := muls.m[bits]
	muls.Unlock()
	if m != nil {
		return m
	}

	half := bits / 2
	sub := MulN(half)
	addS0 := vlib.AdderN(bits)
	addS1 := vlib.AdderN(bits + half)

	// pin index shorthands
	h1, b1, s1 := half-1, bits-1, bits+half-1

	parts := vedic.Parts{
		// P00: low half goes straight to the product, high half to S0.
		sub(fmt.Sprintf("a[0..%d]=a[0..%d], b[0..%d]=b[0..%d], out[0..%d]=out[0..%d], out[%d..%d]=p00h[0..%d]",
			h1, h1, h1, h1, h1, h1, half, b1, h1)),
		sub(fmt.Sprintf("a[0..%d]=a[%d..%d], b[0..%d]=b[0..%d], out[0..%d]=p10[0..%d]",
			h1, half, b1, h1, h1, b1, b1)),
		sub(fmt.Sprintf("a[0..%d]=a[0..%d], b[0..%d]=b[%d..%d], out[0..%d]=p01[0..%d]",
			h1, h1, h1, half, b1, b1, b1)),
		sub(fmt.Sprintf("a[0..%d]=a[%d..%d], b[0..%d]=b[%d..%d], out[0..%d]=p11[0..%d]",
			h1, half, b1, h1, half, b1, b1, b1)),
		// S0 = P00>>half + P10; a[half..bits-1] grounded.
		addS0(fmt.Sprintf("a[0..%d]=p00h[0..%d], b[0..%d]=p10[0..%d], out[0..%d]=s0[0..%d]",
			h1, h1, b1, b1, b1, b1)),
		// S1 = P01 + P11<<half; a and b high/low ends grounded.
		addS1(fmt.Sprintf("a[0..%d]=p01[0..%d], b[%d..%d]=p11[0..%d], out[0..%d]=s1[0..%d]",
			b1, b1, half, s1, b1, s1, s1)),
		// S2 = S0 + S1, forming the product's high bits.
		addS1(fmt.Sprintf("a[0..%d]=s0[0..%d], b[0..%d]=s1[0..%d], out[0..%d]=out[%d..%d]",
			b1, b1, s1, s1, s1, half, 2*bits-1)),
	}

	bs := strconv.Itoa(bits)
	m = mustChip("Mul"+bs,
		"a["+bs+"], b["+bs+"]",
		"out["+strconv.Itoa(2*bits)+"]",
		parts)
	muls.Lock()
	muls.m[bits] = m
	muls.Unlock()
	return m
}

func mustChip(name string, inputs, outputs string, parts vedic.Parts) vedic.NewPartFn {
	p, err := vedic.Chip(name, inputs, outputs, parts)
	if err != nil {
		panic(err)
	}
	return p
}
