// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vmul

import (
	"fmt"

	"github.com/db47h/vedic"
	"github.com/db47h/vedic/vlib"
)

// Multiply8x8 multiplies two 8-bit unsigned operands through the structural
// Mul8 circuit and returns the exact 16-bit product.
//
// A fresh circuit is built, settled and disposed of on every call; the
// function is reentrant and safe for concurrent use.
func Multiply8x8(a, b uint8) uint16 {
	return uint16(runMul(8, MulN(8), int64(a), int64(b)))
}

// Multiply4x4 multiplies two 4-bit unsigned operands through the Mul4
// circuit. Operands are taken modulo 16.
func Multiply4x4(a, b uint8) uint8 {
	return uint8(runMul(4, MulN(4), int64(a&0x0f), int64(b&0x0f)))
}

// Multiply2x2 multiplies two 2-bit unsigned operands through the Mul2 leaf
// circuit. Operands are taken modulo 4.
func Multiply2x2(a, b uint8) uint8 {
	return uint8(runMul(2, mul2, int64(a&3), int64(b&3)))
}

func runMul(bits int, mul vedic.NewPartFn, a, b int64) int64 {
	var out int64
	n := bits - 1
	c, err := vedic.NewCircuit(1, vedic.Parts{
		vlib.InputN(bits, func() int64 { return a })(fmt.Sprintf("out[0..%d]=a[0..%d]", n, n)),
		vlib.InputN(bits, func() int64 { return b })(fmt.Sprintf("out[0..%d]=b[0..%d]", n, n)),
		mul(fmt.Sprintf("a[0..%d]=a[0..%d], b[0..%d]=b[0..%d], out[0..%d]=p[0..%d]",
			n, n, n, n, 2*bits-1, 2*bits-1)),
		vlib.OutputN(2*bits, func(v int64) { out = v })(fmt.Sprintf("in[0..%d]=p[0..%d]", 2*bits-1, 2*bits-1)),
	})
	if err != nil {
		panic(err)
	}
	defer c.Dispose()
	if err := c.Settle(); err != nil {
		panic(err)
	}
	return out
}

// Add runs a + b + cin through the ripple adder of the given width and
// returns the bits-wide sum along with the carry out. Operands are taken
// modulo 2^bits. The multiplier's merge stages use widths 4, 6, 8 and 12,
// but any width works.
func Add(bits int, a, b uint16, cin bool) (sum uint16, cout bool) {
	mask := int64(1)<<uint(bits) - 1
	va, vb := int64(a)&mask, int64(b)&mask
	var out int64
	var co bool
	n := bits - 1
	c, err := vedic.NewCircuit(1, vedic.Parts{
		vlib.InputN(bits, func() int64 { return va })(fmt.Sprintf("out[0..%d]=a[0..%d]", n, n)),
		vlib.InputN(bits, func() int64 { return vb })(fmt.Sprintf("out[0..%d]=b[0..%d]", n, n)),
		vlib.Input(func() bool { return cin })("out=cin"),
		vlib.AdderN(bits)(fmt.Sprintf("a[0..%d]=a[0..%d], b[0..%d]=b[0..%d], cin=cin, out[0..%d]=s[0..%d], cout=co",
			n, n, n, n, n, n)),
		vlib.OutputN(bits, func(v int64) { out = v })(fmt.Sprintf("in[0..%d]=s[0..%d]", n, n)),
		vlib.Output(func(v bool) { co = v })("in=co"),
	})
	if err != nil {
		panic(err)
	}
	defer c.Dispose()
	if err := c.Settle(); err != nil {
		panic(err)
	}
	return uint16(out), co
}

// FullAdd runs a single full adder stage: a + b + cin = 2*cout + sum.
func FullAdd(a, b, cin bool) (sum, cout bool) {
	var s, co bool
	c, err := vedic.NewCircuit(1, vedic.Parts{
		vlib.Input(func() bool { return a })("out=a"),
		vlib.Input(func() bool { return b })("out=b"),
		vlib.Input(func() bool { return cin })("out=cin"),
		vlib.FullAdder("a=a, b=b, cin=cin, s=s, cout=co"),
		vlib.Output(func(v bool) { s = v })("in=s"),
		vlib.Output(func(v bool) { co = v })("in=co"),
	})
	if err != nil {
		panic(err)
	}
	defer c.Dispose()
	if err := c.Settle(); err != nil {
		panic(err)
	}
	return s, co
}

// HalfAdd runs a single half adder: sum = a XOR b, carry = a AND b.
func HalfAdd(a, b bool) (sum, carry bool) {
	var s, ca bool
	c, err := vedic.NewCircuit(1, vedic.Parts{
		vlib.Input(func() bool { return a })("out=a"),
		vlib.Input(func() bool { return b })("out=b"),
		vlib.HalfAdder("a=a, b=b, s=s, c=ca"),
		vlib.Output(func(v bool) { s = v })("in=s"),
		vlib.Output(func(v bool) { ca = v })("in=ca"),
	})
	if err != nil {
		panic(err)
	}
	defer c.Dispose()
	if err := c.Settle(); err != nil {
		panic(err)
	}
	return s, ca
}
