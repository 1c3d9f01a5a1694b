// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vlib

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/db47h/vedic"
)

// mustChip builds a chip from statically known wiring and panics on error.
func mustChip(name string, inputs, outputs string, parts vedic.Parts) vedic.NewPartFn {
	p, err := vedic.Chip(name, inputs, outputs, parts)
	if err != nil {
		panic(err)
	}
	return p
}

var halfAdder = mustChip("HalfAdder", "a, b", "s, c", vedic.Parts{
	Xor("a=a, b=b, out=s"),
	And("a=a, b=b, out=c"),
})

// HalfAdder returns a half adder: one XOR for the sum bit, one AND for the
// carry.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
func HalfAdder(c string) vedic.Part {
	return halfAdder(c)
}

// A full adder is two chained half adders; the carry out is the OR of the
// two half carries, which works because at most one of them can be set.
var fullAdder = mustChip("FullAdder", "a, b, cin", "s, cout", vedic.Parts{
	HalfAdder("a=a, b=b, s=s0, c=c0"),
	HalfAdder("a=s0, b=cin, s=s, c=c1"),
	Or("a=c0, b=c1, out=cout"),
})

// FullAdder returns a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
func FullAdder(c string) vedic.Part {
	return fullAdder(c)
}

var adders = struct {
	sync.Mutex
	m map[int]vedic.NewPartFn
}{m: make(map[int]vedic.NewPartFn)}

// AdderN returns a bits-wide ripple-carry adder: a chain of bits FullAdders
// with the carry propagating from bit 0 upward. The first stage's carry-in
// is the external cin, the last stage's carry-out the external cout.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: out[bits], cout
//	Function: {cout, out} = a + b + cin
func AdderN(bits int) vedic.NewPartFn {
	if bits < 1 {
		panic("AdderN: bits must be >= 1")
	}
	adders.Lock()
	defer adders.Unlock()
	if a := adders.m[bits]; a != nil {
		return a
	}

	parts := make(vedic.Parts, 0, bits)
	cin := "cin"
	for i := 0; i < bits; i++ {
		cout := "c" + strconv.Itoa(i)
		if i == bits-1 {
			cout = "cout"
		}
		parts = append(parts, FullAdder(fmt.Sprintf(
			"a=a[%d], b=b[%d], cin=%s, s=out[%d], cout=%s", i, i, cin, i, cout)))
		cin = cout
	}
	bs := strconv.Itoa(bits)
	a := mustChip("Adder"+bs,
		"a["+bs+"], b["+bs+"], cin",
		"out["+bs+"], cout",
		parts)
	adders.m[bits] = a
	return a
}
