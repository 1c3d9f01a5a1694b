// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vtest

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/jrick/bitset"

	"github.com/db47h/vedic"
	"github.com/db47h/vedic/vlib"
)

// VerifyMul exhaustively checks a bits x bits -> 2*bits multiplier part
// against native multiplication. The part must have inputs a[bits], b[bits]
// and output out[2*bits]. A single circuit is built and swept over all
// operand pairs through input closures; every covered pair is recorded in a
// bit set that is checked for completeness at the end.
func VerifyMul(t *testing.T, bits int, mul vedic.NewPartFn) {
	t.Helper()

	var a, b, out int64
	n := bits - 1
	m := 2*bits - 1
	c, err := vedic.NewCircuit(0, vedic.Parts{
		vlib.InputN(bits, func() int64 { return a })(fmt.Sprintf("out[0..%d]=a[0..%d]", n, n)),
		vlib.InputN(bits, func() int64 { return b })(fmt.Sprintf("out[0..%d]=b[0..%d]", n, n)),
		mul(fmt.Sprintf("a[0..%d]=a[0..%d], b[0..%d]=b[0..%d], out[0..%d]=p[0..%d]", n, n, n, n, m, m)),
		vlib.OutputN(2*bits, func(v int64) { out = v })(fmt.Sprintf("in[0..%d]=p[0..%d]", m, m)),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	max := int64(1) << uint(bits)
	covered := bitset.NewBytes(int(max * max))
	for a = 0; a < max; a++ {
		for b = 0; b < max; b++ {
			if err := c.Settle(); err != nil {
				t.Fatal(err)
			}
			if out != a*b {
				t.Fatalf("%d x %d: got %d, expected %d", a, b, out, a*b)
			}
			covered.Set(int(a*max + b))
		}
	}
	for i := 0; i < int(max*max); i++ {
		if !covered.Get(i) {
			t.Fatalf("operand pair %d/%d not covered", i/int(max), i%int(max))
		}
	}
}

// VerifyAdder checks a bits-wide ripple adder part against native addition:
// exhaustively over both operands and carry-in for widths up to 8, and with
// boundary plus random vectors for wider adders. The part must have inputs
// a[bits], b[bits], cin and outputs out[bits], cout.
func VerifyAdder(t *testing.T, bits int, adder vedic.NewPartFn) {
	t.Helper()

	var a, b int64
	var cin bool
	var sum int64
	var cout bool
	n := bits - 1
	c, err := vedic.NewCircuit(0, vedic.Parts{
		vlib.InputN(bits, func() int64 { return a })(fmt.Sprintf("out[0..%d]=a[0..%d]", n, n)),
		vlib.InputN(bits, func() int64 { return b })(fmt.Sprintf("out[0..%d]=b[0..%d]", n, n)),
		vlib.Input(func() bool { return cin })("out=cin"),
		adder(fmt.Sprintf("a[0..%d]=a[0..%d], b[0..%d]=b[0..%d], cin=cin, out[0..%d]=s[0..%d], cout=co",
			n, n, n, n, n, n)),
		vlib.OutputN(bits, func(v int64) { sum = v })(fmt.Sprintf("in[0..%d]=s[0..%d]", n, n)),
		vlib.Output(func(v bool) { cout = v })("in=co"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	max := int64(1) << uint(bits)
	check := func() {
		t.Helper()
		if err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		ci := int64(0)
		if cin {
			ci = 1
		}
		got := sum
		if cout {
			got |= max
		}
		if got != a+b+ci {
			t.Fatalf("%d + %d + %d: got %d, expected %d", a, b, ci, got, a+b+ci)
		}
	}

	if bits <= 8 {
		for a = 0; a < max; a++ {
			for b = 0; b < max; b++ {
				cin = false
				check()
				cin = true
				check()
			}
		}
		return
	}

	// boundary vectors
	for _, v := range [][2]int64{
		{0, 0}, {max - 1, 1}, {1, max - 1}, {max - 1, max - 1}, {max / 2, max / 2},
	} {
		a, b = v[0], v[1]
		cin = false
		check()
		cin = true
		check()
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 4096; i++ {
		a, b = rng.Int63n(max), rng.Int63n(max)
		cin = rng.Int63()&1 != 0
		check()
	}
}
