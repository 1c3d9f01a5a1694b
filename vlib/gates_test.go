package vlib_test

import (
	"testing"

	"github.com/db47h/vedic"
	"github.com/db47h/vedic/vlib"
)

// gateTable drives all input combinations of a two input gate and checks the
// output against the truth table. result[i] is the expected output for input
// combination i, with a the least significant bit of i.
func gateTable(t *testing.T, name string, gate func(string) vedic.Part, result [4]bool) {
	t.Helper()
	var a, b, out bool
	c, err := vedic.NewCircuit(0, vedic.Parts{
		vlib.Input(func() bool { return a })("out=a"),
		vlib.Input(func() bool { return b })("out=b"),
		gate("a=a, b=b, out=out"),
		vlib.Output(func(v bool) { out = v })("in=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for i := 0; i < 4; i++ {
		a, b = i&1 != 0, i&2 != 0
		if err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		if out != result[i] {
			t.Errorf("%s(%v, %v) = %v, expected %v", name, a, b, out, result[i])
		}
	}
}

func TestGates(t *testing.T) {
	td := []struct {
		name   string
		gate   func(string) vedic.Part
		result [4]bool
	}{
		{"And", vlib.And, [4]bool{false, false, false, true}},
		{"Nand", vlib.Nand, [4]bool{true, true, true, false}},
		{"Or", vlib.Or, [4]bool{false, true, true, true}},
		{"Nor", vlib.Nor, [4]bool{true, false, false, false}},
		{"Xor", vlib.Xor, [4]bool{false, true, true, false}},
		{"Xnor", vlib.Xnor, [4]bool{true, false, false, true}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			gateTable(t, d.name, d.gate, d.result)
		})
	}
}

func TestNot(t *testing.T) {
	var in, out bool
	c, err := vedic.NewCircuit(0, vedic.Parts{
		vlib.Input(func() bool { return in })("out=w"),
		vlib.Not("in=w, out=notW"),
		vlib.Output(func(v bool) { out = v })("in=notW"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for _, v := range []bool{false, true} {
		in = v
		if err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		if out != !v {
			t.Errorf("Not(%v) = %v", v, out)
		}
	}
}

func TestConstants(t *testing.T) {
	var t0, f0 bool
	c, err := vedic.NewCircuit(0, vedic.Parts{
		vlib.Not("in=true, out=notTrue"),
		vlib.Not("in=false, out=notFalse"),
		vlib.Output(func(v bool) { t0 = v })("in=notTrue"),
		vlib.Output(func(v bool) { f0 = v })("in=notFalse"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	if err := c.Settle(); err != nil {
		t.Fatal(err)
	}
	if t0 || !f0 {
		t.Errorf("!true = %v, !false = %v", t0, f0)
	}
}
