// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vtest provides utility functions for testing circuits.
package vtest

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/db47h/vedic"
	"github.com/db47h/vedic/vlib"
)

func connString(in, out []string) string {
	var b strings.Builder
	for _, n := range in {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(n)
	}
	for _, n := range out {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(n)
	}
	return b.String()
}

func pinList(in []string) string {
	bus := make(map[string]int)
	var order []string
	var pins []string

	for _, n := range in {
		if b := strings.IndexRune(n, '['); b >= 0 {
			bn := n[:b]
			idx, err := strconv.Atoi(n[b+1 : strings.IndexRune(n, ']')])
			if err != nil {
				panic(err)
			}
			if bidx, ok := bus[bn]; !ok {
				bus[bn] = idx
				order = append(order, bn)
			} else if bidx < idx {
				bus[bn] = idx
			}
		} else {
			pins = append(pins, n)
		}
	}

	var b strings.Builder
	for _, k := range order {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(k)
		b.WriteRune('[')
		b.WriteString(strconv.Itoa(bus[k] + 1))
		b.WriteRune(']')
	}
	for _, n := range pins {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
	}
	return b.String()
}

// ComparePart takes two parts and compares their outputs given the same
// inputs: all zeros, all ones, then random vectors. Both parts must have the
// same input/output interface.
func ComparePart(t *testing.T, part1 vedic.NewPartFn, part2 vedic.NewPartFn) {
	t.Helper()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ps1, ps2 := part1(""), part2("")
	conns := connString(ps1.Inputs, ps1.Outputs)
	ps1, ps2 = part1(conns), part2(conns)

	if len(ps1.Inputs) != len(ps2.Inputs) {
		t.Fatal("len(ps1.Inputs) != len(ps2.Inputs)")
	}
	if len(ps1.Outputs) != len(ps2.Outputs) {
		t.Fatal("len(ps1.Outputs) != len(ps2.Outputs)")
	}
	for i := range ps1.Inputs {
		if ps1.Inputs[i] != ps2.Inputs[i] {
			t.Fatalf("ps1.Inputs[i] = %q != ps2.Inputs[i] = %q", ps1.Inputs[i], ps2.Inputs[i])
		}
	}
	for i := range ps1.Outputs {
		if ps1.Outputs[i] != ps2.Outputs[i] {
			t.Fatalf("ps1.Outputs[i] = %q != ps2.Outputs[i] = %q", ps1.Outputs[i], ps2.Outputs[i])
		}
	}

	inputs := make([]bool, len(ps1.Inputs))
	outputs := make([][2]bool, len(ps1.Outputs))

	// build two wrappers with their own set of outputs
	parts1 := vedic.Parts{ps1}
	for i, o := range ps1.Outputs {
		n := i
		parts1 = append(parts1, vlib.Output(func(b bool) { outputs[n][0] = b })("in="+o))
	}
	parts2 := vedic.Parts{ps2}
	for i, o := range ps2.Outputs {
		n := i
		parts2 = append(parts2, vlib.Output(func(b bool) { outputs[n][1] = b })("in="+o))
	}
	w1, err := vedic.Chip("wrapper1", pinList(ps1.Inputs), "", parts1)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := vedic.Chip("wrapper2", pinList(ps2.Inputs), "", parts2)
	if err != nil {
		t.Fatal(err)
	}

	var parts vedic.Parts
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, vlib.Input(func() bool { return inputs[k] })("out="+n))
	}
	cstr := connString(ps1.Inputs, nil)
	parts = append(parts, w1(cstr), w2(cstr))

	c, err := vedic.NewCircuit(0, parts)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	errString := func(oname string, ex, got bool) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(strconv.FormatBool(inputs[i]))
		}
		return fmt.Sprintf("\nExpected %s => %s=%v\nGot %v", b.String(), oname, ex, got)
	}

	check := func() {
		t.Helper()
		if err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}

	// all zeros
	check()

	// all ones
	for in := range inputs {
		inputs[in] = true
	}
	check()

	iter := len(ps1.Inputs)
	if iter > 12 {
		iter = 12
	}
	for i := 0; i < 1<<uint(iter); i++ {
		for in := range inputs {
			inputs[in] = rng.Int63()&(1<<62) != 0
		}
		check()
	}
}
