// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vlib provides the library of reusable parts that the vedic
// multiplier is built from: elementary logic gates, the half and full adder
// chips, a ripple-carry adder generator and input/output probe parts.
package vlib

import (
	"github.com/db47h/vedic"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
)

var notGate = vedic.PartSpec{
	Name:    "NOT",
	Inputs:  vedic.IO(pIn),
	Outputs: vedic.IO(pOut),
	Mount: func(s *vedic.Socket) []vedic.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []vedic.Component{
			func(c *vedic.Circuit) { c.Set(out, !c.Get(in)) },
		}
	},
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
func Not(w string) vedic.Part {
	return notGate.NewPart(w)
}

// two-input gates
type gate func(a, b bool) bool

func (g gate) mount(s *vedic.Socket) []vedic.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []vedic.Component{
		func(c *vedic.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) },
	}
}

func newGate(name string, fn func(a, b bool) bool) *vedic.PartSpec {
	return &vedic.PartSpec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Mount:   gate(fn).mount,
	}
}

var (
	gateIn  = vedic.IO("a, b")
	gateOut = vedic.IO("out")

	and  = newGate("AND", func(a, b bool) bool { return a && b })
	nand = newGate("NAND", func(a, b bool) bool { return !(a && b) })
	or   = newGate("OR", func(a, b bool) bool { return a || b })
	nor  = newGate("NOR", func(a, b bool) bool { return !(a || b) })
	xor  = newGate("XOR", func(a, b bool) bool { return a && !b || !a && b })
	xnor = newGate("XNOR", func(a, b bool) bool { return a && b || !a && !b })
)

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
func And(w string) vedic.Part { return and.NewPart(w) }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func Nand(w string) vedic.Part { return nand.NewPart(w) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
func Or(w string) vedic.Part { return or.NewPart(w) }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
func Nor(w string) vedic.Part { return nor.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
func Xor(w string) vedic.Part { return xor.NewPart(w) }

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
func Xnor(w string) vedic.Part { return xnor.NewPart(w) }
