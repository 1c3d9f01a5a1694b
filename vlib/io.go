// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vlib

import (
	"strconv"

	"github.com/db47h/vedic"
)

// Int64 returns the pins as an int64. Pin 0 is lsb.
func Int64(c *vedic.Circuit, pins []int) int64 {
	var out int64
	for bit := range pins {
		if c.Get(pins[bit]) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetInt64 sets the pins to the given int64 value.
func SetInt64(c *vedic.Circuit, pins []int, v int64) {
	for bit := range pins {
		c.Set(pins[bit], v&(1<<uint(bit)) != 0)
	}
}

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
func Input(f func() bool) vedic.NewPartFn {
	p := &vedic.PartSpec{
		Name:    "Input",
		Inputs:  nil,
		Outputs: vedic.IO(pOut),
		Mount: func(s *vedic.Socket) []vedic.Component {
			pin := s.Pin(pOut)
			return []vedic.Component{
				func(c *vedic.Circuit) { c.Set(pin, f()) },
			}
		},
	}
	return p.NewPart
}

// Output creates an output or probe. The f function is called with the
// named pin state on every circuit step.
//
//	Inputs: in
//	Function: f(in)
func Output(f func(bool)) vedic.NewPartFn {
	p := &vedic.PartSpec{
		Name:    "Output",
		Inputs:  vedic.IO(pIn),
		Outputs: nil,
		Mount: func(s *vedic.Socket) []vedic.Component {
			in := s.Pin(pIn)
			return []vedic.Component{
				func(c *vedic.Circuit) { f(c.Get(in)) },
			}
		},
	}
	return p.NewPart
}

// InputN creates an input bus of the given bits size.
//
//	Outputs: out[bits]
//	Function: out = f()
func InputN(bits int, f func() int64) vedic.NewPartFn {
	bs := strconv.Itoa(bits)
	return (&vedic.PartSpec{
		Name:    "Input" + bs,
		Inputs:  nil,
		Outputs: vedic.IO(pOut + "[" + bs + "]"),
		Mount: func(s *vedic.Socket) []vedic.Component {
			pins := s.Bus(pOut, bits)
			return []vedic.Component{func(c *vedic.Circuit) {
				SetInt64(c, pins, f())
			}}
		}}).NewPart
}

// OutputN creates an output bus of the given bits size.
//
//	Inputs: in[bits]
//	Function: f(in)
func OutputN(bits int, f func(int64)) vedic.NewPartFn {
	bs := strconv.Itoa(bits)
	return (&vedic.PartSpec{
		Name:    "Output" + bs,
		Inputs:  vedic.IO(pIn + "[" + bs + "]"),
		Outputs: nil,
		Mount: func(s *vedic.Socket) []vedic.Component {
			pins := s.Bus(pIn, bits)
			return []vedic.Component{func(c *vedic.Circuit) {
				f(Int64(c, pins))
			}}
		}}).NewPart
}
