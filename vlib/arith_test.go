package vlib_test

import (
	"strconv"
	"testing"

	"github.com/db47h/vedic"
	"github.com/db47h/vedic/vlib"
	"github.com/db47h/vedic/vtest"
)

var halfAdderModel = &vedic.PartSpec{
	Name:    "HalfAdderModel",
	Inputs:  vedic.IO("a, b"),
	Outputs: vedic.IO("s, c"),
	Mount: func(s *vedic.Socket) []vedic.Component {
		a, b := s.Pin("a"), s.Pin("b")
		sum, carry := s.Pin("s"), s.Pin("c")
		return []vedic.Component{func(c *vedic.Circuit) {
			va, vb := c.Get(a), c.Get(b)
			c.Set(sum, va != vb)
			c.Set(carry, va && vb)
		}}
	},
}

func TestHalfAdder(t *testing.T) {
	vtest.ComparePart(t, vlib.HalfAdder, halfAdderModel.NewPart)
}

var fullAdderModel = &vedic.PartSpec{
	Name:    "FullAdderModel",
	Inputs:  vedic.IO("a, b, cin"),
	Outputs: vedic.IO("s, cout"),
	Mount: func(s *vedic.Socket) []vedic.Component {
		a, b, cin := s.Pin("a"), s.Pin("b"), s.Pin("cin")
		sum, cout := s.Pin("s"), s.Pin("cout")
		return []vedic.Component{func(c *vedic.Circuit) {
			n := 0
			if c.Get(a) {
				n++
			}
			if c.Get(b) {
				n++
			}
			if c.Get(cin) {
				n++
			}
			c.Set(sum, n&1 != 0)
			c.Set(cout, n > 1)
		}}
	},
}

func TestFullAdder(t *testing.T) {
	vtest.ComparePart(t, vlib.FullAdder, fullAdderModel.NewPart)
}

func TestAdderN(t *testing.T) {
	for _, bits := range []int{1, 4, 6, 8, 12} {
		t.Run(strconv.Itoa(bits), func(t *testing.T) {
			vtest.VerifyAdder(t, bits, vlib.AdderN(bits))
		})
	}
}

func TestAdderN_memoized(t *testing.T) {
	a0 := vlib.AdderN(8)
	a1 := vlib.AdderN(8)
	p0, p1 := a0(""), a1("")
	if p0.PartSpec != p1.PartSpec {
		t.Error("AdderN(8) returned two distinct chips")
	}
}
