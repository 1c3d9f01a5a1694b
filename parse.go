// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vedic

import (
	"strconv"

	"github.com/db47h/vedic/internal/hdl"
	"github.com/pkg/errors"
)

// busPinName returns the pin name for the n-th bit of the named bus.
func busPinName(name string, n int) string {
	return name + "[" + strconv.Itoa(n) + "]"
}

// parseIOSpec parses a pin specification string and returns individual pin
// names in a slice, expanding bus declarations. For example:
//
//	parseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
func parseIOSpec(names string) ([]string, error) {
	var out []string
	p := &hdl.Parser{Input: names}
	for {
		v, err := p.Next(false)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return out, nil
		}
		switch pin := v.(type) {
		case hdl.Pin:
			out = append(out, pin.Name)
		case hdl.PinIndex:
			for i := 0; i < pin.Index; i++ {
				out = append(out, busPinName(pin.Name, i))
			}
		default:
			return nil, errors.Errorf("in %q: unexpected pin range in pin declaration", names)
		}
	}
}

// IO expands a pin specification string and returns the resulting pin names.
// It is meant for static PartSpec declarations and panics if the spec is
// malformed.
func IO(spec string) []string {
	pins, err := parseIOSpec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

// expandPins expands a parsed pin, pin index or pin range to a list of pin
// names.
func expandPins(in string, v interface{}) ([]string, error) {
	switch pin := v.(type) {
	case hdl.Pin:
		return []string{pin.Name}, nil
	case hdl.PinIndex:
		return []string{busPinName(pin.Name, pin.Index)}, nil
	case hdl.PinRange:
		if pin.End < pin.Start {
			return nil, errors.Errorf("in %q: invalid bus range %d..%d", in, pin.Start, pin.End)
		}
		r := make([]string, 0, pin.End-pin.Start+1)
		for i := pin.Start; i <= pin.End; i++ {
			r = append(r, busPinName(pin.Name, i))
		}
		return r, nil
	}
	return nil, errors.Errorf("in %q: expected pin assignment", in)
}

// ParseConnections parses a connection description string and returns the
// connection list. The description is a comma separated list of assignments
// of the form
//
//	pp = cp
//
// where pp is a pin name of the part being connected and cp a pin name in
// the host chip. Both sides support single pins (a), indexed bus pins (a[2])
// and bus ranges (a[0..3]). A range on both sides connects pins pairwise; a
// range on the left with a single pin on the right connects every left hand
// pin to the same chip pin.
func ParseConnections(connections string) ([]Connection, error) {
	var conns []Connection
	p := &hdl.Parser{Input: connections}
	for {
		v, err := p.Next(true)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return conns, nil
		}
		a, ok := v.(hdl.PinAssignment)
		if !ok {
			return nil, errors.Errorf("in %q: expected pin assignment", connections)
		}
		l, err := expandPins(connections, a.LHS)
		if err != nil {
			return nil, err
		}
		r, err := expandPins(connections, a.RHS)
		if err != nil {
			return nil, err
		}
		switch {
		case len(l) == len(r):
			for i := range l {
				conns = append(conns, Connection{PP: l[i], CP: r[i : i+1]})
			}
		case len(r) == 1:
			for i := range l {
				conns = append(conns, Connection{PP: l[i], CP: r})
			}
		case len(l) == 1:
			conns = append(conns, Connection{PP: l[0], CP: r})
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in assignment", connections)
		}
	}
}
