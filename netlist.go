// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vedic

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Netlist writes the flattened structural description of a part to w: one
// line per primitive instance, listing the instance type, its hierarchical
// name and its port to net connections. This is the artifact consumed by the
// synthesis and place-and-route flow.
//
// Net names are the part's own pin names at the top level; internal wires
// are prefixed with the hierarchical path of the chip that owns them.
// Unconnected inputs are reported as tied to the constant "0" net and
// unconnected outputs as "nc".
func Netlist(w io.Writer, sp *PartSpec) error {
	nets := make(map[string]string, len(sp.Inputs)+len(sp.Outputs))
	for _, n := range sp.Inputs {
		nets[n] = n
	}
	for _, n := range sp.Outputs {
		nets[n] = n
	}
	return emit(w, sp.Name, sp, nets)
}

// emit writes the instances of sp, reached as instance inst, with nets
// mapping sp's public pin names to global net names.
func emit(w io.Writer, inst string, sp *PartSpec, nets map[string]string) error {
	c := chipFor(sp)
	if c == nil {
		return emitInstance(w, inst, sp, nets)
	}
	// map the chip's wire namespace to global nets
	wmap := map[string]string{True: "1", False: "0"}
	for pub, wn := range c.Pinout {
		if n := nets[pub]; n != "" {
			wmap[wn] = n
		}
	}
	for i, sub := range c.parts {
		subNets := make(map[string]string, len(c.conns[i]))
		for pub, wn := range c.conns[i] {
			if strings.HasPrefix(wn, "__") {
				// throwaway wire of a discarded output
				subNets[pub] = "nc"
				continue
			}
			n, ok := wmap[wn]
			if !ok {
				n = inst + "/" + wn
				wmap[wn] = n
			}
			subNets[pub] = n
		}
		// inputs absent from the connection map are grounded by mount and
		// must be reported on the constant net, not as fresh wires
		for _, pin := range sub.Inputs {
			if _, ok := subNets[pin]; !ok {
				subNets[pin] = "0"
			}
		}
		subInst := inst + "/" + sub.Name + strconv.Itoa(i)
		if err := emit(w, subInst, sub, subNets); err != nil {
			return err
		}
	}
	return nil
}

func emitInstance(w io.Writer, inst string, sp *PartSpec, nets map[string]string) error {
	var b strings.Builder
	for _, pin := range sp.Inputs {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		n := nets[pin]
		if n == "" {
			n = "0"
		}
		b.WriteString(pin)
		b.WriteByte('=')
		b.WriteString(n)
	}
	for _, pin := range sp.Outputs {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		n := nets[pin]
		if n == "" {
			n = "nc"
		}
		b.WriteString(pin)
		b.WriteByte('=')
		b.WriteString(n)
	}
	_, err := fmt.Fprintf(w, "%s %s (%s)\n", sp.Name, inst, b.String())
	return err
}
