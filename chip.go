// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vedic

import (
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

const (
	drvNone     = -2 // wire has no driver
	drvExternal = -1 // wire driven from outside the chip (input or constant)
)

// wire state tracked while building a chip.
type wire struct {
	driver int // part index, drvExternal or drvNone
	sinks  int
	output bool // chip output pin
}

type chip struct {
	PartSpec             // PartSpec for this chip
	parts    []*PartSpec // sub parts
	// conns maps, for each sub part, the part's public pin names to internal
	// wire names. Wire names share a namespace with the chip's own input and
	// output pin names.
	conns []map[string]string
}

// mount mounts all sub parts into sub-sockets of s. Connected pins resolve
// to the wire's circuit pin, allocating internal wires on first use.
// Unconnected inputs are grounded, which is how zero extension of a partial
// operand is expressed. Unconnected outputs were assigned throwaway wires
// when the chip was built, so a deliberately discarded carry is written to a
// pin nothing reads.
func (c *chip) mount(s *Socket) []Component {
	var updaters []Component
	for i, p := range c.parts {
		sub := newSocket(s.c)
		for k, subK := range p.Pinout {
			if subK == "" {
				continue
			}
			if n := c.conns[i][k]; n != "" {
				sub.m[subK] = s.PinOrNew(n)
			} else {
				sub.m[subK] = cstFalse
			}
		}
		updaters = append(updaters, p.Mount(sub)...)
	}
	return updaters
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs and
// outputs of the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out", Parts{
//		Nand("a=a, b=b, out=nandAB"),
//		Nand("a=a, b=nandAB, out=w0"),
//		Nand("a=b, b=nandAB, out=w1"),
//		Nand("a=w0, b=w1, out=out"),
//	})
//
// The returned value is a NewPartFn that can be used to compose the new part
// with others into larger chips.
//
// Wiring is validated when the chip is built, never during evaluation:
// unknown pin names, multiply driven wires, dangling wires and combinational
// loops are all construction errors.
func Chip(name string, inputs string, outputs string, parts Parts) (NewPartFn, error) {
	ins, err := parseIOSpec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, "invalid input description for chip "+name)
	}
	outs, err := parseIOSpec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, "invalid output description for chip "+name)
	}

	wires := make(map[string]*wire)
	wireFor := func(n string) *wire {
		w := wires[n]
		if w == nil {
			w = &wire{driver: drvNone}
			wires[n] = w
		}
		return w
	}
	wireFor(True).driver = drvExternal
	wireFor(False).driver = drvExternal
	for _, in := range ins {
		w := wireFor(in)
		if w.driver != drvNone {
			return nil, errors.New(name + ": duplicate input pin " + in)
		}
		w.driver = drvExternal
	}
	for _, o := range outs {
		w := wireFor(o)
		if w.driver == drvExternal {
			return nil, errors.New(name + ": pin " + o + " declared as both input and output")
		}
		if w.output {
			return nil, errors.New(name + ": duplicate output pin " + o)
		}
		w.output = true
	}

	specs := make([]*PartSpec, len(parts))
	conns := make([]map[string]string, len(parts))
	consumers := make(map[string][]int)
	autoWire := 0

	for pnum, p := range parts {
		sp := p.PartSpec
		specs[pnum] = sp
		isIn := make(map[string]bool, len(sp.Inputs))
		for _, n := range sp.Inputs {
			isIn[n] = true
		}
		isOut := make(map[string]bool, len(sp.Outputs))
		for _, n := range sp.Outputs {
			isOut[n] = true
		}
		m := make(map[string]string, len(p.Conns))
		for _, cn := range p.Conns {
			if _, ok := m[cn.PP]; ok {
				return nil, errors.New(name + ": pin " + sp.Name + "." + cn.PP + " connected more than once")
			}
			switch {
			case isIn[cn.PP]:
				if len(cn.CP) > 1 {
					return nil, errors.New(name + ": input pin " + sp.Name + "." + cn.PP + " connected to more than one output")
				}
				m[cn.PP] = cn.CP[0]
				wireFor(cn.CP[0]).sinks++
				consumers[cn.CP[0]] = append(consumers[cn.CP[0]], pnum)
			case isOut[cn.PP]:
				if len(cn.CP) > 1 {
					return nil, errors.New(name + ": output pin " + sp.Name + "." + cn.PP + " connected to more than one wire")
				}
				cp := cn.CP[0]
				if cp == True || cp == False {
					return nil, errors.New(name + ": output pin " + sp.Name + "." + cn.PP + " connected to constant " + cp)
				}
				w := wireFor(cp)
				switch w.driver {
				case drvNone:
					w.driver = pnum
				case drvExternal:
					return nil, errors.New(name + ": output pin " + sp.Name + "." + cn.PP + " connected to chip input pin " + cp)
				default:
					return nil, errors.New(name + ": wire " + cp + " driven by more than one output")
				}
				m[cn.PP] = cp
			default:
				return nil, errors.New(name + ": invalid pin name " + cn.PP + " for part " + sp.Name)
			}
		}
		// unconnected outputs get a throwaway wire so that mounting the part
		// never grounds an output to the false constant
		for _, n := range sp.Outputs {
			if _, ok := m[n]; !ok {
				m[n] = "__" + strconv.Itoa(autoWire)
				autoWire++
			}
		}
		conns[pnum] = m
	}

	for n, w := range wires {
		if n == True || n == False {
			continue
		}
		if w.sinks > 0 && w.driver == drvNone {
			return nil, errors.New(name + ": pin " + n + " not connected to any output")
		}
		if w.output && w.driver == drvNone {
			return nil, errors.New(name + ": output pin " + n + " not connected to any output")
		}
		if w.driver >= 0 && w.sinks == 0 && !w.output {
			return nil, errors.New(name + ": pin " + n + " not connected to any input")
		}
	}

	if err := checkAcyclic(name, specs, wires, consumers); err != nil {
		return nil, err
	}

	pinout := make(map[string]string, len(ins)+len(outs))
	for _, i := range ins {
		pinout[i] = i
	}
	for _, o := range outs {
		pinout[o] = o
	}

	c := &chip{
		PartSpec: PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
			Pinout:  pinout,
		},
		parts: specs,
		conns: conns,
	}
	c.PartSpec.Mount = c.mount
	registerChip(&c.PartSpec, c)
	return c.PartSpec.NewPart, nil
}

// checkAcyclic verifies that no part's output feeds back, directly or
// through other parts, into its own input. Every output of a part is assumed
// to depend on all of its inputs, which holds for combinational parts.
func checkAcyclic(name string, specs []*PartSpec, wires map[string]*wire, consumers map[string][]int) error {
	adj := make([][]int, len(specs))
	for n, w := range wires {
		if w.driver < 0 {
			continue
		}
		adj[w.driver] = append(adj[w.driver], consumers[n]...)
	}
	const (
		unseen = iota
		active
		done
	)
	state := make([]int, len(specs))
	var visit func(p int) error
	visit = func(p int) error {
		switch state[p] {
		case active:
			return errors.New(name + ": combinational loop through part " + specs[p].Name)
		case done:
			return nil
		}
		state[p] = active
		for _, q := range adj[p] {
			if err := visit(q); err != nil {
				return err
			}
		}
		state[p] = done
		return nil
	}
	for p := range specs {
		if err := visit(p); err != nil {
			return err
		}
	}
	return nil
}

// chip registry used by Netlist to recover the internal structure of a chip
// from its PartSpec.
var chipRegistry = struct {
	sync.Mutex
	m map[*PartSpec]*chip
}{m: make(map[*PartSpec]*chip)}

func registerChip(sp *PartSpec, c *chip) {
	chipRegistry.Lock()
	chipRegistry.m[sp] = c
	chipRegistry.Unlock()
}

func chipFor(sp *PartSpec) *chip {
	chipRegistry.Lock()
	c := chipRegistry.m[sp]
	chipRegistry.Unlock()
	return c
}
