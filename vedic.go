// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vedic

// A Component is an updatable element in a circuit. It reads pin states from
// the current frame and writes its outputs into the next frame.
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFn's should query the socket
// for assigned pin numbers and return closures around these pin numbers.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name: "Not",
//		Inputs: IO("in"),
//		Outputs: IO("out"),
//		Mount: func (s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func (c *Circuit) { c.Set(out, !c.Get(in)) }
//			}
//		}}
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
// Custom parts are implemented by creating a PartSpec and using its NewPart
// method as a NewPartFn when building chips:
//
//	var notGate = notSpec.NewPart
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use the IO() function to expand an input description like
	// "a, b, bus[2]" to []string{"a", "b", "bus[0]", "bus[1]"}.
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string
	// Pinout maps the input and output pin names (public interface) of a part
	// to internal (private) names. If nil, the Inputs and Outputs values will
	// be used and mapped one to one.
	// In a MountFn, only private pin names must be used when calling the
	// Socket methods.
	// Most custom part implementations should ignore this field and leave it
	// nil.
	Pinout map[string]string

	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
// It panics if the connection description is malformed: connection strings
// are built at circuit construction time, so a bad one is a programming
// error, not input data.
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	if p.Pinout == nil {
		p.Pinout = make(map[string]string, len(p.Inputs)+len(p.Outputs))
		for _, i := range p.Inputs {
			p.Pinout[i] = i
		}
		for _, o := range p.Outputs {
			p.Pinout[o] = o
		}
	}
	return Part{PartSpec: p, Conns: conns}
}

// A NewPartFn is a function that takes a connection description and returns
// a new Part. See ParseConnections for the description syntax.
type NewPartFn func(connections string) Part

// A Part wraps a part specification together with its connections within a
// host chip.
type Part struct {
	*PartSpec
	Conns []Connection
}

// Parts is a convenience wrapper for a list of parts.
type Parts []Part

// A Connection links a part's pin PP to the chip pin(s) CP in the part's
// host chip. For input pins, CP always holds a single chip pin.
type Connection struct {
	PP string
	CP []string
}
