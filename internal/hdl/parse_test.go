package hdl

import (
	"testing"
)

func TestParser_pins(t *testing.T) {
	p := &Parser{Input: "a, bus[4], r[0..3]"}

	v, err := p.Next(false)
	if err != nil {
		t.Fatal(err)
	}
	if pin, ok := v.(Pin); !ok || pin.Name != "a" {
		t.Fatalf("expected pin a, got %v", v)
	}

	v, err = p.Next(false)
	if err != nil {
		t.Fatal(err)
	}
	if pin, ok := v.(PinIndex); !ok || pin.Name != "bus" || pin.Index != 4 {
		t.Fatalf("expected bus[4], got %v", v)
	}

	v, err = p.Next(false)
	if err != nil {
		t.Fatal(err)
	}
	if pin, ok := v.(PinRange); !ok || pin.Name != "r" || pin.Start != 0 || pin.End != 3 {
		t.Fatalf("expected r[0..3], got %v", v)
	}

	v, err = p.Next(false)
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Fatalf("expected end of input, got %v", v)
	}
}

func TestParser_assignments(t *testing.T) {
	p := &Parser{Input: "a=x, out[0..1]=w[2..3]"}

	v, err := p.Next(true)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := v.(PinAssignment)
	if !ok {
		t.Fatalf("expected assignment, got %v", v)
	}
	if pin, ok := a.LHS.(Pin); !ok || pin.Name != "a" {
		t.Fatalf("bad LHS %v", a.LHS)
	}
	if pin, ok := a.RHS.(Pin); !ok || pin.Name != "x" {
		t.Fatalf("bad RHS %v", a.RHS)
	}

	v, err = p.Next(true)
	if err != nil {
		t.Fatal(err)
	}
	a, ok = v.(PinAssignment)
	if !ok {
		t.Fatalf("expected assignment, got %v", v)
	}
	if pin, ok := a.LHS.(PinRange); !ok || pin.Name != "out" || pin.Start != 0 || pin.End != 1 {
		t.Fatalf("bad LHS %v", a.LHS)
	}
	if pin, ok := a.RHS.(PinRange); !ok || pin.Name != "w" || pin.Start != 2 || pin.End != 3 {
		t.Fatalf("bad RHS %v", a.RHS)
	}
}

func TestParser_empty(t *testing.T) {
	// the empty string is the common case: it is what Chip gets for a
	// part with no connections and for the circuit wrapper's I/O specs.
	for _, in := range []string{"", "   "} {
		p := &Parser{Input: in}
		v, err := p.Next(true)
		if err != nil {
			t.Fatal(err)
		}
		if v != nil {
			t.Fatalf("input %q: expected nil, got %v", in, v)
		}
	}
}

func TestParser_errors(t *testing.T) {
	td := []struct {
		name  string
		input string
		conns bool
	}{
		{"missing name", "[4]", false},
		{"missing size", "a[]", false},
		{"missing bracket", "a[4", false},
		{"assignment in io spec", "a=b", false},
		{"missing rhs", "a=", true},
		{"missing range end", "a[0..]=b", true},
		{"trailing comma", "a,", false},
		{"illegal rune", "a;b", false},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			p := &Parser{Input: d.input}
			for {
				v, err := p.Next(d.conns)
				if err != nil {
					return
				}
				if v == nil {
					t.Fatalf("no error for input %q", d.input)
				}
			}
		})
	}
}
