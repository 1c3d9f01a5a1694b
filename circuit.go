// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vedic

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Circuit is a runnable combinational circuit.
//
// The circuit has no clock: all parts are pure functions of their inputs and
// evaluation consists of stepping signal propagation until the wire states
// reach a fixpoint (see Settle). Wire states are kept in two frames:
// components read from frame 0 and write into frame 1, then the frames are
// swapped. Evaluation order within a step is therefore irrelevant and
// components are spread over a pool of worker goroutines.
type Circuit struct {
	s0    []bool // wire states frame #0
	s1    []bool // wire states frame #1
	cs    []Component
	count int // wire count
	steps uint

	wc []chan struct{}
	wg sync.WaitGroup
}

// NewCircuit builds a new circuit based on the given parts.
//
// workers is the number of goroutines used to update the state of the
// Circuit each step of the simulation. If less or equal to 0, the value of
// GOMAXPROCS will be used.
//
// Callers must make sure to call Dispose() once the circuit is no longer
// needed in order to release allocated resources.
func NewCircuit(workers int, parts Parts) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	// new circuit with room for constant value pins.
	cc := &Circuit{count: cstCount}
	wrap, err := Chip("CIRCUIT", "", "", parts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chip wrapper")
	}
	ups := wrap("").Mount(newSocket(cc))
	cc.cs = ups
	cc.s0 = make([]bool, cc.count)
	cc.s1 = make([]bool, cc.count)
	// init constant pins in both frames
	cc.s0[cstTrue] = true
	cc.s1[cstTrue] = true

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers == 0 {
		workers = 1
	}
	for len(ups) > 0 {
		size := len(ups) / workers
		if size*workers < len(ups) {
			size++
		}
		wc := make(chan struct{}, 1)
		cc.wc = append(cc.wc, wc)
		go worker(cc, ups[:size], wc)
		ups = ups[size:]
		workers--
	}

	return cc, nil
}

// Dispose releases all resources allocated for a circuit and stops worker
// goroutines.
func (c *Circuit) Dispose() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		close(wc)
	}
	c.wg.Wait()
}

func worker(c *Circuit, cs []Component, wc <-chan struct{}) {
	for {
		_, ok := <-wc
		if !ok {
			c.wg.Done()
			return
		}
		for _, f := range cs {
			f(c)
		}
		c.wg.Done()
	}
}

// alloc allocates a pin and returns its number.
func (c *Circuit) allocPin() int {
	cnt := c.count
	c.count++
	return cnt
}

// Steps returns the number of propagation steps run so far.
func (c *Circuit) Steps() uint {
	return c.steps
}

// Get returns the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state s of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Step advances the simulation by one propagation step.
func (c *Circuit) Step() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		wc <- struct{}{}
	}
	c.wg.Wait()
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
}

// Settle steps the simulation until the wire states reach a fixpoint, which
// an acyclic combinational circuit does after at most depth-many steps. It
// returns an error if the circuit fails to stabilize within a bound of
// component count + 2 steps; a circuit assembled through Chip cannot trigger
// this, since chip composition rejects combinational loops.
func (c *Circuit) Settle() error {
	limit := len(c.cs) + 2
	for i := 0; i < limit; i++ {
		c.Step()
		if framesEqual(c.s0, c.s1) {
			return nil
		}
	}
	return errors.Errorf("circuit failed to settle after %d steps", limit)
}

func framesEqual(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Size returns the component count in the circuit.
func (c *Circuit) Size() int { return len(c.cs) }
