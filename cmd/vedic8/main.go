// Command vedic8 drives the structural 8x8 vedic multiplier from the
// command line: it computes products through the gate-level circuit, dumps
// the flattened netlist for the synthesis flow and runs the exhaustive
// self-verification.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/db47h/vedic"
	"github.com/db47h/vedic/vlib"
	"github.com/db47h/vedic/vmul"
)

var log = slog.Disabled

type config struct {
	Netlist bool `short:"n" long:"netlist" description:"write the flattened Mul8 netlist to stdout"`
	Check   bool `short:"c" long:"check" description:"verify all 65536 operand pairs against native multiplication"`
	Workers int  `short:"w" long:"workers" description:"evaluator worker count (0 = GOMAXPROCS)"`
	Debug   bool `short:"d" long:"debug" description:"enable debug logging"`
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [A B]"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log = slog.NewBackend(os.Stderr).Logger("VMUL")
	if cfg.Debug {
		log.SetLevel(slog.LevelDebug)
	} else {
		log.SetLevel(slog.LevelInfo)
	}

	switch {
	case cfg.Netlist:
		spec := vmul.Mul8("").PartSpec
		if err := vedic.Netlist(os.Stdout, spec); err != nil {
			log.Errorf("netlist: %v", err)
			os.Exit(1)
		}
	case cfg.Check:
		if err := selfCheck(cfg.Workers); err != nil {
			log.Errorf("self check failed: %v", err)
			os.Exit(1)
		}
		log.Infof("all 65536 products verified")
	case len(args) == 2:
		a, b, err := operands(args)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		p := vmul.Multiply8x8(a, b)
		log.Debugf("computed %d x %d through the Mul8 circuit", a, b)
		fmt.Printf("%d x %d = %d\n", a, b, p)
	default:
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}
}

func operands(args []string) (a, b uint8, err error) {
	va, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %v", args[0], err)
	}
	vb, err := strconv.ParseUint(args[1], 0, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %v", args[1], err)
	}
	return uint8(va), uint8(vb), nil
}

// selfCheck sweeps all operand pairs through a single circuit.
func selfCheck(workers int) error {
	var a, b, out int64
	c, err := vedic.NewCircuit(workers, vedic.Parts{
		vlib.InputN(8, func() int64 { return a })("out[0..7]=a[0..7]"),
		vlib.InputN(8, func() int64 { return b })("out[0..7]=b[0..7]"),
		vmul.Mul8("a[0..7]=a[0..7], b[0..7]=b[0..7], out[0..15]=p[0..15]"),
		vlib.OutputN(16, func(v int64) { out = v })("in[0..15]=p[0..15]"),
	})
	if err != nil {
		return err
	}
	defer c.Dispose()
	log.Debugf("circuit built: %d components", c.Size())

	for a = 0; a < 256; a++ {
		for b = 0; b < 256; b++ {
			if err := c.Settle(); err != nil {
				return err
			}
			if out != a*b {
				return fmt.Errorf("%d x %d: circuit computed %d, expected %d", a, b, out, a*b)
			}
		}
	}
	return nil
}
