// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
)

// Distance criteria shared by clustalw and phyltree.
const (
	DistanceIdentity      = 0
	DistanceLevenshtein   = 1
	DistanceFengDoolittle = 2
)

// Common holds CLI fields shared by clustalw, fengdoolittle and phyltree.
type Common struct {
	// Input / output
	Input  string
	Output string

	// Pairwise gap penalties
	GapOpen   float64
	GapExtend float64

	// Misc
	Seed     int64
	Verbose  bool
	Examples bool
	Version  bool
	Help     bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Input, "in", "", "input FASTA file [*]")
	fs.StringVar(&c.Output, "out", "", "output file (default: stdout)")

	fs.Float64Var(&c.GapOpen, "o", 10.0, "open gap penalty [10]")
	fs.Float64Var(&c.GapExtend, "e", 0.1, "extension gap penalty [0.1]")

	fs.Int64Var(&c.Seed, "seed", 0, "seed for shuffled-alignment distances [0]")
	fs.BoolVar(&c.Verbose, "v", false, "verbose progress on stderr [false]")
	fs.BoolVar(&c.Examples, "examples", false, "show quickstart examples and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help message (shorthand) [false]")
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.Examples || c.Version || c.Help {
		return nil
	}
	if c.Input == "" {
		return errors.New("missing input FASTA file (--in)")
	}
	if c.GapOpen < 0 {
		return errors.New("-o must be ≥ 0")
	}
	if c.GapExtend < 0 {
		return errors.New("-e must be ≥ 0")
	}
	return nil
}

// ValidateEnum rejects values outside [0, max].
func ValidateEnum(name string, v, max int) error {
	if v < 0 || v > max {
		return fmt.Errorf("invalid -%s %d (must be 0..%d)", name, v, max)
	}
	return nil
}
