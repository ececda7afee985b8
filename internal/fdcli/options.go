// internal/fdcli/options.go
package fdcli

import (
	"flag"

	"phylo/internal/clibase"
)

// Options holds all CLI flags for the fengdoolittle tool.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, "Feng-Doolittle multiple sequence alignment", nil)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if err := clibase.Validate(&opt.Common); err != nil {
		return opt, err
	}
	return opt, nil
}
