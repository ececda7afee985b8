// internal/treecli/options.go
package treecli

import (
	"flag"
	"fmt"
	"io"

	"phylo/internal/clibase"
)

// Clustering algorithms accepted by -c.
const (
	ClusterUPGMA           = 0
	ClusterNeighborJoining = 1
)

// Options holds all CLI flags for the phyltree tool.
type Options struct {
	clibase.Common

	MatrixFile string
	MatrixSet  bool

	Distance   int
	Clustering int
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, "phylogenetic tree generator", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "  -m  file                Substitution matrix file [%s]\n", def("m"))
		fmt.Fprintln(out, "\nTree:")
		fmt.Fprintf(out, "  -d  0|1|2               Distance: 0=identity, 1=Levenshtein, 2=Feng-Doolittle [%s]\n", def("d"))
		fmt.Fprintf(out, "  -c  0|1                 Clustering: 0=UPGMA, 1=neighbor joining [%s]\n", def("c"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.MatrixFile, "m", "blosum62.dat", "substitution matrix file [blosum62.dat]")
	fs.IntVar(&opt.Distance, "d", 0, "distance criterion: 0=identity, 1=Levenshtein, 2=Feng-Doolittle [0]")
	fs.IntVar(&opt.Clustering, "c", ClusterNeighborJoining, "clustering: 0=UPGMA, 1=neighbor joining [1]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "m" {
			opt.MatrixSet = true
		}
	})

	if err := clibase.Validate(&opt.Common); err != nil {
		return opt, err
	}
	if opt.Examples || opt.Version {
		return opt, nil
	}
	if err := clibase.ValidateEnum("d", opt.Distance, 2); err != nil {
		return opt, err
	}
	if err := clibase.ValidateEnum("c", opt.Clustering, 1); err != nil {
		return opt, err
	}
	return opt, nil
}
