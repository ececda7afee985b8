// internal/clustalwcli/options.go
package clustalwcli

import (
	"flag"
	"fmt"
	"io"

	"phylo/internal/clibase"
)

// Clustering algorithms accepted by -c.
const (
	ClusterUPGMA           = 0
	ClusterFitchMargoliash = 1
	ClusterNeighborJoining = 2
)

// Matrix families accepted by -n.
const (
	FamilyPAM    = 0
	FamilyBLOSUM = 1
)

// Options holds all CLI flags for the clustalw tool.
type Options struct {
	clibase.Common

	MatrixFile string
	MatrixSet  bool // -m given explicitly

	Distance   int
	Clustering int
	Family     int

	ProfileOpen   float64
	ProfileExtend float64
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, "multiple sequence alignment", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "  -m  file                Substitution matrix file [%s]\n", def("m"))
		fmt.Fprintf(out, "  -n  0|1                 Matrix family: 0=PAM, 1=BLOSUM [%s]\n", def("n"))
		fmt.Fprintf(out, "  -wo float               Initial profile open gap penalty [%s]\n", def("wo"))
		fmt.Fprintf(out, "  -we float               Initial profile extension gap penalty [%s]\n", def("we"))
		fmt.Fprintln(out, "\nGuide tree:")
		fmt.Fprintf(out, "  -d  0|1|2               Distance: 0=identity, 1=Levenshtein, 2=Feng-Doolittle [%s]\n", def("d"))
		fmt.Fprintf(out, "  -c  0|1|2               Clustering: 0=UPGMA, 1=Fitch-Margoliash, 2=neighbor joining [%s]\n", def("c"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.MatrixFile, "m", "blosum62.dat", "substitution matrix file [blosum62.dat]")
	fs.IntVar(&opt.Distance, "d", 0, "distance criterion: 0=identity, 1=Levenshtein, 2=Feng-Doolittle [0]")
	fs.IntVar(&opt.Clustering, "c", ClusterNeighborJoining, "clustering: 0=UPGMA, 1=Fitch-Margoliash, 2=neighbor joining [2]")
	fs.IntVar(&opt.Family, "n", FamilyBLOSUM, "matrix family for profile merges: 0=PAM, 1=BLOSUM [1]")
	fs.Float64Var(&opt.ProfileOpen, "wo", 10.0, "initial profile open gap penalty [10]")
	fs.Float64Var(&opt.ProfileExtend, "we", 0.2, "initial profile extension gap penalty [0.2]")

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
	if err := clibase.ValidateEnum("c", opt.Clustering, 2); err != nil {
		return opt, err
	}
	if err := clibase.ValidateEnum("n", opt.Family, 1); err != nil {
		return opt, err
	}
	if opt.ProfileOpen < 0 {
		return opt, fmt.Errorf("-wo must be ≥ 0")
	}
	if opt.ProfileExtend < 0 {
		return opt, fmt.Errorf("-we must be ≥ 0")
	}
	return opt, nil
}
