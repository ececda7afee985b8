// internal/clustalwapp/app.go
package clustalwapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"phylo/align"
	"phylo/cluster"
	"phylo/internal/appcore"
	"phylo/internal/clibase"
	"phylo/internal/clustalwcli"
	"phylo/internal/version"
	"phylo/internal/writers"
	"phylo/msa"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := clustalwcli.NewFlagSet("clustalw")
	fs.SetOutput(io.Discard)

	opts, err := clustalwcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		_ = outw.Flush()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "clustalw version %s\n", version.Version)
		return 0
	}
	if opts.Examples {
		clibase.PrintExamples(outw, "clustalw", func(w io.Writer) {
			fmt.Fprintln(w, "  clustalw --in proteins.fasta")
			fmt.Fprintln(w, "  clustalw --in proteins.fasta --out aligned.aln -c 0")
			fmt.Fprintln(w, "  clustalw --in proteins.fasta -d 2 -n 0 -wo 12 -we 0.5")
		})
		return 0
	}

	logf := func(format string, args ...interface{}) {
		if opts.Verbose {
			_, _ = fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	logf("Loading alignment data...")
	seqs, err := appcore.LoadSequences(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	logf("Loading substitution matrix...")
	matrix, err := appcore.LoadMatrix(opts.MatrixFile, opts.MatrixSet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	gap := align.AffineGap{Open: opts.GapOpen, Extend: opts.GapExtend}
	metric, err := appcore.Metric(opts.Distance, matrix, gap, opts.Seed)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	var clustering cluster.Algorithm
	switch opts.Clustering {
	case clustalwcli.ClusterUPGMA:
		clustering = cluster.UPGMA{}
	case clustalwcli.ClusterFitchMargoliash:
		clustering = cluster.FitchMargoliash{}
	default:
		clustering = cluster.NeighborJoining{}
	}

	family := msa.BLOSUMFamily
	if opts.Family == clustalwcli.FamilyPAM {
		family = msa.PAMFamily
	}

	logf("Configuring ClustalW...")
	cw := msa.ClustalW{
		Metric:     metric,
		Clustering: clustering,
		Family:     family,
		GapOpen:    opts.ProfileOpen,
		GapExtend:  opts.ProfileExtend,
	}

	if parent.Err() != nil {
		return 130
	}
	logf("Generating multiple sequence alignment...")
	profile, err := cw.Align(seqs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	logf("Saving multiple sequence alignment...")
	err = appcore.WriteOutput(opts.Output, outw, func(w io.Writer) error {
		return writers.WriteClustal(w, profile)
	})
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	logf("done.")
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
