// internal/treeapp/app.go
package treeapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"phylo/align"
	"phylo/cluster"
	"phylo/distance"
	"phylo/internal/appcore"
	"phylo/internal/clibase"
	"phylo/internal/treecli"
	"phylo/internal/version"
	"phylo/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := treecli.NewFlagSet("phyltree")
	fs.SetOutput(io.Discard)

	opts, err := treecli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "phyltree version %s\n", version.Version)
		return 0
	}
	if opts.Examples {
		clibase.PrintExamples(outw, "phyltree", func(w io.Writer) {
			fmt.Fprintln(w, "  phyltree --in proteins.fasta")
			fmt.Fprintln(w, "  phyltree --in proteins.fasta --out tree.nwk -c 0")
			fmt.Fprintln(w, "  phyltree --in proteins.fasta -d 2 --seed 42")
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
	if opts.Clustering == treecli.ClusterUPGMA {
		clustering = cluster.UPGMA{}
	} else {
		clustering = cluster.NeighborJoining{}
	}

	if parent.Err() != nil {
		return 130
	}
	logf("Computing distance matrix...")
	d := distance.Build(seqs, metric)

	logf("Building phylogenetic tree...")
	t := clustering.Cluster(d)

	logf("Saving phylogenetic tree...")
	err = appcore.WriteOutput(opts.Output, outw, func(w io.Writer) error {
		return writers.WriteNewick(w, t)
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
