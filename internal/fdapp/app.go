// internal/fdapp/app.go
package fdapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"phylo/internal/appcore"
	"phylo/internal/clibase"
	"phylo/internal/fdcli"
	"phylo/internal/version"
	"phylo/internal/writers"
	"phylo/msa"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := fdcli.NewFlagSet("fengdoolittle")
	fs.SetOutput(io.Discard)

	opts, err := fdcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "fengdoolittle version %s\n", version.Version)
		return 0
	}
	if opts.Examples {
		clibase.PrintExamples(outw, "fengdoolittle", func(w io.Writer) {
			fmt.Fprintln(w, "  fengdoolittle --in proteins.fasta")
			fmt.Fprintln(w, "  fengdoolittle --in proteins.fasta --out aligned.aln -o 12 -e 0.5")
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

	logf("Configuring Feng-Doolittle algorithm...")
	fd := msa.FengDoolittle{
		GapOpen:   opts.GapOpen,
		GapExtend: opts.GapExtend,
		Seed:      opts.Seed,
	}

	if parent.Err() != nil {
		return 130
	}
	logf("Generating multiple sequence alignment...")
	profile, err := fd.Align(seqs)
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
