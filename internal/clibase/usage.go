// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"phylo/internal/version"
)

// Usage installs a shared Usage() handler on fs.
// extra prints tool-specific sections (enum legends, matrix options, etc.).
func Usage(fs *flag.FlagSet, name, tagline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Input / output:")
		fmt.Fprintln(out, "      --in file           Input FASTA file [*]")
		fmt.Fprintln(out, "      --out file          Output file (default: stdout)")

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nGap penalties:")
		fmt.Fprintf(out, "  -o  float               Open gap penalty [%s]\n", def("o"))
		fmt.Fprintf(out, "  -e  float               Extension gap penalty [%s]\n", def("e"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --seed int          Seed for shuffled-alignment distances [%s]\n", def("seed"))
		fmt.Fprintln(out, "  -v                      Verbose progress on stderr")
		fmt.Fprintln(out, "      --examples          Show quickstart examples and exit")
		fmt.Fprintln(out, "      --version           Print version and exit")
		fmt.Fprintln(out, "  -h                      Show this help and exit")
	}
}
