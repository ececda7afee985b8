package writers

import (
	"fmt"
	"io"
	"strings"

	"phylo/msa"
	"phylo/seq"
)

const clustalBlockWidth = 50

// WriteClustal renders a multiple alignment in ClustalW text form:
// identifiers padded to the longest name plus four spaces, rows in blocks
// of fifty residues, each row trailed by its cumulative residue count, and
// a blank line between blocks.
func WriteClustal(w io.Writer, p *msa.Profile) error {
	longest := 0
	for _, r := range p.Rows() {
		if len(r.ID) > longest {
			longest = len(r.ID)
		}
	}

	positions := make([]int, p.Size())
	for start := 0; start < p.Length(); start += clustalBlockWidth {
		end := start + clustalBlockWidth
		if end > p.Length() {
			end = p.Length()
		}
		for i, r := range p.Rows() {
			chunk := r.Residues[start:end]
			residues := len(chunk) - strings.Count(chunk, string(seq.GapByte))
			positions[i] += residues

			line := fmt.Sprintf("%-*s    %s", longest, r.ID, chunk)
			if residues > 0 {
				line += fmt.Sprintf(" %d", positions[i])
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
