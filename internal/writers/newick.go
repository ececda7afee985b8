package writers

import (
	"fmt"
	"io"

	"phylo/tree"
)

// WriteNewick renders a tree as a semicolon-terminated Newick line. The
// empty tree renders as ";".
func WriteNewick(w io.Writer, t tree.Tree) error {
	_, err := fmt.Fprintf(w, "%s;\n", t.Newick())
	return err
}
