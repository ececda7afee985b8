// Package tree implements rooted and unrooted phylogenetic trees, Newick
// serialization and midpoint rerooting. Nodes live in per-tree slabs and are
// addressed by small integer ids.
package tree

import "strconv"

// None marks a missing node id (no parent, empty tree).
const None = -1

// Tree is a phylogenetic tree in either rooted or unrooted form.
type Tree interface {
	// Rooted returns a rooted view of the tree. Unrooted trees are
	// midpoint-rooted.
	Rooted() *Rooted
	// Unrooted returns an unrooted view of the tree.
	Unrooted() *Unrooted
	// Newick renders the tree in Newick notation without the closing
	// semicolon. The empty tree renders as the empty string.
	Newick() string
}

// formatLength renders branch lengths with six significant digits, enough
// to round-trip the precision distance computations carry.
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
