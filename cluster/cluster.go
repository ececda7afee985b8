// Package cluster builds phylogenetic trees from distance matrices. All
// algorithms are agglomerative: they repeatedly join the closest pair of
// OTUs, naming the merged cluster "a+b".
package cluster

import (
	"phylo/distance"
	"phylo/tree"
)

// Algorithm turns a distance matrix into a phylogenetic tree.
type Algorithm interface {
	Cluster(d *distance.Matrix) tree.Tree
}

// mergeLabel names the cluster created by joining a and b.
func mergeLabel(a, b string) string { return a + "+" + b }

func merged(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
