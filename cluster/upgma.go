package cluster

import (
	"phylo/distance"
	"phylo/tree"
)

// UPGMA is unweighted pair group clustering with arithmetic mean. It
// assumes a constant evolutionary rate and produces an ultrametric rooted
// tree: every leaf sits at the same distance from the root.
type UPGMA struct{}

// Cluster joins the closest pair until a single cluster remains. Distances
// between merged clusters are averaged over the original matrix, not the
// working copy.
func (UPGMA) Cluster(matrix *distance.Matrix) tree.Tree {
	t := tree.NewRooted()
	dm := matrix.Clone()
	nodes := map[string]int{}
	height := map[string]float64{}
	members := map[string][]string{}

	for _, label := range matrix.OTUs() {
		nodes[label] = t.NewNode(label)
		height[label] = 0
		members[label] = []string{label}
	}

	for !dm.IsEmpty() {
		i, j := dm.MinPair()
		label := mergeLabel(i, j)
		h := dm.Distance(i, j) / 2

		parent := t.NewNode("")
		t.AddChild(parent, nodes[i])
		t.AddChild(parent, nodes[j])
		t.SetLength(nodes[i], h-height[i])
		t.SetLength(nodes[j], h-height[j])

		nodes[label] = parent
		height[label] = h
		members[label] = merged(members[i], members[j])

		for _, l := range dm.OTUs() {
			if l == i || l == j {
				continue
			}
			sum := 0.0
			for _, a := range members[label] {
				for _, b := range members[l] {
					sum += matrix.Distance(a, b)
				}
			}
			dm.SetDistance(l, label, sum/float64(len(members[label])*len(members[l])))
		}
		dm.AddOTU(label)
		dm.RemoveOTU(i)
		dm.RemoveOTU(j)
	}
	return t
}
