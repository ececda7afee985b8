package cluster

import (
	"phylo/distance"
	"phylo/tree"
)

// NeighborJoining is the Saitou-Nei neighbor-joining method. It does not
// assume a molecular clock and produces an unrooted tree with additive
// branch lengths.
type NeighborJoining struct{}

// Cluster repeatedly joins the pair minimizing the Q criterion. Negative
// branch lengths are clamped to zero; the final pair is split evenly.
func (NeighborJoining) Cluster(matrix *distance.Matrix) tree.Tree {
	t := tree.NewUnrooted()
	dm := matrix.Clone()
	nodes := map[string]int{}

	for _, otu := range matrix.OTUs() {
		nodes[otu] = t.NewNode(otu)
	}

	for !dm.IsEmpty() {
		otus := dm.OTUs()
		n := len(otus)

		q := distance.NewMatrix()
		for _, i := range otus {
			q.AddOTU(i)
			for _, j := range otus {
				if i == j {
					continue
				}
				dik, djk := 0.0, 0.0
				for _, k := range otus {
					dik += dm.Distance(i, k)
					djk += dm.Distance(j, k)
				}
				q.SetDistance(i, j, float64(n-2)*dm.Distance(i, j)-dik-djk)
			}
		}

		f, g := q.MinPair()
		u := mergeLabel(f, g)
		node := t.NewNode("")
		nodes[u] = node

		if n == 2 {
			half := dm.Distance(f, g) / 2
			t.Connect(node, nodes[f], half)
			t.Connect(node, nodes[g], half)
		} else {
			dfk, dgk := 0.0, 0.0
			for _, k := range otus {
				dfk += dm.Distance(f, k)
				dgk += dm.Distance(g, k)
			}
			deltaF := 0.5*dm.Distance(f, g) + (dfk-dgk)/(2*float64(n-2))
			if deltaF < 0 {
				deltaF = 0
			}
			deltaG := dm.Distance(f, g) - deltaF
			if deltaG < 0 {
				deltaG = 0
			}
			t.Connect(node, nodes[f], deltaF)
			t.Connect(node, nodes[g], deltaG)
		}

		for _, k := range otus {
			dm.SetDistance(u, k, 0.5*(dm.Distance(f, k)+dm.Distance(g, k)-dm.Distance(f, g)))
		}
		dm.RemoveOTU(f)
		dm.RemoveOTU(g)
		dm.AddOTU(u)
	}
	return t
}
