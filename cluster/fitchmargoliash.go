package cluster

import (
	"phylo/distance"
	"phylo/tree"
)

// FitchMargoliash clusters by the Fitch-Margoliash least-squares criterion:
// each join solves branch lengths from the mean distances between the two
// clusters and everything outside them.
type FitchMargoliash struct{}

// Cluster joins closest pairs down to three clusters, then closes the
// remaining star in closed form. Mean outside distances come from the
// original matrix.
func (FitchMargoliash) Cluster(matrix *distance.Matrix) tree.Tree {
	t := tree.NewUnrooted()
	dm := matrix.Clone()
	all := matrix.OTUs()
	nodes := map[string]int{}
	members := map[string][]string{}

	for _, otu := range all {
		nodes[otu] = t.NewNode(otu)
		members[otu] = []string{otu}
	}

	for dm.Size() > 3 {
		otus := dm.OTUs()
		a, b := dm.MinPair()
		label := mergeLabel(a, b)
		node := t.NewNode("")
		nodes[label] = node
		members[label] = merged(members[a], members[b])
		others := subtract(all, members[label])

		dAB := dm.Distance(a, b)
		dAO := meanBetween(members[a], others, matrix)
		dBO := meanBetween(members[b], others, matrix)
		la := clampNonNegative(0.5 * (dAO + dAB - dBO))
		lb := clampNonNegative(0.5 * (dBO + dAB - dAO))
		t.Connect(node, nodes[a], la)
		t.Connect(node, nodes[b], lb)

		for _, k := range otus {
			if k == a || k == b {
				continue
			}
			dm.SetDistance(label, k, 0.5*(dm.Distance(a, k)+dm.Distance(b, k)))
		}
		dm.RemoveOTU(a)
		dm.RemoveOTU(b)
		dm.AddOTU(label)
	}

	switch otus := dm.OTUs(); len(otus) {
	case 3:
		a, b, c := otus[0], otus[1], otus[2]
		center := t.NewNode("")
		t.Connect(center, nodes[a], clampNonNegative(0.5*(dm.Distance(a, b)+dm.Distance(a, c)-dm.Distance(b, c))))
		t.Connect(center, nodes[b], clampNonNegative(0.5*(dm.Distance(a, b)+dm.Distance(b, c)-dm.Distance(a, c))))
		t.Connect(center, nodes[c], clampNonNegative(0.5*(dm.Distance(a, c)+dm.Distance(b, c)-dm.Distance(a, b))))
	case 2:
		a, b := otus[0], otus[1]
		center := t.NewNode("")
		half := dm.Distance(a, b) / 2
		t.Connect(center, nodes[a], half)
		t.Connect(center, nodes[b], half)
	}
	return t
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// meanBetween averages d(x,o) over the cross product of the two clusters.
func meanBetween(xs, os []string, d *distance.Matrix) float64 {
	sum := 0.0
	for _, x := range xs {
		for _, o := range os {
			sum += d.Distance(x, o)
		}
	}
	return sum / float64(len(xs)*len(os))
}

// subtract returns the elements of all not present in drop.
func subtract(all, drop []string) []string {
	dropped := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		dropped[d] = struct{}{}
	}
	var out []string
	for _, a := range all {
		if _, ok := dropped[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}
