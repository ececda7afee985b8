package msa

import (
	"math"

	"phylo/cluster"
	"phylo/distance"
	"phylo/seq"
	"phylo/submat"
	"phylo/tree"
)

// Family selects which series of substitution matrices ClustalW draws from
// as profiles diverge.
type Family int

const (
	// PAMFamily switches between PAM20, PAM60, PAM120 and PAM350.
	PAMFamily Family = iota
	// BLOSUMFamily switches between BLOSUM80, BLOSUM62, BLOSUM45 and
	// BLOSUM30.
	BLOSUMFamily
)

// ClustalW is the ClustalW progressive scheduler: a guide tree from any
// metric and clustering algorithm, tree-derived sequence weights, and a
// divergence-dependent substitution matrix at every merge.
type ClustalW struct {
	Metric     distance.Metric
	Clustering cluster.Algorithm
	Family     Family
	GapOpen    float64
	GapExtend  float64
}

// Align builds the multiple alignment of the given sequences.
func (cw ClustalW) Align(sequences []seq.Sequence) (*Profile, error) {
	if len(sequences) == 0 {
		return &Profile{}, nil
	}
	if len(sequences) == 1 {
		return FromSequence(sequences[0]), nil
	}

	d := distance.Build(sequences, cw.Metric)
	guide := cw.Clustering.Cluster(d).Rooted()
	weights := sequenceWeights(guide)
	maxDist := guide.MaxLeafDistance()

	return foldGuideTree(guide, leafLookup(sequences), func(node int, a, b *Profile) *Profile {
		aligner := ProfileAligner{
			Matrix:    cw.selectMatrix(guide, node, maxDist),
			Weights:   weights,
			GapOpen:   cw.GapOpen,
			GapExtend: cw.GapExtend,
		}
		return aligner.Align(a, b)
	})
}

// selectMatrix picks the substitution matrix for the merge at node from
// the divergence of its first two children, normalized by the deepest
// leaf. Degenerate trees (no depth) count as divergence zero.
func (cw ClustalW) selectMatrix(guide *tree.Rooted, node int, maxDist float64) submat.Matrix {
	div := 0.0
	if children := guide.Children(node); len(children) >= 2 && maxDist > 0 {
		div = guide.Distance(children[0], children[1]) / maxDist
	}
	if math.IsNaN(div) || math.IsInf(div, 0) {
		div = 0
	}

	var id submat.ID
	if cw.Family == PAMFamily {
		switch {
		case div >= 0.8:
			id = submat.PAM20
		case div >= 0.6:
			id = submat.PAM60
		case div >= 0.4:
			id = submat.PAM120
		default:
			id = submat.PAM350
		}
	} else {
		switch {
		case div >= 0.8:
			id = submat.BLOSUM80
		case div >= 0.6:
			id = submat.BLOSUM62
		case div >= 0.3:
			id = submat.BLOSUM45
		default:
			id = submat.BLOSUM30
		}
	}
	return submat.ByID(id).Shifted()
}

// sequenceWeights derives a weight per sequence from the guide tree: each
// leaf collects its own branch length plus a share of every branch on its
// path to the root, divided by the number of leaves under that branch. The
// leaf's own branch enters both terms, so its full length counts twice.
// Weights are normalized by the maximum.
func sequenceWeights(guide *tree.Rooted) map[string]float64 {
	weights := map[string]float64{}
	root := guide.Root()
	if root == tree.None {
		return weights
	}

	max := 0.0
	for _, leaf := range guide.Leaves() {
		w := guide.EdgeLength(leaf)
		for n := leaf; n != tree.None && n != root; n = guide.Parent(n) {
			w += guide.EdgeLength(n) / float64(guide.LeafCount(n))
		}
		weights[guide.Label(leaf)] = w
		if w > max {
			max = w
		}
	}
	if max > 0 {
		for k := range weights {
			weights[k] /= max
		}
	}
	return weights
}
