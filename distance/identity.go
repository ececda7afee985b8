package distance

import (
	"phylo/align"
	"phylo/seq"
	"phylo/submat"
)

// IdentityPercentage measures distance as one minus the fraction of
// identical positions in a global alignment of the two sequences.
type IdentityPercentage struct {
	Matrix submat.Matrix
	Gap    align.AffineGap
}

// Distance returns 1 - I/L where I counts aligned columns holding the same
// non-gap residue and L is the longer ungapped input length.
func (p IdentityPercentage) Distance(a, b seq.Sequence) float64 {
	la := a.Ungapped().Len()
	lb := b.Ungapped().Len()
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}

	r := align.Global(a, b, p.Matrix, p.Gap)
	identical := 0
	for i := 0; i < len(r.A.Residues); i++ {
		if r.A.Residues[i] == r.B.Residues[i] && r.A.Residues[i] != seq.GapByte {
			identical++
		}
	}
	return 1 - float64(identical)/float64(longest)
}
