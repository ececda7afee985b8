package msa

import (
	"math"
	"strings"

	"phylo/align"
	"phylo/cluster"
	"phylo/distance"
	"phylo/seq"
	"phylo/submat"
)

// FengDoolittle is the classic progressive alignment of Feng and Doolittle:
// pairwise distances from shuffled-normalized alignment scores, a
// Fitch-Margoliash guide tree rooted at its midpoint, and a merge step that
// picks the best-scoring row pair between the two child profiles.
type FengDoolittle struct {
	GapOpen   float64
	GapExtend float64
	Seed      int64
}

// Align builds the multiple alignment of the given sequences.
func (fd FengDoolittle) Align(sequences []seq.Sequence) (*Profile, error) {
	if len(sequences) == 0 {
		return &Profile{}, nil
	}
	if len(sequences) == 1 {
		return FromSequence(sequences[0]), nil
	}

	matrix := submat.ByID(submat.PAM250).Shifted()
	gap := align.AffineGap{Open: fd.GapOpen, Extend: fd.GapExtend}
	metric := distance.FengDoolittle{Matrix: matrix, Gap: gap, Seed: fd.Seed}

	d := distance.Build(sequences, metric)
	guide := cluster.FitchMargoliash{}.Cluster(d).Rooted()

	return foldGuideTree(guide, leafLookup(sequences), func(_ int, a, b *Profile) *Profile {
		return mergeBestPair(a, b, matrix, gap)
	})
}

// mergeBestPair aligns every row of a against every row of b, keeps the
// best-scoring pairwise alignment and broadcasts its gap pattern to all
// rows of the owning profiles. "Once a gap, always a gap": existing gaps
// travel as X through the pairwise scoring and stay in place.
func mergeBestPair(a, b *Profile, matrix submat.Matrix, gap align.AffineGap) *Profile {
	bestScore := math.Inf(-1)
	var bestA, bestB string
	for _, ra := range a.Rows() {
		for _, rb := range b.Rows() {
			r := align.Global(maskGaps(ra), maskGaps(rb), matrix, gap)
			if r.Score > bestScore {
				bestScore = r.Score
				bestA, bestB = r.A.Residues, r.B.Residues
			}
		}
	}

	colsA := gapPattern(bestA)
	colsB := gapPattern(bestB)
	rows := make([]seq.Sequence, 0, a.Size()+b.Size())
	for _, r := range a.Rows() {
		rows = append(rows, spread(r, colsA))
	}
	for _, r := range b.Rows() {
		rows = append(rows, spread(r, colsB))
	}
	return &Profile{rows: rows, length: len(colsA)}
}

// maskGaps rewrites alignment gaps to X so the pairwise aligner treats
// them as ordinary residues.
func maskGaps(s seq.Sequence) seq.Sequence {
	return seq.Sequence{
		ID:       s.ID,
		Residues: strings.ReplaceAll(s.Residues, string(seq.GapByte), "X"),
	}
}

// gapPattern maps the columns of an aligned row back to source columns,
// -1 marking inserted gaps.
func gapPattern(aligned string) []int {
	cols := make([]int, len(aligned))
	next := 0
	for i := 0; i < len(aligned); i++ {
		if aligned[i] == seq.GapByte {
			cols[i] = -1
		} else {
			cols[i] = next
			next++
		}
	}
	return cols
}
