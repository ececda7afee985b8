// Package align implements global pairwise alignment with affine gap
// penalties (Needleman and Wunsch).
package align

import (
	"strings"

	"phylo/seq"
	"phylo/submat"
)

// AffineGap is an affine gap penalty: Open for the first gap position of a
// run, Extend for each following one.
type AffineGap struct {
	Open   float64
	Extend float64
}

// Cost returns the penalty of a gap run of length k.
func (g AffineGap) Cost(k int) float64 {
	if k <= 0 {
		return 0
	}
	return g.Open + g.Extend*float64(k-1)
}

type direction byte

const (
	dirNone direction = iota
	dirDiag
	dirUp
	dirLeft
)

// Result is a global alignment of two sequences. A and B have equal length
// and carry the input identifiers.
type Result struct {
	Score float64
	A, B  seq.Sequence
}

// Global aligns a against b end to end and returns the optimal alignment.
// On score ties the diagonal move wins over the vertical, the vertical over
// the horizontal. Empty inputs are padded with gaps.
func Global(a, b seq.Sequence, m submat.Matrix, gap AffineGap) Result {
	ra, rb := a.Residues, b.Residues
	la, lb := len(ra), len(rb)

	if la == 0 || lb == 0 {
		score := 0.0
		if la > 0 || lb > 0 {
			score = -gap.Cost(la + lb)
		}
		return Result{
			Score: score,
			A:     seq.Sequence{ID: a.ID, Residues: ra + strings.Repeat(string(seq.GapByte), lb)},
			B:     seq.Sequence{ID: b.ID, Residues: strings.Repeat(string(seq.GapByte), la) + rb},
		}
	}

	score := make([][]float64, la+1)
	dir := make([][]direction, la+1)
	for i := range score {
		score[i] = make([]float64, lb+1)
		dir[i] = make([]direction, lb+1)
	}
	for i := 1; i <= la; i++ {
		score[i][0] = -gap.Cost(i)
		dir[i][0] = dirUp
	}
	for j := 1; j <= lb; j++ {
		score[0][j] = -gap.Cost(j)
		dir[0][j] = dirLeft
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			vgap := gap.Open
			if dir[i-1][j] == dirUp {
				vgap = gap.Extend
			}
			hgap := gap.Open
			if dir[i][j-1] == dirLeft {
				hgap = gap.Extend
			}
			d := score[i-1][j-1] + float64(m.Score(ra[i-1], rb[j-1]))
			u := score[i-1][j] - vgap
			l := score[i][j-1] - hgap
			switch {
			case d >= u && d >= l:
				score[i][j], dir[i][j] = d, dirDiag
			case u >= l:
				score[i][j], dir[i][j] = u, dirUp
			default:
				score[i][j], dir[i][j] = l, dirLeft
			}
		}
	}

	var outA, outB []byte
	for i, j := la, lb; dir[i][j] != dirNone; {
		switch dir[i][j] {
		case dirDiag:
			outA = append(outA, ra[i-1])
			outB = append(outB, rb[j-1])
			i--
			j--
		case dirUp:
			outA = append(outA, ra[i-1])
			outB = append(outB, seq.GapByte)
			i--
		case dirLeft:
			outA = append(outA, seq.GapByte)
			outB = append(outB, rb[j-1])
			j--
		}
	}
	reverse(outA)
	reverse(outB)

	return Result{
		Score: score[la][lb],
		A:     seq.Sequence{ID: a.ID, Residues: string(outA)},
		B:     seq.Sequence{ID: b.ID, Residues: string(outB)},
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
