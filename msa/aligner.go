package msa

import (
	"math"
	"strings"

	"phylo/seq"
	"phylo/submat"
)

// pascarellaArgos maps residues to observed gap propensity factors
// (Pascarella and Argos, 1994). Residues outside the table contribute
// nothing to the column average.
var pascarellaArgos = map[byte]float64{
	'A': 1.13, 'C': 1.13, 'D': 0.96, 'E': 1.31, 'F': 1.20,
	'G': 0.61, 'H': 1.00, 'I': 1.32, 'K': 0.96, 'L': 1.21,
	'M': 1.29, 'N': 0.63, 'P': 0.74, 'Q': 1.07, 'R': 0.72,
	'S': 0.76, 'T': 0.89, 'V': 1.25, 'W': 1.23, 'Y': 1.00,
}

// ProfileAligner aligns two profiles with position-specific affine gap
// penalties in the ClustalW style. Matrix is expected to be shifted so its
// minimum score is zero. Weights maps row identifiers to sequence weights;
// rows without an entry weigh 1.
type ProfileAligner struct {
	Matrix    submat.Matrix
	Weights   map[string]float64
	GapOpen   float64
	GapExtend float64
}

// Align merges the two profiles into one carrying every row of a followed
// by every row of b, with gap columns inserted where the dynamic program
// put them.
func (pa ProfileAligner) Align(a, b *Profile) *Profile {
	if a.Length() == 0 || b.Length() == 0 {
		return joinPadded(a, b)
	}

	m, n := a.Length(), b.Length()
	score := make([][]float64, n+1)
	dir := make([][]direction, n+1)
	for i := range score {
		score[i] = make([]float64, m+1)
		dir[i] = make([]direction, m+1)
	}

	for j := 1; j <= m; j++ {
		gop := pa.positionGOP(a, b, 0)
		gep := pa.positionGEP(a, b, j-1)
		score[0][j] = -(gop + gep*float64(j-1))
		dir[0][j] = dirLeft
	}
	for i := 1; i <= n; i++ {
		gop := pa.positionGOP(b, a, 0)
		gep := pa.positionGEP(b, a, i-1)
		score[i][0] = -(gop + gep*float64(i-1))
		dir[i][0] = dirUp
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			hgap := pa.positionGOP(a, b, j-1)
			if dir[i][j-1] == dirLeft {
				hgap = pa.positionGEP(a, b, j-1)
			}
			vgap := pa.positionGOP(b, a, i-1)
			if dir[i-1][j] == dirUp {
				vgap = pa.positionGEP(b, a, i-1)
			}

			d := score[i-1][j-1] + pa.similarity(a, b, i, j)
			u := score[i-1][j] - vgap
			l := score[i][j-1] - hgap
			score[i][j] = math.Max(d, math.Max(u, l))
			// Ties prefer LEFT over UP over DIAG.
			switch {
			case d > u && d > l:
				dir[i][j] = dirDiag
			case u > l:
				dir[i][j] = dirUp
			default:
				dir[i][j] = dirLeft
			}
		}
	}

	// Traceback: one output column per step, gap columns broadcast to
	// every row of the skipped profile.
	var colsA, colsB []int // source column per output column, -1 for gap
	for i, j := n, m; dir[i][j] != dirNone; {
		switch dir[i][j] {
		case dirDiag:
			colsA = append(colsA, j-1)
			colsB = append(colsB, i-1)
			i--
			j--
		case dirUp:
			colsA = append(colsA, -1)
			colsB = append(colsB, i-1)
			i--
		case dirLeft:
			colsA = append(colsA, j-1)
			colsB = append(colsB, -1)
			j--
		}
	}
	reverseInts(colsA)
	reverseInts(colsB)

	rows := make([]seq.Sequence, 0, a.Size()+b.Size())
	for _, r := range a.Rows() {
		rows = append(rows, spread(r, colsA))
	}
	for _, r := range b.Rows() {
		rows = append(rows, spread(r, colsB))
	}
	return &Profile{rows: rows, length: len(colsA)}
}

// initialGOP opens gaps in a more readily when the profiles are short or
// poorly conserved.
func (pa ProfileAligner) initialGOP(a, b *Profile) float64 {
	shorter := a.Length()
	if b.Length() < shorter {
		shorter = b.Length()
	}
	return pa.GapOpen + math.Log(float64(shorter))*pa.Matrix.Avg()*a.PercentIdentity()
}

// initialGEP grows with the length ratio of the two profiles.
func (pa ProfileAligner) initialGEP(a, b *Profile) float64 {
	ratio := float64(a.Length()) / float64(b.Length())
	return pa.GapExtend * (1 + math.Abs(math.Log(ratio)))
}

// positionGOP modulates the opening penalty at a column of a: cheaper at
// existing gaps, then a near-gap multiplier followed by the hydrophilic
// discount or the residues' gap propensity.
func (pa ProfileAligner) positionGOP(a, b *Profile, pos int) float64 {
	gop := pa.initialGOP(a, b)

	if gaps := a.GapCount(pos); gaps > 0 {
		return gop * 0.3 * (1 - float64(gaps)/float64(a.Size()))
	}
	for dist := 1; dist <= 9; dist++ {
		if a.GapCount(pos-dist) > 0 || a.GapCount(pos+dist) > 0 {
			gop *= 4 - float64(dist)/4
			break
		}
	}
	if a.HasHydrophilicStretch(pos) {
		return gop * 2 / 3
	}

	column := a.Column(pos)
	total := 0.0
	for i := 0; i < len(column); i++ {
		total += pascarellaArgos[column[i]]
	}
	return gop * total / float64(a.Size())
}

// positionGEP halves the extension penalty at columns that already hold
// gaps.
func (pa ProfileAligner) positionGEP(a, b *Profile, pos int) float64 {
	gep := pa.initialGEP(a, b)
	if a.GapCount(pos) > 0 {
		return gep / 2
	}
	return gep
}

// similarity is the weighted average substitution score between column j of
// a and column i of b (both one-based).
func (pa ProfileAligner) similarity(a, b *Profile, i, j int) float64 {
	total := 0.0
	for _, rb := range b.Rows() {
		cb := rb.Residues[i-1]
		if cb == seq.GapByte {
			continue
		}
		wb := pa.weight(rb.ID)
		for _, ra := range a.Rows() {
			ca := ra.Residues[j-1]
			if ca == seq.GapByte {
				continue
			}
			total += pa.weight(ra.ID) * wb * float64(pa.Matrix.Score(ca, cb))
		}
	}
	return total / float64(a.Size()*b.Size())
}

func (pa ProfileAligner) weight(id string) float64 {
	if pa.Weights == nil {
		return 1
	}
	if w, ok := pa.Weights[id]; ok {
		return w
	}
	return 1
}

type direction byte

const (
	dirNone direction = iota
	dirDiag
	dirUp
	dirLeft
)

// spread rebuilds a row along the output columns: cols[k] names the source
// column feeding output column k, -1 meaning a gap.
func spread(r seq.Sequence, cols []int) seq.Sequence {
	var b strings.Builder
	b.Grow(len(cols))
	for _, c := range cols {
		if c < 0 {
			b.WriteByte(seq.GapByte)
		} else {
			b.WriteByte(r.Residues[c])
		}
	}
	return seq.Sequence{ID: r.ID, Residues: b.String()}
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// joinPadded merges profiles when one of them has no columns.
func joinPadded(a, b *Profile) *Profile {
	length := a.Length()
	if b.Length() > length {
		length = b.Length()
	}
	rows := make([]seq.Sequence, 0, a.Size()+b.Size())
	for _, r := range a.Rows() {
		rows = append(rows, padTo(r, length))
	}
	for _, r := range b.Rows() {
		rows = append(rows, padTo(r, length))
	}
	return &Profile{rows: rows, length: length}
}

func padTo(r seq.Sequence, length int) seq.Sequence {
	if r.Len() < length {
		r.Residues += strings.Repeat(string(seq.GapByte), length-r.Len())
	}
	return r
}
