package distance

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strings"

	"phylo/align"
	"phylo/seq"
	"phylo/submat"
)

// FengDoolittle converts alignment scores into evolutionary distances by
// normalizing against the self scores and the score of shuffled sequences
// (Feng and Doolittle, 1987).
type FengDoolittle struct {
	Matrix submat.Matrix
	Gap    align.AffineGap
	Seed   int64
}

// Distance returns -ln(2(Sxy - Sr) / (Sxx + Syy + 2 Sr)), clamped to zero
// when the numerator is not positive. Sr scores shuffled copies of the
// inputs; shuffles are deterministic per sequence and seed, so the order of
// calls does not change the result. Gaps are rewritten to X before scoring.
func (f FengDoolittle) Distance(x, y seq.Sequence) float64 {
	a := degap(x)
	b := degap(y)
	ra := f.shuffle(a)
	rb := f.shuffle(b)

	sxy := align.Global(a, b, f.Matrix, f.Gap).Score
	sxx := align.Global(a, a, f.Matrix, f.Gap).Score
	syy := align.Global(b, b, f.Matrix, f.Gap).Score
	sr := align.Global(ra, rb, f.Matrix, f.Gap).Score

	d := 2 * (sxy - sr) / (sxx + syy + 2*sr)
	if !(d > 0) {
		d = 1
	}
	return -math.Log(d)
}

func degap(s seq.Sequence) seq.Sequence {
	return seq.Sequence{
		ID:       s.ID,
		Residues: strings.ReplaceAll(s.Residues, string(seq.GapByte), "X"),
	}
}

func (f FengDoolittle) shuffle(s seq.Sequence) seq.Sequence {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.Residues))
	rng := rand.New(rand.NewSource(f.Seed ^ int64(h.Sum64())))

	out := []byte(s.Residues)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return seq.Sequence{ID: s.ID, Residues: string(out)}
}
