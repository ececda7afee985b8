package distance

import (
	"phylo/seq"
)

// Metric measures a non-negative distance between two sequences.
type Metric interface {
	Distance(a, b seq.Sequence) float64
}

// Build computes all pairwise distances between the given sequences and
// returns the resulting matrix. Sequence identifiers become the OTU labels.
func Build(seqs []seq.Sequence, metric Metric) *Matrix {
	m := NewMatrix()
	for _, s := range seqs {
		m.AddOTU(s.ID)
	}
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			m.SetDistance(seqs[i].ID, seqs[j].ID, metric.Distance(seqs[i], seqs[j]))
		}
	}
	return m
}
