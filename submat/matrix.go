// Package submat provides integer amino-acid substitution matrices: a
// built-in catalog (BLOSUM, PAM, MD, GON, identity) and a plain-text file
// format for external tables.
package submat

import (
	"phylo/seq"
)

const n = seq.AlphabetSize

// Matrix is an immutable substitution matrix over the full amino-acid
// alphabet, with cached minimum, maximum and average scores. The zero value
// is the all-zero matrix.
type Matrix struct {
	scores   [n * n]int
	min, max int
	avg      float64
}

// New builds a matrix from a scoring function over residue codes.
func New(score func(a, b seq.Code) int) Matrix {
	var m Matrix
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			m.scores[a*n+b] = score(seq.Code(a), seq.Code(b))
		}
	}
	m.refresh()
	return m
}

func (m *Matrix) refresh() {
	m.min, m.max = m.scores[0], m.scores[0]
	sum := 0
	for _, s := range m.scores {
		if s < m.min {
			m.min = s
		}
		if s > m.max {
			m.max = s
		}
		sum += s
	}
	m.avg = float64(sum) / float64(len(m.scores))
}

// Score returns the score of substituting residue a with residue b.
// Unknown letters score as 'X'.
func (m Matrix) Score(a, b byte) int {
	return m.scores[int(seq.CodeOf(a))*n+int(seq.CodeOf(b))]
}

// ScoreCode is Score over residue codes.
func (m Matrix) ScoreCode(a, b seq.Code) int { return m.scores[int(a)*n+int(b)] }

// Min returns the smallest score in the matrix.
func (m Matrix) Min() int { return m.min }

// Max returns the largest score in the matrix.
func (m Matrix) Max() int { return m.max }

// Avg returns the mean score over every cell.
func (m Matrix) Avg() float64 { return m.avg }

// Add returns a copy of the matrix with v added to every score.
func (m Matrix) Add(v int) Matrix { return m.fma(v, 1) }

// Mul returns a copy of the matrix with every score multiplied by v.
func (m Matrix) Mul(v int) Matrix { return m.fma(0, v) }

// Neg returns a copy of the matrix with every score negated.
func (m Matrix) Neg() Matrix { return m.Mul(-1) }

// Shifted returns a copy of the matrix translated so its minimum is zero.
func (m Matrix) Shifted() Matrix { return m.Add(-m.min) }

func (m Matrix) fma(addend, factor int) Matrix {
	out := m
	for i, s := range out.scores {
		out.scores[i] = s*factor + addend
	}
	out.refresh()
	return out
}

// Equal reports whether the two matrices assign identical scores.
func (m Matrix) Equal(other Matrix) bool { return m.scores == other.scores }
