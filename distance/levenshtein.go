package distance

import "phylo/seq"

// Levenshtein measures the plain edit distance between the raw residue
// strings. It ignores substitution matrices and gap penalties.
type Levenshtein struct{}

// Distance returns the minimum number of single-residue insertions,
// deletions and substitutions turning a into b.
func (Levenshtein) Distance(a, b seq.Sequence) float64 {
	ra, rb := a.Residues, b.Residues
	if len(ra) == 0 {
		return float64(len(rb))
	}
	if len(rb) == 0 {
		return float64(len(ra))
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			best := prev[j-1] + cost
			if del := prev[j] + 1; del < best {
				best = del
			}
			if ins := curr[j-1] + 1; ins < best {
				best = ins
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return float64(prev[len(rb)])
}
