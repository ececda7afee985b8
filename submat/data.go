package submat

import "phylo/seq"

// Published tables cover 23 letters. The rare codes score as their closest
// canonical residue: U as C, O as K, J as L.
const dataResidues = "ARNDCQEGHILKMFPSTWYVBZX"

var dataIndex = buildDataIndex()

func buildDataIndex() [seq.AlphabetSize]int {
	var idx [seq.AlphabetSize]int
	pos := map[byte]int{}
	for i := 0; i < len(dataResidues); i++ {
		pos[dataResidues[i]] = i
	}
	for c := 0; c < seq.AlphabetSize; c++ {
		letter := seq.Code(c).Letter()
		switch seq.Code(c) {
		case seq.Sec:
			letter = 'C'
		case seq.Pyl:
			letter = 'K'
		case seq.Xle:
			letter = 'L'
		}
		idx[c] = pos[letter]
	}
	return idx
}

// fromTriangle expands a lower-triangular table over dataResidues into a
// full symmetric Matrix over the 26-letter alphabet.
func fromTriangle(tri []int) Matrix {
	return New(func(a, b seq.Code) int {
		i, j := dataIndex[a], dataIndex[b]
		if i < j {
			i, j = j, i
		}
		return tri[i*(i+1)/2+j]
	})
}

var (
	identity = New(func(a, b seq.Code) int {
		if a == b {
			return 1
		}
		return 0
	})

	blosum30 = fromTriangle(blosum30Tri)
	blosum45 = fromTriangle(blosum45Tri)
	blosum62 = fromTriangle(blosum62Tri)
	blosum80 = fromTriangle(blosum80Tri)
	pam30    = fromTriangle(pam30Tri)
	pam70    = fromTriangle(pam70Tri)
	pam120   = fromTriangle(pam120Tri)
	pam250   = fromTriangle(pam250Tri)
)

var blosum62Tri = []int{
	4,
	-1, 5,
	-2, 0, 6,
	-2, -2, 1, 6,
	0, -3, -3, -3, 9,
	-1, 1, 0, 0, -3, 5,
	-1, 0, 0, 2, -4, 2, 5,
	0, -2, 0, -1, -3, -2, -2, 6,
	-2, 0, 1, -1, -3, 0, 0, -2, 8,
	-1, -3, -3, -3, -1, -3, -3, -4, -3, 4,
	-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4,
	-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5,
	-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5,
	-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6,
	-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7,
	1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4,
	0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5,
	-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11,
	-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7,
	0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4,
	-2, -1, 3, 4, -3, 0, 1, -1, 0, -3, -4, 0, -3, -3, -2, 0, -1, -4, -3, -3, 4,
	-1, 0, 0, 1, -3, 3, 4, -2, 0, -3, -3, 1, -1, -3, -1, 0, -1, -3, -2, -2, 1, 4,
	0, -1, -1, -1, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -2, 0, 0, -2, -1, -1, -1, -1, -1,
}

var blosum45Tri = []int{
	5,
	-2, 7,
	-1, 0, 6,
	-2, -1, 2, 7,
	-1, -3, -2, -3, 12,
	-1, 1, 0, 0, -3, 6,
	-1, 0, 0, 2, -3, 2, 6,
	0, -2, 0, -1, -3, -2, -2, 7,
	-2, 0, 1, 0, -3, 1, 0, -2, 10,
	-1, -3, -2, -4, -3, -2, -3, -4, -3, 5,
	-1, -2, -3, -3, -2, -2, -2, -3, -2, 2, 5,
	-1, 3, 0, 0, -3, 1, 1, -2, -1, -3, -3, 5,
	-1, -1, -2, -3, -2, 0, -2, -2, 0, 2, 2, -1, 6,
	-2, -2, -2, -4, -2, -4, -3, -3, -2, 0, 1, -3, 0, 8,
	-1, -2, -2, -1, -4, -1, 0, -2, -2, -2, -3, -1, -2, -3, 9,
	1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -3, -1, -2, -2, -1, 4,
	0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, 2, 5,
	-2, -2, -4, -4, -5, -2, -3, -2, -3, -2, -2, -2, -2, 1, -3, -4, -3, 15,
	-2, -1, -2, -2, -3, -1, -2, -3, 2, 0, 0, -1, 0, 3, -3, -2, -1, 3, 8,
	0, -2, -3, -3, -1, -3, -3, -3, -3, 3, 1, -2, 1, 0, -3, -1, 0, -3, -1, 5,
	-1, -1, 4, 5, -2, 0, 1, -1, 0, -3, -3, 0, -2, -3, -2, 0, 0, -4, -2, -3, 4,
	-1, 0, 0, 1, -3, 4, 4, -2, 0, -3, -2, 1, -1, -3, -1, 0, -1, -2, -2, -3, 2, 4,
	0, -1, -1, -1, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 0, 0, -2, -1, -1, -1, -1, -1,
}

var blosum80Tri = []int{
	5,
	-2, 6,
	-2, -1, 6,
	-2, -2, 1, 6,
	-1, -4, -3, -4, 9,
	-1, 1, 0, -1, -4, 6,
	-1, -1, -1, 1, -5, 2, 6,
	0, -3, -1, -2, -4, -2, -3, 6,
	-2, 0, 0, -2, -4, 1, 0, -3, 8,
	-2, -3, -4, -4, -2, -3, -4, -5, -4, 5,
	-2, -3, -4, -5, -2, -3, -4, -4, -3, 1, 4,
	-1, 2, 0, -1, -4, 1, 1, -2, -1, -3, -3, 5,
	-1, -2, -3, -4, -2, 0, -2, -4, -2, 1, 2, -2, 6,
	-3, -4, -4, -4, -3, -4, -4, -4, -2, -1, 0, -4, 0, 6,
	-1, -2, -3, -2, -4, -2, -2, -3, -3, -4, -3, -1, -3, -4, 8,
	1, -1, 0, -1, -2, 0, 0, -1, -1, -3, -3, -1, -2, -3, -1, 5,
	0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -2, -1, -1, -2, -2, 1, 5,
	-3, -4, -4, -6, -3, -3, -4, -4, -3, -3, -2, -4, -2, 0, -5, -4, -4, 11,
	-2, -3, -3, -4, -3, -2, -3, -4, 2, -2, -2, -3, -2, 3, -4, -2, -2, 2, 7,
	0, -3, -4, -4, -1, -3, -3, -4, -4, 3, 1, -3, 1, -1, -3, -2, 0, -3, -2, 4,
	-2, -2, 4, 4, -4, 0, 1, -1, -1, -4, -4, -1, -3, -4, -2, 0, -1, -5, -3, -4, 4,
	-1, 0, 0, 1, -4, 3, 4, -3, 0, -4, -3, 1, -2, -4, -2, 0, -1, -4, -3, -3, 0, 4,
	-1, -1, -1, -2, -3, -1, -1, -2, -2, -2, -2, -1, -1, -2, -2, -1, -1, -3, -2, -1, -2, -1, -1,
}

var blosum30Tri = []int{
	4,
	-1, 8,
	0, -2, 8,
	0, -1, 1, 9,
	-3, -2, -1, -3, 17,
	1, 3, -1, -1, -2, 8,
	0, -1, -1, 1, 1, 2, 6,
	0, -2, 0, -1, -4, -2, -2, 8,
	-2, -1, -1, -2, -5, 0, 0, -3, 14,
	0, -3, 0, -4, -2, -2, -3, -1, -2, 6,
	-1, -2, -2, -1, 0, -2, -1, -2, -1, 2, 4,
	0, 1, 0, 0, -3, 0, 2, -1, -2, -2, -2, 4,
	1, 0, 0, -3, -2, -1, -1, -2, 2, 1, 2, 2, 6,
	-2, -1, -1, -5, -3, -3, -4, -3, -3, 0, 2, -1, -2, 10,
	-1, -1, -3, -1, -3, 0, 1, -1, 1, -3, -3, 1, -4, -4, 11,
	1, -1, 0, 0, -2, -1, 0, 0, -1, -1, -2, 0, -2, -1, -1, 4,
	1, -3, 1, -1, -2, 0, -2, -2, -2, 0, 0, -1, 0, -2, 0, 2, 5,
	-5, 0, -7, -4, -2, -1, -1, 1, -5, -3, -2, -2, -3, 1, -3, -3, -5, 20,
	-4, 0, -4, -1, -6, -1, -2, -3, 0, -1, 3, -1, -1, 3, -2, -2, -1, 5, 9,
	1, -1, -2, -2, -2, -3, -3, -3, -3, 4, 1, -2, 0, 1, -4, -1, 1, -3, 1, 5,
	0, -2, 4, 5, -2, -1, 0, 0, -2, -2, -1, 0, -2, -3, -2, 0, 0, -5, -3, -2, 5,
	0, 0, -1, 0, 0, 4, 5, -2, 0, -3, -1, 1, -1, -4, 0, -1, -1, -1, -2, -3, 0, 4,
	0, -1, 0, -1, -2, 0, -1, -1, -1, 0, 0, 0, 0, -1, -1, 0, 0, -2, -1, 0, -1, 0, -1,
}

var pam250Tri = []int{
	2,
	-2, 6,
	0, 0, 2,
	0, -1, 2, 4,
	-2, -4, -4, -5, 12,
	0, 1, 1, 2, -5, 4,
	0, -1, 1, 3, -5, 2, 4,
	1, -3, 0, 1, -3, -1, 0, 5,
	-1, 2, 2, 1, -3, 3, 1, -2, 6,
	-1, -2, -2, -2, -2, -2, -2, -3, -2, 5,
	-2, -3, -3, -4, -6, -2, -3, -4, -2, 2, 6,
	-1, 3, 1, 0, -5, 1, 0, -2, 0, -2, -3, 5,
	-1, 0, -2, -3, -5, -1, -2, -3, -2, 2, 4, 0, 6,
	-3, -4, -3, -6, -4, -5, -5, -5, -2, 1, 2, -5, 0, 9,
	1, 0, 0, -1, -3, 0, -1, 0, 0, -2, -3, -1, -2, -5, 6,
	1, 0, 1, 0, 0, -1, 0, 1, -1, -1, -3, 0, -2, -3, 1, 2,
	1, -1, 0, 0, -2, -1, 0, 0, -1, 0, -2, 0, -1, -3, 0, 1, 3,
	-6, 2, -4, -7, -8, -5, -7, -7, -3, -5, -2, -3, -4, 0, -6, -2, -5, 17,
	-3, -4, -2, -4, 0, -4, -4, -5, 0, -1, -1, -4, -2, 7, -5, -3, -3, 0, 10,
	0, -2, -2, -2, -2, -2, -2, -1, -2, 4, 2, -2, 2, -1, -1, -1, 0, -6, -2, 4,
	0, -1, 2, 3, -4, 1, 3, 0, 1, -2, -3, 1, -2, -4, -1, 0, 0, -5, -3, -2, 3,
	0, 0, 1, 3, -5, 3, 3, 0, 2, -2, -3, 0, -2, -5, 0, 0, -1, -6, -4, -2, 2, 3,
	0, -1, 0, -1, -3, -1, -1, -1, -1, -1, -1, -1, -1, -2, -1, 0, 0, -4, -2, -1, -1, -1, -1,
}

var pam120Tri = []int{
	3,
	-3, 6,
	-1, -1, 4,
	0, -3, 2, 5,
	-3, -4, -5, -7, 9,
	-1, 1, 0, 1, -7, 6,
	0, -3, 1, 3, -7, 2, 5,
	1, -4, 0, 0, -4, -3, -1, 5,
	-3, 1, 2, 0, -4, 3, -1, -4, 7,
	-1, -2, -2, -3, -3, -3, -3, -4, -4, 6,
	-3, -4, -4, -5, -7, -2, -4, -5, -3, 1, 5,
	-2, 2, 1, -1, -7, 0, -1, -3, -2, -3, -4, 5,
	-2, -1, -3, -4, -6, -1, -3, -4, -4, 1, 3, 0, 8,
	-4, -5, -4, -7, -6, -6, -7, -5, -3, 0, 0, -7, -1, 8,
	1, -1, -2, -3, -4, 0, -2, -2, -1, -3, -3, -2, -3, -5, 6,
	1, -1, 1, 0, 0, -2, -1, 1, -2, -2, -4, -1, -2, -3, 1, 3,
	1, -2, 0, -1, -3, -2, -2, -1, -3, 0, -3, -1, -1, -4, -1, 2, 4,
	-7, 1, -4, -8, -8, -6, -8, -8, -3, -6, -3, -5, -6, -1, -7, -2, -6, 12,
	-4, -5, -2, -5, -1, -5, -5, -6, -1, -2, -2, -5, -4, 4, -6, -3, -3, -2, 8,
	0, -3, -3, -3, -3, -3, -3, -2, -3, 3, 1, -4, 1, -3, -2, -2, 0, -8, -3, 5,
	0, -2, 3, 4, -6, 0, 3, 0, 1, -3, -4, 0, -4, -5, -2, 0, 0, -6, -3, -3, 4,
	-1, -1, 0, 3, -7, 4, 4, -2, 1, -3, -3, -1, -2, -6, -1, -1, -2, -7, -5, -3, 2, 4,
	-1, -2, -1, -2, -4, -1, -1, -2, -2, -1, -2, -2, -2, -3, -2, -1, -1, -5, -3, -1, -1, -1, -2,
}

var pam70Tri = []int{
	5,
	-4, 8,
	-2, -3, 6,
	-1, -6, 3, 6,
	-4, -5, -7, -9, 9,
	-2, 0, -1, 0, -9, 7,
	-1, -5, 0, 3, -9, 2, 6,
	0, -6, -1, -1, -6, -4, -2, 6,
	-4, 0, 1, -1, -5, 2, -2, -6, 8,
	-2, -3, -3, -5, -4, -5, -4, -6, -6, 7,
	-4, -6, -5, -8, -10, -3, -6, -7, -4, 1, 6,
	-4, 2, 0, -2, -9, -1, -2, -5, -3, -4, -5, 6,
	-3, -2, -5, -7, -9, -2, -4, -6, -6, 1, 2, 0, 10,
	-6, -7, -6, -10, -8, -9, -9, -7, -4, 0, -1, -9, -2, 8,
	0, -2, -3, -4, -5, -1, -3, -3, -2, -5, -5, -4, -5, -7, 7,
	1, -2, 1, -1, -1, -3, -2, 0, -3, -4, -6, -2, -3, -4, 0, 5,
	1, -4, 0, -2, -5, -3, -3, -3, -4, -1, -4, -1, -2, -6, -2, 2, 6,
	-9, 0, -6, -10, -11, -8, -11, -10, -5, -9, -4, -7, -8, -2, -9, -3, -8, 13,
	-5, -7, -3, -7, -2, -8, -6, -9, -1, -4, -4, -7, -7, 4, -9, -5, -5, -3, 9,
	-1, -5, -5, -5, -4, -4, -4, -3, -4, 3, 0, -6, 0, -5, -3, -3, 0, -10, -5, 6,
	-1, -4, 5, 5, -8, 0, 2, -1, 0, -4, -6, -1, -6, -7, -4, 0, -1, -7, -4, -5, 5,
	-1, -2, -1, 2, -9, 5, 5, -3, 1, -4, -4, -2, -3, -9, -2, -2, -3, -10, -7, -4, 1, 5,
	-2, -3, -2, -3, -6, -2, -3, -3, -3, -3, -4, -3, -3, -5, -3, -1, -2, -7, -5, -2, -2, -3, -3,
}

var pam30Tri = []int{
	6,
	-7, 8,
	-4, -6, 8,
	-3, -10, 2, 8,
	-6, -8, -11, -14, 10,
	-4, -2, -3, -2, -14, 8,
	-2, -9, -2, 2, -14, 1, 8,
	-2, -9, -3, -3, -9, -7, -4, 6,
	-7, -2, 0, -4, -7, 1, -5, -9, 9,
	-5, -5, -5, -7, -6, -8, -5, -11, -9, 8,
	-6, -8, -7, -12, -15, -5, -9, -10, -6, -1, 7,
	-7, 0, -1, -4, -14, -3, -4, -7, -6, -6, -8, 7,
	-5, -4, -9, -11, -13, -4, -7, -8, -10, -1, 1, -2, 11,
	-8, -9, -9, -15, -13, -13, -14, -9, -6, -2, -3, -14, -4, 9,
	-2, -4, -6, -8, -8, -3, -5, -6, -4, -8, -7, -6, -8, -10, 8,
	0, -3, 0, -4, -3, -5, -4, -2, -6, -7, -8, -4, -5, -6, -2, 6,
	-1, -6, -2, -5, -8, -5, -6, -6, -7, -2, -7, -3, -4, -9, -4, 0, 7,
	-13, -2, -8, -15, -15, -13, -17, -15, -7, -14, -6, -12, -13, -4, -14, -5, -13, 13,
	-8, -10, -4, -11, -4, -12, -8, -14, -3, -6, -7, -9, -11, 2, -13, -7, -6, -5, 10,
	-2, -8, -8, -8, -6, -7, -6, -5, -6, 2, -2, -9, -1, -8, -6, -6, -3, -15, -7, 7,
	-3, -7, 6, 6, -12, -3, 1, -3, -1, -6, -9, -2, -10, -10, -7, -1, -3, -10, -6, -8, 6,
	-3, -4, -3, 1, -14, 6, 6, -5, -1, -6, -7, -4, -5, -13, -4, -5, -6, -14, -9, -6, 0, 6,
	-3, -6, -3, -5, -9, -5, -5, -5, -5, -5, -6, -5, -5, -8, -5, -3, -4, -11, -7, -5, -5, -5, -5,
}
