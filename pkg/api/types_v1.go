// pkg/api/types_v1.go
package api

// SequenceV1 is the stable JSON schema for a named sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SequenceV1 struct {
	ID       string `json:"id"`
	Residues string `json:"residues"`
}

// ScoringV1 carries the scoring options shared by most requests.
type ScoringV1 struct {
	Matrix    string  `json:"matrix,omitempty"`     // e.g. "blosum62", "pam250"
	GapOpen   float64 `json:"gap_open,omitempty"`   // default 10.0
	GapExtend float64 `json:"gap_extend,omitempty"` // default 0.1
	Seed      int64   `json:"seed,omitempty"`       // shuffled-alignment distances
}

// PairwiseRequestV1 asks for a global alignment of two sequences.
type PairwiseRequestV1 struct {
	Sequence1 SequenceV1 `json:"sequence1"`
	Sequence2 SequenceV1 `json:"sequence2"`
	ScoringV1
}

// PairwiseV1 is the response schema for pairwise alignment.
type PairwiseV1 struct {
	Aligned1 string  `json:"aligned1"`
	Aligned2 string  `json:"aligned2"`
	Score    float64 `json:"score"`
}

// DistanceRequestV1 asks for a pairwise distance matrix.
type DistanceRequestV1 struct {
	Sequences []SequenceV1 `json:"sequences"`
	Metric    string       `json:"metric,omitempty"` // identity | levenshtein | fengdoolittle
	ScoringV1
}

// DistanceMatrixV1 is a full square matrix keyed by Labels order.
type DistanceMatrixV1 struct {
	Labels    []string    `json:"labels"`
	Distances [][]float64 `json:"distances"`
}

// TreeRequestV1 asks for a phylogenetic tree.
type TreeRequestV1 struct {
	Sequences  []SequenceV1 `json:"sequences"`
	Metric     string       `json:"metric,omitempty"`
	Clustering string       `json:"clustering,omitempty"` // upgma | fm | nj
	ScoringV1
}

// TreeV1 is the response schema for tree building.
type TreeV1 struct {
	Newick string `json:"newick"`
}

// MSARequestV1 asks for a multiple sequence alignment.
type MSARequestV1 struct {
	Sequences  []SequenceV1 `json:"sequences"`
	Metric     string       `json:"metric,omitempty"`
	Clustering string       `json:"clustering,omitempty"`
	Family     string       `json:"family,omitempty"` // pam | blosum
	ScoringV1
}

// MSAV1 is the response schema for multiple alignment.
type MSAV1 struct {
	Rows            []SequenceV1 `json:"rows"`
	Consensus       string       `json:"consensus"`
	PercentIdentity float64      `json:"percent_identity"`
	Clustal         string       `json:"clustal"`
}

// ErrorV1 is the stable error envelope.
type ErrorV1 struct {
	Error string `json:"error"`
}
