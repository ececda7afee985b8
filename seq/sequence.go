package seq

import "strings"

// Sequence is a named protein sequence. Residues may contain gap characters
// when the sequence is part of an alignment.
type Sequence struct {
	ID       string
	Residues string
}

// New builds a Sequence. The identifier is cut at its first whitespace, the
// way FASTA description lines usually carry the accession first.
func New(id, residues string) Sequence {
	if i := strings.IndexAny(id, " \t"); i >= 0 {
		id = id[:i]
	}
	return Sequence{ID: id, Residues: residues}
}

// Len returns the number of residues, gaps included.
func (s Sequence) Len() int { return len(s.Residues) }

// IsEmpty reports whether the sequence has no residues.
func (s Sequence) IsEmpty() bool { return len(s.Residues) == 0 }

// At returns the residue at position i, or 0 when i is out of range.
func (s Sequence) At(i int) byte {
	if i < 0 || i >= len(s.Residues) {
		return 0
	}
	return s.Residues[i]
}

// Ungapped returns a copy of the sequence with every gap removed.
func (s Sequence) Ungapped() Sequence {
	return Sequence{ID: s.ID, Residues: strings.ReplaceAll(s.Residues, string(GapByte), "")}
}
