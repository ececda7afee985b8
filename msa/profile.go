// Package msa implements multiple sequence alignment: profile statistics,
// ClustalW-style profile-profile alignment and two progressive schedulers
// (Feng-Doolittle and ClustalW).
package msa

import (
	"fmt"
	"strings"

	"phylo/seq"
)

// consensusOrder fixes the tie-break order between equally frequent
// residues in a column.
const consensusOrder = "ARNDCQEGHILKMFPSTWYVUBZX"

// hydrophilic is the residue set forming hydrophilic stretches.
const hydrophilic = "DEGKNQPRS"

// Profile is a set of aligned sequences of equal length: the rows of a
// multiple alignment under construction.
type Profile struct {
	rows   []seq.Sequence
	length int
}

// NewProfile builds a profile from aligned rows. Every row must have the
// same length.
func NewProfile(rows ...seq.Sequence) (*Profile, error) {
	p := &Profile{rows: rows}
	if len(rows) > 0 {
		p.length = rows[0].Len()
		for _, r := range rows[1:] {
			if r.Len() != p.length {
				return nil, fmt.Errorf("profile: row %q has length %d, want %d", r.ID, r.Len(), p.length)
			}
		}
	}
	return p, nil
}

// FromSequence wraps a single sequence as a one-row profile.
func FromSequence(s seq.Sequence) *Profile {
	return &Profile{rows: []seq.Sequence{s}, length: s.Len()}
}

// Size returns the number of rows.
func (p *Profile) Size() int { return len(p.rows) }

// Length returns the number of columns.
func (p *Profile) Length() int { return p.length }

// Row returns the i-th aligned sequence.
func (p *Profile) Row(i int) seq.Sequence { return p.rows[i] }

// Rows returns the aligned sequences. The slice is owned by the profile.
func (p *Profile) Rows() []seq.Sequence { return p.rows }

// Column returns the residues of column pos across all rows, or "" when
// pos is out of range.
func (p *Profile) Column(pos int) string {
	if pos < 0 || pos >= p.length {
		return ""
	}
	var b strings.Builder
	b.Grow(len(p.rows))
	for _, r := range p.rows {
		b.WriteByte(r.Residues[pos])
	}
	return b.String()
}

// Count returns how many rows hold residue at column pos.
func (p *Profile) Count(residue byte, pos int) int {
	count := 0
	for _, r := range p.rows {
		if pos >= 0 && pos < r.Len() && r.Residues[pos] == residue {
			count++
		}
	}
	return count
}

// GapCount returns the number of gaps in column pos.
func (p *Profile) GapCount(pos int) int { return p.Count(seq.GapByte, pos) }

// NonGapCount returns the number of residues in column pos.
func (p *Profile) NonGapCount(pos int) int { return len(p.rows) - p.GapCount(pos) }

// Frequency returns the fraction of rows holding residue at column pos.
func (p *Profile) Frequency(residue byte, pos int) float64 {
	if len(p.rows) == 0 {
		return 0
	}
	return float64(p.Count(residue, pos)) / float64(len(p.rows))
}

// Consensus returns the most frequent non-gap residue of column pos, with
// ties broken by a fixed residue order. All-gap columns yield '-'.
func (p *Profile) Consensus(pos int) byte {
	best := byte(seq.GapByte)
	bestCount := 0
	for i := 0; i < len(consensusOrder); i++ {
		if c := p.Count(consensusOrder[i], pos); c > bestCount {
			best, bestCount = consensusOrder[i], c
		}
	}
	return best
}

// ConsensusString returns the column-wise consensus of the profile.
func (p *Profile) ConsensusString() string {
	var b strings.Builder
	b.Grow(p.length)
	for pos := 0; pos < p.length; pos++ {
		b.WriteByte(p.Consensus(pos))
	}
	return b.String()
}

// PercentIdentity returns the fraction of columns in which every row holds
// the same character as row 0, gaps included.
func (p *Profile) PercentIdentity() float64 {
	if p.length == 0 || len(p.rows) == 0 {
		return 0
	}
	first := p.rows[0].Residues
	conserved := 0
	for pos := 0; pos < p.length; pos++ {
		same := true
		for _, r := range p.rows[1:] {
			if r.Residues[pos] != first[pos] {
				same = false
				break
			}
		}
		if same {
			conserved++
		}
	}
	return float64(conserved) / float64(p.length)
}

// HasHydrophilicStretch reports whether any row holds five consecutive
// hydrophilic residues within five columns of pos. The window is truncated
// at the profile edges.
func (p *Profile) HasHydrophilicStretch(pos int) bool {
	lo := pos - 5
	if lo < 0 {
		lo = 0
	}
	hi := pos + 5
	if hi > p.length-1 {
		hi = p.length - 1
	}
	for _, r := range p.rows {
		run := 0
		for i := lo; i <= hi; i++ {
			if strings.IndexByte(hydrophilic, r.Residues[i]) >= 0 {
				run++
				if run >= 5 {
					return true
				}
			} else {
				run = 0
			}
		}
	}
	return false
}

// join concatenates the rows of two profiles of equal length.
func join(a, b *Profile) *Profile {
	rows := make([]seq.Sequence, 0, len(a.rows)+len(b.rows))
	rows = append(rows, a.rows...)
	rows = append(rows, b.rows...)
	return &Profile{rows: rows, length: a.length}
}
