// Package fastaio reads and writes protein FASTA files, normalizing
// records into the residue alphabet the aligners expect.
package fastaio

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"phylo/seq"
)

// Read parses protein FASTA records from r. Identifiers are trimmed at the
// first whitespace; residues are upper-cased with unknown letters folded
// to X.
func Read(r io.Reader) ([]seq.Sequence, error) {
	reader := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein))

	var out []seq.Sequence
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fasta: %w", err)
		}
		l := s.(*linear.Seq)
		out = append(out, seq.New(l.Name(), seq.Fold(l.Seq.String())))
	}
	return out, nil
}

// ReadFile reads protein FASTA records from a file.
func ReadFile(path string) ([]seq.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seqs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seqs, nil
}

// Write emits the sequences as FASTA with 60-column wrapping.
func Write(w io.Writer, seqs []seq.Sequence) error {
	writer := fasta.NewWriter(w, 60)
	for _, s := range seqs {
		l := linear.NewSeq(s.ID, alphabet.BytesToLetters([]byte(s.Residues)), alphabet.Protein)
		if _, err := writer.Write(l); err != nil {
			return fmt.Errorf("fasta: %w", err)
		}
	}
	return nil
}
