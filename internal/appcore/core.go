// internal/appcore/core.go
package appcore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"phylo/align"
	"phylo/distance"
	"phylo/fastaio"
	"phylo/internal/clibase"
	"phylo/seq"
	"phylo/submat"
)

var (
	// ErrInputMissing means no --in path was supplied.
	ErrInputMissing = errors.New("missing input FASTA file")
	// ErrInputTooSmall means the input parsed but holds fewer than two sequences.
	ErrInputTooSmall = errors.New("input FASTA file must contain at least two sequences")
)

// LoadSequences reads the input FASTA file and enforces the two-sequence minimum.
func LoadSequences(path string) ([]seq.Sequence, error) {
	if path == "" {
		return nil, ErrInputMissing
	}
	seqs, err := fastaio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening input FASTA file %q: %w", path, err)
	}
	if len(seqs) < 2 {
		return nil, ErrInputTooSmall
	}
	return seqs, nil
}

// LoadMatrix resolves the -m flag. An explicitly named file must parse; the
// implicit default falls back to the built-in BLOSUM62 when the file is absent.
func LoadMatrix(path string, explicit bool) (submat.Matrix, error) {
	m, err := submat.ParseFile(path)
	if err == nil {
		return m, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return submat.ByID(submat.BLOSUM62), nil
	}
	return submat.Matrix{}, fmt.Errorf("opening substitution matrix file %q: %w", path, err)
}

// Metric builds the pairwise distance metric for a -d criterion.
func Metric(criterion int, matrix submat.Matrix, gap align.AffineGap, seed int64) (distance.Metric, error) {
	switch criterion {
	case clibase.DistanceIdentity:
		return distance.IdentityPercentage{Matrix: matrix, Gap: gap}, nil
	case clibase.DistanceLevenshtein:
		return distance.Levenshtein{}, nil
	case clibase.DistanceFengDoolittle:
		return distance.FengDoolittle{Matrix: matrix, Gap: gap, Seed: seed}, nil
	}
	return nil, fmt.Errorf("invalid distance criterion %d", criterion)
}

// WriteOutput writes via emit to the --out file, or to fallback when no path
// was given.
func WriteOutput(path string, fallback io.Writer, emit func(io.Writer) error) error {
	if path == "" {
		return emit(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := emit(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
