package fastaio

import (
	"bytes"
	"strings"
	"testing"

	"phylo/seq"
)

const sample = `>Seq1 human fragment
MKTAYIAKQR
>Seq2
MKTAYI
AKQR
`

func TestRead(t *testing.T) {
	seqs, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("records = %d, want 2", len(seqs))
	}
	if seqs[0].ID != "Seq1" {
		t.Errorf("ID = %q, want Seq1", seqs[0].ID)
	}
	if seqs[0].Residues != "MKTAYIAKQR" {
		t.Errorf("residues = %q", seqs[0].Residues)
	}
	if seqs[1].Residues != "MKTAYIAKQR" {
		t.Errorf("wrapped residues = %q", seqs[1].Residues)
	}
}

func TestReadEmpty(t *testing.T) {
	seqs, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(seqs) != 0 {
		t.Errorf("records = %d, want 0", len(seqs))
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	in := []seq.Sequence{
		seq.New("Seq1", "MKTAYIAKQR"),
		seq.New("Seq2", strings.Repeat("ACDEFGHIKL", 8)),
	}

	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("records = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Residues != in[i].Residues {
			t.Errorf("record %d changed: %+v", i, out[i])
		}
	}
}
