package writers

import (
	"bytes"
	"strings"
	"testing"

	"phylo/msa"
	"phylo/seq"
)

func TestWriteClustalSingleBlock(t *testing.T) {
	p, err := msa.NewProfile(
		seq.New("a", "MKTA-Y"),
		seq.New("bb", "MKTAAY"),
	)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteClustal(&buf, p); err != nil {
		t.Fatalf("WriteClustal: %v", err)
	}

	want := "a     MKTA-Y 5\n" +
		"bb    MKTAAY 6\n" +
		"\n\n" +
		"\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%q\nwant\n%q", got, want)
	}
}

func TestWriteClustalBlocksOfFifty(t *testing.T) {
	row := strings.Repeat("ACDEFGHIKL", 6) // 60 residues
	p, err := msa.NewProfile(seq.New("x", row))
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteClustal(&buf, p); err != nil {
		t.Fatalf("WriteClustal: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, row[:50]+" 50\n") {
		t.Error("first block should end at residue 50")
	}
	if !strings.Contains(out, row[50:]+" 60\n") {
		t.Error("second block should end at residue 60")
	}
}

func TestWriteClustalGapOnlyChunkHasNoCount(t *testing.T) {
	long := strings.Repeat("A", 50) + strings.Repeat("-", 10)
	short := strings.Repeat("A", 50) + strings.Repeat("C", 10)
	p, err := msa.NewProfile(seq.New("a", long), seq.New("b", short))
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteClustal(&buf, p); err != nil {
		t.Fatalf("WriteClustal: %v", err)
	}
	if strings.Contains(buf.String(), "---------- 50") {
		t.Error("an all-gap chunk must not print a cumulative count")
	}
}
