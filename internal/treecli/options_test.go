package treecli

import (
	"io"
	"testing"
)

func parse(argv ...string) (Options, error) {
	fs := NewFlagSet("phyltree")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opt, err := parse("--in", "input.fasta")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.Clustering != ClusterNeighborJoining {
		t.Errorf("clustering default = %d, want NJ", opt.Clustering)
	}
	if opt.Distance != 0 {
		t.Errorf("distance default = %d, want 0", opt.Distance)
	}
	if opt.MatrixFile != "blosum62.dat" {
		t.Errorf("matrix default = %q", opt.MatrixFile)
	}
}

func TestValidation(t *testing.T) {
	cases := [][]string{
		{},                             // missing --in
		{"--in", "x.fasta", "-c", "2"}, // phyltree only knows 0 and 1
		{"--in", "x.fasta", "-d", "9"},
	}
	for _, argv := range cases {
		if _, err := parse(argv...); err == nil {
			t.Errorf("ParseArgs(%v) should fail", argv)
		}
	}
}

func TestUPGMASelection(t *testing.T) {
	opt, err := parse("--in", "x.fasta", "-c", "0")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.Clustering != ClusterUPGMA {
		t.Errorf("clustering = %d, want UPGMA", opt.Clustering)
	}
}
