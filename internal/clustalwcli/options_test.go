package clustalwcli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(argv ...string) (Options, error) {
	fs := NewFlagSet("clustalw")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opt, err := parse("--in", "input.fasta")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.MatrixFile != "blosum62.dat" || opt.MatrixSet {
		t.Errorf("matrix default = %q set=%v", opt.MatrixFile, opt.MatrixSet)
	}
	if opt.GapOpen != 10.0 || opt.GapExtend != 0.1 {
		t.Errorf("gap defaults = %v/%v", opt.GapOpen, opt.GapExtend)
	}
	if opt.Distance != 0 || opt.Clustering != ClusterNeighborJoining || opt.Family != FamilyBLOSUM {
		t.Errorf("enum defaults = %d/%d/%d", opt.Distance, opt.Clustering, opt.Family)
	}
	if opt.ProfileOpen != 10.0 || opt.ProfileExtend != 0.2 {
		t.Errorf("profile gap defaults = %v/%v", opt.ProfileOpen, opt.ProfileExtend)
	}
}

func TestMatrixSetTracksExplicitFlag(t *testing.T) {
	opt, err := parse("--in", "x.fasta", "-m", "pam250.dat")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !opt.MatrixSet || opt.MatrixFile != "pam250.dat" {
		t.Errorf("MatrixSet=%v MatrixFile=%q", opt.MatrixSet, opt.MatrixFile)
	}
}

func TestValidation(t *testing.T) {
	cases := [][]string{
		{},                                  // missing --in
		{"--in", "x.fasta", "-d", "3"},      // bad distance
		{"--in", "x.fasta", "-c", "5"},      // bad clustering
		{"--in", "x.fasta", "-n", "2"},      // bad family
		{"--in", "x.fasta", "-o", "-1"},     // negative penalty
		{"--in", "x.fasta", "-wo", "-0.5"},  // negative profile penalty
		{"--in", "x.fasta", "--bogus-flag"}, // unknown flag
	}
	for _, argv := range cases {
		if _, err := parse(argv...); err == nil {
			t.Errorf("ParseArgs(%v) should fail", argv)
		}
	}
}

func TestHelp(t *testing.T) {
	_, err := parse("-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	opt, err := parse("--version")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !opt.Version {
		t.Error("Version flag lost")
	}
}
