package align

import (
	"math"
	"strings"
	"testing"

	"phylo/seq"
	"phylo/submat"
)

var testGap = AffineGap{Open: 10.0, Extend: 0.1}

func TestAffineGapCost(t *testing.T) {
	g := AffineGap{Open: 10.0, Extend: 0.5}
	cases := []struct {
		k    int
		want float64
	}{
		{0, 0}, {1, 10.0}, {2, 10.5}, {5, 12.0},
	}
	for _, c := range cases {
		if got := g.Cost(c.k); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Cost(%d) = %v, want %v", c.k, got, c.want)
		}
	}
}

func TestGlobalIdenticalSequences(t *testing.T) {
	m := submat.ByID(submat.Identity)
	a := seq.New("a", "ACDEF")
	b := seq.New("b", "ACDEF")

	res := Global(a, b, m, testGap)
	if res.A.Residues != "ACDEF" || res.B.Residues != "ACDEF" {
		t.Errorf("identical inputs should align without gaps, got %q / %q", res.A.Residues, res.B.Residues)
	}
	if math.Abs(res.Score-5) > 1e-9 {
		t.Errorf("score = %v, want 5", res.Score)
	}
}

func TestGlobalEmptyInputPadded(t *testing.T) {
	m := submat.ByID(submat.Identity)
	res := Global(seq.New("a", ""), seq.New("b", "ACD"), m, testGap)
	if res.A.Residues != "---" || res.B.Residues != "ACD" {
		t.Errorf("got %q / %q", res.A.Residues, res.B.Residues)
	}
	if math.Abs(res.Score-(-10.2)) > 1e-9 {
		t.Errorf("score = %v, want -10.2", res.Score)
	}

	res = Global(seq.New("a", ""), seq.New("b", ""), m, testGap)
	if res.A.Residues != "" || res.B.Residues != "" || res.Score != 0 {
		t.Errorf("empty/empty: got %q / %q score %v", res.A.Residues, res.B.Residues, res.Score)
	}
}

func TestGlobalEqualLengthOutput(t *testing.T) {
	m := submat.ByID(submat.BLOSUM62)
	a := seq.New("a", "MKTAYIAKQR")
	b := seq.New("b", "MKTAYIR")

	res := Global(a, b, m, testGap)
	if len(res.A.Residues) != len(res.B.Residues) {
		t.Fatalf("aligned rows differ in length: %d vs %d", len(res.A.Residues), len(res.B.Residues))
	}
	if got := strings.ReplaceAll(res.A.Residues, "-", ""); got != a.Residues {
		t.Errorf("row a lost residues: %q", got)
	}
	if got := strings.ReplaceAll(res.B.Residues, "-", ""); got != b.Residues {
		t.Errorf("row b lost residues: %q", got)
	}
}

func TestGlobalPrefersSingleGapRun(t *testing.T) {
	// With a large open penalty and a tiny extension penalty the three
	// missing residues should sit in one run, not three.
	m := submat.ByID(submat.BLOSUM62)
	a := seq.New("a", "MKTAYIAKQR")
	b := seq.New("b", "MKTAYIR")

	res := Global(a, b, m, AffineGap{Open: 20.0, Extend: 0.1})
	runs := 0
	inRun := false
	for i := 0; i < len(res.B.Residues); i++ {
		if res.B.Residues[i] == '-' {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if runs != 1 {
		t.Errorf("gap runs in b = %d, want 1 (%q)", runs, res.B.Residues)
	}
}
