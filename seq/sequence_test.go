package seq

import "testing"

func TestNewTrimsIDAtWhitespace(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Seq1", "Seq1"},
		{"Seq1 homo sapiens", "Seq1"},
		{"Seq1\tdescription", "Seq1"},
		{"", ""},
	}
	for _, c := range cases {
		if got := New(c.header, "ACD").ID; got != c.want {
			t.Errorf("New(%q).ID = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acdef", "ACDEF"},
		{"AC-DE", "AC-DE"},
		{"ac1de", "ACXDE"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUngapped(t *testing.T) {
	s := New("x", "A-C--D")
	if got := s.Ungapped().Residues; got != "ACD" {
		t.Errorf("Ungapped() = %q, want ACD", got)
	}
}

func TestCodeRoundTrip(t *testing.T) {
	for i := 0; i < AlphabetSize; i++ {
		c := Code(i)
		if got := CodeOf(c.Letter()); got != c {
			t.Errorf("CodeOf(%d.Letter()) = %d", c, got)
		}
	}
	if CodeOf('1') != Xaa {
		t.Error("unknown letter should map to Xaa")
	}
}

func TestCodeOfLetter3(t *testing.T) {
	if CodeOfLetter3("ALA") != Ala {
		t.Error("ALA should map to Ala")
	}
	if CodeOfLetter3("???") != Xaa {
		t.Error("unknown code should map to Xaa")
	}
}
