package fdapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFasta = `>Seq1
MAAAAATLRGAMVGPRGAGLP
>Seq2
MAAAAASLRGVVLGPRGAGL
>Seq3
MTEFKAGSAKKGATLFKTRCL
`

func writeFasta(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fasta")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunAlignsToStdout(t *testing.T) {
	in := writeFasta(t, testFasta)

	var out, errb bytes.Buffer
	code := Run([]string{"--in", in}, &out, &errb)
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, errb.String())
	}
	for _, id := range []string{"Seq1", "Seq2", "Seq3"} {
		if !strings.Contains(out.String(), id) {
			t.Errorf("output lacks row %s", id)
		}
	}
}

func TestRunSeedReproducible(t *testing.T) {
	in := writeFasta(t, testFasta)

	run := func() string {
		var out, errb bytes.Buffer
		if code := Run([]string{"--in", in, "--seed", "42"}, &out, &errb); code != 0 {
			t.Fatalf("exit = %d, stderr: %s", code, errb.String())
		}
		return out.String()
	}
	if a, b := run(), run(); a != b {
		t.Error("same seed produced different alignments")
	}
}

func TestRunWritesOutputFile(t *testing.T) {
	in := writeFasta(t, testFasta)
	outPath := filepath.Join(t.TempDir(), "aligned.aln")

	var out, errb bytes.Buffer
	code := Run([]string{"--in", in, "--out", outPath}, &out, &errb)
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, errb.String())
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading --out file: %v", err)
	}
	if !strings.Contains(string(data), "Seq1") {
		t.Error("file output lacks alignment rows")
	}
}

func TestRunErrors(t *testing.T) {
	in := writeFasta(t, testFasta)
	cases := []struct {
		name string
		argv []string
		code int
	}{
		{"missing input", []string{}, 2},
		{"unreadable input", []string{"--in", "no-such.fasta"}, 2},
		{"negative gap open", []string{"--in", in, "-o", "-3"}, 2},
		{"unknown flag", []string{"--in", in, "--bogus"}, 2},
	}
	for _, c := range cases {
		var out, errb bytes.Buffer
		if code := Run(c.argv, &out, &errb); code != c.code {
			t.Errorf("%s: exit = %d, want %d (stderr %q)", c.name, code, c.code, errb.String())
		}
	}
}

func TestRunTooFewSequences(t *testing.T) {
	in := writeFasta(t, ">only\nMKTAY\n")

	var out, errb bytes.Buffer
	if code := Run([]string{"--in", in}, &out, &errb); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(errb.String(), "two sequences") {
		t.Errorf("stderr = %q", errb.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run([]string{"--version"}, &out, &errb); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(out.String(), "fengdoolittle version") {
		t.Errorf("stdout = %q", out.String())
	}
}
