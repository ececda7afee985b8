package submat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"phylo/seq"
)

// Parse reads a matrix in the plain-text table format: the residue alphabet
// on the first line, the table size on the second, then one line per residue
// prefixed by the size and followed by the row of integer scores, closed by
// a '#' line. Residues absent from the file score zero.
func Parse(r io.Reader) (Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	residues, err := nextLine(sc)
	if err != nil {
		return Matrix{}, fmt.Errorf("matrix header: %w", err)
	}
	sizeLine, err := nextLine(sc)
	if err != nil {
		return Matrix{}, fmt.Errorf("matrix size: %w", err)
	}
	size, err := strconv.Atoi(strings.TrimSpace(sizeLine))
	if err != nil || size <= 0 || size != len(residues) {
		return Matrix{}, fmt.Errorf("matrix size %q does not match %d residues", sizeLine, len(residues))
	}

	var scores [n * n]int
	for i := 0; i < size; i++ {
		line, err := nextLine(sc)
		if err != nil {
			return Matrix{}, fmt.Errorf("matrix row %d: %w", i+1, err)
		}
		fields := strings.Fields(line)
		if len(fields) != size+1 {
			return Matrix{}, fmt.Errorf("matrix row %d: want %d scores, got %d", i+1, size, len(fields)-1)
		}
		a := seq.CodeOf(residues[i])
		for j := 0; j < size; j++ {
			v, err := strconv.Atoi(fields[j+1])
			if err != nil {
				return Matrix{}, fmt.Errorf("matrix row %d: bad score %q", i+1, fields[j+1])
			}
			b := seq.CodeOf(residues[j])
			scores[int(a)*n+int(b)] = v
		}
	}

	m := New(func(a, b seq.Code) int { return scores[int(a)*n+int(b)] })
	return m, nil
}

func nextLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

// ParseFile reads a matrix file in the Parse format.
func ParseFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, err
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Format writes the matrix in the Parse format over the full alphabet.
func Format(w io.Writer, m Matrix) error {
	if _, err := fmt.Fprintf(w, "%s\n%d\n", seq.Alphabet, n); err != nil {
		return err
	}
	for a := 0; a < n; a++ {
		if _, err := fmt.Fprintf(w, "%d", n); err != nil {
			return err
		}
		for b := 0; b < n; b++ {
			s := m.ScoreCode(seq.Code(a), seq.Code(b))
			pad := ""
			if s >= 0 && s < 10 {
				pad = " "
			}
			if _, err := fmt.Fprintf(w, "%s %d ", pad, s); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "#")
	return err
}

// String renders the matrix in the Parse format.
func (m Matrix) String() string {
	var b strings.Builder
	_ = Format(&b, m)
	return b.String()
}
