// Package seq provides amino-acid codes and protein sequences.
package seq

import "strings"

// Code is the numeric index of an amino acid in the internal alphabet.
type Code int

// Amino-acid codes, in alphabet order.
const (
	Ala Code = iota // A
	Arg             // R
	Asn             // N
	Asp             // D
	Cys             // C
	Glu             // E
	Gln             // Q
	Gly             // G
	His             // H
	Ile             // I
	Leu             // L
	Lys             // K
	Met             // M
	Phe             // F
	Pro             // P
	Ser             // S
	Thr             // T
	Trp             // W
	Tyr             // Y
	Val             // V
	Sec             // U, selenocysteine
	Pyl             // O, pyrrolysine
	Asx             // B, Asn or Asp
	Glx             // Z, Gln or Glu
	Xle             // J, Leu or Ile
	Xaa             // X, any
)

// Alphabet lists the one-letter codes in Code order.
const Alphabet = "ARNDCEQGHILKMFPSTWYVUOBZJX"

// AlphabetSize is the number of distinct amino-acid codes.
const AlphabetSize = len(Alphabet)

// GapByte is the character used for alignment gaps.
const GapByte = '-'

var letter3 = [AlphabetSize]string{
	"Ala", "Arg", "Asn", "Asp", "Cys", "Glu", "Gln", "Gly", "His", "Ile",
	"Leu", "Lys", "Met", "Phe", "Pro", "Ser", "Thr", "Trp", "Tyr", "Val",
	"Sec", "Pyl", "Asx", "Glx", "Xle", "Xaa",
}

var fullName = [AlphabetSize]string{
	"Alanine", "Arginine", "Asparagine", "Aspartic acid", "Cysteine",
	"Glutamic acid", "Glutamine", "Glycine", "Histidine", "Isoleucine",
	"Leucine", "Lysine", "Methionine", "Phenylalanine", "Proline",
	"Serine", "Threonine", "Tryptophan", "Tyrosine", "Valine",
	"Selenocysteine", "Pyrrolysine", "Asparagine or aspartic acid",
	"Glutamine or glutamic acid", "Leucine or isoleucine", "Unknown",
}

var codeOf [256]Code

func init() {
	for i := range codeOf {
		codeOf[i] = Xaa
	}
	for i := 0; i < AlphabetSize; i++ {
		upper := Alphabet[i]
		codeOf[upper] = Code(i)
		codeOf[upper+'a'-'A'] = Code(i)
	}
}

// CodeOf maps a one-letter residue to its Code. Unknown letters map to Xaa.
func CodeOf(letter byte) Code { return codeOf[letter] }

// Letter returns the one-letter code of c, or 'X' when out of range.
func (c Code) Letter() byte {
	if c < 0 || int(c) >= AlphabetSize {
		return 'X'
	}
	return Alphabet[c]
}

// Letter3 returns the three-letter code of c.
func (c Code) Letter3() string {
	if c < 0 || int(c) >= AlphabetSize {
		return letter3[Xaa]
	}
	return letter3[c]
}

// Name returns the full amino-acid name of c.
func (c Code) Name() string {
	if c < 0 || int(c) >= AlphabetSize {
		return fullName[Xaa]
	}
	return fullName[c]
}

// CodeOfLetter3 maps a three-letter code ("Ala", case-insensitive) to its
// Code. Unknown strings map to Xaa.
func CodeOfLetter3(s string) Code {
	for i, l3 := range letter3 {
		if strings.EqualFold(s, l3) {
			return Code(i)
		}
	}
	return Xaa
}

// Fold normalizes raw residue text: letters are upper-cased, gaps are kept,
// and anything outside the alphabet becomes 'X'.
func Fold(residues string) string {
	var b strings.Builder
	b.Grow(len(residues))
	for i := 0; i < len(residues); i++ {
		ch := residues[i]
		switch {
		case ch == GapByte:
			b.WriteByte(GapByte)
		default:
			b.WriteByte(CodeOf(ch).Letter())
		}
	}
	return b.String()
}
