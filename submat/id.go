package submat

import "strings"

// ID names a substitution matrix in the built-in catalog.
type ID int

const (
	Identity ID = iota
	BLOSUM30
	BLOSUM35
	BLOSUM40
	BLOSUM45
	BLOSUM50
	BLOSUM55
	BLOSUM62
	BLOSUM65
	BLOSUM70
	BLOSUM75
	BLOSUM80
	BLOSUM90
	PAM20
	PAM60
	PAM120
	PAM160
	PAM250
	PAM350
	MD40
	MD120
	MD250
	MD350
	GON40
	GON80
	GON120
	GON160
	GON250
	GON300
	GON350
)

var idNames = map[ID]string{
	Identity: "IDENTITY",
	BLOSUM30: "BLOSUM30", BLOSUM35: "BLOSUM35", BLOSUM40: "BLOSUM40",
	BLOSUM45: "BLOSUM45", BLOSUM50: "BLOSUM50", BLOSUM55: "BLOSUM55",
	BLOSUM62: "BLOSUM62", BLOSUM65: "BLOSUM65", BLOSUM70: "BLOSUM70",
	BLOSUM75: "BLOSUM75", BLOSUM80: "BLOSUM80", BLOSUM90: "BLOSUM90",
	PAM20: "PAM20", PAM60: "PAM60", PAM120: "PAM120",
	PAM160: "PAM160", PAM250: "PAM250", PAM350: "PAM350",
	MD40: "MD40", MD120: "MD120", MD250: "MD250", MD350: "MD350",
	GON40: "GON40", GON80: "GON80", GON120: "GON120",
	GON160: "GON160", GON250: "GON250", GON300: "GON300", GON350: "GON350",
}

// String returns the canonical name of the matrix.
func (id ID) String() string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return "IDENTITY"
}

// ParseID maps a matrix name (case-insensitive) to its ID. Unknown names
// fall back to Identity.
func ParseID(s string) ID {
	want := strings.ToUpper(strings.TrimSpace(s))
	want = strings.TrimSuffix(want, ".DAT")
	for id, name := range idNames {
		if name == want {
			return id
		}
	}
	return Identity
}

// ByID returns the catalog matrix for id. Grades without an embedded
// table resolve to the nearest embedded grade of the same character:
// PAM20 scores with the PAM30 table, PAM60 with PAM70, PAM350 with
// PAM250, intermediate BLOSUM grades with the nearest of BLOSUM30, 45,
// 62 and 80, and the MD and GON series with the PAM grade of matching
// divergence.
func ByID(id ID) Matrix {
	switch id {
	case BLOSUM30, BLOSUM35:
		return blosum30
	case BLOSUM40, BLOSUM45, BLOSUM50:
		return blosum45
	case BLOSUM55, BLOSUM62, BLOSUM65:
		return blosum62
	case BLOSUM70, BLOSUM75, BLOSUM80, BLOSUM90:
		return blosum80
	case PAM20, MD40, GON40:
		return pam30
	case PAM60, GON80:
		return pam70
	case PAM120, PAM160, MD120, GON120, GON160:
		return pam120
	case PAM250, PAM350, MD250, MD350, GON250, GON300, GON350:
		return pam250
	default:
		return identity
	}
}
