package ciphersuite

import "strings"

// Grade is a coarse strength classification of a cipher suite, from A
// (modern AEAD with forward secrecy) down to F (no meaningful
// protection).
type Grade string

const (
	// GradeA: AEAD with ephemeral key exchange.
	GradeA Grade = "A"
	// GradeB: forward secrecy, but no AEAD.
	GradeB Grade = "B"
	// GradeC: no forward secrecy.
	GradeC Grade = "C"
	// GradeD: broken ciphers (DES, 3DES, RC4).
	GradeD Grade = "D"
	// GradeF: NULL, export-grade, or unauthenticated suites.
	GradeF Grade = "F"
)

// Grade ordering, best to worst.
var gradeOrder = map[Grade]int{
	GradeA: 0,
	GradeB: 1,
	GradeC: 2,
	GradeD: 3,
	GradeF: 4,
}

// WorseThan reports whether g is a lower grade than o.
func (g Grade) WorseThan(o Grade) bool {
	return gradeOrder[g] > gradeOrder[o]
}

func isExport(s *Suite) bool {
	return strings.Contains(s.KxAuth(), "EXPORT") ||
		strings.Contains(s.cipher, "EXPORT") ||
		strings.HasSuffix(s.cipher, "_40") ||
		s.cipher == "DES40"
}

// Grade classifies the suite by its components.
func (s *Suite) Grade() Grade {
	switch {
	case s.cipher == "" || s.cipher == "NULL":
		return GradeF
	case s.Anonymous() || isExport(s):
		return GradeF
	case strings.HasPrefix(s.cipher, "RC4"),
		s.cipher == "DES", s.cipher == "3DES_EDE", s.cipher == "3DES":
		return GradeD
	case s.PFS() && (s.AEAD() || s.mode == "POLY1305"):
		return GradeA
	case s.PFS():
		return GradeB
	}
	return GradeC
}
