package ciphersuite

import (
	"testing"

	"blitiri.com.ar/go/tlsinfo/internal/set"
)

func TestRoundTrip(t *testing.T) {
	// Every suite must be reachable by its own code and name, and get
	// back the exact same entry.
	for _, s := range Suites() {
		byC, ok := ByCode(s.Code())
		if !ok || byC != s {
			t.Errorf("ByCode(%#04x) = (%v, %v), expected %v",
				s.Code(), byC, ok, s)
		}

		byN, ok := ByName(s.Name())
		if !ok || byN != s {
			t.Errorf("ByName(%q) = (%v, %v), expected %v",
				s.Name(), byN, ok, s)
		}
	}
}

func TestCodeUniqueness(t *testing.T) {
	// The init check panics on duplicates, so this is mostly about
	// making the property visible; it also catches a table that lost
	// rows by accident.
	codes := set.NewUint32()
	for _, s := range Suites() {
		if codes.Has(s.Code()) {
			t.Errorf("duplicate code %#04x", s.Code())
		}
		codes.Add(s.Code())
	}
	if codes.Len() != len(Suites()) {
		t.Errorf("%d unique codes for %d suites", codes.Len(), len(Suites()))
	}
	if len(Suites()) < 260 {
		t.Errorf("table has %d suites, expected at least 260", len(Suites()))
	}
}

// Markers that carry no algorithms at all; the only entries allowed to
// have both key exchange and authentication empty.
var markerCodes = set.NewUint32(0x5600, 0xffff)

func TestAlgorithmsPresent(t *testing.T) {
	for _, s := range Suites() {
		if s.KeyExchange() == "" && s.Auth() == "" {
			if !markerCodes.Has(s.Code()) {
				t.Errorf("%#04x (%s): both kx and auth empty",
					s.Code(), s.Name())
			}
		}
	}
}

func TestMACSizeRange(t *testing.T) {
	valid := map[int]bool{0: true, 16: true, 20: true, 32: true, 48: true}
	for _, s := range Suites() {
		size := s.MACSize()
		if !valid[size] {
			t.Errorf("%s: MACSize() = %d", s.Name(), size)
		}
		// Size 0 means no real MAC: an empty token (AEAD modes and
		// markers) or the literal "NULL".
		if (size == 0) != (s.MAC() == "" || s.MAC() == "NULL") {
			t.Errorf("%s: MACSize() = %d with mac = %q",
				s.Name(), size, s.MAC())
		}
	}
}

func TestAEADModes(t *testing.T) {
	for _, s := range Suites() {
		expected := s.Mode() == "CCM" || s.Mode() == "CCM_8" ||
			s.Mode() == "GCM"
		if s.AEAD() != expected {
			t.Errorf("%s: AEAD() = %v with mode %q",
				s.Name(), s.AEAD(), s.Mode())
		}
	}
}

func TestNotFound(t *testing.T) {
	if s, ok := ByCode(0x1234); ok {
		t.Errorf("ByCode(0x1234) = %v, expected not found", s)
	}
	if s, ok := ByName("TLS_NOT_A_REAL_SUITE"); ok {
		t.Errorf("ByName(non-existent) = %v, expected not found", s)
	}
}

func TestNullSuite(t *testing.T) {
	if NullSuite.Code() != 0x0000 {
		t.Errorf("NullSuite.Code() = %#04x", NullSuite.Code())
	}
	if NullSuite.Name() != "TLS_NULL_WITH_NULL_NULL" {
		t.Errorf("NullSuite.Name() = %q", NullSuite.Name())
	}
	if s, _ := ByCode(0x0000); s != NullSuite {
		t.Errorf("ByCode(0x0000) = %v, expected NullSuite", s)
	}
}
