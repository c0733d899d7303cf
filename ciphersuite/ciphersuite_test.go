package ciphersuite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustByCode(t *testing.T, code uint32) *Suite {
	t.Helper()
	s, ok := ByCode(code)
	if !ok {
		t.Fatalf("code %#04x not in table", code)
	}
	return s
}

func TestKeyExchange(t *testing.T) {
	// A case from each RFC.
	cases := []struct {
		code uint32
		kx   string
	}{
		{0x0005, "RSA"},
		{0x0021, "KRB5"},
		{0x002d, "DHE"},
		{0x0034, "DH"},
		{0x003c, "RSA"},
		{0x0042, "DH"},
		{0x006a, "DHE"},
		{0x0084, "RSA"},
		{0x0091, "DHE"},
		{0x0098, "DH"},
		{0x00ab, "DHE"},
		{0x00b0, "PSK"},
		{0x00bb, "DH"},
		{0xc008, "ECDHE"},
		{0xc016, "ECDH"},
		{0xc01d, "SRP_SHA"},
		{0xc027, "ECDHE"},
		{0xc036, "ECDHE"},
		{0xc045, "DHE"},
		{0xc052, "DHE"},
		{0xc068, "RSA"},
		{0xc074, "ECDH"},
		{0xc08d, "ECDH"},
		{0xc09d, "RSA"},
		{0xc0a2, "DHE"},
		{0xc0ad, "ECDHE"},
		{0xcc13, "ECDHE"},
		{0xcca8, "ECDHE"},
		{0xccae, "RSA"},
	}
	for _, c := range cases {
		if kx := mustByCode(t, c.code).KeyExchange(); kx != c.kx {
			t.Errorf("%#04x: KeyExchange() = %q, expected %q",
				c.code, kx, c.kx)
		}
	}
}

func TestAuth(t *testing.T) {
	// A case from each RFC.
	cases := []struct {
		code uint32
		auth string
	}{
		{0x0005, "RSA"},
		{0x0021, "KRB5"},
		{0x002d, "PSK"},
		{0x0034, "anon"},
		{0x003c, "RSA"},
		{0x0042, "DSS"},
		{0x006a, "DSS"},
		{0x0084, "RSA"},
		{0x0091, "PSK"},
		{0x0098, "RSA"},
		{0x00ab, "PSK"},
		{0x00b0, "PSK"},
		{0x00bb, "DSS"},
		{0xc008, "ECDSA"},
		{0xc016, "anon"},
		{0xc01d, "SRP_SHA"},
		{0xc027, "RSA"},
		{0xc036, "PSK"},
		{0xc045, "RSA"},
		{0xc052, "RSA"},
		{0xc068, "PSK"},
		{0xc074, "ECDSA"},
		{0xc08d, "RSA"},
		{0xc09d, "RSA"},
		{0xc0a2, "RSA"},
		{0xc0ad, "ECDSA"},
		{0xcc14, "ECDSA"},
		{0xcca8, "RSA"},
		{0xccae, "PSK"},
	}
	for _, c := range cases {
		if auth := mustByCode(t, c.code).Auth(); auth != c.auth {
			t.Errorf("%#04x: Auth() = %q, expected %q",
				c.code, auth, c.auth)
		}
	}
}

func TestDerivedFields(t *testing.T) {
	// Full breakdown for a couple of representative suites.
	s := mustByCode(t, 0x002d)
	got := map[string]string{
		"kx":       s.KeyExchange(),
		"auth":     s.Auth(),
		"kxAuth":   s.KxAuth(),
		"encoding": s.Encoding(),
		"name":     s.Name(),
	}
	want := map[string]string{
		"kx":       "DHE",
		"auth":     "PSK",
		"kxAuth":   "DHE_PSK",
		"encoding": "NULL",
		"name":     "TLS_DHE_PSK_WITH_NULL_SHA",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("suite 0x002d mismatch (-want +got):\n%s", diff)
	}

	s = mustByCode(t, 0xc02f)
	got = map[string]string{
		"kx":       s.KeyExchange(),
		"auth":     s.Auth(),
		"kxAuth":   s.KxAuth(),
		"encoding": s.Encoding(),
		"name":     s.Name(),
	}
	want = map[string]string{
		"kx":       "ECDHE",
		"auth":     "RSA",
		"kxAuth":   "ECDHE_RSA",
		"encoding": "AES_128_GCM",
		"name":     "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("suite 0xc02f mismatch (-want +got):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	cases := []struct {
		code uint32
		name string
	}{
		// Derived names.
		{0x0005, "TLS_RSA_WITH_RC4_128_SHA"},
		{0x002d, "TLS_DHE_PSK_WITH_NULL_SHA"},
		{0x00b0, "TLS_PSK_WITH_NULL_SHA256"},
		{0xc09d, "TLS_RSA_WITH_AES_256_CCM"},
		{0xc0a2, "TLS_DHE_RSA_WITH_AES_128_CCM_8"},

		// Explicit encoding overrides.
		{0x0006, "TLS_RSA_EXPORT_WITH_RC2_CBC_40_MD5"},
		{0x0026, "TLS_KRB5_EXPORT_WITH_DES_CBC_40_SHA"},

		// Explicit name overrides.
		{0x00ff, "TLS_EMPTY_RENEGOTIATION_INFO"},
		{0x5600, "TLS_FALLBACK"},
		{0xffff, "UNKNOWN_CIPHER"},
		{0x010080, "SSL_CK_RC4_128_WITH_MD5"},
		{0x0700c0, "SSL_CK_DES_192_EDE3_CBC_WITH_MD5"},

		// The pre-standard ChaCha20 suites share all their components
		// with the RFC 7905 ones, but keep their draft-era names.
		{0xcc15, "OLD_TLS_DHE_RSA_WITH_CHACHA20_POLY1305_SHA256"},
		{0xccaa, "TLS_DHE_RSA_WITH_CHACHA20_POLY1305_SHA256"},
	}
	for _, c := range cases {
		if name := mustByCode(t, c.code).Name(); name != c.name {
			t.Errorf("%#04x: Name() = %q, expected %q",
				c.code, name, c.name)
		}
	}
}

func TestPFS(t *testing.T) {
	cases := []struct {
		name string
		pfs  bool
	}{
		{"TLS_RSA_WITH_RC4_128_SHA", false},
		{"TLS_DHE_DSS_WITH_AES_256_CBC_SHA256", true},
		{"TLS_ECDHE_ECDSA_WITH_3DES_EDE_CBC_SHA", true},
		{"TLS_ECDH_anon_WITH_RC4_128_SHA", false},
	}
	for _, c := range cases {
		s, ok := ByName(c.name)
		if !ok {
			t.Fatalf("name %q not in table", c.name)
		}
		if s.PFS() != c.pfs {
			t.Errorf("%s: PFS() = %v, expected %v", c.name, s.PFS(), c.pfs)
		}
	}
}

func TestAEAD(t *testing.T) {
	cases := []struct {
		name string
		aead bool
	}{
		{"TLS_RSA_WITH_AES_128_CBC_SHA256", false},
		{"TLS_RSA_WITH_AES_256_CCM", true},
		{"TLS_DHE_RSA_WITH_AES_128_CCM_8", true},
		{"TLS_DHE_PSK_WITH_AES_256_GCM_SHA384", true},
	}
	for _, c := range cases {
		s, ok := ByName(c.name)
		if !ok {
			t.Fatalf("name %q not in table", c.name)
		}
		if s.AEAD() != c.aead {
			t.Errorf("%s: AEAD() = %v, expected %v", c.name, s.AEAD(), c.aead)
		}
	}
}

func TestAnonymous(t *testing.T) {
	cases := []struct {
		name string
		anon bool
	}{
		{"TLS_RSA_WITH_RC4_128_SHA", false},
		{"TLS_DH_anon_WITH_AES_128_CBC_SHA", true},
		{"TLS_DH_anon_EXPORT_WITH_DES40_CBC_SHA", true},
	}
	for _, c := range cases {
		s, ok := ByName(c.name)
		if !ok {
			t.Fatalf("name %q not in table", c.name)
		}
		if s.Anonymous() != c.anon {
			t.Errorf("%s: Anonymous() = %v, expected %v",
				c.name, s.Anonymous(), c.anon)
		}
	}
}

func TestMACSize(t *testing.T) {
	cases := []struct {
		code uint32
		size int
	}{
		{0x0004, 16}, // MD5
		{0x0005, 20}, // SHA
		{0x003c, 32}, // SHA256
		{0x009d, 48}, // SHA384
		{0xc09d, 0},  // CCM, no separate MAC
		{0x5600, 0},  // marker, no MAC at all
	}
	for _, c := range cases {
		if size := mustByCode(t, c.code).MACSize(); size != c.size {
			t.Errorf("%#04x: MACSize() = %d, expected %d",
				c.code, size, c.size)
		}
	}
}

func TestBlockSize(t *testing.T) {
	cases := []struct {
		code uint32
		size int
		ok   bool
	}{
		{0x002f, 16, true},  // AES_128
		{0x000a, 8, true},   // 3DES_EDE
		{0xcca8, 64, true},  // CHACHA20
		{0x0096, 16, true},  // SEED
		{0x0005, 0, false},  // RC4_128: no block size at all
		{0x0003, 0, false},  // RC4_40
		{0xc03c, 1, true},   // ARIA_128: not in the size table, stream default
		{0x0000, 1, true},   // NULL
	}
	for _, c := range cases {
		size, ok := mustByCode(t, c.code).BlockSize()
		if size != c.size || ok != c.ok {
			t.Errorf("%#04x: BlockSize() = (%d, %v), expected (%d, %v)",
				c.code, size, ok, c.size, c.ok)
		}
	}
}

func TestString(t *testing.T) {
	s := mustByCode(t, 0x0005)
	if s.String() != "TLS_RSA_WITH_RC4_128_SHA" {
		t.Errorf("String() = %q", s.String())
	}
}
