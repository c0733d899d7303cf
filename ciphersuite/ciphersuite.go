// Package ciphersuite is a reference table of TLS cipher suites, for
// classification and reporting purposes.
//
// It maps the numeric identifiers seen in ClientHello/ServerHello
// messages to their IANA-registered names and algorithm components, and
// derives a few properties from them (forward secrecy, AEAD, anonymous
// authentication). It describes algorithms, it does not implement any.
package ciphersuite

import (
	"strings"

	"blitiri.com.ar/go/tlsinfo/internal/set"
)

// Suite is a single cipher suite: a coded combination of key exchange,
// authentication, cipher, mode and MAC algorithms.
//
// Suites are immutable, and are only created as part of the built-in
// table; use ByCode or ByName to find one.
type Suite struct {
	// Wire identifier. Two bytes for TLS suites; legacy SSL2 "CK"
	// identifiers take three bytes and are kept as opaque integers.
	code uint32

	// Algorithm tokens. kx and auth may each be empty: PSK-family
	// suites carry the algorithm in auth only, and plain-RSA suites in
	// kx only. The KeyExchange and Auth accessors resolve this.
	kx     string
	auth   string
	cipher string
	mode   string
	mac    string

	// Overrides for suites whose registered name or cipher+mode token
	// does not follow the usual construction rules.
	name     string
	encoding string
}

// Code returns the suite's wire identifier.
func (s *Suite) Code() uint32 { return s.code }

// Cipher returns the bulk/stream cipher token, e.g. "AES_128".
func (s *Suite) Cipher() string { return s.cipher }

// Mode returns the block cipher mode token, e.g. "CBC" or "GCM"; it is
// empty for stream and NULL ciphers.
func (s *Suite) Mode() string { return s.mode }

// MAC returns the MAC algorithm token, e.g. "SHA256". It is empty for
// CCM-family suites, where authentication is part of the AEAD
// construction rather than a separate MAC.
func (s *Suite) MAC() string { return s.mac }

// KeyExchange returns the key exchange algorithm, e.g. "ECDHE".
func (s *Suite) KeyExchange() string {
	if s.kx == "" {
		// PSK-family suites store the algorithm in auth only.
		return s.auth
	}
	return s.kx
}

// Auth returns the authentication algorithm, e.g. "ECDSA".
func (s *Suite) Auth() string {
	if s.auth == "" {
		// Plain-RSA suites store the algorithm in kx only.
		return s.kx
	}
	return s.auth
}

// KxAuth returns the combined key exchange and authentication token, as
// "KeyExchangeAlgorithm" in the RFCs: "DHE_RSA", or just "PSK" when a
// single token covers both.
func (s *Suite) KxAuth() string {
	if s.auth == "" {
		return s.kx
	}
	if s.kx == "" {
		return s.auth
	}
	return s.kx + "_" + s.auth
}

// Encoding returns the combined cipher and mode token, e.g.
// "AES_128_CBC". A few suites override it because their registered
// token is not the straight concatenation (e.g. "RC2_CBC_40").
func (s *Suite) Encoding() string {
	if s.encoding != "" {
		return s.encoding
	}
	if s.mode == "" {
		return s.cipher
	}
	return s.cipher + "_" + s.mode
}

// Name returns the canonical suite name as registered in the RFCs, e.g.
// "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256". Non-standard entries (SSL2
// suites, markers, pre-standard drafts) carry an explicit name instead.
func (s *Suite) Name() string {
	if s.name != "" {
		return s.name
	}
	name := "TLS_" + s.KxAuth() + "_WITH_" + s.Encoding()
	if s.mac != "" {
		name += "_" + s.mac
	}
	return name
}

func (s *Suite) String() string {
	return s.Name()
}

var macSizes = map[string]int{
	"MD5":    16,
	"SHA":    20,
	"SHA256": 32,
	"SHA384": 48,
}

// MACSize returns the MAC output size in bytes, or 0 when the suite has
// no separate MAC (AEAD suites) or the token is unknown.
func (s *Suite) MACSize() int {
	return macSizes[s.mac]
}

var blockSizes = map[string]int{
	"3DES_EDE":         8,
	"AES_128":          16,
	"AES_256":          16,
	"ARIA":             16,
	"CAMELLIA_128":     16,
	"CAMELLIA_256":     16,
	"CHACHA20":         64,
	"DES":              8,
	"DES40":            8,
	"IDEA":             8,
	"IDEA_128":         16,
	"RC2_40":           8,
	"RC2_128":          8,
	"RC2_128_EXPORT40": 8,
	"SEED":             16,
}

// Stream ciphers with no block size at all, as opposed to ciphers
// merely missing from blockSizes.
var noBlockSize = set.NewString("RC4_40", "RC4_128", "RC4_128_EXPORT40")

// BlockSize returns the cipher's block size in bytes, for padding
// overhead calculations. RC4 variants have no block size and return
// (0, false). Ciphers missing from the table return (1, true), assuming
// a stream cipher; note that a future cipher we don't know about gets
// this default too, accurate or not.
func (s *Suite) BlockSize() (int, bool) {
	if noBlockSize.Has(s.cipher) {
		return 0, false
	}
	if size, ok := blockSizes[s.cipher]; ok {
		return size, true
	}
	return 1, true
}

// PFS returns whether the suite provides perfect forward secrecy, i.e.
// whether its key exchange is an ephemeral Diffie-Hellman variant.
func (s *Suite) PFS() bool {
	kx := s.KeyExchange()
	return kx == "DHE" || kx == "ECDHE"
}

var aeadModes = set.NewString("CCM", "CCM_8", "GCM")

// AEAD returns whether the suite uses an AEAD mode of operation.
func (s *Suite) AEAD() bool {
	return aeadModes.Has(s.mode)
}

// Anonymous returns whether the suite does no server authentication.
func (s *Suite) Anonymous() bool {
	return strings.HasPrefix(s.Auth(), "anon")
}
