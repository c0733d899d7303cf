package ciphersuite

import (
	"fmt"
	"sync"
)

// byCode indexes the table by wire identifier. We build it at load time
// so a duplicate code (a data entry error in the table) panics on
// startup instead of shadowing an entry silently.
var byCode = make(map[uint32]*Suite, len(suites))

// NullSuite is the TLS_NULL_WITH_NULL_NULL suite (code 0x0000): no
// encryption, no authentication. It is a useful value for connection
// state before negotiation completes.
var NullSuite *Suite

func init() {
	for _, s := range suites {
		if _, ok := byCode[s.code]; ok {
			panic(fmt.Sprintf(
				"ciphersuite: duplicate code %#04x in table", s.code))
		}
		byCode[s.code] = s
	}

	NullSuite = byCode[0x0000]
}

// ByCode returns the suite with the given wire identifier.
//
// An unknown code is a normal condition, not an error: the wire can
// carry suites newer than this table, and it is up to the caller to
// decide whether that matters.
func ByCode(code uint32) (*Suite, bool) {
	s, ok := byCode[code]
	return s, ok
}

// The name index is built lazily: computing every canonical name is
// only worth it if somebody actually looks one up.
var (
	byNameOnce sync.Once
	byName     map[string]*Suite
)

// ByName returns the suite with the given canonical name. The match is
// exact and case-sensitive.
func ByName(name string) (*Suite, bool) {
	byNameOnce.Do(func() {
		byName = make(map[string]*Suite, len(suites))
		for _, s := range suites {
			byName[s.Name()] = s
		}
	})
	s, ok := byName[name]
	return s, ok
}

// Suites returns all the known suites, in table order. The returned
// slice is shared: callers must not modify it.
func Suites() []*Suite {
	return suites
}
