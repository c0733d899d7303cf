// Package set implements sets, for the types this module needs (string
// and uint32).
package set

// String set.
type String struct {
	m map[string]struct{}
}

// NewString returns a new string set, with the given values in it.
func NewString(values ...string) *String {
	s := &String{}
	s.Add(values...)
	return s
}

// Add values to the string set.
func (s *String) Add(values ...string) {
	if s.m == nil {
		s.m = map[string]struct{}{}
	}

	for _, v := range values {
		s.m[v] = struct{}{}
	}
}

// Has checks if the set has the given value.
func (s *String) Has(value string) bool {
	// We explicitly allow s to be nil *in this function* to simplify callers'
	// code.  Note that Add will not tolerate it, and will panic.
	if s == nil || s.m == nil {
		return false
	}
	_, ok := s.m[value]
	return ok
}

// Uint32 set.
type Uint32 struct {
	m map[uint32]struct{}
}

// NewUint32 returns a new uint32 set, with the given values in it.
func NewUint32(values ...uint32) *Uint32 {
	s := &Uint32{}
	s.Add(values...)
	return s
}

// Add values to the uint32 set.
func (s *Uint32) Add(values ...uint32) {
	if s.m == nil {
		s.m = map[uint32]struct{}{}
	}

	for _, v := range values {
		s.m[v] = struct{}{}
	}
}

// Has checks if the set has the given value.
func (s *Uint32) Has(value uint32) bool {
	if s == nil || s.m == nil {
		return false
	}
	_, ok := s.m[value]
	return ok
}

// Len returns the number of values in the set.
func (s *Uint32) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}
