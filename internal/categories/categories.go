// Package categories holds the fixed set of category labels offered at the
// input boundary. The store itself accepts any non-empty category; the set
// is a form-level constraint, enforced by the commands that collect input.
package categories

import "strings"

// Defaults is the built-in category set.
var Defaults = []string{"Food", "Transport", "Shopping", "Bills", "Entertainment", "Other"}

// Set provides case-insensitive lookup over category names.
type Set struct {
	names []string
	index map[string]string // lowercase -> canonical
}

// New builds a Set from names. An empty slice falls back to Defaults.
func New(names []string) *Set {
	if len(names) == 0 {
		names = Defaults
	}
	s := &Set{
		names: append([]string(nil), names...),
		index: make(map[string]string, len(names)),
	}
	for _, n := range names {
		s.index[strings.ToLower(n)] = n
	}
	return s
}

// All returns the category names in declaration order.
func (s *Set) All() []string {
	return s.names
}

// Canonical resolves a user-typed name to its canonical casing.
func (s *Set) Canonical(name string) (string, bool) {
	c, ok := s.index[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Exists reports whether name is in the set, ignoring case.
func (s *Set) Exists(name string) bool {
	_, ok := s.Canonical(name)
	return ok
}
