package align

import (
	"sort"
	"strings"
)

// Set holds the connective surface forms known for one language.
// Multi-word forms are stored space-joined, discontinuous ones with the
// gap marker between their parts ("wenn ... auch").
type Set struct {
	forms map[string]struct{}
}

// NewSet returns a set seeded with the given forms. Empty strings and
// surrounding whitespace are dropped.
func NewSet(forms ...string) *Set {
	s := &Set{forms: make(map[string]struct{}, len(forms))}
	for _, f := range forms {
		s.Add(f)
	}
	return s
}

// Add inserts a form and reports whether it was not present before.
func (s *Set) Add(form string) bool {
	form = strings.TrimSpace(form)
	if form == "" {
		return false
	}
	if _, ok := s.forms[form]; ok {
		return false
	}
	s.forms[form] = struct{}{}
	return true
}

// Has reports whether the form is in the set.
func (s *Set) Has(form string) bool {
	_, ok := s.forms[form]
	return ok
}

// Len returns the number of forms.
func (s *Set) Len() int {
	return len(s.forms)
}

// Forms returns all forms in lexical order.
func (s *Set) Forms() []string {
	forms := make([]string, 0, len(s.forms))
	for f := range s.forms {
		forms = append(forms, f)
	}
	sort.Strings(forms)
	return forms
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{forms: make(map[string]struct{}, len(s.forms))}
	for f := range s.forms {
		c.forms[f] = struct{}{}
	}
	return c
}
