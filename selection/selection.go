// Package selection holds a set of country codes. The dashboard keeps two
// independent sets, one for chart inclusion and one for pie labels.
package selection

import (
	"sort"

	"github.com/andareed/popviz/registry"
)

// DefaultTopN is how many ranked countries are selected on first load.
const DefaultTopN = 10

// Set is a set of country codes. The zero value is empty and ready to use.
type Set struct {
	codes map[string]struct{}
}

// New returns a set holding codes.
func New(codes ...string) *Set {
	s := &Set{}
	for _, c := range codes {
		s.add(c)
	}
	return s
}

func (s *Set) add(code string) {
	if s.codes == nil {
		s.codes = make(map[string]struct{})
	}
	s.codes[code] = struct{}{}
}

// Toggle flips membership of code and reports whether it is now a member.
func (s *Set) Toggle(code string) bool {
	if s.Has(code) {
		delete(s.codes, code)
		return false
	}
	s.add(code)
	return true
}

// Has reports membership.
func (s *Set) Has(code string) bool {
	if s == nil {
		return false
	}
	_, ok := s.codes[code]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.codes)
}

// Clear empties the set.
func (s *Set) Clear() {
	s.codes = nil
}

// Codes returns the members sorted lexically. Useful as a cache key.
func (s *Set) Codes() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Ordered returns the members in registry order. Members unknown to the
// registry are dropped.
func (s *Set) Ordered(countries []registry.Country) []string {
	var out []string
	for _, c := range countries {
		if s.Has(c.Code) {
			out = append(out, c.Code)
		}
	}
	return out
}

// AutoSelect returns a set of the n best-ranked countries. Countries without a
// rank are never auto-selected.
func AutoSelect(countries []registry.Country, n int) *Set {
	ranked := make([]registry.Country, 0, len(countries))
	for _, c := range countries {
		if c.Rank != nil {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return *ranked[i].Rank < *ranked[j].Rank })
	if n > len(ranked) {
		n = len(ranked)
	}
	s := &Set{}
	for _, c := range ranked[:max(n, 0)] {
		s.add(c.Code)
	}
	return s
}
