package plugin

import "sort"

// Set is an unordered collection of unique names.
type Set map[string]struct{}

// NewSet creates a set holding the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in lexicographic order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
