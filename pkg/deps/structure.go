package deps

import (
	"slices"

	"github.com/mlutz/depline/pkg/errors"
)

// Structure is an insertion-ordered mapping from library identifiers to
// their currently-known dependency sequences. After Build the sequences
// hold direct dependencies only; Expand replaces them with full
// transitive sequences. Key order is the order libraries were first
// defined in the input and is never changed by expansion.
//
// Libraries that appear only on the right-hand side of listings are
// leaves: they are never keys and contribute no lines to formatted
// output.
//
// Structure is not safe for concurrent mutation; each pipeline run
// builds and discards its own instance.
type Structure struct {
	order []string
	deps  map[string][]string
}

// NewStructure creates an empty dependency structure.
func NewStructure() *Structure {
	return &Structure{deps: make(map[string][]string)}
}

// Libraries returns the defined library identifiers in insertion order.
// The returned slice is shared; callers must not modify it.
func (s *Structure) Libraries() []string { return s.order }

// Deps returns the dependency sequence for lib and whether lib is defined.
func (s *Structure) Deps(lib string) ([]string, bool) {
	d, ok := s.deps[lib]
	return d, ok
}

// Len returns the number of defined libraries.
func (s *Structure) Len() int { return len(s.order) }

// add registers lib with its dependency sequence. The caller guarantees
// lib is not already present.
func (s *Structure) add(lib string, deps []string) {
	s.order = append(s.order, lib)
	s.deps[lib] = deps
}

// directEdges returns a copy of the mapping suitable for iteration while
// the structure itself is being rewritten.
func (s *Structure) directEdges() map[string][]string {
	edges := make(map[string][]string, len(s.deps))
	for lib, d := range s.deps {
		edges[lib] = slices.Clone(d)
	}
	return edges
}

// Build converts validated listings into a direct-dependency structure.
// Each listing's library becomes a key, in listing order, with its
// deduplicated dependency sequence as the value. No expansion happens
// here.
//
// Build fails with DUPLICATE_LIBRARY when the same library is defined by
// two or more listings, and with SELF_DEPENDENCY when a listing names
// itself among its dependencies.
func Build(listings []Listing) (*Structure, error) {
	s := NewStructure()
	for _, l := range listings {
		if _, defined := s.deps[l.Library]; defined {
			return nil, errors.New(errors.ErrCodeDuplicateLibrary,
				"Invalid dependency data: Library %q is defined more than once.", l.Library)
		}
		if slices.Contains(l.Deps, l.Library) {
			return nil, errors.New(errors.ErrCodeSelfDependency,
				"Invalid dependency data: A library directly depends on itself.")
		}
		s.add(l.Library, slices.Clone(l.Deps))
	}
	return s, nil
}
