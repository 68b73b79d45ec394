package deps

import "strings"

// Format renders the structure back into the canonical listing notation:
// one line per defined library, in key insertion order, joined with
// newlines and without a trailing newline. Leaves (identifiers that only
// ever appear as dependencies) produce no lines of their own.
func Format(s *Structure) string {
	lines := make([]string, 0, s.Len())
	for _, lib := range s.Libraries() {
		deps, _ := s.Deps(lib)
		lines = append(lines, lib+keyword+strings.Join(deps, " "))
	}
	return strings.Join(lines, "\n")
}
