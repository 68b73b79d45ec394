package deps

// Expand replaces every library's direct dependency sequence with its full
// transitive sequence and returns the same structure. Expansion is total:
// any structure accepted by Build terminates, including graphs with
// indirect cycles.
//
// For a library L the resulting sequence starts with L's direct
// dependencies in input order, followed by transitively discovered
// identifiers in depth-first left-to-right order. Each identifier appears
// at most once, and L itself never appears in its own sequence: an edge
// pointing back to the library under expansion is skipped entirely, which
// is what terminates cyclic walks.
//
// Every library's closure is computed from the original direct edges, not
// from sequences expanded earlier in the same pass, so the result is
// independent of key order and a second Expand is a no-op.
func Expand(s *Structure) *Structure {
	direct := s.directEdges()
	for _, lib := range s.order {
		s.deps[lib] = closure(lib, direct)
	}
	return s
}

// closure computes the expanded sequence for one library by walking the
// direct edges depth-first. The sequence is seeded with the library's own
// direct dependencies, mirroring how the notation already lists them.
func closure(lib string, direct map[string][]string) []string {
	out := make([]string, 0, len(direct[lib]))
	seen := make(map[string]struct{}, len(direct[lib]))
	for _, dep := range direct[lib] {
		seen[dep] = struct{}{}
		out = append(out, dep)
	}

	var walk func(frontier []string)
	walk = func(frontier []string) {
		for _, dep := range frontier {
			if dep == lib {
				// Cycle back to the library under expansion: drop the
				// edge and everything behind it.
				continue
			}
			if _, ok := seen[dep]; !ok {
				seen[dep] = struct{}{}
				out = append(out, dep)
			}
			sub, defined := direct[dep]
			if !defined {
				continue // leaf: referenced but never defined
			}
			// The library itself passes this filter (it is never
			// appended, so never seen); walk drops it at the cycle
			// check above.
			next := unseen(sub, seen)
			if len(next) > 0 {
				walk(next)
			}
		}
	}
	walk(direct[lib])

	return out
}

// unseen filters candidates down to identifiers not yet in the growing
// sequence.
func unseen(candidates []string, seen map[string]struct{}) []string {
	var next []string
	for _, c := range candidates {
		if _, ok := seen[c]; !ok {
			next = append(next, c)
		}
	}
	return next
}
