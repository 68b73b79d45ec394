// Package deps implements the depline core: a pure text-to-text transform
// that expands a line-oriented description of direct library dependencies
// into the full transitive closure of every listed library.
//
// # Notation
//
// Input documents use one listing per line:
//
//	<Library> depends on <Dep1> <Dep2> ... <DepN>
//
// Blank lines and lines that do not match the grammar are ignored, not
// rejected, as long as at least one conforming line exists. Identifiers
// start with a letter, underscore, dollar sign, or at sign and continue
// with those characters, digits, or hyphens.
//
// # Pipeline
//
// The package is a strict four-stage pipeline, composed by [Process]:
//
//  1. [Extract] splits raw text into normalized lines and keeps those
//     matching the grammar.
//  2. [Build] converts the listings into a direct-dependency [Structure],
//     rejecting duplicate and self-referential definitions.
//  3. [Expand] replaces each library's direct sequence with its full
//     transitive sequence, preserving discovery order.
//  4. [Format] renders the structure back into the canonical notation.
//
// Each stage only depends on earlier stages. All stages are synchronous
// and allocate their own state, so concurrent Process calls are safe.
//
// # Order guarantee
//
// An expanded sequence lists a library's direct dependencies first, in
// input order, followed by transitive dependencies in depth-first
// left-to-right discovery order. Expansion is deterministic: the same
// input always produces byte-identical output. Cyclic inputs terminate
// because a library is never appended to (or walked from) its own
// sequence.
package deps
