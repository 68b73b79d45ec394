package deps

import (
	"strings"

	"github.com/mlutz/depline/pkg/errors"
)

// keyword is the literal phrase separating a library from its dependency
// list. Extract refuses input that never contains it, so documents with no
// hint of dependency data fail fast with a clear message.
const keyword = " depends on "

// Listing is one validated input line: a library and its direct
// dependencies. Deps is deduplicated preserving first occurrence.
// Line retains the whitespace-normalized source line for echoing the
// interpreted input back to the user.
type Listing struct {
	Library string
	Deps    []string
	Line    string
}

// Extract splits raw text into normalized candidate lines and returns the
// grammar-valid dependency listings in input order.
//
// Lines are split on newlines (a trailing carriage return is stripped),
// runs of whitespace are collapsed to single spaces, and leading/trailing
// space is trimmed. A normalized line is valid when it has the shape
//
//	<Identifier> depends on <Identifier>( <Identifier>)*
//
// with every token a valid identifier. Non-matching lines are silently
// dropped; this is how commentary, blank lines, and malformed
// declarations are ignored rather than rejected.
//
// Extract fails with EMPTY_INPUT when the literal phrase " depends on "
// never occurs in raw, and with NO_VALID_LISTINGS when the phrase occurs
// but no line survives validation.
func Extract(raw string) ([]Listing, error) {
	if !strings.Contains(raw, keyword) {
		return nil, errors.New(errors.ErrCodeEmptyInput,
			"No dependency data found: input never says %q.", strings.TrimSpace(keyword))
	}

	var listings []Listing
	for _, line := range strings.Split(raw, "\n") {
		if l, ok := parseLine(line); ok {
			listings = append(listings, l)
		}
	}

	if len(listings) == 0 {
		return nil, errors.New(errors.ErrCodeNoValidListings,
			"Invalid dependency data: No valid listings found.")
	}
	return listings, nil
}

// parseLine normalizes one physical line and parses it into a Listing.
// It reports false for lines that do not match the listing grammar.
func parseLine(line string) (Listing, bool) {
	// strings.Fields collapses whitespace runs and trims in one pass;
	// it also swallows a trailing \r from CRLF input.
	tokens := strings.Fields(line)
	if len(tokens) < 4 || tokens[1] != "depends" || tokens[2] != "on" {
		return Listing{}, false
	}
	if !errors.IsIdentifier(tokens[0]) {
		return Listing{}, false
	}
	for _, tok := range tokens[3:] {
		if !errors.IsIdentifier(tok) {
			return Listing{}, false
		}
	}

	return Listing{
		Library: tokens[0],
		Deps:    dedupe(tokens[3:]),
		Line:    strings.Join(tokens, " "),
	}, true
}

// dedupe removes repeated identifiers, keeping first-occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
