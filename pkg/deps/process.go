package deps

import "strings"

// Result is the outcome of one pipeline run.
type Result struct {
	// NormalizedInput is the grammar-valid input lines after whitespace
	// normalization, joined with newlines. It echoes back exactly what
	// was interpreted, including lines the caller may not have realized
	// would be dropped.
	NormalizedInput string `json:"normalized_input"`

	// ExpandedOutput is the formatted structure with every library's
	// full transitive dependency sequence.
	ExpandedOutput string `json:"expanded_output"`
}

// Process runs the complete extract → build → expand → format pipeline on
// a raw input document. It is the single entry point consumed by the CLI,
// the HTTP API, and the terminal editor.
//
// On failure the returned error carries one of the data error codes from
// the errors package (EMPTY_INPUT, NO_VALID_LISTINGS, DUPLICATE_LIBRARY,
// SELF_DEPENDENCY); no partial result is returned.
func Process(raw string) (*Result, error) {
	listings, err := Extract(raw)
	if err != nil {
		return nil, err
	}

	structure, err := Build(listings)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(listings))
	for i, l := range listings {
		lines[i] = l.Line
	}

	return &Result{
		NormalizedInput: strings.Join(lines, "\n"),
		ExpandedOutput:  Format(Expand(structure)),
	}, nil
}
