package deps

import (
	"reflect"
	"testing"

	"github.com/mlutz/depline/pkg/errors"
)

func TestExtract_SingleListing(t *testing.T) {
	listings, err := Extract("X depends on Y Z")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("len(listings) = %d, want 1", len(listings))
	}
	if listings[0].Library != "X" {
		t.Errorf("Library = %q, want %q", listings[0].Library, "X")
	}
	if !reflect.DeepEqual(listings[0].Deps, []string{"Y", "Z"}) {
		t.Errorf("Deps = %v, want [Y Z]", listings[0].Deps)
	}
}

func TestExtract_NormalizesWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double space", "A depends on B  C", "A depends on B C"},
		{"tabs", "A \t depends on \t B", "A depends on B"},
		{"leading and trailing", "  A depends on B  ", "A depends on B"},
		{"crlf line ending", "A depends on B\r", "A depends on B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings, err := Extract(tt.input)
			if err != nil {
				t.Fatalf("Extract(%q) error = %v", tt.input, err)
			}
			if listings[0].Line != tt.want {
				t.Errorf("Line = %q, want %q", listings[0].Line, tt.want)
			}
		})
	}
}

func TestExtract_DropsInvalidLines(t *testing.T) {
	raw := "# libraries\n" +
		"\n" +
		"A depends on B\n" +
		"not a listing\n" +
		"two tokens depends on C\n" +
		"D depends on bad.dot\n" +
		"E depends on F\n"

	listings, err := Extract(raw)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	var libs []string
	for _, l := range listings {
		libs = append(libs, l.Library)
	}
	if !reflect.DeepEqual(libs, []string{"A", "E"}) {
		t.Errorf("libraries = %v, want [A E]", libs)
	}
}

func TestExtract_DeduplicatesDeps(t *testing.T) {
	listings, err := Extract("A depends on B C B D C")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !reflect.DeepEqual(listings[0].Deps, []string{"B", "C", "D"}) {
		t.Errorf("Deps = %v, want [B C D]", listings[0].Deps)
	}
	// The normalized line keeps the duplicates; only the parsed listing drops them.
	if listings[0].Line != "A depends on B C B D C" {
		t.Errorf("Line = %q", listings[0].Line)
	}
}

func TestExtract_IdentifierGrammar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"at and dollar", "@scope depends on $http", true},
		{"underscore", "_a depends on b_c", true},
		{"hyphen in dep", "a depends on left-pad", true},
		{"leading digit library", "2a depends on b", false},
		{"dot in dep", "a depends on b.c", false},
		{"missing deps", "a depends on", false},
		{"wrong keyword case", "a Depends on b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseLine(tt.input)
			if ok != tt.valid {
				t.Errorf("parseLine(%q) ok = %v, want %v", tt.input, ok, tt.valid)
			}
		})
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain words", "hello\nworld"},
		{"empty string", ""},
		{"keyword without surrounding spaces", "a_depends_on_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.input)
			if !errors.Is(err, errors.ErrCodeEmptyInput) {
				t.Errorf("Extract(%q) code = %v, want EMPTY_INPUT", tt.input, errors.GetCode(err))
			}
		})
	}
}

func TestExtract_NoValidListings(t *testing.T) {
	// The keyword occurs, but no line survives validation.
	_, err := Extract("the system depends on nothing!")
	if !errors.Is(err, errors.ErrCodeNoValidListings) {
		t.Errorf("code = %v, want NO_VALID_LISTINGS", errors.GetCode(err))
	}
}
