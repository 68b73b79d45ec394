package deps

import (
	"reflect"
	"testing"

	"github.com/mlutz/depline/pkg/errors"
)

func TestBuild_DirectEdgesOnly(t *testing.T) {
	listings := []Listing{
		{Library: "X", Deps: []string{"Y", "R"}},
		{Library: "Y", Deps: []string{"Z"}},
	}

	s, err := Build(listings)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !reflect.DeepEqual(s.Libraries(), []string{"X", "Y"}) {
		t.Errorf("Libraries() = %v, want [X Y]", s.Libraries())
	}

	deps, ok := s.Deps("X")
	if !ok || !reflect.DeepEqual(deps, []string{"Y", "R"}) {
		t.Errorf("Deps(X) = %v, %v", deps, ok)
	}

	// Z is a leaf: referenced but never defined.
	if _, ok := s.Deps("Z"); ok {
		t.Error("Deps(Z) defined, want leaf")
	}
}

func TestBuild_DuplicateLibrary(t *testing.T) {
	listings := []Listing{
		{Library: "X", Deps: []string{"Y", "R"}},
		{Library: "X", Deps: []string{"Z"}},
	}

	_, err := Build(listings)
	if !errors.Is(err, errors.ErrCodeDuplicateLibrary) {
		t.Errorf("code = %v, want DUPLICATE_LIBRARY", errors.GetCode(err))
	}
}

func TestBuild_SelfDependency(t *testing.T) {
	listings := []Listing{
		{Library: "X", Deps: []string{"X"}},
	}

	_, err := Build(listings)
	if !errors.Is(err, errors.ErrCodeSelfDependency) {
		t.Fatalf("code = %v, want SELF_DEPENDENCY", errors.GetCode(err))
	}

	want := "Invalid dependency data: A library directly depends on itself."
	if got := errors.UserMessage(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestBuild_SelfDependencyAmongOthers(t *testing.T) {
	listings := []Listing{
		{Library: "A", Deps: []string{"B"}},
		{Library: "C", Deps: []string{"B", "C", "D"}},
	}

	_, err := Build(listings)
	if !errors.Is(err, errors.ErrCodeSelfDependency) {
		t.Errorf("code = %v, want SELF_DEPENDENCY", errors.GetCode(err))
	}
}

func TestBuild_ListingsAreNotAliased(t *testing.T) {
	listings := []Listing{
		{Library: "A", Deps: []string{"B", "C"}},
	}

	s, err := Build(listings)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	listings[0].Deps[0] = "mutated"
	deps, _ := s.Deps("A")
	if deps[0] != "B" {
		t.Errorf("Deps(A)[0] = %q, structure aliases listing slice", deps[0])
	}
}
