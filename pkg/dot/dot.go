// Package dot renders a dependency structure as a Graphviz node-link
// diagram. Defined libraries are drawn as solid boxes; leaves (libraries
// referenced but never defined) are dashed and grey.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mlutz/depline/pkg/deps"
)

// Options configures DOT generation.
type Options struct {
	// Label is an optional graph title rendered below the diagram.
	Label string
}

// ToDOT converts a dependency structure to Graphviz DOT format. The edges
// drawn are whatever the structure currently holds: direct dependencies
// after Build, the full closure after Expand.
func ToDOT(s *deps.Structure, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	if opts.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Label)
	}
	buf.WriteString("\n")

	for _, lib := range s.Libraries() {
		fmt.Fprintf(&buf, "  %q;\n", lib)
	}
	for _, leaf := range leaves(s) {
		fmt.Fprintf(&buf, "  %q [style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", leaf)
	}

	buf.WriteString("\n")
	for _, lib := range s.Libraries() {
		ds, _ := s.Deps(lib)
		for _, dep := range ds {
			fmt.Fprintf(&buf, "  %q -> %q;\n", lib, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// leaves returns identifiers that appear as dependencies but are never
// defined, in first-reference order.
func leaves(s *deps.Structure) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, lib := range s.Libraries() {
		ds, _ := s.Deps(lib)
		for _, dep := range ds {
			if _, defined := s.Deps(dep); defined {
				continue
			}
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			out = append(out, dep)
		}
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
