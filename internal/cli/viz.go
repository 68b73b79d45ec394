package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mlutz/depline/pkg/deps"
	"github.com/mlutz/depline/pkg/dot"
	"github.com/mlutz/depline/pkg/errors"
)

// vizOpts holds the command-line flags for the viz command.
type vizOpts struct {
	format   string // dot or svg
	output   string // output file path (stdout if empty)
	expanded bool   // draw the expanded closure instead of direct edges
}

// vizCommand creates the viz command rendering a document as a diagram.
func (c *CLI) vizCommand() *cobra.Command {
	var opts vizOpts

	cmd := &cobra.Command{
		Use:   "viz [file]",
		Short: "Render a dependency document as a Graphviz diagram",
		Long: `Render a dependency document as a Graphviz diagram.

By default the diagram shows the direct dependency edges as written.
With --expanded, every library is connected to its full transitive
dependency set instead. Libraries that are referenced but never defined
are drawn dashed.

Examples:
  depline viz deps.txt -f svg -o deps.svg
  depline viz deps.txt --expanded            # DOT on stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			if opts.format != "dot" && opts.format != "svg" {
				return errors.New(errors.ErrCodeInvalidFormat,
					"unknown format %q (expected dot or svg)", opts.format)
			}
			return c.runViz(source, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.expanded, "expanded", false, "draw the expanded closure instead of direct edges")

	return cmd
}

func (c *CLI) runViz(source string, opts vizOpts) error {
	raw, err := readSource(source)
	if err != nil {
		return fmt.Errorf("read %s: %w", sourceName(source), err)
	}

	listings, err := deps.Extract(raw)
	if err != nil {
		return fmt.Errorf("%s", errors.UserMessage(err))
	}
	structure, err := deps.Build(listings)
	if err != nil {
		return fmt.Errorf("%s", errors.UserMessage(err))
	}
	if opts.expanded {
		deps.Expand(structure)
	}

	label := ""
	if source != "-" {
		label = filepath.Base(source)
	}
	dotText := dot.ToDOT(structure, dot.Options{Label: label})

	if opts.format == "dot" {
		return writeOutput(dotText, opts.output)
	}

	prog := newProgress(c.Logger)
	svg, err := dot.RenderSVG(dotText)
	if err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %d libraries", structure.Len()))

	if opts.output == "" {
		_, err = os.Stdout.Write(svg)
		return err
	}
	return os.WriteFile(opts.output, svg, 0644)
}
