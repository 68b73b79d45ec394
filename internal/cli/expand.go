package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlutz/depline/pkg/errors"
	"github.com/mlutz/depline/pkg/pipeline"
)

// expandOpts holds the command-line flags for the expand command.
type expandOpts struct {
	normalized bool   // print the normalized input instead of the expansion
	output     string // output file path (stdout if empty)
	noCache    bool   // bypass the result cache
}

// expandCommand creates the expand command.
func (c *CLI) expandCommand() *cobra.Command {
	var opts expandOpts

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand a dependency document to full transitive closures",
		Long: `Expand a dependency document to full transitive closures.

Reads listings in the "X depends on Y Z" notation from a file, or from
stdin when the argument is "-" or omitted, and prints each library's line
with the complete transitive dependency set in discovery order.

Examples:
  depline expand deps.txt
  cat deps.txt | depline expand
  depline expand deps.txt --normalized   # echo what was interpreted`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return c.runExpand(cmd.Context(), source, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.normalized, "normalized", false, "print the normalized input instead of the expansion")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runExpand reads the document, runs the pipeline, and writes the result.
func (c *CLI) runExpand(ctx context.Context, source string, opts expandOpts) error {
	raw, err := readSource(source)
	if err != nil {
		return fmt.Errorf("read %s: %w", sourceName(source), err)
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	res, err := runner.Process(ctx, raw, pipeline.Options{NoCache: opts.noCache})
	if err != nil {
		// Data errors carry a message meant for the user; show it bare.
		if errors.IsDataError(err) {
			return fmt.Errorf("%s", errors.UserMessage(err))
		}
		return err
	}
	prog.done(fmt.Sprintf("Expanded %s", sourceName(source)))

	out := res.ExpandedOutput
	if opts.normalized {
		out = res.NormalizedInput
	}
	return writeOutput(out, opts.output)
}

// readSource reads the raw document from a file or stdin ("-").
func readSource(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(source)
	return string(data), err
}

// sourceName names the input source for messages.
func sourceName(source string) string {
	if source == "-" {
		return "stdin"
	}
	return source
}

// writeOutput writes text (with a trailing newline) to path or stdout.
func writeOutput(text, path string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	return os.WriteFile(path, []byte(text+"\n"), 0644)
}
