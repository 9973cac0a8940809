package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calliecameron/toolstack/pkg/render"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format     string // dot, svg, or png
	output     string // output file path (stdout if empty, dot only)
	configFile string // restrict the graph to one configuration
}

// graphCommand creates the graph command, which renders the registry's
// dependency graph.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the registry dependency graph",
		Long: `Render the registry's dependency graph.

File types are drawn as ellipses and tools as boxes. Solid edges run from a
file type to the tools it implies; dashed edges from a tool to the file
types its configuration lives in; dotted edges to installers and required
tools.

Examples:
  toolstack graph                          # DOT to stdout
  toolstack graph --format svg -o deps.svg
  toolstack graph --config .toolstack.yml  # only the configured subset`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format (dot, svg, or png)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "restrict the graph to this configuration")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, opts graphOpts) error {
	renderOpts := render.Options{}
	if opts.configFile != "" {
		cfg, err := readConfig(opts.configFile)
		if err != nil {
			return err
		}
		renderOpts.FileTypes = cfg.FileTypes
		renderOpts.Tools = cfg.Tools
	}

	dot := render.ToDOT(renderOpts)

	var data []byte
	var err error
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.SVG(ctx, dot)
	case "png":
		data, err = render.PNG(ctx, dot)
	default:
		return fmt.Errorf("unknown format %q (expected dot, svg, or png)", opts.format)
	}
	if err != nil {
		return fmt.Errorf("render graph: %w", err)
	}

	if opts.output == "" {
		if opts.format == "png" {
			return fmt.Errorf("png output requires --output")
		}
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	printSuccess("Rendered registry graph")
	printFile(opts.output)
	return nil
}
