package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhalvorsen/transitmap/pkg/export"
	"github.com/mhalvorsen/transitmap/pkg/render"
)

// Supported export formats.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// exportCommand writes the graph in a renderable format.
func (c *CLI) exportCommand() *cobra.Command {
	var opts editOpts
	var format string
	maxNodes := export.DefaultMaxNodes

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the graph as JSON, DOT, or SVG",
		Long: `Export the graph as a JSON snapshot, Graphviz DOT source, or rendered SVG.

JSON snapshots round-trip: they can be fed back into any command via --graph.
DOT and SVG exports place stations at their map coordinates using the neato
layout engine.

Examples:
  transitmap export --dataset toronto.toml -o map.json
  transitmap export --graph map.json --format svg -o map.svg
  transitmap export --dataset toronto.toml --format dot --max-nodes 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cached, err := c.loadGraph(cmd.Context(), &opts.sourceOpts)
			if err != nil {
				return err
			}

			out, err := openOutput(opts.output)
			if err != nil {
				return err
			}
			defer out.Close()

			switch format {
			case formatJSON:
				err = export.Write(g, out, export.Options{MaxNodes: maxNodes})
			case formatDOT:
				_, err = fmt.Fprint(out, render.ToDOT(g, render.Options{MaxNodes: maxNodes}))
			case formatSVG:
				prog := newProgress(c.Logger)
				dot := render.ToDOT(g, render.Options{MaxNodes: maxNodes})
				var svg []byte
				svg, err = render.RenderSVG(cmd.Context(), dot)
				if err == nil {
					_, err = out.Write(svg)
					prog.done("Rendered SVG")
				}
			default:
				return fmt.Errorf("unknown format: %s (available: %s, %s, %s)", format, formatJSON, formatDOT, formatSVG)
			}
			if err != nil {
				return err
			}

			if opts.output != "" {
				printSuccess("Exported %s", format)
				printFile(opts.output)
				printStats(g.StationCount(), edgeCount(g), cached)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format (json, dot, svg)")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", maxNodes, "maximum stations to export")
	return cmd
}
