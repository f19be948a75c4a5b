package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhalvorsen/transitmap/pkg/transit"
)

// stationsCommand lists stations with their ridership and line labels.
// Positional arguments restrict the listing to stations serving at least
// one of the named lines.
func (c *CLI) stationsCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "stations [line...]",
		Short: "List stations with ridership and lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cached, err := c.loadGraph(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			for _, s := range g.Stations(args) {
				labels := strings.Join(s.Lines(), ", ")
				if labels == "" {
					labels = "no lines"
				}
				fmt.Println(StyleValue.Render(string(s.ID())) + "  " +
					StyleNumber.Render(fmt.Sprintf("%d", s.Riders())) + " riders  " +
					StyleDim.Render(labels))
			}
			printStats(g.StationCount(), edgeCount(g), cached)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// linesCommand lists every line label present in the graph.
func (c *CLI) linesCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "lines",
		Short: "List all line labels in the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			lines := g.Lines()
			for _, name := range lines {
				count := len(g.Stations([]string{name}))
				fmt.Println(StyleValue.Render(name) + "  " +
					StyleDim.Render(fmt.Sprintf("%d stations", count)))
			}
			printDetail("%d lines", len(lines))
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// neighboursCommand lists the stations directly connected to one station.
func (c *CLI) neighboursCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "neighbours <station>",
		Short: "List stations directly connected to a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			nbs, err := g.Neighbours(transit.StationID(args[0]))
			if err != nil {
				return err
			}
			for _, id := range nbs {
				fmt.Println(StyleValue.Render(string(id)))
			}
			printDetail("%d neighbours", len(nbs))
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// adjacentCommand reports whether two stations share an edge.
func (c *CLI) adjacentCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "adjacent <station> <station>",
		Short: "Check whether two stations are directly connected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			a, b := transit.StationID(args[0]), transit.StationID(args[1])
			if g.Adjacent(a, b) {
				printSuccess("%s and %s are adjacent", a, b)
			} else {
				printInfo("%s and %s are not adjacent", a, b)
			}
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// pathCommand searches for a route between two stations and prints it.
func (c *CLI) pathCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find a route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			from, to := transit.StationID(args[0]), transit.StationID(args[1])
			path, ok := g.ConnectedPath(from, to)
			if !ok {
				printWarning("No route from %s to %s", from, to)
				return nil
			}

			hops := make([]string, len(path))
			for i, id := range path {
				hops[i] = string(id)
			}
			fmt.Println(StyleValue.Render(strings.Join(hops, " "+iconArrow+" ")))
			printDetail("%d stops", len(path))
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// spreadCommand prints the population standard deviation of ridership.
// Positional arguments restrict the statistic to stations serving at least
// one of the named lines.
func (c *CLI) spreadCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "spread [line...]",
		Short: "Show the spread (standard deviation) of station ridership",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			spread := g.SpreadOfRidership(args)
			printKeyValue("spread", fmt.Sprintf("%.2f", spread))
			printKeyValue("stations", fmt.Sprintf("%d", len(g.Stations(args))))
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
