package cli

import (
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/transitmap/pkg/transit"
)

// editOpts extends the source flags with an output path for the edited
// snapshot. Edits never mutate the input file in place; the result is
// written to --output, or to stdout when the flag is empty.
type editOpts struct {
	sourceOpts
	output string
}

// register wires the shared edit flags onto cmd.
func (o *editOpts) register(cmd *cobra.Command) {
	o.sourceOpts.register(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output snapshot file (stdout if empty)")
}

// addStationCommand inserts a new station next to existing ones.
// Ridership is drawn from the neighbours: each contributes a third of its
// riders to the new station. When the new station sits between two
// previously adjacent neighbours, the direct edge between them is replaced
// by edges through the new station.
func (c *CLI) addStationCommand() *cobra.Command {
	var opts editOpts
	var lines []string

	cmd := &cobra.Command{
		Use:   "add-station <name> [neighbour...]",
		Short: "Add a station, connected to the named neighbours",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts.sourceOpts)
			if err != nil {
				return err
			}

			name := transit.StationID(args[0])
			neighbours := make([]transit.StationID, len(args)-1)
			for i, a := range args[1:] {
				neighbours[i] = transit.StationID(a)
			}

			if err := g.AddStation(name, neighbours, lines); err != nil {
				return err
			}
			c.Logger.Infof("Added %s with %d neighbours", name, len(neighbours))
			return writeGraph(g, opts.output, c.Logger)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringArrayVarP(&lines, "line", "l", nil, "line label served by the new station (repeatable)")
	return cmd
}

// removeStationCommand deletes a station, splitting its ridership equally
// among its neighbours and reconnecting neighbours that would otherwise be
// cut apart.
func (c *CLI) removeStationCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "remove-station <name>",
		Short: "Remove a station, redistributing its ridership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts.sourceOpts)
			if err != nil {
				return err
			}

			name := transit.StationID(args[0])
			if err := g.RemoveStation(name); err != nil {
				return err
			}
			c.Logger.Infof("Removed %s", name)
			return writeGraph(g, opts.output, c.Logger)
		},
	}

	opts.register(cmd)
	return cmd
}

// addLineCommand introduces a new line running through existing stations.
// If the line gives a strictly shorter route between its endpoints than
// the network had before, ridership shifts from the old route to the new
// one.
func (c *CLI) addLineCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "add-line <name> <station> <station>...",
		Short: "Add a line through the named stations, in order",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts.sourceOpts)
			if err != nil {
				return err
			}

			stations := make([]transit.StationID, len(args)-1)
			for i, a := range args[1:] {
				stations[i] = transit.StationID(a)
			}

			if err := g.AddLine(args[0], stations); err != nil {
				return err
			}
			c.Logger.Infof("Added line %s through %d stations", args[0], len(stations))
			return writeGraph(g, opts.output, c.Logger)
		},
	}

	opts.register(cmd)
	return cmd
}

// removeLineCommand retires a line. Stations served only by that line are
// removed from the network; stations shared with other lines just lose
// the label.
func (c *CLI) removeLineCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "remove-line <name>",
		Short: "Remove a line and its exclusive stations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd.Context(), &opts.sourceOpts)
			if err != nil {
				return err
			}

			if err := g.RemoveLine(args[0]); err != nil {
				return err
			}
			c.Logger.Infof("Removed line %s", args[0])
			return writeGraph(g, opts.output, c.Logger)
		},
	}

	opts.register(cmd)
	return cmd
}
