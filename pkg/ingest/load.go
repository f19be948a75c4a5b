package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mhalvorsen/transitmap/pkg/transit"
)

// Line labels attached to stations from the extension tables.
const (
	dockLine    = "Bike Share"
	surfaceLine = "Surface"
)

// Load builds a graph from a dataset: the station table first, then the
// route table for the initial edge set, then any extension tables.
func Load(ds Dataset) (*transit.Graph, error) {
	g := transit.New()

	if err := loadFile(g, ds.Stations, LoadStations); err != nil {
		return nil, err
	}
	if err := loadFile(g, ds.Routes, LoadRoutes); err != nil {
		return nil, err
	}
	if ds.Docks != "" {
		if err := loadFile(g, ds.Docks, LoadDocks); err != nil {
			return nil, err
		}
	}
	if ds.Surface != "" {
		if err := loadFile(g, ds.Surface, LoadSurface); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func loadFile(g *transit.Graph, path string, load func(*transit.Graph, io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := load(g, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadStations reads the primary station table: one row per
// (station, line) combination with columns name, line, usage, x, y.
// Repeated station rows merge the line label and accumulate usage.
func LoadStations(g *transit.Graph, r io.Reader) error {
	rows, err := readRows(r, 5)
	if err != nil {
		return err
	}
	for i, row := range rows {
		usage, err := parseCount(row[2])
		if err != nil {
			return fmt.Errorf("row %d: usage: %w", i+1, err)
		}
		x, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return fmt.Errorf("row %d: x: %w", i+1, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil {
			return fmt.Errorf("row %d: y: %w", i+1, err)
		}
		g.MergeVertex(transit.StationID(row[0]), []string{row[1]}, usage,
			transit.Position{X: float64(x), Y: float64(y)})
	}
	return nil
}

// LoadRoutes reads the line-route table: a header row, then one row per
// line listing its stations in route order. Consecutive entries are
// connected to derive the initial edge set.
func LoadRoutes(g *transit.Graph, r io.Reader) error {
	rows, err := readRows(r, -1)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		for j := 0; j < len(row)-1; j++ {
			a, b := transit.StationID(row[j]), transit.StationID(row[j+1])
			if err := g.AddEdge(a, b); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// LoadDocks reads the bike-docking extension table: a header row, then
// columns name, usage. Docking points get the fixed Bike Share label and a
// placeholder coordinate; they carry no position semantics.
func LoadDocks(g *transit.Graph, r io.Reader) error {
	rows, err := readRows(r, 2)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		usage, err := parseCount(row[1])
		if err != nil {
			return fmt.Errorf("row %d: usage: %w", i+1, err)
		}
		g.AddVertex(transit.StationID(row[0]), []string{dockLine}, usage, transit.Position{})
	}
	return nil
}

// LoadSurface reads the surface-transit extension table with columns
// route, name, usage. Each entry gets the fixed Surface label plus a
// per-route label ("<route> <name>") and a placeholder coordinate.
func LoadSurface(g *transit.Graph, r io.Reader) error {
	rows, err := readRows(r, 3)
	if err != nil {
		return err
	}
	for i, row := range rows {
		usage, err := parseCount(row[2])
		if err != nil {
			return fmt.Errorf("row %d: usage: %w", i+1, err)
		}
		lines := []string{surfaceLine, row[0] + " " + row[1]}
		g.AddVertex(transit.StationID(row[1]), lines, usage, transit.Position{})
	}
	return nil
}

func readRows(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func parseCount(s string) (float64, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}
