// Package export serializes a transit graph to a JSON snapshot and back.
//
// The snapshot is the interface to external renderers: per-station
// identifier, line labels, rounded usage and coordinate, plus the
// undirected edge list. It can be re-imported with [Read] for round-trip
// processing, which is how edited graphs are persisted between CLI
// invocations and how the ingest cache stores loaded datasets.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mhalvorsen/transitmap/pkg/transit"
)

// DefaultMaxNodes caps snapshot size for rendering purposes.
const DefaultMaxNodes = 5000

// Options configures snapshot creation.
type Options struct {
	// MaxNodes truncates very large exports: only the first MaxNodes
	// stations (in identifier order) are included, together with every
	// edge whose both endpoints survive the cap. Zero means
	// DefaultMaxNodes.
	MaxNodes int
}

// Snapshot is the JSON document shape.
type Snapshot struct {
	Stations []StationRecord `json:"stations"`
	Edges    []EdgeRecord    `json:"edges"`
}

// StationRecord describes one station. Usage is rounded to whole riders;
// fractional internal usage is a bookkeeping detail the export surface
// does not carry.
type StationRecord struct {
	ID    string   `json:"id"`
	Lines []string `json:"lines,omitempty"`
	Usage int      `json:"usage"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
}

// EdgeRecord describes one undirected edge. Endpoints are ordered A < B so
// each edge appears exactly once.
type EdgeRecord struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Take builds a snapshot of the graph. Stations come out in identifier
// order, truncated at the node cap; edges to excluded endpoints are
// omitted, edges between surviving endpoints are always kept.
func Take(g *transit.Graph, opts Options) Snapshot {
	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	stations := g.Stations(nil)
	if len(stations) > maxNodes {
		stations = stations[:maxNodes]
	}

	snap := Snapshot{Stations: make([]StationRecord, len(stations))}
	kept := make(map[transit.StationID]struct{}, len(stations))
	for i, s := range stations {
		kept[s.ID()] = struct{}{}
		pos := s.Pos()
		snap.Stations[i] = StationRecord{
			ID:    string(s.ID()),
			Lines: s.Lines(),
			Usage: s.Riders(),
			X:     pos.X,
			Y:     pos.Y,
		}
	}

	for _, s := range stations {
		nbs, err := g.Neighbours(s.ID())
		if err != nil {
			continue
		}
		for _, nb := range nbs {
			if s.ID() >= nb {
				continue // each edge once, smaller endpoint first
			}
			if _, ok := kept[nb]; !ok {
				continue
			}
			snap.Edges = append(snap.Edges, EdgeRecord{A: string(s.ID()), B: string(nb)})
		}
	}
	return snap
}

// Write encodes a graph snapshot as indented JSON to w.
func Write(g *transit.Graph, w io.Writer, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Take(g, opts)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes a graph snapshot to a JSON file at path.
func Export(g *transit.Graph, path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f, opts)
}

// Read decodes a snapshot from r and reconstructs the graph.
// Errors name the station or edge that caused the problem.
func Read(r io.Reader) (*transit.Graph, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := transit.New()
	for _, s := range snap.Stations {
		g.AddVertex(transit.StationID(s.ID), s.Lines, float64(s.Usage),
			transit.Position{X: s.X, Y: s.Y})
	}
	for _, e := range snap.Edges {
		if err := g.AddEdge(transit.StationID(e.A), transit.StationID(e.B)); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.A, e.B, err)
		}
	}
	return g, nil
}

// Import reads a snapshot file at path and reconstructs the graph.
func Import(path string) (*transit.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
