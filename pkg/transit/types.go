package transit

import (
	"maps"
	"math"
	"slices"
)

// StationID uniquely identifies a station within a Graph. It is a distinct
// string type so identifiers cannot be confused with line labels.
type StationID string

// Position is a 2D map coordinate attached to a station. Coordinates carry
// no geographic meaning; they only place stations relative to each other
// for rendering.
type Position struct {
	X float64
	Y float64
}

// Station is a vertex in the transit graph: a subway stop, a surface-transit
// route, or a bike docking point. Stations are created and owned exclusively
// by a Graph; callers must not retain a *Station across mutating calls.
//
// Neighbour links are stored as StationIDs into the owning Graph, never as
// direct pointers, so the structure stays an arena of records plus an index
// and cannot form ownership cycles.
type Station struct {
	id         StationID
	lines      map[string]struct{}
	usage      float64
	pos        Position
	neighbours map[StationID]struct{}
}

func newStation(id StationID, lines []string, usage float64, pos Position) *Station {
	ls := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		ls[l] = struct{}{}
	}
	return &Station{
		id:         id,
		lines:      ls,
		usage:      usage,
		pos:        pos,
		neighbours: make(map[StationID]struct{}),
	}
}

// ID returns the station's identifier.
func (s *Station) ID() StationID { return s.id }

// Lines returns the station's line labels in sorted order.
// The returned slice is a copy and can be modified freely.
func (s *Station) Lines() []string {
	return slices.Sorted(maps.Keys(s.lines))
}

// HasLine reports whether the station carries the given line label.
func (s *Station) HasLine(line string) bool {
	_, ok := s.lines[line]
	return ok
}

// Usage returns the station's raw daily-boardings count. Structural edits
// leave fractional values behind; use Riders for the reported figure.
func (s *Station) Usage() float64 { return s.usage }

// Riders returns the usage rounded to the nearest whole rider. This is the
// value the export and query surfaces report.
func (s *Station) Riders() int { return int(math.Round(s.usage)) }

// Pos returns the station's map coordinate.
func (s *Station) Pos() Position { return s.pos }

// Degree returns the number of neighbours.
func (s *Station) Degree() int { return len(s.neighbours) }

// neighbourIDs returns the neighbour identifiers in sorted order so that
// traversals and reallocation passes are deterministic.
func (s *Station) neighbourIDs() []StationID {
	return slices.Sorted(maps.Keys(s.neighbours))
}
