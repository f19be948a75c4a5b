package transit

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrStationNotFound is returned when an operation references a station
	// identifier that is absent from the graph. Errors wrapping it name the
	// missing identifier.
	ErrStationNotFound = errors.New("station not found")

	// ErrLineNotFound is returned by [Graph.RemoveLine] when no station
	// carries the given line label. Lines have no registry of their own;
	// a line exists iff at least one station is tagged with it.
	ErrLineNotFound = errors.New("line not found")

	// ErrSelfEdge is returned by [Graph.AddEdge] when both endpoints are the
	// same station. Stations never neighbour themselves.
	ErrSelfEdge = errors.New("station cannot neighbour itself")

	// ErrRouteTooShort is returned by [Graph.AddLine] when the route has
	// fewer than two stations.
	ErrRouteTooShort = errors.New("line route needs at least two stations")
)

// notFound wraps ErrStationNotFound with the offending identifier.
func notFound(id StationID) error {
	return fmt.Errorf("station %q: %w", id, ErrStationNotFound)
}

// Graph is a mutable transit network. It is the exclusive owner of its
// stations: all creation, mutation and destruction goes through Graph
// methods, and the neighbour relation is kept symmetric at all times.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use; callers must serialize access externally.
type Graph struct {
	stations map[StationID]*Station
}

// New creates an empty transit graph with no stations or connections.
func New() *Graph {
	return &Graph{stations: make(map[StationID]*Station)}
}

// AddVertex inserts a station with the given lines, usage and position and
// no neighbours. Inserting an identifier that already exists is a no-op,
// not an overwrite; the existing station is left untouched.
func (g *Graph) AddVertex(id StationID, lines []string, usage float64, pos Position) {
	if _, exists := g.stations[id]; exists {
		return
	}
	g.stations[id] = newStation(id, lines, usage, pos)
}

// MergeVertex inserts a station like [Graph.AddVertex], except that when
// the identifier already exists the given lines are unioned into the
// existing label set and the usage is accumulated. The existing position
// is kept. Ingestion uses this to fold one-row-per-(station, line) source
// tables into single station records.
func (g *Graph) MergeVertex(id StationID, lines []string, usage float64, pos Position) {
	s, exists := g.stations[id]
	if !exists {
		g.stations[id] = newStation(id, lines, usage, pos)
		return
	}
	for _, l := range lines {
		s.lines[l] = struct{}{}
	}
	s.usage += usage
}

// AddEdge connects two existing stations with a symmetric neighbour link.
// It returns an error wrapping ErrStationNotFound naming whichever endpoint
// is missing, or ErrSelfEdge if both endpoints are the same station.
// Adding an edge that already exists is a no-op.
func (g *Graph) AddEdge(a, b StationID) error {
	if a == b {
		return ErrSelfEdge
	}
	sa, ok := g.stations[a]
	if !ok {
		return notFound(a)
	}
	sb, ok := g.stations[b]
	if !ok {
		return notFound(b)
	}
	sa.neighbours[b] = struct{}{}
	sb.neighbours[a] = struct{}{}
	return nil
}

// removeEdge drops the symmetric link between a and b if it exists.
func (g *Graph) removeEdge(a, b StationID) {
	if sa, ok := g.stations[a]; ok {
		delete(sa.neighbours, b)
	}
	if sb, ok := g.stations[b]; ok {
		delete(sb.neighbours, a)
	}
}

// Adjacent reports whether a direct connection exists between the two
// stations. It returns false, not an error, if either identifier is absent.
func (g *Graph) Adjacent(a, b StationID) bool {
	sa, ok := g.stations[a]
	if !ok {
		return false
	}
	_, ok = sa.neighbours[b]
	return ok
}

// Neighbours returns the identifiers of the station's neighbours in sorted
// order. It returns an error wrapping ErrStationNotFound if the identifier
// is absent.
func (g *Graph) Neighbours(id StationID) ([]StationID, error) {
	s, ok := g.stations[id]
	if !ok {
		return nil, notFound(id)
	}
	return s.neighbourIDs(), nil
}

// Station returns the station with the given identifier and true, or nil
// and false if not found. The returned pointer refers into the graph and
// must not be held across mutating calls.
func (g *Graph) Station(id StationID) (*Station, bool) {
	s, ok := g.stations[id]
	return s, ok
}

// Has reports whether a station with the given identifier exists.
func (g *Graph) Has(id StationID) bool {
	_, ok := g.stations[id]
	return ok
}

// StationCount returns the number of stations in the graph.
func (g *Graph) StationCount() int { return len(g.stations) }

// Stations returns stations sorted by identifier. With a non-empty filter
// only stations carrying at least one of the given line labels are
// returned; an empty filter returns every station.
func (g *Graph) Stations(lineFilter []string) []*Station {
	var out []*Station
	for _, s := range g.stations {
		if len(lineFilter) == 0 || carriesAny(s, lineFilter) {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b *Station) int {
		return cmpID(a.id, b.id)
	})
	return out
}

// Lines returns every line label carried by any station, sorted. A line
// exists iff at least one station is tagged with it; there is no separate
// line registry.
func (g *Graph) Lines() []string {
	set := make(map[string]struct{})
	for _, s := range g.stations {
		maps.Copy(set, s.lines)
	}
	return slices.Sorted(maps.Keys(set))
}

func carriesAny(s *Station, lines []string) bool {
	for _, l := range lines {
		if _, ok := s.lines[l]; ok {
			return true
		}
	}
	return false
}

func cmpID(a, b StationID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
