package transit

import (
	"maps"
	"math"
	"slices"
)

// AddStation inserts a new station wired to the given neighbours and tagged
// with the given lines, then rebalances ridership: the new station is
// assumed to intercept a third of each neighbour's traffic.
//
// Concretely:
//
//  1. The position comes from [Graph.PlanPosition] over the neighbours in
//     the given order.
//  2. Neighbours that were directly adjacent to each other lose that edge;
//     the new station is interposed between them.
//  3. The new station is connected to every neighbour.
//  4. Each neighbour transfers a third of its usage (rounded) to the new
//     station and keeps two thirds (unrounded; fractional usage is allowed
//     to accumulate internally).
//
// Inserting an identifier that already exists leaves the graph completely
// unchanged. Duplicate entries in neighbours are ignored after the first.
// Returns an error wrapping ErrStationNotFound if a neighbour is absent,
// in which case the graph is untouched.
func (g *Graph) AddStation(name StationID, neighbours []StationID, lines []string) error {
	if g.Has(name) {
		return nil
	}
	nbs := dedupe(neighbours)

	pos, err := g.PlanPosition(nbs)
	if err != nil {
		return err
	}
	g.AddVertex(name, lines, 0, pos)

	for i, a := range nbs {
		for _, b := range nbs[i+1:] {
			if g.Adjacent(a, b) {
				g.removeEdge(a, b)
			}
		}
	}

	var acquired float64
	for _, nb := range nbs {
		if err := g.AddEdge(name, nb); err != nil {
			return err
		}
		s := g.stations[nb]
		acquired += math.Round(s.usage / 3)
		s.usage *= 2.0 / 3.0
	}
	g.stations[name].usage = acquired
	return nil
}

// RemoveStation deletes a station and approximately reverses the insertion
// rebalance: the removed station's ridership is split equally among its
// neighbours, and former neighbours are connected directly so the removal
// never disconnects them.
//
// When two previously non-adjacent neighbours are joined, their line-label
// sets are merged: both end up carrying the union. Each station keeps its
// own independently owned set; no set is ever shared between stations.
//
// Returns an error wrapping ErrStationNotFound if the identifier is absent.
func (g *Graph) RemoveStation(name StationID) error {
	s, ok := g.stations[name]
	if !ok {
		return notFound(name)
	}

	nbs := s.neighbourIDs()
	if len(nbs) > 0 {
		share := s.usage / float64(len(nbs))
		for _, nb := range nbs {
			g.stations[nb].usage += share
		}
	}

	for i, a := range nbs {
		for _, b := range nbs[i+1:] {
			if g.Adjacent(a, b) {
				continue
			}
			if err := g.AddEdge(a, b); err != nil {
				return err
			}
			mergeLines(g.stations[a], g.stations[b])
		}
	}

	for _, nb := range nbs {
		delete(g.stations[nb].neighbours, name)
	}
	delete(g.stations, name)
	return nil
}

// mergeLines gives both stations an independent copy of the union of their
// line-label sets.
func mergeLines(a, b *Station) {
	union := make(map[string]struct{}, len(a.lines)+len(b.lines))
	maps.Copy(union, a.lines)
	maps.Copy(union, b.lines)
	a.lines = union
	b.lines = maps.Clone(union)
}

// AddLine tags the given stations with a new line label and realizes the
// route in the graph by connecting every consecutive pair that is not
// already adjacent.
//
// If the route is strictly shorter (fewer stops) than the path that
// previously connected its endpoints, the new line is treated as a faster
// route: every station on the old path drops to two thirds of its usage,
// then every station on the new route grows to one and a half times its
// value. The two sets may overlap; the old-path reduction is applied
// first. If the endpoints were not previously connected at all there is
// no old path to pull riders from and no reallocation happens.
//
// Returns ErrRouteTooShort for routes with fewer than two stations, or an
// error wrapping ErrStationNotFound naming the first missing station.
func (g *Graph) AddLine(name string, stations []StationID) error {
	if len(stations) < 2 {
		return ErrRouteTooShort
	}
	for _, id := range stations {
		if !g.Has(id) {
			return notFound(id)
		}
	}

	pathBefore, hadPath := g.ConnectedPath(stations[0], stations[len(stations)-1])

	for _, id := range stations {
		g.stations[id].lines[name] = struct{}{}
	}

	for i := 0; i < len(stations)-1; i++ {
		a, b := stations[i], stations[i+1]
		if a == b || g.Adjacent(a, b) {
			continue
		}
		if err := g.AddEdge(a, b); err != nil {
			return err
		}
	}

	if hadPath && len(pathBefore) > len(stations) {
		for _, id := range pathBefore {
			g.stations[id].usage *= 2.0 / 3.0
		}
		for _, id := range stations {
			g.stations[id].usage *= 1.5
		}
	}
	return nil
}

// RemoveLine deletes a line label from the graph. Stations for which this
// is the only line are removed entirely via [Graph.RemoveStation]; stations
// carrying additional lines just lose the label.
//
// The partition is computed from a snapshot taken before any mutation, so
// removing one line-exclusive station cannot reclassify another mid-pass.
// Returns ErrLineNotFound if no station carries the label.
func (g *Graph) RemoveLine(name string) error {
	var exclusive, strip []StationID
	for id, s := range g.stations {
		if _, ok := s.lines[name]; !ok {
			continue
		}
		if len(s.lines) == 1 {
			exclusive = append(exclusive, id)
		} else {
			strip = append(strip, id)
		}
	}
	if len(exclusive) == 0 && len(strip) == 0 {
		return ErrLineNotFound
	}
	slices.Sort(exclusive)
	slices.Sort(strip)

	for _, id := range exclusive {
		if err := g.RemoveStation(id); err != nil {
			return err
		}
	}
	for _, id := range strip {
		if s, ok := g.stations[id]; ok {
			delete(s.lines, name)
		}
	}
	return nil
}

func dedupe(ids []StationID) []StationID {
	seen := make(map[StationID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
