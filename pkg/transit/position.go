package transit

// isolatedPos is where a station with no neighbours is placed, offset from
// the origin so isolated insertions are easy to spot on the map.
var isolatedPos = Position{X: -20, Y: 20}

// PlanPosition computes the coordinate for a station about to be inserted
// next to the given neighbours. The heuristic only keeps new stations
// visually near their neighbours; it makes no layout-quality guarantees.
//
//   - No neighbours: the fixed isolated-insertion coordinate.
//   - One neighbour: one unit to the right of it if it is itself isolated,
//     otherwise one unit away in the first of the cardinal directions
//     +x, -x, +y not already taken by one of its neighbours, falling back
//     to -y when all are taken.
//   - Two or more: the iterated midpoint of the neighbour coordinates,
//     folded left in the given order.
//
// It returns an error wrapping ErrStationNotFound if any neighbour is
// absent.
func (g *Graph) PlanPosition(neighbours []StationID) (Position, error) {
	for _, id := range neighbours {
		if !g.Has(id) {
			return Position{}, notFound(id)
		}
	}

	switch len(neighbours) {
	case 0:
		return isolatedPos, nil
	case 1:
		return g.besidePosition(neighbours[0]), nil
	default:
		points := make([]Position, len(neighbours))
		for i, id := range neighbours {
			points[i] = g.stations[id].pos
		}
		return foldMidpoint(points), nil
	}
}

// besidePosition picks a free unit offset around the single neighbour.
func (g *Graph) besidePosition(id StationID) Position {
	n := g.stations[id]
	if n.Degree() == 0 {
		return Position{X: n.pos.X + 1, Y: n.pos.Y}
	}

	occupied := make(map[Position]struct{}, n.Degree())
	for nb := range n.neighbours {
		p := g.stations[nb].pos
		occupied[Position{X: p.X - n.pos.X, Y: p.Y - n.pos.Y}] = struct{}{}
	}

	cardinals := []Position{{X: 1}, {X: -1}, {Y: 1}}
	for _, dir := range cardinals {
		if _, taken := occupied[dir]; !taken {
			return Position{X: n.pos.X + dir.X, Y: n.pos.Y + dir.Y}
		}
	}
	return Position{X: n.pos.X, Y: n.pos.Y - 1}
}

// foldMidpoint folds the running midpoint over the points left to right:
// each step averages the running value with the next point.
func foldMidpoint(points []Position) Position {
	mid := midpoint(points[0], points[1])
	for _, p := range points[2:] {
		mid = midpoint(mid, p)
	}
	return mid
}

func midpoint(a, b Position) Position {
	return Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
