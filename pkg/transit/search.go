package transit

// Connected reports whether b is reachable from a through neighbour links.
// It returns false if either identifier is absent. A station is always
// connected to itself.
func (g *Graph) Connected(a, b StationID) bool {
	_, ok := g.ConnectedPath(a, b)
	return ok
}

// ConnectedPath returns a path of station identifiers from a to b, where
// every consecutive pair is adjacent, and true. It returns nil and false
// if b is unreachable from a or either identifier is absent.
//
// The search is depth-first with an explicit stack (no recursion, so deep
// chains cannot overflow) and expands neighbours in sorted identifier
// order, so the result is deterministic for a fixed graph state. The
// returned path is whichever the traversal finds first, not necessarily
// the shortest.
func (g *Graph) ConnectedPath(a, b StationID) ([]StationID, bool) {
	if !g.Has(a) || !g.Has(b) {
		return nil, false
	}
	if a == b {
		return []StationID{a}, true
	}

	parent := make(map[StationID]StationID)
	visited := map[StationID]struct{}{a: {}}
	stack := []StationID{a}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur == b {
			return rebuildPath(parent, a, b), true
		}

		// Reverse order: the smallest identifier ends up on top of the
		// stack, matching a recursive DFS over sorted neighbours.
		nbs := g.stations[cur].neighbourIDs()
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = struct{}{}
			parent[nb] = cur
			stack = append(stack, nb)
		}
	}
	return nil, false
}

func rebuildPath(parent map[StationID]StationID, a, b StationID) []StationID {
	var rev []StationID
	for cur := b; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == a {
			break
		}
	}
	path := make([]StationID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}
