// Package transit models a transit network as a mutable graph of stations
// and provides the ridership-reallocation rules triggered by structural
// edits.
//
// # Model
//
// A [Graph] owns a set of [Station] records keyed by [StationID]. Each
// station carries a set of line labels, a daily-usage count and a 2D
// coordinate. Neighbour links are symmetric and stored as identifiers, so
// the graph is an arena of records plus an index rather than a pointer
// graph. Lines have no registry of their own: a line exists exactly while
// some station carries its label.
//
// # Structural edits
//
// [Graph.AddStation], [Graph.RemoveStation], [Graph.AddLine] and
// [Graph.RemoveLine] mutate the network and re-derive ridership per the
// rule that a new station (or a faster new route) intercepts a third of
// the affected traffic. Usage is tracked as a float internally and only
// rounded at reporting and transfer points.
//
// # Queries
//
// Adjacency, neighbour lookup, connectivity paths ([Graph.ConnectedPath],
// depth-first, deterministic but not shortest) and ridership spread
// ([Graph.SpreadOfRidership]) are read-only and usable at any time.
//
// Graph is not safe for concurrent use. A failed mutating call can leave
// the graph partially updated; callers should rebuild from source data
// rather than retry blindly.
package transit
