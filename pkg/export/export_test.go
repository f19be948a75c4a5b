package export

import (
	"bytes"
	"slices"
	"testing"

	"github.com/mhalvorsen/transitmap/pkg/transit"
)

func buildGraph(t *testing.T) *transit.Graph {
	t.Helper()
	g := transit.New()
	g.AddVertex("A", []string{"1"}, 30, transit.Position{X: 0, Y: 0})
	g.AddVertex("B", []string{"1"}, 20.4, transit.Position{X: 1, Y: 0})
	g.AddVertex("C", []string{"2"}, 10, transit.Position{X: 2, Y: 0})
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	return g
}

func TestTake(t *testing.T) {
	snap := Take(buildGraph(t), Options{})

	if len(snap.Stations) != 3 {
		t.Fatalf("stations = %d, want 3", len(snap.Stations))
	}
	if snap.Stations[0].ID != "A" || snap.Stations[2].ID != "C" {
		t.Errorf("stations not in identifier order: %v", snap.Stations)
	}
	// Fractional usage is reported rounded.
	if snap.Stations[1].Usage != 20 {
		t.Errorf("B usage = %d, want 20", snap.Stations[1].Usage)
	}

	want := []EdgeRecord{{A: "A", B: "B"}, {A: "B", B: "C"}}
	if !slices.Equal(snap.Edges, want) {
		t.Errorf("edges = %v, want %v", snap.Edges, want)
	}
}

func TestTake_MaxNodes(t *testing.T) {
	snap := Take(buildGraph(t), Options{MaxNodes: 2})

	if len(snap.Stations) != 2 {
		t.Fatalf("stations = %d, want 2", len(snap.Stations))
	}
	// A and B survive the cap; the B-C edge loses an endpoint and is
	// dropped, the A-B edge must be kept.
	want := []EdgeRecord{{A: "A", B: "B"}}
	if !slices.Equal(snap.Edges, want) {
		t.Errorf("edges = %v, want %v", snap.Edges, want)
	}
}

func TestRoundTrip(t *testing.T) {
	g := buildGraph(t)

	var buf bytes.Buffer
	if err := Write(g, &buf, Options{}); err != nil {
		t.Fatalf("Write = %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read = %v", err)
	}

	if got.StationCount() != 3 {
		t.Errorf("StationCount = %d, want 3", got.StationCount())
	}
	if !got.Adjacent("A", "B") || !got.Adjacent("B", "C") {
		t.Error("edges lost in round trip")
	}
	if got.Adjacent("A", "C") {
		t.Error("phantom edge A-C after round trip")
	}
	s, ok := got.Station("B")
	if !ok {
		t.Fatal("B missing after round trip")
	}
	if got := s.Lines(); !slices.Equal(got, []string{"1"}) {
		t.Errorf("B lines = %v, want [1]", got)
	}
	if s.Usage() != 20 {
		t.Errorf("B usage = %v, want 20 (snapshots carry rounded usage)", s.Usage())
	}
}

func TestRead_BadEdge(t *testing.T) {
	doc := `{"stations": [{"id": "A"}], "edges": [{"a": "A", "b": "ghost"}]}`
	if _, err := Read(bytes.NewReader([]byte(doc))); err == nil {
		t.Fatal("Read accepted an edge with a missing endpoint")
	}
}
