package transit

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestAddVertex_DuplicateIsNoOp(t *testing.T) {
	g := New()
	g.AddVertex("A", []string{"1"}, 100, Position{X: 1, Y: 2})
	g.AddVertex("A", []string{"2"}, 999, Position{X: 9, Y: 9})

	s, ok := g.Station("A")
	if !ok {
		t.Fatal("Station(A) not found")
	}
	if got := s.Lines(); !slices.Equal(got, []string{"1"}) {
		t.Errorf("Lines() = %v, want [1]", got)
	}
	if s.Usage() != 100 {
		t.Errorf("Usage() = %v, want 100", s.Usage())
	}
	if s.Pos() != (Position{X: 1, Y: 2}) {
		t.Errorf("Pos() = %v, want {1 2}", s.Pos())
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	g.AddVertex("A", nil, 0, Position{})
	g.AddVertex("B", nil, 0, Position{})

	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge(A, B) = %v", err)
	}
	if !g.Adjacent("A", "B") || !g.Adjacent("B", "A") {
		t.Error("edge A-B is not symmetric")
	}

	err := g.AddEdge("A", "missing")
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("AddEdge(A, missing) = %v, want ErrStationNotFound", err)
	}
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("error %q does not name the missing station", err)
	}

	if err := g.AddEdge("A", "A"); !errors.Is(err, ErrSelfEdge) {
		t.Errorf("AddEdge(A, A) = %v, want ErrSelfEdge", err)
	}
}

func TestAdjacent_AbsentIsFalse(t *testing.T) {
	g := New()
	g.AddVertex("A", nil, 0, Position{})

	if g.Adjacent("A", "nope") {
		t.Error("Adjacent(A, nope) = true, want false")
	}
	if g.Adjacent("nope", "A") {
		t.Error("Adjacent(nope, A) = true, want false")
	}
}

func TestNeighbours(t *testing.T) {
	g := New()
	for _, id := range []StationID{"C", "A", "B"} {
		g.AddVertex(id, nil, 0, Position{})
	}
	g.AddEdge("B", "C")
	g.AddEdge("B", "A")

	got, err := g.Neighbours("B")
	if err != nil {
		t.Fatalf("Neighbours(B) = %v", err)
	}
	if want := []StationID{"A", "C"}; !slices.Equal(got, want) {
		t.Errorf("Neighbours(B) = %v, want %v", got, want)
	}

	if _, err := g.Neighbours("missing"); !errors.Is(err, ErrStationNotFound) {
		t.Errorf("Neighbours(missing) = %v, want ErrStationNotFound", err)
	}
}

func TestStations_LineFilter(t *testing.T) {
	g := New()
	g.AddVertex("A", []string{"1"}, 0, Position{})
	g.AddVertex("B", []string{"1", "2"}, 0, Position{})
	g.AddVertex("C", []string{"3"}, 0, Position{})
	g.AddVertex("D", nil, 0, Position{})

	tests := []struct {
		name   string
		filter []string
		want   []StationID
	}{
		{"Empty", nil, []StationID{"A", "B", "C", "D"}},
		{"SingleLine", []string{"1"}, []StationID{"A", "B"}},
		{"AnyOf", []string{"2", "3"}, []StationID{"B", "C"}},
		{"Unknown", []string{"9"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []StationID
			for _, s := range g.Stations(tt.filter) {
				got = append(got, s.ID())
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Stations(%v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	g := New()
	g.AddVertex("A", []string{"2", "1"}, 0, Position{})
	g.AddVertex("B", []string{"1", "3"}, 0, Position{})

	if got, want := g.Lines(), []string{"1", "2", "3"}; !slices.Equal(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}
