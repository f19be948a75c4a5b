package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhalvorsen/transitmap/pkg/export"
	"github.com/mhalvorsen/transitmap/pkg/transit"
)

// runCommand executes the root command with args and returns the error.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestAddStationCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	if err := os.WriteFile(in, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runCommand(t, "add-station", "DUPONT", "CHRISTIE", "BATHURST",
		"--line", "1 Yonge-University", "--graph", in, "-o", out)
	if err != nil {
		t.Fatalf("add-station error: %v", err)
	}

	g, err := export.Import(out)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	// The new station interposes between its previously adjacent neighbours.
	if g.Adjacent("CHRISTIE", "BATHURST") {
		t.Error("CHRISTIE-BATHURST edge should be replaced")
	}
	if !g.Adjacent("DUPONT", "CHRISTIE") || !g.Adjacent("DUPONT", "BATHURST") {
		t.Error("DUPONT should connect to both neighbours")
	}

	// A third of each neighbour's riders moves to the new station.
	wantRiders := map[string]int{
		"CHRISTIE": 6667,
		"BATHURST": 13333,
		"DUPONT":   10000,
	}
	for id, want := range wantRiders {
		s, ok := g.Station(transit.StationID(id))
		if !ok {
			t.Fatalf("station %s missing", id)
		}
		if got := s.Riders(); got != want {
			t.Errorf("%s riders = %d, want %d", id, got, want)
		}
	}

	s, _ := g.Station("DUPONT")
	if !s.HasLine("1 Yonge-University") {
		t.Error("DUPONT should carry the --line label")
	}
}

func TestRemoveStationCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	if err := os.WriteFile(in, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "remove-station", "BATHURST", "--graph", in, "-o", out); err != nil {
		t.Fatalf("remove-station error: %v", err)
	}

	g, err := export.Import(out)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if g.Has("BATHURST") {
		t.Error("BATHURST should be gone")
	}
	if !g.Adjacent("CHRISTIE", "SPADINA") {
		t.Error("neighbours of the removed station should be reconnected")
	}
}

func TestAddLineCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	if err := os.WriteFile(in, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runCommand(t, "add-line", "3 Scarborough", "CHRISTIE", "SPADINA",
		"--graph", in, "-o", out)
	if err != nil {
		t.Fatalf("add-line error: %v", err)
	}

	g, err := export.Import(out)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if !g.Adjacent("CHRISTIE", "SPADINA") {
		t.Error("new line should wire CHRISTIE-SPADINA")
	}
	for _, id := range []string{"CHRISTIE", "SPADINA"} {
		s, _ := g.Station(transit.StationID(id))
		if !s.HasLine("3 Scarborough") {
			t.Errorf("%s should carry the new line", id)
		}
	}
}

func TestRemoveLineCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	if err := os.WriteFile(in, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "remove-line", "2 Bloor-Danforth", "--graph", in, "-o", out); err != nil {
		t.Fatalf("remove-line error: %v", err)
	}

	g, err := export.Import(out)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	// BATHURST and CHRISTIE only carried the removed line; SPADINA survives.
	if g.Has("BATHURST") || g.Has("CHRISTIE") {
		t.Error("exclusive stations should be removed with their line")
	}
	s, ok := g.Station("SPADINA")
	if !ok {
		t.Fatal("SPADINA should survive")
	}
	if s.HasLine("2 Bloor-Danforth") {
		t.Error("SPADINA should lose the removed line label")
	}
}

func TestRemoveLineCommandUnknown(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(in, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "remove-line", "99 Nowhere", "--graph", in); err == nil {
		t.Error("removing an unknown line should fail")
	}
}

func TestExportCommandDOT(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.dot")
	if err := os.WriteFile(in, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "export", "--format", "dot", "--graph", in, "-o", out); err != nil {
		t.Fatalf("export error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	for _, want := range []string{"graph transit {", "SPADINA", "layout=neato"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}

func TestExportCommandUnknownFormat(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(in, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "export", "--format", "gif", "--graph", in); err == nil {
		t.Error("unknown format should fail")
	}
}
