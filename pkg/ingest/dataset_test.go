package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "dataset.toml", `
name     = "ttc"
stations = "subway.csv"
routes   = "subway_lines.csv"
docks    = "bikeshare.csv"
`)

	ds, err := ReadManifest(manifest)
	if err != nil {
		t.Fatalf("ReadManifest = %v", err)
	}
	if ds.Name != "ttc" {
		t.Errorf("Name = %q, want ttc", ds.Name)
	}
	if want := filepath.Join(dir, "subway.csv"); ds.Stations != want {
		t.Errorf("Stations = %q, want %q", ds.Stations, want)
	}
	if ds.Surface != "" {
		t.Errorf("Surface = %q, want empty", ds.Surface)
	}
	if got := len(ds.SourceFiles()); got != 3 {
		t.Errorf("SourceFiles count = %d, want 3", got)
	}
}

func TestReadManifest_MissingRequired(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "dataset.toml", `name = "x"`)

	if _, err := ReadManifest(manifest); err == nil {
		t.Fatal("ReadManifest accepted a manifest without stations/routes")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "subway.csv", stationsCSV)
	writeFile(t, dir, "subway_lines.csv", routesCSV)
	manifest := writeFile(t, dir, "dataset.toml", `
stations = "subway.csv"
routes   = "subway_lines.csv"
`)

	ds, err := ReadManifest(manifest)
	if err != nil {
		t.Fatalf("ReadManifest = %v", err)
	}
	g, err := Load(ds)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}

	if got := g.StationCount(); got != 4 {
		t.Errorf("StationCount = %d, want 4", got)
	}
	path, ok := g.ConnectedPath("CHRISTIE", "DUPONT")
	if !ok {
		t.Fatal("CHRISTIE and DUPONT not connected after load")
	}
	if path[0] != "CHRISTIE" || path[len(path)-1] != "DUPONT" {
		t.Errorf("path %v has wrong endpoints", path)
	}
}
