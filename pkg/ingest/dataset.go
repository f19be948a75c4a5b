// Package ingest builds a transit graph from delimited-text source tables.
//
// A dataset is described by a small TOML manifest naming the source files:
//
//	name     = "ttc"
//	stations = "subway.csv"
//	routes   = "subway_lines.csv"
//	docks    = "bikeshare.csv"   # optional
//	surface  = "surface.csv"     # optional
//
// Relative paths are resolved against the manifest's directory. The
// stations and routes tables form the primary network; the two extension
// tables add auxiliary stop types with placeholder coordinates, useful for
// ridership analysis but not for drawing.
package ingest

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Dataset names the source files of one transit network.
type Dataset struct {
	Name     string `toml:"name"`
	Stations string `toml:"stations"`
	Routes   string `toml:"routes"`
	Docks    string `toml:"docks"`
	Surface  string `toml:"surface"`
}

// ReadManifest parses a TOML dataset manifest. Relative source paths are
// resolved against the manifest's directory.
func ReadManifest(path string) (Dataset, error) {
	var ds Dataset
	if _, err := toml.DecodeFile(path, &ds); err != nil {
		return Dataset{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	if ds.Stations == "" || ds.Routes == "" {
		return Dataset{}, fmt.Errorf("manifest %s: stations and routes are required", path)
	}

	dir := filepath.Dir(path)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	ds.Stations = resolve(ds.Stations)
	ds.Routes = resolve(ds.Routes)
	ds.Docks = resolve(ds.Docks)
	ds.Surface = resolve(ds.Surface)
	return ds, nil
}

// SourceFiles returns the paths of all configured source tables, in a
// stable order. Used to derive cache keys from file contents.
func (d Dataset) SourceFiles() []string {
	files := []string{d.Stations, d.Routes}
	if d.Docks != "" {
		files = append(files, d.Docks)
	}
	if d.Surface != "" {
		files = append(files, d.Surface)
	}
	return files
}
