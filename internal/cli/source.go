package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/transitmap/pkg/cache"
	"github.com/mhalvorsen/transitmap/pkg/export"
	"github.com/mhalvorsen/transitmap/pkg/ingest"
	"github.com/mhalvorsen/transitmap/pkg/transit"
)

// datasetCacheTTL bounds how long a cached dataset snapshot is trusted.
// The cache key already changes whenever a source file changes, so the TTL
// only guards against stale entries for files edited in place with
// unchanged content length and mtime tricks.
const datasetCacheTTL = 24 * time.Hour

// sourceOpts holds the flags every graph-reading command shares.
// A command operates either on a CSV dataset (via its TOML manifest) or on
// a previously exported JSON snapshot.
type sourceOpts struct {
	dataset string // TOML manifest path
	graph   string // JSON snapshot path
	noCache bool   // bypass the dataset snapshot cache
}

// register wires the shared source flags onto cmd.
func (o *sourceOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.dataset, "dataset", "d", "", "TOML dataset manifest to load")
	cmd.Flags().StringVarP(&o.graph, "graph", "g", "", "JSON graph snapshot to load")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "bypass the dataset snapshot cache")
}

// loadGraph materializes the graph named by the source flags. The second
// return value reports whether the graph came out of the snapshot cache.
func (c *CLI) loadGraph(ctx context.Context, o *sourceOpts) (*transit.Graph, bool, error) {
	switch {
	case o.graph != "" && o.dataset != "":
		return nil, false, fmt.Errorf("--dataset and --graph are mutually exclusive")
	case o.graph != "":
		g, err := export.Import(o.graph)
		return g, false, err
	case o.dataset != "":
		return c.loadDataset(ctx, o.dataset, o.noCache)
	default:
		return nil, false, fmt.Errorf("no input given: pass --dataset or --graph")
	}
}

// loadDataset loads the manifest's CSV sources into a graph, going through
// the snapshot cache keyed by the combined hash of the source files.
func (c *CLI) loadDataset(ctx context.Context, manifest string, noCache bool) (*transit.Graph, bool, error) {
	ds, err := ingest.ReadManifest(manifest)
	if err != nil {
		return nil, false, err
	}

	store, err := newCache(noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	hash, err := cache.HashFiles(ds.SourceFiles())
	if err != nil {
		return nil, false, err
	}
	key := "dataset:" + hash

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		g, err := export.Read(bytes.NewReader(data))
		if err == nil {
			c.Logger.Debugf("Loaded %s from cache", ds.Name)
			return g, true, nil
		}
		// A corrupt entry is not fatal, fall through to a fresh load.
		c.Logger.Warnf("Discarding corrupt cache entry for %s: %v", ds.Name, err)
	}

	prog := newProgress(c.Logger)
	g, err := ingest.Load(ds)
	if err != nil {
		return nil, false, err
	}
	prog.done(fmt.Sprintf("Loaded %d stations from %s", g.StationCount(), ds.Name))

	snap := export.Take(g, export.Options{MaxNodes: g.StationCount()})
	if data, err := json.Marshal(snap); err == nil {
		if err := store.Set(ctx, key, data, datasetCacheTTL); err != nil {
			c.Logger.Debugf("Cache write failed: %v", err)
		}
	}
	return g, false, nil
}

// writeGraph serializes g as a full JSON snapshot to path (or stdout if empty).
// The logger is notified on success with the output path.
func writeGraph(g *transit.Graph, path string, logger *log.Logger) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := export.Write(g, out, export.Options{MaxNodes: g.StationCount()}); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote graph to %s", path)
	}
	return nil
}

// edgeCount sums station degrees; every edge is counted from both endpoints.
func edgeCount(g *transit.Graph) int {
	total := 0
	for _, s := range g.Stations(nil) {
		total += s.Degree()
	}
	return total / 2
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
