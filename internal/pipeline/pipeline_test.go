package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framefold/instancer/internal/config"
	"github.com/framefold/instancer/internal/document"
	"github.com/framefold/instancer/internal/host"
	"github.com/framefold/instancer/internal/logging"
	"github.com/framefold/instancer/internal/state"
	"github.com/framefold/instancer/internal/variant"
)

const fixtureDoc = `{
  "name": "Icon Library",
  "document": {
    "id": "0:0", "type": "DOCUMENT",
    "children": [{
      "id": "0:1", "name": "Page 1", "type": "PAGE",
      "children": [
        {
          "id": "1:1", "name": "Arrow", "type": "COMPONENT_SET",
          "x": 10, "y": 10, "width": 200, "height": 100,
          "children": [
            {"id": "1:2", "name": "type=outlined", "type": "COMPONENT",
             "width": 24, "height": 24,
             "variantProperties": {"type": "outlined"}},
            {"id": "1:3", "name": "type=filled", "type": "COMPONENT",
             "width": 24, "height": 24,
             "variantProperties": {"type": "filled"}},
            {"id": "1:4", "name": "Type=Outlined", "type": "COMPONENT",
             "width": 24, "height": 24,
             "variantProperties": {"Type": "Outlined"}}
          ]
        },
        {
          "id": "2:1", "name": "Star", "type": "COMPONENT_SET",
          "x": 300, "y": 10, "width": 100, "height": 100,
          "children": [
            {"id": "2:2", "name": "Star Filled", "type": "COMPONENT",
             "width": 24, "height": 24}
          ]
        }
      ]
    }]
  }
}`

func setup(t *testing.T) (*config.Config, *logging.Logger, *state.Store) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.DocumentPath = filepath.Join(dir, "library.json")
	cfg.StateFile = filepath.Join(dir, "state.toml")
	require.NoError(t, os.WriteFile(cfg.DocumentPath, []byte(fixtureDoc), 0o644))

	log, err := logging.NewLogger(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	st, err := state.Open(cfg.StateFile)
	require.NoError(t, err)
	return &cfg, log, st
}

func generated(t *testing.T, path, container string) *document.Node {
	t.Helper()
	doc, err := document.Load(path)
	require.NoError(t, err)
	page, err := doc.Page("")
	require.NoError(t, err)
	return page.FindChild(container, document.TypeFrame)
}

func TestRunEndToEnd(t *testing.T) {
	cfg, log, st := setup(t)

	stats, err := Run(context.Background(), cfg, log, st)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Sets)
	assert.Equal(t, 4, stats.Members)
	assert.Equal(t, 3, stats.Unique, "Type=Outlined collides after normalization")
	assert.Equal(t, 1, stats.Duplicates())
	assert.Equal(t, 3, stats.Created)
	assert.Zero(t, stats.Failed)

	c := generated(t, cfg.DocumentPath, cfg.ContainerName)
	require.NotNil(t, c, "saved document has the container")
	require.Len(t, c.Children, 3)
	assert.Equal(t, "Arrow/type=outlined", c.Children[0].Name)
	assert.Equal(t, "Arrow/type=filled", c.Children[1].Name)
	assert.Equal(t, "Star/type=filled", c.Children[2].Name, "name-keyword fallback")
	for _, inst := range c.Children {
		assert.Equal(t, document.TypeInstance, inst.Type)
	}
	// Placed clear of existing content: rightmost edge 400 plus gutter.
	assert.Equal(t, 400.0+cfg.Gutter, c.X)

	// Scan summary persisted.
	reloaded, err := state.Open(cfg.StateFile)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Settings.LastSets)
	assert.Equal(t, 3, reloaded.Settings.LastCreated)
}

func TestRunIdempotent(t *testing.T) {
	cfg, log, st := setup(t)

	_, err := Run(context.Background(), cfg, log, st)
	require.NoError(t, err)
	first := generated(t, cfg.DocumentPath, cfg.ContainerName)
	require.NotNil(t, first)

	stats, err := Run(context.Background(), cfg, log, st)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Created)

	second := generated(t, cfg.DocumentPath, cfg.ContainerName)
	require.NotNil(t, second)
	assert.Len(t, second.Children, 3, "re-run replaces, never accumulates")
	assert.Equal(t, first.X, second.X, "existing container keeps its position")
}

func TestRunCustomPattern(t *testing.T) {
	cfg, log, st := setup(t)
	cfg.Pattern = "{componentSetName}-{type}"

	_, err := Run(context.Background(), cfg, log, st)
	require.NoError(t, err)

	c := generated(t, cfg.DocumentPath, cfg.ContainerName)
	require.NotNil(t, c)
	assert.Equal(t, "Arrow-outlined", c.Children[0].Name)
}

func TestRunPersistedPattern(t *testing.T) {
	cfg, log, st := setup(t)
	st.Settings.Pattern = "{type}"

	stats, err := Run(context.Background(), cfg, log, st)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Unique, "only outlined and filled remain")
}

func TestRunDryRun(t *testing.T) {
	cfg, log, st := setup(t)
	cfg.DryRun = true

	stats, err := Run(context.Background(), cfg, log, st)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Created)

	assert.Nil(t, generated(t, cfg.DocumentPath, cfg.ContainerName), "dry run must not save")
	reloaded, err := state.Open(cfg.StateFile)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Settings.LastSets, "dry run must not record a scan")
}

func TestRunMissingDocument(t *testing.T) {
	cfg, log, st := setup(t)
	cfg.DocumentPath = filepath.Join(t.TempDir(), "absent.json")

	_, err := Run(context.Background(), cfg, log, st)
	assert.Error(t, err)
}

// failingMaterializer fails for one member id and delegates the rest.
type failingMaterializer struct {
	inner  host.Materializer
	failID string
}

var errBoom = errors.New("boom")

func (f *failingMaterializer) Materialize(ctx context.Context, memberID, name string) (*document.Node, error) {
	if memberID == f.failID {
		return nil, errBoom
	}
	return f.inner.Materialize(ctx, memberID, name)
}

func TestMaterializeFailureIsolation(t *testing.T) {
	cfg, log, _ := setup(t)

	doc, err := document.Load(cfg.DocumentPath)
	require.NoError(t, err)
	page, err := doc.Page("")
	require.NoError(t, err)

	h := host.NewDocHost(doc)
	records, _ := collectRecords(h, page, variant.DefaultKeywords)
	unique := variant.Deduplicate(records, variant.DefaultPattern)
	require.Len(t, unique, 3)

	container := &document.Node{ID: "c", Name: "out", Type: document.TypeFrame}
	var stats RunStats
	m := &failingMaterializer{inner: h, failID: "1:3"}
	materializeAll(context.Background(), m, unique, variant.DefaultPattern, container, log, false, &stats)

	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.Failed)
	require.Len(t, container.Children, 2, "failure skips one member, batch continues")
	assert.Equal(t, "Arrow/type=outlined", container.Children[0].Name)
	assert.Equal(t, "Star/type=filled", container.Children[1].Name)
}

func TestReset(t *testing.T) {
	cfg, log, st := setup(t)

	_, err := Run(context.Background(), cfg, log, st)
	require.NoError(t, err)
	require.NotNil(t, generated(t, cfg.DocumentPath, cfg.ContainerName))

	require.NoError(t, Reset(cfg, log, st))
	assert.Nil(t, generated(t, cfg.DocumentPath, cfg.ContainerName))

	reloaded, err := state.Open(cfg.StateFile)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Settings.LastSets)
}
