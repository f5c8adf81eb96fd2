// Package state persists operator settings and last-scan results across
// invocations — the synced key/value state of the tool. It is an explicit
// store with a load-at-start/save-at-end lifecycle, injected into the
// pipeline rather than held in package globals.
//
// The file is TOML with no schema versioning: unknown keys are ignored on
// load and a missing file yields defaults.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings is everything that survives between runs.
type Settings struct {
	// Pattern is the operator's name template. Empty until first edited.
	Pattern string `toml:"pattern"`
	// ContainerName is the output container the last run wrote to.
	ContainerName string `toml:"container_name"`
	// Keywords overrides the fallback classification vocabulary.
	Keywords []string `toml:"keywords"`

	// Last-scan summary, shown by the status output.
	LastSets    int       `toml:"last_sets"`
	LastMembers int       `toml:"last_members"`
	LastCreated int       `toml:"last_created"`
	LastScan    time.Time `toml:"last_scan"`
}

// Store couples Settings with the file they round-trip through.
type Store struct {
	path     string
	Settings Settings
}

// DefaultPath returns the per-user state file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "instancer-state.toml")
	}
	return filepath.Join(dir, "instancer", "state.toml")
}

// Open loads the store at path (DefaultPath when empty). A missing file is
// not an error: the store starts with zero-value settings.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, &s.Settings); err != nil {
		return nil, fmt.Errorf("parse state %q: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Save writes the settings atomically (temp file + rename), creating the
// parent directory when needed.
func (s *Store) Save() error {
	data, err := toml.Marshal(s.Settings)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".state-*.toml")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// RecordScan updates the last-scan summary.
func (s *Store) RecordScan(sets, members, created int, container string) {
	s.Settings.LastSets = sets
	s.Settings.LastMembers = members
	s.Settings.LastCreated = created
	s.Settings.ContainerName = container
	s.Settings.LastScan = time.Now().UTC()
}

// ClearScan resets the last-scan summary (the reset action). The pattern
// and vocabulary are operator settings and survive a reset.
func (s *Store) ClearScan() {
	s.Settings.LastSets = 0
	s.Settings.LastMembers = 0
	s.Settings.LastCreated = 0
	s.Settings.ContainerName = ""
	s.Settings.LastScan = time.Time{}
}
