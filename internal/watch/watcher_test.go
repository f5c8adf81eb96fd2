package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Error(string, ...interface{})       {}
func (nopLogger) Debug(bool, string, ...interface{}) {}

func TestFiresOnExternalChange(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{}`), 0o644))

	fired := make(chan struct{}, 8)
	w, err := New(doc, 30*time.Millisecond, false, nopLogger{}, func(context.Context) error {
		fired <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to start, then touch the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(doc, []byte(`{"changed":1}`), 0o644))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback never fired")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestDebounceCoalesces(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{}`), 0o644))

	var runs atomic.Int32
	w, err := New(doc, 150*time.Millisecond, false, nopLogger{}, func(context.Context) error {
		runs.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(100 * time.Millisecond)
	// A burst of writes inside one debounce window.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(doc, []byte{byte('a' + i)}, 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)
	if n := runs.Load(); n != 1 {
		t.Fatalf("expected 1 coalesced run, got %d", n)
	}
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{}`), 0o644))

	var runs atomic.Int32
	w, err := New(doc, 30*time.Millisecond, false, nopLogger{}, func(context.Context) error {
		runs.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)

	if n := runs.Load(); n != 0 {
		t.Fatalf("sibling file change triggered %d runs", n)
	}
}

func TestMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent", "doc.json"), time.Second, false, nopLogger{}, nil)
	require.Error(t, err)
}
