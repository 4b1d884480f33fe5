package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	w := &Watcher{opts: Options{Ignore: []string{"/p/dist"}}}

	assert.True(t, w.relevant(fsnotify.Event{Name: "/p/server/a.ts", Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: "/p/distant/a.ts", Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/p/server/a.ts", Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/p/dist", Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/p/dist/build-manifest.json", Op: fsnotify.Write}))
}

func TestNew_WatchesTreeAndSkipsMissing(t *testing.T) {
	root := t.TempDir()
	server := filepath.Join(root, "server")
	require.NoError(t, os.MkdirAll(filepath.Join(server, "routes"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(server, "dist"), 0o755))

	w, err := New(Options{
		Dirs:   []string{server, filepath.Join(root, "missing")},
		Ignore: []string{filepath.Join(server, "dist")},
		Run:    func(context.Context) error { return nil },
	})
	require.NoError(t, err)
	defer w.fsw.Close()

	assert.ElementsMatch(t, []string{server, filepath.Join(server, "routes")}, w.WatchList())
}

func TestRun_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	runs := make(chan struct{}, 10)

	w, err := New(Options{
		Dirs:     []string{dir},
		Debounce: 100 * time.Millisecond,
		Run: func(context.Context) error {
			runs <- struct{}{}
			return nil
		},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.ts"), []byte{byte('a' + i)}, 0o644))
	}

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a run after source change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	assert.LessOrEqual(t, len(runs), 1, "burst of writes should coalesce")
}

func TestRun_WatchesNewSubdirectories(t *testing.T) {
	dir := t.TempDir()
	runs := make(chan struct{}, 10)

	w, err := New(Options{
		Dirs:     []string{dir},
		Debounce: 50 * time.Millisecond,
		Run: func(context.Context) error {
			runs <- struct{}{}
			return nil
		},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	routes := filepath.Join(dir, "routes")
	require.NoError(t, os.Mkdir(routes, 0o755))

	// The mkdir itself triggers a run once the new directory is watched.
	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a run after creating a subdirectory")
	}
	assert.Contains(t, w.WatchList(), routes)

	require.NoError(t, os.WriteFile(filepath.Join(routes, "users.ts"), []byte("export {}\n"), 0o644))

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a run after writing inside the new subdirectory")
	}
}
