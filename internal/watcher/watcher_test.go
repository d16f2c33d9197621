package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestFilters(t *testing.T) {
	exclude := ExcludeFilter("doc.go")

	testCases := []struct {
		path string
		want bool
	}{
		{"internal/examples/form_demo.go", true},
		{"internal/examples/form_demo_test.go", false},
		{"internal/examples/doc.go", false},
		{"internal/examples/.form_demo.go", false},
		{"internal/examples/notes.md", false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got := GoFilter(tc.path) && NoTestFilter(tc.path) && NoHiddenFilter(tc.path) && exclude(tc.path)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidatePath(t *testing.T) {
	_, err := validatePath("")
	assert.Error(t, err)

	_, err = validatePath("internal/../../etc")
	assert.Error(t, err)

	clean, err := validatePath("internal/examples/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("internal/examples"), clean)
}

func TestFileWatcherAddPath(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NoError(t, watcher.AddPath(t.TempDir()))
	assert.Error(t, watcher.AddPath(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, watcher.AddPath("../elsewhere"))
}

func TestFileWatcherAddRecursiveSkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested", "deeper"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0o755))

	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.AddRecursive(root))

	watched := watcher.watcher.WatchList()
	assert.Contains(t, watched, filepath.Join(root, "nested", "deeper"))
	assert.NotContains(t, watched, filepath.Join(root, ".git"))
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.start(ctx)

	d.events <- ChangeEvent{Type: EventTypeCreated, Path: "b.go"}
	d.events <- ChangeEvent{Type: EventTypeModified, Path: "a.go"}
	d.events <- ChangeEvent{Type: EventTypeModified, Path: "b.go"}

	select {
	case batch := <-d.output:
		require.Len(t, batch, 2)
		assert.Equal(t, "a.go", batch[0].Path)
		assert.Equal(t, "b.go", batch[1].Path)
		assert.Equal(t, EventTypeModified, batch[1].Type, "latest event per path wins")
	case <-time.After(2 * time.Second):
		t.Fatal("no batch emitted")
	}
}

func TestFileWatcherDeliversChanges(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	watcher.AddFilter(GoFilter)
	watcher.AddFilter(NoTestFilter)

	var (
		mu    sync.Mutex
		paths []string
	)
	watcher.AddHandler(func(_ context.Context, events []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		for _, ev := range events {
			paths = append(paths, filepath.Base(ev.Path))
		}

		return errors.New("handler errors are logged, not fatal")
	})

	require.NoError(t, watcher.AddPath(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.go"), []byte("package x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo_test.go"), []byte("package x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(paths) > 0
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, paths, "demo.go")
	assert.NotContains(t, paths, "demo_test.go")
	assert.NotContains(t, paths, "notes.txt")
}

func TestStopIsIdempotent(t *testing.T) {
	watcher, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)

	assert.NoError(t, watcher.Stop())
	assert.NoError(t, watcher.Stop())
}
