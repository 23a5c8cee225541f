package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goFiles(path string) bool {
	return strings.HasSuffix(path, ".go")
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	batches := make(chan []string, 4)

	w, err := New([]string{dir}, 50*time.Millisecond, goFiles, func(_ context.Context, paths []string) error {
		batches <- paths
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("package p\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package p\n"), 0o600))

	select {
	case paths := <-batches:
		assert.Equal(t, []string{filepath.Join(dir, "a.go"), filepath.Join(dir, "b.go")}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_HandlerErrorKeepsRunning(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	calls := make(chan struct{}, 4)

	w, err := New([]string{dir}, 20*time.Millisecond, goFiles, func(context.Context, []string) error {
		calls <- struct{}{}
		return assert.AnError
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = w.Run(ctx) }()

	path := filepath.Join(dir, "a.go")

	for range 2 {
		require.NoError(t, os.WriteFile(path, []byte("package p\n"), 0o600))

		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatal("handler was not called")
		}
	}
}

func TestNew_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := New([]string{filepath.Join(t.TempDir(), "missing")}, 0, goFiles, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestNew_DefaultDebounce(t *testing.T) {
	t.Parallel()

	w, err := New(nil, 0, goFiles, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	assert.Equal(t, DefaultDebounce, w.debounce)
}
