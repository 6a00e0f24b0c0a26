package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.stl")
	other := filepath.Join(dir, "other.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid a\n"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("solid b\n"), 0o644))

	fw, err := New(200*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 10)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("solid a\nendsolid a\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("solid c\n"), 0o644))

	select {
	case p := <-changed:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback")
	}

	select {
	case p := <-changed:
		t.Fatalf("unexpected second callback for %s", p)
	case <-time.After(500 * time.Millisecond):
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatchSerializesCallbacks(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "part.scad")
	second := filepath.Join(dir, "lib.scad")
	require.NoError(t, os.WriteFile(first, []byte("use <lib.scad>\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("module m() {}\n"), 0o644))

	fw, err := New(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	var running, overlaps atomic.Int32
	started := make(chan struct{}, 10)
	done := make(chan string, 10)
	require.NoError(t, fw.Watch([]string{first, second}, func(p string) {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		started <- struct{}{}
		time.Sleep(400 * time.Millisecond)
		running.Add(-1)
		done <- p
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fw.Run(ctx)

	require.NoError(t, os.WriteFile(first, []byte("use <lib.scad>\ncube(1);\n"), 0o644))
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback")
	}

	// Both change while the first callback is still busy
	require.NoError(t, os.WriteFile(second, []byte("module m() { cube(2); }\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(first, []byte("use <lib.scad>\ncube(3);\n"), 0o644))

	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("callback %d did not finish", i+1)
		}
	}
	assert.Zero(t, overlaps.Load())
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := New(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "missing", "part.stl")}, func(string) {})
	assert.Error(t, err)
}
