package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileWatcherDebouncedCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte("operations: []\n"), 0600))

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fw.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("operations: []\n# edit\n"), 0600))

	select {
	case p := <-changed:
		require.Equal(t, filepath.Base(path), filepath.Base(p))
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification received")
	}
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ops.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fw.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0600))

	select {
	case p := <-changed:
		t.Fatalf("unexpected notification for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcherHandlersDoNotOverlap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ops.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	fw, err := NewFileWatcher(0, nil)
	require.NoError(t, err)
	defer fw.Close()

	var active, maxActive int32
	started := make(chan struct{}, 2)
	done := make(chan struct{}, 2)
	require.NoError(t, fw.Watch([]string{path}, func(string) {
		n := atomic.AddInt32(&active, 1)
		if n > atomic.LoadInt32(&maxActive) {
			atomic.StoreInt32(&maxActive, n)
		}
		started <- struct{}{}
		time.Sleep(50 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		done <- struct{}{}
	}))

	fw.handleFileChange(path)
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first handler did not start")
	}
	fw.handleFileChange(path)

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("handler did not finish")
		}
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}
