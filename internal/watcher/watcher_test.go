package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startWatch runs w.Watch in the background and returns the error channel.
// The short sleep gives the watcher time to register with the kernel before
// the test mutates files.
func startWatch(ctx context.Context, w *Watcher) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx)
	}()
	time.Sleep(100 * time.Millisecond)
	return done
}

func TestWatchDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weaver.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 8)
	w := New(path, func() { changed <- struct{}{} }).WithDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := startWatch(ctx, w)

	if err := os.WriteFile(path, []byte("version: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification after writing the file")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Watch returned %v, want context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after context cancellation")
	}
}

func TestWatchDetectsReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weaver.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 8)
	w := New(path, func() { changed <- struct{}{} }).WithDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWatch(ctx, w)

	// Editors often save by writing a temp file and renaming it over the
	// original.
	tmp := filepath.Join(dir, "weaver.yaml.tmp")
	if err := os.WriteFile(tmp, []byte("version: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification after replacing the file")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weaver.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 8)
	w := New(path, func() { changed <- struct{}{} }).WithDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWatch(ctx, w)

	sibling := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(sibling, []byte("unrelated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("unexpected notification for a sibling file")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchCollapsesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weaver.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 8)
	w := New(path, func() { changed <- struct{}{} }).WithDebounce(250 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWatch(ctx, w)

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("version: 2\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a notification after the burst")
	}

	// The burst happened well inside one debounce window, so a second
	// callback would mean the timer was not collapsing events.
	select {
	case <-changed:
		t.Fatal("burst of writes produced more than one notification")
	case <-time.After(400 * time.Millisecond):
	}
}
