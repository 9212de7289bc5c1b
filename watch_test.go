package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatcherRebuildsOnChange checks a changed manifest source gets
// re-minified while the watcher runs
func TestWatcherRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	app, _ := newTestApp(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := app.startWatcher(ctx); err != nil {
		t.Fatalf("startWatcher failed: %v", err)
	}

	src := filepath.Join(dir, "app.js")
	if err := os.WriteFile(src, []byte("let x = 1; // note\n"), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	// The create and write events can race the source content, so poll
	// until the finished output appears.
	dest := filepath.Join(dir, "app.min.js")
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(dest); err == nil && string(data) == "let x = 1;" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("watcher never produced the rebuilt %s", dest)
}

// TestWatcherIgnoresNonManifestFiles checks stray files do not trigger
// a rebuild
func TestWatcherIgnoresNonManifestFiles(t *testing.T) {
	dir := t.TempDir()
	app, _ := newTestApp(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := app.startWatcher(ctx); err != nil {
		t.Fatalf("startWatcher failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	if _, err := os.Stat(filepath.Join(dir, "notes.min.txt")); !os.IsNotExist(err) {
		t.Error("watcher minified a file outside the manifest")
	}
}
