package main

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
)

// startWatcher watches the manifest directories and re-minifies a source
// whenever it is written or created. Events for files outside the
// manifest, including the .min outputs the rebuilds themselves write,
// are ignored. Rebuild errors are logged and watching continues; only
// the initial batch has abort-on-first-error semantics. The watcher
// stops when the context is cancelled.
func (app *App) startWatcher(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := lo.Filter(manifestDirs(app.Config.AssetDir), func(dir string, _ int) bool {
		return dirExists(dir)
	})
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return err
		}
		logInfo("Watching %s", dir)
	}

	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				asset, found := findManifestEntry(app.Config.AssetDir, event.Name)
				if !found {
					continue
				}
				if !app.rebuild.Allow() {
					logDebug("Debounced rebuild of %s", asset.Source)
					continue
				}
				if _, _, _, err := app.minifyAsset(asset); err != nil {
					logWarn("Rebuild of %s failed: %v", asset.Source, err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logWarn("Watcher error: %v", err)
			}
		}
	}()
	return nil
}
