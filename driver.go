package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// runBatch minifies every manifest file that exists, strictly in manifest
// order. The first read or write error aborts the whole run: the error is
// returned, outputs already written stay on disk, and later entries are
// not attempted. Missing sources are skipped with no output of any kind.
func (app *App) runBatch() (RunStats, error) {
	start := time.Now()
	var stats RunStats
	for _, asset := range defaultManifest {
		in, out, processed, err := app.minifyAsset(asset)
		if err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		if !processed {
			continue
		}
		stats.Processed++
		stats.BytesIn += in
		stats.BytesOut += out
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}

// minifyAsset runs one read, transform, write step for a manifest entry.
// A missing source is not an error: processed comes back false and
// nothing is printed. The destination is overwritten in place with no
// temp file, so an interrupted write can leave a truncated output.
func (app *App) minifyAsset(asset AssetFile) (in, out int64, processed bool, err error) {
	src := filepath.Join(app.Config.AssetDir, asset.Source)
	dst := filepath.Join(app.Config.AssetDir, asset.DestPath())

	if !fileExists(src) {
		return 0, 0, false, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return 0, 0, false, fmt.Errorf("read %s: %w", src, err)
	}

	minified := asset.Kind.Transform(string(data))
	if err := os.WriteFile(dst, []byte(minified), 0644); err != nil {
		return 0, 0, false, fmt.Errorf("write %s: %w", dst, err)
	}

	fmt.Fprintf(app.Out, "Minified %s -> %s\n", filepath.Base(src), filepath.Base(dst))

	in, out = int64(len(data)), int64(len(minified))
	if in > 0 {
		logDebug("%s: %d bytes -> %d bytes (%.1f%% reduction)",
			asset.Source, in, out, float64(in-out)/float64(in)*100)
	}
	return in, out, true, nil
}
