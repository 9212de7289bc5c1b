package main

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// defaultManifest lists every source file the tool minifies, in processing
// order: the stylesheet first, then the scripts. Paths are relative to the
// asset base directory.
var defaultManifest = []AssetFile{
	{Source: "styles.css", Kind: KindCSS},
	{Source: "app.js", Kind: KindJS},
	{Source: "modules/security.js", Kind: KindJS},
	{Source: "modules/calculations.js", Kind: KindJS},
	{Source: "pdf-worker.js", Kind: KindJS},
}

// destPath derives the output path from a source path by inserting .min
// before the final extension, keeping the directory: app.js -> app.min.js.
func destPath(source string) string {
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + MinSuffix + ext
}

// DestPath returns the derived output path for this entry.
func (a AssetFile) DestPath() string {
	return destPath(a.Source)
}

// manifestDirs returns the unique directories holding manifest sources,
// resolved against the asset base directory. These are what watch mode
// registers with fsnotify.
func manifestDirs(base string) []string {
	return lo.Uniq(lo.Map(defaultManifest, func(a AssetFile, _ int) string {
		return filepath.Join(base, filepath.Dir(a.Source))
	}))
}

// findManifestEntry maps a changed path back to its manifest entry.
// Paths that are not manifest sources, including the .min outputs the
// tool itself writes, return false.
func findManifestEntry(base, path string) (AssetFile, bool) {
	path = filepath.Clean(path)
	return lo.Find(defaultManifest, func(a AssetFile) bool {
		return filepath.Clean(filepath.Join(base, a.Source)) == path
	})
}
