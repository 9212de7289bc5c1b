package main

import (
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"assetmin/internal/minify"
)

// AssetKind selects which transform applies to a source file.
type AssetKind int

const (
	KindCSS AssetKind = iota
	KindJS
)

// String returns the lowercase name of the kind.
func (k AssetKind) String() string {
	if k == KindCSS {
		return "css"
	}
	return "js"
}

// Transform applies the kind's minifier to the given source text.
func (k AssetKind) Transform(src string) string {
	if k == KindCSS {
		return minify.CSS(src)
	}
	return minify.JS(src)
}

// AssetFile is one manifest entry: a source path relative to the asset
// base directory plus the transform kind applied to it.
type AssetFile struct {
	Source string
	Kind   AssetKind
}

// RunStats accumulates totals for one batch run
type RunStats struct {
	Processed int
	BytesIn   int64
	BytesOut  int64
	Elapsed   time.Duration
}

// App carries the runtime configuration and counters shared by the batch
// driver, the watcher, and the preview server.
type App struct {
	Config    Config
	Out       io.Writer // destination for the per-file progress lines
	StartTime time.Time

	served  atomic.Int64  // files served by the preview server
	rebuild *rate.Limiter // watch-mode rebuild throttle
}
