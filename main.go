package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"
)

func main() {
	watchMode := flag.Bool("watch", false, "keep running and re-minify sources as they change")
	serveMode := flag.Bool("serve", false, "serve the asset directory over HTTP after minifying")
	flag.Parse()
	if flag.NArg() > 0 {
		logFatal("Unexpected arguments: %v", flag.Args())
	}

	cfg := loadConfig()
	setLogLevel(cfg.LogLevel)
	app := newApp(cfg)

	logInfo("Starting assetmin (assets: %s)", cfg.AssetDir)

	stats, err := app.runBatch()
	if err != nil {
		logFatal("Minification failed: %v", err)
	}
	logInfo("Minified %d file%s, saved %s in %v",
		stats.Processed, plural(stats.Processed),
		formatBytes(stats.BytesIn-stats.BytesOut),
		stats.Elapsed.Round(time.Millisecond))

	if !*watchMode && !*serveMode {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watchMode {
		if err := app.startWatcher(ctx); err != nil {
			logFatal("Failed to start watcher: %v", err)
		}
	}

	if *serveMode {
		app.startServer(ctx, app.newRouter())
		return
	}

	<-ctx.Done()
	logInfo("Shutdown signal received, stopping watcher")
}

// newApp wires configuration into a ready-to-run App. Progress lines go
// to stdout; everything logged goes to stderr.
func newApp(cfg Config) *App {
	rps := cfg.WatchDebounceRPS
	if rps <= 0 {
		rps = 1
	}
	return &App{
		Config:    cfg,
		Out:       os.Stdout,
		StartTime: time.Now(),
		rebuild:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), rps),
	}
}
