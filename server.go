package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
)

// newRouter builds the preview server: gzip-compressed static serving of
// the asset directory with production-style cache headers, a request ID
// on every response, and a health endpoint. The server never triggers
// minification by itself.
func (app *App) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"}),
		ginGzip.WithExcludedPaths([]string{"/fonts"})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(app.applyCacheHeaders)
	router.Use(app.countServedMiddleware())

	router.GET(RouteHealth, app.healthHandler)
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(app.Config.AssetDir))))

	return router
}

// applyCacheHeaders marks asset responses publicly cacheable and keeps
// the health endpoint uncached.
func (app *App) applyCacheHeaders(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, RouteHealth) {
		cachecontrol.New(cachecontrol.Config{
			NoStore:        true,
			NoCache:        true,
			MustRevalidate: true,
		})(c)
		return
	}
	cachecontrol.New(cachecontrol.Config{
		Public: true,
		MaxAge: cachecontrol.Duration(app.Config.StaticCacheAge),
	})(c)
	c.Header("Vary", "Accept-Encoding")
}

// healthHandler reports uptime and how many asset requests were served.
func (app *App) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"asset_dir":    app.Config.AssetDir,
		"files_served": app.served.Load(),
		"uptime":       formatUptime(time.Since(app.StartTime)),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// startServer runs the preview server until the context is cancelled,
// then drains connections with a 10 second timeout.
func (app *App) startServer(ctx context.Context, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + app.Config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Preview server starting on http://localhost:%s (serving %s)", app.Config.Port, app.Config.AssetDir)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
