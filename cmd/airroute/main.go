// SPDX-License-Identifier: MIT

// Command airroute serves the route planner over HTTP.
//
//	airroute -config ./airroute.yaml
//	AIRROUTE_CATALOG=./in-airports.csv AIRROUTE_SEED=42 airroute
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/internal/catalog"
	"github.com/katalvlaran/airroute/internal/catalog/sqlite"
	"github.com/katalvlaran/airroute/internal/config"
	"github.com/katalvlaran/airroute/internal/httpapi"
	"github.com/katalvlaran/airroute/internal/logging"
	"github.com/katalvlaran/airroute/internal/metrics"
	"github.com/katalvlaran/airroute/planner"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "airroute:", err)
		os.Exit(1)
	}
}

func run() error {
	// Command line flags
	cfgPath := flag.String("config", "", "config file (overrides "+config.EnvConfigPath+")")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	if *cfgPath != "" {
		if err := os.Setenv(config.EnvConfigPath, *cfgPath); err != nil {
			return err
		}
	}
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(log)
	if path != "" {
		log.Info("config loaded", "path", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, log)

	var store *sqlite.Store
	if cfg.Catalog.Database != "" {
		if store, err = sqlite.New(cfg.Catalog.Database); err != nil {
			return err
		}
		defer store.Close()
		log.Info("database opened", "path", cfg.Catalog.Database)
	}

	collector := metrics.New(true)
	p := planner.New(
		planner.WithLogger(log),
		planner.WithRecorder(collector),
		planner.WithSeed(cfg.Graph.Seed),
		planner.WithBuilderOptions(cfg.Graph.BuilderOptions()...),
	)

	loader := newLoader(cfg.Catalog, store)
	if err := bootstrap(ctx, p, loader, cfg.Catalog, store); err != nil {
		return err
	}

	opts := []httpapi.Option{
		httpapi.WithLogger(log),
		httpapi.WithMetricsHandler(collector.Handler()),
		httpapi.WithAllowOrigins(cfg.Server.AllowOrigins...),
	}
	if loader != nil {
		opts = append(opts, httpapi.WithLoader(loader))
	}
	if store != nil {
		opts = append(opts, httpapi.WithNodeSaver(store))
	}

	if logging.ParseLevel(cfg.Log.Level) != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.New(p, opts...).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")

	return nil
}

// newLoader prefers the catalogue file and falls back to the database.
// It returns nil when neither is configured.
func newLoader(cc config.CatalogConfig, store *sqlite.Store) httpapi.Loader {
	switch {
	case cc.Path != "":
		return func(context.Context) ([]core.Node, error) {
			return catalog.LoadFile(cc.Path)
		}
	case store != nil:
		return store.Nodes
	default:
		return nil
	}
}

// bootstrap publishes the first network. A file catalogue is copied into
// the database; an empty source leaves the planner waiting for POST
// /api/graph.
func bootstrap(ctx context.Context, p *planner.Planner, load httpapi.Loader, cc config.CatalogConfig, store *sqlite.Store) error {
	log := logging.FromContext(ctx)
	if load == nil {
		log.Warn("no catalogue configured; waiting for POST /api/graph")
		return nil
	}

	nodes, err := load(ctx)
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}
	if len(nodes) == 0 {
		log.Warn("catalogue is empty; waiting for POST /api/graph")
		return nil
	}
	log.Info("catalogue loaded", "airports", len(nodes), "bounds", catalog.Bounds(nodes))
	if cc.Path == "" && store != nil {
		at, ok, err := store.SavedAt(ctx)
		switch {
		case err != nil:
			log.Warn("read catalogue timestamp failed", "error", err)
		case ok:
			log.Info("catalogue restored from database", "saved_at", at, "age", time.Since(at).Round(time.Second))
		}
	}

	if _, err := p.InitializeGraph(ctx, nodes); err != nil {
		return err
	}
	if store != nil && cc.Path != "" {
		if err := store.SaveNodes(ctx, nodes); err != nil {
			return fmt.Errorf("persist catalogue: %w", err)
		}
	}

	return nil
}
