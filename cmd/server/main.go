package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/maplequiz/geoquiz/internal/atlas"
	"github.com/maplequiz/geoquiz/internal/config"
	"github.com/maplequiz/geoquiz/internal/database"
	"github.com/maplequiz/geoquiz/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	store, err := server.NewSQLiteStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Catalog ---
	// The embedded dataset seeds the database on first start; after that the
	// database is the source of truth so a deployment can override it.
	embedded, err := atlas.Load()
	if err != nil {
		return fmt.Errorf("loading embedded atlas: %w", err)
	}
	if err := store.SeedCatalog(ctx, embedded); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	catalog, err := store.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"regions", len(catalog.Regions),
		"settlements", len(catalog.Settlements),
	)

	// --- HTTP Server ---
	broker := server.NewBroker()
	registry := server.NewRegistry(catalog, broker, cfg.OptionCount, cfg.AdvanceDelay)
	defer registry.Close()

	srv := server.New(cfg.HTTPAddr, server.Deps{
		Logger:   logger,
		DB:       db,
		Store:    store,
		Catalog:  catalog,
		Registry: registry,
		Broker:   broker,
		SPADir:   cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
