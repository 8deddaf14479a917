package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/postcrossing/cliparse"
	"github.com/danielhkuo/postcrossing/db"
	"github.com/danielhkuo/postcrossing/exchange"
	"github.com/danielhkuo/postcrossing/ledger"
	"github.com/danielhkuo/postcrossing/metrics"
	"github.com/danielhkuo/postcrossing/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("Server closed", "error", err)
		os.Exit(1)
	}
	log.Info("Server closed")
}

func run(cfg cliparse.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect, retrying while the database comes up
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL, 30*time.Second)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		return err
	}
	log.Info("Database schema ready", "type", cfg.DatabaseType)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	svc := exchange.NewService(
		ledger.NewSQLStore(dbConn, cfg.DatabaseType),
		m,
		exchange.WithLogger(log),
		exchange.WithAddress(cfg.PlaceholderAddress),
	)

	server := &http.Server{
		Handler:           router.NewRouter(svc, m, registry),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Listening", "port", cfg.Port)
		return server.ListenAndServe()
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
