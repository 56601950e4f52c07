package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
	"crowdfund/internal/metrics"
)

// main is the entry point of the crowdfund service. It loads configuration,
// opens the configured host ledger (running migrations and genesis seeding
// when asked), then serves the HTTP API until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	genesis, err := db.ParseGenesis(cfg.Ledger.Genesis)
	if err != nil {
		logger.Error("invalid genesis", slog.Any("error", err))
		return
	}
	rent := domain.Rent{
		StorageOverhead:     cfg.Ledger.AccountStorageOverhead,
		LamportsPerByteYear: cfg.Ledger.LamportsPerByteYear,
		ExemptionYears:      cfg.Ledger.ExemptionThresholdYears,
	}

	var ledger port.Ledger
	switch cfg.Ledger.BackendName() {
	case "memory":
		mem := memory.NewLedger(rent)
		for _, g := range genesis {
			if err = mem.Fund(g.Address, g.Lamports); err != nil {
				logger.Error("genesis error", slog.Any("error", err))
				return
			}
		}
		ledger = mem
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		if err = db.Seed(ctx, pool, genesis); err != nil {
			logger.Error("genesis error", slog.Any("error", err))
			return
		}
		ledger = postgres.NewLedger(pool, rent)
	}
	logger.Info("ledger ready",
		slog.String("backend", cfg.Ledger.BackendName()),
		slog.Int("genesis_accounts", len(genesis)))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := usecase.NewCampaignUseCase(ledger, usecase.Params{
		SeedTag:      cfg.Ledger.SeedTag,
		ProgramID:    cfg.Ledger.ProgramID,
		AccountSpace: cfg.Ledger.CampaignAccountSpace,
	}, logger, metrics.NewOperations(registry))

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		SignatureMaxSkew: cfg.HTTP.SignatureMaxSkew,
		MaxBodyBytes:     cfg.HTTP.MaxBodyBytes,
		Gatherer:         registry,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
