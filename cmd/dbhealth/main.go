package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brpayflow/boleto-tracker/internal/common"
	repo "github.com/brpayflow/boleto-tracker/internal/repository"
)

// dbhealth connects to the configured database, pings it, and runs a
// trivial typed query so connectivity and schema problems surface
// before deploying the daemon.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		fmt.Fprintln(os.Stderr, "error: DB_URL is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: time.Minute,
		MaxConnIdleTime: time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("ping failed", "error", err)
		os.Exit(1)
	}

	companies, err := repo.NewCompanyRepository(entc, logger).List(ctx)
	if err != nil {
		logger.Error("query failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("ok: database reachable, %d companies\n", len(companies))
}
