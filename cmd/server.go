package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/superstore-analytics/kpi-engine/config"
	httpapi "github.com/superstore-analytics/kpi-engine/internal/api/http"
	"github.com/superstore-analytics/kpi-engine/internal/apisrv/dashboard"
	"github.com/superstore-analytics/kpi-engine/internal/kpi"
	"github.com/superstore-analytics/kpi-engine/internal/store"
	"github.com/superstore-analytics/kpi-engine/log"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	log.Setup(cfg.Logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("can't connect to store: %w", err)
	}
	defer db.Close()

	engine := kpi.NewEngine(db)
	dashboardServer := dashboard.New(engine, db)

	srv := httpapi.New(&cfg.HTTP)
	if err := srv.Start(ctx, dashboardServer); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		slog.Default().InfoContext(ctx, "shutting down",
			slog.String("signal", s.String()),
		)
		if err := srv.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("error", err.Error()),
			)
		}
	case <-srv.Done():
	}

	return nil
}
