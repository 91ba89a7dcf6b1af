package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/tillbook/internal/cache"
	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	cashStore "github.com/MrJamesThe3rd/tillbook/internal/cash/store"
	"github.com/MrJamesThe3rd/tillbook/internal/config"
	"github.com/MrJamesThe3rd/tillbook/internal/dashboard"
	"github.com/MrJamesThe3rd/tillbook/internal/database"
	"github.com/MrJamesThe3rd/tillbook/internal/export"
	tillbookHttp "github.com/MrJamesThe3rd/tillbook/internal/http"
	adminHandler "github.com/MrJamesThe3rd/tillbook/internal/http/admin"
	cashHandler "github.com/MrJamesThe3rd/tillbook/internal/http/cash"
	dashboardHandler "github.com/MrJamesThe3rd/tillbook/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/tillbook/internal/http/export"
	reportHandler "github.com/MrJamesThe3rd/tillbook/internal/http/report"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
	reportStore "github.com/MrJamesThe3rd/tillbook/internal/report/store"
	"github.com/MrJamesThe3rd/tillbook/internal/reset"
	resetStore "github.com/MrJamesThe3rd/tillbook/internal/reset/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	fallbackOwner, err := uuid.Parse(cfg.App.OwnerID)
	if err != nil {
		slog.Error("invalid OWNER_ID", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(db, cfg.DB.Name); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dashCache, err := cache.New(ctx, cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		slog.Warn("dashboard cache unavailable, continuing without it", "error", err)
	}
	defer dashCache.Close()

	var (
		cashService      = cash.NewService(cashStore.New(db))
		reportService    = report.NewService(reportStore.New(db), report.NewDirStorage(cfg.Storage.Dir))
		dashboardService = dashboard.NewService(cashService, reportService, dashCache)
		exportService    = export.NewService(cashService)
		resetService     = reset.NewService(resetStore.New(db), dashCache)
	)

	cashService.OnWrite(dashboardService.InvalidateToday)

	router := tillbookHttp.New(
		cfg.Server.CORSOrigins,
		fallbackOwner,
		cashHandler.NewHandler(cashService),
		exportHandler.NewHandler(exportService),
		reportHandler.NewHandler(reportService),
		dashboardHandler.NewHandler(dashboardService),
		adminHandler.NewHandler(resetService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
