package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moneyprinter/internal/app"
	"moneyprinter/internal/feed"
	"moneyprinter/internal/infra"
	"moneyprinter/internal/seed"
	"moneyprinter/internal/sim"
	"moneyprinter/internal/store"

	_ "net/http/pprof" // For pprof profiling
)

func main() {
	// 1. Pprof Server (for performance profiling)
	go func() {
		// Localhost only for security
		slog.Info("🕵️ Pprof server started on localhost:6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			slog.Error("Pprof server failed", slog.Any("error", err))
		}
	}()

	// 2. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := bootstrap.Config

	// 3. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Progression Store (rehydrates from the last persisted snapshot)
	fixtures := seed.Default()
	persister := store.NewKVPersister(bootstrap.Storage, cfg.Storage.Namespace)
	st := store.New(fixtures, persister)
	slog.Info("✅ Progression store ready")

	// 5. Background Logo Sync
	go bootstrap.SyncLogos(ctx, fixtures)

	// 6. State Feed (websocket push of every state version)
	broadcaster := feed.NewBroadcaster()
	st.Subscribe(broadcaster.Broadcast)

	mux := http.NewServeMux()
	mux.Handle("/ws", broadcaster.Handler())
	feedServer := &http.Server{Addr: cfg.Feed.Addr, Handler: mux}
	go func() {
		slog.Info("✅ State feed listening", slog.String("addr", cfg.Feed.Addr))
		if err := feedServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("State feed failed", slog.Any("error", err))
		}
	}()

	// 7. Bot Activity Simulator
	simulator := sim.New(st,
		time.Duration(cfg.Simulation.TickIntervalMS)*time.Millisecond,
		cfg.Simulation.MaxTokensPerScan,
	)
	simulator.Start(ctx)
	slog.Info("✅ Bot simulator started")

	// 8. Daily Mission Reset Scheduler
	scheduler := infra.NewScheduler(st, cfg.Missions.DailyResetSpec)
	if err := scheduler.Start(); err != nil {
		slog.Error("❌ Scheduler failed to start", slog.Any("error", err))
		os.Exit(1)
	}
	defer scheduler.Stop()

	slog.InfoContext(ctx, "✨ MoneyPrinter fully operational. Press Ctrl+C to exit.")

	// Wait for shutdown signal
	<-ctx.Done()

	slog.InfoContext(ctx, "👋 Shutting down gracefully...")
	simulator.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := feedServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Feed server shutdown failed", slog.Any("error", err))
	}
}
