package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"moneyprinter/internal/domain"
	"moneyprinter/internal/infra"
	"moneyprinter/internal/infra/storage"
	"moneyprinter/internal/store"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config  *infra.Config
	Storage *storage.Storage
	Logos   *infra.LogoCache
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization (DB, Dir, etc.)
func (b *Bootstrap) Initialize() error {
	slog.Info("🚀 Bootstrapping MoneyPrinter...")

	// 1. Load Config
	cfg, err := infra.LoadConfig("configs/config.yaml")
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Initialize Storage (DB)
	db, err := storage.NewStorage()
	if err != nil {
		return err
	}
	b.Storage = db
	slog.Info("✅ Database initialized")

	// 4. Initialize Logo Cache
	logos, err := infra.NewLogoCache()
	if err != nil {
		return err
	}
	b.Logos = logos
	slog.Info("✅ Logo cache ready")

	return nil
}

// SyncLogos downloads badge, token and team artwork referenced by the seed
// fixtures in the background.
func (b *Bootstrap) SyncLogos(ctx context.Context, seed store.Seed) {
	slog.Info("🔄 Starting logo synchronization...")

	assets := collectAssets(seed)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 5) // Limit concurrent downloads

	for name, url := range assets {
		wg.Add(1)
		go func(name, url string) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}: // Acquire
			}
			defer func() { <-semaphore }() // Release

			path, err := b.Logos.Download(name, url)
			if err != nil {
				slog.Warn("Failed to download logo", slog.String("asset", name), slog.Any("error", err))
				return
			}

			record := &domain.AssetRecord{
				Name:         name,
				SourceURL:    url,
				LocalPath:    path,
				LastSyncedAt: time.Now(),
			}
			if err := b.Storage.UpsertAsset(record); err != nil {
				slog.Error("Failed to upsert asset", slog.String("asset", name), slog.Any("error", err))
			}
		}(name, url)
	}

	wg.Wait()
	slog.Info("✨ Logo synchronization completed")
}

// collectAssets gathers the unique name → URL pairs from the fixtures.
func collectAssets(seed store.Seed) map[string]string {
	assets := make(map[string]string)
	for _, badge := range seed.User.Badges {
		assets[badge.ID] = badge.ImageURL
	}
	for _, token := range seed.Wallet.Tokens {
		if token.Logo != "" {
			assets[token.Symbol] = token.Logo
		}
	}
	for _, trade := range seed.Trades {
		if trade.TokenLogo != "" {
			assets[trade.TokenSymbol] = trade.TokenLogo
		}
	}
	for _, team := range seed.Teams {
		if team.Logo != "" {
			assets[team.ID] = team.Logo
		}
	}
	return assets
}
