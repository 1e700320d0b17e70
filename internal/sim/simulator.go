// Package sim fakes the sniping bot's activity. Nothing here trades: a
// jittered ticker bumps the bot counters and accrues run-time mission
// progress through the store's regular action surface.
package sim

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"moneyprinter/internal/domain"
	"moneyprinter/internal/store"

	"github.com/shopspring/decimal"
)

// Simulator periodically nudges the bot counters while the bot is active.
type Simulator struct {
	store        *store.Store
	tickInterval time.Duration
	maxScan      int
	rng          *rand.Rand
	cancel       context.CancelFunc
	done         chan struct{}
}

// New creates a simulator. maxScan bounds the per-tick scan burst.
func New(st *store.Store, tickInterval time.Duration, maxScan int) *Simulator {
	return &Simulator{
		store:        st,
		tickInterval: tickInterval,
		maxScan:      maxScan,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start begins the activity loop.
func (s *Simulator) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Simulator panic recovered", slog.Any("panic", r))
			}
		}()

		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Simulator stopped")
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit.
func (s *Simulator) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

// tick applies one round of simulated activity. Counters only move while
// the bot is active.
func (s *Simulator) tick() {
	snap := s.store.Snapshot()
	if !snap.BotStatus.IsActive {
		return
	}

	upd := step(s.rng, snap.BotStatus, s.maxScan)
	s.store.UpdateBotStatus(upd)

	// Run-time accrues toward the bot-running mission, in minutes.
	minutes := decimal.NewFromFloat(s.tickInterval.Minutes())
	s.store.UpdateMissionProgress(store.MissionBotRunning, minutes)
}

// step computes the next counter values with random jitter. Pure with
// respect to the rng so tests can pin it with a fixed seed.
func step(rng *rand.Rand, status domain.BotStatus, maxScan int) domain.BotStatusUpdate {
	scanned := status.ScannedTokens + 1 + rng.Intn(maxScan)
	potential := status.PotentialSnipes
	active := status.ActiveSnipes
	completed := status.CompletedSnipes

	// Roughly one in three scans surfaces a candidate.
	if rng.Intn(3) == 0 {
		potential++
	}
	// Candidates graduate to active snipes, snipes eventually complete.
	if potential > active+completed && rng.Intn(4) == 0 {
		active++
	}
	if active > 0 && rng.Intn(4) == 0 {
		active--
		completed++
	}

	return domain.BotStatusUpdate{
		ScannedTokens:   &scanned,
		PotentialSnipes: &potential,
		ActiveSnipes:    &active,
		CompletedSnipes: &completed,
	}
}
