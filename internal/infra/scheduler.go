package infra

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// MissionResetter is the slice of the store the scheduler needs.
type MissionResetter interface {
	ResetDailyMissions()
}

// Scheduler drives the midnight daily mission reset.
type Scheduler struct {
	cron  *cron.Cron
	store MissionResetter
	spec  string
}

// NewScheduler creates a scheduler with a seconds-aware cron spec.
func NewScheduler(store MissionResetter, spec string) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		store: store,
		spec:  spec,
	}
}

// Start registers the reset job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		slog.Info("resetting daily missions")
		s.store.ResetDailyMissions()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("✅ Mission scheduler started", slog.String("spec", s.spec))
	return nil
}

// Stop stops the scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("Mission scheduler stopped")
}
