package domain

import "time"

// BotStatus tracks the simulated sniping bot. Counters only move while the
// bot is active, driven by the external simulator.
type BotStatus struct {
	IsActive        bool       `json:"is_active"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	ScannedTokens   int        `json:"scanned_tokens"`
	PotentialSnipes int        `json:"potential_snipes"`
	ActiveSnipes    int        `json:"active_snipes"`
	CompletedSnipes int        `json:"completed_snipes"`
}

// BotStatusUpdate is a partial merge into BotStatus. Counter values are set,
// not added; the store does no bounds checking on them.
type BotStatusUpdate struct {
	IsActive        *bool
	StartedAt       *time.Time
	ScannedTokens   *int
	PotentialSnipes *int
	ActiveSnipes    *int
	CompletedSnipes *int
}
