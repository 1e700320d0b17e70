package store

import (
	"moneyprinter/internal/domain"

	"github.com/shopspring/decimal"
)

// ToggleBot flips the bot's active flag. Every activation stamps StartedAt
// and touches the bot-running mission with a zero progress delta, which
// re-evaluates its completion state without moving the counter.
func (s *Store) ToggleBot() {
	s.apply("toggle_bot", func(st *State) {
		status := st.BotStatus
		activating := !status.IsActive
		status.IsActive = activating
		if activating {
			now := s.now()
			status.StartedAt = &now
		}
		st.BotStatus = status

		if activating {
			applyMissionProgress(st, MissionBotRunning, decimal.Zero)
		}
	})
}

// UpdateBotStatus shallow-merges the given fields into BotStatus. Counter
// values are taken verbatim; the simulator owns their plausibility.
func (s *Store) UpdateBotStatus(upd domain.BotStatusUpdate) {
	s.apply("update_bot_status", func(st *State) {
		status := st.BotStatus
		if upd.IsActive != nil {
			status.IsActive = *upd.IsActive
		}
		if upd.StartedAt != nil {
			status.StartedAt = upd.StartedAt
		}
		if upd.ScannedTokens != nil {
			status.ScannedTokens = *upd.ScannedTokens
		}
		if upd.PotentialSnipes != nil {
			status.PotentialSnipes = *upd.PotentialSnipes
		}
		if upd.ActiveSnipes != nil {
			status.ActiveSnipes = *upd.ActiveSnipes
		}
		if upd.CompletedSnipes != nil {
			status.CompletedSnipes = *upd.CompletedSnipes
		}
		st.BotStatus = status
	})
}
