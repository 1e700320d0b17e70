package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MissionType determines reset cadence.
type MissionType string

const (
	MissionDaily       MissionType = "daily"
	MissionWeekly      MissionType = "weekly"
	MissionAchievement MissionType = "achievement"
)

// Mission is a bounded progress counter with a one-time XP reward.
// Progress and Target are decimal because some missions accumulate profit
// amounts rather than event counts.
type Mission struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	XPReward    int             `json:"xp_reward"`
	Progress    decimal.Decimal `json:"progress"`
	Target      decimal.Decimal `json:"target"`
	Completed   bool            `json:"completed"`
	Type        MissionType     `json:"type"`
	Icon        string          `json:"icon"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
}

// IsExpired reports whether the mission's deadline has passed.
func (m *Mission) IsExpired(now time.Time) bool {
	return m.ExpiresAt != nil && now.After(*m.ExpiresAt)
}

// CompletionRatio returns progress/target clamped to [0, 1].
func (m *Mission) CompletionRatio() decimal.Decimal {
	if !m.Target.IsPositive() {
		return decimal.Zero
	}
	ratio := m.Progress.Div(m.Target)
	one := decimal.NewFromInt(1)
	if ratio.GreaterThan(one) {
		return one
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// EndOfDay returns the daily mission expiry for the given moment: the last
// millisecond of that calendar day.
func EndOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), now.Location())
}
