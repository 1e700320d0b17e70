package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Streak is the canonical consecutive-day accounting. The user aggregate
// mirrors Days and the multiplier; the store keeps both in sync.
type Streak struct {
	Days        int             `json:"days"`
	LastUpdated time.Time       `json:"last_updated"`
	Multiplier  decimal.Decimal `json:"multiplier"`
	Trades      int             `json:"trades"`
	// ProfitableTrades is bumped in lock-step with Trades on every streak
	// touch; the product has never distinguished losing trades here.
	ProfitableTrades int `json:"profitable_trades"`
}

var (
	multiplierBase = decimal.NewFromInt(1)
	multiplierStep = decimal.NewFromFloat(0.1)

	// FirstDayMultiplier is the fixed multiplier after a gap-day reset.
	FirstDayMultiplier = decimal.NewFromFloat(1.1)
)

// MultiplierForDays computes the streak bonus: 1 + 0.1 per day.
func MultiplierForDays(days int) decimal.Decimal {
	return multiplierBase.Add(multiplierStep.Mul(decimal.NewFromInt(int64(days))))
}

// SameCalendarDay reports whether a and b fall on the same calendar date.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsConsecutiveDay reports whether now counts as the day right after last for
// streak purposes. The comparison is on the day-of-month with month-end
// wraparound: the last day of a month rolls over to the 1st.
func IsConsecutiveDay(last, now time.Time) bool {
	if now.Day()-last.Day() == 1 {
		return true
	}
	return now.Day() == 1 && last.Day() == lastDayOfMonth(last)
}

func lastDayOfMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// StreakUpdate is a partial merge into Streak.
type StreakUpdate struct {
	Days             *int
	LastUpdated      *time.Time
	Multiplier       *decimal.Decimal
	Trades           *int
	ProfitableTrades *int
}
