package store

import (
	"moneyprinter/internal/domain"

	"github.com/shopspring/decimal"
)

// UpdateUserXP adds delta to the user's XP and resolves at most one level-up:
// when the new total crosses the threshold, the level increments once and the
// threshold grows by 1.5×. A delta large enough to cross two thresholds still
// advances a single level; the remainder resolves on the next award.
func (s *Store) UpdateUserXP(delta int) {
	s.applyChecked("update_user_xp", func(st *State) bool {
		if st.User == nil {
			return false
		}
		applyUserXP(st, delta)
		return true
	})
}

// UpdateUserProfit adds delta (sign-preserving) to the user's total profit.
func (s *Store) UpdateUserProfit(delta decimal.Decimal) {
	s.applyChecked("update_user_profit", func(st *State) bool {
		if st.User == nil {
			return false
		}
		applyUserProfit(st, delta)
		return true
	})
}

// UpdateUserStreak sets the user-side streak mirror and recomputes the
// multiplier. The canonical Streak entity is untouched; IncrementStreak and
// ResetStreak keep the two in sync internally.
func (s *Store) UpdateUserStreak(days int) {
	s.applyChecked("update_user_streak", func(st *State) bool {
		if st.User == nil {
			return false
		}
		applyUserStreak(st, days)
		return true
	})
}

func applyUserXP(st *State, delta int) {
	if st.User == nil {
		return
	}
	u := *st.User
	u.XP += delta
	if u.XP >= u.XPToNextLevel {
		u.Level++
		u.XPToNextLevel = domain.NextLevelThreshold(u.XPToNextLevel)
	}
	st.User = &u
}

func applyUserProfit(st *State, delta decimal.Decimal) {
	if st.User == nil {
		return
	}
	u := *st.User
	u.TotalProfit = u.TotalProfit.Add(delta)
	st.User = &u
}

func applyUserStreak(st *State, days int) {
	if st.User == nil {
		return
	}
	u := *st.User
	u.DailyStreak = days
	u.StreakMultiplier = domain.MultiplierForDays(days)
	st.User = &u
}
