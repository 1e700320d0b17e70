package store

import (
	"time"

	"moneyprinter/internal/domain"
)

// UpdateStreak shallow-merges the given fields into the canonical streak.
func (s *Store) UpdateStreak(upd domain.StreakUpdate) {
	s.apply("update_streak", func(st *State) {
		streak := st.Streak
		if upd.Days != nil {
			streak.Days = *upd.Days
		}
		if upd.LastUpdated != nil {
			streak.LastUpdated = *upd.LastUpdated
		}
		if upd.Multiplier != nil {
			streak.Multiplier = *upd.Multiplier
		}
		if upd.Trades != nil {
			streak.Trades = *upd.Trades
		}
		if upd.ProfitableTrades != nil {
			streak.ProfitableTrades = *upd.ProfitableTrades
		}
		st.Streak = streak
	})
}

// IncrementStreak advances the consecutive-day state machine:
//
//   - consecutive calendar day: days+1, recomputed multiplier, propagated to
//     the user mirror
//   - a different, non-consecutive day: reset to days=1 with the fixed
//     first-day multiplier, propagated
//   - same day: only the trade counters move
//
// Trades and ProfitableTrades are bumped together in every branch.
func (s *Store) IncrementStreak() {
	s.apply("increment_streak", func(st *State) {
		applyIncrementStreak(st, s.now())
	})
}

// ResetStreak zeroes the streak and its user mirror.
func (s *Store) ResetStreak() {
	s.apply("reset_streak", func(st *State) {
		st.Streak = domain.Streak{
			Days:        0,
			Multiplier:  domain.MultiplierForDays(0),
			LastUpdated: s.now(),
		}
		applyUserStreak(st, 0)
	})
}

func applyIncrementStreak(st *State, now time.Time) {
	streak := st.Streak
	streak.Trades++
	streak.ProfitableTrades++

	switch {
	case domain.IsConsecutiveDay(streak.LastUpdated, now):
		streak.Days++
		streak.Multiplier = domain.MultiplierForDays(streak.Days)
		streak.LastUpdated = now
		st.Streak = streak
		applyUserStreak(st, streak.Days)
	case !domain.SameCalendarDay(streak.LastUpdated, now):
		streak.Days = 1
		streak.Multiplier = domain.FirstDayMultiplier
		streak.LastUpdated = now
		st.Streak = streak
		applyUserStreak(st, 1)
	default:
		// Same calendar day: counters only, mirror already consistent.
		st.Streak = streak
	}
}
