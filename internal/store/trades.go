package store

import (
	"time"

	"moneyprinter/internal/domain"

	"github.com/shopspring/decimal"
)

// Threshold (in percent) above which a completed trade counts as a big win
// for the big-win mission.
var bigWinProfitPct = decimal.NewFromInt(15)

// AddTrade prepends the trade to the list. Most-recent-first ordering is the
// persisted display invariant.
func (s *Store) AddTrade(trade domain.Trade) {
	s.apply("add_trade", func(st *State) {
		st.Trades = append([]domain.Trade{trade}, st.Trades...)
	})
}

// UpdateTrade merges the partial update into the trade with the given id;
// unknown ids are a silent no-op. When the update completes the trade with a
// non-zero profit, the whole progression cascade runs inside the same
// transaction: profit is credited, XP is awarded with the streak multiplier,
// profit missions advance, and the streak is incremented — all observable as
// one state version.
func (s *Store) UpdateTrade(id string, upd domain.TradeUpdate) {
	s.applyChecked("update_trade", func(st *State) bool {
		return applyTradeUpdate(st, id, upd, s.now())
	})
}

func applyTradeUpdate(st *State, id string, upd domain.TradeUpdate, now time.Time) bool {
	idx := -1
	for i := range st.Trades {
		if st.Trades[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	trades := append([]domain.Trade(nil), st.Trades...)
	trade := trades[idx]
	if upd.ExitPrice != nil {
		trade.ExitPrice = upd.ExitPrice
	}
	if upd.Profit != nil {
		trade.Profit = upd.Profit
	}
	if upd.ProfitPercentage != nil {
		trade.ProfitPercentage = upd.ProfitPercentage
	}
	if upd.Status != nil {
		trade.Status = *upd.Status
	}
	if upd.CompletedAt != nil {
		trade.CompletedAt = upd.CompletedAt
	}
	if upd.XPEarned != nil {
		trade.XPEarned = *upd.XPEarned
	}
	if upd.Shared != nil {
		trade.Shared = *upd.Shared
	}
	trades[idx] = trade
	st.Trades = trades

	// Cascade fires only when this update both completes the trade and
	// carries a non-zero profit.
	completed := upd.Status != nil && *upd.Status == domain.TradeCompleted
	if !completed || upd.Profit == nil || upd.Profit.IsZero() {
		return true
	}

	applyUserProfit(st, *upd.Profit)

	multiplier := decimal.NewFromInt(1)
	if st.User != nil {
		multiplier = st.User.StreakMultiplier
	}
	var xpBase int
	if upd.XPEarned != nil {
		xpBase = *upd.XPEarned
	}
	award := int(decimal.NewFromInt(int64(xpBase)).Mul(multiplier).Round(0).IntPart())
	if award > 0 {
		applyUserXP(st, award)
	}

	if upd.Profit.IsPositive() {
		applyMissionProgress(st, MissionDailyProfit, *upd.Profit)
		if upd.ProfitPercentage != nil && upd.ProfitPercentage.GreaterThanOrEqual(bigWinProfitPct) {
			applyCompleteMission(st, MissionBigWin)
		}
	}

	applyIncrementStreak(st, now)
	return true
}
