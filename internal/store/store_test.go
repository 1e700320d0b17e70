package store

import (
	"fmt"
	"testing"
	"time"

	"moneyprinter/internal/domain"

	"github.com/shopspring/decimal"
)

// Fixed clock for deterministic streak and expiry math.
var testNow = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func statusPtr(s domain.TradeStatus) *domain.TradeStatus { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func testSeed() Seed {
	return Seed{
		User: domain.User{
			ID:               "user-1",
			Username:         "printer",
			Level:            3,
			XP:               350,
			XPToNextLevel:    500,
			TotalProfit:      dec(100),
			DailyStreak:      3,
			StreakMultiplier: dec(1.3),
			Friends:          []string{"user-2"},
		},
		Wallet: domain.Wallet{
			Address: "wallet-default",
			Balance: dec(1.5),
		},
		Trades: []domain.Trade{
			{
				ID:          "trade-1",
				TokenName:   "Meme Coin",
				TokenSymbol: "MEME",
				EntryPrice:  dec(0.0005),
				Amount:      dec(20000),
				Status:      domain.TradeActive,
				CreatedAt:   testNow.Add(-time.Hour),
			},
			{
				ID:               "trade-2",
				TokenName:        "Bonk",
				TokenSymbol:      "BONK",
				EntryPrice:       dec(0.0000002),
				Amount:           dec(500000000),
				Profit:           decPtr(25),
				ProfitPercentage: decPtr(25),
				Status:           domain.TradeCompleted,
				CreatedAt:        testNow.Add(-2 * time.Hour),
				XPEarned:         15,
			},
		},
		Missions: []domain.Mission{
			{
				ID:       MissionBotRunning,
				Title:    "Print for 15 minutes",
				XPReward: 50,
				Progress: dec(5),
				Target:   dec(15),
				Type:     domain.MissionDaily,
			},
			{
				ID:       MissionDailyProfit,
				Title:    "Earn $100 profit today",
				XPReward: 75,
				Progress: decimal.Zero,
				Target:   dec(100),
				Type:     domain.MissionDaily,
			},
			{
				ID:       MissionBigWin,
				Title:    "Close a trade above 15% profit",
				XPReward: 120,
				Progress: decimal.Zero,
				Target:   dec(1),
				Type:     domain.MissionDaily,
			},
			{
				ID:       "mission-ach",
				Title:    "Complete 100 trades",
				XPReward: 500,
				Progress: dec(42),
				Target:   dec(100),
				Type:     domain.MissionAchievement,
			},
		},
		SocialPosts: []domain.SocialPost{
			{
				ID:       "post-1",
				UserID:   "user-2",
				Username: "whale_master",
				Content:  "Printing today",
				Likes:    1,
				LikedBy:  []string{"user-2"},
			},
		},
		Teams: []domain.Team{
			{ID: "team-1", Name: "Alpha Hunters", Members: []string{"user-2", "user-3"}},
			{ID: "team-2", Name: "Degen Squad", Members: []string{"user-6"}},
		},
		Streak: domain.Streak{
			Days:             3,
			LastUpdated:      testNow,
			Multiplier:       dec(1.3),
			Trades:           5,
			ProfitableTrades: 4,
		},
	}
}

// newTestStore returns a logged-in store with a pinned clock and id source.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(testSeed(), nil)
	s.now = func() time.Time { return testNow }
	ids := 0
	s.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	s.Login("wallet-test")
	return s
}

func TestLoginStampsWalletAddress(t *testing.T) {
	s := newTestStore(t)
	snap := s.Snapshot()

	if !snap.IsAuthenticated {
		t.Fatal("expected authenticated session after login")
	}
	if snap.User == nil || snap.Wallet == nil {
		t.Fatal("expected user and wallet after login")
	}
	if snap.User.WalletAddress != "wallet-test" {
		t.Errorf("user wallet address = %q, want wallet-test", snap.User.WalletAddress)
	}
	if snap.Wallet.Address != "wallet-test" {
		t.Errorf("wallet address = %q, want wallet-test", snap.Wallet.Address)
	}
	if !snap.User.LastActive.Equal(testNow) {
		t.Errorf("last active = %v, want %v", snap.User.LastActive, testNow)
	}
}

func TestUpdateUserXPLevelUp(t *testing.T) {
	s := newTestStore(t)

	s.UpdateUserXP(200) // 350 + 200 = 550 >= 500

	u := s.Snapshot().User
	if u.XP != 550 {
		t.Errorf("xp = %d, want 550 (no reset at level-up)", u.XP)
	}
	if u.Level != 4 {
		t.Errorf("level = %d, want 4", u.Level)
	}
	if u.XPToNextLevel != 750 {
		t.Errorf("threshold = %d, want 750", u.XPToNextLevel)
	}
}

func TestUpdateUserXPSingleLevelPerAward(t *testing.T) {
	s := newTestStore(t)

	// Crosses 500 and the new 750 threshold, but a single award only ever
	// advances one level; the rest resolves on the next award.
	s.UpdateUserXP(2000)

	u := s.Snapshot().User
	if u.Level != 4 {
		t.Errorf("level = %d, want 4 after one award", u.Level)
	}
	if u.XPToNextLevel != 750 {
		t.Errorf("threshold = %d, want 750", u.XPToNextLevel)
	}

	s.UpdateUserXP(0)
	u = s.Snapshot().User
	if u.Level != 5 {
		t.Errorf("level = %d, want 5 after follow-up award", u.Level)
	}
}

func TestUpdateUserXPWithoutUser(t *testing.T) {
	s := New(testSeed(), nil) // not logged in
	var noops []string
	s.OnNoop(func(action string) { noops = append(noops, action) })

	before := s.Snapshot().Version
	s.UpdateUserXP(100)

	if got := s.Snapshot().Version; got != before {
		t.Errorf("version = %d, want unchanged %d", got, before)
	}
	if len(noops) != 1 || noops[0] != "update_user_xp" {
		t.Errorf("noops = %v, want [update_user_xp]", noops)
	}
}

func TestUpdateUserProfit(t *testing.T) {
	s := newTestStore(t)

	s.UpdateUserProfit(dec(-30.5))

	got := s.Snapshot().User.TotalProfit
	if !got.Equal(dec(69.5)) {
		t.Errorf("total profit = %s, want 69.5", got)
	}
}

func TestMissionProgressAwardsXPOnce(t *testing.T) {
	s := newTestStore(t)
	xpBefore := s.Snapshot().User.XP

	s.UpdateMissionProgress(MissionBotRunning, dec(10)) // 5 + 10 = 15 = target

	snap := s.Snapshot()
	m := snap.FindMission(MissionBotRunning)
	if !m.Completed {
		t.Fatal("mission should be completed at target")
	}
	if snap.User.XP != xpBefore+50 {
		t.Errorf("xp = %d, want %d", snap.User.XP, xpBefore+50)
	}

	// Progress past the target: still completed, no second reward.
	s.UpdateMissionProgress(MissionBotRunning, dec(5))
	snap = s.Snapshot()
	m = snap.FindMission(MissionBotRunning)
	if !m.Progress.Equal(dec(20)) {
		t.Errorf("progress = %s, want 20", m.Progress)
	}
	if snap.User.XP != xpBefore+50 {
		t.Errorf("xp = %d, want %d (reward granted once)", snap.User.XP, xpBefore+50)
	}
}

func TestUpdateMissionProgressUnknownID(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot().Version

	s.UpdateMissionProgress("mission-nope", dec(1))

	if got := s.Snapshot().Version; got != before {
		t.Errorf("version = %d, want unchanged %d", got, before)
	}
}

func TestCompleteMissionIdempotent(t *testing.T) {
	s := newTestStore(t)
	xpBefore := s.Snapshot().User.XP

	s.CompleteMission(MissionBigWin)
	snap := s.Snapshot()
	m := snap.FindMission(MissionBigWin)
	if !m.Completed || !m.Progress.Equal(m.Target) {
		t.Fatalf("mission not force-completed: %+v", m)
	}
	if snap.User.XP != xpBefore+120 {
		t.Errorf("xp = %d, want %d", snap.User.XP, xpBefore+120)
	}

	s.CompleteMission(MissionBigWin)
	if got := s.Snapshot().User.XP; got != xpBefore+120 {
		t.Errorf("xp = %d, want %d after repeat completion", got, xpBefore+120)
	}
}

func TestResetDailyMissions(t *testing.T) {
	s := newTestStore(t)
	s.CompleteMission(MissionBigWin)

	s.ResetDailyMissions()

	snap := s.Snapshot()
	expiry := domain.EndOfDay(testNow)
	for _, id := range []string{MissionBotRunning, MissionDailyProfit, MissionBigWin} {
		m := snap.FindMission(id)
		if !m.Progress.IsZero() || m.Completed {
			t.Errorf("daily mission %s not reset: progress=%s completed=%v", id, m.Progress, m.Completed)
		}
		if m.ExpiresAt == nil || !m.ExpiresAt.Equal(expiry) {
			t.Errorf("daily mission %s expiry = %v, want %v", id, m.ExpiresAt, expiry)
		}
	}

	ach := snap.FindMission("mission-ach")
	if !ach.Progress.Equal(dec(42)) || ach.ExpiresAt != nil {
		t.Errorf("achievement mission touched by daily reset: %+v", ach)
	}
}

func TestAddTradePrepends(t *testing.T) {
	s := newTestStore(t)

	s.AddTrade(domain.Trade{ID: "trade-new", Status: domain.TradeActive})

	trades := s.Snapshot().Trades
	if trades[0].ID != "trade-new" {
		t.Errorf("newest trade first, got %s", trades[0].ID)
	}
}

func TestTradeCompletionCascade(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()
	completedAt := testNow

	s.UpdateTrade("trade-1", domain.TradeUpdate{
		ExitPrice:        decPtr(0.0006),
		Profit:           decPtr(15),
		ProfitPercentage: decPtr(10),
		Status:           statusPtr(domain.TradeCompleted),
		CompletedAt:      &completedAt,
		XPEarned:         intPtr(20),
	})

	snap := s.Snapshot()

	// The whole cascade lands in a single state version.
	if snap.Version != before.Version+1 {
		t.Errorf("version = %d, want %d (one transaction)", snap.Version, before.Version+1)
	}

	trade := snap.FindTrade("trade-1")
	if trade.Status != domain.TradeCompleted || trade.Profit == nil || !trade.Profit.Equal(dec(15)) {
		t.Fatalf("trade not merged: %+v", trade)
	}

	if !snap.User.TotalProfit.Equal(dec(115)) {
		t.Errorf("total profit = %s, want 115", snap.User.TotalProfit)
	}

	// 20 XP scaled by the 1.3 streak multiplier, rounded: 26.
	if got := snap.User.XP - before.User.XP; got != 26 {
		t.Errorf("xp delta = %d, want 26", got)
	}

	// Profit accrues toward the daily profit mission.
	m := snap.FindMission(MissionDailyProfit)
	if !m.Progress.Equal(dec(15)) || m.Completed {
		t.Errorf("profit mission progress = %s completed=%v, want 15/false", m.Progress, m.Completed)
	}

	// 10% gain is below the big-win bar.
	if snap.FindMission(MissionBigWin).Completed {
		t.Error("big-win mission should not complete at 10%")
	}

	// Same calendar day: streak counters move, days do not.
	if snap.Streak.Trades != 6 || snap.Streak.ProfitableTrades != 5 {
		t.Errorf("streak counters = %d/%d, want 6/5", snap.Streak.Trades, snap.Streak.ProfitableTrades)
	}
	if snap.Streak.Days != 3 {
		t.Errorf("streak days = %d, want 3", snap.Streak.Days)
	}
}

func TestTradeCompletionBigWin(t *testing.T) {
	s := newTestStore(t)
	xpBefore := s.Snapshot().User.XP
	completedAt := testNow

	s.UpdateTrade("trade-1", domain.TradeUpdate{
		Profit:           decPtr(20),
		ProfitPercentage: decPtr(18),
		Status:           statusPtr(domain.TradeCompleted),
		CompletedAt:      &completedAt,
		XPEarned:         intPtr(20),
	})

	snap := s.Snapshot()
	if !snap.FindMission(MissionBigWin).Completed {
		t.Error("big-win mission should complete at 18%")
	}
	// 26 from the trade plus the 120 mission reward.
	if got := snap.User.XP - xpBefore; got != 146 {
		t.Errorf("xp delta = %d, want 146", got)
	}
}

func TestTradeCompletionWithoutProfitSkipsCascade(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	// Completion with no profit field: the trade updates, nothing cascades.
	s.UpdateTrade("trade-1", domain.TradeUpdate{
		Status: statusPtr(domain.TradeCompleted),
	})

	snap := s.Snapshot()
	if snap.FindTrade("trade-1").Status != domain.TradeCompleted {
		t.Fatal("trade status should still be merged")
	}
	if !snap.User.TotalProfit.Equal(before.User.TotalProfit) {
		t.Error("total profit moved without a profit field")
	}
	if snap.User.XP != before.User.XP {
		t.Error("xp moved without a profit field")
	}
	if snap.Streak.Trades != before.Streak.Trades {
		t.Error("streak moved without a profit field")
	}
}

func TestTradeCompletionZeroProfitSkipsCascade(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	s.UpdateTrade("trade-1", domain.TradeUpdate{
		Profit: decPtr(0),
		Status: statusPtr(domain.TradeCompleted),
	})

	snap := s.Snapshot()
	if snap.User.XP != before.User.XP || snap.Streak.Trades != before.Streak.Trades {
		t.Error("zero profit should not cascade")
	}
}

func TestUpdateTradeUnknownID(t *testing.T) {
	s := newTestStore(t)
	var noops []string
	s.OnNoop(func(action string) { noops = append(noops, action) })
	before := s.Snapshot().Version

	s.UpdateTrade("trade-nope", domain.TradeUpdate{Profit: decPtr(10)})

	if got := s.Snapshot().Version; got != before {
		t.Errorf("version = %d, want unchanged %d", got, before)
	}
	if len(noops) != 1 || noops[0] != "update_trade" {
		t.Errorf("noops = %v, want [update_trade]", noops)
	}
}

func TestIncrementStreakConsecutiveDay(t *testing.T) {
	s := newTestStore(t)
	yesterday := testNow.AddDate(0, 0, -1)
	days := 3
	s.UpdateStreak(domain.StreakUpdate{Days: &days, LastUpdated: &yesterday})

	s.IncrementStreak()

	snap := s.Snapshot()
	if snap.Streak.Days != 4 {
		t.Errorf("days = %d, want 4", snap.Streak.Days)
	}
	if !snap.Streak.Multiplier.Equal(dec(1.4)) {
		t.Errorf("multiplier = %s, want 1.4", snap.Streak.Multiplier)
	}
	if !snap.Streak.LastUpdated.Equal(testNow) {
		t.Errorf("last updated = %v, want %v", snap.Streak.LastUpdated, testNow)
	}
	// User mirror follows.
	if snap.User.DailyStreak != 4 || !snap.User.StreakMultiplier.Equal(dec(1.4)) {
		t.Errorf("user mirror = %d/%s, want 4/1.4", snap.User.DailyStreak, snap.User.StreakMultiplier)
	}
	if snap.Streak.Trades != 6 || snap.Streak.ProfitableTrades != 5 {
		t.Errorf("counters = %d/%d, want 6/5", snap.Streak.Trades, snap.Streak.ProfitableTrades)
	}
}

func TestIncrementStreakGapDayResets(t *testing.T) {
	s := newTestStore(t)
	lastWeek := testNow.AddDate(0, 0, -5)
	s.UpdateStreak(domain.StreakUpdate{LastUpdated: &lastWeek})

	s.IncrementStreak()

	snap := s.Snapshot()
	if snap.Streak.Days != 1 {
		t.Errorf("days = %d, want 1 after gap", snap.Streak.Days)
	}
	if !snap.Streak.Multiplier.Equal(domain.FirstDayMultiplier) {
		t.Errorf("multiplier = %s, want %s", snap.Streak.Multiplier, domain.FirstDayMultiplier)
	}
	if snap.User.DailyStreak != 1 {
		t.Errorf("user mirror = %d, want 1", snap.User.DailyStreak)
	}
	// Counters still move together on a reset.
	if snap.Streak.Trades != 6 || snap.Streak.ProfitableTrades != 5 {
		t.Errorf("counters = %d/%d, want 6/5", snap.Streak.Trades, snap.Streak.ProfitableTrades)
	}
}

func TestIncrementStreakSameDayCountersOnly(t *testing.T) {
	s := newTestStore(t)

	s.IncrementStreak()

	snap := s.Snapshot()
	if snap.Streak.Days != 3 {
		t.Errorf("days = %d, want 3 (same day)", snap.Streak.Days)
	}
	if !snap.Streak.Multiplier.Equal(dec(1.3)) {
		t.Errorf("multiplier = %s, want unchanged 1.3", snap.Streak.Multiplier)
	}
	if snap.Streak.Trades != 6 || snap.Streak.ProfitableTrades != 5 {
		t.Errorf("counters = %d/%d, want 6/5", snap.Streak.Trades, snap.Streak.ProfitableTrades)
	}
}

func TestResetStreak(t *testing.T) {
	s := newTestStore(t)

	s.ResetStreak()

	snap := s.Snapshot()
	if snap.Streak.Days != 0 || !snap.Streak.Multiplier.Equal(dec(1)) {
		t.Errorf("streak = %d/%s, want 0/1", snap.Streak.Days, snap.Streak.Multiplier)
	}
	if snap.User.DailyStreak != 0 || !snap.User.StreakMultiplier.Equal(dec(1)) {
		t.Errorf("user mirror = %d/%s, want 0/1", snap.User.DailyStreak, snap.User.StreakMultiplier)
	}
}

func TestLikeSocialPostToggleRoundTrip(t *testing.T) {
	s := newTestStore(t)

	s.LikeSocialPost("post-1", "user-1")
	post := s.Snapshot().SocialPosts[0]
	if post.Likes != 2 || !post.LikedByUser("user-1") {
		t.Fatalf("after like: likes=%d likedBy=%v", post.Likes, post.LikedBy)
	}

	s.LikeSocialPost("post-1", "user-1")
	post = s.Snapshot().SocialPosts[0]
	if post.Likes != 1 || post.LikedByUser("user-1") {
		t.Errorf("after unlike: likes=%d likedBy=%v, want original", post.Likes, post.LikedBy)
	}
	if !post.LikedByUser("user-2") {
		t.Error("other likes must survive the toggle")
	}
}

func TestShareTrade(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	s.ShareTrade("trade-2")

	snap := s.Snapshot()
	if snap.Version != before.Version+1 {
		t.Errorf("version = %d, want %d (one transaction)", snap.Version, before.Version+1)
	}
	if !snap.FindTrade("trade-2").Shared {
		t.Error("trade not marked shared")
	}
	if got := snap.User.XP - before.User.XP; got != 10 {
		t.Errorf("xp delta = %d, want flat 10", got)
	}

	post := snap.SocialPosts[0]
	if post.ID != "post-id-1" {
		t.Errorf("post id = %q, want post-id-1", post.ID)
	}
	if post.UserID != "user-1" || post.TradeID != "trade-2" {
		t.Errorf("post not attributed: %+v", post)
	}
	// The embedded snapshot predates the shared flag flip.
	if post.Trade == nil || post.Trade.Shared {
		t.Error("embedded trade snapshot should predate the shared flag")
	}
	want := "Just completed a trade on Bonk! Made a 25% profit! 🚀"
	if post.Content != want {
		t.Errorf("content = %q, want %q", post.Content, want)
	}
}

func TestShareTradeUnknownID(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	s.ShareTrade("trade-nope")

	snap := s.Snapshot()
	if snap.Version != before.Version || len(snap.SocialPosts) != len(before.SocialPosts) {
		t.Error("unknown trade id must be a silent no-op")
	}
}

func TestJoinTeamSetSemantics(t *testing.T) {
	s := newTestStore(t)

	s.JoinTeam("team-1")
	s.JoinTeam("team-1")

	snap := s.Snapshot()
	team := snap.FindTeam("team-1")
	count := 0
	for _, id := range team.Members {
		if id == "user-1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("user appears %d times in member set, want 1", count)
	}
	if snap.User.Team == nil || snap.User.Team.ID != "team-1" {
		t.Fatal("user should carry the joined team")
	}
	// The user carries a value copy, not a pointer into the team list.
	if snap.User.Team == team {
		t.Error("user team must be a copy, not an alias")
	}
}

func TestLeaveTeam(t *testing.T) {
	s := newTestStore(t)
	s.JoinTeam("team-1")

	s.LeaveTeam()

	snap := s.Snapshot()
	if snap.User.Team != nil {
		t.Error("user team should be cleared")
	}
	if snap.FindTeam("team-1").HasMember("user-1") {
		t.Error("user should be removed from the member set")
	}
}

func TestLeaveTeamWithoutTeam(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot().Version

	s.LeaveTeam()

	if got := s.Snapshot().Version; got != before {
		t.Errorf("version = %d, want unchanged %d", got, before)
	}
}

func TestUpdateSettingsBotSettingsReplacedWholesale(t *testing.T) {
	s := newTestStore(t)

	s.UpdateSettings(domain.SettingsUpdate{
		DarkMode: boolPtr(false),
		BotSettings: &domain.BotSettings{
			TakeProfit: dec(35),
		},
	})

	settings := s.Snapshot().Settings
	if settings.DarkMode {
		t.Error("dark mode should be off")
	}
	if !settings.Notifications {
		t.Error("untouched fields must survive the merge")
	}
	// The nested object is replaced, not merged: omitted fields zero out.
	if !settings.BotSettings.TakeProfit.Equal(dec(35)) {
		t.Errorf("take profit = %s, want 35", settings.BotSettings.TakeProfit)
	}
	if settings.BotSettings.MaxConcurrentTrades != 0 {
		t.Errorf("max concurrent trades = %d, want 0 (wholesale replace)", settings.BotSettings.MaxConcurrentTrades)
	}
}

func TestToggleBot(t *testing.T) {
	s := newTestStore(t)

	s.ToggleBot()
	snap := s.Snapshot()
	if !snap.BotStatus.IsActive {
		t.Fatal("bot should be active")
	}
	if snap.BotStatus.StartedAt == nil || !snap.BotStatus.StartedAt.Equal(testNow) {
		t.Errorf("started at = %v, want %v", snap.BotStatus.StartedAt, testNow)
	}

	s.ToggleBot()
	if s.Snapshot().BotStatus.IsActive {
		t.Error("bot should be inactive after second toggle")
	}
}

func TestLogoutPreservesSettingsAndTeams(t *testing.T) {
	s := newTestStore(t)
	s.UpdateSettings(domain.SettingsUpdate{DarkMode: boolPtr(false)})
	s.JoinTeam("team-1")

	s.Logout()

	snap := s.Snapshot()
	if snap.IsAuthenticated || snap.User != nil || snap.Wallet != nil {
		t.Error("session data should be cleared")
	}
	if snap.Trades != nil || snap.Missions != nil || snap.SocialPosts != nil {
		t.Error("lists should be cleared")
	}
	if snap.Settings.DarkMode {
		t.Error("settings must survive logout")
	}
	if !snap.FindTeam("team-1").HasMember("user-1") {
		t.Error("teams must survive logout")
	}
	if snap.Streak.Days != 0 || !snap.Streak.Multiplier.Equal(dec(1)) {
		t.Errorf("streak = %d/%s, want zero state", snap.Streak.Days, snap.Streak.Multiplier)
	}
}

func TestSubscribeReceivesEachVersion(t *testing.T) {
	s := New(testSeed(), nil)
	s.now = func() time.Time { return testNow }
	s.newID = func() string { return "x" }

	var versions []uint64
	s.Subscribe(func(snap State) { versions = append(versions, snap.Version) })

	s.Login("wallet-test")
	s.UpdateUserXP(10)
	s.UpdateTrade("trade-nope", domain.TradeUpdate{}) // no-op, no notification

	if len(versions) != 2 || versions[0] != 1 || versions[1] != 2 {
		t.Errorf("versions = %v, want [1 2]", versions)
	}
}

func TestUpdateChallenge(t *testing.T) {
	s := newTestStore(t)
	s.AddChallenge(domain.Challenge{
		ID:         "challenge-1",
		Challenger: "user-1",
		Challenged: "user-2",
		Status:     domain.ChallengeActive,
	})

	status := domain.ChallengeCompleted
	winner := "user-2"
	s.UpdateChallenge("challenge-1", domain.ChallengeUpdate{
		ChallengedProfit: decPtr(42),
		Status:           &status,
		Winner:           &winner,
	})

	c := s.Snapshot().Challenges[0]
	if c.Status != domain.ChallengeCompleted || c.Winner != "user-2" {
		t.Errorf("challenge not merged: %+v", c)
	}
	if !c.ChallengedProfit.Equal(dec(42)) {
		t.Errorf("challenged profit = %s, want 42", c.ChallengedProfit)
	}

	before := s.Snapshot().Version
	s.UpdateChallenge("challenge-nope", domain.ChallengeUpdate{Winner: &winner})
	if got := s.Snapshot().Version; got != before {
		t.Errorf("version = %d, want unchanged %d", got, before)
	}
}

type memPersister struct {
	data []byte
}

func (p *memPersister) Save(b []byte) error {
	p.data = append([]byte(nil), b...)
	return nil
}

func (p *memPersister) Load() ([]byte, error) {
	if p.data == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	return p.data, nil
}

func TestPersistenceRoundTrip(t *testing.T) {
	p := &memPersister{}

	s1 := New(testSeed(), p)
	s1.now = func() time.Time { return testNow }
	s1.newID = func() string { return "x" }
	s1.Login("wallet-test")
	s1.UpdateSettings(domain.SettingsUpdate{DarkMode: boolPtr(false)})
	s1.ToggleBot()
	s1.AddTrade(domain.Trade{ID: "trade-new", Status: domain.TradeActive})

	s2 := New(testSeed(), p)
	snap := s2.Snapshot()

	if !snap.IsAuthenticated {
		t.Error("authentication flag should be restored")
	}
	if snap.User == nil || snap.User.WalletAddress != "wallet-test" {
		t.Error("user should be restored")
	}
	if snap.Wallet == nil || snap.Wallet.Address != "wallet-test" {
		t.Error("wallet should be restored")
	}
	if len(snap.Trades) != 3 || snap.Trades[0].ID != "trade-new" {
		t.Errorf("trades not restored in order: %v", snap.Trades)
	}
	if snap.Settings.DarkMode {
		t.Error("settings should be restored")
	}

	// Bot status, missions and posts deliberately do not survive a restart.
	if snap.BotStatus.IsActive {
		t.Error("bot status should reset to defaults")
	}
	if snap.Missions != nil {
		t.Error("missions should not be persisted")
	}
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	p := &memPersister{data: []byte("{not json")}

	s := New(testSeed(), p)
	snap := s.Snapshot()

	if snap.IsAuthenticated || snap.User != nil {
		t.Error("corrupt snapshot should fall back to defaults")
	}
	if len(snap.Teams) != 2 {
		t.Error("default teams should be intact")
	}
}
