// Package seed supplies the login fixtures. The store treats it as an opaque
// data source; a real backend would replace it with an API client.
package seed

import (
	"time"

	"moneyprinter/internal/domain"
	"moneyprinter/internal/store"

	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

// Default returns the fixture set installed on login.
func Default() store.Seed {
	now := time.Now()
	endOfDay := domain.EndOfDay(now)
	trades := defaultTrades()

	return store.Seed{
		User: domain.User{
			ID:            "user-1",
			Username:      "cryptoprinter",
			WalletAddress: "8xJU...",
			Level:         3,
			XP:            350,
			XPToNextLevel: 500,
			TotalProfit:   dec(123.45),
			DailyStreak:   3,
			Badges: []domain.Badge{
				{
					ID:          "badge-1",
					Name:        "Early Adopter",
					Description: "Joined during the beta phase",
					ImageURL:    "https://images.unsplash.com/photo-1639762681057-408e52192e55?w=64&h=64&fit=crop",
					UnlockedAt:  ts("2023-05-15T10:30:00Z"),
					Rarity:      domain.RarityUncommon,
				},
				{
					ID:          "badge-2",
					Name:        "First Profit",
					Description: "Made your first profitable trade",
					ImageURL:    "https://images.unsplash.com/photo-1621630854904-0ba933cb8ae8?w=64&h=64&fit=crop",
					UnlockedAt:  ts("2023-05-16T14:20:00Z"),
					Rarity:      domain.RarityCommon,
				},
			},
			JoinedAt:         ts("2023-05-15T10:30:00Z"),
			ReferralCode:     "PRINT123",
			ReferralCount:    2,
			Friends:          []string{"user-2", "user-3"},
			StreakMultiplier: dec(1.3),
			LastActive:       now,
		},
		Wallet: domain.Wallet{
			Address: "8xJU...",
			Balance: dec(1.25),
			Tokens: []domain.Token{
				{
					Symbol:   "SOL",
					Name:     "Solana",
					Balance:  dec(1.25),
					USDValue: dec(125.00),
					Logo:     "https://images.unsplash.com/photo-1621761191319-c6fb62004040?w=64&h=64&fit=crop",
				},
				{
					Symbol:   "BONK",
					Name:     "Bonk",
					Balance:  dec(5000000),
					USDValue: dec(50.00),
					Logo:     "https://images.unsplash.com/photo-1622630998477-20aa696ecb05?w=64&h=64&fit=crop",
				},
			},
			Connected: true,
		},
		Trades: trades,
		Missions: []domain.Mission{
			{
				ID:          store.MissionBotRunning,
				Title:       "Print for 15 minutes",
				Description: "Keep the bot running for at least 15 minutes",
				XPReward:    50,
				Progress:    dec(5),
				Target:      dec(15),
				Type:        domain.MissionDaily,
				Icon:        "Clock",
				ExpiresAt:   &endOfDay,
			},
			{
				ID:          store.MissionInvite,
				Title:       "Invite a friend",
				Description: "Share your referral code with a friend",
				XPReward:    100,
				Progress:    decimal.Zero,
				Target:      dec(1),
				Type:        domain.MissionDaily,
				Icon:        "UserPlus",
				ExpiresAt:   &endOfDay,
			},
			{
				ID:          store.MissionDailyProfit,
				Title:       "Earn $10 profit today",
				Description: "Make at least $10 in profit today",
				XPReward:    75,
				Progress:    decimal.Zero,
				Target:      dec(10),
				Type:        domain.MissionDaily,
				Icon:        "TrendingUp",
				ExpiresAt:   &endOfDay,
			},
			{
				ID:          store.MissionBigWin,
				Title:       "Close a trade above 15% profit",
				Description: "Complete a trade with at least 15% profit",
				XPReward:    120,
				Progress:    decimal.Zero,
				Target:      dec(1),
				Type:        domain.MissionDaily,
				Icon:        "TrendingUp",
				ExpiresAt:   &endOfDay,
			},
			{
				ID:          store.MissionHoldTrade,
				Title:       "Stay in a trade 30+ minutes",
				Description: "Hold a position for at least 30 minutes",
				XPReward:    80,
				Progress:    decimal.Zero,
				Target:      dec(1),
				Type:        domain.MissionDaily,
				Icon:        "Clock",
				ExpiresAt:   &endOfDay,
			},
		},
		Challenges: []domain.Challenge{
			{
				ID:               "challenge-1",
				Challenger:       "user-2",
				Challenged:       "user-1",
				StartedAt:        ts("2023-06-03T09:00:00Z"),
				EndsAt:           ts("2023-06-04T09:00:00Z"),
				ChallengerProfit: dec(45.2),
				ChallengedProfit: dec(32.8),
				Status:           domain.ChallengeActive,
				Stake:            dec(0.01),
			},
			{
				ID:               "challenge-2",
				Challenger:       "user-3",
				Challenged:       "user-4",
				StartedAt:        ts("2023-06-02T14:30:00Z"),
				EndsAt:           ts("2023-06-03T14:30:00Z"),
				ChallengerProfit: dec(28.5),
				ChallengedProfit: dec(37.2),
				Status:           domain.ChallengeCompleted,
				Stake:            dec(0.02),
				Winner:           "user-4",
			},
		},
		SocialPosts: []domain.SocialPost{
			{
				ID:        "post-1",
				UserID:    "user-2",
				Username:  "whale_master",
				UserLevel: 10,
				Content:   "Just hit a 50% gain on this gem! The bot is printing money today. 🚀",
				TradeID:   "trade-1",
				Trade:     &trades[0],
				CreatedAt: ts("2023-06-03T10:15:00Z"),
				Likes:     3,
				Comments:  5,
				LikedBy:   []string{"user-3", "user-4", "user-1"},
			},
			{
				ID:        "post-2",
				UserID:    "user-3",
				Username:  "crypto_ninja",
				UserLevel: 8,
				Content:   "The market is on fire today! My bot just sniped 3 tokens in the last hour. Who else is printing? 💰",
				CreatedAt: ts("2023-06-03T11:30:00Z"),
				Likes:     2,
				Comments:  3,
				LikedBy:   []string{"user-2", "user-4"},
			},
			{
				ID:        "post-3",
				UserID:    "user-1",
				Username:  "cryptoprinter",
				UserLevel: 3,
				Content:   "Just completed my first successful trade with MoneyPrinter! This is addictive. 🖨️",
				TradeID:   "trade-2",
				Trade:     &trades[1],
				CreatedAt: ts("2023-06-02T16:50:00Z"),
				Likes:     1,
				Comments:  2,
				LikedBy:   []string{"user-2"},
			},
		},
		Teams: []domain.Team{
			{
				ID:           "team-1",
				Name:         "Alpha Hunters",
				Members:      []string{"user-2", "user-3", "user-5"},
				CreatedAt:    ts("2023-05-10T08:30:00Z"),
				WeeklyProfit: dec(432.5),
				TotalProfit:  dec(8765.4),
				Rank:         1,
				Logo:         "https://images.unsplash.com/photo-1614680376573-df3480f0c6ff?w=64&h=64&fit=crop",
			},
			{
				ID:           "team-2",
				Name:         "Degen Squad",
				Members:      []string{"user-6", "user-7", "user-8", "user-9"},
				CreatedAt:    ts("2023-05-12T14:45:00Z"),
				WeeklyProfit: dec(321.8),
				TotalProfit:  dec(5432.1),
				Rank:         2,
				Logo:         "https://images.unsplash.com/photo-1618401471353-b98afee0b2eb?w=64&h=64&fit=crop",
			},
			{
				ID:           "team-3",
				Name:         "Profit Printers",
				Members:      []string{"user-10", "user-11", "user-12"},
				CreatedAt:    ts("2023-05-15T11:20:00Z"),
				WeeklyProfit: dec(287.3),
				TotalProfit:  dec(3210.9),
				Rank:         3,
				Logo:         "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=64&h=64&fit=crop",
			},
		},
		Streak: domain.Streak{
			Days:             3,
			LastUpdated:      now,
			Multiplier:       dec(1.3),
			Trades:           5,
			ProfitableTrades: 4,
		},
		BotStatus: domain.BotStatus{},
	}
}

func defaultTrades() []domain.Trade {
	return []domain.Trade{
		{
			ID:               "trade-1",
			TokenName:        "Solana Doge",
			TokenSymbol:      "SOLDOGE",
			TokenLogo:        "https://images.unsplash.com/photo-1616463169804-43ea9b666fed?w=64&h=64&fit=crop",
			EntryPrice:       dec(0.00001),
			ExitPrice:        decPtr(0.000015),
			Amount:           dec(10000000),
			Profit:           decPtr(50),
			ProfitPercentage: decPtr(50),
			Status:           domain.TradeCompleted,
			CreatedAt:        ts("2023-06-01T09:30:00Z"),
			CompletedAt:      tsPtr("2023-06-01T10:15:00Z"),
			XPEarned:         25,
			Shared:           true,
		},
		{
			ID:               "trade-2",
			TokenName:        "Bonk",
			TokenSymbol:      "BONK",
			TokenLogo:        "https://images.unsplash.com/photo-1622630998477-20aa696ecb05?w=64&h=64&fit=crop",
			EntryPrice:       dec(0.0000002),
			ExitPrice:        decPtr(0.00000025),
			Amount:           dec(500000000),
			Profit:           decPtr(25),
			ProfitPercentage: decPtr(25),
			Status:           domain.TradeCompleted,
			CreatedAt:        ts("2023-06-02T14:20:00Z"),
			CompletedAt:      tsPtr("2023-06-02T16:45:00Z"),
			XPEarned:         15,
		},
		{
			ID:          "trade-3",
			TokenName:   "Meme Coin",
			TokenSymbol: "MEME",
			TokenLogo:   "https://images.unsplash.com/photo-1621761191319-c6fb62004040?w=64&h=64&fit=crop",
			EntryPrice:  dec(0.0005),
			Amount:      dec(20000),
			Status:      domain.TradeActive,
			CreatedAt:   ts("2023-06-03T11:10:00Z"),
		},
	}
}
