package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the authenticated player and their progression aggregate.
type User struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	WalletAddress string          `json:"wallet_address"`
	Level         int             `json:"level"`
	XP            int             `json:"xp"`
	XPToNextLevel int             `json:"xp_to_next_level"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	DailyStreak   int             `json:"daily_streak"`
	Badges        []Badge         `json:"badges"` // insertion order = unlock order
	JoinedAt      time.Time       `json:"joined_at"`
	ReferralCode  string          `json:"referral_code"`
	ReferredBy    string          `json:"referred_by,omitempty"`
	ReferralCount int             `json:"referral_count"`
	Friends       []string        `json:"friends"`
	Team          *Team           `json:"team,omitempty"` // value copy taken at join time
	// StreakMultiplier scales XP earned from completed trades: 1 + 0.1 per streak day.
	StreakMultiplier decimal.Decimal `json:"streak_multiplier"`
	LastActive       time.Time       `json:"last_active"`
}

// LevelUpGrowth is the factor applied to the XP threshold on each level-up.
var LevelUpGrowth = decimal.NewFromFloat(1.5)

// NextLevelThreshold returns the XP threshold for the level after the given one.
func NextLevelThreshold(current int) int {
	return int(decimal.NewFromInt(int64(current)).Mul(LevelUpGrowth).Round(0).IntPart())
}

// HasFriend reports whether the given user id is in the friends list.
func (u *User) HasFriend(userID string) bool {
	for _, id := range u.Friends {
		if id == userID {
			return true
		}
	}
	return false
}

// BadgeRarity classifies how hard a badge is to earn.
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityUncommon  BadgeRarity = "uncommon"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// Badge is an unlocked achievement. Immutable once created.
type Badge struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	UnlockedAt  time.Time   `json:"unlocked_at"`
	Rarity      BadgeRarity `json:"rarity"`
}
