package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Team is a profit squad. Members is a set of user ids (unique membership).
type Team struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Members      []string        `json:"members"`
	CreatedAt    time.Time       `json:"created_at"`
	WeeklyProfit decimal.Decimal `json:"weekly_profit"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	Rank         int             `json:"rank"`
	Logo         string          `json:"logo,omitempty"`
}

// HasMember reports whether the user id belongs to the team.
func (t *Team) HasMember(userID string) bool {
	for _, id := range t.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// ChallengeStatus is the lifecycle state of a head-to-head challenge.
type ChallengeStatus string

const (
	ChallengePending   ChallengeStatus = "pending"
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
)

// Challenge is a head-to-head profit competition over a fixed window.
type Challenge struct {
	ID               string          `json:"id"`
	Challenger       string          `json:"challenger"`
	Challenged       string          `json:"challenged"`
	StartedAt        time.Time       `json:"started_at"`
	EndsAt           time.Time       `json:"ends_at"`
	ChallengerProfit decimal.Decimal `json:"challenger_profit"`
	ChallengedProfit decimal.Decimal `json:"challenged_profit"`
	Status           ChallengeStatus `json:"status"`
	Stake            decimal.Decimal `json:"stake"`
	Winner           string          `json:"winner,omitempty"`
}

// Leader returns the user id currently ahead, or "" on a tie.
func (c *Challenge) Leader() string {
	switch {
	case c.ChallengerProfit.GreaterThan(c.ChallengedProfit):
		return c.Challenger
	case c.ChallengedProfit.GreaterThan(c.ChallengerProfit):
		return c.Challenged
	default:
		return ""
	}
}

// ChallengeUpdate is a partial merge applied by the store.
type ChallengeUpdate struct {
	ChallengerProfit *decimal.Decimal
	ChallengedProfit *decimal.Decimal
	Status           *ChallengeStatus
	EndsAt           *time.Time
	Winner           *string
}

// SocialPost is a feed entry. Author fields are denormalized snapshots taken
// at post time. Likes always equals len(LikedBy).
type SocialPost struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	UserLevel int       `json:"user_level"`
	Content   string    `json:"content"`
	TradeID   string    `json:"trade_id,omitempty"`
	Trade     *Trade    `json:"trade,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	LikedBy   []string  `json:"liked_by"`
}

// LikedByUser reports whether the given user already liked the post.
func (p *SocialPost) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
