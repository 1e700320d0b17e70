package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeStatus is the lifecycle state of a trade.
type TradeStatus string

const (
	TradeActive    TradeStatus = "active"
	TradeCompleted TradeStatus = "completed"
	TradeCancelled TradeStatus = "cancelled"
)

// IsTerminal reports whether the status is final. Terminal trades are
// immutable except for the Shared flag.
func (s TradeStatus) IsTerminal() bool {
	return s == TradeCompleted || s == TradeCancelled
}

// Trade represents a single sniped token position.
type Trade struct {
	ID          string           `json:"id"`
	TokenName   string           `json:"token_name"`
	TokenSymbol string           `json:"token_symbol"`
	TokenLogo   string           `json:"token_logo,omitempty"`
	EntryPrice  decimal.Decimal  `json:"entry_price"`
	ExitPrice   *decimal.Decimal `json:"exit_price,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	Profit      *decimal.Decimal `json:"profit,omitempty"`
	// ProfitPercentage is the realized gain relative to entry, in percent.
	ProfitPercentage *decimal.Decimal `json:"profit_percentage,omitempty"`
	Status           TradeStatus      `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	XPEarned         int              `json:"xp_earned,omitempty"`
	Shared           bool             `json:"shared,omitempty"`
}

// IsProfitable reports whether the trade closed with a positive profit.
func (t *Trade) IsProfitable() bool {
	return t.Profit != nil && t.Profit.IsPositive()
}

// Duration returns how long the trade was (or has been) open.
func (t *Trade) Duration(now time.Time) time.Duration {
	if t.CompletedAt != nil {
		return t.CompletedAt.Sub(t.CreatedAt)
	}
	return now.Sub(t.CreatedAt)
}

// TradeUpdate is a partial merge applied by the store. Nil fields are left
// untouched on the target trade.
type TradeUpdate struct {
	ExitPrice        *decimal.Decimal
	Profit           *decimal.Decimal
	ProfitPercentage *decimal.Decimal
	Status           *TradeStatus
	CompletedAt      *time.Time
	XPEarned         *int
	Shared           *bool
}
