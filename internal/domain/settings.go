package domain

import "github.com/shopspring/decimal"

// AppSettings is pure user configuration. Mutated only by direct edits; no
// cascading effects, and it is the only session data that survives logout.
type AppSettings struct {
	Notifications bool        `json:"notifications"`
	SoundEffects  bool        `json:"sound_effects"`
	Vibration     bool        `json:"vibration"`
	DarkMode      bool        `json:"dark_mode"`
	BotSettings   BotSettings `json:"bot_settings"`
}

// BotSettings configures the (simulated) sniping bot.
type BotSettings struct {
	MaxInvestmentPerTrade decimal.Decimal `json:"max_investment_per_trade"` // SOL
	TakeProfit            decimal.Decimal `json:"take_profit"`              // %
	StopLoss              decimal.Decimal `json:"stop_loss"`                // %
	MaxConcurrentTrades   int             `json:"max_concurrent_trades"`
	AutoReinvest          bool            `json:"auto_reinvest"`
}

// SettingsUpdate is a shallow merge into AppSettings. BotSettings replaces
// the whole nested object when present; there is no deep merge, so callers
// changing one bot field must supply the complete sub-object.
type SettingsUpdate struct {
	Notifications *bool
	SoundEffects  *bool
	Vibration     *bool
	DarkMode      *bool
	BotSettings   *BotSettings
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() AppSettings {
	return AppSettings{
		Notifications: true,
		SoundEffects:  true,
		Vibration:     true,
		DarkMode:      true,
		BotSettings: BotSettings{
			MaxInvestmentPerTrade: decimal.NewFromFloat(0.1),
			TakeProfit:            decimal.NewFromInt(20),
			StopLoss:              decimal.NewFromInt(10),
			MaxConcurrentTrades:   3,
			AutoReinvest:          false,
		},
	}
}
