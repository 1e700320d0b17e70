package domain

import "github.com/shopspring/decimal"

// Wallet is the connected wallet snapshot shown to the user.
type Wallet struct {
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	Tokens    []Token         `json:"tokens"`
	Connected bool            `json:"connected"`
}

// Token is a single holding inside a wallet.
type Token struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	USDValue decimal.Decimal `json:"usd_value"`
	Logo     string          `json:"logo,omitempty"`
}

// TotalUSDValue sums the USD value of all token holdings.
func (w *Wallet) TotalUSDValue() decimal.Decimal {
	total := decimal.Zero
	for _, t := range w.Tokens {
		total = total.Add(t.USDValue)
	}
	return total
}
