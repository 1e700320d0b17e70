package store

import (
	"moneyprinter/internal/domain"
)

// State is the complete session state. Actions never mutate it in place:
// each applied action builds a fresh State and swaps it in, so a State value
// handed to a reader is safe to use without locking.
type State struct {
	// Version increments once per applied action. A whole cascade (trade
	// completion → profit → XP → missions → streak) lands in one version.
	Version uint64 `json:"version"`

	IsAuthenticated bool                `json:"is_authenticated"`
	User            *domain.User        `json:"user"`
	BotStatus       domain.BotStatus    `json:"bot_status"`
	Wallet          *domain.Wallet      `json:"wallet"`
	Trades          []domain.Trade      `json:"trades"`
	Settings        domain.AppSettings  `json:"settings"`
	Missions        []domain.Mission    `json:"missions"`
	Challenges      []domain.Challenge  `json:"challenges"`
	SocialPosts     []domain.SocialPost `json:"social_posts"`
	Teams           []domain.Team       `json:"teams"`
	Streak          domain.Streak       `json:"streak"`
}

// clone returns a shallow copy. Reducers replace any nested structure they
// touch (copy-on-write), so sharing slice backing arrays with the previous
// version is safe.
func (s *State) clone() *State {
	c := *s
	return &c
}

// FindTrade returns the trade with the given id, or nil.
func (s *State) FindTrade(id string) *domain.Trade {
	for i := range s.Trades {
		if s.Trades[i].ID == id {
			return &s.Trades[i]
		}
	}
	return nil
}

// FindMission returns the mission with the given id, or nil.
func (s *State) FindMission(id string) *domain.Mission {
	for i := range s.Missions {
		if s.Missions[i].ID == id {
			return &s.Missions[i]
		}
	}
	return nil
}

// FindTeam returns the team with the given id, or nil.
func (s *State) FindTeam(id string) *domain.Team {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

// Seed is the fixture set installed on login. Teams, streak and bot status
// also shape the pre-login initial state, matching the mobile app.
type Seed struct {
	User        domain.User
	Wallet      domain.Wallet
	Trades      []domain.Trade
	Missions    []domain.Mission
	Challenges  []domain.Challenge
	SocialPosts []domain.SocialPost
	Teams       []domain.Team
	Streak      domain.Streak
	BotStatus   domain.BotStatus
}

// initialState builds the unauthenticated default state.
func initialState(seed Seed) *State {
	return &State{
		BotStatus:   seed.BotStatus,
		Settings:    domain.DefaultSettings(),
		Teams:       append([]domain.Team(nil), seed.Teams...),
		Streak:      seed.Streak,
		Trades:      nil,
		Missions:    nil,
		Challenges:  nil,
		SocialPosts: nil,
	}
}
