package store

import (
	"log/slog"
	"sync"
	"time"

	"moneyprinter/internal/domain"
	"moneyprinter/internal/infra"

	"github.com/google/uuid"
)

// Store is the single source of truth for session state. Every public action
// runs as one transaction: the current state is cloned, an internal reducer
// chain is applied to the clone under the lock, and the pointer is swapped.
// Cascading effects (trade completion → profit → XP → missions → streak)
// therefore land in a single observable state version.
//
// Failure semantics follow the product contract: unknown ids and missing
// user/wallet degrade to silent no-ops, never errors. No-ops are counted in
// metrics and reported through the optional no-op hook for tests.
type Store struct {
	mu    sync.RWMutex
	state *State

	seed      Seed
	persister Persister
	metrics   *infra.Metrics

	// now and newID are injectable for deterministic tests.
	now   func() time.Time
	newID func() string

	onChange []func(State)
	onNoop   func(action string)
}

// New creates a store seeded with fixtures and rehydrated from the persister.
// A nil persister disables durability.
func New(seed Seed, persister Persister) *Store {
	s := &Store{
		state:     initialState(seed),
		seed:      seed,
		persister: persister,
		metrics:   infra.GlobalMetrics,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	s.rehydrate()
	return s
}

// Snapshot returns the current state. The returned value shares immutable
// backing data with the store and is safe for concurrent use.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.state
}

// Subscribe registers a callback invoked with the new snapshot after every
// applied action. Callbacks run on the acting goroutine, outside the lock.
// Not safe to call concurrently with actions; wire subscribers at startup.
func (s *Store) Subscribe(fn func(State)) {
	s.onChange = append(s.onChange, fn)
}

// OnNoop registers a diagnostic hook fired when an action degrades to a
// silent no-op (unknown id, missing user). Intended for tests.
func (s *Store) OnNoop(fn func(action string)) {
	s.onNoop = fn
}

// apply runs one action transaction. The reducer mutates the clone and
// reports whether anything was applied.
func (s *Store) apply(action string, reduce func(st *State)) {
	s.applyChecked(action, func(st *State) bool {
		reduce(st)
		return true
	})
}

func (s *Store) applyChecked(action string, reduce func(st *State) bool) {
	s.mu.Lock()
	next := s.state.clone()
	if !reduce(next) {
		s.mu.Unlock()
		s.metrics.RecordNoop()
		if s.onNoop != nil {
			s.onNoop(action)
		}
		return
	}
	next.Version = s.state.Version + 1
	s.state = next
	snap := *next
	s.mu.Unlock()

	s.metrics.RecordAction()
	s.persist(snap)
	for _, fn := range s.onChange {
		fn(snap)
	}
}

// UpdateSettings shallow-merges the given fields. BotSettings, when present,
// replaces the entire nested object (no deep merge).
func (s *Store) UpdateSettings(upd domain.SettingsUpdate) {
	s.apply("update_settings", func(st *State) {
		settings := st.Settings
		if upd.Notifications != nil {
			settings.Notifications = *upd.Notifications
		}
		if upd.SoundEffects != nil {
			settings.SoundEffects = *upd.SoundEffects
		}
		if upd.Vibration != nil {
			settings.Vibration = *upd.Vibration
		}
		if upd.DarkMode != nil {
			settings.DarkMode = *upd.DarkMode
		}
		if upd.BotSettings != nil {
			settings.BotSettings = *upd.BotSettings
		}
		st.Settings = settings
	})
}

// Login marks the session authenticated and installs the seeded fixtures,
// stamping the supplied wallet address on both user and wallet. It always
// re-seeds; the address is accepted as-is.
func (s *Store) Login(walletAddress string) {
	s.apply("login", func(st *State) {
		user := s.seed.User
		user.WalletAddress = walletAddress
		user.LastActive = s.now()

		wallet := s.seed.Wallet
		wallet.Address = walletAddress

		st.IsAuthenticated = true
		st.User = &user
		st.Wallet = &wallet
		st.Trades = append([]domain.Trade(nil), s.seed.Trades...)
		st.Missions = append([]domain.Mission(nil), s.seed.Missions...)
		st.Challenges = append([]domain.Challenge(nil), s.seed.Challenges...)
		st.SocialPosts = append([]domain.SocialPost(nil), s.seed.SocialPosts...)
	})
	slog.Info("session started", slog.String("wallet", walletAddress))
}

// Logout clears the session. Settings and teams survive; everything else
// resets to the zero state.
func (s *Store) Logout() {
	s.apply("logout", func(st *State) {
		st.IsAuthenticated = false
		st.User = nil
		st.Wallet = nil
		st.Trades = nil
		st.Missions = nil
		st.Challenges = nil
		st.SocialPosts = nil
		st.BotStatus = s.seed.BotStatus
		st.Streak = domain.Streak{
			Multiplier:  domain.MultiplierForDays(0),
			LastUpdated: s.now(),
		}
	})
	slog.Info("session ended")
}
