package store

import (
	"encoding/json"
	"errors"
	"log/slog"

	"moneyprinter/internal/domain"
)

// Persister stores the serialized partial snapshot. Writes are best-effort:
// the store logs and counts failures but never surfaces them to callers.
type Persister interface {
	Save(data []byte) error
	// Load returns domain.ErrSnapshotNotFound when nothing was persisted yet.
	Load() ([]byte, error)
}

// persistedState is the durable subset of State. Bot status, missions,
// challenges, social posts and teams deliberately do not survive a restart.
type persistedState struct {
	IsAuthenticated bool               `json:"is_authenticated"`
	User            *domain.User       `json:"user"`
	Wallet          *domain.Wallet     `json:"wallet"`
	Trades          []domain.Trade     `json:"trades"`
	Settings        domain.AppSettings `json:"settings"`
	Streak          domain.Streak      `json:"streak"`
}

// persist writes the durable subset of the snapshot, fire-and-forget.
func (s *Store) persist(snap State) {
	if s.persister == nil {
		return
	}
	data, err := json.Marshal(persistedState{
		IsAuthenticated: snap.IsAuthenticated,
		User:            snap.User,
		Wallet:          snap.Wallet,
		Trades:          snap.Trades,
		Settings:        snap.Settings,
		Streak:          snap.Streak,
	})
	if err != nil {
		s.metrics.RecordPersistError()
		slog.Error("failed to encode snapshot", slog.Any("error", err))
		return
	}
	if err := s.persister.Save(data); err != nil {
		s.metrics.RecordPersistError()
		slog.Error("failed to persist snapshot", slog.Any("error", err))
	}
}

// rehydrate merges a previously persisted subset over the default state.
// Missing or corrupt data silently falls back to defaults.
func (s *Store) rehydrate() {
	if s.persister == nil {
		return
	}
	data, err := s.persister.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			slog.Warn("failed to load snapshot, using defaults", slog.Any("error", err))
		}
		return
	}

	var persisted persistedState
	if err := json.Unmarshal(data, &persisted); err != nil {
		slog.Warn("corrupt snapshot, using defaults", slog.Any("error", err))
		return
	}

	st := s.state.clone()
	st.IsAuthenticated = persisted.IsAuthenticated
	st.User = persisted.User
	st.Wallet = persisted.Wallet
	st.Trades = persisted.Trades
	st.Settings = persisted.Settings
	st.Streak = persisted.Streak
	s.state = st
	slog.Info("state rehydrated",
		slog.Bool("authenticated", persisted.IsAuthenticated),
		slog.Int("trades", len(persisted.Trades)),
	)
}

// KV is the durable key-value backend contract, satisfied by the sqlite
// storage layer.
type KV interface {
	SaveState(key string, data []byte) error
	LoadState(key string) ([]byte, error)
}

// KVPersister binds a Persister to one namespace key in a KV backend.
type KVPersister struct {
	kv  KV
	key string
}

// NewKVPersister creates a persister writing under the given namespace key.
func NewKVPersister(kv KV, key string) *KVPersister {
	return &KVPersister{kv: kv, key: key}
}

func (p *KVPersister) Save(data []byte) error {
	return p.kv.SaveState(p.key, data)
}

func (p *KVPersister) Load() ([]byte, error) {
	return p.kv.LoadState(p.key)
}
