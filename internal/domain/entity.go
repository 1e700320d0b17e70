package domain

import (
	"time"
)

// StateRecord is a persisted snapshot blob keyed by namespace.
type StateRecord struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssetRecord tracks a cached badge or token logo.
type AssetRecord struct {
	Name         string    `gorm:"primaryKey" json:"name"`
	SourceURL    string    `json:"source_url"`
	LocalPath    string    `json:"local_path"`
	LastSyncedAt time.Time `json:"last_synced_at"` // Last download time
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
