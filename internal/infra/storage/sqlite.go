package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"moneyprinter/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the SQLite-backed durable store for snapshots and asset cache
// metadata.
type Storage struct {
	db *gorm.DB
}

// NewStorage creates a storage instance at the default OS config location.
func NewStorage() (*Storage, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve DB path: %w", err)
	}
	return NewStorageAt(dbPath)
}

// NewStorageAt creates a storage instance at an explicit path.
func NewStorageAt(dbPath string) (*Storage, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory: %w", err)
	}

	// Connect to SQLite (Pure Go)
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto Migration
	if err := db.AutoMigrate(&domain.StateRecord{}, &domain.AssetRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

// getDBPath resolves the database file path based on OS
func getDBPath() (string, error) {
	var configDir string
	var err error

	if runtime.GOOS == "windows" {
		configDir = os.Getenv("LOCALAPPDATA")
		if configDir == "" {
			configDir, err = os.UserConfigDir()
		}
	} else {
		configDir, err = os.UserConfigDir()
	}

	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "MoneyPrinter", "data", "moneyprinter.db"), nil
}

// ======================================================================================
// Snapshot Operations
// ======================================================================================

// SaveState writes the snapshot blob under the namespace key.
func (s *Storage) SaveState(key string, data []byte) error {
	record := domain.StateRecord{
		Key:   key,
		Value: data,
	}
	return s.db.Save(&record).Error
}

// LoadState reads the snapshot blob for the namespace key. Returns
// domain.ErrSnapshotNotFound when no snapshot was ever written.
func (s *Storage) LoadState(key string) ([]byte, error) {
	var record domain.StateRecord
	err := s.db.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return record.Value, nil
}

// ======================================================================================
// Asset Operations
// ======================================================================================

// UpsertAsset creates or updates cached asset metadata.
func (s *Storage) UpsertAsset(asset *domain.AssetRecord) error {
	return s.db.Save(asset).Error
}

// GetAsset retrieves asset metadata by name.
func (s *Storage) GetAsset(name string) (*domain.AssetRecord, error) {
	var asset domain.AssetRecord
	err := s.db.First(&asset, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Not found is not an error
	}
	return &asset, err
}

// GetAllAssets retrieves all cached assets.
func (s *Storage) GetAllAssets() ([]domain.AssetRecord, error) {
	var assets []domain.AssetRecord
	err := s.db.Find(&assets).Error
	return assets, err
}

// DeleteAsset removes asset metadata from the database.
func (s *Storage) DeleteAsset(name string) error {
	return s.db.Where("name = ?", name).Delete(&domain.AssetRecord{}).Error
}
