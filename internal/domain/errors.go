package domain

import "errors"

var (
	// ErrSnapshotNotFound is returned when no persisted snapshot exists yet.
	// Callers fall back to defaults; this is not a failure.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrInvalidAsset is returned when an asset name cannot be used as a
	// cache file name.
	ErrInvalidAsset = errors.New("invalid asset name")
)
