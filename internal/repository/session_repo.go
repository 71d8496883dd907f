package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// SessionRepository persists the single logged-in profile snapshot. It is the
// only durable storage in the prototype.
type SessionRepository interface {
	Load() (*model.UserProfile, error)
	Save(profile *model.UserProfile) error
	Clear() error
}

type fileSessionRepository struct {
	path string
}

// NewFileSessionRepository creates a SessionRepository backed by a JSON file.
func NewFileSessionRepository(path string) SessionRepository {
	return &fileSessionRepository{path: path}
}

// Load reads the stored snapshot. A missing file means no session. A corrupt
// snapshot is discarded and also means no session; it is never surfaced as an
// error to the caller.
func (r *fileSessionRepository) Load() (*model.UserProfile, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	var profile model.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("Discarding corrupt session snapshot at %s: %v", r.path, err)
		_ = os.Remove(r.path)
		return nil, nil
	}
	return &profile, nil
}

// Save overwrites the snapshot unconditionally. Last write wins.
func (r *fileSessionRepository) Save(profile *model.UserProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session snapshot: %w", err)
	}
	return nil
}

// Clear erases the snapshot. Clearing an absent snapshot is a no-op.
func (r *fileSessionRepository) Clear() error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session snapshot: %w", err)
	}
	return nil
}
