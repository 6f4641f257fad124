package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/burrow/pkg/domain"
)

// DefaultDir is used when New receives an empty path.
var DefaultDir = filepath.Join(".burrow", "snapshots")

// Store implements ports.SnapshotStore using the local filesystem.
// It stores one JSON file per room in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
func New(basePath string) *Store {
	if basePath == "" {
		basePath = DefaultDir
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(roomID string) (string, error) {
	if roomID == "" {
		return "", errors.New("room id cannot be empty")
	}
	if strings.ContainsAny(roomID, `/\`) || roomID == "." || roomID == ".." {
		return "", fmt.Errorf("room id %q is not a valid file name", roomID)
	}
	return filepath.Join(s.BasePath, roomID+".json"), nil
}

// Save writes the snapshot atomically: temp file in the same directory, fsync, then rename.
func (s *Store) Save(ctx context.Context, roomID string, state domain.GameState) error {
	destPath, err := s.path(roomID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+roomID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename does not replace an existing file on Windows.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to replace snapshot: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}

// Load reads the snapshot of a room.
func (s *Store) Load(ctx context.Context, roomID string) (domain.GameState, error) {
	filePath, err := s.path(roomID)
	if err != nil {
		return domain.GameState{}, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.GameState{}, domain.ErrSnapshotNotFound
		}
		return domain.GameState{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.GameState{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return state, nil
}

// Delete removes the snapshot file.
func (s *Store) Delete(ctx context.Context, roomID string) error {
	filePath, err := s.path(roomID)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// List returns every room with a snapshot file, skipping leftovers of interrupted writes.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	rooms := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		rooms = append(rooms, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(rooms)
	return rooms, nil
}
