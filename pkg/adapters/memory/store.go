package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/burrow/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.GameState
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.GameState),
	}
}

// Save keeps a deep copy of the state, so later changes by the caller are not visible.
func (s *Store) Save(ctx context.Context, roomID string, state domain.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[roomID] = state.Clone()
	return nil
}

// Load retrieves the state from memory.
func (s *Store) Load(ctx context.Context, roomID string) (domain.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[roomID]
	if !ok {
		return domain.GameState{}, domain.ErrSnapshotNotFound
	}
	return state.Clone(), nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, roomID)
	return nil
}

// List returns the stored rooms in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]string, 0, len(s.data))
	for id := range s.data {
		rooms = append(rooms, id)
	}
	sort.Strings(rooms)
	return rooms, nil
}
