package ports

import (
	"context"

	"github.com/aretw0/burrow/pkg/domain"
)

// SnapshotStore persists the latest game state of each room.
// This lets a finished or crashed session be inspected after the fact.
type SnapshotStore interface {
	// Save replaces the snapshot stored for roomID.
	Save(ctx context.Context, roomID string, state domain.GameState) error

	// Load retrieves the snapshot for roomID.
	// Returns domain.ErrSnapshotNotFound if nothing was stored.
	Load(ctx context.Context, roomID string) (domain.GameState, error)

	// Delete removes the snapshot for roomID. Deleting a missing room is not an error.
	Delete(ctx context.Context, roomID string) error

	// List returns the rooms that currently have a snapshot.
	List(ctx context.Context) ([]string, error)
}
