package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/burrow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractState(redIndex int) domain.GameState {
	return domain.GameState{
		Red: domain.Player{
			DisplayName: "red", Color: domain.ColorRed, Index: redIndex, Carrots: 40, Salads: 5,
			Cards: []domain.Card{{Type: "EAT_SALAD"}},
		},
		Blue: domain.Player{DisplayName: "blue", Color: domain.ColorBlue, Index: 2, Carrots: 58, Salads: 4},
		Board: domain.Board{Fields: []domain.Field{
			{Type: domain.FieldStart, Index: 0},
			{Type: domain.FieldCarrot, Index: 1},
		}},
	}
}

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore implementation
// adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	roomID := "contract-room-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := contractState(3)

		err := store.Save(ctx, roomID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, roomID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state.Red.Index, loaded.Red.Index)
		assert.Equal(t, state.Red.Cards, loaded.Red.Cards)
		assert.Equal(t, state.Board, loaded.Board)
		assert.Equal(t, state.Blue.DisplayName, loaded.Blue.DisplayName)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, roomID, contractState(3)))
		require.NoError(t, store.Save(ctx, roomID, contractState(9)))

		loaded, err := store.Load(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, 9, loaded.Red.Index, "Load should return the latest snapshot")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+roomID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, roomID, contractState(1)))

		err := store.Delete(ctx, roomID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, roomID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")

		assert.NoError(t, store.Delete(ctx, roomID), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		id1 := roomID + "-1"
		id2 := roomID + "-2"
		require.NoError(t, store.Save(ctx, id1, contractState(1)))
		require.NoError(t, store.Save(ctx, id2, contractState(2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		rooms, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, rooms, id1)
		assert.Contains(t, rooms, id2)
	})
}
