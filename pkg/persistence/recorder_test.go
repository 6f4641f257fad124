package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/burrow/pkg/adapters/memory"
	"github.com/aretw0/burrow/pkg/client"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*memory.Store
}

func (failingStore) Save(context.Context, string, domain.GameState) error {
	return errors.New("disk full")
}

func TestRecorder_SavesPerRoom(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	rec := persistence.NewRecorder(store, persistence.WithFallbackRoom("session-1"))

	rec.OnUpdateState(ctx, domain.GameState{Red: domain.Player{Index: 1}})
	rec.OnJoin(ctx, domain.Room{ID: "room-9"})
	rec.OnUpdateState(ctx, domain.GameState{Red: domain.Player{Index: 2}})
	rec.OnUpdateState(ctx, domain.GameState{Red: domain.Player{Index: 3}})

	early, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, early.Red.Index)

	latest, err := store.Load(ctx, "room-9")
	require.NoError(t, err)
	assert.Equal(t, 3, latest.Red.Index)

	saved, failed := rec.Stats()
	assert.Equal(t, 3, saved)
	assert.Zero(t, failed)
}

func TestRecorder_StoreErrorsAreNotFatal(t *testing.T) {
	rec := persistence.NewRecorder(failingStore{memory.NewStore()})

	assert.NotPanics(t, func() {
		rec.OnUpdateState(context.Background(), domain.GameState{})
	})
	saved, failed := rec.Stats()
	assert.Zero(t, saved)
	assert.Equal(t, 1, failed)
}

func TestRecorder_AsSecondListener(t *testing.T) {
	var _ client.Listener = (*persistence.Recorder)(nil)

	ctx := context.Background()
	store := memory.NewStore()
	rec := persistence.NewRecorder(store)

	board := domain.Board{Fields: []domain.Field{{Type: domain.FieldCarrot, Index: 2}}}
	move, err := rec.OnMoveRequest(ctx, domain.GameState{Board: board}, domain.Player{Index: 1, Carrots: 5}, domain.Player{})
	require.NoError(t, err)
	assert.Equal(t, domain.Advance(1), move)
}
