package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/burrow/pkg/adapters/memory"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSnapshotStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	state := domain.GameState{Board: domain.Board{Fields: []domain.Field{{Type: domain.FieldCarrot, Index: 1}}}}
	require.NoError(t, store.Save(ctx, "r", state))
	state.Board.Fields[0].Type = domain.FieldHare

	loaded, err := store.Load(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, domain.FieldCarrot, loaded.Board.Fields[0].Type)

	loaded.Board.Fields[0].Type = domain.FieldGoal
	again, err := store.Load(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, domain.FieldCarrot, again.Board.Fields[0].Type)
}
