package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/burrow/pkg/adapters/file"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSnapshotStoreContract(t, store)
}

func TestFileStore_LayoutAndLeftovers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.New(dir)

	require.NoError(t, store.Save(ctx, "room-a", domain.GameState{}))
	assert.FileExists(t, filepath.Join(dir, "room-a.json"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-room-b-123.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	rooms, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"room-a"}, rooms)
}

func TestFileStore_MissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "absent"))

	rooms, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestFileStore_RejectsUnsafeIDs(t *testing.T) {
	ctx := context.Background()
	store := file.New(t.TempDir())

	for _, id := range []string{"", "..", "../escape", `a\b`} {
		assert.Error(t, store.Save(ctx, id, domain.GameState{}), id)
		_, err := store.Load(ctx, id)
		assert.Error(t, err, id)
		assert.NotErrorIs(t, err, domain.ErrSnapshotNotFound, id)
	}
}

func TestFileStore_CorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, err := file.New(dir).Load(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
