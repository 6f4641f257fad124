package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/burrow/pkg/adapters/memory"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/persistence/middleware"
	"github.com/aretw0/burrow/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactMiddleware_Masking(t *testing.T) {
	underlying := memory.NewStore()
	store := middleware.NewRedactMiddleware([]string{"student 17", " "})(underlying)
	ctx := context.Background()

	state := domain.GameState{
		Red:  domain.Player{DisplayName: "Student 17", Color: "RED"},
		Blue: domain.Player{DisplayName: "SimpleClient", Color: "BLUE"},
	}
	require.NoError(t, store.Save(ctx, "r", state))

	assert.Equal(t, "Student 17", state.Red.DisplayName, "caller state must not change")

	stored, err := underlying.Load(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, middleware.Mask, stored.Red.DisplayName)
	assert.Equal(t, "SimpleClient", stored.Blue.DisplayName)
}

func TestRedactMiddleware_LiteralNames(t *testing.T) {
	names := []string{"a.c", "Bot (v2", "Bot", `[`}

	tests := []struct {
		display string
		masked  bool
	}{
		{"a.c", true},
		{"abc", false},
		{"Bot (v2", true},
		{"bot", true},
		{"RoboBot", false},
		{"Bot 2", false},
		{"[", true},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			underlying := memory.NewStore()
			var store ports.SnapshotStore
			require.NotPanics(t, func() {
				store = middleware.NewRedactMiddleware(names)(underlying)
			})
			ctx := context.Background()

			require.NoError(t, store.Save(ctx, "r", domain.GameState{Red: domain.Player{DisplayName: tt.display}}))
			stored, err := underlying.Load(ctx, "r")
			require.NoError(t, err)

			want := tt.display
			if tt.masked {
				want = middleware.Mask
			}
			assert.Equal(t, want, stored.Red.DisplayName)
		})
	}
}

func TestRedactMiddleware_Contract(t *testing.T) {
	store := middleware.NewRedactMiddleware([]string{"nothing-matches-this"})(memory.NewStore())
	ports.RunSnapshotStoreContract(t, store)
}

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.SnapshotStore) ports.SnapshotStore {
			order = append(order, name)
			return next
		}
	}

	middleware.Chain(memory.NewStore(), tag("outer"), tag("inner"))
	assert.Equal(t, []string{"inner", "outer"}, order)
}
