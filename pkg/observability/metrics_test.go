package observability_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/observability"
	"github.com/aretw0/burrow/pkg/strategy"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Listener(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	ctx := context.Background()

	m.OnJoin(ctx, domain.Room{ID: "r"})
	m.OnWelcomeMessage(ctx, domain.WelcomeMessage{Color: "red"})
	m.OnUpdateState(ctx, domain.GameState{
		Red:  domain.Player{Color: "RED", Index: 4, Carrots: 33, Salads: 5},
		Blue: domain.Player{Color: "BLUE", Index: 7, Carrots: 12, Salads: 3},
	})

	expected := `
# HELP burrow_player_carrots Carrots held by each player in the latest state.
# TYPE burrow_player_carrots gauge
burrow_player_carrots{color="blue"} 12
burrow_player_carrots{color="red"} 33
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "burrow_player_carrots"))

	expected = `
# HELP burrow_messages_total Protocol messages dispatched to listeners, by kind.
# TYPE burrow_messages_total counter
burrow_messages_total{kind="joined"} 1
burrow_messages_total{kind="memento"} 1
burrow_messages_total{kind="welcome_message"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "burrow_messages_total"))
}

func TestMetrics_Instrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	ctx := context.Background()

	board := domain.Board{Fields: []domain.Field{{Type: domain.FieldCarrot, Index: 3}}}
	pick := m.Instrument(strategy.Default)

	move, err := pick(ctx, domain.GameState{Board: board}, domain.Player{Index: 1, Carrots: 10}, domain.Player{})
	require.NoError(t, err)
	assert.Equal(t, domain.Advance(2), move)

	_, err = pick(ctx, domain.GameState{Board: board}, domain.Player{Index: 1, Carrots: 1}, domain.Player{})
	require.NoError(t, err)

	_, err = pick(ctx, domain.GameState{}, domain.Player{}, domain.Player{})
	require.Error(t, err)

	assert.Equal(t, 3, testutil.CollectAndCount(reg, "burrow_moves_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "burrow_move_duration_seconds"))
}

func TestMetrics_MoveRequestCountsAndAbstains(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	board := domain.Board{Fields: []domain.Field{{Type: domain.FieldCarrot, Index: 3}}}
	move, err := m.OnMoveRequest(context.Background(), domain.GameState{Board: board},
		domain.Player{Index: 1, Carrots: 10}, domain.Player{})
	require.NoError(t, err)
	assert.True(t, move.IsZero(), "passive listeners never pick moves")

	count, err := testutil.GatherAndCount(reg, "burrow_move_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMoveKind(t *testing.T) {
	assert.Equal(t, "advance", observability.MoveKind(domain.Advance(3)))
	assert.Equal(t, "fallBack", observability.MoveKind(domain.FallBack()))
	assert.Equal(t, "unknown", observability.MoveKind(domain.Move{}))
	assert.Equal(t, "eatSalad", observability.MoveKind(domain.Move{XML: "<eatSalad/>"}))
}
