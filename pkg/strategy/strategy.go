// Package strategy holds move-selection policies that can be plugged into a client.
package strategy

import (
	"context"

	"github.com/aretw0/burrow/pkg/domain"
)

// Func selects a move for the player "me" given the current state.
type Func func(ctx context.Context, state domain.GameState, me, opponent domain.Player) (domain.Move, error)

// Default advances to the nearest carrot field ahead that the opponent does not occupy.
// If the carrots in hand cannot pay for the distance it falls back instead.
func Default(_ context.Context, state domain.GameState, me, opponent domain.Player) (domain.Move, error) {
	target, ok := nearestCarrot(state.Board, me.Index, opponent.Index)
	if !ok {
		return domain.Move{}, domain.NewPreconditionError("no reachable carrot field ahead of index %d", me.Index)
	}

	distance := target.Index - me.Index
	if Cost(distance) > me.Carrots {
		return domain.FallBack(), nil
	}
	return domain.Advance(distance), nil
}

// Cost is the number of carrots needed to advance distance fields.
func Cost(distance int) int {
	return distance * (distance + 1) / 2
}

// nearestCarrot scans fields by increasing index.
func nearestCarrot(board domain.Board, from, occupied int) (domain.Field, bool) {
	var (
		best  domain.Field
		found bool
	)
	for _, f := range board.Fields {
		if f.Index <= from || f.Index == occupied || f.Type != domain.FieldCarrot {
			continue
		}
		if !found || f.Index < best.Index {
			best, found = f, true
		}
	}
	return best, found
}
