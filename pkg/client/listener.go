package client

import (
	"context"

	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/strategy"
)

// Listener receives session events. Hooks are called synchronously on the session goroutine.
type Listener interface {
	OnJoin(ctx context.Context, room domain.Room)
	OnUpdateState(ctx context.Context, state domain.GameState)
	OnWelcomeMessage(ctx context.Context, msg domain.WelcomeMessage)
	OnMoveRequest(ctx context.Context, state domain.GameState, me, opponent domain.Player) (domain.Move, error)
}

// Hooks adapts a set of optional callbacks to the Listener interface.
// Nil notification hooks are no-ops. A nil MoveRequest uses strategy.Default.
type Hooks struct {
	Join           func(context.Context, domain.Room)
	UpdateState    func(context.Context, domain.GameState)
	WelcomeMessage func(context.Context, domain.WelcomeMessage)
	MoveRequest    strategy.Func
}

var _ Listener = Hooks{}

func (h Hooks) OnJoin(ctx context.Context, room domain.Room) {
	if h.Join != nil {
		h.Join(ctx, room)
	}
}

func (h Hooks) OnUpdateState(ctx context.Context, state domain.GameState) {
	if h.UpdateState != nil {
		h.UpdateState(ctx, state)
	}
}

func (h Hooks) OnWelcomeMessage(ctx context.Context, msg domain.WelcomeMessage) {
	if h.WelcomeMessage != nil {
		h.WelcomeMessage(ctx, msg)
	}
}

func (h Hooks) OnMoveRequest(ctx context.Context, state domain.GameState, me, opponent domain.Player) (domain.Move, error) {
	if h.MoveRequest != nil {
		return h.MoveRequest(ctx, state, me, opponent)
	}
	return strategy.Default(ctx, state, me, opponent)
}

// Observer is embedded by passive listeners that never pick moves.
// Its OnMoveRequest abstains with an empty move, so an Observer registered first makes the session
// fail the move request.
type Observer struct{}

func (Observer) OnJoin(context.Context, domain.Room)                     {}
func (Observer) OnUpdateState(context.Context, domain.GameState)         {}
func (Observer) OnWelcomeMessage(context.Context, domain.WelcomeMessage) {}

func (Observer) OnMoveRequest(context.Context, domain.GameState, domain.Player, domain.Player) (domain.Move, error) {
	return domain.Move{}, nil
}
