package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"

	"github.com/aretw0/burrow/internal/logging"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/mapping"
	"github.com/aretw0/burrow/pkg/protocol"
	"github.com/aretw0/burrow/pkg/strategy"
	"github.com/aretw0/burrow/pkg/xmltree"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aretw0/burrow/pkg/client"

// Client is a single game session.
type Client struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	dialer   Dialer
	gameType string

	mu        sync.RWMutex
	listeners []Listener
	phase     Phase
	color     string
	room      *domain.Room
	state     *domain.GameState

	// writeMu guards out so a blocked write never stalls the accessors.
	writeMu sync.Mutex
	out     *bufio.Writer
}

// New creates a Client. By default it logs nowhere, uses the global tracer provider
// and joins the default game type over TCP.
func New(opts ...Option) *Client {
	c := &Client{
		logger:   logging.NewNop(),
		dialer:   &net.Dialer{},
		gameType: protocol.DefaultGameType,
		phase:    PhaseIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

// AddListener registers a listener after construction.
func (c *Client) AddListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Phase returns the current lifecycle stage.
func (c *Client) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Color returns the color assigned by the welcome message, or "" before it arrives.
func (c *Client) Color() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.color
}

// Room returns the joined room.
func (c *Client) Room() (domain.Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.room == nil {
		return domain.Room{}, false
	}
	return *c.room, true
}

// State returns a copy of the latest game state.
func (c *Client) State() (domain.GameState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state == nil {
		return domain.GameState{}, false
	}
	return c.state.Clone(), true
}

// Run connects to addr and serves the session until the server ends the game.
// Cancelling ctx closes the connection.
func (c *Client) Run(ctx context.Context, addr, reservation string) error {
	c.setPhase(PhaseConnecting)
	c.logger.Info("connecting", "addr", addr)

	conn, err := c.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		c.setPhase(PhaseTerminated)
		return &domain.ConnectionError{Addr: addr, Cause: err}
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	err = c.Serve(ctx, conn, reservation)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Serve performs the handshake on rw and runs the receive loop.
// It returns nil when the stream ends cleanly between two elements.
func (c *Client) Serve(ctx context.Context, rw io.ReadWriter, reservation string) (err error) {
	defer func() {
		c.setPhase(PhaseTerminated)
		if err != nil {
			c.logger.Error("session terminated", "error", err)
		} else {
			c.logger.Info("session terminated")
		}
	}()

	c.writeMu.Lock()
	c.out = bufio.NewWriter(rw)
	c.writeMu.Unlock()

	c.setPhase(PhaseJoining)
	if err := c.join(reservation); err != nil {
		return err
	}

	src := newEnvelope(rw)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.setPhase(PhaseAwaiting)
		node, err := xmltree.ReadOne(src)
		if err != nil {
			var streamErr *xmltree.StreamError
			if errors.As(err, &streamErr) && streamErr.AtBoundary() && errors.Is(err, io.EOF) {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("%w: %w", domain.ErrStream, err)
		}

		c.setPhase(PhaseDispatching)
		if err := c.Dispatch(ctx, node); err != nil {
			return err
		}
	}
}

func (c *Client) join(reservation string) error {
	frame := protocol.Join(c.gameType)
	if reservation != "" {
		frame = protocol.JoinPrepared(reservation)
		c.logger.Info("joining prepared game")
	} else {
		c.logger.Info("joining game", "game_type", c.gameType)
	}
	if err := c.write(protocol.Prolog(), frame); err != nil {
		return fmt.Errorf("join: %w", err)
	}
	return nil
}

// Dispatch handles a single top-level element received from the server.
// Unrecognized element names and data classes are ignored.
func (c *Client) Dispatch(ctx context.Context, n *xmltree.Node) (err error) {
	class, _ := n.Attr("class")

	ctx, span := c.tracer.Start(ctx, "burrow.dispatch", trace.WithAttributes(
		attribute.String("burrow.element", n.Name),
		attribute.String("burrow.class", class),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	c.logger.Debug("received element", "element", n.Name, "class", class)
	c.logger.Log(ctx, logging.LevelTrace, "receive", "element", n.Name, "attrs", n.Attrs, "children", len(n.Children))

	switch {
	case n.Name == protocol.ElementJoined:
		return c.handleJoined(ctx, n)
	case n.Name == protocol.ElementData && class == protocol.ClassMemento:
		return c.handleMemento(ctx, n)
	case n.Name == protocol.ElementData && class == protocol.ClassWelcomeMessage:
		return c.handleWelcome(ctx, n)
	case n.Name == protocol.ElementData && class == protocol.ClassMoveRequest:
		return c.handleMoveRequest(ctx)
	default:
		c.logger.Debug("ignoring element", "element", n.Name, "class", class)
		return nil
	}
}

func (c *Client) handleJoined(ctx context.Context, n *xmltree.Node) error {
	room, err := mapping.Room(n)
	if err != nil {
		return fmt.Errorf("joined: %w", err)
	}
	c.logger.Info("joined room", "room", room.ID)

	for _, l := range c.snapshotListeners() {
		l.OnJoin(ctx, room)
	}

	c.mu.Lock()
	c.room = &room
	c.mu.Unlock()
	return nil
}

func (c *Client) handleMemento(ctx context.Context, n *xmltree.Node) error {
	memento, err := mapping.Memento(n)
	if err != nil {
		return err
	}
	c.logger.Debug("state updated",
		"red_index", memento.State.Red.Index,
		"blue_index", memento.State.Blue.Index,
	)

	for _, l := range c.snapshotListeners() {
		l.OnUpdateState(ctx, memento.State.Clone())
	}

	c.mu.Lock()
	c.state = &memento.State
	c.mu.Unlock()
	return nil
}

func (c *Client) handleWelcome(ctx context.Context, n *xmltree.Node) error {
	msg, err := mapping.WelcomeMessage(n)
	if err != nil {
		return fmt.Errorf("welcome message: %w", err)
	}

	c.mu.RLock()
	current := c.color
	c.mu.RUnlock()
	if current != "" && !strings.EqualFold(current, msg.Color) {
		return domain.NewPreconditionError("color already assigned as %q, server sent %q", current, msg.Color)
	}
	c.logger.Info("welcome message", "color", msg.Color)

	for _, l := range c.snapshotListeners() {
		l.OnWelcomeMessage(ctx, msg)
	}

	c.mu.Lock()
	c.color = msg.Color
	c.mu.Unlock()
	return nil
}

func (c *Client) handleMoveRequest(ctx context.Context) error {
	c.mu.RLock()
	color := c.color
	state := c.state
	room := c.room
	c.mu.RUnlock()

	if color == "" || state == nil {
		return domain.NewPreconditionError("move request before welcome message and initial state")
	}

	me, opponent, err := state.Players(color)
	if err != nil {
		return err
	}

	move, err := c.chooseMove(ctx, *state, me, opponent)
	if err != nil {
		return fmt.Errorf("move request: %w", err)
	}
	if move.IsZero() {
		return domain.NewPreconditionError("empty move chosen")
	}

	roomID := ""
	if room != nil {
		roomID = room.ID
	} else {
		c.logger.Warn("answering move request before joining a room")
	}

	c.logger.Info("sending move", "room", roomID, "move", move.XML)
	if err := c.write(protocol.MoveResponse(roomID, move.XML)); err != nil {
		return fmt.Errorf("send move: %w", err)
	}
	return nil
}

// chooseMove asks every listener in order and keeps the first one's answer.
func (c *Client) chooseMove(ctx context.Context, state domain.GameState, me, opponent domain.Player) (domain.Move, error) {
	listeners := c.snapshotListeners()
	if len(listeners) == 0 {
		return strategy.Default(ctx, state.Clone(), me.Clone(), opponent.Clone())
	}

	var chosen domain.Move
	for i, l := range listeners {
		move, err := l.OnMoveRequest(ctx, state.Clone(), me.Clone(), opponent.Clone())
		if i == 0 {
			if err != nil {
				return domain.Move{}, err
			}
			chosen = move
			continue
		}
		if err != nil {
			c.logger.Warn("listener move request failed", "listener", i, "error", err)
		}
	}
	return chosen, nil
}

func (c *Client) write(frames ...string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.out == nil {
		return errors.New("no connection")
	}
	for _, f := range frames {
		c.logger.Log(context.Background(), logging.LevelTrace, "send", "frame", f)
		if _, err := c.out.WriteString(f); err != nil {
			return err
		}
	}
	return c.out.Flush()
}

func (c *Client) snapshotListeners() []Listener {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Listener, len(c.listeners))
	copy(out, c.listeners)
	return out
}

func (c *Client) setPhase(p Phase) {
	c.mu.Lock()
	prev := c.phase
	c.phase = p
	c.mu.Unlock()

	if prev == p {
		return
	}
	level := slog.LevelInfo
	if p == PhaseAwaiting || p == PhaseDispatching {
		level = slog.LevelDebug
	}
	c.logger.Log(context.Background(), level, "phase", "from", prev, "to", p)
}
