package observability

import (
	"context"
	"strings"
	"time"

	"github.com/aretw0/burrow/pkg/client"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/strategy"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects per-session counters and gauges.
type Metrics struct {
	client.Observer

	messages     *prometheus.CounterVec
	moveRequests prometheus.Counter
	moves        *prometheus.CounterVec
	moveDuration prometheus.Histogram
	position     *prometheus.GaugeVec
	carrots      *prometheus.GaugeVec
	salads       *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "burrow_messages_total",
			Help: "Protocol messages dispatched to listeners, by kind.",
		}, []string{"kind"}),
		moveRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_move_requests_total",
			Help: "Move requests received from the server.",
		}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "burrow_moves_total",
			Help: "Moves chosen by the instrumented strategy, by move kind.",
		}, []string{"kind"}),
		moveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "burrow_move_duration_seconds",
			Help:    "Time spent choosing a move.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		position: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "burrow_player_position",
			Help: "Track index of each player in the latest state.",
		}, []string{"color"}),
		carrots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "burrow_player_carrots",
			Help: "Carrots held by each player in the latest state.",
		}, []string{"color"}),
		salads: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "burrow_player_salads",
			Help: "Salads held by each player in the latest state.",
		}, []string{"color"}),
	}
	reg.MustRegister(m.messages, m.moveRequests, m.moves, m.moveDuration, m.position, m.carrots, m.salads)
	return m
}

func (m *Metrics) OnJoin(context.Context, domain.Room) {
	m.messages.WithLabelValues("joined").Inc()
}

func (m *Metrics) OnWelcomeMessage(context.Context, domain.WelcomeMessage) {
	m.messages.WithLabelValues("welcome_message").Inc()
}

func (m *Metrics) OnUpdateState(_ context.Context, state domain.GameState) {
	m.messages.WithLabelValues("memento").Inc()
	for _, p := range []domain.Player{state.Red, state.Blue} {
		color := strings.ToLower(p.Color)
		m.position.WithLabelValues(color).Set(float64(p.Index))
		m.carrots.WithLabelValues(color).Set(float64(p.Carrots))
		m.salads.WithLabelValues(color).Set(float64(p.Salads))
	}
}

func (m *Metrics) OnMoveRequest(ctx context.Context, state domain.GameState, me, opponent domain.Player) (domain.Move, error) {
	m.messages.WithLabelValues("move_request").Inc()
	m.moveRequests.Inc()
	return m.Observer.OnMoveRequest(ctx, state, me, opponent)
}

// Instrument wraps a strategy so every chosen move is counted and timed.
func (m *Metrics) Instrument(next strategy.Func) strategy.Func {
	return func(ctx context.Context, state domain.GameState, me, opponent domain.Player) (domain.Move, error) {
		start := time.Now()
		move, err := next(ctx, state, me, opponent)
		m.moveDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			m.moves.WithLabelValues("error").Inc()
			return move, err
		}
		m.moves.WithLabelValues(MoveKind(move)).Inc()
		return move, nil
	}
}

// MoveKind returns the element name of a serialized move, e.g. "advance" or "fallBack".
func MoveKind(move domain.Move) string {
	s := strings.TrimPrefix(strings.TrimSpace(move.XML), "<")
	if i := strings.IndexAny(s, " />"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "unknown"
	}
	return s
}
