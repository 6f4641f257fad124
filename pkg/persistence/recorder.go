package persistence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/burrow/internal/logging"
	"github.com/aretw0/burrow/pkg/client"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/ports"
)

// DefaultSaveTimeout bounds a single snapshot write.
const DefaultSaveTimeout = 5 * time.Second

// Recorder saves each state update under the current room id.
// Storage failures are logged and never end the session.
type Recorder struct {
	client.Observer

	store       ports.SnapshotStore
	logger      *slog.Logger
	fallback    string
	saveTimeout time.Duration

	mu     sync.Mutex
	room   string
	saved  int
	failed int
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithFallbackRoom sets the key used for states received before a room was joined.
func WithFallbackRoom(id string) Option {
	return func(r *Recorder) {
		r.fallback = id
	}
}

// WithSaveTimeout bounds each store write.
func WithSaveTimeout(d time.Duration) Option {
	return func(r *Recorder) {
		r.saveTimeout = d
	}
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store ports.SnapshotStore, opts ...Option) *Recorder {
	r := &Recorder{
		store:       store,
		logger:      logging.NewNop(),
		fallback:    "unjoined",
		saveTimeout: DefaultSaveTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) OnJoin(_ context.Context, room domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.room = room.ID
}

func (r *Recorder) OnUpdateState(ctx context.Context, state domain.GameState) {
	r.mu.Lock()
	key := r.room
	r.mu.Unlock()
	if key == "" {
		key = r.fallback
	}

	ctx, cancel := context.WithTimeout(ctx, r.saveTimeout)
	defer cancel()

	err := r.store.Save(ctx, key, state)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.failed++
		r.logger.Warn("snapshot not saved", "room", key, "error", err)
		return
	}
	r.saved++
	r.logger.Debug("snapshot saved", "room", key)
}

// Stats returns the number of successful and failed writes.
func (r *Recorder) Stats() (saved, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved, r.failed
}
