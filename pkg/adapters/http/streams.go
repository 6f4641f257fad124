package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/burrow/internal/logging"
	"github.com/aretw0/burrow/pkg/client"
	"github.com/aretw0/burrow/pkg/domain"
)

const shutdownTimeout = 5 * time.Second

// allRooms is the subscription key of clients that did not ask for a specific room.
const allRooms = ""

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan string]struct{} // room -> set of channels
	logger      *slog.Logger
}

// NewStreamManager creates an empty manager. A nil logger discards output.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[string]map[chan string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a buffered channel for room ("" for every room).
// The returned func unregisters and closes the channel.
func (sm *StreamManager) Subscribe(room string) (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[room]; !ok {
		sm.subscribers[room] = make(map[chan string]struct{})
	}
	sm.subscribers[room][ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			if subs, ok := sm.subscribers[room]; ok {
				delete(subs, ch)
				close(ch)
				if len(subs) == 0 {
					delete(sm.subscribers, room)
				}
			}
		})
	}
}

// Broadcast delivers msg to the room's subscribers and to those watching every room.
// Slow subscribers with a full buffer miss the message.
func (sm *StreamManager) Broadcast(room, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := []string{allRooms}
	if room != allRooms {
		keys = append(keys, room)
	}
	for _, key := range keys {
		for ch := range sm.subscribers[key] {
			select {
			case ch <- msg:
			default:
				sm.logger.Warn("SSE: client buffer full, dropping message", "room", room)
			}
		}
	}
}

// Listener returns a passive client.Listener that broadcasts every state update as JSON.
func (sm *StreamManager) Listener() client.Listener {
	return &broadcaster{streams: sm}
}

type broadcaster struct {
	client.Observer
	streams *StreamManager

	mu   sync.Mutex
	room string
}

func (b *broadcaster) OnJoin(_ context.Context, room domain.Room) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.room = room.ID
}

func (b *broadcaster) OnUpdateState(_ context.Context, state domain.GameState) {
	data, err := json.Marshal(state)
	if err != nil {
		b.streams.logger.Error("SSE: state encode failed", "error", err)
		return
	}
	b.mu.Lock()
	room := b.room
	b.mu.Unlock()
	b.streams.Broadcast(room, string(data))
}
