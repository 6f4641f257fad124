package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/burrow/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "burrow:snapshot:"

// Store implements ports.SnapshotStore using Redis.
// Snapshots are JSON strings; a sorted set indexes rooms by expiry so List can prune lazily.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for snapshots.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for snapshots.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(roomID string) string {
	return s.prefix + roomID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Ping checks that the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Save persists the snapshot and refreshes its index entry.
func (s *Store) Save(ctx context.Context, roomID string, state domain.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Score = expiry time; without a TTL the entry never expires.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(roomID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: roomID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the snapshot from Redis.
func (s *Store) Load(ctx context.Context, roomID string) (domain.GameState, error) {
	val, err := s.client.Get(ctx, s.key(roomID)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.GameState{}, domain.ErrSnapshotNotFound
		}
		return domain.GameState{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	var state domain.GameState
	if err := json.Unmarshal(val, &state); err != nil {
		return domain.GameState{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return state, nil
}

// Delete removes the snapshot and its index entry.
func (s *Store) Delete(ctx context.Context, roomID string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(roomID))
	pipe.ZRem(ctx, s.indexKey(), roomID)
	_, err := pipe.Exec(ctx)
	return err
}

// List prunes expired index entries and returns the remaining rooms.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired snapshots: %w", err)
	}

	rooms, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return rooms, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
