package middleware

import (
	"context"
	"strings"

	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/ports"
)

// Mask replaces redacted display names.
const Mask = "***"

type redactMiddleware struct {
	next  ports.SnapshotStore
	names []string
}

// NewRedactMiddleware masks player display names before they are stored.
// A display name is masked when it equals one of names, ignoring case and surrounding spaces.
func NewRedactMiddleware(names []string) Middleware {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &redactMiddleware{next: next, names: cleaned}
	}
}

func (m *redactMiddleware) Save(ctx context.Context, roomID string, state domain.GameState) error {
	// The session keeps using the caller's copy.
	cloned := state.Clone()
	cloned.Red.DisplayName = m.mask(cloned.Red.DisplayName)
	cloned.Blue.DisplayName = m.mask(cloned.Blue.DisplayName)
	return m.next.Save(ctx, roomID, cloned)
}

func (m *redactMiddleware) Load(ctx context.Context, roomID string) (domain.GameState, error) {
	return m.next.Load(ctx, roomID)
}

func (m *redactMiddleware) Delete(ctx context.Context, roomID string) error {
	return m.next.Delete(ctx, roomID)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func (m *redactMiddleware) mask(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, n := range m.names {
		if strings.EqualFold(trimmed, n) {
			return Mask
		}
	}
	return name
}
