package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/burrow/internal/config"
	"github.com/aretw0/burrow/internal/presentation/tui"
	"github.com/aretw0/burrow/pkg/domain"
)

// ErrNoStore is returned by Inspect when neither a snapshot directory nor redis is configured.
var ErrNoStore = errors.New("no snapshot store configured (use --snapshot-dir or --redis-addr)")

// Inspect renders the stored snapshot of room to w. With an empty room it lists the stored rooms.
func Inspect(ctx context.Context, cfg config.Config, room string, w io.Writer, styled bool, logger *slog.Logger) error {
	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()
	if store == nil {
		return ErrNoStore
	}

	if room == "" {
		rooms, err := store.List(ctx)
		if err != nil {
			return err
		}
		if len(rooms) == 0 {
			printSystemMessage(w, "No snapshots stored.")
			return nil
		}
		for _, r := range rooms {
			fmt.Fprintln(w, r)
		}
		return nil
	}

	state, err := store.Load(ctx, room)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return fmt.Errorf("room %q: %w", room, err)
		}
		return err
	}

	render, err := tui.NewRenderer(styled)
	if err != nil {
		return err
	}
	out, err := render(tui.StateMarkdown(room, state))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
