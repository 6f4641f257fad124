package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/burrow"
	"github.com/aretw0/burrow/internal/config"
	"github.com/aretw0/burrow/internal/presentation/tui"
	"github.com/aretw0/burrow/internal/telemetry"
	httpadapter "github.com/aretw0/burrow/pkg/adapters/http"
	"github.com/aretw0/burrow/pkg/client"
	"github.com/aretw0/burrow/pkg/observability"
	"github.com/aretw0/burrow/pkg/persistence"
	"github.com/aretw0/burrow/pkg/strategy"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PlayOptions carries the process-level collaborators of Play.
type PlayOptions struct {
	Logger *slog.Logger
	Stdout io.Writer
	// Strategy picks moves. Nil means strategy.Default.
	Strategy strategy.Func
	// Ready, if set, receives the client once it is wired, before connecting.
	Ready func(*client.Client)
}

// Play runs one game with everything cfg enables: snapshots, metrics, the status server and tracing.
func Play(ctx context.Context, cfg config.Config, opts PlayOptions) (err error) {
	sessionID := uuid.NewString()
	logger := opts.Logger.With("session_id", sessionID)

	if !cfg.Quiet {
		tui.PrintBanner(opts.Stdout, burrow.Version)
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint, burrow.Version)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if serr := shutdownTracing(context.Background()); serr != nil {
			logger.Warn("trace shutdown failed", "error", serr)
		}
	}()

	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeStore()) }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	pick := opts.Strategy
	if pick == nil {
		pick = strategy.Default
	}

	c := client.New(
		client.WithLogger(logger),
		client.WithGameType(cfg.GameType),
		// The first listener chooses the move; the rest observe.
		client.WithListener(client.Hooks{MoveRequest: metrics.Instrument(pick)}),
		client.WithListener(metrics),
	)

	var recorder *persistence.Recorder
	if store != nil {
		recorder = persistence.NewRecorder(store,
			persistence.WithLogger(logger),
			persistence.WithFallbackRoom(sessionID),
		)
		c.AddListener(recorder)
	}

	streams := httpadapter.NewStreamManager(logger)
	c.AddListener(streams.Listener())

	serverCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()
	serverDone := make(chan error, 1)
	if cfg.MetricsAddr != "" {
		handler := httpadapter.NewHandler(
			httpadapter.WithStatus(c),
			httpadapter.WithStore(store),
			httpadapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
			httpadapter.WithStreams(streams),
			httpadapter.WithLogger(logger),
			httpadapter.WithVersion(burrow.Version),
		)
		go func() { serverDone <- httpadapter.Serve(serverCtx, cfg.MetricsAddr, handler, logger) }()
	} else {
		serverDone <- nil
	}

	if opts.Ready != nil {
		opts.Ready(c)
	}

	runErr := c.Run(ctx, cfg.Addr(), cfg.Reservation)

	stopServer()
	if serr := <-serverDone; serr != nil {
		logger.Warn("status server stopped", "error", serr)
	}

	if recorder != nil {
		saved, failed := recorder.Stats()
		logger.Info("snapshots recorded", "saved", saved, "failed", failed)
	}

	if runErr != nil {
		return runErr
	}
	if !cfg.Quiet {
		room, _ := c.Room()
		printSystemMessage(opts.Stdout, "Game over in room '%s' playing %s.", room.ID, c.Color())
	}
	return nil
}
