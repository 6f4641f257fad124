package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sort"

	"github.com/aretw0/burrow/internal/logging"
	"github.com/aretw0/burrow/pkg/client"
	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Status is the read-only view of a running session. *client.Client satisfies it.
type Status interface {
	Phase() client.Phase
	Color() string
	Room() (domain.Room, bool)
}

// Server serves the status surface of a running client.
type Server struct {
	Status  Status
	Store   ports.SnapshotStore
	Metrics http.Handler
	Streams *StreamManager
	Logger  *slog.Logger
	Version string
}

// Option configures the Server built by NewHandler.
type Option func(*Server)

// WithStatus exposes the session phase on /healthz.
func WithStatus(s Status) Option {
	return func(srv *Server) { srv.Status = s }
}

// WithStore exposes stored snapshots on /snapshots.
func WithStore(store ports.SnapshotStore) Option {
	return func(srv *Server) { srv.Store = store }
}

// WithMetrics mounts a Prometheus handler on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(srv *Server) { srv.Metrics = h }
}

// WithStreams enables the /events state stream.
func WithStreams(sm *StreamManager) Option {
	return func(srv *Server) { srv.Streams = sm }
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(srv *Server) { srv.Logger = logger }
}

// WithVersion is reported by /healthz.
func WithVersion(v string) Option {
	return func(srv *Server) { srv.Version = v }
}

// NewHandler creates the chi router. Endpoints whose backing component was not configured answer 404.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{Logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	if s.Store != nil {
		r.Get("/snapshots", s.ListSnapshots)
		r.Get("/snapshots/{room}", s.GetSnapshot)
	}
	if s.Streams != nil {
		r.Get("/events", s.SubscribeEvents)
	}
	return r
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Phase   string `json:"phase,omitempty"`
	Color   string `json:"color,omitempty"`
	Room    string `json:"room,omitempty"`
	Version string `json:"version,omitempty"`
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Version: s.Version}
	if s.Status != nil {
		resp.Phase = s.Status.Phase().String()
		resp.Color = s.Status.Color()
		if room, ok := s.Status.Room(); ok {
			resp.Room = room.ID
		}
		if s.Status.Phase() == client.PhaseTerminated {
			resp.Status = "terminated"
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// ListSnapshots handles the GET /snapshots request.
func (s *Server) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("ListSnapshots failed", "error", err)
		return
	}
	sort.Strings(rooms)
	s.writeJSON(w, http.StatusOK, map[string][]string{"rooms": rooms})
}

// GetSnapshot handles the GET /snapshots/{room} request.
func (s *Server) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	room := chi.URLParam(r, "room")
	state, err := s.Store.Load(r.Context(), room)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			http.Error(w, "snapshot not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("GetSnapshot failed", "room", room, "error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

// SubscribeEvents handles the GET /events request (SSE). The optional "room" query parameter
// restricts the stream to one room.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	room := r.URL.Query().Get("room")
	ch, cancel := s.Streams.Subscribe(room)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Debug("SSE client disconnected", "room", room)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: state\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

// Serve runs an HTTP server for handler on addr until ctx is cancelled.
// Shutdown cancels the request contexts, so open /events streams end instead of holding it up.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return serve(ctx, ln, handler, logger)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()

	srv := &http.Server{
		Handler:     handler,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelRequests)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("status server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
