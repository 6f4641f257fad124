package client

import (
	"context"
	"log/slog"
	"net"

	"go.opentelemetry.io/otel/trace"
)

// Dialer opens the transport. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracer configures the tracer used for dispatch spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// WithDialer replaces the default TCP dialer.
func WithDialer(d Dialer) Option {
	return func(c *Client) {
		c.dialer = d
	}
}

// WithGameType sets the game type sent when joining without a reservation.
func WithGameType(gameType string) Option {
	return func(c *Client) {
		c.gameType = gameType
	}
}

// WithListener registers a listener. Listeners are notified in registration order.
func WithListener(l Listener) Option {
	return func(c *Client) {
		c.listeners = append(c.listeners, l)
	}
}
