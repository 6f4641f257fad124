package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext is cancelled on SIGINT or SIGTERM and remembers the signal as its cause.
type SignalContext struct {
	context.Context
	Cancel func()
}

// signalCause is the cancellation cause recorded when a signal arrives.
type signalCause struct{ sig os.Signal }

func (c signalCause) Error() string { return "received " + c.sig.String() }

// NewSignalContext derives a context from parent that ends on the first SIGINT or SIGTERM.
// The signal is logged before the context is cancelled.
func NewSignalContext(parent context.Context, logger *slog.Logger) *SignalContext {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			logger.Info("stopping", "signal", sig.String())
			cancel(signalCause{sig: sig})
		case <-ctx.Done():
		}
	}()

	return &SignalContext{Context: ctx, Cancel: func() { cancel(nil) }}
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	var cause signalCause
	if errors.As(context.Cause(sc.Context), &cause) {
		return cause.sig
	}
	return nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
