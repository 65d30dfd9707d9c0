package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalHandler blocks the daemon's run loop until the process is told
// to stop. It has no reload path; every subscribed signal means shut
// down, disarm the reminder timers, and remove the PID file.
type SignalHandler struct {
	signals chan os.Signal
	done    chan struct{}
}

// NewSignalHandler creates an unsubscribed handler; call Setup before Wait.
func NewSignalHandler() *SignalHandler {
	return &SignalHandler{
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
}

// Setup subscribes to SIGINT, SIGTERM, and SIGHUP. SIGHUP is treated as
// a stop request like the others.
func (h *SignalHandler) Setup() {
	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}

// Wait blocks until a signal arrives, the context ends, or Stop is
// called. Returns the signal, or nil for the other two cases.
func (h *SignalHandler) Wait(ctx context.Context) os.Signal {
	select {
	case sig := <-h.signals:
		return sig
	case <-ctx.Done():
		return nil
	case <-h.done:
		return nil
	}
}

// Stop unblocks Wait without a signal having arrived.
func (h *SignalHandler) Stop() {
	signal.Stop(h.signals)
	close(h.done)
}

// Cleanup unsubscribes from signal delivery.
func (h *SignalHandler) Cleanup() {
	signal.Stop(h.signals)
}
