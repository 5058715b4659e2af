// Package signal cancels the seal command context on SIGINT or SIGTERM so a
// long read of a message or a pending prompt can stop cleanly.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrInterrupted is the cancellation cause recorded when a signal arrives.
var ErrInterrupted = errors.New("interrupted")

// Handler owns a context that is canceled with ErrInterrupted as its cause
// when the process receives SIGINT or SIGTERM.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler owns the command context
	cancel      context.CancelCauseFunc
	interrupted chan struct{}
	done        chan struct{}
	sigChan     chan os.Signal

	once     sync.Once
	stopOnce sync.Once

	mu       sync.Mutex
	received os.Signal
}

// NewHandler starts listening for SIGINT and SIGTERM.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := run(h.Context())
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancelCause(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		sigChan:     make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context to pass to commands.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel that is closed once a signal is received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Signal returns the first signal received, or nil.
func (h *Handler) Signal() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// ExitCode returns the conventional 128+n shell exit status for the received
// signal, or 0 when no signal arrived.
func (h *Handler) ExitCode() int {
	sig, ok := h.Signal().(syscall.Signal)
	if !ok {
		return 0
	}
	return 128 + int(sig)
}

// Stop releases the signal subscription and cancels the context.
// It is safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel(context.Canceled)
	})
}

func (h *Handler) interrupt(sig os.Signal) {
	h.once.Do(func() {
		h.mu.Lock()
		h.received = sig
		h.mu.Unlock()

		cause := ErrInterrupted
		if sig != nil {
			cause = fmt.Errorf("%w by %s", ErrInterrupted, sig)
		}
		h.cancel(cause)
		close(h.interrupted)
	})
}

// listen keeps draining sigChan after the first signal so repeated Ctrl+C
// never blocks delivery; only the first one counts.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.interrupt(sig)
		}
	}
}
