// Package task models a supervised unit of work with explicit lifecycle
// states, replacing ad hoc process handles plus booleans in callers that
// need to start, observe, and cancel a pipeline run.
package task

import (
	"context"
	"errors"
	"sync"
)

// State is a task's lifecycle position. Transitions only move forward:
// Idle → Running → (Cancelling →) Finished.
type State int

const (
	Idle State = iota
	Running
	Cancelling
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Cancelling:
		return "cancelling"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// ErrAlreadyStarted is returned by Start on anything but an idle task.
var ErrAlreadyStarted = errors.New("task already started")

// Handle supervises one function invocation.
type Handle struct {
	fn func(context.Context) error

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// New wraps fn; the task stays idle until Start.
func New(fn func(context.Context) error) *Handle {
	return &Handle{fn: fn, done: make(chan struct{})}
}

// Start launches the task. The derived context is cancelled by Cancel or
// when parent is cancelled.
func (h *Handle) Start(parent context.Context) error {
	h.mu.Lock()
	if h.state != Idle {
		h.mu.Unlock()
		return ErrAlreadyStarted
	}
	ctx, cancel := context.WithCancel(parent)
	h.state = Running
	h.cancel = cancel
	h.mu.Unlock()

	go func() {
		err := h.fn(ctx)
		cancel()

		h.mu.Lock()
		h.state = Finished
		h.err = err
		h.mu.Unlock()
		close(h.done)
	}()
	return nil
}

// Cancel requests cancellation of a running task. It does not wait; the
// task reaches Finished when its function returns.
func (h *Handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != Running {
		return
	}
	h.state = Cancelling
	h.cancel()
}

// Wait blocks until the task finishes and returns its error.
func (h *Handle) Wait() error {
	<-h.done
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// State reports the current lifecycle state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
