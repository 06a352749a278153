package assistant

import (
	"context"
	"sync"

	"github.com/ce-es/dashboard/internal/domain"
)

// State is the lifecycle of the current chat request.
type State string

const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Runner serializes chat requests: at most one in flight, with
// cancellation of the running one. The UI disables the send button while
// pending; this enforces the same rule server-side.
type Runner struct {
	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// NewRunner starts idle.
func NewRunner() *Runner { return &Runner{state: StateIdle} }

// State reports the current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Begin transitions to pending and returns a request context. A second
// Begin while pending fails with ErrRequestInFlight.
func (r *Runner) Begin(ctx context.Context) (context.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StatePending {
		return nil, domain.ErrRequestInFlight
	}
	ctx, cancel := context.WithCancel(ctx)
	r.state = StatePending
	r.cancel = cancel
	return ctx, nil
}

// Finish records the outcome of the pending request.
func (r *Runner) Finish(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if err != nil {
		r.state = StateFailed
	} else {
		r.state = StateSucceeded
	}
}

// Cancel aborts the pending request, if any, and returns whether one was
// running. The aborted request finishes as failed through its context.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StatePending || r.cancel == nil {
		return false
	}
	r.cancel()
	r.cancel = nil
	r.state = StateFailed
	return true
}
