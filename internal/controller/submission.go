package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/keylock/internal/app"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
)

// ShareOutcome is the result of one create exchange, tagged with the
// attempt that produced it.
type ShareOutcome struct {
	attempt uint64

	Result models.ShareResult
	Err    error
}

// ShareExchange performs the network part of one submission.
type ShareExchange func(ctx context.Context) ShareOutcome

// SubmissionController drives the creation form.
type SubmissionController struct {
	share service.ClientShareService

	mu      sync.Mutex
	state   SubmissionState
	attempt uint64
	closed  bool
}

func NewSubmissionController(share service.ClientShareService) *SubmissionController {
	return &SubmissionController{share: share, state: Idle{}}
}

// State returns the current state.
func (c *SubmissionController) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit starts a new submission and moves to [Loading]. The returned
// exchange must be run exactly once and its outcome passed to Resolve.
//
// A blank secret returns [service.ErrMissingInput] and leaves the state as
// it was; an Idle form gets the validation notice. While Loading, Submit
// returns [ErrSubmissionInFlight] and changes nothing.
func (c *SubmissionController) Submit(input models.ShareInput) (ShareExchange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrControllerClosed
	}
	if _, loading := c.state.(Loading); loading {
		return nil, ErrSubmissionInFlight
	}
	if strings.TrimSpace(input.Secret) == "" {
		if _, idle := c.state.(Idle); idle {
			c.state = Idle{Notice: app.MsgEnterSecret}
		}
		return nil, service.ErrMissingInput
	}

	c.attempt++
	attempt := c.attempt
	c.state = Loading{}

	return func(ctx context.Context) ShareOutcome {
		result, err := c.share.Share(ctx, input)
		return ShareOutcome{attempt: attempt, Result: result, Err: err}
	}, nil
}

// Resolve applies the outcome of the current attempt and reports whether
// the state changed. Outcomes arriving after Close, for an older attempt or
// outside Loading are ignored.
func (c *SubmissionController) Resolve(outcome ShareOutcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || outcome.attempt != c.attempt {
		return false
	}
	if _, loading := c.state.(Loading); !loading {
		return false
	}

	if outcome.Err != nil {
		c.state = Failed{Message: service.UserMessage(outcome.Err), Err: outcome.Err}
		return true
	}

	c.state = Success{Result: outcome.Result}
	return true
}

// Dismiss closes the link or error surface and returns to an empty [Idle].
// It does nothing while Loading.
func (c *SubmissionController) Dismiss() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.(type) {
	case Loading:
		return false
	case Idle:
		if c.state == (Idle{}) {
			return false
		}
	}

	c.state = Idle{}
	return true
}

// Close detaches the controller from its view. A pending outcome is
// discarded when it arrives.
func (c *SubmissionController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Run submits input and waits for the exchange. It is the synchronous form
// used by the CLI.
func (c *SubmissionController) Run(ctx context.Context, input models.ShareInput) (SubmissionState, error) {
	exchange, err := c.Submit(input)
	if err != nil {
		return c.State(), err
	}

	c.Resolve(exchange(ctx))
	return c.State(), nil
}
