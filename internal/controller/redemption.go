package controller

import (
	"context"
	"sync"

	"github.com/MKhiriev/keylock/internal/app"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
)

// RedeemOutcome is the result of the single fetch of a redemption.
type RedeemOutcome struct {
	Secret models.RedeemedSecret
	Err    error
}

// RedeemExchange performs the network part of a redemption.
type RedeemExchange func(ctx context.Context) RedeemOutcome

// RedemptionController drives the view of one reference. It fetches at most
// once in its lifetime.
type RedemptionController struct {
	redeem    service.ClientRedeemService
	reference string

	mu      sync.Mutex
	state   RedemptionState
	started bool
	closed  bool
}

func NewRedemptionController(redeem service.ClientRedeemService, reference string) *RedemptionController {
	return &RedemptionController{
		redeem:    redeem,
		reference: reference,
		state:     RedeemLoading{Reference: reference},
	}
}

// State returns the current state.
func (c *RedemptionController) State() RedemptionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start returns the fetch exchange on the first call and nil afterwards.
// An empty reference goes straight to [NotFound] without any fetch.
func (c *RedemptionController) Start() RedeemExchange {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.closed {
		return nil
	}
	c.started = true

	if c.reference == "" {
		c.state = NotFound{Message: app.MsgSecretNotFound}
		return nil
	}

	reference := c.reference
	return func(ctx context.Context) RedeemOutcome {
		secret, err := c.redeem.Redeem(ctx, reference)
		return RedeemOutcome{Secret: secret, Err: err}
	}
}

// Resolve applies the fetch outcome and reports whether the state changed.
// Found and NotFound are terminal; an outcome after Close is dropped.
func (c *RedemptionController) Resolve(outcome RedeemOutcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	if _, loading := c.state.(RedeemLoading); !loading {
		return false
	}

	if outcome.Err != nil {
		c.state = NotFound{Message: app.MsgSecretNotFound}
		return true
	}

	c.state = Found{Secret: outcome.Secret}
	return true
}

// Close detaches the controller from its view and forgets a revealed
// secret.
func (c *RedemptionController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if _, found := c.state.(Found); found {
		c.state = Found{}
	}
}

// Run starts the redemption and waits for the fetch. It is the synchronous
// form used by the CLI. A second Run returns the current state untouched.
func (c *RedemptionController) Run(ctx context.Context) RedemptionState {
	if exchange := c.Start(); exchange != nil {
		c.Resolve(exchange(ctx))
	}
	return c.State()
}
