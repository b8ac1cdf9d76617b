package controller

import "errors"

var (
	// ErrSubmissionInFlight is returned by Submit while a previous
	// submission is still loading. The new submission is ignored.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrControllerClosed is returned by Submit after Close.
	ErrControllerClosed = errors.New("controller is closed")
)
