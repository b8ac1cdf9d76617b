package service

import "errors"

var (
	// ErrMissingInput is returned when a share is attempted with a blank or
	// whitespace-only secret. No request is sent.
	ErrMissingInput = errors.New("missing input: secret is blank")

	// ErrShareFailed wraps every failure of the create-secret exchange.
	ErrShareFailed = errors.New("share failed")

	// ErrNotFoundOrExpired wraps every failure of a redemption, whether the
	// server rejected the reference or no response was obtained.
	ErrNotFoundOrExpired = errors.New("secret not found or expired")

	// ErrHistoryNotRecorded is returned when a created link could not be
	// written to the local history.
	ErrHistoryNotRecorded = errors.New("share history was not recorded")
)
