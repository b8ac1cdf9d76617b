package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySecret          = errors.New("secret is required")
	ErrInvalidExpireMinutes = errors.New("expire minutes must be positive")
	ErrInvalidMaxViews      = errors.New("max views must be positive")
	ErrInvalidEntryID       = errors.New("invalid history entry id")
	ErrInvalidCreatedAt     = errors.New("created at is required")
	ErrInvalidExpiresAt     = errors.New("expires at must be after created at")
)
