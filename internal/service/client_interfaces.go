package service

import (
	"context"
	"time"

	"github.com/MKhiriev/keylock/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientShareService defines the client-side contract for creating a
// shareable link from raw form input.
type ClientShareService interface {
	// Share trims the secret, normalizes expiry and views and performs
	// exactly one create exchange. A blank secret yields [ErrMissingInput]
	// without any network call. Every other failure wraps [ErrShareFailed].
	// A successful link is recorded in the local history; a history failure
	// is logged and never fails the share.
	Share(ctx context.Context, input models.ShareInput) (models.ShareResult, error)
}

// ClientRedeemService defines the client-side contract for reading a secret
// by its reference.
type ClientRedeemService interface {
	// Redeem performs exactly one fetch for reference. An empty reference and
	// every failure are reported as [ErrNotFoundOrExpired].
	Redeem(ctx context.Context, reference string) (models.RedeemedSecret, error)
}

// ClientHistoryService manages the local record of created links.
type ClientHistoryService interface {
	// Record stores result as a new history entry.
	Record(ctx context.Context, result models.ShareResult) error

	// List returns all entries, newest first.
	List(ctx context.Context) ([]models.ShareHistoryEntry, error)

	// Prune removes entries that expired at or before now and returns how
	// many were removed.
	Prune(ctx context.Context, now time.Time) (int64, error)
}
