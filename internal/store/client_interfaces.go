package store

import (
	"context"
	"time"

	"github.com/MKhiriev/keylock/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ShareHistoryRepository is the local record of links created by this client.
type ShareHistoryRepository interface {
	SaveEntry(ctx context.Context, entry models.ShareHistoryEntry) error
	// ListEntries returns all entries, newest first.
	ListEntries(ctx context.Context) ([]models.ShareHistoryEntry, error)
	// DeleteExpired removes entries whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
