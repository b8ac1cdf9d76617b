package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/keylock/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldSecret        = "secret"
	FieldExpireMinutes = "expire_minutes"
	FieldMaxViews      = "max_views"
	FieldID            = "id"
	FieldCreatedAt     = "created_at"
	FieldExpiresAt     = "expires_at"
)

// ShareValidator validates [models.ShareRequest] before it is sent and
// [models.ShareHistoryEntry] before it is stored. Both value and pointer
// forms are accepted.
type ShareValidator struct{}

func NewShareValidator() Validator {
	return &ShareValidator{}
}

func (v *ShareValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ShareRequest:
		return v.validateShareRequest(ctx, value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(ctx, *value, fields...)

	case models.ShareHistoryEntry:
		return v.validateHistoryEntry(ctx, value, fields...)
	case *models.ShareHistoryEntry:
		return v.validateHistoryEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ShareValidator) validateShareRequest(_ context.Context, req models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSecret, FieldExpireMinutes, FieldMaxViews}
	}

	for _, f := range fields {
		switch f {
		case FieldSecret:
			if strings.TrimSpace(req.Secret) == "" {
				return ErrEmptySecret
			}
		case FieldExpireMinutes:
			if req.ExpireMinutes <= 0 {
				return ErrInvalidExpireMinutes
			}
		case FieldMaxViews:
			if req.MaxViews <= 0 {
				return ErrInvalidMaxViews
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ShareValidator) validateHistoryEntry(_ context.Context, entry models.ShareHistoryEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldExpireMinutes, FieldMaxViews, FieldCreatedAt, FieldExpiresAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if entry.ID == "" {
				return ErrInvalidEntryID
			}
		case FieldExpireMinutes:
			if entry.ExpireMinutes <= 0 {
				return ErrInvalidExpireMinutes
			}
		case FieldMaxViews:
			if entry.MaxViews <= 0 {
				return ErrInvalidMaxViews
			}
		case FieldCreatedAt:
			if entry.CreatedAt.IsZero() {
				return ErrInvalidCreatedAt
			}
		case FieldExpiresAt:
			if entry.ExpiresAt.IsZero() || !entry.ExpiresAt.After(entry.CreatedAt) {
				return ErrInvalidExpiresAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
