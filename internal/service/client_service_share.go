package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/keylock/internal/adapter"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/validators"
	"github.com/MKhiriev/keylock/models"
)

type clientShareService struct {
	adapter    adapter.ServerAdapter
	normalizer Normalizer
	history    ClientHistoryService
	validator  validators.Validator
	now        func() time.Time

	logger *logger.Logger
}

// NewClientShareService creates a ClientShareService. history may be nil, in
// which case nothing is recorded.
func NewClientShareService(serverAdapter adapter.ServerAdapter, normalizer Normalizer, history ClientHistoryService, logger *logger.Logger) ClientShareService {
	return &clientShareService{
		adapter:    serverAdapter,
		normalizer: normalizer,
		history:    history,
		validator:  validators.NewShareValidator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *clientShareService) Share(ctx context.Context, input models.ShareInput) (models.ShareResult, error) {
	log := s.logger.With().Str("func", "clientShareService.Share").Logger()

	secret := strings.TrimSpace(input.Secret)
	if secret == "" {
		return models.ShareResult{}, ErrMissingInput
	}

	values := s.normalizer.Normalize(input.ExpiryRaw, input.ViewsRaw)
	createdAt := s.now()

	req := models.ShareRequest{
		Secret:        secret,
		ExpireMinutes: values.ExpireMinutes,
		MaxViews:      values.MaxViews,
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ShareResult{}, fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	resp, err := s.adapter.CreateSecret(ctx, req)
	if err != nil {
		log.Err(err).Int("secret_len", len(secret)).Msg("secret was not created")
		return models.ShareResult{}, fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	result := models.ShareResult{
		ID:            resp.ID,
		URL:           resp.URL,
		Reference:     ParseReference(resp.URL),
		ExpireMinutes: values.ExpireMinutes,
		MaxViews:      values.MaxViews,
		CreatedAt:     createdAt,
		ExpiresAt:     expiresAfter(createdAt, values.ExpireMinutes),
	}
	if resp.ExpiresAt != nil {
		result.ExpiresAt = resp.ExpiresAt.UTC()
	}
	if resp.MaxViews > 0 {
		result.MaxViews = resp.MaxViews
	}

	if s.history != nil {
		if err = s.history.Record(ctx, result); err != nil {
			log.Warn().Err(err).Msg("link created but not added to history")
		}
	}

	log.Debug().Str("reference", result.Reference).Msg("shareable link reference")
	log.Info().
		Int("expire_minutes", result.ExpireMinutes).
		Int("max_views", result.MaxViews).
		Msg("shareable link created")
	return result, nil
}

// maxExpireMinutes is the longest expiry a time.Duration can hold.
const maxExpireMinutes = math.MaxInt64 / int64(time.Minute)

// expiresAfter returns from plus minutes. Expiries too long for a
// time.Duration are capped at maxExpireMinutes.
func expiresAfter(from time.Time, minutes int) time.Time {
	m := min(int64(minutes), maxExpireMinutes)
	return from.Add(time.Duration(m) * time.Minute)
}
