package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/store"
	"github.com/MKhiriev/keylock/internal/utils"
	"github.com/MKhiriev/keylock/internal/validators"
	"github.com/MKhiriev/keylock/models"
)

type clientHistoryService struct {
	repo      store.ShareHistoryRepository
	ids       utils.IDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewClientHistoryService(repo store.ShareHistoryRepository, logger *logger.Logger) ClientHistoryService {
	return &clientHistoryService{
		repo:      repo,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewShareValidator(),
		logger:    logger,
	}
}

func (h *clientHistoryService) Record(ctx context.Context, result models.ShareResult) error {
	entry := models.ShareHistoryEntry{
		ID:            h.ids.Generate(),
		ExpireMinutes: result.ExpireMinutes,
		MaxViews:      result.MaxViews,
		CreatedAt:     result.CreatedAt,
		ExpiresAt:     result.ExpiresAt,
	}

	if err := h.validator.Validate(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryNotRecorded, err)
	}

	if err := h.repo.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryNotRecorded, err)
	}
	return nil
}

func (h *clientHistoryService) List(ctx context.Context) ([]models.ShareHistoryEntry, error) {
	entries, err := h.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list share history: %w", err)
	}
	return entries, nil
}

func (h *clientHistoryService) Prune(ctx context.Context, now time.Time) (int64, error) {
	removed, err := h.repo.DeleteExpired(ctx, now)
	if err != nil {
		h.logger.Err(err).Str("func", "clientHistoryService.Prune").Msg("failed to prune share history")
		return 0, fmt.Errorf("prune share history: %w", err)
	}

	if removed > 0 {
		h.logger.Debug().Str("func", "clientHistoryService.Prune").Int64("removed", removed).Msg("expired links pruned")
	}
	return removed, nil
}
