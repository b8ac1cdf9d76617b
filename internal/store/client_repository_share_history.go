package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/models"
)

type shareHistoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewShareHistoryRepository(db *DB, logger *logger.Logger) ShareHistoryRepository {
	return &shareHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *shareHistoryRepository) SaveEntry(ctx context.Context, entry models.ShareHistoryEntry) error {
	log := r.logger.With().Str("func", "shareHistoryRepository.SaveEntry").Str("id", entry.ID).Logger()

	query, args, err := buildInsertHistoryEntryQuery(entry)
	if err != nil {
		log.Err(err).Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to insert share history entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrHistoryEntryNotSaved
	}

	return nil
}

func (r *shareHistoryRepository) ListEntries(ctx context.Context) ([]models.ShareHistoryEntry, error) {
	log := r.logger.With().Str("func", "shareHistoryRepository.ListEntries").Logger()

	query, args, err := buildSelectHistoryQuery()
	if err != nil {
		log.Err(err).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to query share history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ShareHistoryEntry, 0)
	for rows.Next() {
		var (
			entry                models.ShareHistoryEntry
			createdAt, expiresAt int64
		)
		if err = rows.Scan(
			&entry.ID,
			&entry.ExpireMinutes,
			&entry.MaxViews,
			&createdAt,
			&expiresAt,
		); err != nil {
			log.Err(err).Msg("failed to scan share history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entry.CreatedAt = time.UnixMilli(createdAt).UTC()
		entry.ExpiresAt = time.UnixMilli(expiresAt).UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating share history rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *shareHistoryRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := r.logger.With().Str("func", "shareHistoryRepository.DeleteExpired").Logger()

	query, args, err := buildDeleteExpiredHistoryQuery(now)
	if err != nil {
		log.Err(err).Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to delete expired share history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return removed, nil
}
