// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/keylock/models"
)

const shareHistoryTable = "share_history"

// timestamps are stored as unix milliseconds
var shareHistoryColumns = []string{
	"id",
	"expire_minutes",
	"max_views",
	"created_at",
	"expires_at",
}

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertHistoryEntryQuery(entry models.ShareHistoryEntry) (string, []any, error) {
	return sqliteBuilder.
		Insert(shareHistoryTable).
		Columns(shareHistoryColumns...).
		Values(
			entry.ID,
			entry.ExpireMinutes,
			entry.MaxViews,
			entry.CreatedAt.UnixMilli(),
			entry.ExpiresAt.UnixMilli(),
		).
		ToSql()
}

func buildSelectHistoryQuery() (string, []any, error) {
	return sqliteBuilder.
		Select(shareHistoryColumns...).
		From(shareHistoryTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildDeleteExpiredHistoryQuery(now time.Time) (string, []any, error) {
	return sqliteBuilder.
		Delete(shareHistoryTable).
		Where(sq.LtOrEq{"expires_at": now.UnixMilli()}).
		ToSql()
}
