// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertHistoryEntryQuery(t *testing.T) {
	created := time.UnixMilli(1_000).UTC()
	entry := testEntry("abc", created, 10*time.Minute)

	query, args, err := buildInsertHistoryEntryQuery(entry)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into share_history")
	for _, c := range shareHistoryColumns {
		assert.Contains(t, q, c)
	}
	// placeholder format should be ? (SQLite)
	assert.Equal(t, len(shareHistoryColumns), strings.Count(query, "?"))
	assert.NotContains(t, query, "$1")

	require.Len(t, args, len(shareHistoryColumns))
	assert.Equal(t, "abc", args[0])
	assert.Equal(t, []any{"abc", 10, 3, int64(1_000), int64(1_000 + 10*60*1000)}, args)
}

func Test_buildSelectHistoryQuery(t *testing.T) {
	query, args, err := buildSelectHistoryQuery()
	require.NoError(t, err)
	assert.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from share_history")
	assert.Contains(t, q, "order by created_at desc")
}

func Test_buildDeleteExpiredHistoryQuery(t *testing.T) {
	now := time.UnixMilli(42_000)

	query, args, err := buildDeleteExpiredHistoryQuery(now)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM share_history WHERE expires_at <= ?", query)
	assert.Equal(t, []any{int64(42_000)}, args)
}
