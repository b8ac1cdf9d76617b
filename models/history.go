// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ShareHistoryEntry is a locally stored record of a link created by this
// client. It keeps only the link's lifetime: the secret text, the link and
// its reference are never written to disk, since anyone holding the link
// could redeem it.
//
// ID is the local row identifier (UUIDv7).
type ShareHistoryEntry struct {
	ID            string
	ExpireMinutes int
	MaxViews      int
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// Expired reports whether the link has outlived its expiry at moment now.
func (e ShareHistoryEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}
