// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ShareInput is the raw content of the creation form exactly as the user
// typed it. Expiry and views are kept as strings; they are normalized by the
// service layer before anything is sent to the server.
type ShareInput struct {
	Secret    string
	ExpiryRaw string
	ViewsRaw  string
}

// ShareRequest is the body of POST /api/share.
//
// Field order matches the wire contract:
//
//	{"secret": "...", "expire_minutes": 10, "max_views": 3}
type ShareRequest struct {
	Secret        string `json:"secret"`
	ExpireMinutes int    `json:"expire_minutes"`
	MaxViews      int    `json:"max_views"`
}

// ShareResponse is the decoded body of a successful POST /api/share.
// Only URL is guaranteed; the remaining fields are filled when the server
// includes them.
type ShareResponse struct {
	ID        string
	URL       string
	ExpiresAt *time.Time
	MaxViews  int
}

// ShareResult is what the client keeps after a secret was created: the link
// to hand out plus the parameters it was created with.
type ShareResult struct {
	ID            string
	URL           string
	Reference     string
	ExpireMinutes int
	MaxViews      int
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// RedeemedSecret is the plaintext recovered from GET /api/secret/{reference}.
// It lives only in memory of the view that fetched it.
type RedeemedSecret struct {
	Reference string
	Content   string
	// RemainingViews is set when the server reports how many views are left.
	RemainingViews *int
}
