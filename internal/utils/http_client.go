// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client layers: the
// outbound HTTP client and identifier generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request identifier so that a failed exchange
// can be matched against server logs.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with a fresh resty.Client. Every
// request leaving the client gets an X-Request-ID header taken from ids,
// unless the caller already set one.
//
// Automatic retries are left disabled: a create request is not idempotent.
func NewHTTPClient(ids IDGenerator) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, ids.Generate())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
