// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the keylock secret-sharing service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are produced by mapHTTPError and the
// response decoders so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404/410, [ErrTransport] when no
// response was obtained at all).
package adapter

import (
	"context"

	"github.com/MKhiriev/keylock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the keylock
// service. Implementations are responsible for serialisation and for mapping
// transport-level failures to the sentinel values defined in this package.
// Every call performs exactly one exchange; nothing is retried.
type ServerAdapter interface {
	// CreateSecret sends req to POST /api/share and returns the decoded
	// response. A 2xx response without a non-empty "url" field is reported
	// as [ErrMalformedResponse].
	CreateSecret(ctx context.Context, req models.ShareRequest) (models.ShareResponse, error)

	// FetchSecret requests GET /api/secret/{reference} and extracts the
	// secret content from the body. reference is sent as given, only
	// path-escaped.
	FetchSecret(ctx context.Context, reference string) (models.RedeemedSecret, error)
}
