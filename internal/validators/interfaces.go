// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values before they leave the keylock client:
// share requests before they are sent to the service and history entries
// before they are written to the local database.
//
// A [Validator] accepts the value (or a pointer to it) and an optional list
// of field names. With no names every rule runs; otherwise only the rules for
// the named fields do, and an unknown name is an error.
package validators

import "context"

// Validator checks a value and reports the first rule it breaks.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
