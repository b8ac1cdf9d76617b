// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/keylock/internal/config"
)

// NormalizedValues are the expiry and view limit actually sent to the
// server. Both are always strictly positive.
type NormalizedValues struct {
	ExpireMinutes int
	MaxViews      int
}

// Normalizer turns raw form input into [NormalizedValues].
type Normalizer struct {
	defaultExpireMinutes int
	defaultMaxViews      int
}

// NewNormalizer creates a Normalizer with the given fallbacks. Non-positive
// fallbacks are replaced by the built-in defaults.
func NewNormalizer(defaults config.ClientDefaults) Normalizer {
	n := Normalizer{
		defaultExpireMinutes: defaults.ExpireMinutes,
		defaultMaxViews:      defaults.MaxViews,
	}
	if n.defaultExpireMinutes <= 0 {
		n.defaultExpireMinutes = config.DefaultExpireMinutes
	}
	if n.defaultMaxViews <= 0 {
		n.defaultMaxViews = config.DefaultMaxViews
	}
	return n
}

// Normalize parses expiryRaw and viewsRaw as base-10 integers. A value that
// does not parse or is not positive is replaced by its default.
func (n Normalizer) Normalize(expiryRaw, viewsRaw string) NormalizedValues {
	return NormalizedValues{
		ExpireMinutes: positiveOr(expiryRaw, n.defaultExpireMinutes),
		MaxViews:      positiveOr(viewsRaw, n.defaultMaxViews),
	}
}

// Normalize applies the built-in defaults of 10 minutes and 3 views.
func Normalize(expiryRaw, viewsRaw string) NormalizedValues {
	return NewNormalizer(config.ClientDefaults{}).Normalize(expiryRaw, viewsRaw)
}

func positiveOr(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
