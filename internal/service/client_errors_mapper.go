// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/keylock/internal/adapter"
	"github.com/MKhiriev/keylock/internal/app"
)

// UserMessage translates a service error into the short text shown to the
// user. Share failures carry the server status and body when there was
// one; redemption failures always read [app.MsgSecretNotFound].
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrMissingInput):
		return app.MsgEnterSecret
	case errors.Is(err, ErrNotFoundOrExpired):
		return app.MsgSecretNotFound
	case errors.Is(err, ErrShareFailed):
		return app.MsgShareFailed + ": " + shareFailureDetail(err)
	}

	return humanizeServerUnavailableError(err)
}

func shareFailureDetail(err error) string {
	var statusErr *adapter.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, adapter.ErrMalformedResponse):
		return app.MsgMalformedResponse
	case errors.Is(err, adapter.ErrTransport):
		return app.MsgServerUnavailable
	}

	detail := strings.TrimPrefix(err.Error(), ErrShareFailed.Error()+": ")
	return humanizeServerUnavailableError(errors.New(detail))
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}
