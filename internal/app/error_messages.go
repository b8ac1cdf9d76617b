// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// keylock services, controllers and user interfaces.
//
// All Msg* constants are human-readable message strings shown to the user
// in the TUI or printed by the CLI. Keeping them in one place ensures
// consistent wording across both surfaces.
package app

const (
	// MsgEnterSecret is shown when a share is submitted with a blank or
	// whitespace-only secret. No request is sent in that case.
	MsgEnterSecret = "Please enter a secret message"

	// MsgShareFailed prefixes every failure of the create-secret exchange.
	// The server status and body, when available, follow after a colon.
	MsgShareFailed = "Failed to create shareable link"

	// MsgSecretNotFound is the single message shown for every failed
	// redemption, whatever the underlying cause.
	MsgSecretNotFound = "Secret not found or expired"

	// MsgServerUnavailable replaces low-level transport errors (connection
	// refused, DNS failure, timeout) in user-facing text.
	MsgServerUnavailable = "server is unavailable, check your connection and try again"

	// MsgMalformedResponse is shown when the service accepted the secret but
	// returned no usable link.
	MsgMalformedResponse = "server returned no shareable link"

	// MsgCopied acknowledges a successful clipboard copy.
	MsgCopied = "Copied!"

	// MsgCopyFailed is shown by the CLI when the clipboard is unavailable.
	MsgCopyFailed = "could not copy to clipboard"
)
