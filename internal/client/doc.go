// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local link history, the server adapter, the client services,
// the history pruner and the terminal UI into a single process lifecycle.
// The headless CLI commands reuse the same wiring through [App.Services].
package client
