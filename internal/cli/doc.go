// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the keylock command line: the root command starts the
// TUI, and the share, redeem, history and version subcommands run the same
// workflows headless so they can be scripted.
//
// Results meant for scripts (links, secrets) are written to stdout; status
// lines, spinners and hints go to stderr.
package cli
