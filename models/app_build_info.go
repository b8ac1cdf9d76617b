// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo carries build metadata injected with -ldflags, shown by the
// version command and on the TUI menu.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

// String renders the one-line form used by `keylock version`.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("keylock %s (commit %s, built %s)", a.Version(), a.Commit(), a.Date())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
