// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface of keylock on
// top of Bubble Tea. Pages are routed by [RootModel]; the share and secret
// pages delegate their state to the controllers in internal/controller.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keylock/internal/clipboard"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
)

// ErrNoServices is returned by [New] when the services are missing.
var ErrNoServices = errors.New("tui: client services are nil")

type TUI struct {
	services     *service.ClientServices
	buildInfo    models.AppBuildInfo
	newClipboard clipboardFactory
	logger       *logger.Logger
	options      []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		newClipboard: func() *clipboard.Helper {
			return clipboard.NewSystemHelper(log)
		},
		logger:  log,
		options: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

func (t *TUI) root(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:    NewMenuModel(),
		pageShare:   NewShareModel(ctx, t.services.ShareService, t.newClipboard, t.logger),
		pageRedeem:  NewRedeemModel(),
		pageSecret:  NewSecretModel(ctx, t.services.RedeemService, t.newClipboard),
		pageHistory: NewHistoryModel(ctx, t.services.HistoryService, t.logger),
	}

	return NewRootModel(pages, pageMenu, t.buildInfo)
}

// Run shows the menu and blocks until the user quits or ctx is cancelled.
// Pending exchanges are detached from their pages on exit.
func (t *TUI) Run(ctx context.Context) error {
	root := t.root(ctx)
	defer root.closePages()

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	if _, err := tea.NewProgram(root, options...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
