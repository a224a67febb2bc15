// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/metrics"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/page"
	"grimm.is/flywatch/internal/presenter"
)

// Backend defines the interface for data retrieval and actions.
type Backend interface {
	// GetPage classifies and renders the notifications page in lang.
	GetPage(lang language.Tag) (*page.Page, error)
	ClearAll() error
	MarkRead() error
	GetSettings() (*config.NotificationsConfig, error)
	ApplySettings(n *config.NotificationsConfig) error
}

// LocalBackend serves the TUI from the in-process log and settings store.
type LocalBackend struct {
	log     *notification.Log
	store   *config.Store
	metrics *metrics.Metrics
}

// NewLocalBackend wires the TUI to log and store. m may be nil.
func NewLocalBackend(log *notification.Log, store *config.Store, m *metrics.Metrics) *LocalBackend {
	return &LocalBackend{log: log, store: store, metrics: m}
}

func (b *LocalBackend) GetPage(lang language.Tag) (*page.Page, error) {
	pg := page.Build(b.store.Thresholds(), b.log.Snapshot(), presenter.New(i18n.NewPrinter(lang)))
	if b.metrics != nil {
		b.metrics.PageRendered(pg.State)
	}
	return &pg, nil
}

func (b *LocalBackend) ClearAll() error {
	b.log.Execute(notification.ClearAllCommand{})
	return nil
}

func (b *LocalBackend) MarkRead() error {
	b.log.MarkRead()
	return nil
}

func (b *LocalBackend) GetSettings() (*config.NotificationsConfig, error) {
	return b.store.Notifications(), nil
}

func (b *LocalBackend) ApplySettings(n *config.NotificationsConfig) error {
	return b.store.SetNotifications(n)
}
