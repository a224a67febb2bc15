// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/page"
)

// MockBackend implements Backend for testing purposes
type MockBackend struct {
	mu sync.Mutex

	Page     *page.Page
	Settings *config.NotificationsConfig
	Err      error
	ApplyErr error

	Lang          language.Tag
	ClearCalls    int
	MarkReadCalls int
	Applied       *config.NotificationsConfig
}

func (m *MockBackend) GetPage(lang language.Tag) (*page.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lang = lang
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Page == nil {
		return &page.Page{State: page.StateUnconfigured, Records: nil}, nil
	}
	return m.Page, nil
}

func (m *MockBackend) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	return m.Err
}

func (m *MockBackend) MarkRead() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MarkReadCalls++
	return m.Err
}

func (m *MockBackend) GetSettings() (*config.NotificationsConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		return &config.NotificationsConfig{}, nil
	}
	return m.Settings.Clone(), nil
}

func (m *MockBackend) ApplySettings(n *config.NotificationsConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ApplyErr != nil {
		return m.ApplyErr
	}
	m.Applied = n
	m.Settings = n
	return nil
}

func u32(v uint32) *uint32 { return &v }

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches. Only use it on commands that do
// not wait on timers.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}
