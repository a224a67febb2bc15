// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/page"
)

func newNotifications(backend Backend, lang language.Tag) NotificationsModel {
	m := NewNotificationsModel(backend, i18n.NewPrinter(lang))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestNotifications_Loading(t *testing.T) {
	m := newNotifications(&MockBackend{}, language.English)
	assert.Contains(t, m.View(), "NOTIFICATIONS")
	assert.Nil(t, m.Page)
}

func TestNotifications_Unconfigured(t *testing.T) {
	m := newNotifications(&MockBackend{}, language.English)
	m, _ = m.Update(PageMsg{Page: &page.Page{State: page.StateUnconfigured}})

	view := m.View()
	assert.Contains(t, view, "Notifications have not been configured yet")
	assert.Contains(t, view, "[s]")
	assert.NotContains(t, view, "Clear all")
}

func TestNotifications_Waiting(t *testing.T) {
	m := newNotifications(&MockBackend{}, language.German)
	m, _ = m.Update(PageMsg{Page: &page.Page{State: page.StateWaitingForEvents}})

	assert.Contains(t, m.View(), "Im Moment gibt es nichts anzuzeigen")
}

func TestNotifications_PopulatedFromLocalBackend(t *testing.T) {
	log := notification.NewLog()
	log.Append(notification.PacketsThresholdExceeded{Threshold: 100, Incoming: 40, Outgoing: 10, Timestamp: "08:00:00"})
	store := config.NewStore(&config.NotificationsConfig{PacketsThreshold: u32(100)})
	backend := NewLocalBackend(log, store, nil)

	m := newNotifications(backend, language.English)
	msgs := collect(m.refresh())
	require.Len(t, msgs, 1)
	m, _ = m.Update(msgs[0])

	require.NotNil(t, m.Page)
	assert.Equal(t, page.StatePopulated, m.Page.State)

	view := m.View()
	assert.Contains(t, view, "Clear all")
	assert.Contains(t, view, "Packets threshold exceeded")
	assert.Contains(t, view, "50 packets have been exchanged")
	assert.Contains(t, view, "08:00:00")
	assert.NotContains(t, view, "Only the last 30 notifications are displayed")
}

func TestNotifications_Disclaimer(t *testing.T) {
	m := newNotifications(&MockBackend{}, language.English)
	m, _ = m.Update(PageMsg{Page: &page.Page{State: page.StatePopulated, ShowDisclaimer: true}})

	assert.Contains(t, m.View(), "Only the last 30 notifications are displayed")
}

func TestNotifications_MarkReadOnlyWhenActive(t *testing.T) {
	backend := &MockBackend{}
	m := newNotifications(backend, language.English)
	pg := &page.Page{State: page.StatePopulated, Unread: 3}

	_, cmd := m.Update(PageMsg{Page: pg})
	assert.Nil(t, cmd, "inactive view leaves the unread counter alone")

	m.Active = true
	_, cmd = m.Update(PageMsg{Page: pg})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, backend.MarkReadCalls)

	_, cmd = m.Update(PageMsg{Page: &page.Page{State: page.StatePopulated}})
	assert.Nil(t, cmd, "nothing unread")
}

func TestNotifications_ClearAllNeedsRecords(t *testing.T) {
	m := newNotifications(&MockBackend{}, language.English)
	m, _ = m.Update(PageMsg{Page: &page.Page{State: page.StateWaitingForEvents}})

	m, _ = m.Update(keyPress("c"))
	assert.False(t, m.Confirming)
}

func TestNotifications_ConfirmDialog(t *testing.T) {
	m := newNotifications(&MockBackend{}, language.Italian)
	m, _ = m.Update(PageMsg{Page: &page.Page{State: page.StatePopulated}})

	m, _ = m.Update(keyPress("c"))
	require.True(t, m.Confirming)
	require.NotNil(t, m.Confirm)
	assert.Contains(t, m.View(), "Eliminare tutte le notifiche?")

	// data keeps flowing while the dialog is open
	m, _ = m.Update(PageMsg{Page: &page.Page{State: page.StatePopulated, Unread: 1}})
	assert.Equal(t, 1, m.Page.Unread)
	assert.True(t, m.Confirming)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Confirming)
	assert.Nil(t, m.Confirm)
}

func TestNotifications_ClearAll(t *testing.T) {
	backend := &MockBackend{Page: &page.Page{State: page.StateWaitingForEvents}}
	m := newNotifications(backend, language.English)

	m, cmd := m.Update(ClearAllMsg{})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, ClearedMsg{}, msgs[0])
	assert.Equal(t, 1, backend.ClearCalls)

	_, cmd = m.Update(ClearedMsg{})
	msgs = collect(cmd)
	require.Len(t, msgs, 1)
	pm, ok := msgs[0].(PageMsg)
	require.True(t, ok)
	assert.Equal(t, page.StateWaitingForEvents, pm.Page.State)
}

func TestNotifications_BackendFailure(t *testing.T) {
	backend := &MockBackend{Err: errors.New("refused")}
	m := newNotifications(backend, language.English)

	msgs := collect(m.refresh())
	require.Len(t, msgs, 1)
	be, ok := msgs[0].(BackendError)
	require.True(t, ok)
	assert.EqualError(t, be.Err, "refused")

	_, cmd := m.Update(ClearAllMsg{})
	msgs = collect(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, BackendError{}, msgs[0])
}

func TestNotifications_RequestsPrinterLanguage(t *testing.T) {
	backend := &MockBackend{}
	m := newNotifications(backend, language.MustParse("it-CH"))

	collect(m.refresh())
	assert.Equal(t, language.Italian, backend.Lang)
}
