// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/api"
	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/logging"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/tui"
)

func contains(s string) func([]byte) bool {
	return func(b []byte) bool { return bytes.Contains(b, []byte(s)) }
}

func waitFor(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), contains(s),
		teatest.WithDuration(5*time.Second),
		teatest.WithCheckInterval(50*time.Millisecond),
	)
}

func TestNotificationsPage_Lifecycle(t *testing.T) {
	threshold := uint32(100)
	log := notification.NewLog()
	store := config.NewStore(&config.NotificationsConfig{PacketsThreshold: &threshold})
	backend := tui.NewLocalBackend(log, store, nil)

	tm := teatest.NewTestModel(t, tui.NewModel(backend, language.English), teatest.WithInitialTermSize(100, 30))

	waitFor(t, tm, "Nothing to show at the moment")

	log.Append(notification.PacketsThresholdExceeded{Threshold: 100, Incoming: 120, Outgoing: 30, Timestamp: "10:15:00"})
	waitFor(t, tm, "150 packets have been exchanged")

	// The page is on screen, so the unread counter is reset.
	require.Eventually(t, func() bool { return log.Unread() == 0 }, 5*time.Second, 50*time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	waitFor(t, tm, "Delete all notifications?")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.Eventually(t, log.IsEmpty, 5*time.Second, 50*time.Millisecond)
	waitFor(t, tm, "Nothing to show at the moment")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}

func TestNotificationsPage_Remote(t *testing.T) {
	log := notification.NewLog()
	srv, err := api.NewServer(api.ServerOptions{
		Log:    log,
		Store:  config.NewStore(nil),
		Logger: logging.New(logging.Config{Level: logging.LevelError, Output: io.Discard}),
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	backend := tui.NewRemoteBackend(ts.URL, false)
	tm := teatest.NewTestModel(t, tui.NewModel(backend, language.Italian), teatest.WithInitialTermSize(100, 30))

	waitFor(t, tm, "Le notifiche non sono ancora state configurate")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	waitFor(t, tm, "non impostata")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	final := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))

	m, ok := final.(tui.Model)
	require.True(t, ok)
	assert.Equal(t, tui.ViewSettings, m.ActiveView)
	assert.Empty(t, m.ConnectionError)
}
