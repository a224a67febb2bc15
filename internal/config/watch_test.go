// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/flywatch/internal/logging"
)

func quietLogger() *logging.Logger {
	return logging.New(logging.Config{Level: logging.LevelError, Output: io.Discard})
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func drained(w *Watcher) bool {
	select {
	case <-w.reloads:
		return true
	default:
		return false
	}
}

func TestWatcher_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flywatch.hcl")
	writeConfig(t, path, `notifications { packets_threshold = 10 }`)

	store := NewStore(nil)
	w := NewWatcher(path, store, quietLogger())

	w.Reload()
	require.True(t, drained(w))
	got := store.Notifications()
	require.NotNil(t, got.PacketsThreshold)
	assert.Equal(t, uint32(10), *got.PacketsThreshold)

	// same block: in-memory edits stay
	require.NoError(t, store.SetNotifications(&NotificationsConfig{NotifyOnFavorite: true}))
	w.Reload()
	assert.False(t, drained(w))
	assert.True(t, store.Notifications().NotifyOnFavorite)

	writeConfig(t, path, `notifications { bytes_threshold = 500 }`)
	w.Reload()
	require.True(t, drained(w))
	got = store.Notifications()
	assert.Nil(t, got.PacketsThreshold)
	require.NotNil(t, got.BytesThreshold)
	assert.Equal(t, uint32(500), *got.BytesThreshold)
	assert.False(t, got.NotifyOnFavorite)
}

func TestWatcher_ReloadKeepsSettingsOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flywatch.hcl")
	store := NewStore(&NotificationsConfig{PacketsThreshold: ptr(7)})
	w := NewWatcher(path, store, quietLogger())

	writeConfig(t, path, `notifications { packets_threshold = 0 }`)
	w.Reload()
	assert.False(t, drained(w))

	writeConfig(t, path, `notifications {`)
	w.Reload()
	assert.False(t, drained(w))

	require.NoError(t, os.Remove(path))
	w.Reload()
	assert.False(t, drained(w))

	assert.Equal(t, uint32(7), *store.Notifications().PacketsThreshold)
}

func TestWatcher_RunPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flywatch.hcl")
	writeConfig(t, path, `language = "en"`)

	store := NewStore(nil)
	w := NewWatcher(path, store, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	select {
	case <-w.Started():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not start")
	}

	// A single write; the debounce timer must run out before the reload.
	writeConfig(t, path, `notifications { notify_on_favorite = true }`)
	select {
	case <-w.reloads:
		assert.True(t, store.Notifications().NotifyOnFavorite)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not picked up")
	}
}

func ptr(v uint32) *uint32 { return &v }
