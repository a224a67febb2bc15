// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/hashstructure/v2"

	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/logging"
)

// ReloadDebounce absorbs editors that write a file in several steps.
const ReloadDebounce = 250 * time.Millisecond

// Watcher reloads the notifications block of the config file into a Store
// whenever the file changes on disk. Other blocks need a restart.
//
// Edits made through the settings form survive until the file's
// notifications block itself changes.
type Watcher struct {
	path   string
	store  *Store
	logger *logging.Logger

	mu       sync.Mutex
	lastHash uint64
	reloads  chan struct{} // signalled after each applied reload, for tests

	startOnce sync.Once
	started   chan struct{} // closed once the directory is watched
}

func NewWatcher(path string, store *Store, logger *logging.Logger) *Watcher {
	if logger == nil {
		logger = logging.WithComponent("config")
	}
	w := &Watcher{
		path:    path,
		store:   store,
		logger:  logger,
		reloads: make(chan struct{}, 1),
		started: make(chan struct{}),
	}
	w.lastHash = hashNotifications(store.Notifications())
	return w
}

func hashNotifications(n *NotificationsConfig) uint64 {
	if n == nil {
		n = &NotificationsConfig{}
	}
	h, err := hashstructure.Hash(n, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

// Run watches until ctx is done. The directory is watched rather than the
// file so atomic renames are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.KindUnavailable, "config watcher")
	}
	defer fw.Close()

	dir, file := filepath.Split(w.path)
	if dir == "" {
		dir = "."
	}
	if err := fw.Add(dir); err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindUnavailable, "watch config directory"), "dir", dir)
	}
	w.logger.Debug("config watcher started", "path", w.path)
	w.startOnce.Do(func() { close(w.started) })

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()
	debounce := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(ReloadDebounce, w.Reload)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn("config watch overflow, forcing reload", "path", w.path)
				debounce()
				continue
			}
			w.logger.Warn("config watch error", "error", err)
		}
	}
}

// Started is closed once Run watches the config directory. Writes made
// before that are not seen.
func (w *Watcher) Started() <-chan struct{} { return w.started }

// Reload reads the file once and installs its notification settings when
// they differ from the last applied version. Invalid files are logged and
// ignored.
func (w *Watcher) Reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}

	n := cfg.Notifications
	if n == nil {
		n = &NotificationsConfig{}
	}
	h := hashNotifications(n)

	w.mu.Lock()
	defer w.mu.Unlock()
	if h != 0 && h == w.lastHash {
		w.logger.Debug("notification settings unchanged", "path", w.path)
		return
	}
	if err := w.store.SetNotifications(n); err != nil {
		w.logger.Warn("config reload rejected", "path", w.path, "error", err)
		return
	}
	w.lastHash = h
	w.logger.Info("notification settings reloaded", "path", w.path)

	select {
	case w.reloads <- struct{}{}:
	default:
	}
}
