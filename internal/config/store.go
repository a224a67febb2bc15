// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"sync"

	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/page"
)

// Store holds the live notification settings. It starts from the loaded
// file and is changed in memory by the settings form; nothing is written
// back to disk.
type Store struct {
	mu            sync.RWMutex
	notifications *NotificationsConfig
}

func NewStore(n *NotificationsConfig) *Store {
	if n == nil {
		n = &NotificationsConfig{}
	}
	return &Store{notifications: n.Clone()}
}

// Notifications returns a copy of the current settings.
func (s *Store) Notifications() *NotificationsConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications.Clone()
}

// Thresholds is what the page classifier needs for the next render.
func (s *Store) Thresholds() page.Thresholds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications.Thresholds()
}

// SetNotifications validates and installs n.
func (s *Store) SetNotifications(n *NotificationsConfig) error {
	if n == nil {
		return errors.New(errors.KindValidation, "notification settings required")
	}
	if errs := n.validate(); errs.HasErrors() {
		return errors.Wrap(errs, errors.KindValidation, "invalid notification settings")
	}
	s.mu.Lock()
	s.notifications = n.Clone()
	s.mu.Unlock()
	return nil
}
