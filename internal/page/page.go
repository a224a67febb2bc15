// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package page decides what the notifications page shows for a given
// configuration and log snapshot.
package page

import (
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/presenter"
)

// State is the top-level shape of the page.
type State int

const (
	// StateUnconfigured: no thresholds and favorite notifications off.
	StateUnconfigured State = iota
	// StateWaitingForEvents: something is configured, nothing has fired.
	StateWaitingForEvents
	// StatePopulated: the log holds at least one event.
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateWaitingForEvents:
		return "waiting_for_events"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unconfigured":
		*s = StateUnconfigured
	case "waiting_for_events":
		*s = StateWaitingForEvents
	case "populated":
		*s = StatePopulated
	default:
		return errors.Errorf(errors.KindValidation, "unknown page state %q", b)
	}
	return nil
}

// Thresholds is the notification configuration relevant to the page.
// A nil threshold means that alert is disabled.
type Thresholds struct {
	PacketsThreshold *uint32
	BytesThreshold   *uint32
	FavoriteNotify   bool
}

// Configured reports whether any notification is enabled.
func (t Thresholds) Configured() bool {
	return t.PacketsThreshold != nil || t.BytesThreshold != nil || t.FavoriteNotify
}

// Classify picks the page state. A non-empty log always wins, so events
// that fired before notifications were switched off stay visible.
func Classify(t Thresholds, s notification.Snapshot) State {
	switch {
	case !s.IsEmpty():
		return StatePopulated
	case !t.Configured():
		return StateUnconfigured
	default:
		return StateWaitingForEvents
	}
}

// Page is everything a renderer needs for one frame.
type Page struct {
	State          State              `json:"state"`
	Records        []presenter.Record `json:"records"`
	ShowDisclaimer bool               `json:"show_disclaimer"`
	Unread         int                `json:"unread"`
}

// Build classifies s and renders its events with p, in arrival order.
func Build(t Thresholds, s notification.Snapshot, p *presenter.Presenter) Page {
	pg := Page{
		State:   Classify(t, s),
		Records: []presenter.Record{},
		Unread:  s.Unread(),
	}
	if pg.State != StatePopulated {
		return pg
	}

	pg.Records = p.PresentAll(s.Events())
	pg.ShowDisclaimer = s.AtOrOverCap()
	return pg
}
