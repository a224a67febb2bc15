// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/presenter"
)

func u32(v uint32) *uint32 { return &v }

func snapshotOf(events ...notification.Event) notification.Snapshot {
	l := notification.NewLog()
	for _, ev := range events {
		l.Append(ev)
	}
	return l.Snapshot()
}

func TestClassify(t *testing.T) {
	empty := snapshotOf()
	one := snapshotOf(notification.FavoriteTransmitted{})

	tests := []struct {
		name string
		t    Thresholds
		s    notification.Snapshot
		want State
	}{
		{"nothing configured, empty log", Thresholds{}, empty, StateUnconfigured},
		{"packets threshold only", Thresholds{PacketsThreshold: u32(1000)}, empty, StateWaitingForEvents},
		{"bytes threshold only", Thresholds{BytesThreshold: u32(800000)}, empty, StateWaitingForEvents},
		{"favorites only", Thresholds{FavoriteNotify: true}, empty, StateWaitingForEvents},
		{"zero threshold still counts as set", Thresholds{PacketsThreshold: u32(0)}, empty, StateWaitingForEvents},
		{"log wins over missing config", Thresholds{}, one, StatePopulated},
		{"log with config", Thresholds{FavoriteNotify: true}, one, StatePopulated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.t, tt.s))
		})
	}
}

func TestBuild_NonPopulatedHasNoRecords(t *testing.T) {
	p := presenter.New(i18n.NewPrinter(language.English))

	pg := Build(Thresholds{}, snapshotOf(), p)
	assert.Equal(t, StateUnconfigured, pg.State)
	assert.Empty(t, pg.Records)
	assert.False(t, pg.ShowDisclaimer)

	pg = Build(Thresholds{FavoriteNotify: true}, snapshotOf(), p)
	assert.Equal(t, StateWaitingForEvents, pg.State)
	assert.Empty(t, pg.Records)
}

func TestBuild_RecordsInArrivalOrder(t *testing.T) {
	p := presenter.New(i18n.NewPrinter(language.English))
	s := snapshotOf(
		notification.PacketsThresholdExceeded{Threshold: 100, Incoming: 40, Outgoing: 10, Timestamp: "a"},
		notification.FavoriteTransmitted{Timestamp: "b"},
	)

	pg := Build(Thresholds{}, s, p)
	require.Equal(t, StatePopulated, pg.State)
	require.Len(t, pg.Records, 2)
	assert.Equal(t, "a", pg.Records[0].Timestamp)
	assert.Equal(t, "b", pg.Records[1].Timestamp)
	assert.Equal(t, 2, pg.Unread)
	assert.False(t, pg.ShowDisclaimer)
}

func TestBuild_Disclaimer(t *testing.T) {
	p := presenter.New(i18n.NewPrinter(language.English))

	events := make([]notification.Event, notification.Capacity-1)
	for i := range events {
		events[i] = notification.FavoriteTransmitted{}
	}
	assert.False(t, Build(Thresholds{}, snapshotOf(events...), p).ShowDisclaimer)

	events = append(events, notification.FavoriteTransmitted{})
	pg := Build(Thresholds{}, snapshotOf(events...), p)
	assert.True(t, pg.ShowDisclaimer)
	assert.Len(t, pg.Records, notification.Capacity)

	events = append(events, notification.FavoriteTransmitted{})
	pg = Build(Thresholds{}, snapshotOf(events...), p)
	assert.True(t, pg.ShowDisclaimer)
	assert.Len(t, pg.Records, notification.Capacity)
}

func TestBuild_ClearReturnsToConfiguredState(t *testing.T) {
	p := presenter.New(i18n.NewPrinter(language.English))
	l := notification.NewLog()
	l.Append(notification.FavoriteTransmitted{})
	th := Thresholds{FavoriteNotify: true}

	assert.Equal(t, StatePopulated, Build(th, l.Snapshot(), p).State)
	l.Execute(notification.ClearAllCommand{})
	assert.Equal(t, StateWaitingForEvents, Build(th, l.Snapshot(), p).State)
	assert.Equal(t, StateUnconfigured, Build(Thresholds{}, l.Snapshot(), p).State)
}

func TestStateText(t *testing.T) {
	b, err := StatePopulated.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "populated", string(b))
	assert.Equal(t, "unknown", State(9).String())

	var s State
	require.NoError(t, s.UnmarshalText([]byte("waiting_for_events")))
	assert.Equal(t, StateWaitingForEvents, s)
	assert.Error(t, s.UnmarshalText([]byte("busy")))
}
