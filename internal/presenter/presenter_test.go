// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package presenter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/notification"
)

func english() *Presenter { return New(i18n.NewPrinter(language.English)) }

func TestPresent_Packets(t *testing.T) {
	rec := english().Present(notification.PacketsThresholdExceeded{
		Threshold: 100,
		Incoming:  40,
		Outgoing:  10,
		Timestamp: "08:15:00",
	})

	assert.Equal(t, notification.KindPacketsThresholdExceeded, rec.Kind)
	assert.Equal(t, IconPacketsThreshold, rec.Icon)
	assert.Equal(t, "Packets threshold exceeded", rec.Title)
	assert.Equal(t, "08:15:00", rec.Timestamp)
	assert.Equal(t, []string{"Threshold: 100 per second"}, rec.Subtitle)
	assert.Equal(t, []string{
		"50 packets have been exchanged",
		"Incoming: 40",
		"Outgoing: 10",
	}, rec.Details)
	assert.Nil(t, rec.Host)
}

func TestPresent_PacketsTotalDoesNotWrap(t *testing.T) {
	rec := english().Present(notification.PacketsThresholdExceeded{
		Threshold: 1,
		Incoming:  math.MaxUint32,
		Outgoing:  math.MaxUint32,
	})
	assert.Equal(t, "8589934590 packets have been exchanged", rec.Details[0])
	assert.Equal(t, "Incoming: 4294967295", rec.Details[1])
}

func TestPresent_Bytes(t *testing.T) {
	rec := english().Present(notification.BytesThresholdExceeded{
		Threshold: 800000,
		Incoming:  1000,
		Outgoing:  500,
		Timestamp: "08:16:00",
	})

	assert.Equal(t, IconBytesThreshold, rec.Icon)
	assert.Equal(t, "Bytes threshold exceeded", rec.Title)
	assert.Equal(t, []string{"Threshold: 800 kB per second"}, rec.Subtitle)
	assert.Equal(t, []string{
		"1.5 kB have been exchanged",
		"Incoming: 1.0 kB",
		"Outgoing: 500 B",
	}, rec.Details)
}

func TestPresent_BytesSumBeyondUint64(t *testing.T) {
	rec := english().Present(notification.BytesThresholdExceeded{
		Threshold: 1,
		Incoming:  math.MaxUint64 - 1,
		Outgoing:  1,
	})
	require.Len(t, rec.Details, 3)
	assert.Equal(t, "18 EB have been exchanged", rec.Details[0])
	assert.Equal(t, "Outgoing: 1 B", rec.Details[2])

	rec = english().Present(notification.BytesThresholdExceeded{
		Incoming: math.MaxUint64,
		Outgoing: math.MaxUint64,
	})
	assert.Equal(t, "37 EB have been exchanged", rec.Details[0])
}

func TestPresent_Favorite(t *testing.T) {
	host := notification.HostSummary{
		Domain:  "example.com",
		ASNName: "EXAMPLE-AS",
		Country: "IT",
		Traffic: notification.DataInfoHost{IncomingBytes: 1000, OutgoingBytes: 500, IncomingPackets: 3, OutgoingPackets: 2},
	}
	rec := english().Present(notification.FavoriteTransmitted{Host: host, Timestamp: "08:17:00"})

	assert.Equal(t, IconStar, rec.Icon)
	assert.Equal(t, "New data exchanged from favorites", rec.Title)
	assert.Empty(t, rec.Subtitle)
	assert.Equal(t, []string{"example.com - EXAMPLE-AS"}, rec.Details)

	require.NotNil(t, rec.Host)
	assert.Equal(t, "🇮🇹", rec.Host.Flag)
	assert.Equal(t, "🇮🇹 Italy", rec.Host.Tooltip)
	assert.Equal(t, "1.5 kB", rec.Host.Bytes)
	assert.Equal(t, "5", rec.Host.Packets)
}

func TestPresent_FavoriteWithoutASN(t *testing.T) {
	rec := english().Present(notification.FavoriteTransmitted{
		Host: notification.HostSummary{Domain: "router.lan", Country: "ZZ"},
	})
	assert.Equal(t, []string{"router.lan"}, rec.Details)
	assert.NotContains(t, rec.Details[0], " - ")
}

func TestPresent_Localized(t *testing.T) {
	it := New(i18n.NewPrinter(language.Italian))
	rec := it.Present(notification.PacketsThresholdExceeded{Threshold: 100, Incoming: 1, Outgoing: 0})

	assert.Equal(t, "Soglia di pacchetti superata", rec.Title)
	assert.Equal(t, []string{"Soglia: 100 al secondo"}, rec.Subtitle)
	assert.Equal(t, "1 pacchetto è stato scambiato", rec.Details[0])
	assert.Equal(t, "In entrata: 1", rec.Details[1])

	rec = it.Present(notification.PacketsThresholdExceeded{Threshold: 100, Incoming: 1200, Outgoing: 34})
	assert.Equal(t, "1234 pacchetti sono stati scambiati", rec.Details[0])
	assert.Equal(t, "In entrata: 1200", rec.Details[1])
}

func TestPresentAll_KeepsOrder(t *testing.T) {
	recs := english().PresentAll([]notification.Event{
		notification.FavoriteTransmitted{},
		notification.PacketsThresholdExceeded{},
	})
	require.Len(t, recs, 2)
	assert.Equal(t, IconStar, recs[0].Icon)
	assert.Equal(t, IconPacketsThreshold, recs[1].Icon)
}

func TestIconGlyph(t *testing.T) {
	for _, icon := range []Icon{IconPacketsThreshold, IconBytesThreshold, IconStar} {
		assert.NotEqual(t, "•", icon.Glyph())
	}
}
