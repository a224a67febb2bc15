// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package presenter turns notification events into display records. It is
// shared by the TUI and the HTTP API, so records carry text only and leave
// styling to the caller.
package presenter

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/geo"
	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/units"
)

// Icon identifies the glyph drawn next to a record.
type Icon string

const (
	IconPacketsThreshold Icon = "packets_threshold"
	IconBytesThreshold   Icon = "bytes_threshold"
	IconStar             Icon = "star"
)

// Glyph is the terminal rendering of the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconPacketsThreshold:
		return "⇅"
	case IconBytesThreshold:
		return "⛁"
	case IconStar:
		return "★"
	default:
		return "•"
	}
}

// Record is one rendered notification.
type Record struct {
	Kind      notification.Kind `json:"kind"`
	Icon      Icon              `json:"icon"`
	TitleKey  string            `json:"title_key"`
	Title     string            `json:"title"`
	Timestamp string            `json:"timestamp"`
	Subtitle  []string          `json:"subtitle,omitempty"`
	Details   []string          `json:"details"`
	Host      *HostDetail       `json:"host,omitempty"`
}

// HostDetail is the host block of a favorite notification.
type HostDetail struct {
	Domain  string                    `json:"domain"`
	ASNName string                    `json:"asn_name,omitempty"`
	Country geo.CountryCode           `json:"country"`
	Flag    string                    `json:"flag"`
	Tooltip string                    `json:"tooltip"`
	Traffic notification.DataInfoHost `json:"traffic"`
	Packets string                    `json:"packets"`
	Bytes   string                    `json:"bytes"`
}

// Translator resolves UI keys. *i18n.Printer implements it.
type Translator interface {
	T(key string, args ...any) string
	Count(key string, n uint64) string
	Language() language.Tag
}

// Presenter builds records in one language.
type Presenter struct {
	tr Translator
}

func New(tr Translator) *Presenter {
	return &Presenter{tr: tr}
}

// Present renders ev. Every event variant produces a record.
func (p *Presenter) Present(ev notification.Event) Record {
	switch e := ev.(type) {
	case notification.PacketsThresholdExceeded:
		return p.packets(e)
	case notification.BytesThresholdExceeded:
		return p.bytes(e)
	case notification.FavoriteTransmitted:
		return p.favorite(e)
	default:
		panic(fmt.Sprintf("presenter: unhandled event %T", ev))
	}
}

// PresentAll renders events in order.
func (p *Presenter) PresentAll(events []notification.Event) []Record {
	out := make([]Record, 0, len(events))
	for _, ev := range events {
		out = append(out, p.Present(ev))
	}
	return out
}

func (p *Presenter) packets(e notification.PacketsThresholdExceeded) Record {
	return Record{
		Kind:      e.Kind(),
		Icon:      IconPacketsThreshold,
		TitleKey:  i18n.KeyPacketsExceeded,
		Title:     p.tr.T(i18n.KeyPacketsExceeded),
		Timestamp: e.Timestamp,
		Subtitle:  []string{p.rate(strconv.FormatUint(uint64(e.Threshold), 10))},
		Details: []string{
			p.tr.Count(i18n.KeyPacketsExceededValue, e.Total()),
			p.line(i18n.KeyIncoming, strconv.FormatUint(uint64(e.Incoming), 10)),
			p.line(i18n.KeyOutgoing, strconv.FormatUint(uint64(e.Outgoing), 10)),
		},
	}
}

func (p *Presenter) bytes(e notification.BytesThresholdExceeded) Record {
	return Record{
		Kind:      e.Kind(),
		Icon:      IconBytesThreshold,
		TitleKey:  i18n.KeyBytesExceeded,
		Title:     p.tr.T(i18n.KeyBytesExceeded),
		Timestamp: e.Timestamp,
		Subtitle:  []string{p.rate(units.Format(units.Widen(uint64(e.Threshold))))},
		Details: []string{
			p.tr.T(i18n.KeyBytesExceededValue, units.Format(e.Total())),
			p.line(i18n.KeyIncoming, units.Format(units.Widen(e.Incoming))),
			p.line(i18n.KeyOutgoing, units.Format(units.Widen(e.Outgoing))),
		},
	}
}

func (p *Presenter) favorite(e notification.FavoriteTransmitted) Record {
	h := e.Host
	label := h.Domain
	if h.ASNName != "" {
		label += " - " + h.ASNName
	}
	return Record{
		Kind:      e.Kind(),
		Icon:      IconStar,
		TitleKey:  i18n.KeyFavoriteTransmitted,
		Title:     p.tr.T(i18n.KeyFavoriteTransmitted),
		Timestamp: e.Timestamp,
		Details:   []string{label},
		Host: &HostDetail{
			Domain:  h.Domain,
			ASNName: h.ASNName,
			Country: h.Country,
			Flag:    h.Country.Flag(),
			Tooltip: geo.Tooltip(h.Country, p.tr.Language()),
			Traffic: h.Traffic,
			Packets: h.Traffic.TotalPackets().String(),
			Bytes:   units.Format(h.Traffic.TotalBytes()),
		},
	}
}

// rate renders "Threshold: v per second".
func (p *Presenter) rate(v string) string {
	return p.tr.T(i18n.KeyThreshold) + ": " + v + " " + p.tr.T(i18n.KeyPerSecond)
}

func (p *Presenter) line(key, v string) string {
	return p.tr.T(key) + ": " + v
}
