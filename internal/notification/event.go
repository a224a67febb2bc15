// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package notification holds flywatch's notification log: the alert events
// raised by the detection engine and the bounded, ordered log that keeps
// them for the operator.
package notification

import (
	"grimm.is/flywatch/internal/geo"
	"grimm.is/flywatch/internal/units"

	"lukechampine.com/uint128"
)

// Kind names an event variant. It is also the wire tag.
type Kind string

const (
	KindPacketsThresholdExceeded Kind = "packets_threshold_exceeded"
	KindBytesThresholdExceeded   Kind = "bytes_threshold_exceeded"
	KindFavoriteTransmitted      Kind = "favorite_transmitted"
)

// Kinds lists every variant in a stable order.
var Kinds = []Kind{
	KindPacketsThresholdExceeded,
	KindBytesThresholdExceeded,
	KindFavoriteTransmitted,
}

// Event is one of PacketsThresholdExceeded, BytesThresholdExceeded or
// FavoriteTransmitted. The set is closed: only this package can add
// variants.
//
// Events are values. Thresholds are copies of the configuration in force
// when the event fired and never follow later config changes.
type Event interface {
	Kind() Kind
	// When is the pre-formatted, already localized time the event fired.
	When() string
	sealed()
}

// PacketsThresholdExceeded fires when the packet rate crossed the
// configured packets/s threshold.
type PacketsThresholdExceeded struct {
	Threshold uint32 `json:"threshold"`
	Incoming  uint32 `json:"incoming"`
	Outgoing  uint32 `json:"outgoing"`
	Timestamp string `json:"timestamp"`
}

func (PacketsThresholdExceeded) Kind() Kind { return KindPacketsThresholdExceeded }
func (e PacketsThresholdExceeded) When() string { return e.Timestamp }
func (PacketsThresholdExceeded) sealed() {}

// Total is incoming+outgoing, widened so it cannot wrap.
func (e PacketsThresholdExceeded) Total() uint64 {
	return uint64(e.Incoming) + uint64(e.Outgoing)
}

// BytesThresholdExceeded fires when the byte rate crossed the configured
// bytes/s threshold.
type BytesThresholdExceeded struct {
	Threshold uint32 `json:"threshold"`
	Incoming  uint64 `json:"incoming"`
	Outgoing  uint64 `json:"outgoing"`
	Timestamp string `json:"timestamp"`
}

func (BytesThresholdExceeded) Kind() Kind { return KindBytesThresholdExceeded }
func (e BytesThresholdExceeded) When() string { return e.Timestamp }
func (BytesThresholdExceeded) sealed() {}

// Total is incoming+outgoing computed in 128 bits.
func (e BytesThresholdExceeded) Total() uint128.Uint128 {
	return units.Sum(e.Incoming, e.Outgoing)
}

// FavoriteTransmitted fires when a host the operator starred exchanged data.
type FavoriteTransmitted struct {
	Host      HostSummary `json:"host"`
	Timestamp string      `json:"timestamp"`
}

func (FavoriteTransmitted) Kind() Kind { return KindFavoriteTransmitted }
func (e FavoriteTransmitted) When() string { return e.Timestamp }
func (FavoriteTransmitted) sealed() {}

// HostSummary is the denormalized view of a host carried by a
// FavoriteTransmitted event.
type HostSummary struct {
	Domain  string          `json:"domain"`
	ASNName string          `json:"asn_name,omitempty"`
	Country geo.CountryCode `json:"country"`
	Traffic DataInfoHost    `json:"traffic"`
}

// DataInfoHost is the traffic seen for a host up to the moment the event
// fired.
type DataInfoHost struct {
	IncomingPackets uint64 `json:"incoming_packets"`
	OutgoingPackets uint64 `json:"outgoing_packets"`
	IncomingBytes   uint64 `json:"incoming_bytes"`
	OutgoingBytes   uint64 `json:"outgoing_bytes"`
	IsLocal         bool   `json:"is_local,omitempty"`
	IsLoopback      bool   `json:"is_loopback,omitempty"`
}

func (d DataInfoHost) TotalPackets() uint128.Uint128 {
	return units.Sum(d.IncomingPackets, d.OutgoingPackets)
}

func (d DataInfoHost) TotalBytes() uint128.Uint128 {
	return units.Sum(d.IncomingBytes, d.OutgoingBytes)
}
