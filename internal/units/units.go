// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package units turns raw byte counts into human-readable, unit-scaled text.
//
// Values are carried as 128-bit magnitudes so that sums of two 64-bit
// counters can be formatted without wrapping.
package units

import (
	"github.com/dustin/go-humanize"
	"lukechampine.com/uint128"
)

// Widen lifts a 64-bit count into the 128-bit domain.
func Widen(v uint64) uint128.Uint128 {
	return uint128.From64(v)
}

// Sum adds two 64-bit counts in 128 bits. It cannot overflow.
func Sum(a, b uint64) uint128.Uint128 {
	return uint128.From64(a).Add64(b)
}

// Format renders v with the largest SI byte multiple that keeps the scaled
// value readable: one decimal place below 10, none above, e.g. "999 B",
// "1.5 kB", "82 MB". It is deterministic and defined for every value.
func Format(v uint128.Uint128) string {
	return humanize.BigBytes(v.Big())
}

// Format64 is Format for values that already fit in 64 bits.
func Format64(v uint64) string {
	return humanize.Bytes(v)
}
