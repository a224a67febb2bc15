// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
)

func TestSum_NoWraparound(t *testing.T) {
	got := Sum(math.MaxUint64-1, 1)
	assert.Equal(t, uint128.From64(math.MaxUint64), got)

	got = Sum(math.MaxUint64, math.MaxUint64)
	assert.Equal(t, uint64(1), got.Hi)
	assert.Equal(t, uint64(math.MaxUint64-1), got.Lo)
	assert.Equal(t, "36893488147419103230", got.String())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1500, "1.5 kB"},
		{82_000_000, "82 MB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(Widen(tc.in)), "value %d", tc.in)
		assert.Equal(t, tc.want, Format64(tc.in), "value %d", tc.in)
	}
	assert.Equal(t, "1.0 GB", Format(Widen(1_000_000_000)))
}

func TestFormat_BeyondUint64(t *testing.T) {
	// 2^64 bytes is roughly 18.4 EB; the sum must not wrap back to "0 B".
	total := Sum(math.MaxUint64-1, 1).Add64(1)
	assert.Equal(t, "18 EB", Format(total))

	// The largest 128-bit value still formats.
	assert.NotEmpty(t, Format(uint128.Max))
}

func TestFormat_Stable(t *testing.T) {
	v := Sum(123_456_789, 987_654_321)
	assert.Equal(t, Format(v), Format(v))
}
