// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package geo

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryCode is an ISO 3166-1 alpha-2 code. Unknown marks hosts that could
// not be placed (private ranges, missing GeoIP data).
type CountryCode string

const Unknown CountryCode = "ZZ"

const unknownFlag = "🏳"

// ParseCountryCode normalizes s. Anything that is not a two-letter region
// becomes Unknown.
func ParseCountryCode(s string) CountryCode {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Unknown
	}
	if _, err := language.ParseRegion(s); err != nil {
		return Unknown
	}
	return CountryCode(s)
}

func (c CountryCode) IsKnown() bool {
	return c != "" && c != Unknown
}

// Flag returns the emoji flag built from regional indicator symbols.
func (c CountryCode) Flag() string {
	if !c.IsKnown() || len(c) != 2 {
		return unknownFlag
	}
	var b strings.Builder
	for _, r := range string(c) {
		if r < 'A' || r > 'Z' {
			return unknownFlag
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// Name returns the country name in the given display language, falling back
// to English and finally to the raw code.
func (c CountryCode) Name(tag language.Tag) string {
	if !c.IsKnown() {
		return "?"
	}
	region, err := language.ParseRegion(string(c))
	if err != nil {
		return string(c)
	}
	if n := display.Regions(tag); n != nil {
		if name := n.Name(region); name != "" {
			return name
		}
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}
	return string(c)
}

// Tooltip is the short text shown next to a host's flag.
func Tooltip(c CountryCode, tag language.Tag) string {
	return c.Flag() + " " + c.Name(tag)
}
