// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorDeep  = lipgloss.Color("24")
	ColorIce   = lipgloss.Color("153")
	ColorMuted = lipgloss.Color("245")
	ColorGood  = lipgloss.Color("42")
	ColorWarn  = lipgloss.Color("214")
	ColorBad   = lipgloss.Color("196")
	ColorStar  = lipgloss.Color("220")
)

var (
	StyleApp = lipgloss.NewStyle().Padding(0, 1)

	StyleTopBar = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorDeep).
			MarginBottom(1)

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorIce)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorIce).
			Background(ColorDeep).
			Padding(0, 1)

	StyleSubtitle = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDeep).
			Padding(0, 1)

	StyleMenuItem       = lipgloss.NewStyle().Padding(0, 1).Foreground(ColorMuted)
	StyleMenuItemActive = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(ColorIce).Underline(true)
	StyleMenuKey        = lipgloss.NewStyle().Foreground(ColorDeep)

	StyleBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(ColorBad).
			Padding(0, 1)

	StyleStatusGood = lipgloss.NewStyle().Foreground(ColorGood)
	StyleStatusWarn = lipgloss.NewStyle().Foreground(ColorWarn)
	StyleStatusBad  = lipgloss.NewStyle().Foreground(ColorBad)

	StyleStar      = lipgloss.NewStyle().Foreground(ColorStar)
	StyleTimestamp = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)
