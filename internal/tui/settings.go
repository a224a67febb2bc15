// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/i18n"
)

// settingsForm is the editable shape of config.NotificationsConfig.
type settingsForm struct {
	PacketsThreshold string `tui:"title=packets_threshold,desc=leave_empty_to_disable,validate=threshold"`
	BytesThreshold   string `tui:"title=bytes_threshold,desc=leave_empty_to_disable,validate=threshold"`
	NotifyOnFavorite bool   `tui:"title=notify_on_favorite"`
}

func newSettingsForm(n *config.NotificationsConfig) *settingsForm {
	if n == nil {
		return &settingsForm{}
	}
	return &settingsForm{
		PacketsThreshold: formatThreshold(n.PacketsThreshold),
		BytesThreshold:   formatThreshold(n.BytesThreshold),
		NotifyOnFavorite: n.NotifyOnFavorite,
	}
}

func (f *settingsForm) toConfig() (*config.NotificationsConfig, error) {
	packets, err := parseThreshold(f.PacketsThreshold)
	if err != nil {
		return nil, err
	}
	bytes, err := parseThreshold(f.BytesThreshold)
	if err != nil {
		return nil, err
	}
	return &config.NotificationsConfig{
		PacketsThreshold: packets,
		BytesThreshold:   bytes,
		NotifyOnFavorite: f.NotifyOnFavorite,
	}, nil
}

// SettingsMsg carries the settings read from the backend.
type SettingsMsg struct{ Settings *config.NotificationsConfig }

// SettingsSaved reports that the backend accepted new settings.
type SettingsSaved struct{ Settings *config.NotificationsConfig }

type SettingsModel struct {
	Backend Backend
	Printer *i18n.Printer
	Keys    KeyMap

	Settings  *config.NotificationsConfig
	Form      *huh.Form
	form      *settingsForm
	Editing   bool
	Saved     bool
	LastError error

	Width  int
	Height int
}

func NewSettingsModel(backend Backend, p *i18n.Printer) SettingsModel {
	return SettingsModel{
		Backend: backend,
		Printer: p,
		Keys:    DefaultKeyMap(),
	}
}

func (m SettingsModel) Init() tea.Cmd {
	return m.load()
}

func (m SettingsModel) load() tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		n, err := backend.GetSettings()
		if err != nil {
			DebugLog("settings load failed", "error", err)
			return BackendError{Err: err}
		}
		return SettingsMsg{Settings: n}
	}
}

func (m SettingsModel) save(n *config.NotificationsConfig) tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		if err := backend.ApplySettings(n); err != nil {
			return settingsFailed{err: err}
		}
		return SettingsSaved{Settings: n}
	}
}

// settingsFailed is a rejected save; the view stays connected.
type settingsFailed struct{ err error }

// StartEditing opens the form on the current settings.
func (m SettingsModel) StartEditing() (SettingsModel, tea.Cmd) {
	m.form = newSettingsForm(m.Settings)
	m.Form = AutoForm(m.form, m.Printer).WithShowHelp(false)
	m.Editing = true
	m.Saved = false
	return m, m.Form.Init()
}

func (m SettingsModel) stopEditing() SettingsModel {
	m.Editing = false
	m.Form = nil
	m.form = nil
	return m
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case SettingsMsg:
		m.Settings = msg.Settings
		return m, nil

	case SettingsSaved:
		m.Settings = msg.Settings
		m.Saved = true
		m.LastError = nil
		return m, nil

	case settingsFailed:
		m.LastError = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	}

	if m.Editing {
		return m.updateForm(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.Keys.Edit) {
		return m.StartEditing()
	}
	return m, nil
}

func (m SettingsModel) updateForm(msg tea.Msg) (SettingsModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return m.stopEditing(), nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		n, err := m.form.toConfig()
		m = m.stopEditing()
		if err != nil {
			m.LastError = err
			return m, nil
		}
		return m, m.save(n)
	case huh.StateAborted:
		return m.stopEditing(), nil
	}
	return m, cmd
}

func (m SettingsModel) View() string {
	title := StyleHeader.Render(m.Printer.T(i18n.KeySettings))

	if m.Editing && m.Form != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			StyleCard.Render(m.Form.View()),
			StyleSubtitle.Render("esc "+m.Printer.T(i18n.KeyCancel)),
		)
	}

	if m.Settings == nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, StyleSubtitle.Render("…"))
	}

	notSet := StyleSubtitle.Render(m.Printer.T(i18n.KeyNotConfigured))
	value := func(v *uint32) string {
		if v == nil {
			return notSet
		}
		return StyleTitle.Render(formatThreshold(v))
	}
	favorite := StyleStatusBad.Render("✗")
	if m.Settings.NotifyOnFavorite {
		favorite = StyleStatusGood.Render("✓")
	}

	rows := lipgloss.JoinVertical(lipgloss.Left,
		m.Printer.T(i18n.KeyPacketsThreshold)+": "+value(m.Settings.PacketsThreshold),
		m.Printer.T(i18n.KeyBytesThreshold)+": "+value(m.Settings.BytesThreshold),
		m.Printer.T(i18n.KeyNotifyOnFavorite)+": "+favorite,
	)

	parts := []string{title, StyleCard.Render(rows)}
	if m.Saved {
		parts = append(parts, StyleStatusGood.Render(m.Printer.T(i18n.KeySettingsSaved)))
	}
	if m.LastError != nil {
		parts = append(parts, StyleStatusBad.Render(m.LastError.Error()))
	}
	parts = append(parts, StyleSubtitle.Render(StyleMenuKey.Render("[enter]")+" edit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
