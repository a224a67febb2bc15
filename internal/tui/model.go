// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/i18n"
)

// View represents the currently active screen
type View int

const (
	ViewNotifications View = iota
	ViewSettings
	viewCount
)

// RetryDelay is how long the disconnected screen waits before reloading.
const RetryDelay = 5 * time.Second

// Model is the main application state
type Model struct {
	Backend Backend
	Printer *i18n.Printer
	Keys    KeyMap
	Help    help.Model

	// State
	ActiveView      View
	Width           int
	Height          int
	ConnectionError string // If set, shows disconnected state

	// Views
	Notifications NotificationsModel
	Settings      SettingsModel
}

// NewModel creates the root model, rendering every string in lang.
func NewModel(backend Backend, lang language.Tag) Model {
	p := i18n.NewPrinter(lang)
	notifications := NewNotificationsModel(backend, p)
	notifications.Active = true
	return Model{
		Backend:       backend,
		Printer:       p,
		Keys:          DefaultKeyMap(),
		Help:          help.New(),
		ActiveView:    ViewNotifications,
		Notifications: notifications,
		Settings:      NewSettingsModel(backend, p),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Notifications.Init(),
		m.Settings.Init(),
	)
}

// reload re-reads backend state without restarting the refresh ticker.
func (m Model) reload() tea.Cmd {
	return tea.Batch(m.Notifications.refresh(), m.Settings.load())
}

// capturing reports whether a form owns the keyboard.
func (m Model) capturing() bool {
	switch m.ActiveView {
	case ViewNotifications:
		return m.Notifications.Confirming
	case ViewSettings:
		return m.Settings.Editing
	}
	return false
}

func (m Model) switchTo(v View) Model {
	m.ActiveView = v
	m.Notifications.Active = v == ViewNotifications
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BackendError:
		first := m.ConnectionError == ""
		m.ConnectionError = msg.Err.Error()
		DebugLog("backend error", "error", msg.Err)
		if !first {
			return m, nil
		}
		return m, tea.Tick(RetryDelay, func(time.Time) tea.Msg {
			return RetryMsg{}
		})

	case RetryMsg:
		if m.ConnectionError != "" {
			m.ConnectionError = ""
			return m, m.reload()
		}
		return m, nil

	case PageMsg:
		m.ConnectionError = ""

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width

	case tea.KeyMsg:
		if !m.capturing() {
			if mm, cmd, handled := m.handleGlobalKey(msg); handled {
				return mm, cmd
			}
		} else if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.updateActive(msg)
	}

	// Everything that is not a key goes to every view; forms rely on
	// their own follow-up messages to advance.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Notifications, cmd = m.Notifications.Update(msg)
	cmds = append(cmds, cmd)
	m.Settings, cmd = m.Settings.Update(msg)
	cmds = append(cmds, cmd)
	if _, ok := msg.(SettingsSaved); ok {
		cmds = append(cmds, m.Notifications.refresh())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.Keys.Retry) && m.ConnectionError != "":
		m.ConnectionError = ""
		return m, m.reload(), true
	case key.Matches(msg, m.Keys.NextView):
		m = m.switchTo((m.ActiveView + 1) % viewCount)
		return m, m.Notifications.refresh(), true
	case key.Matches(msg, m.Keys.Notifications):
		m = m.switchTo(ViewNotifications)
		return m, m.Notifications.refresh(), true
	case key.Matches(msg, m.Keys.Settings):
		m = m.switchTo(ViewSettings)
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ActiveView {
	case ViewNotifications:
		m.Notifications, cmd = m.Notifications.Update(msg)
	case ViewSettings:
		m.Settings, cmd = m.Settings.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.ConnectionError != "" {
		msg := StyleTitle.Render("⚠ Connection Lost") + "\n\n" +
			StyleStatusBad.Render(m.ConnectionError) + "\n\n" +
			StyleSubtitle.Render("Attempting to reconnect... (r to retry, q to quit)")

		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			StyleCard.Render(msg),
		)
	}

	doc := m.ViewTopBar() + "\n"
	switch m.ActiveView {
	case ViewNotifications:
		doc += m.Notifications.View()
	case ViewSettings:
		doc += m.Settings.View()
	}
	if !m.capturing() {
		doc += "\n" + m.Help.View(m.Keys)
	}
	return StyleApp.Render(doc)
}

// ViewTopBar renders the top navigation menu
func (m Model) ViewTopBar() string {
	menus := []struct {
		View  View
		Label string
		Key   string
	}{
		{ViewNotifications, m.Printer.T(i18n.KeyNotifications), "1"},
		{ViewSettings, m.Printer.T(i18n.KeySettings), "2"},
	}

	items := []string{StyleTitle.Render("FLYWATCH ")}
	for _, menu := range menus {
		label := StyleMenuKey.Render("["+menu.Key+"]") + " " + menu.Label
		if menu.View == ViewNotifications {
			if pg := m.Notifications.Page; pg != nil && pg.Unread > 0 {
				label += " " + StyleBadge.Render(strconv.Itoa(pg.Unread))
			}
		}
		if m.ActiveView == menu.View {
			items = append(items, StyleMenuItemActive.Render(label))
		} else {
			items = append(items, StyleMenuItem.Render(label))
		}
	}

	return StyleTopBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

// BackendError reports a failed backend call.
type BackendError struct {
	Err error
}

type RetryMsg struct{}
