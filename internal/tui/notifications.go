// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/page"
	"grimm.is/flywatch/internal/presenter"
)

// RefreshInterval is how often the page is re-read from the backend.
const RefreshInterval = time.Second

// NotificationsModel renders the notifications page.
type NotificationsModel struct {
	Backend Backend
	Printer *i18n.Printer
	Keys    KeyMap

	Page        *page.Page
	LastUpdated time.Time
	// Active is set by the parent while this view is on screen; the
	// unread counter is reset only then.
	Active bool

	Spinner  spinner.Model
	Viewport viewport.Model

	Confirming bool
	Confirm    *huh.Form
	confirmed  *bool

	Width  int
	Height int
}

// TickMsg triggers a page refresh.
type TickMsg time.Time

// PageMsg carries a freshly built page.
type PageMsg struct{ Page *page.Page }

// ClearAllMsg asks the backend to empty the log. It is sent once the
// operator confirms.
type ClearAllMsg struct{}

// ClearedMsg reports a finished clear-all.
type ClearedMsg struct{}

func NewNotificationsModel(backend Backend, p *i18n.Printer) NotificationsModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Points))
	sp.Style = StyleTitle

	return NotificationsModel{
		Backend:  backend,
		Printer:  p,
		Keys:     DefaultKeyMap(),
		Spinner:  sp,
		Viewport: viewport.New(0, 0),
	}
}

func (m NotificationsModel) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.tick(), m.Spinner.Tick)
}

func (m NotificationsModel) tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m NotificationsModel) refresh() tea.Cmd {
	backend, lang := m.Backend, m.Printer.Language()
	return func() tea.Msg {
		pg, err := backend.GetPage(lang)
		if err != nil {
			return BackendError{Err: err}
		}
		return PageMsg{Page: pg}
	}
}

func (m NotificationsModel) markRead() tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		if err := backend.MarkRead(); err != nil {
			return BackendError{Err: err}
		}
		return nil
	}
}

func (m NotificationsModel) clearAll() tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		if err := backend.ClearAll(); err != nil {
			return BackendError{Err: err}
		}
		return ClearedMsg{}
	}
}

func (m NotificationsModel) Update(msg tea.Msg) (NotificationsModel, tea.Cmd) {
	if m.Confirming {
		switch msg.(type) {
		case PageMsg, TickMsg, spinner.TickMsg, ClearAllMsg, ClearedMsg, tea.WindowSizeMsg:
		default:
			return m.updateConfirm(msg)
		}
	}

	switch msg := msg.(type) {
	case PageMsg:
		m.Page = msg.Page
		m.Viewport.SetContent(m.renderRecords())
		if m.Active && m.Page != nil && m.Page.Unread > 0 {
			return m, m.markRead()
		}
		return m, nil

	case TickMsg:
		m.LastUpdated = time.Time(msg)
		return m, tea.Batch(m.refresh(), m.tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case ClearAllMsg:
		return m, m.clearAll()

	case ClearedMsg:
		m.Viewport.GotoTop()
		return m, m.refresh()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Viewport.Width = max(msg.Width-4, 0)
		m.Viewport.Height = max(msg.Height-10, 3)
		m.Viewport.SetContent(m.renderRecords())
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ClearAll) {
			if m.Page == nil || m.Page.State != page.StatePopulated {
				return m, nil
			}
			return m.openConfirm()
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m NotificationsModel) openConfirm() (NotificationsModel, tea.Cmd) {
	m.confirmed = new(bool)
	m.Confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(m.Printer.T(i18n.KeyConfirmClearAll)).
				Affirmative(m.Printer.T(i18n.KeyClearAll)).
				Negative(m.Printer.T(i18n.KeyCancel)).
				Value(m.confirmed),
		),
	).WithTheme(huh.ThemeBase16()).WithShowHelp(false)
	m.Confirming = true
	return m, m.Confirm.Init()
}

func (m NotificationsModel) closeConfirm() NotificationsModel {
	m.Confirming = false
	m.Confirm = nil
	m.confirmed = nil
	return m
}

// updateConfirm drives the clear-all confirmation. Only an affirmative
// answer emits ClearAllMsg.
func (m NotificationsModel) updateConfirm(msg tea.Msg) (NotificationsModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return m.closeConfirm(), nil
	}
	form, cmd := m.Confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Confirm = f
	}

	switch m.Confirm.State {
	case huh.StateCompleted:
		confirmed := *m.confirmed
		m = m.closeConfirm()
		if confirmed {
			return m, func() tea.Msg { return ClearAllMsg{} }
		}
		return m, nil
	case huh.StateAborted:
		return m.closeConfirm(), nil
	}
	return m, cmd
}

func (m NotificationsModel) View() string {
	title := StyleHeader.Render(strings.ToUpper(m.Printer.T(i18n.KeyNotifications)))

	if m.Page == nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, StyleSubtitle.Render(m.Spinner.View()))
	}

	if m.Confirming && m.Confirm != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, StyleCard.Render(m.Confirm.View()))
	}

	switch m.Page.State {
	case page.StateUnconfigured:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			StyleTitle.Render(m.Printer.T(i18n.KeyNoNotificationsSet)),
			StyleSubtitle.Render(m.Printer.T(i18n.KeyOpenSettings, StyleMenuKey.Render("[s]"))),
		)

	case page.StateWaitingForEvents:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			StyleTitle.Render(m.Printer.T(i18n.KeyNoNotificationsReceived)),
			m.Spinner.View(),
		)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		" ",
		StyleMenuKey.Render("[c]")+" "+m.Printer.T(i18n.KeyClearAll),
	)
	parts := []string{header}
	if m.Page.ShowDisclaimer {
		parts = append(parts, StyleStatusWarn.Render("⚠ "+m.Printer.T(i18n.KeyOnlyLast30)))
	}
	parts = append(parts, m.Viewport.View())
	if !m.LastUpdated.IsZero() {
		parts = append(parts, StyleSubtitle.Render(m.LastUpdated.Format("15:04:05")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m NotificationsModel) renderRecords() string {
	if m.Page == nil || len(m.Page.Records) == 0 {
		return ""
	}
	width := m.Viewport.Width
	cards := make([]string, 0, len(m.Page.Records))
	for _, rec := range m.Page.Records {
		cards = append(cards, renderRecord(rec, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderRecord(rec presenter.Record, width int) string {
	icon := StyleTitle.Render(rec.Icon.Glyph())
	if rec.Icon == presenter.IconStar {
		icon = StyleStar.Render(rec.Icon.Glyph())
	}

	lines := []string{
		icon + " " + StyleTitle.Render(rec.Title) + "  " + StyleTimestamp.Render(rec.Timestamp),
	}
	for _, s := range rec.Subtitle {
		lines = append(lines, StyleSubtitle.Render(s))
	}
	for i, d := range rec.Details {
		switch {
		case rec.Host != nil:
			lines = append(lines, rec.Host.Flag+" "+d)
		case i == 0:
			lines = append(lines, d)
		default:
			lines = append(lines, " - "+d)
		}
	}
	if h := rec.Host; h != nil {
		lines = append(lines, StyleSubtitle.Render(h.Tooltip+" · "+h.Bytes+" · "+h.Packets+" pkts"))
	}

	style := StyleCard
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
