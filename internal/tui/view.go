package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/reel/internal/core/styles"
)

// View renders the model.
func (m Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("")
	}
	v := tea.NewView(m.content())
	v.AltScreen = true
	return v
}

func (m Model) content() string {
	body := m.renderBody()
	if m.transition.Fading() {
		body = lipgloss.NewStyle().Foreground(styles.ColorSurface).Render(ansi.Strip(body))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabBar(),
		"",
		body,
		m.renderStatus(),
	)
	if m.tab == TabReviews && !m.transition.Fading() {
		content = m.reviews.Overlay(content, m.width, m.height)
	}
	return content
}

func (m Model) renderBody() string {
	switch m.tab {
	case TabWatchlist:
		if !m.watchlist.Loaded() {
			return m.renderLoading("watch list")
		}
		return m.watchlist.View()
	default:
		if !m.reviews.Loaded() {
			return m.renderLoading("reviews")
		}
		return m.reviews.View()
	}
}

func (m Model) renderLoading(what string) string {
	return m.spinner.View() + " Loading " + what + "..."
}

func (m Model) renderTabBar() string {
	var tabs []string
	for _, t := range []Tab{TabReviews, TabWatchlist} {
		label := t.String()
		switch {
		case m.transition.Fading() && t == m.transition.Target():
			tabs = append(tabs, styles.TabFadingStyle.Render(label))
		case t == m.tab:
			tabs = append(tabs, styles.TabActiveStyle.Render(label))
		default:
			tabs = append(tabs, styles.TabInactiveStyle.Render(label))
		}
	}

	left := styles.CommandHeaderStyle.Render(styles.IconFilm+" reel") + "  " + strings.Join(tabs, " ")
	right := styles.ThemeIcon(m.theme) + " " + string(m.theme)
	if v := m.build.Short(); v != "" {
		right += "  " + styles.StatusBarStyle.Render(v)
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderStatus() string {
	if m.status != "" {
		return styles.ErrorStyle.Render(m.status)
	}
	line := HelpLine(m.keys.ShortHelp())
	if m.pending > 0 && m.reviews.Loaded() && m.watchlist.Loaded() {
		line = m.spinner.View() + " refreshing • " + line
	}
	return styles.HelpStyle.Render(line)
}
