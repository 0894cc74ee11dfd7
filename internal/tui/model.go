// Package tui implements the Bubble Tea TUI for reel.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/reel/internal/core/logging"
	corereviews "github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/styles"
	"github.com/colonyops/reel/internal/core/theme"
	reviewsview "github.com/colonyops/reel/internal/tui/views/reviews"
	"github.com/colonyops/reel/internal/tui/views/watchlist"
)

// chromeLines is the height of the tab bar and the status line.
const chromeLines = 3

// Source fetches both sheets.
type Source interface {
	reviewsview.Source
	watchlist.Source
}

// Options configures the TUI.
type Options struct {
	Source     Source
	Themes     theme.Store // nil keeps toggles in memory only
	Theme      theme.Theme
	Pages      corereviews.PageOptions
	Reviewers  reviewsview.Reviewers
	Transition time.Duration
	Build      BuildInfo
}

type themeChangedMsg struct {
	theme theme.Theme
	err   error
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	keys       KeyMap
	reviews    reviewsview.View
	watchlist  watchlist.View
	spinner    spinner.Model
	transition Transition
	tab        Tab
	themes     theme.Store
	theme      theme.Theme
	build      BuildInfo
	loadSeq    uint64
	pending    int // fetches in flight for loadSeq
	initCmds   []tea.Cmd
	status     string
	width      int
	height     int
}

// New creates the TUI model. The first load generation is prepared here and
// started by Init.
func New(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	t := opts.Theme
	if t == "" {
		t = theme.Default
	}

	m := Model{
		keys:       DefaultKeyMap(),
		reviews:    reviewsview.New(opts.Source, opts.Pages, opts.Reviewers),
		watchlist:  watchlist.New(opts.Source),
		spinner:    s,
		transition: NewTransition(opts.Transition),
		themes:     opts.Themes,
		theme:      t,
		build:      opts.Build,
	}
	m.initCmds = m.reload()
	return m
}

// reload starts a new load generation for both tabs. The two fetches are
// independent: each tab accepts only its own response for the current
// generation.
func (m *Model) reload() []tea.Cmd {
	m.loadSeq++
	var rc, wc tea.Cmd
	m.reviews, rc = m.reviews.Reload(m.loadSeq)
	m.watchlist, wc = m.watchlist.Reload(m.loadSeq)

	m.pending = 0
	var cmds []tea.Cmd
	for _, c := range []tea.Cmd{rc, wc} {
		if c != nil {
			cmds = append(cmds, c)
			m.pending++
		}
	}
	return cmds
}

// Init starts the spinner and both fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(append([]tea.Cmd{m.spinner.Tick}, m.initCmds...)...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyH := max(msg.Height-chromeLines, 1)
		m.reviews.SetSize(msg.Width, bodyH)
		m.watchlist.SetSize(msg.Width, bodyH)
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reviewsview.LoadedMsg:
		m.settle(msg.ID)
		var cmd tea.Cmd
		m.reviews, cmd = m.reviews.Update(msg)
		return m, cmd

	case watchlist.LoadedMsg:
		m.settle(msg.ID)
		var cmd tea.Cmd
		m.watchlist, cmd = m.watchlist.Update(msg)
		return m, cmd

	case transitionDoneMsg:
		if tab, ok := m.transition.Finish(msg); ok {
			m.tab = tab
		}
		return m, nil

	case themeChangedMsg:
		return m.handleThemeChanged(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) settle(id uint64) {
	if id == m.loadSeq && m.pending > 0 {
		m.pending--
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Search input and the detail modal own every other key.
	if m.tab == TabReviews && (m.reviews.HasEditorFocus() || m.reviews.IsDetailOpen()) {
		var cmd tea.Cmd
		m.reviews, cmd = m.reviews.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchTab):
		return m.switchTab()
	case key.Matches(msg, m.keys.Refresh):
		cmds := m.reload()
		if len(cmds) == 0 {
			return m, nil
		}
		m.status = ""
		return m, tea.Batch(append([]tea.Cmd{m.spinner.Tick}, cmds...)...)
	case key.Matches(msg, m.keys.Theme):
		return m, toggleTheme(m.themes, m.theme)
	}

	if m.transition.Fading() {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.tab {
	case TabWatchlist:
		m.watchlist, cmd = m.watchlist.Update(msg)
	default:
		m.reviews, cmd = m.reviews.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab() (tea.Model, tea.Cmd) {
	target := m.tab.Other()
	if m.transition.Duration == 0 {
		m.tab = target
		return m, nil
	}
	cmd, _ := m.transition.Start(target)
	return m, cmd
}

func toggleTheme(store theme.Store, current theme.Theme) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return themeChangedMsg{theme: current.Opposite()}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		next, err := theme.Toggle(ctx, store, current)
		return themeChangedMsg{theme: next, err: err}
	}
}

func (m Model) handleThemeChanged(msg themeChangedMsg) Model {
	if msg.err != nil {
		l := logging.Component("tui")
		logging.Failure(&l, msg.err, "theme").Msg("theme toggle not saved")
		m.status = "Theme not saved: " + msg.err.Error()
		return m
	}
	m.theme = msg.theme
	m.status = ""
	styles.Apply(msg.theme)
	return m
}

// Tab returns the visible tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.theme
}
