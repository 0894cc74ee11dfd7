// Package watchlist renders the watch list tab.
package watchlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/reel/internal/core/logging"
	"github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/styles"
)

// Source fetches the watch list.
type Source interface {
	FetchWatchlist(ctx context.Context) ([]reviews.WatchlistEntry, error)
}

// LoadedMsg carries the outcome of one watch list fetch.
type LoadedMsg struct {
	ID      uint64
	Entries []reviews.WatchlistEntry
	Err     error
}

// Load returns a command that fetches the watch list for load generation id.
func Load(src Source, id uint64) tea.Cmd {
	return func() tea.Msg {
		ctx := logging.WithLoadID(context.Background(), id)
		entries, err := src.FetchWatchlist(ctx)
		return LoadedMsg{ID: id, Entries: entries, Err: err}
	}
}

// View is the Bubble Tea sub-model for the watch list tab. Its error state
// is independent of the reviews tab.
type View struct {
	src     Source
	entries []reviews.WatchlistEntry
	err     error
	loaded  bool
	loadID  uint64
	cursor  int
	offset  int
	width   int
	height  int
}

// New creates a watch list View.
func New(src Source) View {
	return View{src: src}
}

// Reload starts load generation id.
func (v View) Reload(id uint64) (View, tea.Cmd) {
	v.loadID = id
	if v.src == nil {
		return v, nil
	}
	return v, Load(v.src, id)
}

// Update handles messages for the watch list view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		return v.handleLoaded(msg), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			v.move(-1)
		case "down", "j":
			v.move(1)
		}
	}
	return v, nil
}

// Loaded reports whether the first load has completed.
func (v View) Loaded() bool {
	return v.loaded
}

// Entries returns the loaded entries.
func (v View) Entries() []reviews.WatchlistEntry {
	return v.entries
}

// Err returns the last load error.
func (v View) Err() error {
	return v.err
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clampOffset()
}

func (v View) handleLoaded(msg LoadedMsg) View {
	if msg.ID != v.loadID {
		return v
	}
	v.loaded = true
	if msg.Err != nil {
		v.err = msg.Err
		return v
	}
	v.err = nil
	v.entries = msg.Entries
	v.move(0)
	return v
}

func (v *View) move(delta int) {
	v.cursor = max(min(v.cursor+delta, len(v.entries)-1), 0)
	v.clampOffset()
}

func (v View) visibleLines() int {
	return max(v.height-2, 1)
}

func (v *View) clampOffset() {
	visible := v.visibleLines()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
}

// View renders the watch list.
func (v View) View() string {
	var b strings.Builder

	b.WriteString(styles.TableHeaderStyle.Render(fmt.Sprintf("%s Watch List (%d)", styles.IconEye, len(v.entries))))
	b.WriteString("\n")

	visible := v.visibleLines()
	rendered := 0
	switch {
	case v.err != nil:
		b.WriteString(styles.ErrorStyle.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
		rendered = 1
	case len(v.entries) == 0:
		b.WriteString(styles.HelpStyle.Render("  Nothing on the watch list"))
		b.WriteString("\n")
		rendered = 1
	default:
		end := min(v.offset+visible, len(v.entries))
		for i := v.offset; i < end; i++ {
			if i == v.cursor {
				b.WriteString(styles.TableCursorStyle.Render("┃ " + v.entries[i].Title))
			} else {
				b.WriteString(styles.TableRowStyle.Render("  " + v.entries[i].Title))
			}
			b.WriteString("\n")
			rendered++
		}
	}
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("↑/↓ navigate"))
	return b.String()
}
