package reviews

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/reel/internal/core/logging"
	corereviews "github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/styles"
)

const (
	ratingWidth = 8
	minTitleW   = 16
	cursorMark  = "┃ "
)

// Source fetches the reviews collection.
type Source interface {
	FetchReviews(ctx context.Context) (corereviews.Collection, error)
}

// LoadedMsg carries the outcome of one reviews fetch. ID identifies the
// load generation that produced it.
type LoadedMsg struct {
	ID         uint64
	Collection corereviews.Collection
	Err        error
}

// Load returns a command that fetches the collection for load generation id.
func Load(src Source, id uint64) tea.Cmd {
	return func() tea.Msg {
		ctx := logging.WithLoadID(context.Background(), id)
		col, err := src.FetchReviews(ctx)
		return LoadedMsg{ID: id, Collection: col, Err: err}
	}
}

// View is the Bubble Tea sub-model for the reviews tab.
type View struct {
	ctrl   *Controller
	src    Source
	names  Reviewers
	search textinput.Model
	detail *DetailModal
	loadID uint64
	width  int
	height int
}

// New creates a reviews View.
func New(src Source, opts corereviews.PageOptions, names Reviewers) View {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Prompt = ""
	ti.SetWidth(32)

	return View{
		ctrl:   NewController(opts),
		src:    src,
		names:  names,
		search: ti,
	}
}

// Reload starts load generation id. Responses from older generations are
// dropped when they arrive.
func (v View) Reload(id uint64) (View, tea.Cmd) {
	v.loadID = id
	if v.src == nil {
		return v, nil
	}
	return v, Load(v.src, id)
}

// Update handles messages for the reviews view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		return v.handleLoaded(msg), nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

// View renders the reviews view.
func (v View) View() string {
	if err := v.ctrl.Err(); err != nil {
		return styles.ErrorStyle.Render("Error: " + err.Error())
	}
	return v.renderTable()
}

// Controller exposes the query controller.
func (v View) Controller() *Controller {
	return v.ctrl
}

// Loaded reports whether the first load has completed.
func (v View) Loaded() bool {
	return v.ctrl.Loaded()
}

// HasEditorFocus returns true while the search input is focused.
func (v View) HasEditorFocus() bool {
	return v.search.Focused()
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Overlay renders the detail modal over the given background, if open.
func (v View) Overlay(background string, width, height int) string {
	if v.detail == nil {
		return background
	}
	return v.detail.Overlay(background, width, height)
}

// IsDetailOpen returns true when the detail modal is open.
func (v View) IsDetailOpen() bool {
	return v.detail != nil
}

func (v View) handleLoaded(msg LoadedMsg) View {
	if msg.ID != v.loadID {
		return v
	}
	if msg.Err != nil {
		v.ctrl.SetError(msg.Err)
		v.detail = nil
		return v
	}
	v.ctrl.SetCollection(msg.Collection)
	return v
}

func (v View) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	if v.detail != nil {
		return v.handleDetailKey(msg)
	}
	if v.search.Focused() {
		return v.handleSearchKey(msg)
	}
	return v.handleNormalKey(msg)
}

func (v View) handleDetailKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		v.detail = nil
	case "up", "k":
		v.detail.ScrollUp()
	case "down", "j":
		v.detail.ScrollDown()
	default:
		v.detail.UpdateViewport(msg)
	}
	return v, nil
}

func (v View) handleSearchKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.search.SetValue("")
		v.search.Blur()
		v.ctrl.SetSearch("")
		return v, nil
	case "enter":
		v.search.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.ctrl.SetSearch(v.search.Value())
	return v, cmd
}

func (v View) handleNormalKey(msg tea.KeyMsg) (View, tea.Cmd) {
	if v.ctrl.Err() != nil {
		return v, nil
	}

	switch msg.String() {
	case "/":
		cmd := v.search.Focus()
		return v, cmd
	case "f":
		v.ctrl.CycleCategory()
	case "1":
		v.ctrl.ToggleSort(corereviews.SortTitle)
	case "2":
		v.ctrl.ToggleSort(corereviews.SortPrimaryRating)
	case "3":
		v.ctrl.ToggleSort(corereviews.SortSecondaryRating)
	case "right", "l":
		v.ctrl.NextPage()
	case "left", "h":
		v.ctrl.PrevPage()
	case "up", "k":
		v.ctrl.Move(-1)
	case "down", "j":
		v.ctrl.Move(1)
	case "enter":
		if rec, ok := v.ctrl.Selected(); ok {
			modal := NewDetailModal(rec, v.names, v.width, v.height)
			v.detail = &modal
		}
	}
	return v, nil
}

// reservedLines counts every line the table does not own.
func (v View) reservedLines(vm ViewModel) int {
	reserved := 5 // controls, header, page line, color key, help
	if len(vm.Recent) > 0 {
		reserved++
	}
	return reserved
}

func (v View) visibleRows(vm ViewModel) int {
	return max(v.height-v.reservedLines(vm), 1)
}

func (v View) renderTable() string {
	vm := v.ctrl.ViewModel()
	var b strings.Builder

	b.WriteString(v.renderControls(vm))
	b.WriteString("\n")

	if len(vm.Recent) > 0 {
		b.WriteString(renderRecent(vm.Recent, v.width))
		b.WriteString("\n")
	}

	titleW := max(v.width-2-2*(ratingWidth+1), minTitleW)
	header := fmt.Sprintf("%-*s %*s %*s",
		titleW, "Title",
		ratingWidth, truncate(v.names.Primary, ratingWidth),
		ratingWidth, truncate(v.names.Secondary, ratingWidth))
	b.WriteString("  ")
	b.WriteString(styles.TableHeaderStyle.Render(header))
	b.WriteString("\n")

	visible := v.visibleRows(vm)
	rendered := 0
	if len(vm.Items) == 0 {
		b.WriteString(styles.HelpStyle.Render("  " + vm.EmptyText))
		b.WriteString("\n")
		rendered = 1
	} else {
		cursor := v.ctrl.Cursor()
		start := max(cursor-visible+1, 0)
		end := min(start+visible, len(vm.Items))
		for i := start; i < end; i++ {
			b.WriteString(renderRow(vm.Items[i], i == cursor, titleW))
			b.WriteString("\n")
			rendered++
		}
	}
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(styles.StatusBarStyle.Render(pageLine(vm)))
	b.WriteString("\n")
	b.WriteString(v.renderColorKey())
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(v.helpLine()))

	return b.String()
}

func (v View) renderControls(vm ViewModel) string {
	field := styles.FormFieldStyle
	if v.search.Focused() {
		field = styles.FormFieldFocusedStyle
	}
	parts := []string{field.Render(v.search.View())}

	if !v.ctrl.opts.SearchOnly {
		parts = append(parts, styles.StatusBarStyle.Render("filter: ")+categoryLabel(vm.State.Category, v.names))
	}
	if vm.SortLabel != "" {
		parts = append(parts, styles.StatusBarStyle.Render("sort: ")+sortLabel(vm.State, v.names))
	}
	return strings.Join(parts, "   ")
}

func renderRecent(recent []corereviews.Record, width int) string {
	titles := make([]string, 0, len(recent))
	for _, r := range recent {
		titles = append(titles, styles.RecentTitleStyle.Render(r.Title))
	}
	line := styles.IconClock + " Recent: " + strings.Join(titles, " · ")
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

func renderRow(r corereviews.Record, selected bool, titleW int) string {
	title := fmt.Sprintf("%-*s", titleW, truncate(r.Title, titleW))
	title = styles.CoverageStyle(r.Coverage()).Render(title)

	primary := padLeft(styles.Rating(r.Primary.Rating), ratingWidth)
	secondary := padLeft(styles.Rating(r.Secondary.Rating), ratingWidth)
	line := title + " " + primary + " " + secondary

	if selected {
		return styles.TableCursorStyle.Render(cursorMark) + line
	}
	return "  " + line
}

func pageLine(vm ViewModel) string {
	return fmt.Sprintf("Page %d of %d (%d of %d reviews)",
		vm.Page.Page, vm.Page.TotalPages, vm.Page.Total, vm.Total)
}

func (v View) renderColorKey() string {
	return strings.Join([]string{
		"Key:",
		styles.CoveragePrimaryStyle.Render("■ " + v.names.Primary + "'s Review"),
		styles.CoverageSecondaryStyle.Render("■ " + v.names.Secondary + "'s Review"),
		styles.CoverageBothStyle.Render("■ Both Reviews"),
		styles.CoverageNoneStyle.Render("■ No Review"),
	}, "  ")
}

func (v View) helpLine() string {
	if v.search.Focused() {
		return "type to search • enter keep • esc clear"
	}
	parts := []string{"↑/↓ select", "enter detail", "/ search"}
	if !v.ctrl.opts.SearchOnly {
		parts = append(parts, "f filter")
	}
	parts = append(parts, "1/2/3 sort", "←/→ page")
	return strings.Join(parts, " • ")
}

func categoryLabel(c corereviews.Category, names Reviewers) string {
	switch c {
	case corereviews.CategoryWithAnyReview:
		return "With Reviews"
	case corereviews.CategoryWithoutAnyReview:
		return "Without Reviews"
	case corereviews.CategoryWithPrimaryReview:
		return names.Primary + "'s Reviews"
	case corereviews.CategoryWithSecondaryReview:
		return names.Secondary + "'s Reviews"
	default:
		return "All Movies"
	}
}

func sortLabel(s corereviews.QueryState, names Reviewers) string {
	var field string
	switch s.SortKey {
	case corereviews.SortPrimaryRating:
		field = names.Primary + "'s Ratings"
	case corereviews.SortSecondaryRating:
		field = names.Secondary + "'s Ratings"
	default:
		field = "Title"
	}
	return field + " " + s.Direction.Arrow()
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
