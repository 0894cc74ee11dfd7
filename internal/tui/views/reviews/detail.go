package reviews

import (
	"fmt"
	"regexp"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	corereviews "github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/styles"
)

const (
	detailMaxWidth  = 90
	detailMaxHeight = 30
	detailMargin    = 4
	detailChrome    = 6
	detailPadding   = 4

	noReviewText = "_No review yet._"
)

// DetailMarkdown renders a record as markdown. A reviewer section appears
// only when that reviewer wrote notes; the re-rating block appears only
// when a revised rating is present.
func DetailMarkdown(r corereviews.Record, names Reviewers) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)

	wrote := false
	for _, sec := range []struct {
		name string
		op   corereviews.Opinion
	}{
		{names.Primary, r.Primary},
		{names.Secondary, r.Secondary},
	} {
		if !sec.op.HasReview() {
			continue
		}
		wrote = true
		fmt.Fprintf(&b, "## %s's Rating: %s\n\n", sec.name, sec.op.Rating)
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(sec.op.Notes))
		if sec.op.RevisedRating.Present {
			fmt.Fprintf(&b, "### Re-rating: %s\n\n", sec.op.RevisedRating)
			if reason := strings.TrimSpace(sec.op.RevisionReason); reason != "" {
				fmt.Fprintf(&b, "%s\n\n", reason)
			}
		}
	}

	if !wrote {
		b.WriteString(noReviewText + "\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// RenderMarkdown renders md for the terminal with the active theme's
// glamour style. On renderer failure the raw markdown is returned.
func RenderMarkdown(md string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return md
	}

	content := strings.TrimSpace(rendered)
	content = stripLeadingDecorative(content)
	return stripTrailingDecorative(content)
}

// DetailModal shows one record's notes in a scrollable viewport.
type DetailModal struct {
	record   corereviews.Record
	viewport viewport.Model
}

// NewDetailModal creates a detail modal sized to the terminal.
func NewDetailModal(r corereviews.Record, names Reviewers, width, height int) DetailModal {
	modalWidth, modalHeight := detailSize(width, height)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-detailPadding),
		viewport.WithHeight(max(modalHeight-detailChrome, 1)),
	)
	vp.SetContent(RenderMarkdown(DetailMarkdown(r, names), modalWidth-detailPadding))

	return DetailModal{record: r, viewport: vp}
}

func detailSize(width, height int) (int, int) {
	return min(width-detailMargin, detailMaxWidth), min(height-detailMargin, detailMaxHeight)
}

// Record returns the record on display.
func (m DetailModal) Record() corereviews.Record {
	return m.record
}

// ScrollUp scrolls the viewport up.
func (m *DetailModal) ScrollUp() {
	m.viewport.ScrollUp(1)
}

// ScrollDown scrolls the viewport down.
func (m *DetailModal) ScrollDown() {
	m.viewport.ScrollDown(1)
}

// UpdateViewport forwards msg to the viewport for paging keys.
func (m *DetailModal) UpdateViewport(msg any) {
	m.viewport, _ = m.viewport.Update(msg)
}

// Overlay renders the modal centered over background.
func (m DetailModal) Overlay(background string, width, height int) string {
	modalWidth, modalHeight := detailSize(width, height)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.HelpStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(styles.IconFilm+" "+m.record.Title+scrollInfo),
		"",
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[↑/↓/j/k] scroll  [enter/esc] close"),
	)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(content)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)
	modalLayer.X((width - lipgloss.Width(modal)) / 2).Y((height - lipgloss.Height(modal)) / 2).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func isDecorativeLine(line string) bool {
	stripped := strings.TrimSpace(ansiPattern.ReplaceAllString(line, ""))
	if stripped == "" {
		return true
	}
	for _, r := range stripped {
		if r != '─' && r != '━' && r != '-' && r != '=' {
			return false
		}
	}
	return true
}

func stripLeadingDecorative(content string) string {
	lines := strings.Split(content, "\n")
	start := 0
	for start < len(lines) && isDecorativeLine(lines[start]) {
		start++
	}
	return strings.Join(lines[start:], "\n")
}

func stripTrailingDecorative(content string) string {
	lines := strings.Split(content, "\n")
	end := len(lines)
	for end > 0 && isDecorativeLine(lines[end-1]) {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
