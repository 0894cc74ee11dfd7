// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/reel/internal/core/reviews"
	"github.com/colonyops/reel/internal/core/theme"
)

// CurrentTheme is the theme the global styles were last built from.
var CurrentTheme theme.Theme

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Tabs.
	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
	TabFadingStyle   lipgloss.Style

	// Review table.
	TableHeaderStyle  lipgloss.Style
	TableRowStyle     lipgloss.Style
	TableCursorStyle  lipgloss.Style
	RatingStyle       lipgloss.Style
	RatingAbsentStyle lipgloss.Style
	RecentTitleStyle  lipgloss.Style
	StatusBarStyle    lipgloss.Style
	HelpStyle         lipgloss.Style

	// Coverage colors mark which reviewers wrote notes for a title.
	CoverageBothStyle      lipgloss.Style
	CoveragePrimaryStyle   lipgloss.Style
	CoverageSecondaryStyle lipgloss.Style
	CoverageNoneStyle      lipgloss.Style

	// Detail modal.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	// Search input.
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
)

// Apply builds the global styles for t.
func Apply(t theme.Theme) {
	CurrentTheme = t
	SetTheme(PaletteFor(t))
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true).
		Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	TabFadingStyle = lipgloss.NewStyle().
		Foreground(ColorSurface).
		Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TableRowStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TableCursorStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground).
		Bold(true)
	RatingStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	RatingAbsentStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	RecentTitleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	CoverageBothStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	CoveragePrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	CoverageSecondaryStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	CoverageNoneStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
}

// CoverageStyle returns the style that colors a title by review coverage.
func CoverageStyle(c reviews.Coverage) lipgloss.Style {
	switch c {
	case reviews.CoverageBoth:
		return CoverageBothStyle
	case reviews.CoveragePrimary:
		return CoveragePrimaryStyle
	case reviews.CoverageSecondary:
		return CoverageSecondaryStyle
	default:
		return CoverageNoneStyle
	}
}

// Rating renders r with the absent style when no rating was given.
func Rating(r reviews.Rating) string {
	if !r.Present {
		return RatingAbsentStyle.Render(r.String())
	}
	return RatingStyle.Render(r.String())
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	Apply(theme.Default)
}
