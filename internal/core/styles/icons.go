package styles

import "github.com/colonyops/reel/internal/core/theme"

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconFilm  = ""
	IconEye   = ""
	IconStar  = ""
	IconMail  = ""
	IconSun   = ""
	IconMoon  = ""
	IconClock = ""
)

// ThemeIcon returns the icon for t.
func ThemeIcon(t theme.Theme) string {
	if t == theme.Light {
		return IconSun
	}
	return IconMoon
}
