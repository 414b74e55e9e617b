package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
)

// drawMenu draws the mode picker: a spaced title, one line per mode with a
// cursor, the selected mode's description and the control hint.
func drawMenu(s *core.Screen, m muncher.MenuFrame) {
	y := max((s.Height()-len(m.Items)-8)/2, 0)

	title := "  " + strings.Join(strings.Split(m.Title, ""), " ") + "  "
	s.DrawTextCenteredColored(y, title, core.ColorBrightYellow)
	y += 2

	s.DrawTextCentered(y, "Select a mode")
	y += 2

	for i, item := range m.Items {
		cursor := "  "
		color := core.ColorDefault
		if i == m.Selected {
			cursor = "> "
			color = core.ColorBrightCyan
		}
		s.DrawTextCenteredColored(y, fmt.Sprintf("%s%s", cursor, item), color)
		y++
	}

	y++
	s.DrawTextCenteredColored(y, m.Detail, core.ColorGray)
	y += 2
	s.DrawTextCenteredColored(y, m.Hint, core.ColorGray)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
