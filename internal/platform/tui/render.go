package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
}

// blackBackground is laid under every cell of a black end screen.
var blackBackground = lipgloss.NewStyle().Background(lipgloss.Color("0"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, lipgloss.NewStyle())
}

// renderScreen renders s with every run inheriting unset properties from base.
func renderScreen(s *core.Screen, base lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Inherit(base).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderFrame draws a session frame onto the screen and returns the styled
// terminal output.
func RenderFrame(s *core.Screen, f muncher.Frame) string {
	DrawFrame(s, f)
	if f.Black {
		return renderScreen(s, blackBackground)
	}
	return RenderScreen(s)
}

// DrawFrame draws a session frame onto the screen buffer.
// The HUD occupies the top rows followed by a separator; the arena is
// scaled into the remaining cells.
func DrawFrame(s *core.Screen, f muncher.Frame) {
	s.Clear()
	if f.Screen == muncher.ScreenMenu {
		drawMenu(s, f.Menu)
		return
	}

	for i, line := range f.HUD {
		s.DrawTextColored(1, i, line, core.ColorBrightWhite)
	}
	top := len(f.HUD)
	s.DrawHLine(0, top, s.Width(), '─')
	top++

	area := core.NewRect(0, top, s.Width(), s.Height()-top)
	if area.Empty() || f.Width <= 0 || f.Height <= 0 {
		return
	}
	for _, d := range f.Sprites {
		s.DrawRectColored(scaleRect(d.Rect, f.Width, f.Height, area), d.Glyph, d.Color)
	}

	if f.Overlay != "" {
		_, cy := area.Center()
		s.DrawTextCenteredColored(cy, " "+f.Overlay+" ", core.ColorBrightYellow)
	}
}

// scaleRect maps an arena rectangle onto the terminal cells of area.
// Every visible sprite covers at least one cell.
func scaleRect(r core.Rect, arenaW, arenaH int, area core.Rect) core.Rect {
	sx := float64(area.W) / float64(arenaW)
	sy := float64(area.H) / float64(arenaH)

	x0 := core.Floor(float64(r.X) * sx)
	y0 := core.Floor(float64(r.Y) * sy)
	x1 := max(int(math.Ceil(float64(r.Right())*sx)), x0+1)
	y1 := max(int(math.Ceil(float64(r.Bottom())*sy)), y0+1)

	return core.NewRect(area.X+x0, area.Y+y0, x1-x0, y1-y0).Clip(area)
}
