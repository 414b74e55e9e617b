package core

import (
	"strings"
	"testing"
)

// rowOf reads row y back through GetCell.
func rowOf(s *Screen, y int) string {
	var sb strings.Builder
	for x := range s.Width() {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}

	if neg := NewScreen(-3, -1); neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size gave %dx%d, expected 0x0", neg.Width(), neg.Height())
	}
}

func TestScreenGetCellOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillColored('#', ColorRed)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenSetColoredClips(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetColored(2, 1, '@', ColorGreen)
	s.SetColored(-1, 1, 'x', ColorGreen)
	s.SetColored(5, 1, 'x', ColorGreen)
	s.SetColored(2, 3, 'x', ColorGreen)

	if c := s.GetCell(2, 1); c.Rune != '@' || c.Color != ColorGreen {
		t.Errorf("cell (2, 1) = %+v, expected green @", c)
	}
	if got := s.String(); strings.Count(got, "x") != 0 {
		t.Errorf("out-of-bounds writes leaked into the buffer:\n%s", got)
	}
}

func TestScreenFillColoredAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillColored('.', ColorGray)
	if got := s.String(); got != "...\n..." {
		t.Errorf("String() = %q after fill", got)
	}
	if c := s.GetCell(1, 1); c.Color != ColorGray {
		t.Errorf("fill color = %v, expected gray", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("cell after Clear = %+v, expected blank", c)
	}
}

func TestScreenDrawRectColoredClipsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		rows []string
	}{
		{"inside", Rect{X: 1, Y: 1, W: 2, H: 1}, []string{"    ", " ## ", "    "}},
		{"past right and bottom", Rect{X: 2, Y: 1, W: 5, H: 5}, []string{"    ", "  ##", "  ##"}},
		{"past left and top", Rect{X: -2, Y: -2, W: 3, H: 3}, []string{"#   ", "    ", "    "}},
		{"fully outside", Rect{X: 10, Y: 10, W: 2, H: 2}, []string{"    ", "    ", "    "}},
		{"empty", Rect{X: 1, Y: 1}, []string{"    ", "    ", "    "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(4, 3)
			s.DrawRectColored(tt.rect, '#', ColorBrightGreen)
			for y, want := range tt.rows {
				if got := rowOf(s, y); got != want {
					t.Errorf("row %d = %q, expected %q", y, got, want)
				}
			}
		})
	}
}

func TestScreenDrawTextCenteredColored(t *testing.T) {
	s := NewScreen(11, 2)
	s.DrawTextCenteredColored(0, "PAUSED", ColorBrightYellow)
	if got := rowOf(s, 0); got != "  PAUSED   " {
		t.Errorf("row 0 = %q", got)
	}
	if c := s.GetCell(2, 0); c.Color != ColorBrightYellow {
		t.Errorf("text color = %v, expected bright yellow", c.Color)
	}

	// Wider than the screen: both ends are cut off
	s.DrawTextCenteredColored(1, "ABCDEFGHIJKLM", ColorDefault)
	if got := rowOf(s, 1); got != "BCDEFGHIJKL" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestScreenDrawTextColoredMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(4, 0, "─é!", ColorCyan)
	if got := rowOf(s, 0); got != "    ─é" {
		t.Errorf("row = %q", got)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 10, '─')
	if got := rowOf(s, 1); got != " ─────" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "Hello", ColorRed)
	s.DrawTextColored(0, 2, "World", ColorRed)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "Hel\n   " {
		t.Errorf("shrunk screen = %q", got)
	}
	if c := s.GetCell(0, 0); c.Color != ColorRed {
		t.Errorf("color lost on resize: %+v", c)
	}

	s.Resize(4, 3)
	if got := s.String(); got != "Hel \n    \n    " {
		t.Errorf("grown screen = %q", got)
	}

	// Same size keeps content untouched
	s.Resize(4, 3)
	if got := rowOf(s, 0); got != "Hel " {
		t.Errorf("row 0 after no-op resize = %q", got)
	}
}
