package core

import (
	"strings"
	"testing"
)

// rowText reads one screen row back as plain text.
func rowText(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorOrange)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorOrange {
		t.Errorf("GetCell(5, 5) = %+v, expected orange 'X'", cell)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorGreen)
	s.SetColored(100, 0, 'A', ColorGreen)
	s.SetColored(0, -1, 'A', ColorGreen)
	s.SetColored(0, 100, 'A', ColorGreen)

	if s.GetCell(-1, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(0, 3, 10, '#', ColorGreen)

	s.Clear()

	for x := 0; x < 10; x++ {
		if c := s.GetCell(x, 3); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("After Clear, expected blank at (%d, 3), got %+v", x, c)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorIvory)

	for i, ch := range "Hello" {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorIvory {
			t.Errorf("DrawText: expected ivory %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorIvory)
	if got := rowText(s, 0); !strings.HasSuffix(got, "He") {
		t.Errorf("Text should be clipped at right boundary, row is %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(21, 3)
	s.DrawTextCentered(10, 1, "GAME", ColorBrightWhite)

	if got := strings.TrimSpace(rowText(s, 1)); got != "GAME" {
		t.Errorf("row 1 = %q, expected GAME", got)
	}
	if s.GetCell(8, 1).Rune != 'G' {
		t.Errorf("centered text should start at column 8, row is %q", rowText(s, 1))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawHLine(-2, 1, 10, '-', ColorDim)

	if got := rowText(s, 1); got != "-----" {
		t.Errorf("row 1 = %q, expected a clipped full-width line", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(1, 1, 'X', ColorGreen)

	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Resize: got %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.GetCell(1, 1) != blank {
		t.Error("Resize should start from a blank buffer")
	}
}
