package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("New screen should be filled with spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 2, Cell{Rune: 'a', Color: ColorYellow})
	got := s.GetCell(1, 2)
	if got.Rune != 'a' || got.Color != ColorYellow {
		t.Errorf("GetCell(1, 2) = %+v, expected yellow 'a'", got)
	}

	// Out of bounds should be silent
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetCell(p[0], p[1], Cell{Rune: 'X'})
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' {
			t.Errorf("Out of bounds GetCell(%d, %d) = %q, want space", p[0], p[1], got.Rune)
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('.', ColorGray)

	for y := range 4 {
		for x := range 4 {
			if c := s.GetCell(x, y); c.Rune != '.' || c.Color != ColorGray {
				t.Errorf("After Fill, expected gray '.' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('.', ColorDefault)
	s.SetCell(0, 0, Cell{Rune: 'a'})
	s.SetCell(3, 2, Cell{Rune: 'b', Color: ColorRed})

	result := s.String()
	expected := "a...\n....\n...b"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}
