package model

import (
	"errors"
	"testing"

	"github.com/vovakirdan/threesus/internal/threes"
	"github.com/vovakirdan/threesus/internal/token"
)

func rows(lines ...string) [][]string {
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = token.SplitRow(l)
	}
	return out
}

func TestInitialize(t *testing.T) {
	m, err := Initialize(rows(
		"1,0,2,3",
		"0,0,0,0",
		"3,6,0,1",
		"0,0,0,48",
	))
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	expected := threes.Board{
		{1, 0, 2, 3},
		{0, 0, 0, 0},
		{3, 6, 0, 1},
		{0, 0, 0, 48},
	}
	if m.Board() != expected {
		t.Errorf("Board = %v, want %v", m.Board(), expected)
	}

	// Full deck minus two 1s, one 2 and two 3s; bonus tiles are not in the deck
	deck := m.Deck()
	if deck.Count(1) != 2 || deck.Count(2) != 3 || deck.Count(3) != 2 {
		t.Errorf("Deck = %s, want 2,3,2", deck)
	}
}

func TestInitializeRowErrors(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want error
	}{
		{"too short", "1,2,3", ErrRowWidth},
		{"too long", "1,2,3,0,0", ErrRowWidth},
		{"unknown tile", "1,2,5,0", ErrBadToken},
		{"bonus marker", "+,0,0,0", ErrBadToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			if err := m.SetRow(0, token.SplitRow("3,3,0,0")); err != nil {
				t.Fatalf("SetRow(0) failed: %v", err)
			}
			before := m

			err := m.SetRow(1, token.SplitRow(tt.row))
			if !errors.Is(err, tt.want) {
				t.Errorf("SetRow(1, %q) = %v, want %v", tt.row, err, tt.want)
			}
			if m != before {
				t.Error("Failed SetRow should not change the model")
			}
		})
	}
}

func TestSetRowIndex(t *testing.T) {
	m := New()
	if err := m.SetRow(threes.BoardSize, token.SplitRow("0,0,0,0")); !errors.Is(err, ErrRowIndex) {
		t.Errorf("SetRow out of range = %v, want ErrRowIndex", err)
	}
}

func TestSetRowReplacesRow(t *testing.T) {
	m := New()
	_ = m.SetRow(0, token.SplitRow("1,1,0,0"))
	_ = m.SetRow(0, token.SplitRow("2,0,0,0"))

	if m.Deck().Count(1) != threes.CardsPerRank {
		t.Errorf("Replaced 1s should return to the deck, count = %d", m.Deck().Count(1))
	}
	if m.Deck().Count(2) != threes.CardsPerRank-1 {
		t.Errorf("Count(2) = %d, want %d", m.Deck().Count(2), threes.CardsPerRank-1)
	}
}

func TestInitializeMidGameThrees(t *testing.T) {
	m, err := Initialize(rows(
		"3,3,3,0",
		"3,3,3,0",
		"0,0,0,0",
		"0,0,0,0",
	))
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	// Four 3s empty the first set, the fifth and sixth come from a new one
	if got := m.Deck().Count(3); got != threes.CardsPerRank-2 {
		t.Errorf("Count(3) = %d, want %d", got, threes.CardsPerRank-2)
	}
}

func TestShiftIllegal(t *testing.T) {
	m, _ := Initialize(rows(
		"1,0,0,0",
		"0,0,0,0",
		"0,0,0,0",
		"0,0,0,0",
	))
	before := m

	if cells := m.Shift(threes.DirLeft); len(cells) != 0 {
		t.Errorf("Shift(left) = %v, want no candidates", cells)
	}
	if m != before {
		t.Error("Illegal shift should not change the model")
	}

	cells := m.Shift(threes.DirRight)
	if len(cells) != 1 || cells[0] != (threes.Cell{X: 0, Y: 0}) {
		t.Errorf("Shift(right) = %v, want [(0,0)]", cells)
	}
	if m.Board()[0][1] != 1 {
		t.Errorf("Tile should have moved one step right, board %v", m.Board())
	}
}

func TestPlace(t *testing.T) {
	m := New()

	if err := m.Place(threes.Cell{X: 1, Y: 2}, 2); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if m.Board()[2][1] != 2 {
		t.Errorf("Board[2][1] = %d, want 2", m.Board()[2][1])
	}
	if m.Deck().Count(2) != threes.CardsPerRank-1 {
		t.Errorf("Count(2) = %d, want %d", m.Deck().Count(2), threes.CardsPerRank-1)
	}

	if err := m.Place(threes.Cell{X: 1, Y: 2}, 1); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Place on occupied cell = %v, want ErrCellOccupied", err)
	}
	if err := m.Place(threes.Cell{X: 4, Y: 0}, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Place out of bounds = %v, want ErrOutOfBounds", err)
	}
	if err := m.Place(threes.Cell{X: 0, Y: 0}, 5); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("Place rank 5 = %v, want ErrInvalidRank", err)
	}
}

func TestPlaceExhaustedRank(t *testing.T) {
	m := New()
	for x := range threes.CardsPerRank {
		if err := m.Place(threes.Cell{X: x, Y: 0}, 1); err != nil {
			t.Fatalf("Place #%d failed: %v", x, err)
		}
	}
	before := m

	err := m.Place(threes.Cell{X: 0, Y: 1}, 1)
	if !errors.Is(err, threes.ErrRankExhausted) {
		t.Errorf("Place with no 1s left = %v, want ErrRankExhausted", err)
	}
	if m != before {
		t.Error("Failed Place should not change the model")
	}
}

func TestEnsureCardStartsNewCycle(t *testing.T) {
	m := New()
	for x := range threes.CardsPerRank {
		if err := m.Place(threes.Cell{X: x, Y: 0}, 1); err != nil {
			t.Fatalf("Place #%d failed: %v", x, err)
		}
	}

	if m.EnsureCard(2) {
		t.Error("EnsureCard(2) refilled a deck that still holds 2s")
	}
	if m.EnsureCard(threes.Rank(12)) {
		t.Error("EnsureCard(12) refilled the deck for a bonus rank")
	}
	if !m.EnsureCard(1) {
		t.Fatal("EnsureCard(1) should refill a deck without 1s")
	}
	if err := m.Place(threes.Cell{X: 0, Y: 1}, 1); err != nil {
		t.Fatalf("Place after EnsureCard failed: %v", err)
	}

	want, _ := threes.DeckOf(threes.CardsPerRank-1, threes.CardsPerRank, threes.CardsPerRank)
	if m.Deck() != want {
		t.Errorf("Deck() = %v, want %v", m.Deck(), want)
	}
}

func TestSetRowReenteredAfterRefill(t *testing.T) {
	m := New()
	if err := m.SetRow(0, token.SplitRow("1,1,1,1")); err != nil {
		t.Fatalf("SetRow(0) failed: %v", err)
	}
	if err := m.SetRow(1, token.SplitRow("1,0,0,0")); err != nil {
		t.Fatalf("SetRow(1) failed: %v", err)
	}
	if got := m.Deck().Count(1); got != threes.CardsPerRank-1 {
		t.Fatalf("Count(1) after new cycle = %d, want %d", got, threes.CardsPerRank-1)
	}

	// Clearing the first row returns its 1s up to a full set
	if err := m.SetRow(0, token.SplitRow("0,0,0,0")); err != nil {
		t.Fatalf("SetRow(0) re-entry failed: %v", err)
	}
	if got := m.Deck().Count(1); got != threes.CardsPerRank {
		t.Errorf("Count(1) = %d, want %d", got, threes.CardsPerRank)
	}
}

func TestModelCopyIsIndependent(t *testing.T) {
	m := New()
	working := m
	_ = working.Place(threes.Cell{X: 0, Y: 0}, 3)

	if m.Board()[0][0] != threes.Empty {
		t.Error("Placing on a copy should not touch the original")
	}
	if m.Deck() != threes.NewDeck() {
		t.Error("Original deck should still be full")
	}
}

func TestTotalScore(t *testing.T) {
	m, _ := Initialize(rows(
		"3,6,0,0",
		"0,0,0,0",
		"0,0,0,0",
		"0,0,0,12",
	))

	if m.TotalScore() != 3+9+27 {
		t.Errorf("TotalScore = %d, want 39", m.TotalScore())
	}
	if m.MaxRank() != 12 {
		t.Errorf("MaxRank = %d, want 12", m.MaxRank())
	}
}
