package threes

import "testing"

func TestNewGameDeterministic(t *testing.T) {
	g1 := NewGame(12345)
	g2 := NewGame(12345)

	if g1.Board() != g2.Board() {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Board(), g2.Board())
	}
	if g1.Hint() != g2.Hint() {
		t.Errorf("Same seed should produce same first hint: %s vs %s", g1.Hint(), g2.Hint())
	}
}

func TestNewGameOpening(t *testing.T) {
	g := NewGame(7)

	tiles := BoardSize*BoardSize - len(EmptyCells(g.Board()))
	if tiles != InitialTiles {
		t.Errorf("Opening board has %d tiles, want %d", tiles, InitialTiles)
	}

	// Nine of twelve cards dealt from the first deck
	if g.Deck().Total() != 3*CardsPerRank-InitialTiles {
		t.Errorf("Deck total = %d, want %d", g.Deck().Total(), 3*CardsPerRank-InitialTiles)
	}

	if g.Hint() == HintBonus {
		t.Error("Bonus tiles cannot appear before 48 is on the board")
	}
}

func TestGameMovePlacesInCandidateLane(t *testing.T) {
	g := NewGame(42)

	for _, dir := range Directions {
		before := g.Board()
		_, cells := Shift(before, dir)
		if len(cells) == 0 {
			if _, _, err := g.Move(dir); err == nil {
				t.Errorf("Move(%s) on a blocked board should fail", dir)
			}
			continue
		}

		hint := g.Hint()
		cell, rank, err := g.Move(dir)
		if err != nil {
			t.Fatalf("Move(%s) failed: %v", dir, err)
		}

		found := false
		for _, c := range cells {
			if c == cell {
				found = true
			}
		}
		if !found {
			t.Errorf("Tile placed at %v, not one of %v", cell, cells)
		}
		if HintFor(rank) != hint {
			t.Errorf("Placed rank %d does not match hint %s", rank, hint)
		}
		if g.Board().At(cell) != rank {
			t.Errorf("Board at %v = %d, want %d", cell, g.Board().At(cell), rank)
		}
		if g.Moves() != 1 {
			t.Errorf("Moves = %d, want 1", g.Moves())
		}
		return
	}
	t.Fatal("No legal opening move")
}

func TestGameRunsToCompletion(t *testing.T) {
	g := NewGame(99)

	for turn := 0; !g.IsOver(); turn++ {
		if turn > 10000 {
			t.Fatal("Game did not finish")
		}
		for _, dir := range Directions {
			if CanShift(g.Board(), dir) {
				if _, _, err := g.Move(dir); err != nil {
					t.Fatalf("Move(%s) failed: %v", dir, err)
				}
				break
			}
		}
	}

	if g.Score() != TotalScore(g.Board()) {
		t.Errorf("Score = %d, want %d", g.Score(), TotalScore(g.Board()))
	}
}
