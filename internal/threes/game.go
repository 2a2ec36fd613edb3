package threes

import (
	"fmt"
	"math/rand"
)

const (
	// InitialTiles is how many tiles a new game starts with.
	InitialTiles = 9

	// bonusOdds is the 1-in-N chance of a bonus tile once bonuses unlock.
	bonusOdds = 21

	// bonusUnlockRank is the highest tile needed before bonuses appear.
	bonusUnlockRank Rank = 48
)

// Game simulates a Threes device: it deals cards, picks the insertion lane
// and reveals only a hint for the upcoming tile.
type Game struct {
	rng   *rand.Rand
	board Board
	deck  Deck
	next  Rank
	moves int
}

// NewGame creates a game with a deterministic RNG.
func NewGame(seed int64) *Game {
	g := &Game{}
	g.Reset(seed)
	return g
}

// Reset initializes/restarts the game.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.board = Board{}
	g.deck = NewDeck()
	g.moves = 0

	// Spawn the opening tiles on distinct random cells
	for range InitialTiles {
		empty := EmptyCells(g.board)
		cell := empty[g.rng.Intn(len(empty))]
		r := g.deck.Pick(g.rng)
		_ = g.deck.Remove(r)
		g.board[cell.Y][cell.X] = r
	}

	g.dealNext()
}

// dealNext chooses the upcoming tile. Basic cards stay in the deck until
// they are placed, matching what the assistant's model tracks.
func (g *Game) dealNext() {
	maxRank := MaxRank(g.board)
	if maxRank >= bonusUnlockRank && g.rng.Intn(bonusOdds) == 0 {
		choices := BonusRanks(maxRank)
		g.next = choices[g.rng.Intn(len(choices))]
		return
	}
	g.next = g.deck.Pick(g.rng)
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Deck returns the undealt cards, including the upcoming one when basic.
func (g *Game) Deck() Deck {
	return g.deck
}

// Hint returns what the device shows about the upcoming tile.
func (g *Game) Hint() Hint {
	return HintFor(g.next)
}

// Moves returns the number of swipes played.
func (g *Game) Moves() int {
	return g.moves
}

// Score returns the current total score.
func (g *Game) Score() int {
	return TotalScore(g.board)
}

// IsOver returns true if no swipe is possible.
func (g *Game) IsOver() bool {
	return !CanMove(g.board)
}

// Move swipes in dir, drops the upcoming tile into a random candidate lane
// and deals the next one. It returns where the tile went and its rank.
func (g *Game) Move(dir Direction) (Cell, Rank, error) {
	shifted, cells := Shift(g.board, dir)
	if len(cells) == 0 {
		return Cell{}, Empty, fmt.Errorf("threes: swipe %s does not change the board", dir)
	}

	cell := cells[g.rng.Intn(len(cells))]
	placed := g.next
	if err := g.deck.Remove(placed); err != nil {
		return Cell{}, Empty, err
	}
	shifted[cell.Y][cell.X] = placed

	g.board = shifted
	g.moves++
	g.dealNext()
	return cell, placed, nil
}
