// Package model mirrors the real game: the board the player sees and the
// cards still left in the deck.
package model

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/threesus/internal/threes"
	"github.com/vovakirdan/threesus/internal/token"
)

var (
	ErrRowWidth     = errors.New("model: invalid length of entered row")
	ErrRowIndex     = errors.New("model: row index out of range")
	ErrBadToken     = errors.New("model: unrecognized tile")
	ErrCellOccupied = errors.New("model: cell already occupied")
	ErrOutOfBounds  = errors.New("model: cell out of bounds")
	ErrInvalidRank  = errors.New("model: invalid tile rank")
)

// Model holds a board and its deck. It contains only arrays, so a plain
// assignment produces an independent copy.
type Model struct {
	board threes.Board
	deck  threes.Deck
}

// New returns an empty board with a full deck.
func New() Model {
	return Model{deck: threes.NewDeck()}
}

// Initialize builds a model from one token slice per board row.
func Initialize(rows [][]string) (Model, error) {
	m := New()
	if len(rows) != threes.BoardSize {
		return m, fmt.Errorf("model: got %d rows, want %d", len(rows), threes.BoardSize)
	}
	for y, row := range rows {
		if err := m.SetRow(y, row); err != nil {
			return m, fmt.Errorf("row %d: %w", y, err)
		}
	}
	return m, nil
}

// SetRow decodes one row of the initial board and removes its tiles from the
// deck. On error nothing is changed. A rank the deck has run out of starts a
// new deck cycle so mid-game boards can be entered.
func (m *Model) SetRow(y int, tokens []string) error {
	if y < 0 || y >= threes.BoardSize {
		return fmt.Errorf("%w: %d", ErrRowIndex, y)
	}
	if len(tokens) != threes.BoardSize {
		return fmt.Errorf("%w: got %d values, want %d", ErrRowWidth, len(tokens), threes.BoardSize)
	}

	var row [threes.BoardSize]threes.Rank
	for x, tok := range tokens {
		r, ok := token.DecodeBoard(tok)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		row[x] = r
	}

	deck := m.deck
	for _, r := range m.board[y] {
		// A full rank already holds the tile being replaced
		if err := deck.Add(r); err != nil && !errors.Is(err, threes.ErrRankFull) {
			return err
		}
	}
	for _, r := range row {
		if r == threes.Empty {
			continue
		}
		if !deck.Has(r) {
			deck.Refill()
		}
		if err := deck.Remove(r); err != nil {
			return err
		}
	}

	m.board[y] = row
	m.deck = deck
	return nil
}

// Board returns a copy of the board.
func (m Model) Board() threes.Board {
	return m.board
}

// Deck returns a copy of the deck.
func (m Model) Deck() threes.Deck {
	return m.deck
}

// Shift slides the board in dir and returns the cells where the new tile may
// have been inserted. An empty result means the swipe was illegal and the
// board is unchanged.
func (m *Model) Shift(dir threes.Direction) []threes.Cell {
	board, cells := threes.Shift(m.board, dir)
	if len(cells) > 0 {
		m.board = board
	}
	return cells
}

// EnsureCard starts a new deck cycle when the deck has run out of the basic
// rank r, so that a card of rank r can be placed. It reports whether the
// deck was refilled.
func (m *Model) EnsureCard(r threes.Rank) bool {
	if m.deck.Has(r) {
		return false
	}
	m.deck.Refill()
	return true
}

// Place puts a tile of rank r at c and takes it out of the deck.
func (m *Model) Place(c threes.Cell, r threes.Rank) error {
	if !c.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !r.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRank, r)
	}
	if m.board.At(c) != threes.Empty {
		return fmt.Errorf("%w: %v", ErrCellOccupied, c)
	}
	if err := m.deck.Remove(r); err != nil {
		return err
	}
	m.board[c.Y][c.X] = r
	return nil
}

// TotalScore returns the score of the current board.
func (m Model) TotalScore() int {
	return threes.TotalScore(m.board)
}

// MaxRank returns the highest tile on the board.
func (m Model) MaxRank() threes.Rank {
	return threes.MaxRank(m.board)
}
