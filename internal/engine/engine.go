// Package engine defines the interface for decision engines.
package engine

import "github.com/vovakirdan/threesus/internal/threes"

// Engine recommends a swipe for a board.
type Engine interface {
	// Name returns a short identifier for logs and score records.
	Name() string

	// Recommend returns the best swipe for board given the undealt deck and
	// the hint for the upcoming tile. ok is false when no swipe is legal,
	// which ends the game. It must not modify its arguments and may block
	// for as long as the search takes.
	Recommend(board threes.Board, deck threes.Deck, hint threes.Hint) (dir threes.Direction, ok bool, err error)
}
