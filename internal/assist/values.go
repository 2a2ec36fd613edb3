package assist

import (
	"github.com/vovakirdan/threesus/internal/threes"
	"github.com/vovakirdan/threesus/internal/token"
)

// ResolveRank returns the concrete rank of the tile that was announced by
// hint. Basic hints are exact; a bonus hint asks the player for the value
// until one of the bonus ranks is entered.
func ResolveRank(con *Console, hint threes.Hint) (threes.Rank, error) {
	if r, ok := hint.Rank(); ok {
		return r, nil
	}

	for {
		answer, err := con.Prompt("!!! What is the value of the new card? ")
		if err != nil {
			return threes.Empty, err
		}
		if r, ok := token.DecodeBonus(answer); ok {
			return r, nil
		}
	}
}
