// Package threes implements the board, deck and scoring rules of the Threes
// puzzle game. It has no I/O and no external dependencies so the assistant,
// the search engine and the simulator can share it.
package threes

import "strconv"

// Rank is the face value of a tile. Empty marks a free cell.
type Rank int

const Empty Rank = 0

// bonusRanks lists every rank above 3, in ascending order.
var bonusRanks = []Rank{6, 12, 24, 48, 96, 192, 384, 768, 1536, 3072, 6144}

// IsBasic reports whether r is 1, 2 or 3.
func (r Rank) IsBasic() bool {
	return r >= 1 && r <= 3
}

// IsBonus reports whether r is one of the doubling ranks above 3.
func (r Rank) IsBonus() bool {
	for _, b := range bonusRanks {
		if r == b {
			return true
		}
	}
	return false
}

// Valid reports whether r can sit on a board.
func (r Rank) Valid() bool {
	return r.IsBasic() || r.IsBonus()
}

func (r Rank) String() string {
	if r == Empty {
		return " "
	}
	return strconv.Itoa(int(r))
}

// TileScore returns the points a single tile is worth: nothing for 1 and 2,
// and 3^(log2(r/3)+1) from 3 upwards.
func TileScore(r Rank) int {
	if r < 3 {
		return 0
	}
	score := 3
	for v := r / 3; v > 1; v /= 2 {
		score *= 3
	}
	return score
}

// BonusRanks returns the bonus ranks the game can deal when the highest
// tile on the board is maxRank: 6 up to maxRank/8. It is empty below 48.
func BonusRanks(maxRank Rank) []Rank {
	var out []Rank
	for _, b := range bonusRanks {
		if b > maxRank/8 {
			break
		}
		out = append(out, b)
	}
	return out
}

// Hint is what the game discloses about the next tile before it lands.
// Every rank above 3 collapses into HintBonus.
type Hint int

const (
	HintOne Hint = iota
	HintTwo
	HintThree
	HintBonus
)

// String returns the single-character form used on the console.
func (h Hint) String() string {
	switch h {
	case HintOne:
		return "1"
	case HintTwo:
		return "2"
	case HintThree:
		return "3"
	case HintBonus:
		return "+"
	default:
		return "?"
	}
}

// Rank returns the concrete rank for a basic hint. Bonus hints have no
// concrete rank and return false.
func (h Hint) Rank() (Rank, bool) {
	if h >= HintOne && h <= HintThree {
		return Rank(h) + 1, true
	}
	return Empty, false
}

// HintFor returns the hint the game would show before dealing r.
func HintFor(r Rank) Hint {
	switch r {
	case 1:
		return HintOne
	case 2:
		return HintTwo
	case 3:
		return HintThree
	default:
		return HintBonus
	}
}
