package search

import (
	"math"

	"github.com/vovakirdan/threesus/internal/threes"
)

// Evaluator scores a board; higher is better.
type Evaluator func(b threes.Board) float64

// Openness weights.
const (
	weightEmpty    = 10.0
	weightMerge    = 5.0
	weightTrapped  = 4.0
	weightMonotone = 1.5
	weightScore    = 2.0
)

// Openness prefers boards with room to move: empty cells and adjacent
// mergeable pairs count for, small tiles boxed in by unmergeable neighbours
// and zig-zagging rows count against. Total score breaks ties.
func Openness(b threes.Board) float64 {
	var empty, merges, trapped, breaks float64

	for y := range threes.BoardSize {
		for x := range threes.BoardSize {
			r := b[y][x]
			if r == threes.Empty {
				empty++
				continue
			}
			if x+1 < threes.BoardSize && threes.CanMerge(r, b[y][x+1]) {
				merges++
			}
			if y+1 < threes.BoardSize && threes.CanMerge(r, b[y+1][x]) {
				merges++
			}
			if r.IsBasic() && r != 3 && isTrapped(b, x, y) {
				trapped++
			}
		}
	}

	for i := range threes.BoardSize {
		var row, col [threes.BoardSize]threes.Rank
		for j := range threes.BoardSize {
			row[j] = b[i][j]
			col[j] = b[j][i]
		}
		breaks += monotonicBreaks(row) + monotonicBreaks(col)
	}

	score := math.Log2(float64(threes.TotalScore(b)) + 1)

	return weightEmpty*empty +
		weightMerge*merges -
		weightTrapped*trapped -
		weightMonotone*breaks +
		weightScore*score
}

// isTrapped reports whether the tile at (x, y) has no empty or mergeable
// neighbour.
func isTrapped(b threes.Board, x, y int) bool {
	r := b[y][x]
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		c := threes.Cell{X: x + d[0], Y: y + d[1]}
		if !c.InBounds() {
			continue
		}
		n := b.At(c)
		if n == threes.Empty || threes.CanMerge(r, n) {
			return false
		}
	}
	return true
}

// monotonicBreaks counts direction changes among the tiles of a line.
func monotonicBreaks(l [threes.BoardSize]threes.Rank) float64 {
	breaks := 0.0
	trend := 0
	var prev threes.Rank
	for _, r := range l {
		if r == threes.Empty {
			continue
		}
		if prev != threes.Empty && r != prev {
			t := 1
			if r < prev {
				t = -1
			}
			if trend != 0 && t != trend {
				breaks++
			}
			trend = t
		}
		prev = r
	}
	return breaks
}
