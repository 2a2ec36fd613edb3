package threes

// Direction represents a swipe direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in search order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a 4x4 grid indexed [y][x]. It is an array so assignment copies it.
type Board [BoardSize][BoardSize]Rank

// Cell addresses a board position.
type Cell struct {
	X, Y int
}

// InBounds reports whether c lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// At returns the rank at c.
func (b Board) At(c Cell) Rank {
	return b[c.Y][c.X]
}

// CanMerge reports whether a tile of rank src may slide onto dst.
// 1 and 2 combine into 3; equal ranks from 3 upwards double.
func CanMerge(dst, src Rank) bool {
	if dst == Empty || src == Empty {
		return false
	}
	if dst+src == 3 {
		return true
	}
	return dst == src && dst >= 3
}

type line [BoardSize]Rank

// shiftLine moves a line one step toward index 0. The first tile that can
// move does so and every tile behind it follows; each tile moves at most once.
func shiftLine(l line) (line, bool) {
	moved := false
	for i := 1; i < BoardSize; i++ {
		src := l[i]
		if src == Empty {
			continue
		}
		dst := l[i-1]
		switch {
		case dst == Empty:
			l[i-1] = src
		case CanMerge(dst, src):
			l[i-1] = dst + src
		default:
			continue
		}
		l[i] = Empty
		moved = true
	}
	return l, moved
}

// readLine extracts the i-th line for dir, ordered from the leading edge.
func (b Board) readLine(dir Direction, i int) line {
	var l line
	for j := range BoardSize {
		l[j] = b.At(lineCell(dir, i, j))
	}
	return l
}

func (b *Board) writeLine(dir Direction, i int, l line) {
	for j := range BoardSize {
		c := lineCell(dir, i, j)
		b[c.Y][c.X] = l[j]
	}
}

// lineCell maps (line index, position from the leading edge) to a cell.
func lineCell(dir Direction, i, j int) Cell {
	switch dir {
	case DirLeft:
		return Cell{X: j, Y: i}
	case DirRight:
		return Cell{X: BoardSize - 1 - j, Y: i}
	case DirUp:
		return Cell{X: i, Y: j}
	default:
		return Cell{X: i, Y: BoardSize - 1 - j}
	}
}

// Shift slides the board in dir and returns the new board together with the
// cells where the next tile may appear: the trailing cell of every line that
// moved, in line order. No candidates means the swipe is illegal and the
// returned board equals the input.
func Shift(b Board, dir Direction) (Board, []Cell) {
	var cells []Cell
	out := b
	for i := range BoardSize {
		l, moved := shiftLine(b.readLine(dir, i))
		if !moved {
			continue
		}
		out.writeLine(dir, i, l)
		cells = append(cells, lineCell(dir, i, BoardSize-1))
	}
	return out, cells
}

// CanShift reports whether dir changes the board.
func CanShift(b Board, dir Direction) bool {
	for i := range BoardSize {
		if _, moved := shiftLine(b.readLine(dir, i)); moved {
			return true
		}
	}
	return false
}

// CanMove returns true if any swipe is possible.
func CanMove(b Board) bool {
	for _, d := range Directions {
		if CanShift(b, d) {
			return true
		}
	}
	return false
}

// TotalScore sums the score of every tile on the board.
func TotalScore(b Board) int {
	total := 0
	for y := range BoardSize {
		for x := range BoardSize {
			total += TileScore(b[y][x])
		}
	}
	return total
}

// MaxRank returns the highest tile on the board.
func MaxRank(b Board) Rank {
	maxVal := Empty
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// EmptyCells returns coordinates of all empty cells in row order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == Empty {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}
