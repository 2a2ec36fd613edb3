package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/threesus/internal/threes"
	"github.com/vovakirdan/threesus/internal/token"
)

// Wire format, one command per line, GTP style:
//
//	recommend <16 comma-separated ranks> <ones>,<twos>,<threes> <hint>
//	name
//	quit
//
// Responses start with "= " on success or "? " on failure and end with an
// empty line. A recommendation is answered with a direction or NONE.

const (
	CmdRecommend = "recommend"
	CmdName      = "name"
	CmdQuit      = "quit"

	noMove = "NONE"
)

// ErrProtocol marks malformed requests or responses.
var ErrProtocol = errors.New("engine: protocol error")

// Request is a decoded recommend command.
type Request struct {
	Board threes.Board
	Deck  threes.Deck
	Hint  threes.Hint
}

// EncodeRequest formats a recommend command without the trailing newline.
func EncodeRequest(req Request) string {
	cells := make([]string, 0, threes.BoardSize*threes.BoardSize)
	for y := range threes.BoardSize {
		for x := range threes.BoardSize {
			cells = append(cells, strconv.Itoa(int(req.Board[y][x])))
		}
	}
	return fmt.Sprintf("%s %s %s %s", CmdRecommend, strings.Join(cells, ","), req.Deck, req.Hint)
}

// DecodeRequest parses the arguments of a recommend command.
func DecodeRequest(args []string) (Request, error) {
	var req Request
	if len(args) != 3 {
		return req, fmt.Errorf("%w: recommend takes 3 arguments, got %d", ErrProtocol, len(args))
	}

	cells := strings.Split(args[0], ",")
	if len(cells) != threes.BoardSize*threes.BoardSize {
		return req, fmt.Errorf("%w: board has %d cells", ErrProtocol, len(cells))
	}
	for i, c := range cells {
		r, ok := token.DecodeBoard(c)
		if !ok {
			return req, fmt.Errorf("%w: bad tile %q", ErrProtocol, c)
		}
		req.Board[i/threes.BoardSize][i%threes.BoardSize] = r
	}

	counts := strings.Split(args[1], ",")
	if len(counts) != 3 {
		return req, fmt.Errorf("%w: deck needs 3 counts", ErrProtocol)
	}
	var n [3]int
	for i, c := range counts {
		v, err := strconv.Atoi(c)
		if err != nil {
			return req, fmt.Errorf("%w: bad deck count %q", ErrProtocol, c)
		}
		n[i] = v
	}
	deck, err := threes.DeckOf(n[0], n[1], n[2])
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	req.Deck = deck

	hint, ok := token.DecodeReveal(args[2])
	if !ok {
		return req, fmt.Errorf("%w: bad hint %q", ErrProtocol, args[2])
	}
	req.Hint = hint
	return req, nil
}

// EncodeMove formats the body of a recommendation.
func EncodeMove(dir threes.Direction, ok bool) string {
	if !ok {
		return noMove
	}
	return dir.String()
}

// DecodeMove parses the body of a recommendation.
func DecodeMove(body string) (threes.Direction, bool, error) {
	body = strings.TrimSpace(body)
	if body == noMove {
		return 0, false, nil
	}
	dir, ok := threes.ParseDirection(body)
	if !ok {
		return 0, false, fmt.Errorf("%w: unknown direction %q", ErrProtocol, body)
	}
	return dir, true, nil
}
