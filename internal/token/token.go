// Package token decodes the text the player types into game values.
// Every decoder reports failure with ok == false so callers can re-prompt.
package token

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/threesus/internal/threes"
)

// Undo is the literal that rewinds the last committed turn.
const Undo = "undo"

// DecodeBoard decodes a board-initialization token: "0" or an empty token
// for a free cell, otherwise any tile rank including the bonus ranks.
func DecodeBoard(tok string) (threes.Rank, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" || tok == "0" {
		return threes.Empty, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || strconv.Itoa(n) != tok {
		return threes.Empty, false
	}
	r := threes.Rank(n)
	if !r.Valid() {
		return threes.Empty, false
	}
	return r, true
}

// DecodeReveal decodes the upcoming-tile token. Only the four categories the
// game shows are accepted, as a single character.
func DecodeReveal(tok string) (threes.Hint, bool) {
	if len(tok) != 1 {
		return 0, false
	}
	switch tok[0] {
	case '1':
		return threes.HintOne, true
	case '2':
		return threes.HintTwo, true
	case '3':
		return threes.HintThree, true
	case '+':
		return threes.HintBonus, true
	}
	return 0, false
}

// IsUndo reports whether tok asks to rewind a turn.
func IsUndo(tok string) bool {
	return tok == Undo
}

// DecodeBonus decodes the revealed value of a bonus tile.
func DecodeBonus(tok string) (threes.Rank, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return threes.Empty, false
	}
	r := threes.Rank(n)
	if !r.IsBonus() {
		return threes.Empty, false
	}
	return r, true
}

// Label returns the letter shown for the i-th insertion candidate.
func Label(i int) rune {
	return rune('a' + i)
}

// DecodeLabel maps a candidate letter back to its index in [0, k).
func DecodeLabel(tok string, k int) (int, bool) {
	if len(tok) != 1 {
		return -1, false
	}
	i := int(tok[0]) - 'a'
	if i < 0 || i >= k {
		return -1, false
	}
	return i, true
}

// DecodeDirection decodes a swipe confirmation: l, r, u or d, or an empty
// answer to accept def.
func DecodeDirection(tok string, def threes.Direction) (threes.Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "":
		return def, true
	case "l":
		return threes.DirLeft, true
	case "r":
		return threes.DirRight, true
	case "u":
		return threes.DirUp, true
	case "d":
		return threes.DirDown, true
	}
	return def, false
}

// SplitRow splits a comma-delimited board row.
func SplitRow(line string) []string {
	return strings.Split(line, ",")
}
