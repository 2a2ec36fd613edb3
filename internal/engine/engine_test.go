package engine

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/threesus/internal/threes"
)

type fixedEngine struct {
	dir  threes.Direction
	ok   bool
	err  error
	seen []Request
}

func (f *fixedEngine) Name() string { return "fixed" }

func (f *fixedEngine) Recommend(board threes.Board, deck threes.Deck, hint threes.Hint) (threes.Direction, bool, error) {
	f.seen = append(f.seen, Request{Board: board, Deck: deck, Hint: hint})
	return f.dir, f.ok, f.err
}

func TestRequestRoundTrip(t *testing.T) {
	deck, err := threes.DeckOf(1, 4, 2)
	require.NoError(t, err)

	req := Request{
		Board: threes.Board{
			{1, 0, 0, 3},
			{0, 48, 0, 0},
			{0, 0, 2, 0},
			{6144, 0, 0, 6},
		},
		Deck: deck,
		Hint: threes.HintBonus,
	}

	line := EncodeRequest(req)
	assert.Equal(t, "recommend 1,0,0,3,0,48,0,0,0,0,2,0,6144,0,0,6 1,4,2 +", line)

	fields := strings.Fields(line)
	require.Equal(t, CmdRecommend, fields[0])

	got, err := DecodeRequest(fields[1:])
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestDecodeRequestErrors(t *testing.T) {
	full := "0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0"
	tests := []struct {
		name string
		args []string
	}{
		{"missing args", []string{full, "4,4,4"}},
		{"short board", []string{"0,0,0", "4,4,4", "1"}},
		{"bad tile", []string{strings.Replace(full, "0", "5", 1), "4,4,4", "1"}},
		{"bad deck", []string{full, "4,4", "1"}},
		{"deck out of range", []string{full, "9,4,4", "1"}},
		{"bad hint", []string{full, "4,4,4", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest(tt.args)
			assert.ErrorIs(t, err, ErrProtocol)
		})
	}
}

func TestDecodeMove(t *testing.T) {
	for _, d := range threes.Directions {
		got, ok, err := DecodeMove(EncodeMove(d, true))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok, err := DecodeMove(EncodeMove(threes.DirUp, false))
	require.NoError(t, err)
	assert.False(t, ok, "NONE should signal no move")

	_, _, err = DecodeMove("SIDEWAYS")
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestServe(t *testing.T) {
	e := &fixedEngine{dir: threes.DirLeft, ok: true}
	req := Request{Deck: threes.NewDeck(), Hint: threes.HintTwo}
	req.Board[0][0] = 3

	input := strings.Join([]string{
		"name",
		EncodeRequest(req),
		"",
		"bogus",
		"quit",
		"name",
	}, "\n")

	var out bytes.Buffer
	err := Serve(strings.NewReader(input), &out, e, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, "= fixed\n\n= LEFT\n\n? unknown command \"bogus\"\n\n= \n\n", out.String())
	require.Len(t, e.seen, 1)
	assert.Equal(t, req, e.seen[0])
}

func TestServeEngineError(t *testing.T) {
	e := &fixedEngine{err: errors.New("search exploded")}
	req := Request{Deck: threes.NewDeck(), Hint: threes.HintOne}

	var out bytes.Buffer
	err := Serve(strings.NewReader(EncodeRequest(req)+"\n"), &out, e, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, "? search exploded\n\n", out.String())
}
