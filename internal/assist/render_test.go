package assist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/threesus/internal/core"
	"github.com/vovakirdan/threesus/internal/threes"
)

func TestRenderBoardPlain(t *testing.T) {
	r := NewRenderer(false)
	b := threes.Board{
		{1, 2, 3, 6},
		{},
		{0, 0, 0, 6144},
		{},
	}

	want := strings.Join([]string{
		Ruler,
		"1,2,3,6,",
		" , , , ,",
		" , , ,6144,",
		" , , , ,",
		Ruler,
	}, "\n")
	assert.Equal(t, want, r.RenderBoard(b))
}

func TestRenderCandidates(t *testing.T) {
	r := NewRenderer(false)
	cells := []threes.Cell{{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 3, Y: 3}}

	assert.Equal(t, "....\n....\n....\nab.c", r.RenderCandidates(cells))
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		rank threes.Rank
		want core.Color
	}{
		{1, core.ColorBlue},
		{2, core.ColorRed},
		{3, core.ColorWhite},
		{768, core.ColorWhite},
		{threes.Empty, core.ColorDefault},
	}

	for _, tt := range tests {
		if got := tileColor(tt.rank); got != tt.want {
			t.Errorf("tileColor(%d) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestResolverSingleCandidate(t *testing.T) {
	var out bytes.Buffer
	res := NewResolver(NewConsole(strings.NewReader(""), &out), NewRenderer(false))

	cell, err := res.Resolve([]threes.Cell{{X: 2, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, threes.Cell{X: 2, Y: 1}, cell)
	assert.Empty(t, out.String(), "no prompt for a single candidate")

	_, err = res.Resolve(nil)
	assert.Error(t, err)
}

func TestResolverInputClosed(t *testing.T) {
	var out bytes.Buffer
	res := NewResolver(NewConsole(strings.NewReader("q\n"), &out), NewRenderer(false))

	_, err := res.Resolve([]threes.Cell{{X: 3, Y: 0}, {X: 3, Y: 1}})
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestResolveRank(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(strings.NewReader("3\n6144\n"), &out)

	for h, want := range map[threes.Hint]threes.Rank{threes.HintOne: 1, threes.HintTwo: 2, threes.HintThree: 3} {
		got, err := ResolveRank(con, h)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Empty(t, out.String())

	got, err := ResolveRank(con, threes.HintBonus)
	require.NoError(t, err)
	assert.Equal(t, threes.Rank(6144), got)
	assert.Equal(t, 2, strings.Count(out.String(), "!!! What is the value of the new card? "))
}
