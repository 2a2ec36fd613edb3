// Package search implements an expectimax decision engine: the player picks
// the swipe, chance picks the insertion lane and the dealt card.
package search

import (
	"math"

	"github.com/vovakirdan/threesus/internal/engine"
	"github.com/vovakirdan/threesus/internal/registry"
	"github.com/vovakirdan/threesus/internal/threes"
)

// DefaultDepth is the number of swipes searched ahead.
const DefaultDepth = 3

// gameOverValue scores a position with no legal swipe.
const gameOverValue = -1e6

// Name is the registry identifier of the search engine.
const Name = "expectimax"

func init() {
	registry.Register(Name, "Expectimax search with the openness evaluator",
		func(opts registry.Options) (engine.Engine, error) {
			return New(opts.Depth), nil
		})
}

// Bot is an expectimax searcher.
type Bot struct {
	depth int
	eval  Evaluator
}

var _ engine.Engine = (*Bot)(nil)

// New creates a bot using the openness evaluator. A depth below 1 uses
// DefaultDepth.
func New(depth int) *Bot {
	return NewWithEvaluator(depth, Openness)
}

// NewWithEvaluator creates a bot with a custom evaluator.
func NewWithEvaluator(depth int, eval Evaluator) *Bot {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Bot{depth: depth, eval: eval}
}

// Name returns the engine identifier.
func (b *Bot) Name() string {
	return Name
}

// Depth returns the search depth.
func (b *Bot) Depth() int {
	return b.depth
}

// Recommend implements engine.Engine. Ties go to the first direction in
// threes.Directions order.
func (b *Bot) Recommend(board threes.Board, deck threes.Deck, hint threes.Hint) (threes.Direction, bool, error) {
	outcomes := hintOutcomes(board, hint)

	var bestDir threes.Direction
	best := math.Inf(-1)
	found := false
	for _, dir := range threes.Directions {
		shifted, cells := threes.Shift(board, dir)
		if len(cells) == 0 {
			continue
		}
		v := b.chance(shifted, cells, deck, outcomes, b.depth-1)
		if !found || v > best {
			best, bestDir, found = v, dir, true
		}
	}
	return bestDir, found, nil
}

type outcome struct {
	rank threes.Rank
	p    float64
}

// hintOutcomes expands the hint into the ranks the next tile can have.
// A bonus hint is spread evenly over the bonus ranks the board allows.
func hintOutcomes(board threes.Board, hint threes.Hint) []outcome {
	if r, ok := hint.Rank(); ok {
		return []outcome{{rank: r, p: 1}}
	}
	ranks := threes.BonusRanks(threes.MaxRank(board))
	if len(ranks) == 0 {
		ranks = []threes.Rank{6}
	}
	out := make([]outcome, len(ranks))
	for i, r := range ranks {
		out[i] = outcome{rank: r, p: 1 / float64(len(ranks))}
	}
	return out
}

// deckOutcomes is the distribution of the next basic card.
func deckOutcomes(deck threes.Deck) []outcome {
	probs := deck.Probabilities()
	out := make([]outcome, 0, len(probs))
	for r := threes.Rank(1); r <= 3; r++ {
		if p, ok := probs[r]; ok {
			out = append(out, outcome{rank: r, p: p})
		}
	}
	return out
}

// chance averages over the dealt card and the insertion lane.
func (b *Bot) chance(shifted threes.Board, cells []threes.Cell, deck threes.Deck, outcomes []outcome, depth int) float64 {
	total := 0.0
	for _, o := range outcomes {
		next := deck
		// The caller only offers ranks the deck holds
		_ = next.Remove(o.rank)
		for _, c := range cells {
			placed := shifted
			placed[c.Y][c.X] = o.rank
			total += o.p / float64(len(cells)) * b.max(placed, next, depth)
		}
	}
	return total
}

// max picks the best swipe for the player.
func (b *Bot) max(board threes.Board, deck threes.Deck, depth int) float64 {
	if depth <= 0 {
		return b.eval(board)
	}

	outcomes := deckOutcomes(deck)
	best := gameOverValue
	moved := false
	for _, dir := range threes.Directions {
		shifted, cells := threes.Shift(board, dir)
		if len(cells) == 0 {
			continue
		}
		v := b.chance(shifted, cells, deck, outcomes, depth-1)
		if !moved || v > best {
			best, moved = v, true
		}
	}
	return best
}
