// Package sim plays engines against the simulated device to measure them.
package sim

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/threesus/internal/engine"
	"github.com/vovakirdan/threesus/internal/threes"
)

// Result is the outcome of one simulated game.
type Result struct {
	Seed    int64
	Moves   int
	Score   int
	MaxRank threes.Rank
}

// Summary aggregates a batch of games.
type Summary struct {
	Games     int
	BestScore int
	MeanScore float64
	MaxRank   threes.Rank
	MeanMoves float64
}

// Play runs one game seeded with seed until no swipe is left.
func Play(e engine.Engine, seed int64, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	g := threes.NewGame(seed)

	for !g.IsOver() {
		dir, ok, err := e.Recommend(g.Board(), g.Deck(), g.Hint())
		if err != nil {
			return result(g, seed), fmt.Errorf("sim: engine %s: %w", e.Name(), err)
		}
		if !ok {
			return result(g, seed), fmt.Errorf("sim: engine %s gave up on a movable board", e.Name())
		}
		cell, rank, err := g.Move(dir)
		if err != nil {
			return result(g, seed), fmt.Errorf("sim: move %d: %w", g.Moves()+1, err)
		}
		logger.Debug("move", "seed", seed, "n", g.Moves(), "dir", dir, "cell", cell, "rank", rank)
	}

	res := result(g, seed)
	logger.Info("game finished", "seed", seed, "moves", res.Moves, "score", res.Score, "max", res.MaxRank)
	return res, nil
}

// PlayMany runs games with consecutive seeds starting at seed. It stops at
// the first engine failure.
func PlayMany(e engine.Engine, games int, seed int64, logger *log.Logger) ([]Result, error) {
	results := make([]Result, 0, games)
	for i := range games {
		res, err := Play(e, seed+int64(i), logger)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}

	var total, moves int
	for _, r := range results {
		total += r.Score
		moves += r.Moves
		s.BestScore = max(s.BestScore, r.Score)
		s.MaxRank = max(s.MaxRank, r.MaxRank)
	}
	s.MeanScore = float64(total) / float64(len(results))
	s.MeanMoves = float64(moves) / float64(len(results))
	return s
}

func result(g *threes.Game, seed int64) Result {
	return Result{
		Seed:    seed,
		Moves:   g.Moves(),
		Score:   g.Score(),
		MaxRank: threes.MaxRank(g.Board()),
	}
}
