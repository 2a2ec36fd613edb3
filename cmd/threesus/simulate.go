package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/threesus/internal/sim"
	"github.com/vovakirdan/threesus/internal/storage"
)

var (
	flagGames int
	flagSeed  int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let an engine play simulated games",
	Long: `Play complete games against a simulated device and report the scores.
Games use consecutive seeds, so a run is reproducible.

Examples:
  threesus simulate
  threesus simulate --games 50 --seed 100 --depth 2`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addEngineFlags(simulateCmd)
	simulateCmd.Flags().IntVarP(&flagGames, "games", "n", 10, "Number of games to play")
	simulateCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Seed of the first game")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if flagGames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --games must be at least 1")
		os.Exit(1)
	}

	cfg := loadConfig(cmd)
	logger := newLogger(cfg)

	e, err := createEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	results, err := sim.PlayMany(e, flagGames, flagSeed, logger)
	closeEngine(e, logger)

	recs := make([]storage.SessionRecord, 0, len(results))
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		recs = append(recs, storage.SessionRecord{
			SessionID: uuid.NewString(),
			Turns:     r.Moves,
			Score:     r.Score,
			MaxRank:   int(r.MaxRank),
		})
		rows = append(rows, []string{
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Moves),
			strconv.Itoa(r.Score),
			strconv.Itoa(int(r.MaxRank)),
		})
	}
	saveSessions(cfg, logger, storage.ModeSimulate, e.Name(), recs)

	if len(rows) > 0 {
		fmt.Println(newTable(colorEnabled(cfg)).
			Headers("Seed", "Moves", "Score", "Max").
			Rows(rows...))
	}

	s := sim.Summarize(results)
	fmt.Println()
	fmt.Printf("Engine:     %s (depth %d)\n", e.Name(), cfg.Engine.Depth)
	fmt.Printf("Games:      %d\n", s.Games)
	fmt.Printf("Best score: %d\n", s.BestScore)
	fmt.Printf("Mean score: %.1f\n", s.MeanScore)
	fmt.Printf("Mean moves: %.1f\n", s.MeanMoves)
	fmt.Printf("Best tile:  %d\n", s.MaxRank)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newTable returns an empty table in the CLI's style.
func newTable(color bool) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	border := lipgloss.NewStyle()
	if color {
		header = header.Foreground(lipgloss.Color("11"))
		border = border.Foreground(lipgloss.Color("8"))
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
