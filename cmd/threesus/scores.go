package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/threesus/internal/storage"
)

var (
	flagLimit   int
	flagMode    string
	flagClear   bool
	flagSession string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show archived sessions",
	Long: `Display the best archived sessions, best score first, followed by
per-mode statistics.

Examples:
  threesus scores
  threesus scores --mode assist --limit 5
  threesus scores --mode simulate --clear
  threesus scores --session 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "l", 10, "Number of sessions to show")
	scoresCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "Only show one mode (assist or simulate)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the archived sessions of --mode")
	scoresCmd.Flags().StringVar(&flagSession, "session", "", "Show one session by its ID")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagMode != "" && flagMode != storage.ModeAssist && flagMode != storage.ModeSimulate {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
		os.Exit(1)
	}
	if flagClear && flagMode == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs --mode")
		os.Exit(1)
	}

	cfg := loadConfig(cmd)
	cfg.Storage.Enabled = true

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSession != "" {
		showSession(store, flagSession)
		return
	}

	if flagClear {
		if err := store.ClearSessions(flagMode); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			return
		}
		fmt.Printf("Cleared %s sessions.\n", flagMode)
		return
	}

	sessions, err := store.TopSessions(flagMode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'threesus play' or 'threesus simulate' to record one.")
		return
	}

	rows := make([][]string, 0, len(sessions))
	for i, s := range sessions {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxRank),
			strconv.Itoa(s.Turns),
			s.Mode,
			s.Engine,
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	fmt.Println(newTable(colorEnabled(cfg)).
		Headers("#", "Score", "Max", "Turns", "Mode", "Engine", "Date").
		Rows(rows...))

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	modes := make([]string, 0, len(stats))
	for m := range stats {
		if flagMode == "" || m == flagMode {
			modes = append(modes, m)
		}
	}
	slices.Sort(modes)

	fmt.Println()
	for _, m := range modes {
		st := stats[m]
		fmt.Printf("%-8s  sessions %d  best %d  mean %.0f  best tile %d  last %s\n",
			st.Mode, st.Sessions, st.HighScore, st.AvgScore, st.BestRank,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func showSession(store *storage.Store, id string) {
	s, err := store.SessionByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving session: %v\n", err)
		return
	}
	if s == nil {
		fmt.Printf("No session %q archived.\n", id)
		return
	}

	fmt.Printf("Session:   %s\n", s.SessionID)
	fmt.Printf("Mode:      %s\n", s.Mode)
	fmt.Printf("Engine:    %s\n", s.Engine)
	fmt.Printf("Turns:     %d\n", s.Turns)
	fmt.Printf("Score:     %d\n", s.Score)
	fmt.Printf("Best tile: %d\n", s.MaxRank)
	fmt.Printf("Played:    %s\n", s.CreatedAt.Format("2006-01-02 15:04"))
}
