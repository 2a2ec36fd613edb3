package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/threesus/internal/assist"
	"github.com/vovakirdan/threesus/internal/config"
	"github.com/vovakirdan/threesus/internal/engine"
	"github.com/vovakirdan/threesus/internal/registry"
	"github.com/vovakirdan/threesus/internal/storage"
)

var flagConfirmSwipe bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Assist a game played on a real device",
	Long: `Start an assisted session. Enter the four rows of the starting board,
then after every swipe enter the upcoming card shown by the device
(1, 2, 3 or + for a bonus card). Type 'undo' to take back the last turn.

Examples:
  threesus play
  threesus play --engine expectimax --depth 4
  threesus play --confirm-swipe`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addEngineFlags(playCmd)
	playCmd.Flags().BoolVar(&flagConfirmSwipe, "confirm-swipe", false, "Ask which way you actually swiped")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	if cmd.Flags().Changed("confirm-swipe") {
		cfg.Assist.ConfirmSwipe = flagConfirmSwipe
	}
	logger := newLogger(cfg)

	e, err := createEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	sessionID := uuid.NewString()
	ctrl := assist.NewController(
		e,
		assist.NewConsole(os.Stdin, os.Stdout),
		assist.NewRenderer(colorEnabled(cfg)),
		assist.Options{
			ConfirmSwipe: cfg.Assist.ConfirmSwipe,
			SessionID:    sessionID,
			Logger:       logger,
		},
	)

	res, err := ctrl.Run()
	closeEngine(e, logger)

	switch {
	case errors.Is(err, assist.ErrInputClosed):
		logger.Info("input closed, session not archived", "turns", res.Turns)
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	saveSessions(cfg, logger, storage.ModeAssist, e.Name(), []storage.SessionRecord{{
		SessionID: res.SessionID,
		Turns:     res.Turns,
		Score:     res.FinalScore,
		MaxRank:   int(res.MaxRank),
	}})
}

// createEngine builds the configured engine.
func createEngine(cfg config.Config, logger *log.Logger) (engine.Engine, error) {
	if !registry.Exists(cfg.Engine.Name) {
		return nil, fmt.Errorf("unknown engine %q (run 'threesus engines' to see available engines)", cfg.Engine.Name)
	}
	return registry.Create(cfg.Engine.Name, registry.Options{
		Depth:   cfg.Engine.Depth,
		Command: cfg.Engine.Command,
		Args:    cfg.Engine.Args,
		Logger:  logger,
	})
}

// closeEngine releases engines that hold a child process.
func closeEngine(e engine.Engine, logger *log.Logger) {
	c, ok := e.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("closing engine", "engine", e.Name(), "error", err)
	}
}

// saveSessions archives finished games. Storage failures are logged, not
// fatal: the game itself already completed.
func saveSessions(cfg config.Config, logger *log.Logger, mode, engineName string, recs []storage.SessionRecord) {
	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("cannot open session archive", "error", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	best, saved := -1, 0
	for _, rec := range recs {
		rec.Mode = mode
		rec.Engine = engineName
		isBest, err := store.Archive(rec)
		if err != nil {
			logger.Warn("cannot archive session", "session", rec.SessionID, "error", err)
			continue
		}
		logger.Debug("session archived", "session", rec.SessionID, "score", rec.Score)
		saved++
		if isBest {
			best = rec.Score
		}
	}

	if saved == 1 && len(recs) == 1 {
		fmt.Printf("Session %s archived.\n", recs[0].SessionID)
	}
	if best >= 0 {
		fmt.Printf("New %s high score: %d!\n", mode, best)
	}
}
