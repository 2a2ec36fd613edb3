// threesus is a console assistant for the game Threes: it mirrors the board
// of a game played on a real device and recommends every swipe.
//
// Usage:
//
//	threesus play            - Assist a game played on a real device
//	threesus simulate        - Let an engine play simulated games
//	threesus engine          - Serve an engine over stdin/stdout
//	threesus scores          - Show archived sessions
//	threesus engines         - List available engines
//	threesus config          - Show the effective configuration
//
// Global flags:
//
//	--config <path>  - Configuration file (default: XDG search order)
//	--db <path>      - Session database (default: $XDG_DATA_HOME/threesus/sessions.db)
//	--verbose        - Debug logging on stderr
//	--no-color       - Plain output even on a terminal
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/threesus/internal/config"
	"github.com/vovakirdan/threesus/internal/storage"

	// Import engines to register them
	_ "github.com/vovakirdan/threesus/internal/engine/proc"
	_ "github.com/vovakirdan/threesus/internal/engine/search"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
	flagNoColor bool

	// Engine selection, shared by play, simulate and engine
	flagEngine string
	flagDepth  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "threesus",
	Short: "Threesus - a swipe advisor for Threes",
	Long: `Threesus mirrors a game of Threes played on a real device and tells
you which way to swipe.

Available commands:
  play      - Assist a game: enter the board, then each upcoming card
  simulate  - Let an engine play simulated games
  engine    - Serve an engine over stdin/stdout
  scores    - Show archived sessions
  engines   - List available engines
  config    - Show the effective configuration

Examples:
  threesus play
  threesus play --depth 4 --confirm-swipe
  threesus simulate --games 20 --seed 7
  threesus scores --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to sessions database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(engineCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(configCmd)
}

// addEngineFlags registers --engine and --depth on cmd.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagEngine, "engine", "", "Engine ID (see 'threesus engines')")
	cmd.Flags().IntVar(&flagDepth, "depth", 0, "Search depth in swipes")
}

// loadConfig reads the configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if f := cmd.Flags().Lookup("engine"); f != nil && f.Changed {
		cfg.Engine.Name = flagEngine
	}
	if f := cmd.Flags().Lookup("depth"); f != nil && f.Changed {
		cfg.Engine.Depth = flagDepth
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}
	if flagNoColor {
		cfg.Assist.Color = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "threesus",
		Level:           cfg.LogLevel(),
	})
	logger.Debug("config loaded", "source", cfg.Source)
	return logger
}

// colorEnabled reports whether tiles should be colored on stdout.
func colorEnabled(cfg config.Config) bool {
	return cfg.Assist.Color && term.IsTerminal(int(os.Stdout.Fd()))
}

// openStore opens the session archive, or returns nil when storage is
// disabled.
func openStore(cfg config.Config) (*storage.Store, error) {
	if !cfg.Storage.Enabled && flagDBPath == "" {
		return nil, nil
	}

	path := flagDBPath
	if path == "" {
		var err error
		if path, err = cfg.DBPath(); err != nil {
			return nil, err
		}
	}
	return storage.Open(path)
}
