package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/threesus/internal/engine"
	"github.com/vovakirdan/threesus/internal/engine/proc"
)

var engineCmd = &cobra.Command{
	Use:   "engine",
	Short: "Serve an engine over stdin/stdout",
	Long: `Run an engine as a line protocol server on stdin/stdout. Another
threesus can drive it with 'engine.name: external'.

Commands:
  name
  recommend <16 board cells> <c1,c2,c3> <hint>
  quit

Examples:
  threesus engine --depth 4
  echo "recommend 0,0,0,0,0,0,0,0,0,0,0,0,0,0,1,2 4,4,4 1" | threesus engine`,
	Args: cobra.NoArgs,
	Run:  runEngine,
}

func init() {
	addEngineFlags(engineCmd)
}

func runEngine(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	if cfg.Engine.Name == proc.Name {
		fmt.Fprintf(os.Stderr, "Error: engine %q cannot be served\n", proc.Name)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	e, err := createEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	logger.Info("serving engine", "engine", e.Name(), "depth", cfg.Engine.Depth)
	if err := engine.Serve(os.Stdin, os.Stdout, e, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
