package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/threesus/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration threesus would run with, and the file it came
from. With --default, print the built-in configuration file instead, ready
to be saved as a starting point.

Examples:
  threesus config
  threesus config --default > ~/.config/threesus/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in configuration file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := loadConfig(cmd)
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", cfg.Source)
	os.Stdout.Write(out)
}
