package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/threesus/internal/registry"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List all available engines",
	Long:  `Shows a list of all engines that can recommend swipes.`,
	Args:  cobra.NoArgs,
	Run:   runEngines,
}

func runEngines(cmd *cobra.Command, args []string) {
	engines := registry.List()

	if len(engines) == 0 {
		fmt.Println("No engines available.")
		return
	}

	fmt.Println("Available engines:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range engines {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, e := range engines {
		fmt.Printf("  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'threesus play --engine <id>' to use an engine.")
}
