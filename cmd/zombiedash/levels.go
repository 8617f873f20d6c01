package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-dash/internal/sim"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate level files",
	Long: `Loads every numbered level file (levelNN.yaml or levelNN.txt) and reports
what it contains. Exits with status 1 if any level fails to load.

Examples:
  zombiedash levels
  zombiedash levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	entries, err := newLevelLoader(logger).Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning levels: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No levels found.")
		return
	}

	// Calculate column widths
	maxFileLen := 4 // "File" header
	for _, e := range entries {
		if len(e.File) > maxFileLen {
			maxFileLen = len(e.File)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-8s  %-8s  %-7s  %s\n", "#", maxFileLen, "File", "Citizens", "Zombies", "Goodies", "Name")
	fmt.Printf("  %-3s  %-*s  %-8s  %-8s  %-7s  %s\n", "-", maxFileLen, "----", "--------", "-------", "-------", "----")

	broken := 0
	for _, e := range entries {
		if e.Err != nil {
			broken++
			fmt.Printf("  %-3d  %-*s  error: %v\n", e.Number, maxFileLen, e.File, e.Err)
			continue
		}
		c := e.Level.Counts()
		zombies := c[sim.KindDumbZombie] + c[sim.KindSmartZombie]
		goodies := c[sim.KindVaccineGoodie] + c[sim.KindGasCanGoodie] + c[sim.KindLandmineGoodie]
		fmt.Printf("  %-3d  %-*s  %-8d  %-8d  %-7d  %s\n",
			e.Number, maxFileLen, e.File, c[sim.KindCitizen], zombies, goodies, e.Level.Name)
	}

	fmt.Println()
	if broken > 0 {
		fmt.Printf("%d of %d levels failed to load.\n", broken, len(entries))
		os.Exit(1)
	}
	fmt.Printf("%d levels OK.\n", len(entries))
}
