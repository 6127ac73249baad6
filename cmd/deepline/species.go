package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/deepline/internal/config"
	"github.com/vovakirdan/deepline/internal/games/fishing/sim"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "Show the species catalog",
	Long: `List every fish and hazard with its value, depth band, size and speed.

Examples:
  deepline species
  deepline species --config ./my-deepline.yaml`,
	Args: cobra.NoArgs,
	Run:  runSpecies,
}

func runSpecies(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFishing(flagConfig)
	exitOnError("loading config", err)

	catalog, err := sim.NewCatalog(cfg.Species)
	exitOnError("building catalog", err)

	fmt.Println("Fish")
	printSpecies(catalog.Fish(), "+")
	fmt.Println()
	fmt.Println("Hazards")
	printSpecies(catalog.Hazards(), "-")
}

func printSpecies(defs []sim.SpeciesDef, sign string) {
	fmt.Printf("  %-14s  %6s  %-9s  %4s  %5s  %s\n", "Name", "Value", "Depth", "Size", "Speed", "Color")
	fmt.Printf("  %-14s  %6s  %-9s  %4s  %5s  %s\n", "----", "-----", "-----", "----", "-----", "-----")
	for _, d := range defs {
		band := fmt.Sprintf("%.0f-%.0fm", d.MinDepth, d.MaxDepth)
		fmt.Printf("  %-14s  %6s  %-9s  %4.0f  %5.1f  %s\n",
			d.Name, fmt.Sprintf("%s%d", sign, d.Value), band, d.Size, d.Speed, d.Color)
	}
}
