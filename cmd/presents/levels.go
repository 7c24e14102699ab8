package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/presents/internal/games/presents"
)

var flagLevelsVerbose bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Long: `Shows every level of the built-in level table with its platforms,
enemies and chimney position.

Examples:
  presents levels
  presents levels -v`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVarP(&flagLevelsVerbose, "verbose", "v", false, "Show every platform and enemy")
}

func runLevels(_ *cobra.Command, _ []string) {
	table := presents.BuiltinLevels()

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-14s  %-9s  %-7s  %-4s  %s\n", "#", "Name", "Platforms", "Parents", "CEOs", "Chimney")
	fmt.Printf("  %-3s  %-14s  %-9s  %-7s  %-4s  %s\n", "-", "----", "---------", "-------", "----", "-------")

	for n := 1; n <= table.Len(); n++ {
		spec, _ := table.Level(n)

		parents, ceos := 0, 0
		for _, e := range spec.Enemies {
			if e.Kind == presents.EnemyParent {
				parents++
			} else {
				ceos++
			}
		}

		fmt.Printf("  %-3d  %-14s  %-9d  %-7d  %-4d  (%g, %g)\n",
			n, spec.Name, len(spec.Platforms), parents, ceos, spec.ChimneyX, spec.ChimneyY)

		if !flagLevelsVerbose {
			continue
		}
		for _, p := range spec.Platforms {
			fmt.Printf("         platform %-8s %-7s at (%g, %g) size %gx%g\n", p.ID, p.Surface, p.X, p.Y, p.W, p.H)
		}
		for _, e := range spec.Enemies {
			home := ""
			if e.Kind == presents.EnemyParent {
				home = " patrolling " + spec.Platforms[e.Home].ID
			}
			fmt.Printf("         %-8s at (%g, %g)%s\n", e.Kind, e.X, e.Y, home)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Run 'presents play --level <n>' to start at a level.")
}
