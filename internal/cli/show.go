package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/facelet"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show the cube state as a facelet net",
	Long: `Show displays the cube state after applying a scramble, as a 9-line
facelet-net block: the Up face, then the Left/Front/Right/Back band, then Down.

Examples:
  cube show
  cube show "R U R' U'"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		c := cube.SolvedCube()

		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			c = c.ApplyMoves(moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		if err := facelet.WriteNet(os.Stdout, c); err != nil {
			fmt.Printf("Error printing cube: %v\n", err)
			os.Exit(1)
		}

		if c.IsSolved() {
			fmt.Println("Status: SOLVED")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}
