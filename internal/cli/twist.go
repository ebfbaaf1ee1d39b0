package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/facelet"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result. Perfect for learning algorithms, exploring patterns, and
visualization.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --cfen
  cube twist "R2" --start "WG|W9/R9/G9/Y9/O9/B9"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		var c cube.Cube
		if startCfen != "" {
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				fmt.Printf("Error parsing starting CFEN: %v\n", err)
				os.Exit(1)
			}
			cp, err := cfenState.ToCube()
			if err != nil {
				fmt.Printf("Error converting CFEN to cube: %v\n", err)
				os.Exit(1)
			}
			c = *cp
		} else {
			c = cube.SolvedCube()
		}

		if !useCfenOutput {
			fmt.Printf("Applying moves: %s\n", moves)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		parsedMoves, err := cube.ParseScramble(moves)
		if err != nil {
			if !useCfenOutput {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}
		c = c.ApplyMoves(parsedMoves)

		if useCfenOutput {
			cfenStr, err := cfen.GenerateCFEN(c)
			if err != nil {
				fmt.Printf("Error generating CFEN: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(cfenStr)
			fmt.Println()
			return
		}

		fmt.Println("\nCube state after applying moves:")
		if err := facelet.WriteNet(os.Stdout, c); err != nil {
			fmt.Printf("Error printing cube: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Moves applied: %d\n", len(parsedMoves))
		if c.IsSolved() {
			fmt.Println("Status: SOLVED")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string")
	twistCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
}
