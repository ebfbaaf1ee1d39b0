package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/facelet"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube using the two-phase Kociemba-style algorithm.

With no arguments, the starting cube is read as a 9-line facelet-net block
on standard input. A scramble argument instead applies those moves to a
solved cube (or to --start, if given).

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var scramble string
		if len(args) > 0 {
			scramble = args[0]
		}
		algorithm, _ := cmd.Flags().GetString("algorithm")
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		var c cube.Cube
		if startCfen != "" {
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				exitf(headless, "Error parsing starting CFEN: %v\n", err)
			}
			cp, err := cfenState.ToCube()
			if err != nil {
				exitf(headless, "Error converting CFEN to cube: %v\n", err)
			}
			c = *cp
		} else if scramble != "" {
			c = cube.SolvedCube()
		} else {
			parsed, err := facelet.ParseNet(os.Stdin)
			if err != nil {
				exitf(headless, "Error reading facelet net: %v\n", err)
			}
			c = parsed
		}

		if !headless {
			fmt.Printf("Solving with algorithm: %s\n", algorithm)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
			if scramble != "" {
				fmt.Printf("Scramble: %s\n", scramble)
			}
		}

		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				exitf(headless, "Error parsing scramble: %v\n", err)
			}
			c = c.ApplyMoves(moves)
		}

		solver, err := cube.GetSolver(algorithm)
		if err != nil {
			exitf(headless, "Error getting solver: %v\n", err)
		}

		result, err := solver.Solve(c)
		if err != nil {
			exitf(headless, "Error solving cube: %v\n", err)
		}

		solutionStr := cube.FormatMoves(result.Solution)

		if useCfenOutput {
			solved := c.ApplyMoves(result.Solution)
			cfenStr, err := cfen.GenerateCFEN(solved)
			if err != nil {
				exitf(headless, "Error generating CFEN: %v\n", err)
			}
			fmt.Print(cfenStr)
		} else if headless {
			fmt.Print(solutionStr)
		} else {
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Steps: %d\n", result.Steps)
			fmt.Printf("Time: %v\n", result.Duration)
		}
	},
}

func init() {
	solveCmd.Flags().StringP("algorithm", "a", "kociemba", "Solving algorithm to use")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: read a facelet net from stdin, or solved if a scramble argument is given)")
}
