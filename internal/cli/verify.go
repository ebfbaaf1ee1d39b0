package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/facelet"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms start state to target state",
	Long: `Verify that an algorithm correctly transforms a cube from a start state to a target state.
Both states are specified using CFEN notation with wildcard support.

Examples:
  # Verify Sune algorithm (OLL case)
  cube verify "R U R' U R U2 R'" \
    --start "WG|GW5BWB/WBOR6/RGOG6/Y9/WRWO6/GORB6" \
    --target "WG|W9/?9/?9/?9/?9/?9"

  # Verify simple inverse (defaults to solved start/target)
  cube verify "R U R' U' U R U' R'"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]

		startCFEN, _ := cmd.Flags().GetString("start")
		targetCFEN, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")

		if startCFEN == "" {
			startCFEN = "WG|W9/R9/G9/Y9/O9/B9"
		}
		if targetCFEN == "" {
			targetCFEN = "WG|W9/R9/G9/Y9/O9/B9"
		}

		startState, err := cfen.ParseCFEN(startCFEN)
		if err != nil {
			exitf(headless, "Error parsing start CFEN: %v\n", err)
		}

		targetState, err := cfen.ParseCFEN(targetCFEN)
		if err != nil {
			exitf(headless, "Error parsing target CFEN: %v\n", err)
		}

		cp, err := startState.ToCube()
		if err != nil {
			exitf(headless, "Error converting start CFEN to cube: %v\n", err)
		}
		c := *cp

		if verbose && !headless {
			fmt.Printf("Start state (from CFEN):\n")
			facelet.WriteNet(os.Stdout, c)
		}

		moves, err := cube.ParseScramble(algorithm)
		if err != nil {
			exitf(headless, "Error parsing algorithm: %v\n", err)
		}

		c = c.ApplyMoves(moves)

		if verbose && !headless {
			fmt.Printf("\nAfter algorithm (%s):\n", algorithm)
			facelet.WriteNet(os.Stdout, c)
		}

		matches, err := targetState.MatchesCube(c)
		if err != nil {
			exitf(headless, "Error matching result to target: %v\n", err)
		}

		if matches {
			if !headless {
				fmt.Printf("PASS: Algorithm correctly transforms start to target state\n")
				fmt.Printf("Algorithm: %s\n", algorithm)
				fmt.Printf("Move count: %d\n", len(moves))
				if verbose {
					fmt.Printf("Start:  %s\n", startCFEN)
					fmt.Printf("Target: %s\n", targetCFEN)
					actualCFEN, _ := cfen.GenerateCFEN(c)
					fmt.Printf("Actual: %s\n", actualCFEN)
				}
			}
			os.Exit(0)
		} else {
			if !headless {
				fmt.Printf("FAIL: Algorithm does not achieve target state\n")
				fmt.Printf("Algorithm: %s\n", algorithm)
				if !verbose {
					fmt.Printf("\nTip: Use --verbose to see the cube states\n")
				} else {
					fmt.Printf("Start:  %s\n", startCFEN)
					fmt.Printf("Target: %s\n", targetCFEN)
					actualCFEN, _ := cfen.GenerateCFEN(c)
					fmt.Printf("Actual: %s\n", actualCFEN)
				}
			}
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting CFEN state (defaults to solved)")
	verifyCmd.Flags().String("target", "", "Target CFEN state (defaults to solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states and transformations")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
}
