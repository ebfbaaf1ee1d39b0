package cfen

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
)

func TestGenerateCFENSolvedCube(t *testing.T) {
	got, err := GenerateCFEN(cube.SolvedCube())
	if err != nil {
		t.Fatalf("GenerateCFEN: %v", err)
	}
	want := "WG|W9/R9/G9/Y9/O9/B9"
	if got != want {
		t.Fatalf("GenerateCFEN(solved) = %q, want %q", got, want)
	}
}

func TestParseCFENThenToCubeRoundTripsSolved(t *testing.T) {
	state, err := ParseCFEN("WG|W9/R9/G9/Y9/O9/B9")
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	c, err := state.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if !c.IsSolved() {
		t.Fatalf("expected a solved cube, got %+v", c)
	}
}

func TestCFENRoundTripsScrambledCubeAcrossOrientations(t *testing.T) {
	moves, err := cube.ParseScramble("R U R' U' F2 B L2 D' R2")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c := cube.SolvedCube().ApplyMoves(moves)

	for _, o := range []CFENOrientation{
		{Up: White, Front: Green},
		{Up: Yellow, Front: Blue},
		{Up: Red, Front: White},
	} {
		state, err := FromCube(c, o)
		if err != nil {
			t.Fatalf("FromCube(%v): %v", o, err)
		}
		got, err := state.ToCube()
		if err != nil {
			t.Fatalf("ToCube after FromCube(%v): %v", o, err)
		}
		if *got != c {
			t.Fatalf("orientation %v: round trip mismatch", o)
		}
	}
}

func TestMatchesCubeIgnoresWildcards(t *testing.T) {
	moves, _ := cube.ParseScramble("R U R' U'")
	c := cube.SolvedCube().ApplyMoves(moves)

	state, err := ParseCFEN("WG|?9/?9/?9/?9/?9/?9")
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	matches, err := state.MatchesCube(c)
	if err != nil {
		t.Fatalf("MatchesCube: %v", err)
	}
	if !matches {
		t.Fatal("an all-wildcard pattern should match any cube")
	}
}

func TestMatchesCubeDetectsMismatch(t *testing.T) {
	state, err := ParseCFEN("WG|W9/R9/G9/Y9/O9/B9")
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	moves, _ := cube.ParseScramble("R")
	c := cube.SolvedCube().ApplyMoves(moves)
	matches, err := state.MatchesCube(c)
	if err != nil {
		t.Fatalf("MatchesCube: %v", err)
	}
	if matches {
		t.Fatal("a single R turn should not match the solved pattern")
	}
}

func TestParseCFENRejectsBadOrientation(t *testing.T) {
	if _, err := ParseCFEN("WY|W9/R9/G9/Y9/O9/B9"); err == nil {
		t.Fatal("expected an error: White and Yellow are opposite faces")
	}
}
