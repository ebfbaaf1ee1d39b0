package cube

import "testing"

func TestParseMoveRoundTripsAllEighteenTokens(t *testing.T) {
	for m := MoveU; m <= MoveLPrime; m++ {
		got, err := ParseMove(m.String())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMove(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	if _, err := ParseMove("Q"); err == nil {
		t.Fatal("expected an error for an unrecognized move token")
	}
}

func TestMoveInverseIsSelfInverse(t *testing.T) {
	cases := []struct{ m, want Move }{
		{MoveR, MoveRPrime},
		{MoveRPrime, MoveR},
		{MoveU2, MoveU2},
	}
	for _, c := range cases {
		if c.m.Inverse() != c.want {
			t.Errorf("%v.Inverse() = %v, want %v", c.m, c.m.Inverse(), c.want)
		}
	}
}

func TestMoveFaceAndTurnKind(t *testing.T) {
	if MoveR2.Face() != FaceR {
		t.Errorf("MoveR2.Face() = %v, want FaceR", MoveR2.Face())
	}
	if !MoveR2.IsHalfTurn() {
		t.Error("MoveR2 should be a half turn")
	}
	if MoveR2.IsClockwise() {
		t.Error("MoveR2 should not be a clockwise quarter turn")
	}
	if !MoveR.IsClockwise() {
		t.Error("MoveR should be a clockwise quarter turn")
	}
	if MoveRPrime.IsClockwise() || MoveRPrime.IsHalfTurn() {
		t.Error("MoveRPrime should be neither clockwise nor a half turn")
	}
}

func TestCancelsWithSameFace(t *testing.T) {
	if !MoveR.CancelsWith(MoveRPrime) {
		t.Error("R should cancel with a prior R'")
	}
	if MoveR.CancelsWith(MoveL) {
		t.Error("R should not cancel with a prior L")
	}
}

func TestCommutesWithOppositeFace(t *testing.T) {
	if !MoveR.CommutesWith(MoveL) {
		t.Error("R should commute with L (opposite faces)")
	}
	if MoveR.CommutesWith(MoveU) {
		t.Error("R should not commute with U (adjacent faces)")
	}
}

func TestDRUDMovesetExcludesQuarterTurnsOfFBRL(t *testing.T) {
	moveset := DRUDMoveset()
	if len(moveset) != 10 {
		t.Fatalf("DRUDMoveset has %d moves, want 10", len(moveset))
	}
	for _, m := range moveset {
		switch m.Face() {
		case FaceF, FaceB, FaceR, FaceL:
			if !m.IsHalfTurn() {
				t.Errorf("%v: only half turns of F/B/R/L belong in the DR moveset", m)
			}
		}
	}
}

func TestParseScrambleAndFormatMovesRoundTrip(t *testing.T) {
	seq := "R U R' U' F2 B L2 D' R2"
	moves, err := ParseScramble(seq)
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	if len(moves) != 9 {
		t.Fatalf("got %d moves, want 9", len(moves))
	}
	if FormatMoves(moves) != seq {
		t.Fatalf("FormatMoves round trip = %q, want %q", FormatMoves(moves), seq)
	}
}

func TestParseScrambleEmptyStringIsNoMoves(t *testing.T) {
	moves, err := ParseScramble("  ")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("got %d moves, want 0", len(moves))
	}
}

func TestParseScrambleRejectsBadToken(t *testing.T) {
	if _, err := ParseScramble("R U X"); err == nil {
		t.Fatal("expected an error for an unrecognized token")
	}
}
