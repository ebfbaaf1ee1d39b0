package cube

import "testing"

func TestSolvedCubeIsSolved(t *testing.T) {
	c := SolvedCube()
	if !c.IsSolved() {
		t.Fatal("SolvedCube() should be solved")
	}
	if !c.IsDRUD() {
		t.Fatal("a solved cube is trivially in the DR subgroup")
	}
}

func TestCOAndEOBitLayoutRoundTrips(t *testing.T) {
	var co CO
	for slot := 0; slot < 8; slot++ {
		co = co.set(slot, uint8(slot%3))
	}
	for slot := 0; slot < 8; slot++ {
		if got := co.get(slot); got != uint8(slot%3) {
			t.Errorf("CO slot %d = %d, want %d", slot, got, slot%3)
		}
	}

	var eo EO
	for slot := 0; slot < 12; slot++ {
		eo = eo.set(slot, uint8(slot%2))
	}
	for slot := 0; slot < 12; slot++ {
		if got := eo.get(slot); got != uint8(slot%2) {
			t.Errorf("EO slot %d = %d, want %d", slot, got, slot%2)
		}
	}
}

func TestCOCoordRoundTrips(t *testing.T) {
	for idx := 0; idx < 2187; idx += 37 { // 3^7, sampled
		co := COFromCoord(idx)
		if got := co.Coord(); got != idx {
			t.Fatalf("COFromCoord(%d).Coord() = %d, want %d", idx, got, idx)
		}
		sum := 0
		for slot := 0; slot < 8; slot++ {
			sum += int(co.get(slot))
		}
		if sum%3 != 0 {
			t.Fatalf("COFromCoord(%d) twists sum to %d, want a multiple of 3", idx, sum)
		}
	}
}

func TestEOCoordRoundTrips(t *testing.T) {
	for idx := 0; idx < 2048; idx += 23 { // 2^11, sampled
		eo := EOFromCoord(idx)
		if got := eo.Coord(); got != idx {
			t.Fatalf("EOFromCoord(%d).Coord() = %d, want %d", idx, got, idx)
		}
		parity := 0
		for slot := 0; slot < 12; slot++ {
			parity ^= int(eo.get(slot))
		}
		if parity != 0 {
			t.Fatalf("EOFromCoord(%d) has odd flip parity", idx)
		}
	}
}

func TestEachQuarterTurnAppliedFourTimesIsIdentity(t *testing.T) {
	for _, m := range []Move{MoveU, MoveD, MoveF, MoveB, MoveR, MoveL} {
		c := SolvedCube()
		for i := 0; i < 4; i++ {
			c = c.ApplyMove(m)
		}
		if !c.IsSolved() {
			t.Errorf("applying %v four times should return to solved, got %+v", m, c)
		}
	}
}

func TestHalfTurnAppliedTwiceIsIdentity(t *testing.T) {
	for _, m := range []Move{MoveU2, MoveD2, MoveF2, MoveB2, MoveR2, MoveL2} {
		c := SolvedCube().ApplyMove(m).ApplyMove(m)
		if !c.IsSolved() {
			t.Errorf("applying %v twice should return to solved, got %+v", m, c)
		}
	}
}

func TestQuarterTurnIsNotSolved(t *testing.T) {
	c := SolvedCube().ApplyMove(MoveR)
	if c.IsSolved() {
		t.Fatal("a single R turn should not leave the cube solved")
	}
}

func TestMoveAndItsInverseCancelByCompose(t *testing.T) {
	for m := MoveU; m <= MoveLPrime; m++ {
		c := SolvedCube().ApplyMove(m).ApplyMove(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("%v followed by its inverse should solve the cube, got %+v", m, c)
		}
	}
}

func TestApplyMovesThenInverseSequenceSolves(t *testing.T) {
	moves, err := ParseScramble("R U R' U' F2 B L2 D' R2")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c := SolvedCube().ApplyMoves(moves)
	if c.IsSolved() {
		t.Fatal("expected the scramble to leave the cube unsolved")
	}

	inverse := make([]Move, len(moves))
	for i, m := range moves {
		inverse[len(moves)-1-i] = m.Inverse()
	}
	c = c.ApplyMoves(inverse)
	if !c.IsSolved() {
		t.Fatalf("applying the reversed, inverted scramble should solve the cube, got %+v", c)
	}
}

func TestDRSubgroupMovesPreserveIsDRUD(t *testing.T) {
	moves, err := ParseScramble("U D' F2 B2 R2 L2 U2 D")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c := SolvedCube().ApplyMoves(moves)
	if !c.IsDRUD() {
		t.Fatalf("a sequence drawn entirely from <U,D,F2,B2,R2,L2> should stay in the DR subgroup, got %+v", c)
	}
}

func TestQuarterTurnOfFLeavesDRSubgroup(t *testing.T) {
	c := SolvedCube().ApplyMove(MoveF)
	if c.IsDRUD() {
		t.Fatal("a single F turn should leave the DR subgroup (EO no longer oriented to F/B)")
	}
}

func TestCubeInverseUndoesApplyMoves(t *testing.T) {
	moves, _ := ParseScramble("R U2 F' D L B R2 U' F2 L'")
	c := SolvedCube().ApplyMoves(moves)
	undo := c.Inverse()
	result := c.Compose(undo)
	if !result.IsSolved() {
		t.Fatalf("c.Compose(c.Inverse()) should be solved, got %+v", result)
	}
}
