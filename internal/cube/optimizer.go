package cube

// OptimizeMoves collapses a move sequence into its shortest equivalent:
// consecutive turns of the same face are folded into a single turn (R R ->
// R2, R R R -> R', R2 R2 -> nothing), including cancellations that only
// appear once an earlier fold changes what's adjacent.
func OptimizeMoves(moves []Move) []Move {
	if len(moves) == 0 {
		return moves
	}

	optimized := make([]Move, 0, len(moves))
	for _, m := range moves {
		if len(optimized) > 0 && optimized[len(optimized)-1].Face() == m.Face() {
			last := optimized[len(optimized)-1]
			combined := combineSameFace(last, m)
			if combined == nil {
				optimized = optimized[:len(optimized)-1]
			} else {
				optimized[len(optimized)-1] = *combined
			}
			continue
		}
		optimized = append(optimized, m)
	}
	return optimized
}

// combineSameFace merges two consecutive turns of the same face into one,
// returning nil if they cancel out entirely.
func combineSameFace(first, second Move) *Move {
	total := (quarterTurns(first) + quarterTurns(second)) % 4
	if total == 0 {
		return nil
	}
	m := moveFromQuarterTurns(first.Face(), total)
	return &m
}

// quarterTurns counts m as 1, 2, or 3 clockwise quarter turns.
func quarterTurns(m Move) int {
	switch {
	case m.IsHalfTurn():
		return 2
	case m.IsClockwise():
		return 1
	default:
		return 3
	}
}

// moveFromQuarterTurns is the inverse of quarterTurns for a given face.
func moveFromQuarterTurns(f Face, n int) Move {
	base := Move(int(f) * 3)
	switch n {
	case 1:
		return base
	case 2:
		return base + 1
	default:
		return base + 2
	}
}

// OptimizeScramble parses, optimizes, and re-renders a move sequence.
func OptimizeScramble(scramble string) (string, error) {
	moves, err := ParseScramble(scramble)
	if err != nil {
		return "", err
	}
	return FormatMoves(OptimizeMoves(moves)), nil
}

// GetMoveCount returns the length of moves after optimization.
func GetMoveCount(moves []Move) int {
	return len(OptimizeMoves(moves))
}

// IsCancellingSequence reports whether moves reduces to a no-op.
func IsCancellingSequence(moves []Move) bool {
	return len(OptimizeMoves(moves)) == 0
}
