package cube

import "fmt"

// Move is one of the 18 face turns: six faces times {clockwise, half-turn,
// counter-clockwise}.
type Move int

const (
	MoveU Move = iota
	MoveU2
	MoveUPrime
	MoveD
	MoveD2
	MoveDPrime
	MoveF
	MoveF2
	MoveFPrime
	MoveB
	MoveB2
	MoveBPrime
	MoveR
	MoveR2
	MoveRPrime
	MoveL
	MoveL2
	MoveLPrime
)

var moveNames = [...]string{
	"U", "U2", "U'",
	"D", "D2", "D'",
	"F", "F2", "F'",
	"B", "B2", "B'",
	"R", "R2", "R'",
	"L", "L2", "L'",
}

func (m Move) String() string { return moveNames[m] }

var moveTokens = func() map[string]Move {
	out := make(map[string]Move, len(moveNames))
	for i, s := range moveNames {
		out[s] = Move(i)
	}
	return out
}()

// ParseMove parses a single move token such as "R", "R2", or "R'".
func ParseMove(s string) (Move, error) {
	m, ok := moveTokens[s]
	if !ok {
		return 0, fmt.Errorf("unrecognized move token %q", s)
	}
	return m, nil
}

// Face returns the face this move turns.
func (m Move) Face() Face {
	switch m / 3 {
	case 0:
		return FaceU
	case 1:
		return FaceD
	case 2:
		return FaceF
	case 3:
		return FaceB
	case 4:
		return FaceR
	default:
		return FaceL
	}
}

// IsHalfTurn reports whether m is a 180-degree turn.
func (m Move) IsHalfTurn() bool { return m%3 == 1 }

// IsClockwise reports whether m is a single clockwise quarter turn.
func (m Move) IsClockwise() bool { return m%3 == 0 }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m % 3 {
	case 0:
		return m + 2
	case 2:
		return m - 2
	default:
		return m
	}
}

// AllMoves returns all 18 moves, used by phase 1 of the solver.
func AllMoves() []Move {
	out := make([]Move, 18)
	for i := range out {
		out[i] = Move(i)
	}
	return out
}

// DRUDMoveset returns the 10 moves that stay within <U,D,F2,B2,R2,L2>, used
// by phase 2 of the solver once the cube has reached the DR subgroup.
func DRUDMoveset() []Move {
	return []Move{
		MoveU, MoveU2, MoveUPrime,
		MoveD, MoveD2, MoveDPrime,
		MoveF2, MoveB2, MoveR2, MoveL2,
	}
}

// CancelsWith reports whether applying m right after last undoes it (same
// face, and together a no-op or reducible to a single cheaper turn).
func (m Move) CancelsWith(last Move) bool {
	return m.Face() == last.Face()
}

// CommutesWith reports whether m and last act on opposite faces and so can
// be freely reordered; used to canonicalize move sequences during search by
// forbidding, e.g., R after L (only allowing L after R).
func (m Move) CommutesWith(last Move) bool {
	return m.Face() == last.Face().Opposite()
}
