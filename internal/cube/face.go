package cube

import "fmt"

// Face identifies one of the six faces of the cube. The ordinal order matters:
// U and D must sort below F, B, R, L so that orientation twist/flip detection
// (the smallest face among a piece's stickers is always the U/D axis sticker)
// works without a special case.
type Face int

const (
	FaceU Face = iota
	FaceD
	FaceF
	FaceB
	FaceR
	FaceL
)

func (f Face) String() string {
	return [...]string{"U", "D", "F", "B", "R", "L"}[f]
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	default:
		return FaceR
	}
}

// ParseFace parses a single-character face label.
func ParseFace(s string) (Face, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("face label must be one character, got %q", s)
	}
	switch s[0] {
	case 'U', 'u':
		return FaceU, nil
	case 'D', 'd':
		return FaceD, nil
	case 'F', 'f':
		return FaceF, nil
	case 'B', 'b':
		return FaceB, nil
	case 'R', 'r':
		return FaceR, nil
	case 'L', 'l':
		return FaceL, nil
	default:
		return 0, fmt.Errorf("unrecognized face label %q", s)
	}
}

// Edge names one of the 12 edge slots. Coord is the slot's index in [0, 12),
// matching the bit/nibble position used by EO and EP.
type Edge int

const (
	EdgeUF Edge = iota
	EdgeUL
	EdgeUB
	EdgeUR
	EdgeDF
	EdgeDL
	EdgeDB
	EdgeDR
	EdgeFR
	EdgeFL
	EdgeBL
	EdgeBR
)

var edgeNames = [...]string{"UF", "UL", "UB", "UR", "DF", "DL", "DB", "DR", "FR", "FL", "BL", "BR"}

func (e Edge) Coord() int    { return int(e) }
func (e Edge) String() string { return edgeNames[e] }

// EdgeFromCoord inverts Coord.
func EdgeFromCoord(c int) Edge { return Edge(c) }

// edgeFaces gives the two home faces of an edge piece, in no particular order.
var edgeFaces = [...][2]Face{
	EdgeUF: {FaceU, FaceF},
	EdgeUL: {FaceU, FaceL},
	EdgeUB: {FaceU, FaceB},
	EdgeUR: {FaceU, FaceR},
	EdgeDF: {FaceD, FaceF},
	EdgeDL: {FaceD, FaceL},
	EdgeDB: {FaceD, FaceB},
	EdgeDR: {FaceD, FaceR},
	EdgeFR: {FaceF, FaceR},
	EdgeFL: {FaceF, FaceL},
	EdgeBL: {FaceB, FaceL},
	EdgeBR: {FaceB, FaceR},
}

// EdgeFromFaces identifies the edge whose two home faces are {a, b} (order
// doesn't matter). Returns an error if no edge touches both faces.
func EdgeFromFaces(a, b Face) (Edge, error) {
	for e, faces := range edgeFaces {
		if (faces[0] == a && faces[1] == b) || (faces[0] == b && faces[1] == a) {
			return Edge(e), nil
		}
	}
	return 0, fmt.Errorf("no edge touches faces %s and %s", a, b)
}

// Corner names one of the 8 corner slots, coord in [0, 8).
type Corner int

const (
	CornerUFR Corner = iota
	CornerUFL
	CornerUBL
	CornerUBR
	CornerDFR
	CornerDFL
	CornerDBL
	CornerDBR
)

var cornerNames = [...]string{"UFR", "UFL", "UBL", "UBR", "DFR", "DFL", "DBL", "DBR"}

func (c Corner) Coord() int     { return int(c) }
func (c Corner) String() string { return cornerNames[c] }

func CornerFromCoord(c int) Corner { return Corner(c) }

var cornerFaces = [...][3]Face{
	CornerUFR: {FaceU, FaceF, FaceR},
	CornerUFL: {FaceU, FaceF, FaceL},
	CornerUBL: {FaceU, FaceB, FaceL},
	CornerUBR: {FaceU, FaceB, FaceR},
	CornerDFR: {FaceD, FaceF, FaceR},
	CornerDFL: {FaceD, FaceF, FaceL},
	CornerDBL: {FaceD, FaceB, FaceL},
	CornerDBR: {FaceD, FaceB, FaceR},
}

// CornerFromFaces identifies the corner whose three home faces are the set
// {a, b, c} (order doesn't matter).
func CornerFromFaces(a, b, c Face) (Corner, error) {
	want := [3]Face{a, b, c}
	for corner, faces := range cornerFaces {
		if sameFaceSet(faces, want) {
			return Corner(corner), nil
		}
	}
	return 0, fmt.Errorf("no corner touches faces %s, %s, %s", a, b, c)
}

func sameFaceSet(a, b [3]Face) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
