// Package facelet renders a Cube as the 54 physical stickers a solver holding
// the cube would see, and parses that view back into a Cube. Two textual
// forms build on the same geometry: the 9x12 facelet-net block read on
// standard input, and the flattened 54-sticker arrays the cfen package
// compresses into CFEN strings.
package facelet

import "github.com/ehrlich-b/cube/internal/cube"

// up and right give, for each face, the neighboring face that borders its
// top row and right column respectively, using the standard net unfolding
// (U above F, each side face's right column touching the next face
// clockwise around the equator). left and down follow from Opposite.
func up(f cube.Face) cube.Face {
	switch f {
	case cube.FaceU:
		return cube.FaceB
	case cube.FaceD:
		return cube.FaceF
	default:
		return cube.FaceU
	}
}

func right(f cube.Face) cube.Face {
	switch f {
	case cube.FaceB:
		return cube.FaceL
	case cube.FaceR:
		return cube.FaceB
	case cube.FaceL:
		return cube.FaceF
	default:
		return cube.FaceR
	}
}

func left(f cube.Face) cube.Face  { return right(f).Opposite() }
func down(f cube.Face) cube.Face  { return up(f).Opposite() }

// pieceKind tags what occupies one of the 9 cells of a face's 3x3 grid.
type pieceKind int

const (
	kindCenter pieceKind = iota
	kindEdge
	kindCorner
)

// cell describes one grid position: which piece slot sits there, and which
// index (into that slot's home-face order) this particular cell reads.
type cell struct {
	kind   pieceKind
	corner cube.Corner
	edge   cube.Edge
	home   int
}

// cellAt resolves the (face, row, col) grid position -- row and col in
// [0,3) -- to the physical slot and home-face index it represents.
func cellAt(f cube.Face, row, col int) cell {
	switch {
	case row == 1 && col == 1:
		return cell{kind: kindCenter}
	case row == 0 && col == 1:
		e, _ := cube.EdgeFromFaces(f, up(f))
		return cell{kind: kindEdge, edge: e, home: homeIndexEdge(e, f)}
	case row == 2 && col == 1:
		e, _ := cube.EdgeFromFaces(f, down(f))
		return cell{kind: kindEdge, edge: e, home: homeIndexEdge(e, f)}
	case row == 1 && col == 0:
		e, _ := cube.EdgeFromFaces(f, left(f))
		return cell{kind: kindEdge, edge: e, home: homeIndexEdge(e, f)}
	case row == 1 && col == 2:
		e, _ := cube.EdgeFromFaces(f, right(f))
		return cell{kind: kindEdge, edge: e, home: homeIndexEdge(e, f)}
	case row == 0 && col == 0:
		c, _ := cube.CornerFromFaces(f, up(f), left(f))
		return cell{kind: kindCorner, corner: c, home: homeIndexCorner(c, f)}
	case row == 0 && col == 2:
		c, _ := cube.CornerFromFaces(f, up(f), right(f))
		return cell{kind: kindCorner, corner: c, home: homeIndexCorner(c, f)}
	case row == 2 && col == 0:
		c, _ := cube.CornerFromFaces(f, down(f), left(f))
		return cell{kind: kindCorner, corner: c, home: homeIndexCorner(c, f)}
	default: // row == 2 && col == 2
		c, _ := cube.CornerFromFaces(f, down(f), right(f))
		return cell{kind: kindCorner, corner: c, home: homeIndexCorner(c, f)}
	}
}

// cornerHomeFaces recovers the ordered {faceA, faceB, faceC} a corner's name
// encodes -- Corner.String() always spells a corner as its three home faces
// in that fixed order (e.g. "UFR" is {U, F, R}), the same order CO twist
// values are measured against.
func cornerHomeFaces(c cube.Corner) [3]cube.Face {
	s := c.String()
	var out [3]cube.Face
	for i := 0; i < 3; i++ {
		out[i], _ = cube.ParseFace(s[i : i+1])
	}
	return out
}

// edgeHomeFaces is cornerHomeFaces's edge counterpart ("UF" is {U, F}).
func edgeHomeFaces(e cube.Edge) [2]cube.Face {
	s := e.String()
	var out [2]cube.Face
	for i := 0; i < 2; i++ {
		out[i], _ = cube.ParseFace(s[i : i+1])
	}
	return out
}

// homeIndexCorner reports which of corner c's three home faces is f.
func homeIndexCorner(c cube.Corner, f cube.Face) int {
	faces := cornerHomeFaces(c)
	for i, x := range faces {
		if x == f {
			return i
		}
	}
	return -1
}

// homeIndexEdge is homeIndexCorner's edge counterpart.
func homeIndexEdge(e cube.Edge, f cube.Face) int {
	faces := edgeHomeFaces(e)
	for i, x := range faces {
		if x == f {
			return i
		}
	}
	return -1
}

// cornerSticker reports the color (expressed as the face it is painted
// with) shown at home-index h of the corner currently sitting in the slot
// that, when solved, belongs to origin o and was twisted by v.
func cornerSticker(o cube.Corner, v uint8, h int) cube.Face {
	faces := cornerHomeFaces(o)
	return faces[(h+int(v))%3]
}

// edgeSticker is cornerSticker's edge counterpart.
func edgeSticker(o cube.Edge, v uint8, h int) cube.Face {
	faces := edgeHomeFaces(o)
	return faces[(h+int(v))%2]
}
