package facelet

import "github.com/ehrlich-b/cube/internal/cube"

// FaceOrder is the face order CFEN-style 54-sticker arrays use.
var FaceOrder = [6]cube.Face{cube.FaceU, cube.FaceR, cube.FaceF, cube.FaceD, cube.FaceL, cube.FaceB}

// Facelets renders c as 54 stickers, grouped by FaceOrder and row-major
// within each face's 3x3 grid. Each sticker is expressed as the Face whose
// color is painted on it.
func Facelets(c cube.Cube) [54]cube.Face {
	var out [54]cube.Face
	i := 0
	for _, f := range FaceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				out[i] = stickerAt(c, f, row, col)
				i++
			}
		}
	}
	return out
}

// stickerAt computes the color shown at one grid cell. CO and EO are
// bit-packed per-slot (2 bits and 1 bit respectively, documented on their
// types), so their per-slot values are read directly rather than through an
// exported accessor.
func stickerAt(c cube.Cube, f cube.Face, row, col int) cube.Face {
	cl := cellAt(f, row, col)
	switch cl.kind {
	case kindCenter:
		return f
	case kindEdge:
		o := c.EP.Inverse().Dest(cl.edge.Coord())
		v := uint8((c.EO >> uint(o)) & 1)
		return edgeSticker(cube.EdgeFromCoord(o), v, cl.home)
	default:
		o := c.CP.Inverse().Dest(cl.corner.Coord())
		v := uint8((c.CO >> (2 * uint(o))) & 3)
		return cornerSticker(cube.CornerFromCoord(o), v, cl.home)
	}
}

// FromFacelets is the inverse of Facelets: it reconstructs a Cube from 54
// stickers, validating the result is a physically legal cube state.
func FromFacelets(stickers [54]cube.Face) (cube.Cube, error) {
	cornerColors := make(map[cube.Corner][3]cube.Face)
	cornerSeen := make(map[cube.Corner]bool, 8)
	edgeColors := make(map[cube.Edge][2]cube.Face)
	edgeSeen := make(map[cube.Edge]bool, 12)

	i := 0
	for _, f := range FaceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				color := stickers[i]
				i++
				cl := cellAt(f, row, col)
				switch cl.kind {
				case kindCenter:
					if color != f {
						return cube.Cube{}, &cube.InvalidCubeError{
							Reason: "center sticker on face " + f.String() + " does not match its own face",
						}
					}
				case kindEdge:
					entry := edgeColors[cl.edge]
					entry[cl.home] = color
					edgeColors[cl.edge] = entry
					edgeSeen[cl.edge] = true
				case kindCorner:
					entry := cornerColors[cl.corner]
					entry[cl.home] = color
					cornerColors[cl.corner] = entry
					cornerSeen[cl.corner] = true
				}
			}
		}
	}

	if len(edgeSeen) != 12 || len(cornerSeen) != 8 {
		return cube.Cube{}, &cube.InvalidCubeError{Reason: "facelet set does not cover all 20 pieces"}
	}

	var co cube.CO
	var eo cube.EO
	cornerDests := make([]int, 8)
	edgeDests := make([]int, 12)

	for slot, colors := range cornerColors {
		occupant, err := cube.CornerFromFaces(colors[0], colors[1], colors[2])
		if err != nil {
			return cube.Cube{}, &cube.InvalidCubeError{Reason: "corner at " + slot.String() + ": " + err.Error()}
		}
		home := cornerHomeFaces(occupant)
		v := -1
		for j, want := range home {
			if want == colors[0] {
				v = j
				break
			}
		}
		if v < 0 {
			return cube.Cube{}, &cube.InvalidCubeError{Reason: "corner at " + slot.String() + " has an inconsistent twist"}
		}
		for h := 0; h < 3; h++ {
			if home[(v+h)%3] != colors[h] {
				return cube.Cube{}, &cube.InvalidCubeError{Reason: "corner at " + slot.String() + " has stickers from more than one piece"}
			}
		}
		cornerDests[occupant.Coord()] = slot.Coord()
		co |= cube.CO(uint8(v)) << (2 * uint(occupant.Coord()))
	}

	for slot, colors := range edgeColors {
		occupant, err := cube.EdgeFromFaces(colors[0], colors[1])
		if err != nil {
			return cube.Cube{}, &cube.InvalidCubeError{Reason: "edge at " + slot.String() + ": " + err.Error()}
		}
		home := edgeHomeFaces(occupant)
		v := -1
		for j, want := range home {
			if want == colors[0] {
				v = j
				break
			}
		}
		if v < 0 {
			return cube.Cube{}, &cube.InvalidCubeError{Reason: "edge at " + slot.String() + " has an inconsistent flip"}
		}
		for h := 0; h < 2; h++ {
			if home[(v+h)%2] != colors[h] {
				return cube.Cube{}, &cube.InvalidCubeError{Reason: "edge at " + slot.String() + " has stickers from more than one piece"}
			}
		}
		edgeDests[occupant.Coord()] = slot.Coord()
		eo |= cube.EO(uint8(v)) << uint(occupant.Coord())
	}

	return assembleCube(co, eo, cornerDests, edgeDests)
}

// assembleCube builds a Cube from raw per-origin dests and orientation bits
// and checks the physical legality invariants every real cube state obeys.
func assembleCube(co cube.CO, eo cube.EO, cornerDests, edgeDests []int) (cube.Cube, error) {
	cp := cube.PermFromDests(cornerDests)
	ep := cube.PermFromDests(edgeDests)
	if !cp.IsValid() || !ep.IsValid() {
		return cube.Cube{}, &cube.InvalidCubeError{Reason: "facelet set does not name a bijection of pieces to slots"}
	}

	var coSum int
	for slot := 0; slot < 8; slot++ {
		coSum += int((co >> (2 * uint(slot))) & 3)
	}
	if coSum%3 != 0 {
		return cube.Cube{}, &cube.InvalidCubeError{Reason: "corner twists do not sum to 0 mod 3"}
	}

	eoParity := 0
	for slot := 0; slot < 12; slot++ {
		eoParity ^= int((eo >> uint(slot)) & 1)
	}
	if eoParity != 0 {
		return cube.Cube{}, &cube.InvalidCubeError{Reason: "edge flips do not have even parity"}
	}

	if cp.Parity() != ep.Parity() {
		return cube.Cube{}, &cube.InvalidCubeError{Reason: "corner and edge permutation parities disagree"}
	}

	return cube.Cube{CO: co, EO: eo, CP: cp, EP: ep}, nil
}
