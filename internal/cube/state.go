package cube

// CO packs the twist (0, 1, or 2) of each of the 8 corner slots, 2 bits
// each, low to high by slot index. Legal values always sum to 0 mod 3.
type CO uint16

// EO packs the flip (0 or 1) of each of the 12 edge slots, one bit each,
// low to high by slot index. Legal values always have even parity.
type EO uint16

// addMod3 is a lookup table for branch-free (no conditional subtraction)
// orientation addition.
var addMod3 = [3][3]uint8{
	{0, 1, 2},
	{1, 2, 0},
	{2, 0, 1},
}

func (co CO) get(slot int) uint8 {
	return uint8((co >> (2 * uint(slot))) & 3)
}

func (co CO) set(slot int, v uint8) CO {
	mask := CO(3) << (2 * uint(slot))
	return (co &^ mask) | (CO(v) << (2 * uint(slot)))
}

func (eo EO) get(slot int) uint8 {
	return uint8((eo >> uint(slot)) & 1)
}

func (eo EO) set(slot int, v uint8) EO {
	mask := EO(1) << uint(slot)
	if v&1 != 0 {
		return eo | mask
	}
	return eo &^ mask
}

// Coord packs CO into a base-3 index over its first 7 slots; the 8th is
// always determined by the zero-sum invariant and carries no information.
func (co CO) Coord() int {
	idx := 0
	for slot := 0; slot < 7; slot++ {
		idx = idx*3 + int(co.get(slot))
	}
	return idx
}

// COFromCoord inverts Coord, filling in the 8th slot so the twists sum to
// 0 mod 3.
func COFromCoord(idx int) CO {
	var digits [7]uint8
	for slot := 6; slot >= 0; slot-- {
		digits[slot] = uint8(idx % 3)
		idx /= 3
	}
	var out CO
	sum := 0
	for slot := 0; slot < 7; slot++ {
		out = out.set(slot, digits[slot])
		sum += int(digits[slot])
	}
	last := uint8((3 - sum%3) % 3)
	out = out.set(7, last)
	return out
}

// Coord packs EO into a base-2 index over its first 11 slots; the 12th is
// always determined by the even-parity invariant.
func (eo EO) Coord() int {
	return int(eo & 0x7FF)
}

// EOFromCoord inverts Coord, filling in the 12th slot so parity is even.
func EOFromCoord(idx int) EO {
	v := EO(idx) & 0x7FF
	parity := 0
	for slot := 0; slot < 11; slot++ {
		parity ^= int(v.get(slot))
	}
	return v.set(11, uint8(parity))
}

// Cube is the full cubie-level state: corner/edge orientation and
// corner/edge permutation, each indexed by physical slot.
type Cube struct {
	CO CO
	EO EO
	CP Perm
	EP Perm
}

// SolvedCube is the identity state.
func SolvedCube() Cube {
	return Cube{CO: 0, EO: 0, CP: IdentityPerm(8), EP: IdentityPerm(12)}
}

// ComposeCorners composes just the corner half of two states (used by
// symmetry conjugation of corner-only coordinates).
func (c Cube) ComposeCorners(m Cube) Cube {
	out := Cube{CP: c.CP.Compose(m.CP), EP: IdentityPerm(12)}
	for slot := 0; slot < 8; slot++ {
		j := m.CP.Dest(slot)
		out.CO = out.CO.set(j, addMod3[c.CO.get(slot)][m.CO.get(j)])
	}
	return out
}

// ComposeEdges composes just the edge half of two states.
func (c Cube) ComposeEdges(m Cube) Cube {
	out := Cube{EP: c.EP.Compose(m.EP), CP: IdentityPerm(8)}
	for slot := 0; slot < 12; slot++ {
		j := m.EP.Dest(slot)
		out.EO = out.EO.set(j, c.EO.get(slot)^m.EO.get(j))
	}
	return out
}

// Compose returns c-then-m: the state reached by being at c and then
// applying the transformation m.
func (c Cube) Compose(m Cube) Cube {
	corners := c.ComposeCorners(m)
	edges := c.ComposeEdges(m)
	return Cube{CO: corners.CO, CP: corners.CP, EO: edges.EO, EP: edges.EP}
}

// ApplyMove turns a single face per mov.
func (c Cube) ApplyMove(mov Move) Cube {
	return c.Compose(moveCubes[mov])
}

// ApplyMoves applies a sequence of moves in order.
func (c Cube) ApplyMoves(moves []Move) Cube {
	for _, m := range moves {
		c = c.ApplyMove(m)
	}
	return c
}

// IsCOUD reports whether every corner is oriented relative to the U/D axis.
func (c Cube) IsCOUD() bool { return c.CO == 0 }

// IsEOFB reports whether every edge is oriented relative to the F/B axis.
func (c Cube) IsEOFB() bool { return c.EO == 0 }

// eSliceMask marks the four edges (FR, FL, BL, BR) that belong in the
// equatorial slice between U and D.
const eSliceMask uint16 = 1<<uint(EdgeFR) | 1<<uint(EdgeFL) | 1<<uint(EdgeBL) | 1<<uint(EdgeBR)

// IsDRUD reports whether c has reached the <U,D,F2,B2,R2,L2> subgroup:
// corners and edges both oriented, and the E-slice edges occupy E-slice
// positions (though not necessarily in solved order).
func (c Cube) IsDRUD() bool {
	return c.IsCOUD() && c.IsEOFB() && c.EP.IndexPartialUnordered(eSliceMask) == 0
}

// IsSolved reports whether c is the identity state.
func (c Cube) IsSolved() bool {
	return c.CO == 0 && c.EO == 0 && c.CP.Index() == 0 && c.EP.Index() == 0
}

// buildMove constructs one of the six base face-turn cube values from its
// 4-cycles (source slot order) and per-slot orientation deltas.
func buildMove(edgeCycle [4]Edge, edgeFlip bool, cornerCycle [4]Corner, cornerTwist [4]uint8) Cube {
	ep := IdentityPerm(12)
	var eo EO
	for i, e := range edgeCycle {
		next := edgeCycle[(i+1)%4]
		ep = ep.setDest(int(e), int(next))
		if edgeFlip {
			eo = eo.set(int(e), 1)
		}
	}
	cp := IdentityPerm(8)
	var co CO
	for i, cn := range cornerCycle {
		next := cornerCycle[(i+1)%4]
		cp = cp.setDest(int(cn), int(next))
		co = co.set(int(cn), cornerTwist[i])
	}
	return Cube{CO: co, EO: eo, CP: cp, EP: ep}
}

// moveCubes holds the cube transformation for each of the 18 moves, derived
// from the 6 clockwise base turns by composing doubles and inverses so
// that group identities (X2 = X . X, X' = X^-1) hold by construction.
var moveCubes [18]Cube

func init() {
	u := buildMove(
		[4]Edge{EdgeUF, EdgeUL, EdgeUB, EdgeUR}, false,
		[4]Corner{CornerUBR, CornerUFR, CornerUFL, CornerUBL}, [4]uint8{0, 0, 0, 0},
	)
	d := buildMove(
		[4]Edge{EdgeDF, EdgeDR, EdgeDB, EdgeDL}, false,
		[4]Corner{CornerDFR, CornerDBR, CornerDBL, CornerDFL}, [4]uint8{0, 0, 0, 0},
	)
	f := buildMove(
		[4]Edge{EdgeUF, EdgeFR, EdgeDF, EdgeFL}, true,
		[4]Corner{CornerUFR, CornerDFR, CornerDFL, CornerUFL}, [4]uint8{1, 2, 1, 2},
	)
	b := buildMove(
		[4]Edge{EdgeUB, EdgeBL, EdgeDB, EdgeBR}, true,
		[4]Corner{CornerUBR, CornerUBL, CornerDBL, CornerDBR}, [4]uint8{1, 2, 1, 2},
	)
	r := buildMove(
		[4]Edge{EdgeUR, EdgeBR, EdgeDR, EdgeFR}, false,
		[4]Corner{CornerUFR, CornerUBR, CornerDBR, CornerDFR}, [4]uint8{1, 2, 1, 2},
	)
	l := buildMove(
		[4]Edge{EdgeUL, EdgeFL, EdgeDL, EdgeBL}, false,
		[4]Corner{CornerUFL, CornerDFL, CornerDBL, CornerUBL}, [4]uint8{1, 2, 1, 2},
	)

	base := [6]Cube{u, d, f, b, r, l}
	for i, cube := range base {
		cw := cube
		ccw := cube.Inverse()
		half := cube.Compose(cube)
		moveCubes[i*3] = cw
		moveCubes[i*3+1] = half
		moveCubes[i*3+2] = ccw
	}
}

// Inverse returns the cube transformation that undoes c. Compose adds the
// second operand's orientation delta at the destination slot, so the
// inverse's delta at slot i must be the negation of c's delta at the slot
// that maps to i under c.CP/c.EP -- not the same-slot negation, since
// corner twist (and in general edge flip) need not be constant along a
// move's cycle.
func (c Cube) Inverse() Cube {
	cpInv := c.CP.Inverse()
	epInv := c.EP.Inverse()
	var co CO
	for i := 0; i < 8; i++ {
		v := c.CO.get(c.CP.Dest(i))
		co = co.set(i, (3-v)%3)
	}
	var eo EO
	for i := 0; i < 12; i++ {
		eo = eo.set(i, c.EO.get(c.EP.Dest(i)))
	}
	return Cube{CO: co, EO: eo, CP: cpInv, EP: epInv}
}
