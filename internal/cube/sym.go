package cube

// Sym is an element of the 16-element symmetry group that stabilizes the
// U/D axis as a set: the four rotations about that axis, times whether U
// and D are swapped (the X2 flip), times whether the cube is mirrored
// through the plane containing the U/D and F/B axes (the L/R mirror). Every
// element keeps the E-slice in place, which is what makes the group useful
// for shrinking coordinate tables; CoordCO and CoordEO reduce by smaller
// subgroups of it (see their Syms).
//
// A Sym is represented the same way a rigid reorientation of physical
// space would be: as a relabeling of the 8 corner slots and 12 edge slots,
// plus a flag recording whether the relabeling reverses handedness (so
// that corner twist values 1 and 2, which are defined relative to a fixed
// handedness, get swapped when conjugating through it).
type Sym struct {
	cp     Perm
	ep     Perm
	mirror bool
}

type vec3 struct{ x, y, z int }

func faceVec(f Face) vec3 {
	switch f {
	case FaceU:
		return vec3{0, 1, 0}
	case FaceD:
		return vec3{0, -1, 0}
	case FaceF:
		return vec3{0, 0, 1}
	case FaceB:
		return vec3{0, 0, -1}
	case FaceR:
		return vec3{1, 0, 0}
	default:
		return vec3{-1, 0, 0}
	}
}

func vecToFace(v vec3) Face {
	for f := FaceU; f <= FaceL; f++ {
		w := faceVec(f)
		if w == v {
			return f
		}
	}
	panic("vecToFace: not a unit axis vector")
}

func cross(a, b vec3) vec3 {
	return vec3{
		x: a.y*b.z - a.z*b.y,
		y: a.z*b.x - a.x*b.z,
		z: a.x*b.y - a.y*b.x,
	}
}

// buildSym constructs the symmetry that sends U to top and F to front
// (a proper rotation determines the rest of the face map), optionally
// followed by the L/R mirror.
func buildSym(top, front Face, mirror bool) Sym {
	right := vecToFace(cross(faceVec(top), faceVec(front)))
	back := front.Opposite()
	left := right.Opposite()
	down := top.Opposite()

	faceImage := map[Face]Face{
		FaceU: top, FaceD: down,
		FaceF: front, FaceB: back,
		FaceR: right, FaceL: left,
	}
	if mirror {
		faceImage[FaceR], faceImage[FaceL] = faceImage[FaceL], faceImage[FaceR]
	}

	ep := Perm{n: 12}
	for e := EdgeUF; e <= EdgeBR; e++ {
		faces := edgeFaces[e]
		dst, err := EdgeFromFaces(faceImage[faces[0]], faceImage[faces[1]])
		if err != nil {
			panic(err)
		}
		ep = ep.setDest(int(e), int(dst))
	}

	cp := Perm{n: 8}
	for c := CornerUFR; c <= CornerDBR; c++ {
		faces := cornerFaces[c]
		dst, err := CornerFromFaces(faceImage[faces[0]], faceImage[faces[1]], faceImage[faces[2]])
		if err != nil {
			panic(err)
		}
		cp = cp.setDest(int(c), int(dst))
	}

	return Sym{cp: cp, ep: ep, mirror: mirror}
}

// The 16 symmetries, named by which face ends up on top and which ends up
// in front, with a "2" suffix when mirrored.
var (
	SymUF  = buildSym(FaceU, FaceF, false)
	SymUR  = buildSym(FaceU, FaceR, false)
	SymUB  = buildSym(FaceU, FaceB, false)
	SymUL  = buildSym(FaceU, FaceL, false)
	SymDF  = buildSym(FaceD, FaceF, false)
	SymDR  = buildSym(FaceD, FaceR, false)
	SymDB  = buildSym(FaceD, FaceB, false)
	SymDL  = buildSym(FaceD, FaceL, false)
	SymUF2 = buildSym(FaceU, FaceF, true)
	SymUR2 = buildSym(FaceU, FaceR, true)
	SymUB2 = buildSym(FaceU, FaceB, true)
	SymUL2 = buildSym(FaceU, FaceL, true)
	SymDF2 = buildSym(FaceD, FaceF, true)
	SymDR2 = buildSym(FaceD, FaceR, true)
	SymDB2 = buildSym(FaceD, FaceB, true)
	SymDL2 = buildSym(FaceD, FaceL, true)
)

// AllSyms returns all 16 symmetries, used by coordinates whose legality is
// invariant under the full group (CoordCP, CoordEP, CoordESlice, CoordESliceEP).
func AllSyms() []Sym {
	return []Sym{
		SymUF, SymUR, SymUB, SymUL,
		SymDF, SymDR, SymDB, SymDL,
		SymUF2, SymUR2, SymUB2, SymUL2,
		SymDF2, SymDR2, SymDB2, SymDL2,
	}
}

// Compose returns s-then-t, the symmetry obtained by relabeling with s and
// then again with t.
func (s Sym) Compose(t Sym) Sym {
	return Sym{
		cp:     s.cp.Compose(t.cp),
		ep:     s.ep.Compose(t.ep),
		mirror: s.mirror != t.mirror,
	}
}

// Inverse returns the symmetry that undoes s.
func (s Sym) Inverse() Sym {
	return Sym{cp: s.cp.Inverse(), ep: s.ep.Inverse(), mirror: s.mirror}
}

// Conj returns the cube obtained by conjugating c through s: relabel every
// slot by s, and swap each corner's twist sense if s reverses handedness.
func (s Sym) Conj(c Cube) Cube {
	corners := s.ConjCorners(c)
	edges := s.ConjEdges(c)
	return Cube{CO: corners.CO, CP: corners.CP, EO: edges.EO, EP: edges.EP}
}

// ConjCorners conjugates just the corner half of c through s.
func (s Sym) ConjCorners(c Cube) Cube {
	out := Cube{CP: conjPerm(c.CP, s.cp), EP: IdentityPerm(12)}
	for slot := 0; slot < 8; slot++ {
		v := c.CO.get(slot)
		if s.mirror && v != 0 {
			v = 3 - v
		}
		out.CO = out.CO.set(s.cp.Dest(slot), v)
	}
	return out
}

// ConjEdges conjugates just the edge half of c through s.
func (s Sym) ConjEdges(c Cube) Cube {
	out := Cube{EP: conjPerm(c.EP, s.ep), CP: IdentityPerm(8)}
	for slot := 0; slot < 12; slot++ {
		out.EO = out.EO.set(s.ep.Dest(slot), c.EO.get(slot))
	}
	return out
}

// conjPerm computes g . p . g^-1 expressed on Perm's Dest representation:
// for every home index i, the relabeled permutation sends g(i) to g(p(i)).
func conjPerm(p, g Perm) Perm {
	out := Perm{n: p.n}
	for i := 0; i < p.n; i++ {
		out = out.setDest(g.Dest(i), g.Dest(p.Dest(i)))
	}
	return out
}
