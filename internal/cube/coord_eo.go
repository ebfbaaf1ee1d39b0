package cube

// CoordEOType is the edge-orientation coordinate: 2^11 = 2048 raw values.
type CoordEOType struct{}

func (CoordEOType) Name() string     { return "EO" }
func (CoordEOType) NValues() int     { return 2048 }
func (CoordEOType) Index(c Cube) int { return c.EO.Coord() }
func (CoordEOType) Rep(idx int) Cube {
	return Cube{EO: EOFromCoord(idx), CP: IdentityPerm(8), EP: IdentityPerm(12)}
}
func (CoordEOType) Conj(c Cube, s Sym) Cube { return s.ConjEdges(c) }

// Syms is the 8-symmetry subgroup {UF, UB, DF, DB, UF2, UB2, DF2, DB2}.
func (CoordEOType) Syms() []Sym {
	return []Sym{SymUF, SymUB, SymDF, SymDB, SymUF2, SymUB2, SymDF2, SymDB2}
}

var CoordEO = CoordEOType{}
