package cube

// CoordCOType is the corner-orientation coordinate: 3^7 = 2187 raw values.
type CoordCOType struct{}

func (CoordCOType) Name() string  { return "CO" }
func (CoordCOType) NValues() int  { return 2187 }
func (CoordCOType) Index(c Cube) int { return c.CO.Coord() }
func (CoordCOType) Rep(idx int) Cube {
	return Cube{CO: COFromCoord(idx), CP: IdentityPerm(8), EP: IdentityPerm(12)}
}
func (CoordCOType) Conj(c Cube, s Sym) Cube { return s.ConjCorners(c) }

// Syms is the 4-symmetry subgroup {UF, UB, DF, DB}, the same reduction
// used for this coordinate upstream.
func (CoordCOType) Syms() []Sym { return []Sym{SymUF, SymUB, SymDF, SymDB} }

var CoordCO = CoordCOType{}
