package cube

// CoordCPType is the corner-permutation coordinate: 8! = 40320 raw values.
type CoordCPType struct{}

func (CoordCPType) Name() string     { return "CP" }
func (CoordCPType) NValues() int     { return 40320 }
func (CoordCPType) Index(c Cube) int { return c.CP.Index() }
func (CoordCPType) Rep(idx int) Cube {
	return Cube{CP: PermFromIndex(8, idx), EP: IdentityPerm(12)}
}
func (CoordCPType) Conj(c Cube, s Sym) Cube { return s.ConjCorners(c) }

// Syms is the full 16-symmetry group: corner permutation legality doesn't
// depend on orientation, so every symmetry that preserves the U/D axis
// applies.
func (CoordCPType) Syms() []Sym { return AllSyms() }

var CoordCP = CoordCPType{}
