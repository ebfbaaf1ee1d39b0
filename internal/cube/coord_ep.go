package cube

// nonESliceEdges lists, in a fixed order, the 8 edges that do not belong to
// the equatorial E-slice (the other 4 are FL, FR, BL, BR).
var nonESliceEdges = []int{int(EdgeUF), int(EdgeUL), int(EdgeUB), int(EdgeUR), int(EdgeDF), int(EdgeDL), int(EdgeDB), int(EdgeDR)}

// CoordEPType is the edge-permutation coordinate restricted to the 8
// non-E-slice edges: 8! = 40320 raw values. Only meaningful once a cube has
// reached the DR subgroup, where those 8 edges never leave the non-E-slice
// positions.
type CoordEPType struct{}

func (CoordEPType) Name() string     { return "EP" }
func (CoordEPType) NValues() int     { return 40320 }
func (CoordEPType) Index(c Cube) int { return c.EP.Mask(nonESliceEdges).Index() }

func (CoordEPType) Rep(idx int) Cube {
	sub := PermFromIndex(8, idx)
	dests := make([]int, 12)
	for _, e := range []int{int(EdgeFL), int(EdgeFR), int(EdgeBL), int(EdgeBR)} {
		dests[e] = e
	}
	for j, e := range nonESliceEdges {
		dests[e] = nonESliceEdges[sub.Dest(j)]
	}
	return Cube{EP: PermFromDests(dests), CP: IdentityPerm(8)}
}

func (CoordEPType) Conj(c Cube, s Sym) Cube { return s.ConjEdges(c) }

// Syms is the full 16-symmetry group.
func (CoordEPType) Syms() []Sym { return AllSyms() }

var CoordEP = CoordEPType{}
