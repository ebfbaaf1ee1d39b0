package cube

// eSliceEdgeOrder fixes the order FL, FR, BL, BR used to rank their
// permutation.
var eSliceEdgeOrder = []int{int(EdgeFL), int(EdgeFR), int(EdgeBL), int(EdgeBR)}

// CoordESliceEPType ranks the permutation of the 4 E-slice edges among
// themselves: 4! = 24 raw values. The auxiliary coordinate for the
// phase-2 pruning tables.
type CoordESliceEPType struct{}

func (CoordESliceEPType) Name() string     { return "ESliceEP" }
func (CoordESliceEPType) NValues() int     { return 24 }
func (CoordESliceEPType) Index(c Cube) int { return c.EP.Mask(eSliceEdgeOrder).Index() }

// Rep is never called; see CoordESliceType.Rep.
func (CoordESliceEPType) Rep(idx int) Cube {
	panic("CoordESliceEPType.Rep: not needed, this coordinate is never symmetry-reduced")
}

func (CoordESliceEPType) Conj(c Cube, s Sym) Cube { return s.ConjEdges(c) }
func (CoordESliceEPType) Syms() []Sym             { return AllSyms() }

var CoordESliceEP = CoordESliceEPType{}
