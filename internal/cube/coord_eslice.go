package cube

// CoordESliceType tracks which 4 of the 12 edge positions currently hold
// the E-slice edges, without regard to their order: C(12,4) = 495 raw
// values. Used only as the auxiliary coordinate of the phase-1 pruning
// tables, never as the symmetry-reduced one.
type CoordESliceType struct{}

func (CoordESliceType) Name() string     { return "ESlice" }
func (CoordESliceType) NValues() int     { return 495 }
func (CoordESliceType) Index(c Cube) int { return c.EP.IndexPartialUnordered(eSliceMask) }

// Rep is never called: this coordinate is only ever the auxiliary half of
// a PrunTable, which never builds a SymTable (and so never needs a
// representative) over it.
func (CoordESliceType) Rep(idx int) Cube {
	panic("CoordESliceType.Rep: not needed, this coordinate is never symmetry-reduced")
}

func (CoordESliceType) Conj(c Cube, s Sym) Cube { return s.ConjEdges(c) }
func (CoordESliceType) Syms() []Sym             { return AllSyms() }

var CoordESlice = CoordESliceType{}
