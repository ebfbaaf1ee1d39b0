package cube

// Coord is a symmetry-reducible coordinate: a way of mapping (a relevant
// slice of) cube state to a small integer, with enough structure to build
// a SymTable and a PrunTable over it. Rust expresses this as a trait with
// associated constants; Go has no const-generic trait items, so Coord is a
// small interface implemented by zero-size marker types, with dynamic
// dispatch standing in for the original's static dispatch -- an explicitly
// acceptable substitution (an equivalent design using function pointers
// would serve just as well).
type Coord interface {
	// Name identifies the coordinate for diagnostics.
	Name() string
	// NValues is the number of raw (non-reduced) values this coordinate
	// can take.
	NValues() int
	// Index maps a cube to its raw coordinate value.
	Index(c Cube) int
	// Rep builds a canonical representative cube for a raw coordinate
	// value (used only to seed symmetry-table construction, never in the
	// hot search path).
	Rep(idx int) Cube
	// Conj conjugates c through s, restricted to the part of the cube
	// this coordinate cares about.
	Conj(c Cube, s Sym) Cube
	// Syms lists the symmetries under which this coordinate's legality
	// is invariant.
	Syms() []Sym
}

// SymTable groups a coordinate's raw values into conjugacy classes under
// its symmetry group, and records, for each raw value, which class it
// belongs to, which symmetry conjugates the class representative to it,
// and (for representatives only) the subgroup of symmetries fixing it.
type SymTable struct {
	coord      Coord
	classOf    []int32 // raw index -> class id
	conjugator []uint8 // raw index -> which Sym maps the class rep to it
	reps       []int32 // class id -> representative raw index
	selfSyms   [][]Sym // class id -> symmetries fixing the representative
}

// NewSymTable builds the symmetry table for coord by walking every raw
// value not yet assigned to a class, and, via its symmetry group, filling
// in every conjugate value's class/conjugator in one pass.
func NewSymTable(coord Coord) *SymTable {
	n := coord.NValues()
	syms := coord.Syms()
	t := &SymTable{
		coord:      coord,
		classOf:    make([]int32, n),
		conjugator: make([]uint8, n),
		reps:       nil,
		selfSyms:   nil,
	}
	assigned := make([]bool, n)
	for raw := 0; raw < n; raw++ {
		if assigned[raw] {
			continue
		}
		classID := int32(len(t.reps))
		t.reps = append(t.reps, int32(raw))
		rep := coord.Rep(raw)
		var fixing []Sym
		for si, s := range syms {
			conj := coord.Conj(rep, s)
			other := coord.Index(conj)
			if !assigned[other] {
				assigned[other] = true
				t.classOf[other] = classID
				t.conjugator[other] = uint8(si)
			}
			if other == raw {
				fixing = append(fixing, s)
			}
		}
		t.selfSyms = append(t.selfSyms, fixing)
	}
	return t
}

// NConjClasses reports how many conjugacy classes the table found.
func (t *SymTable) NConjClasses() int { return len(t.reps) }

// ClassOf returns the conjugacy class id of a raw coordinate value.
func (t *SymTable) ClassOf(raw int) int { return int(t.classOf[raw]) }

// Conjugator returns the symmetry that maps the class representative to
// the given raw value.
func (t *SymTable) Conjugator(raw int) Sym {
	return t.coord.Syms()[t.conjugator[raw]]
}

// SelfSyms returns the symmetries that fix the representative of raw's
// class (raw need not itself be the representative).
func (t *SymTable) SelfSyms(raw int) []Sym {
	return t.selfSyms[t.classOf[raw]]
}

// CoordIndex exposes the underlying coordinate's raw index for a cube,
// letting callers build the composite (class, aux) index PrunTable uses.
func (t *SymTable) CoordIndex(c Cube) int { return t.coord.Index(c) }

// Canonicalize conjugates the whole of c so that its coord value becomes
// the representative of its conjugacy class. The stored conjugator maps the
// representative onto c's raw value, so recovering the representative
// means applying its inverse.
func (t *SymTable) Canonicalize(c Cube) Cube {
	raw := t.coord.Index(c)
	s := t.Conjugator(raw)
	return s.Inverse().Conj(c)
}
