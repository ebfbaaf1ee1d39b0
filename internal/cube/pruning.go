package cube

// PrunTable is an admissible heuristic over a composite coordinate built
// from a symmetry-reduced coordinate r and an auxiliary coordinate c: it
// stores, for every (class of r, value of c) pair, the minimum number of
// moves needed to reach a state with that composite coordinate, computed
// once by breadth-first search outward from the solved cube.
type PrunTable struct {
	r     *SymTable
	c     Coord
	dist  []int8
	nAux  int
}

const prunUnknown = int8(-1)

// NewPrunTable builds the table by BFS over moveset, starting from the
// solved cube. Every time a new symmetry class is discovered, all of its
// self-symmetric duplicates (states reachable by conjugating the newly
// found state by a symmetry that fixes its own class) are filled in at the
// same depth, since they are exactly as far from solved.
func NewPrunTable(r, c Coord, moveset []Move) *PrunTable {
	rsym := NewSymTable(r)
	nAux := c.NValues()
	n := rsym.NConjClasses() * nAux
	dist := make([]int8, n)
	for i := range dist {
		dist[i] = prunUnknown
	}

	composite := func(canon Cube) int {
		class := rsym.ClassOf(rsym.CoordIndex(canon))
		return class*nAux + c.Index(canon)
	}

	start := SolvedCube()
	startIdx := composite(start)
	dist[startIdx] = 0

	type item struct {
		cube  Cube
		depth int8
	}
	queue := []item{{start, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, m := range moveset {
			next := cur.cube.ApplyMove(m)
			canon := rsym.Canonicalize(next)
			idx := composite(canon)
			if dist[idx] != prunUnknown {
				continue
			}
			depth := cur.depth + 1
			dist[idx] = depth
			for _, s := range rsym.SelfSyms(rsym.CoordIndex(canon)) {
				dup := s.Conj(canon)
				dupIdx := composite(dup)
				if dist[dupIdx] == prunUnknown {
					dist[dupIdx] = depth
				}
			}
			queue = append(queue, item{canon, depth})
		}
	}

	return &PrunTable{r: rsym, c: c, dist: dist, nAux: nAux}
}

// Eval returns a lower bound on the number of moves required to bring c's
// r/c coordinates to their solved values.
func (pt *PrunTable) Eval(cube Cube) int {
	canon := pt.r.Canonicalize(cube)
	class := pt.r.ClassOf(pt.r.CoordIndex(canon))
	idx := class*pt.nAux + pt.c.Index(canon)
	v := pt.dist[idx]
	if v == prunUnknown {
		return 0
	}
	return int(v)
}
