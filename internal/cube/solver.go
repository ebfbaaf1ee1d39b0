package cube

import (
	"fmt"
	"time"
)

// Solver finds a sequence of moves that brings a cube to the solved state.
type Solver interface {
	Solve(c Cube) (*SolveResult, error)
	Name() string
}

// SolveResult is the outcome of a successful solve.
type SolveResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration
}

// noMove is the "no previous move" sentinel used at the root of a search.
const noMove Move = -1

// maxDRLen and maxFinLen bound the outer and inner IDA* searches: no cube is
// more than 20 moves from the DR subgroup, and no DR-subgroup cube is more
// than 13 moves from solved.
const (
	maxDRLen  = 20
	maxFinLen = 13
)

// DefaultDeadline is how long TwoPhaseSolver.Solve searches before giving up
// when the caller doesn't impose a tighter one via SolveWithin.
const DefaultDeadline = time.Second

// searchState carries mutable search bookkeeping through the recursive IDA*
// calls: the deadline, a found flag, and a call counter so the deadline
// itself is only checked once every 32 calls instead of on every node.
type searchState struct {
	deadline time.Time
	calls    int
	found    bool
}

func newSearchState(budget time.Duration) *searchState {
	return &searchState{deadline: time.Now().Add(budget)}
}

// timeOver reports whether the search should abandon ship. It only actually
// checks the clock every 32 calls, and only once a solution has already
// been found -- an unbounded search with no solution yet keeps running past
// the nominal deadline rather than returning nothing.
func (ss *searchState) timeOver() bool {
	ss.calls++
	if ss.calls%32 != 0 {
		return false
	}
	if !ss.found {
		return false
	}
	return time.Now().After(ss.deadline)
}

// TwoPhaseSolver implements Kociemba-style two-phase search: phase 1 reaches
// the domino-reduction subgroup <U,D,F2,B2,R2,L2>, phase 2 solves from
// there using only that subgroup's moves. Both phases are IDA*, guided by
// symmetry-reduced pruning tables built once at construction time.
type TwoPhaseSolver struct {
	co *PrunTable
	eo *PrunTable
	cp *PrunTable
	ep *PrunTable
}

// NewTwoPhaseSolver builds all four pruning tables. This does a full BFS
// over each coordinate space and is meant to be done once and reused.
func NewTwoPhaseSolver() *TwoPhaseSolver {
	return &TwoPhaseSolver{
		co: NewPrunTable(CoordCO, CoordESlice, AllMoves()),
		eo: NewPrunTable(CoordEO, CoordESlice, AllMoves()),
		cp: NewPrunTable(CoordCP, CoordESliceEP, DRUDMoveset()),
		ep: NewPrunTable(CoordEP, CoordESliceEP, DRUDMoveset()),
	}
}

func (s *TwoPhaseSolver) Name() string { return "kociemba" }

func (s *TwoPhaseSolver) eval1(c Cube) int {
	a, b := s.co.Eval(c), s.eo.Eval(c)
	if a > b {
		return a
	}
	return b
}

func (s *TwoPhaseSolver) eval2(c Cube) int {
	a, b := s.cp.Eval(c), s.ep.Eval(c)
	if a > b {
		return a
	}
	return b
}

// Solve runs SolveWithin with DefaultDeadline.
func (s *TwoPhaseSolver) Solve(c Cube) (*SolveResult, error) {
	return s.SolveWithin(c, DefaultDeadline)
}

// SolveWithin returns the first solution the search finds: phase-1 depths
// are tried in increasing order, and the first DR-subgroup state from which
// phase 2 succeeds is finished with its shortest phase-2 sequence. The
// search does not go on looking for a shorter overall solution, and since
// the deadline is only polled once a solution exists, budget does not cut
// a search short. A *DeadlineError is returned when no solution is found
// within maxDRLen phase-1 moves.
func (s *TwoPhaseSolver) SolveWithin(c Cube, budget time.Duration) (*SolveResult, error) {
	start := time.Now()
	ss := newSearchState(budget)

	for threshold := s.eval1(c); threshold <= maxDRLen; threshold++ {
		sol, stop := s.solveDR(c, nil, threshold, noMove, ss)
		if sol != nil {
			return &SolveResult{Solution: sol, Steps: len(sol), Duration: time.Since(start)}, nil
		}
		if stop {
			break
		}
	}
	return nil, &DeadlineError{ElapsedMS: time.Since(start).Milliseconds()}
}

// solveDR is phase 1's IDA* body: drive c into the DR subgroup within
// threshold moves, then hand off to solveFin. Returns the full solution (if
// one is found within threshold) and whether the search should stop
// entirely (deadline exceeded).
func (s *TwoPhaseSolver) solveDR(c Cube, path []Move, threshold int, last Move, ss *searchState) ([]Move, bool) {
	if ss.timeOver() {
		return nil, true
	}
	g := len(path)
	h := s.eval1(c)
	if g+h > threshold {
		return nil, false
	}
	if c.IsDRUD() {
		return s.solveFin(c, path, ss)
	}
	for _, m := range AllMoves() {
		if last != noMove && skipMove(m, last) {
			continue
		}
		sol, stop := s.solveDR(c.ApplyMove(m), append(path, m), threshold, m, ss)
		if sol != nil {
			return sol, false
		}
		if stop {
			return nil, true
		}
	}
	return nil, false
}

// solveFin is phase 2's outer IDA* loop: find the shortest DR-subgroup move
// sequence that solves c, given the prefix that got it into DR.
func (s *TwoPhaseSolver) solveFin(c Cube, prefix []Move, ss *searchState) ([]Move, bool) {
	for threshold := s.eval2(c); threshold <= maxFinLen; threshold++ {
		sol, stop := s.finDFS(c, prefix, nil, threshold, noMove, ss)
		if sol != nil {
			ss.found = true
			return sol, false
		}
		if stop {
			return nil, true
		}
	}
	return nil, false
}

func (s *TwoPhaseSolver) finDFS(c Cube, prefix, tail []Move, threshold int, last Move, ss *searchState) ([]Move, bool) {
	if ss.timeOver() {
		return nil, true
	}
	g := len(tail)
	h := s.eval2(c)
	if g+h > threshold {
		return nil, false
	}
	if c.IsSolved() {
		full := make([]Move, 0, len(prefix)+len(tail))
		full = append(full, prefix...)
		full = append(full, tail...)
		return full, false
	}
	for _, m := range DRUDMoveset() {
		if last != noMove && skipMove(m, last) {
			continue
		}
		sol, stop := s.finDFS(c.ApplyMove(m), prefix, append(tail, m), threshold, m, ss)
		if sol != nil {
			return sol, false
		}
		if stop {
			return nil, true
		}
	}
	return nil, false
}

// skipMove reports whether m is redundant right after last: either the same
// face (should have been folded into a single turn already) or the
// opposite face in the "wrong" canonical order (opposite-face turns
// commute, so only one of the two orderings is ever explored).
func skipMove(m, last Move) bool {
	if m.CancelsWith(last) {
		return true
	}
	if m.CommutesWith(last) && m < last {
		return true
	}
	return false
}

var cachedSolver *TwoPhaseSolver

func sharedTwoPhaseSolver() Solver {
	if cachedSolver == nil {
		cachedSolver = NewTwoPhaseSolver()
	}
	return cachedSolver
}

var solverRegistry = map[string]func() Solver{
	"kociemba":  sharedTwoPhaseSolver,
	"two-phase": sharedTwoPhaseSolver,
}

// GetSolver looks up a registered solver by name.
func GetSolver(name string) (Solver, error) {
	factory, ok := solverRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver algorithm %q", name)
	}
	return factory(), nil
}
