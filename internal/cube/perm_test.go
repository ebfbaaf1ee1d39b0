package cube

import "testing"

func TestIdentityPermIsIdentity(t *testing.T) {
	p := IdentityPerm(8)
	for i := 0; i < 8; i++ {
		if p.Dest(i) != i {
			t.Fatalf("IdentityPerm.Dest(%d) = %d, want %d", i, p.Dest(i), i)
		}
	}
	if p.Parity() != 0 {
		t.Fatalf("identity parity = %d, want 0", p.Parity())
	}
}

func TestComposeMatchesFunctionComposition(t *testing.T) {
	p := PermFromDests([]int{1, 2, 0, 3}) // (0 1 2)
	q := PermFromDests([]int{0, 2, 3, 1}) // (1 2 3)
	got := p.Compose(q)
	for i := 0; i < 4; i++ {
		want := q.Dest(p.Dest(i))
		if got.Dest(i) != want {
			t.Fatalf("Compose.Dest(%d) = %d, want %d", i, got.Dest(i), want)
		}
	}
}

func TestInverseUndoesPerm(t *testing.T) {
	p := PermFromDests([]int{3, 0, 1, 2})
	inv := p.Inverse()
	composed := p.Compose(inv)
	if composed != IdentityPerm(4) {
		t.Fatalf("p.Compose(p.Inverse()) = %v, want identity", composed)
	}
}

func TestIsValidRejectsDuplicateDestinations(t *testing.T) {
	p := PermFromDests([]int{0, 0, 2, 3})
	if p.IsValid() {
		t.Fatal("expected a repeated destination to be invalid")
	}
}

func TestIsValidAcceptsBijection(t *testing.T) {
	p := PermFromDests([]int{3, 1, 0, 2})
	if !p.IsValid() {
		t.Fatal("expected a bijection to be valid")
	}
}

func TestParityOfTranspositionIsOdd(t *testing.T) {
	p := PermFromDests([]int{1, 0, 2, 3})
	if p.Parity() != 1 {
		t.Fatalf("single transposition parity = %d, want 1", p.Parity())
	}
}

func TestParityOfThreeCycleIsEven(t *testing.T) {
	p := PermFromDests([]int{1, 2, 0, 3})
	if p.Parity() != 0 {
		t.Fatalf("three-cycle parity = %d, want 0", p.Parity())
	}
}

func TestIndexRoundTripsThroughPermFromIndex(t *testing.T) {
	n := 5
	total := 1
	for i := 2; i <= n; i++ {
		total *= i
	}
	seen := make(map[int]bool, total)
	for idx := 0; idx < total; idx++ {
		p := PermFromIndex(n, idx)
		if !p.IsValid() {
			t.Fatalf("PermFromIndex(%d, %d) produced an invalid permutation %v", n, idx, p)
		}
		got := p.Index()
		if got != idx {
			t.Fatalf("PermFromIndex(%d, %d).Index() = %d, want %d", n, idx, got, idx)
		}
		seen[got] = true
	}
	if len(seen) != total {
		t.Fatalf("got %d distinct indices, want %d", len(seen), total)
	}
}

func TestMaskRelabelsTrackedSubset(t *testing.T) {
	// p sends tracked elements {0, 2} to {2, 0} among themselves.
	p := PermFromDests([]int{2, 1, 0, 3})
	m := p.Mask([]int{0, 2})
	if m.N() != 2 {
		t.Fatalf("Mask N = %d, want 2", m.N())
	}
	if m.Dest(0) != 1 || m.Dest(1) != 0 {
		t.Fatalf("Mask dests = [%d %d], want [1 0]", m.Dest(0), m.Dest(1))
	}
}

func TestIndexPartialUnorderedIsZeroWhenTrackedSetFixed(t *testing.T) {
	// Tracked positions {0, 1} map to destinations {0, 1} (possibly permuted
	// among themselves), so the unordered image of the tracked set equals
	// the tracked set itself: rank 0.
	p := PermFromDests([]int{1, 0, 3, 2})
	got := p.IndexPartialUnordered(0b0011)
	if got != 0 {
		t.Fatalf("IndexPartialUnordered = %d, want 0", got)
	}
}
