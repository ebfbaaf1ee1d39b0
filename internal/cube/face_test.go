package cube

import "testing"

func TestFaceOppositePairs(t *testing.T) {
	pairs := map[Face]Face{
		FaceU: FaceD,
		FaceF: FaceB,
		FaceR: FaceL,
	}
	for f, want := range pairs {
		if f.Opposite() != want {
			t.Errorf("%s.Opposite() = %s, want %s", f, f.Opposite(), want)
		}
		if want.Opposite() != f {
			t.Errorf("%s.Opposite() = %s, want %s", want, want.Opposite(), f)
		}
	}
}

func TestParseFaceRoundTripsAllSixLabels(t *testing.T) {
	for f := FaceU; f <= FaceL; f++ {
		got, err := ParseFace(f.String())
		if err != nil {
			t.Fatalf("ParseFace(%q): %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseFace(%q) = %s, want %s", f.String(), got, f)
		}
	}
}

func TestParseFaceRejectsUnknownLabel(t *testing.T) {
	if _, err := ParseFace("X"); err == nil {
		t.Fatal("expected an error for an unrecognized face label")
	}
	if _, err := ParseFace("UU"); err == nil {
		t.Fatal("expected an error for a multi-character label")
	}
}

func TestEdgeFromFacesIsOrderIndependent(t *testing.T) {
	a, err := EdgeFromFaces(FaceU, FaceF)
	if err != nil {
		t.Fatalf("EdgeFromFaces(U, F): %v", err)
	}
	b, err := EdgeFromFaces(FaceF, FaceU)
	if err != nil {
		t.Fatalf("EdgeFromFaces(F, U): %v", err)
	}
	if a != b || a != EdgeUF {
		t.Fatalf("EdgeFromFaces(U, F) = %s, EdgeFromFaces(F, U) = %s, want both %s", a, b, EdgeUF)
	}
}

func TestEdgeFromFacesRejectsNonAdjacentFaces(t *testing.T) {
	if _, err := EdgeFromFaces(FaceU, FaceD); err == nil {
		t.Fatal("expected an error: U and D share no edge")
	}
}

func TestCornerFromFacesIsOrderIndependent(t *testing.T) {
	want := CornerUFR
	perms := [][3]Face{
		{FaceU, FaceF, FaceR},
		{FaceF, FaceR, FaceU},
		{FaceR, FaceU, FaceF},
		{FaceR, FaceF, FaceU},
	}
	for _, p := range perms {
		got, err := CornerFromFaces(p[0], p[1], p[2])
		if err != nil {
			t.Fatalf("CornerFromFaces(%v): %v", p, err)
		}
		if got != want {
			t.Errorf("CornerFromFaces(%v) = %s, want %s", p, got, want)
		}
	}
}

func TestCornerFromFacesRejectsImpossibleTriple(t *testing.T) {
	if _, err := CornerFromFaces(FaceU, FaceD, FaceF); err == nil {
		t.Fatal("expected an error: U and D are opposite, no corner touches both")
	}
}

func TestEdgeAndCornerNamesSpellHomeFaces(t *testing.T) {
	// Edge.String() and Corner.String() must spell out exactly the faces in
	// edgeFaces/cornerFaces, since the facelet package derives its home-face
	// order by parsing these names.
	for e := EdgeUF; e <= EdgeBR; e++ {
		name := e.String()
		if len(name) != 2 {
			t.Fatalf("%v.String() = %q, want length 2", e, name)
		}
		f0, err := ParseFace(name[0:1])
		if err != nil {
			t.Fatalf("parsing %q: %v", name, err)
		}
		f1, err := ParseFace(name[1:2])
		if err != nil {
			t.Fatalf("parsing %q: %v", name, err)
		}
		got, err := EdgeFromFaces(f0, f1)
		if err != nil || got != e {
			t.Fatalf("EdgeFromFaces(%s, %s) = %s, %v; want %s, nil", f0, f1, got, err, e)
		}
	}
	for c := CornerUFR; c <= CornerDBR; c++ {
		name := c.String()
		if len(name) != 3 {
			t.Fatalf("%v.String() = %q, want length 3", c, name)
		}
		f0, _ := ParseFace(name[0:1])
		f1, _ := ParseFace(name[1:2])
		f2, _ := ParseFace(name[2:3])
		got, err := CornerFromFaces(f0, f1, f2)
		if err != nil || got != c {
			t.Fatalf("CornerFromFaces(%s, %s, %s) = %s, %v; want %s, nil", f0, f1, f2, got, err, c)
		}
	}
}
