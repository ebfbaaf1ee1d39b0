package facelet

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
)

func TestFaceletsSolvedCubeShowsEachFaceItsOwnColor(t *testing.T) {
	stickers := Facelets(cube.SolvedCube())
	i := 0
	for _, f := range FaceOrder {
		for cell := 0; cell < 9; cell++ {
			if stickers[i] != f {
				t.Fatalf("solved cube sticker %d on face %s = %s, want %s", cell, f, stickers[i], f)
			}
			i++
		}
	}
}

func TestFaceletsRoundTripsThroughFromFacelets(t *testing.T) {
	moves, err := cube.ParseScramble("R U R' U' F2 D L' B2 R2 U'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c := cube.SolvedCube().ApplyMoves(moves)

	stickers := Facelets(c)
	got, err := FromFacelets(stickers)
	if err != nil {
		t.Fatalf("FromFacelets: %v", err)
	}
	if got != c {
		t.Fatalf("FromFacelets(Facelets(c)) = %+v, want %+v", got, c)
	}
}

func TestFromFaceletsRejectsBrokenCenter(t *testing.T) {
	stickers := Facelets(cube.SolvedCube())
	stickers[4] = cube.FaceD // corrupt U's center
	if _, err := FromFacelets(stickers); err == nil {
		t.Fatal("expected an error for a mismatched center sticker")
	}
}

func TestFromFaceletsRejectsImpossibleCornerColors(t *testing.T) {
	stickers := Facelets(cube.SolvedCube())
	// U-face position (0,2) is UBR's U-facing sticker; replacing it with F
	// gives UBR the color set {F, B, R}, which no corner has (F and B are
	// opposite faces).
	stickers[2] = cube.FaceF
	if _, err := FromFacelets(stickers); err == nil {
		t.Fatal("expected an error for an impossible corner color combination")
	}
}
