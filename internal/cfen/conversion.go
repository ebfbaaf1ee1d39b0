package cfen

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/facelet"
)

// ToCube converts a fully-specified CFENState (no wildcards) to a Cube.
func (state *CFENState) ToCube() (*cube.Cube, error) {
	faceColor, err := orientationMapping(state.Orientation)
	if err != nil {
		return nil, err
	}
	colorFace := make(map[Color]cube.Face, 6)
	for f, c := range faceColor {
		colorFace[c] = f
	}

	var stickers [54]cube.Face
	i := 0
	for _, f := range facelet.FaceOrder {
		cfenFace := state.Faces[cfenIndex(f)]
		for _, color := range cfenFace.Stickers {
			if color == Grey {
				return nil, fmt.Errorf("cannot build a cube from a CFEN containing wildcards")
			}
			face, ok := colorFace[color]
			if !ok {
				return nil, fmt.Errorf("color %s is not assigned to any face under orientation %s%s", color, state.Orientation.Up, state.Orientation.Front)
			}
			stickers[i] = face
			i++
		}
		_ = f
	}

	c, err := facelet.FromFacelets(stickers)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FromCube converts a Cube to a CFENState under the given orientation.
func FromCube(c cube.Cube, orientation CFENOrientation) (*CFENState, error) {
	faceColor, err := orientationMapping(orientation)
	if err != nil {
		return nil, err
	}

	stickers := facelet.Facelets(c)
	var faces [6]CFENFace
	for idx, f := range facelet.FaceOrder {
		var cf CFENFace
		for j := 0; j < 9; j++ {
			cf.Stickers[j] = faceColor[stickers[idx*9+j]]
		}
		faces[cfenIndex(f)] = cf
	}

	return &CFENState{Orientation: orientation, Faces: faces}, nil
}

// GenerateCFEN renders c as a CFEN string using the canonical White-up,
// Green-front orientation.
func GenerateCFEN(c cube.Cube) (string, error) {
	state, err := FromCube(c, CFENOrientation{Up: White, Front: Green})
	if err != nil {
		return "", err
	}
	return state.String(), nil
}

// MatchesCube reports whether c's facelets match state's pattern, treating
// Grey stickers in state as wildcards.
func (state *CFENState) MatchesCube(c cube.Cube) (bool, error) {
	actual, err := FromCube(c, state.Orientation)
	if err != nil {
		return false, err
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 9; j++ {
			want := state.Faces[i].Stickers[j]
			if want == Grey {
				continue
			}
			if want != actual.Faces[i].Stickers[j] {
				return false, nil
			}
		}
	}
	return true, nil
}

// cfenIndex maps a cube.Face to its position in CFENState.Faces, the fixed
// U/R/F/D/L/B order. facelet.FaceOrder already uses this order, so this is
// the identity on indices, but spelled out so CFEN's field order stays
// explicit even if facelet's internal order ever changed.
func cfenIndex(f cube.Face) int {
	for i, ff := range facelet.FaceOrder {
		if ff == f {
			return i
		}
	}
	return -1
}
