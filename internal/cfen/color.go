package cfen

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
)

// Color is one of the six physical sticker colors, plus Grey as the CFEN
// wildcard used in target patterns.
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Green
	Blue
	Grey
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// ParseColor converts a single CFEN color letter.
func ParseColor(ch byte) (Color, error) {
	switch ch {
	case 'W':
		return White, nil
	case 'Y':
		return Yellow, nil
	case 'R':
		return Red, nil
	case 'O':
		return Orange, nil
	case 'G':
		return Green, nil
	case 'B':
		return Blue, nil
	case '?':
		return Grey, nil
	default:
		return 0, fmt.Errorf("unknown color character %q", ch)
	}
}

// vec is a unit vector in a fixed 3D layout used only to derive an
// orientation's color-to-face mapping; White/Green/Red sit at the
// canonical Up/Front/Right corner the way a solved cube is scrambled from
// in the standard WCA color scheme.
type vec [3]int

var colorVec = map[Color]vec{
	White:  {0, 1, 0},
	Yellow: {0, -1, 0},
	Green:  {0, 0, 1},
	Blue:   {0, 0, -1},
	Red:    {1, 0, 0},
	Orange: {-1, 0, 0},
}

func (v vec) negate() vec { return vec{-v[0], -v[1], -v[2]} }

func cross(a, b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func colorOfVec(v vec) (Color, bool) {
	for c, cv := range colorVec {
		if cv == v {
			return c, true
		}
	}
	return 0, false
}

func opposite(c Color) (Color, error) {
	v, ok := colorVec[c]
	if !ok {
		return 0, fmt.Errorf("color %s has no opposite (not a real sticker color)", c)
	}
	o, _ := colorOfVec(v.negate())
	return o, nil
}

// orientationMapping derives the Color shown on each of the 6 physical
// faces for a cube held with up and front as given, using the standard
// right = up x front rule (so White-up/Green-front, the canonical
// orientation, puts Red on the right -- matching the usual WCA scheme).
func orientationMapping(o CFENOrientation) (map[cube.Face]Color, error) {
	upVec, ok := colorVec[o.Up]
	if !ok {
		return nil, fmt.Errorf("%s is not a real sticker color", o.Up)
	}
	frontVec, ok := colorVec[o.Front]
	if !ok {
		return nil, fmt.Errorf("%s is not a real sticker color", o.Front)
	}
	down, err := opposite(o.Up)
	if err != nil {
		return nil, err
	}
	back, err := opposite(o.Front)
	if err != nil {
		return nil, err
	}
	if o.Up == o.Front || o.Front == down {
		return nil, fmt.Errorf("up %s and front %s must be adjacent faces", o.Up, o.Front)
	}
	right, ok := colorOfVec(cross(upVec, frontVec))
	if !ok {
		return nil, fmt.Errorf("up %s and front %s do not describe a valid orientation", o.Up, o.Front)
	}
	left, err := opposite(right)
	if err != nil {
		return nil, err
	}
	return map[cube.Face]Color{
		cube.FaceU: o.Up,
		cube.FaceD: down,
		cube.FaceF: o.Front,
		cube.FaceB: back,
		cube.FaceR: right,
		cube.FaceL: left,
	}, nil
}
