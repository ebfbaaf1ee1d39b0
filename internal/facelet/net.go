package facelet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ehrlich-b/cube/internal/cube"
)

// netRowFaces gives, for each of the 9 net lines, which face (or faces, for
// the equatorial band) the line's tokens belong to, left to right.
var netRowFaces = [9][]cube.Face{
	{cube.FaceU}, {cube.FaceU}, {cube.FaceU},
	{cube.FaceL, cube.FaceF, cube.FaceR, cube.FaceB},
	{cube.FaceL, cube.FaceF, cube.FaceR, cube.FaceB},
	{cube.FaceL, cube.FaceF, cube.FaceR, cube.FaceB},
	{cube.FaceD}, {cube.FaceD}, {cube.FaceD},
}

// ParseNet reads the 9-line facelet-net block and reconstructs the Cube it
// describes. Each position is tagged either by a lowercase center-face
// letter or by a piece name plus a 1-based sticker index counted in the
// piece's own home-face order (e.g. "UFR.2" is UFR's F-facing sticker).
func ParseNet(r io.Reader) (cube.Cube, error) {
	lines, err := readNetLines(r)
	if err != nil {
		return cube.Cube{}, err
	}

	var co cube.CO
	var eo cube.EO
	cornerDests := make([]int, 8)
	edgeDests := make([]int, 12)
	cornerSeen := make(map[cube.Corner]bool, 8)
	edgeSeen := make(map[cube.Edge]bool, 12)

	for i, line := range lines {
		faces := netRowFaces[i]
		row := i % 3
		fields := strings.Fields(line)
		if len(fields) != 3*len(faces) {
			return cube.Cube{}, &cube.ParseError{
				Context: "facelet net",
				Err:     fmt.Errorf("line %d: expected %d tokens, got %d", i+1, 3*len(faces), len(fields)),
			}
		}
		for g, f := range faces {
			for col := 0; col < 3; col++ {
				tok := fields[g*3+col]
				cl := cellAt(f, row, col)
				if err := applyNetToken(tok, f, cl, &co, &eo, cornerDests, edgeDests, cornerSeen, edgeSeen); err != nil {
					return cube.Cube{}, err
				}
			}
		}
	}

	if len(cornerSeen) != 8 || len(edgeSeen) != 12 {
		return cube.Cube{}, &cube.InvalidCubeError{Reason: "facelet net does not name all 20 pieces exactly once"}
	}

	return assembleCube(co, eo, cornerDests, edgeDests)
}

func readNetLines(r io.Reader) ([9]string, error) {
	var out [9]string
	n := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n == 9 {
			return out, &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("more than 9 non-blank lines")}
		}
		out[n] = line
		n++
	}
	if err := scanner.Err(); err != nil {
		return out, &cube.ParseError{Context: "facelet net", Err: err}
	}
	if n != 9 {
		return out, &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("expected 9 non-blank lines, got %d", n)}
	}
	return out, nil
}

func applyNetToken(tok string, f cube.Face, cl cell, co *cube.CO, eo *cube.EO, cornerDests, edgeDests []int, cornerSeen map[cube.Corner]bool, edgeSeen map[cube.Edge]bool) error {
	if cl.kind == kindCenter {
		if tok != strings.ToLower(f.String()) {
			return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("center of %s face tagged %q", f, tok)}
		}
		return nil
	}

	name, idxStr, ok := strings.Cut(tok, ".")
	if !ok {
		return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("malformed piece token %q (expected NAME.INDEX)", tok)}
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("malformed sticker index in %q", tok)}
	}

	switch cl.kind {
	case kindEdge:
		if len(name) != 2 {
			return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("%q is not a valid edge name", name)}
		}
		a, err1 := cube.ParseFace(name[0:1])
		b, err2 := cube.ParseFace(name[1:2])
		if err1 != nil || err2 != nil {
			return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("%q is not a valid edge name", name)}
		}
		occupant, err := cube.EdgeFromFaces(a, b)
		if err != nil {
			return &cube.ParseError{Context: "facelet net", Err: err}
		}
		if edgeSeen[occupant] && edgeDests[occupant.Coord()] != cl.edge.Coord() {
			return &cube.InvalidCubeError{Reason: "piece " + occupant.String() + " appears more than once in the facelet net"}
		}
		if idx < 1 || idx > 2 {
			return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("sticker index %d out of range for edge %s", idx, name)}
		}
		v := ((idx - 1 - cl.home) % 2 + 2) % 2
		edgeSeen[occupant] = true
		edgeDests[occupant.Coord()] = cl.edge.Coord()
		*eo |= cube.EO(uint8(v)) << uint(occupant.Coord())
	case kindCorner:
		if len(name) != 3 {
			return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("%q is not a valid corner name", name)}
		}
		a, err1 := cube.ParseFace(name[0:1])
		b, err2 := cube.ParseFace(name[1:2])
		d, err3 := cube.ParseFace(name[2:3])
		if err1 != nil || err2 != nil || err3 != nil {
			return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("%q is not a valid corner name", name)}
		}
		occupant, err := cube.CornerFromFaces(a, b, d)
		if err != nil {
			return &cube.ParseError{Context: "facelet net", Err: err}
		}
		if cornerSeen[occupant] && cornerDests[occupant.Coord()] != cl.corner.Coord() {
			return &cube.InvalidCubeError{Reason: "piece " + occupant.String() + " appears more than once in the facelet net"}
		}
		if idx < 1 || idx > 3 {
			return &cube.ParseError{Context: "facelet net", Err: fmt.Errorf("sticker index %d out of range for corner %s", idx, name)}
		}
		v := ((idx - 1 - cl.home) % 3 + 3) % 3
		cornerSeen[occupant] = true
		cornerDests[occupant.Coord()] = cl.corner.Coord()
		*co |= cube.CO(uint8(v)) << (2 * uint(occupant.Coord()))
	}
	return nil
}

// WriteNet renders c as the 9-line facelet-net block ParseNet accepts.
func WriteNet(w io.Writer, c cube.Cube) error {
	for i := 0; i < 9; i++ {
		faces := netRowFaces[i]
		row := i % 3
		tokens := make([]string, 0, 3*len(faces))
		for _, f := range faces {
			for col := 0; col < 3; col++ {
				tokens = append(tokens, netToken(c, f, row, col))
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return nil
}

func netToken(c cube.Cube, f cube.Face, row, col int) string {
	cl := cellAt(f, row, col)
	switch cl.kind {
	case kindCenter:
		return strings.ToLower(f.String())
	case kindEdge:
		o := c.EP.Inverse().Dest(cl.edge.Coord())
		v := int((c.EO >> uint(o)) & 1)
		shown := (cl.home + v) % 2
		return cube.EdgeFromCoord(o).String() + "." + strconv.Itoa(shown+1)
	default:
		o := c.CP.Inverse().Dest(cl.corner.Coord())
		v := int((c.CO >> (2 * uint(o))) & 3)
		shown := (cl.home + v) % 3
		return cube.CornerFromCoord(o).String() + "." + strconv.Itoa(shown+1)
	}
}
