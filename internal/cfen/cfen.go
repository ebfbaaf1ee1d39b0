// Package cfen implements CFEN, a compact Forsyth-Edwards-style notation for
// a 3x3x3 cube's facelet state: an orientation header picking which real
// colors sit Up and Front, followed by six run-length-encoded 9-sticker
// faces in U/R/F/D/L/B order.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CFENOrientation names the colors a CFEN string's reader should hold Up
// and Front, fixing how its six face blocks map onto cube.Face values.
type CFENOrientation struct {
	Up    Color
	Front Color
}

// CFENFace is one face's 9 stickers, row-major.
type CFENFace struct {
	Stickers [9]Color
}

// CFENState is a fully parsed CFEN string.
type CFENState struct {
	Orientation CFENOrientation
	Faces       [6]CFENFace // U, R, F, D, L, B order
}

func (state *CFENState) String() string {
	var sb strings.Builder
	sb.WriteString(state.Orientation.Up.String())
	sb.WriteString(state.Orientation.Front.String())
	sb.WriteString("|")
	for i, face := range state.Faces {
		if i > 0 {
			sb.WriteString("/")
		}
		sb.WriteString(face.compactString())
	}
	return sb.String()
}

func (face *CFENFace) compactString() string {
	var sb strings.Builder
	current := face.Stickers[0]
	count := 1
	flush := func() {
		sb.WriteString(current.String())
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}
	for i := 1; i < len(face.Stickers); i++ {
		if face.Stickers[i] == current {
			count++
			continue
		}
		flush()
		current = face.Stickers[i]
		count = 1
	}
	flush()
	return sb.String()
}

// ParseCFEN parses a CFEN string such as "WG|W9/R9/G9/Y9/O9/B9".
func ParseCFEN(cfenStr string) (*CFENState, error) {
	parts := strings.Split(cfenStr, "|")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid CFEN format: expected 'orientation|faces', got %q", cfenStr)
	}

	orientation, err := parseOrientation(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid orientation %q: %w", parts[0], err)
	}

	faces, err := parseFaces(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid faces %q: %w", parts[1], err)
	}

	return &CFENState{Orientation: *orientation, Faces: faces}, nil
}

func parseOrientation(s string) (*CFENOrientation, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("orientation must be exactly 2 characters, got %d", len(s))
	}
	up, err := ParseColor(s[0])
	if err != nil {
		return nil, fmt.Errorf("up color: %w", err)
	}
	front, err := ParseColor(s[1])
	if err != nil {
		return nil, fmt.Errorf("front color: %w", err)
	}
	o := &CFENOrientation{Up: up, Front: front}
	if _, err := orientationMapping(*o); err != nil {
		return nil, err
	}
	return o, nil
}

func parseFaces(s string) ([6]CFENFace, error) {
	faceStrs := strings.Split(s, "/")
	if len(faceStrs) != 6 {
		return [6]CFENFace{}, fmt.Errorf("expected 6 faces separated by '/', got %d", len(faceStrs))
	}
	var faces [6]CFENFace
	for i, faceStr := range faceStrs {
		face, err := parseFace(faceStr)
		if err != nil {
			return [6]CFENFace{}, fmt.Errorf("face %d: %w", i, err)
		}
		faces[i] = *face
	}
	return faces, nil
}

var stickerRun = regexp.MustCompile(`([WYROGB?])(\d*)`)

func parseFace(faceStr string) (*CFENFace, error) {
	matches := stickerRun.FindAllStringSubmatch(faceStr, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no valid color tokens found in %q", faceStr)
	}

	var face CFENFace
	n := 0
	var reconstructed strings.Builder
	for _, m := range matches {
		reconstructed.WriteString(m[0])
		color, err := ParseColor(m[1][0])
		if err != nil {
			return nil, err
		}
		count := 1
		if m[2] != "" {
			count, err = strconv.Atoi(m[2])
			if err != nil || count < 1 {
				return nil, fmt.Errorf("invalid run length %q", m[2])
			}
		}
		for i := 0; i < count; i++ {
			if n >= 9 {
				return nil, fmt.Errorf("face %q has more than 9 stickers", faceStr)
			}
			face.Stickers[n] = color
			n++
		}
	}
	if reconstructed.String() != faceStr {
		return nil, fmt.Errorf("failed to parse entire face string %q", faceStr)
	}
	if n != 9 {
		return nil, fmt.Errorf("face %q has %d stickers, expected 9", faceStr, n)
	}
	return &face, nil
}

// ValidateCFEN validates a CFEN string's format without building a Cube.
func ValidateCFEN(cfenStr string) error {
	_, err := ParseCFEN(cfenStr)
	return err
}
