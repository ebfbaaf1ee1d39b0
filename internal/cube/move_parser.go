package cube

import (
	"fmt"
	"strings"
)

// ParseMoves parses a space-separated sequence of move tokens, such as
// "R U R' U' F2 B".
func ParseMoves(sequence string) ([]Move, error) {
	sequence = strings.TrimSpace(sequence)
	if len(sequence) == 0 {
		return nil, nil
	}

	parts := strings.Fields(sequence)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, &ParseError{Context: "move sequence", Err: fmt.Errorf("%q: %w", part, err)}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseScramble is an alias for ParseMoves, kept for the scramble-string
// entry points in the CLI and web server.
func ParseScramble(sequence string) ([]Move, error) {
	return ParseMoves(sequence)
}

// FormatMoves renders a move sequence back to its space-separated notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
