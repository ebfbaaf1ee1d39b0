package facelet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
)

func TestWriteNetThenParseNetRoundTripsSolvedCube(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNet(&buf, cube.SolvedCube()); err != nil {
		t.Fatalf("WriteNet: %v", err)
	}
	got, err := ParseNet(&buf)
	if err != nil {
		t.Fatalf("ParseNet: %v\ninput:\n%s", err, buf.String())
	}
	if got != cube.SolvedCube() {
		t.Fatalf("ParseNet(WriteNet(solved)) = %+v, want solved", got)
	}
}

func TestWriteNetThenParseNetRoundTripsScrambledCube(t *testing.T) {
	moves, err := cube.ParseScramble("R U2 F' D L B R2 U' F2 L'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c := cube.SolvedCube().ApplyMoves(moves)

	var buf bytes.Buffer
	if err := WriteNet(&buf, c); err != nil {
		t.Fatalf("WriteNet: %v", err)
	}
	got, err := ParseNet(&buf)
	if err != nil {
		t.Fatalf("ParseNet: %v\ninput:\n%s", err, buf.String())
	}
	if got != c {
		t.Fatalf("ParseNet(WriteNet(c)) = %+v, want %+v", got, c)
	}
}

func TestParseNetRejectsWrongLineCount(t *testing.T) {
	_, err := ParseNet(strings.NewReader("u u u\nu u u\n"))
	if err == nil {
		t.Fatal("expected an error for a truncated net")
	}
}
