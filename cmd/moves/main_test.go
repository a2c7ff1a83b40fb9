package main

import (
	"bytes"
	"strings"
	"testing"

	mg "chess-moves/movegen"
)

func TestDemoTranscript(t *testing.T) {
	var buf bytes.Buffer
	if err := demo(&buf); err != nil {
		t.Fatalf("demo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"r n b q k b n r\n",
		"Moves for white pawn at (6, 4):\n(5,4)\n(4,4)\n",
		"Moves for black pawn at (1, 4):\n(2,4)\n(3,4)\n",
		"Moves for white rook at (7, 0):\n\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "Moves for black rook at (0, 0):\n") {
		t.Errorf("black rook should have no moves:\n%s", out)
	}
}

func TestRunSquareOverrides(t *testing.T) {
	var buf bytes.Buffer
	// Treat the empty e4 square as a white knight.
	if err := runSquare(&buf, mg.StandardBoard(), "e4", "white", "knight"); err != nil {
		t.Fatalf("runSquare: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 6 {
		t.Fatalf("expected 6 knight moves from e4, got %d:\n%s", n, buf.String())
	}

	if err := runSquare(&buf, mg.StandardBoard(), "e4", "", ""); err == nil {
		t.Fatalf("expected an error for an empty square without -kind")
	}
	if err := runSquare(&buf, mg.StandardBoard(), "e2", "green", ""); err == nil {
		t.Fatalf("expected an error for a bad color")
	}
}

func TestPrintDivide(t *testing.T) {
	var buf bytes.Buffer
	printDivide(&buf, mg.StandardBoard(), mg.Black)
	out := buf.String()
	if !strings.HasSuffix(out, "Total: 20\n") || !strings.Contains(out, "g8: 2\n") {
		t.Fatalf("unexpected divide output:\n%s", out)
	}
}

func TestRunVerify(t *testing.T) {
	var buf bytes.Buffer
	if code := runVerify(&buf, mg.StandardBoard()); code != 0 {
		t.Fatalf("runVerify exit %d:\n%s", code, buf.String())
	}
	if buf.String() != "ok\n" {
		t.Fatalf("unexpected verify output %q", buf.String())
	}
}
