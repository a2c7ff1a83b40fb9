package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	mg "chess-moves/movegen"
	"chess-moves/oracle"

	"golang.org/x/exp/maps"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	square := flag.String("square", "", "Origin square, algebraic (e2) or row,col (6,4); empty prints the demo transcript")
	color := flag.String("color", "", "Side to generate for (white|black); defaults to the color of the piece on -square")
	kind := flag.String("kind", "", "Piece kind to generate for (pawn|knight|bishop|rook|queen|king); defaults to the piece on -square")
	divide := flag.Bool("divide", false, "Print per-origin destination counts for -color (default white)")
	verify := flag.Bool("verify", false, "Cross-check every piece against goosemg and dragontoothmg")
	flag.Parse()

	board, err := mg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case *verify:
		os.Exit(runVerify(os.Stdout, board))
	case *divide:
		side, err := parseColor(*color, mg.White)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		printDivide(os.Stdout, board, side)
	case *square == "":
		if err := demo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(2)
		}
	default:
		if err := runSquare(os.Stdout, board, *square, *color, *kind); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
}

func parseColor(s string, def mg.Color) (mg.Color, error) {
	switch strings.ToLower(s) {
	case "":
		return def, nil
	case "w", "white":
		return mg.White, nil
	case "b", "black":
		return mg.Black, nil
	}
	return def, fmt.Errorf("-color must be white or black, got %q", s)
}

func parseKind(s string, def mg.Kind) (mg.Kind, error) {
	switch strings.ToLower(s) {
	case "":
		return def, nil
	case "p", "pawn":
		return mg.Pawn, nil
	case "n", "knight":
		return mg.Knight, nil
	case "b", "bishop":
		return mg.Bishop, nil
	case "r", "rook":
		return mg.Rook, nil
	case "q", "queen":
		return mg.Queen, nil
	case "k", "king":
		return mg.King, nil
	}
	return def, fmt.Errorf("-kind must be one of pawn, knight, bishop, rook, queen, king; got %q", s)
}

// generate runs the generator for kind without looking at what stands on from.
func generate(b *mg.Board, k mg.Kind, from mg.Square, side mg.Color) ([]mg.Square, error) {
	switch k {
	case mg.Pawn:
		return b.GeneratePawnMoves(from, side)
	case mg.Knight:
		return b.GenerateKnightMoves(from, side)
	case mg.Bishop:
		return b.GenerateBishopMoves(from, side)
	case mg.Rook:
		return b.GenerateRookMoves(from, side)
	case mg.Queen:
		return b.GenerateQueenMoves(from, side)
	case mg.King:
		return b.GenerateKingMoves(from, side)
	}
	return nil, fmt.Errorf("%w: %s", mg.ErrEmptySquare, from)
}

func runSquare(w io.Writer, b *mg.Board, square, color, kind string) error {
	from, err := mg.ParseSquare(square)
	if err != nil {
		return err
	}
	p, err := b.PieceAt(from)
	if err != nil {
		return err
	}
	side, err := parseColor(color, p.Color())
	if err != nil {
		return err
	}
	k, err := parseKind(kind, p.Kind())
	if err != nil {
		return err
	}
	moves, err := generate(b, k, from, side)
	if err != nil {
		return err
	}
	fmt.Fprint(w, mg.FormatSquares(moves))
	return nil
}

func printDivide(w io.Writer, b *mg.Board, side mg.Color) {
	div := b.Divide(side)
	// Sort origins for stable output
	origins := maps.Keys(div)
	sort.Slice(origins, func(i, j int) bool { return origins[i].String() < origins[j].String() })
	total := 0
	for _, from := range origins {
		fmt.Fprintf(w, "%s: %d\n", from, div[from])
		total += div[from]
	}
	fmt.Fprintf(w, "Total: %d\n", total)
}

func runVerify(w io.Writer, b *mg.Board) int {
	mismatches, err := oracle.Verify(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify: %v\n", err)
		return 2
	}
	for _, m := range mismatches {
		fmt.Fprintln(w, m)
	}
	if len(mismatches) > 0 {
		fmt.Fprintf(w, "%d mismatches\n", len(mismatches))
		return 1
	}
	fmt.Fprintln(w, "ok")
	return 0
}

// demo prints the standard board followed by moves for the pawns and rooks on the a- and e-files.
func demo(w io.Writer) error {
	board := mg.StandardBoard()
	if err := mg.Fprint(w, board); err != nil {
		return err
	}
	steps := []struct {
		label string
		kind  mg.Kind
		from  mg.Square
		side  mg.Color
	}{
		{"white pawn", mg.Pawn, mg.Sq(6, 4), mg.White},
		{"black pawn", mg.Pawn, mg.Sq(1, 4), mg.Black},
		{"white rook", mg.Rook, mg.Sq(7, 0), mg.White},
		{"black rook", mg.Rook, mg.Sq(0, 0), mg.Black},
	}
	for _, s := range steps {
		moves, err := generate(board, s.kind, s.from, s.side)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nMoves for %s at (%d, %d):\n%s", s.label, s.from.Row, s.from.Col, mg.FormatSquares(moves))
	}
	return nil
}
