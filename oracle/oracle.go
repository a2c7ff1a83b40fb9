// Package oracle cross-checks the movegen generators against two independent
// bitboard move generators: GooseEngineMG (pseudo-legal moves for every piece
// kind) and dragontoothmg (slider attack bitboards).
//
// Squares are converted between the two coordinate systems as
// index = (7-row)*8 + col, i.e. a1 = 0 and h8 = 63.
package oracle

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"

	mg "chess-moves/movegen"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	GooseName       = "goosemg"
	DragontoothName = "dragontoothmg"
)

// ErrNotSliding is returned by Dragontooth for pieces that are not rooks, bishops or queens.
var ErrNotSliding = errors.New("oracle: piece is not a sliding piece")

// Mismatch describes one origin square where movegen and an oracle disagree.
type Mismatch struct {
	Oracle string
	From   mg.Square
	Piece  mg.Piece
	Got    []mg.Square // movegen, row-major
	Want   []mg.Square // oracle, row-major
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s %v on %s: movegen [%s] %s [%s]",
		m.Oracle, m.Piece, m.From, joinSquares(m.Got), m.Oracle, joinSquares(m.Want))
}

func joinSquares(sqs []mg.Square) string {
	names := make([]string, len(sqs))
	for i, sq := range sqs {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}

func toIndex(sq mg.Square) int { return (7-sq.Row)*8 + sq.Col }

func fromIndex(idx int) mg.Square { return mg.Sq(7-idx/8, idx%8) }

// sortSquares orders squares row-major in place and returns them.
func sortSquares(sqs []mg.Square) []mg.Square {
	sort.Slice(sqs, func(i, j int) bool {
		if sqs[i].Row != sqs[j].Row {
			return sqs[i].Row < sqs[j].Row
		}
		return sqs[i].Col < sqs[j].Col
	})
	return sqs
}

func bitboardSquares(bb uint64) []mg.Square {
	out := make([]mg.Square, 0, bits.OnesCount64(bb))
	for bb != 0 {
		idx := bits.TrailingZeros64(bb)
		bb &= bb - 1
		out = append(out, fromIndex(idx))
	}
	return sortSquares(out)
}

func pieceOn(b *mg.Board, from mg.Square) (mg.Piece, error) {
	p, err := b.PieceAt(from)
	if err != nil {
		return mg.NoPiece, err
	}
	if p == mg.NoPiece {
		return mg.NoPiece, fmt.Errorf("%w: %s", mg.ErrEmptySquare, from)
	}
	return p, nil
}

// gooseTargets runs the GooseEngineMG pseudo-legal generator for side and groups
// destinations by origin. Promotion variants collapse onto one destination.
func gooseTargets(b *mg.Board, side mg.Color) (map[mg.Square][]mg.Square, error) {
	gb, err := goose.ParseFEN(b.FEN(side))
	if err != nil {
		return nil, fmt.Errorf("oracle: %s rejected position: %w", GooseName, err)
	}
	res := make(map[mg.Square][]mg.Square)
	for _, m := range gb.GeneratePseudoMoves() {
		from := fromIndex(int(m.From()))
		to := fromIndex(int(m.To()))
		if !slices.Contains(res[from], to) {
			res[from] = append(res[from], to)
		}
	}
	for from := range res {
		sortSquares(res[from])
	}
	return res, nil
}

// Goose returns the destinations GooseEngineMG generates for the piece on from, row-major.
func Goose(b *mg.Board, from mg.Square) ([]mg.Square, error) {
	p, err := pieceOn(b, from)
	if err != nil {
		return nil, err
	}
	all, err := gooseTargets(b, p.Color())
	if err != nil {
		return nil, err
	}
	return all[from], nil
}

// Dragontooth returns the destinations of the slider on from computed from
// dragontoothmg attack bitboards with own pieces masked out, row-major.
func Dragontooth(b *mg.Board, from mg.Square) ([]mg.Square, error) {
	p, err := pieceOn(b, from)
	if err != nil {
		return nil, err
	}
	switch p.Kind() {
	case mg.Rook, mg.Bishop, mg.Queen:
	default:
		return nil, fmt.Errorf("%w: %v on %s", ErrNotSliding, p, from)
	}
	dt := dragontoothmg.ParseFen(b.FEN(p.Color()))
	return sliderTargets(&dt, p, from), nil
}

func sliderTargets(dt *dragontoothmg.Board, p mg.Piece, from mg.Square) []mg.Square {
	own := dt.White.All
	if p.Color() == mg.Black {
		own = dt.Black.All
	}
	occ := dt.White.All | dt.Black.All
	sq := uint8(toIndex(from))

	var attacks uint64
	switch p.Kind() {
	case mg.Rook:
		attacks = dragontoothmg.CalculateRookMoveBitboard(sq, occ)
	case mg.Bishop:
		attacks = dragontoothmg.CalculateBishopMoveBitboard(sq, occ)
	case mg.Queen:
		attacks = dragontoothmg.CalculateRookMoveBitboard(sq, occ) |
			dragontoothmg.CalculateBishopMoveBitboard(sq, occ)
	}
	return bitboardSquares(attacks &^ own)
}

func generated(b *mg.Board, from mg.Square) []mg.Square {
	// Callers only pass occupied on-board squares.
	got, _ := b.GenerateMoves(from)
	return sortSquares(got)
}

func verifyGoose(b *mg.Board) ([]Mismatch, error) {
	var out []Mismatch
	for _, side := range []mg.Color{mg.White, mg.Black} {
		want, err := gooseTargets(b, side)
		if err != nil {
			return nil, err
		}
		for _, from := range b.Occupied(side) {
			got := generated(b, from)
			if !equalSets(got, want[from]) {
				p, _ := b.PieceAt(from)
				out = append(out, Mismatch{Oracle: GooseName, From: from, Piece: p, Got: got, Want: want[from]})
			}
		}
	}
	return out, nil
}

func verifyDragontooth(b *mg.Board) []Mismatch {
	var out []Mismatch
	for _, side := range []mg.Color{mg.White, mg.Black} {
		dt := dragontoothmg.ParseFen(b.FEN(side))
		for _, from := range b.Occupied(side) {
			p, _ := b.PieceAt(from)
			switch p.Kind() {
			case mg.Rook, mg.Bishop, mg.Queen:
			default:
				continue
			}
			got := generated(b, from)
			want := sliderTargets(&dt, p, from)
			if !equalSets(got, want) {
				out = append(out, Mismatch{Oracle: DragontoothName, From: from, Piece: p, Got: got, Want: want})
			}
		}
	}
	return out
}

func equalSets(a, b []mg.Square) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return slices.Equal(a, b)
}

// Verify compares every piece on the board against both oracles and returns
// the disagreements, GooseEngineMG first. The board is only read.
// GooseEngineMG only generates for one king per side, so positions with extra
// kings report mismatches for them.
func Verify(b *mg.Board) ([]Mismatch, error) {
	var gooseRes, dtRes []Mismatch
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		gooseRes, err = verifyGoose(b)
		return err
	})
	g.Go(func() error {
		dtRes = verifyDragontooth(b)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append(gooseRes, dtRes...), nil
}
