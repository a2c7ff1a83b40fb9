package movegen

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// InBounds reports whether (row, col) lies on the 8x8 board.
func InBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// Occupant classifies a cell relative to the color of the piece being moved.
type Occupant uint8

const (
	Empty Occupant = iota
	Own
	Opponent
)

func (o Occupant) String() string {
	switch o {
	case Own:
		return "Own"
	case Opponent:
		return "Opponent"
	default:
		return "Empty"
	}
}

// Classify returns Empty for NoPiece, Own when the piece matches mover and Opponent otherwise.
// All capture and block decisions in this package go through it.
func Classify(cell Piece, mover Color) Occupant {
	switch cell.Kind() {
	case NoKind:
		return Empty
	case Pawn, Knight, Bishop, Rook, Queen, King:
		if cell.Color() == mover {
			return Own
		}
		return Opponent
	default:
		panic(fmt.Sprintf("movegen: invalid piece code %d", uint8(cell)))
	}
}

// direction is a (dRow, dCol) step.
type direction struct{ dr, dc int }

var (
	rookDirections   = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirections = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections  = append(slices.Clone(rookDirections), bishopDirections...)
	knightOffsets    = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// slide walks each direction from the origin until it leaves the board, hits a
// piece, or has taken limit steps (0 means unbounded). Empty squares are
// recorded and the walk continues; an opponent square is recorded and ends the
// walk; an own square ends it without being recorded.
func (b *Board) slide(dst []Square, from Square, side Color, dirs []direction, limit int) []Square {
	for _, d := range dirs {
		row, col := from.Row+d.dr, from.Col+d.dc
		for steps := 1; InBounds(row, col); steps++ {
			occ := Classify(b.at(row, col), side)
			if occ == Own {
				break
			}
			dst = append(dst, Square{row, col})
			if occ == Opponent || steps == limit {
				break
			}
			row += d.dr
			col += d.dc
		}
	}
	return dst
}

// pawnStartRow is the rank from which a pawn of the given side may double push.
func pawnStartRow(side Color) int {
	if side == White {
		return 6
	}
	return 1
}

// pawnForward is the signed row step for the side's pawns.
func pawnForward(side Color) int {
	if side == White {
		return -1
	}
	return 1
}

// GeneratePawnMovesInto appends pawn destinations into dst in the order single
// push, double push, left capture, right capture. No en passant or promotion.
func (b *Board) GeneratePawnMovesInto(dst []Square, from Square, side Color) ([]Square, error) {
	if err := checkSquare(from); err != nil {
		return dst, err
	}
	fwd := pawnForward(side)
	next := from.Row + fwd

	if InBounds(next, from.Col) && Classify(b.at(next, from.Col), side) == Empty {
		dst = append(dst, Square{next, from.Col})

		// Double push only from the start rank, through an empty intermediate square.
		if from.Row == pawnStartRow(side) {
			two := next + fwd
			if InBounds(two, from.Col) && Classify(b.at(two, from.Col), side) == Empty {
				dst = append(dst, Square{two, from.Col})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		col := from.Col + dc
		if InBounds(next, col) && Classify(b.at(next, col), side) == Opponent {
			dst = append(dst, Square{next, col})
		}
	}
	return dst, nil
}

func (b *Board) generateSlidingInto(dst []Square, from Square, side Color, dirs []direction, limit int) ([]Square, error) {
	if err := checkSquare(from); err != nil {
		return dst, err
	}
	return b.slide(dst, from, side, dirs, limit), nil
}

// GenerateRookMovesInto appends rook destinations (up, down, left, right) into dst.
func (b *Board) GenerateRookMovesInto(dst []Square, from Square, side Color) ([]Square, error) {
	return b.generateSlidingInto(dst, from, side, rookDirections, 0)
}

// GenerateBishopMovesInto appends bishop destinations into dst.
func (b *Board) GenerateBishopMovesInto(dst []Square, from Square, side Color) ([]Square, error) {
	return b.generateSlidingInto(dst, from, side, bishopDirections, 0)
}

// GenerateQueenMovesInto appends queen destinations (rook directions, then bishop directions) into dst.
func (b *Board) GenerateQueenMovesInto(dst []Square, from Square, side Color) ([]Square, error) {
	return b.generateSlidingInto(dst, from, side, queenDirections, 0)
}

// GenerateKingMovesInto appends king destinations into dst. Castling is not generated.
func (b *Board) GenerateKingMovesInto(dst []Square, from Square, side Color) ([]Square, error) {
	return b.generateSlidingInto(dst, from, side, queenDirections, 1)
}

// GenerateKnightMovesInto appends knight destinations into dst.
func (b *Board) GenerateKnightMovesInto(dst []Square, from Square, side Color) ([]Square, error) {
	return b.generateSlidingInto(dst, from, side, knightOffsets, 1)
}

// GeneratePawnMoves returns the pawn destinations from 'from' for the given side.
// The cell itself is not inspected; callers decide what stands there.
func (b *Board) GeneratePawnMoves(from Square, side Color) ([]Square, error) {
	return b.GeneratePawnMovesInto(make([]Square, 0, 4), from, side)
}

// GenerateRookMoves returns the rook destinations from 'from' for the given side.
func (b *Board) GenerateRookMoves(from Square, side Color) ([]Square, error) {
	return b.GenerateRookMovesInto(make([]Square, 0, 14), from, side)
}

// GenerateBishopMoves returns the bishop destinations from 'from' for the given side.
func (b *Board) GenerateBishopMoves(from Square, side Color) ([]Square, error) {
	return b.GenerateBishopMovesInto(make([]Square, 0, 13), from, side)
}

// GenerateQueenMoves returns the queen destinations from 'from' for the given side.
func (b *Board) GenerateQueenMoves(from Square, side Color) ([]Square, error) {
	return b.GenerateQueenMovesInto(make([]Square, 0, 27), from, side)
}

// GenerateKingMoves returns the king destinations from 'from' for the given side.
func (b *Board) GenerateKingMoves(from Square, side Color) ([]Square, error) {
	return b.GenerateKingMovesInto(make([]Square, 0, 8), from, side)
}

// GenerateKnightMoves returns the knight destinations from 'from' for the given side.
func (b *Board) GenerateKnightMoves(from Square, side Color) ([]Square, error) {
	return b.GenerateKnightMovesInto(make([]Square, 0, 8), from, side)
}

// GenerateMovesInto dispatches on the piece standing on 'from' and appends its destinations into dst.
func (b *Board) GenerateMovesInto(dst []Square, from Square) ([]Square, error) {
	p, err := b.PieceAt(from)
	if err != nil {
		return dst, err
	}
	side := p.Color()
	switch p.Kind() {
	case Pawn:
		return b.GeneratePawnMovesInto(dst, from, side)
	case Knight:
		return b.GenerateKnightMovesInto(dst, from, side)
	case Bishop:
		return b.GenerateBishopMovesInto(dst, from, side)
	case Rook:
		return b.GenerateRookMovesInto(dst, from, side)
	case Queen:
		return b.GenerateQueenMovesInto(dst, from, side)
	case King:
		return b.GenerateKingMovesInto(dst, from, side)
	default:
		return dst, fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
}

// GenerateMoves returns the destinations of the piece standing on 'from'.
func (b *Board) GenerateMoves(from Square) ([]Square, error) {
	return b.GenerateMovesInto(make([]Square, 0, 32), from)
}

// Divide returns the number of destinations per origin square for every piece of side.
func (b *Board) Divide(side Color) map[Square]int {
	res := make(map[Square]int)
	buf := make([]Square, 0, 32)
	for _, from := range b.Occupied(side) {
		// Occupied only yields on-board, non-empty squares.
		buf, _ = b.GenerateMovesInto(buf[:0], from)
		res[from] = len(buf)
	}
	return res
}

// CountMoves returns the total number of destinations available to side.
func (b *Board) CountMoves(side Color) int {
	total := 0
	for _, n := range b.Divide(side) {
		total += n
	}
	return total
}
