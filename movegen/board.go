package movegen

import (
	"errors"
	"fmt"
)

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece kind | 8) so that
	// - piece & 7 gives the kind in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// Kind is the colorless kind of a chess piece.
type Kind uint8

const (
	NoKind Kind = 0
	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return ""
	}
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// NewPiece combines a kind with a side. NoKind yields NoPiece.
func NewPiece(color Color, k Kind) Piece {
	if k == NoKind || k > King {
		return NoPiece
	}
	if color == Black {
		return Piece(k) | 8
	}
	return Piece(k)
}

// Kind returns the colorless kind of the piece (NoKind for NoPiece).
func (p Piece) Kind() Kind { return Kind(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Valid reports whether p is NoPiece or one of the twelve piece constants.
func (p Piece) Valid() bool {
	k := p.Kind()
	return p == NoPiece || (p&^15 == 0 && k >= Pawn && k <= King)
}

// IsEmpty reports whether p is the empty cell value.
func (p Piece) IsEmpty() bool { return p == NoPiece }

var (
	// ErrSquareOutOfRange is returned when a caller passes an off-board square.
	ErrSquareOutOfRange = errors.New("square out of range")
	// ErrEmptySquare is returned when a piece is required but the cell is empty.
	ErrEmptySquare = errors.New("no piece on square")
	// ErrInvalidPiece is returned by SetPiece for codes outside the piece set.
	ErrInvalidPiece = errors.New("invalid piece")
)

// Board is an 8x8 grid of optional pieces. Row 0 is black's back rank in the
// standard layout, row 7 is white's.
type Board struct {
	cells [8][8]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board { return &Board{} }

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardBoard returns a board set up in the standard opening position.
func StandardBoard() *Board {
	b := &Board{}
	for col, k := range backRank {
		b.cells[0][col] = NewPiece(Black, k)
		b.cells[1][col] = BlackPawn
		b.cells[6][col] = WhitePawn
		b.cells[7][col] = NewPiece(White, k)
	}
	return b
}

func checkSquare(sq Square) error {
	if !InBounds(sq.Row, sq.Col) {
		return fmt.Errorf("%w: (%d,%d)", ErrSquareOutOfRange, sq.Row, sq.Col)
	}
	return nil
}

// PieceAt returns the piece on sq, or NoPiece for an empty cell.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if err := checkSquare(sq); err != nil {
		return NoPiece, err
	}
	return b.cells[sq.Row][sq.Col], nil
}

// at is the unchecked accessor used by the generators after InBounds.
func (b *Board) at(row, col int) Piece { return b.cells[row][col] }

// SetPiece sets a piece on a square, replacing any existing piece.
func (b *Board) SetPiece(sq Square, p Piece) error {
	if err := checkSquare(sq); err != nil {
		return err
	}
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPiece, uint8(p))
	}
	b.cells[sq.Row][sq.Col] = p
	return nil
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) error { return b.SetPiece(sq, NoPiece) }

// MovePiece moves a piece from one square to another. If a piece exists on 'to', it is captured.
func (b *Board) MovePiece(from, to Square) error {
	if err := checkSquare(from); err != nil {
		return err
	}
	if err := checkSquare(to); err != nil {
		return err
	}
	moving := b.cells[from.Row][from.Col]
	if moving == NoPiece {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	b.cells[from.Row][from.Col] = NoPiece
	b.cells[to.Row][to.Col] = moving
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Occupied returns the squares holding pieces of the given side in row-major order.
func (b *Board) Occupied(side Color) []Square {
	var out []Square
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p != NoPiece && p.Color() == side {
				out = append(out, Square{row, col})
			}
		}
	}
	return out
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for row := range b.cells {
		for _, p := range b.cells[row] {
			if p != NoPiece {
				n++
			}
		}
	}
	return n
}
