package movegen

import (
	"fmt"
	"io"
	"strings"
)

// Symbol returns the display character: uppercase for White, lowercase for Black, '.' for empty.
func (p Piece) Symbol() rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '.'
	}
}

func (p Piece) String() string { return string(p.Symbol()) }

// Rows renders each board row as a space separated line, row 0 first.
func (b *Board) Rows() []string {
	rows := make([]string, 8)
	cells := make([]string, 8)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cells[col] = b.cells[row][col].String()
		}
		rows[row] = strings.Join(cells, " ")
	}
	return rows
}

func (b *Board) String() string { return strings.Join(b.Rows(), "\n") + "\n" }

// Fprint writes the board to w row by row.
func Fprint(w io.Writer, b *Board) error {
	_, err := fmt.Fprint(w, b.String())
	return err
}

// FormatSquares renders squares as "(row,col)" lines, the console transcript format.
func FormatSquares(squares []Square) string {
	var sb strings.Builder
	for _, sq := range squares {
		fmt.Fprintf(&sb, "(%d,%d)\n", sq.Row, sq.Col)
	}
	return sb.String()
}
