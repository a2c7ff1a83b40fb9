package movegen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSquare is returned when a square name cannot be parsed.
var ErrInvalidSquare = errors.New("invalid square")

// Square is a (row, col) board coordinate. Row 0 is rank 8, col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool { return InBounds(s.Row, s.Col) }

// String returns the algebraic name ("e2"), or "(row,col)" for off-board squares.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

// ParseSquare converts an algebraic name ("e2") or a "row,col" pair ("6,4") into a Square.
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if r, c, ok := strings.Cut(strings.Trim(s, "()"), ","); ok {
		var row, col int
		if _, err := fmt.Sscanf(strings.TrimSpace(r)+" "+strings.TrimSpace(c), "%d %d", &row, &col); err != nil {
			return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
		}
		if !InBounds(row, col) {
			return Square{}, fmt.Errorf("%w: (%d,%d)", ErrSquareOutOfRange, row, col)
		}
		return Square{row, col}, nil
	}
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
