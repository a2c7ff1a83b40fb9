package movegen

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidFEN}, args...)...)
}

// ParseFEN builds a board from a FEN string. Only the piece placement field is
// used; a bare placement field is accepted and trailing fields are ignored.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fenError("empty string")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("expected 8 ranks, got %d", len(ranks))
	}

	board := &Board{}
	// FEN lists rank 8 first, which is row 0 here.
	for row, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, fenError("empty rank %d", 8-row)
		}
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				if col > 8 {
					return nil, fenError("too many squares in rank %d", 8-row)
				}
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if col >= 8 {
				return nil, fenError("too many squares in rank %d", 8-row)
			}
			board.cells[row][col] = piece
			col++
		}
		if col != 8 {
			return nil, fenError("rank %d does not have 8 columns", 8-row)
		}
	}

	if len(fields) > 1 && fields[1] != "w" && fields[1] != "b" {
		return nil, fenError("side to move must be 'w' or 'b'")
	}
	return board, nil
}

// Placement returns the piece placement field of the board's FEN.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		emptyCount := 0
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(p.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN produces a full FEN string with the given side to move. The board keeps
// no castling, en passant or clock state, so those fields are always "- - 0 1".
func (b *Board) FEN(side Color) string {
	stm := "w"
	if side == Black {
		stm = "b"
	}
	return b.Placement() + " " + stm + " - - 0 1"
}
