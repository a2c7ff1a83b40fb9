package api

import (
	"errors"
	"net/http"
	"strconv"

	mg "chess-moves/movegen"
	"chess-moves/oracle"

	"github.com/gin-gonic/gin"
)

type MoveApi struct {
	// Verify makes every /moves response carry oracle mismatches for the position.
	Verify bool
}

func NewMoveApi(verify bool) *MoveApi {
	return &MoveApi{Verify: verify}
}

// NewRouter wires the handlers onto a gin engine with the default logger and recovery.
func NewRouter(a *MoveApi) *gin.Engine {
	r := gin.Default()
	r.GET("/board", a.Board)
	r.GET("/moves", a.Moves)
	return r
}

func boardFromQuery(ctx *gin.Context) (*mg.Board, bool) {
	b, err := mg.ParseFEN(ctx.DefaultQuery("fen", mg.FENStartPos))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return nil, false
	}
	return b, true
}

func (a *MoveApi) Board(ctx *gin.Context) {
	b, ok := boardFromQuery(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"fen":   b.Placement(),
		"board": b.Rows(),
	})
}

func (a *MoveApi) Moves(ctx *gin.Context) {
	b, ok := boardFromQuery(ctx)
	if !ok {
		return
	}
	from, err := mg.ParseSquare(ctx.Query("square"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	moves, err := b.GenerateMoves(from)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, mg.ErrEmptySquare) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	p, _ := b.PieceAt(from)
	names := make([]string, len(moves))
	for i, sq := range moves {
		names[i] = sq.String()
	}
	resp := gin.H{
		"square": from.String(),
		"piece":  p.String(),
		"moves":  names,
	}

	verify := a.Verify
	if v, err := strconv.ParseBool(ctx.DefaultQuery("verify", "false")); err == nil && v {
		verify = true
	}
	if verify {
		mismatches, err := oracle.Verify(b)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}
		report := make([]string, len(mismatches))
		for i, m := range mismatches {
			report[i] = m.String()
		}
		resp["mismatches"] = report
	}
	ctx.JSON(http.StatusOK, resp)
}
