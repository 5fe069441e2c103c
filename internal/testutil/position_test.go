package testutil

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

func TestMustPosition(t *testing.T) {
	board, ctx := MustPosition(t, KiwipeteFEN)

	AssertEqual(t, board.Get(chess.MustSquare("e1")), chess.W(chess.King))
	AssertEqual(t, ctx.ToMove, chess.White)
	AssertEqual(t, ctx.Castling, chess.AllCastling)
}

func TestMove(t *testing.T) {
	AssertEqual(t, Move("e2", "e4").String(), "e2e4")
	AssertEqual(t, Move("e2", "e4").Promotion, chess.Empty)
	AssertEqual(t, Promote("a7", "a8", chess.Knight).String(), "a7a8n")
}

func TestMoveStrings(t *testing.T) {
	moves := []chess.MoveRequest{Move("g1", "f3"), Move("b1", "c3"), Move("e2", "e4")}
	AssertEqual(t, MoveStrings(moves), []string{"b1c3", "e2e4", "g1f3"})
}

func TestAssertSameMoves_Success(t *testing.T) {
	moves := []chess.MoveRequest{Move("g1", "f3"), Move("b1", "c3")}
	AssertSameMoves(t, moves, []string{"b1c3", "g1f3"})
	AssertSameMoves(t, nil, nil)
}
