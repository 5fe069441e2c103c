package engine

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Files involved in standard castling.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// castlingRightsBySquare maps home squares to the rights lost when a piece
// leaves or is captured on them.
var castlingRightsBySquare = map[chess.Square]chess.CastlingRights{
	chess.Sq(0, kingFile):          chess.WhiteKingside | chess.WhiteQueenside,
	chess.Sq(0, kingsideRookFile):  chess.WhiteKingside,
	chess.Sq(0, queensideRookFile): chess.WhiteQueenside,
	chess.Sq(7, kingFile):          chess.BlackKingside | chess.BlackQueenside,
	chess.Sq(7, kingsideRookFile):  chess.BlackKingside,
	chess.Sq(7, queensideRookFile): chess.BlackQueenside,
}

// castlingPlan describes the squares of one castling move.
type castlingPlan struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	// between must be empty.
	between []chess.Square
	// kingPath is the king's start, passed and destination square; none may
	// be attacked.
	kingPath [3]chess.Square
}

// newCastlingPlan returns the squares for the given colour and wing.
func newCastlingPlan(colour chess.Colour, kingside bool) castlingPlan {
	home := chess.HomeRank(colour)
	if kingside {
		return castlingPlan{
			kingFrom: chess.Sq(home, kingFile),
			kingTo:   chess.Sq(home, 6),
			rookFrom: chess.Sq(home, kingsideRookFile),
			rookTo:   chess.Sq(home, 5),
			between:  []chess.Square{chess.Sq(home, 5), chess.Sq(home, 6)},
			kingPath: [3]chess.Square{chess.Sq(home, 4), chess.Sq(home, 5), chess.Sq(home, 6)},
		}
	}
	return castlingPlan{
		kingFrom: chess.Sq(home, kingFile),
		kingTo:   chess.Sq(home, 2),
		rookFrom: chess.Sq(home, queensideRookFile),
		rookTo:   chess.Sq(home, 3),
		between:  []chess.Square{chess.Sq(home, 1), chess.Sq(home, 2), chess.Sq(home, 3)},
		kingPath: [3]chess.Square{chess.Sq(home, 4), chess.Sq(home, 3), chess.Sq(home, 2)},
	}
}

// isCastlingShape returns true if a king move from from to to has the shape
// of castling: from the home square, two files along the home rank.
func isCastlingShape(from, to chess.Square, colour chess.Colour) bool {
	home := chess.HomeRank(colour)
	return from == chess.Sq(home, kingFile) && to.Rank == home && abs(to.File-from.File) == 2
}

// validateCastling checks every castling precondition except the shape.
func validateCastling(board *chess.Board, ctx chess.Context, colour chess.Colour, kingside bool) error {
	plan := newCastlingPlan(colour, kingside)
	name := "O-O"
	if !kingside {
		name = "O-O-O"
	}

	if !ctx.Castling.Has(chess.CastlingRight(colour, kingside)) {
		return fmt.Errorf("%s: right already lost: %w", name, errors.ErrCastlingForfeited)
	}
	if board.Get(plan.kingFrom) != chess.MakeColouredPiece(colour, chess.King) ||
		board.Get(plan.rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
		return fmt.Errorf("%s: king or rook not on its home square: %w", name, errors.ErrCastlingForfeited)
	}
	for _, sq := range plan.between {
		if !board.IsEmpty(sq) {
			return fmt.Errorf("%s: %s is occupied: %w", name, sq, errors.ErrIllegalPieceMove)
		}
	}
	for _, sq := range plan.kingPath {
		if IsSquareAttacked(board, sq, colour.Opposite()) {
			return fmt.Errorf("%s: %s is attacked: %w", name, sq, errors.ErrCastlingForfeited)
		}
	}
	return nil
}

// applyCastle relocates king and rook together.
func applyCastle(board *chess.Board, colour chess.Colour, kingside bool) {
	plan := newCastlingPlan(colour, kingside)

	king := board.Get(plan.kingFrom)
	rook := board.Get(plan.rookFrom)
	board.Set(plan.kingFrom, chess.Empty)
	board.Set(plan.rookFrom, chess.Empty)
	board.Set(plan.kingTo, king)
	board.Set(plan.rookTo, rook)
}

// updateCastlingRights removes the rights tied to the squares a move touches:
// a king or rook leaving home, or a rook captured at home.
func updateCastlingRights(rights chess.CastlingRights, from, to chess.Square) chess.CastlingRights {
	return rights &^ (castlingRightsBySquare[from] | castlingRightsBySquare[to])
}
