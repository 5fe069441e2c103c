package engine

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// promotionChoices lists the kinds a pawn may become, strongest first.
var promotionChoices = [4]chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// isPromotion returns true if moving the coloured piece to to promotes it.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return chess.ExtractPiece(piece) == chess.Pawn &&
		to.Rank == chess.PromotionRank(chess.ExtractColour(piece))
}

// validatePromotion checks the promotion choice of a promoting move.
func validatePromotion(req chess.MoveRequest) error {
	if !req.Promotion.IsPromotionChoice() {
		return fmt.Errorf("%s: promotion to %v: %w", req, req.Promotion, errors.ErrInvalidPromotion)
	}
	return nil
}
