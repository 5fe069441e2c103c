package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// ValidatePieceMove reports whether the piece on from may move to to under its
// own movement pattern. It ignores king safety, castling and en passant, which
// need the game context. It never modifies the board.
func ValidatePieceMove(board *chess.Board, from, to chess.Square) bool {
	if OutOfBoard(from) || OutOfBoard(to) || IsSameSquare(from, to) {
		return false
	}
	piece := board.Get(from)
	if !chess.IsOccupant(piece) {
		return false
	}
	if IsSameTeam(from, to, board) {
		return false
	}

	dr, df := to.Rank-from.Rank, to.File-from.File

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return validatePawnMove(board, from, to, chess.ExtractColour(piece))
	case chess.Knight:
		return isKnightStep(dr, df)
	case chess.Bishop:
		return isDiagonal(dr, df) && !IsPathBlocked(from, to, board)
	case chess.Rook:
		return isStraight(dr, df) && !IsPathBlocked(from, to, board)
	case chess.Queen:
		return (isStraight(dr, df) || isDiagonal(dr, df)) && !IsPathBlocked(from, to, board)
	case chess.King:
		return abs(dr) <= 1 && abs(df) <= 1
	default:
		return false
	}
}
