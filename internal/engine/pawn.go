package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// validatePawnMove checks the pawn pattern: a single push onto an empty square,
// a double push from the start rank over two empty squares, or a diagonal
// capture of an enemy piece.
func validatePawnMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	dir := chess.ColourOffset(colour)
	dr, df := to.Rank-from.Rank, to.File-from.File

	switch {
	case df == 0 && dr == dir:
		return board.IsEmpty(to)
	case df == 0 && dr == 2*dir:
		return from.Rank == chess.PawnStartRank(colour) &&
			board.IsEmpty(from.Offset(dir, 0)) &&
			board.IsEmpty(to)
	case abs(df) == 1 && dr == dir:
		target := board.Get(to)
		return chess.IsOccupant(target) && chess.ExtractColour(target) != colour
	}
	return false
}

// isPawnDiagonalStep returns true if to is one square diagonally forward of from.
func isPawnDiagonalStep(from, to chess.Square, colour chess.Colour) bool {
	return to.Rank-from.Rank == chess.ColourOffset(colour) && abs(to.File-from.File) == 1
}

// isDoublePush returns true if the pawn move covers two ranks.
func isDoublePush(from, to chess.Square) bool {
	return abs(to.Rank-from.Rank) == 2
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture from from to to.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Rank, to.File)
}

// isEnPassantCapture returns true if the pawn on from may capture en passant
// onto to: to is the context's target square, it is empty, and the pawn that
// just made the double push stands beside the capturing pawn.
func isEnPassantCapture(board *chess.Board, ctx chess.Context, from, to chess.Square, colour chess.Colour) bool {
	if !isPawnDiagonalStep(from, to, colour) || !ctx.IsEnPassantTarget(to) || !board.IsEmpty(to) {
		return false
	}
	return board.Get(enPassantVictim(from, to)) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
}
