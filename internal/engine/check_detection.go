package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move to sq
// under its raw movement pattern. Pawns attack their forward diagonals
// whether or not sq is occupied, kings attack one step and never by castling,
// and king safety of the attacker is ignored.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if OutOfBoard(sq) {
		return false
	}

	// Pawns attack from one rank behind, seen from the attacker.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	back := -chess.ColourOffset(byColour)
	if board.Get(sq.Offset(back, -1)) == pawn || board.Get(sq.Offset(back, 1)) == pawn {
		return true
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		if board.Get(sq.Offset(o[0], o[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, o := range kingOffsets {
		if board.Get(sq.Offset(o[0], o[1])) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if p := firstOccupant(board, sq, dir); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if p := firstOccupant(board, sq, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstOccupant walks from sq in the given direction and returns the first
// piece met, or Off if the edge is reached first.
func firstOccupant(board *chess.Board, sq chess.Square, dir [2]int) chess.Piece {
	for cur := sq.Offset(dir[0], dir[1]); cur.InBounds(); cur = cur.Offset(dir[0], dir[1]) {
		if p := board.Get(cur); p != chess.Empty {
			return p
		}
	}
	return chess.Off
}
