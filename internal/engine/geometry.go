// Package engine decides move legality under standard chess rules and derives
// the resulting game state. It performs no I/O and parses no text.
package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// Step tables as {rank, file} deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// OutOfBoard returns true if the square lies outside the board.
func OutOfBoard(sq chess.Square) bool {
	return !sq.InBounds()
}

// IsSameSquare returns true if a and b name the same square.
func IsSameSquare(a, b chess.Square) bool {
	return a == b
}

// IsSameTeam returns true if a and b are both occupied by pieces of one colour.
// An empty or off-board square has no team, so the result is false.
func IsSameTeam(a, b chess.Square, board *chess.Board) bool {
	pa, pb := board.Get(a), board.Get(b)
	if !chess.IsOccupant(pa) || !chess.IsOccupant(pb) {
		return false
	}
	return chess.ExtractColour(pa) == chess.ExtractColour(pb)
}

// IsPathBlocked returns true if any square strictly between from and to is
// occupied. It only applies to straight and diagonal lines; for any other
// pair of squares it returns false.
func IsPathBlocked(from, to chess.Square, board *chess.Board) bool {
	if OutOfBoard(from) || OutOfBoard(to) || IsSameSquare(from, to) {
		return false
	}
	dr, df := to.Rank-from.Rank, to.File-from.File
	if !isStraight(dr, df) && !isDiagonal(dr, df) {
		return false
	}

	stepRank, stepFile := sign(dr), sign(df)
	for cur := from.Offset(stepRank, stepFile); cur != to; cur = cur.Offset(stepRank, stepFile) {
		if !board.IsEmpty(cur) {
			return true
		}
	}
	return false
}

// isStraight returns true for a non-zero move along a rank or file.
func isStraight(dr, df int) bool {
	return (dr == 0) != (df == 0)
}

// isDiagonal returns true for a non-zero diagonal move.
func isDiagonal(dr, df int) bool {
	return dr != 0 && abs(dr) == abs(df)
}

// isKnightStep returns true for an L-shaped jump.
func isKnightStep(dr, df int) bool {
	ar, af := abs(dr), abs(df)
	return (ar == 2 && af == 1) || (ar == 1 && af == 2)
}
