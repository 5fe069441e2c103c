package engine

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

func TestOutOfBoard(t *testing.T) {
	tests := []struct {
		sq   chess.Square
		want bool
	}{
		{chess.Sq(0, 0), false},
		{chess.Sq(7, 7), false},
		{chess.Sq(3, 4), false},
		{chess.Sq(8, 0), true},
		{chess.Sq(0, 8), true},
		{chess.Sq(-1, 3), true},
		{chess.Sq(3, -1), true},
		{chess.Sq(9, 9), true},
	}
	for _, tt := range tests {
		if got := OutOfBoard(tt.sq); got != tt.want {
			t.Errorf("OutOfBoard(%+v) = %v, want %v", tt.sq, got, tt.want)
		}
	}
}

func TestIsSameTeam(t *testing.T) {
	board := chess.NewInitialBoard()
	a1, b1 := chess.MustSquare("a1"), chess.MustSquare("b1")
	a8, e4 := chess.MustSquare("a8"), chess.MustSquare("e4")

	if !IsSameTeam(a1, b1, board) {
		t.Error("a1 and b1 should be the same team")
	}
	if IsSameTeam(a1, a8, board) {
		t.Error("a1 and a8 should not be the same team")
	}
	if IsSameTeam(a1, e4, board) || IsSameTeam(e4, a1, board) {
		t.Error("an empty square has no team")
	}
	if IsSameTeam(a1, chess.Sq(-1, 0), board) {
		t.Error("an off-board square has no team")
	}
}

func TestIsPathBlocked(t *testing.T) {
	board := chess.NewEmptyBoard()
	board.Set(chess.MustSquare("d6"), chess.B(chess.Pawn))
	board.Set(chess.MustSquare("f6"), chess.W(chess.Pawn))

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"file through blocker", "d4", "d8", true},
		{"file up to blocker", "d4", "d6", false},
		{"file away from blocker", "d4", "d1", false},
		{"diagonal through blocker", "d4", "h8", true},
		{"diagonal up to blocker", "d4", "f6", false},
		{"rank clear", "a4", "h4", false},
		{"adjacent", "d4", "d5", false},
		{"knight shape is not a line", "d5", "f6", false},
		{"knight shape with blockers around", "c5", "d7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := chess.MustSquare(tt.from), chess.MustSquare(tt.to)
			if got := IsPathBlocked(from, to, board); got != tt.want {
				t.Errorf("IsPathBlocked(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsPathBlocked_DegenerateInput(t *testing.T) {
	board := chess.NewInitialBoard()
	d4 := chess.MustSquare("d4")

	if IsPathBlocked(d4, d4, board) {
		t.Error("same square should not be blocked")
	}
	if IsPathBlocked(d4, chess.Sq(9, 9), board) {
		t.Error("off-board target should not be reported as blocked")
	}
}

func TestIsPathBlocked_DoesNotMoveInput(t *testing.T) {
	board := chess.NewInitialBoard()
	from, to := chess.MustSquare("a1"), chess.MustSquare("a8")

	IsPathBlocked(from, to, board)

	if from != chess.MustSquare("a1") || to != chess.MustSquare("a8") {
		t.Errorf("inputs changed to %s, %s", from, to)
	}
}
