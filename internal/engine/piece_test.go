package engine

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

var allKinds = []chess.Piece{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}

// boardWith returns an empty board holding the given pieces.
func boardWith(pieces map[string]chess.Piece) *chess.Board {
	board := chess.NewEmptyBoard()
	for name, p := range pieces {
		board.Set(chess.MustSquare(name), p)
	}
	return board
}

func TestValidatePieceMove_RejectsOffBoardTargets(t *testing.T) {
	d4 := chess.MustSquare("d4")
	targets := []chess.Square{chess.Sq(9, 9), chess.Sq(-1, 3), chess.Sq(3, 8), chess.Sq(8, 3), chess.Sq(4, -1)}

	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			board := boardWith(map[string]chess.Piece{"d4": chess.W(kind)})
			for _, to := range targets {
				if ValidatePieceMove(board, d4, to) {
					t.Errorf("%v d4 -> %+v accepted", kind, to)
				}
			}
		})
	}
}

func TestValidatePieceMove_RejectsSameSquare(t *testing.T) {
	d4 := chess.MustSquare("d4")
	for _, kind := range allKinds {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			board := boardWith(map[string]chess.Piece{"d4": chess.MakeColouredPiece(colour, kind)})
			if ValidatePieceMove(board, d4, d4) {
				t.Errorf("%v %v d4 -> d4 accepted", colour, kind)
			}
		}
	}
}

func TestValidatePieceMove_EmptySource(t *testing.T) {
	board := chess.NewEmptyBoard()
	if ValidatePieceMove(board, chess.MustSquare("d4"), chess.MustSquare("d5")) {
		t.Error("move from an empty square accepted")
	}
}

func TestValidatePieceMove_TeamGuard(t *testing.T) {
	// Each target is geometrically reachable from d4 for the kind.
	targets := map[chess.Piece]string{
		chess.Pawn:   "e5",
		chess.Knight: "e6",
		chess.Bishop: "f6",
		chess.Rook:   "d7",
		chess.Queen:  "a7",
		chess.King:   "e5",
	}

	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			target := targets[kind]
			d4, to := chess.MustSquare("d4"), chess.MustSquare(target)

			own := boardWith(map[string]chess.Piece{"d4": chess.W(kind), target: chess.W(chess.Knight)})
			if ValidatePieceMove(own, d4, to) {
				t.Errorf("%v d4 -> %s onto own piece accepted", kind, target)
			}

			enemy := boardWith(map[string]chess.Piece{"d4": chess.W(kind), target: chess.B(chess.Knight)})
			if !ValidatePieceMove(enemy, d4, to) {
				t.Errorf("%v d4 -> %s onto enemy piece rejected", kind, target)
			}
		})
	}
}

func TestValidatePieceMove_SlidersBlocked(t *testing.T) {
	tests := []struct {
		name    string
		kind    chess.Piece
		from    string
		to      string
		blocker string
	}{
		{"rook file", chess.Rook, "d4", "d8", "d6"},
		{"rook rank", chess.Rook, "d4", "a4", "b4"},
		{"bishop", chess.Bishop, "d4", "h8", "f6"},
		{"bishop backwards", chess.Bishop, "d4", "a1", "b2"},
		{"queen diagonal", chess.Queen, "d4", "a7", "c5"},
		{"queen straight", chess.Queen, "d4", "d1", "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := chess.MustSquare(tt.from), chess.MustSquare(tt.to)
			board := boardWith(map[string]chess.Piece{tt.from: chess.W(tt.kind)})

			if !ValidatePieceMove(board, from, to) {
				t.Fatalf("%s -> %s rejected on an open board", tt.from, tt.to)
			}

			for _, blocker := range []chess.Piece{chess.W(chess.Pawn), chess.B(chess.Pawn)} {
				board.Set(chess.MustSquare(tt.blocker), blocker)
				if ValidatePieceMove(board, from, to) {
					t.Errorf("%s -> %s accepted through %v on %s", tt.from, tt.to, blocker, tt.blocker)
				}
			}

			board.Set(chess.MustSquare(tt.blocker), chess.Empty)
			if !ValidatePieceMove(board, from, to) {
				t.Errorf("%s -> %s rejected after removing the blocker", tt.from, tt.to)
			}
		})
	}
}

func TestValidatePieceMove_KnightJumps(t *testing.T) {
	d4 := chess.MustSquare("d4")
	for _, target := range []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"} {
		t.Run(target, func(t *testing.T) {
			to := chess.MustSquare(target)

			// Every other square holds a white pawn.
			board := chess.NewEmptyBoard()
			for rank := 0; rank < chess.BoardSize; rank++ {
				for file := 0; file < chess.BoardSize; file++ {
					board.Set(chess.Sq(rank, file), chess.W(chess.Pawn))
				}
			}
			board.Set(d4, chess.W(chess.Knight))
			board.Set(to, chess.Empty)

			if !ValidatePieceMove(board, d4, to) {
				t.Errorf("knight d4 -> %s rejected on a full board", target)
			}
		})
	}

	board := boardWith(map[string]chess.Piece{"d4": chess.W(chess.Knight)})
	for _, target := range []string{"d6", "f6", "d5", "e4"} {
		if ValidatePieceMove(board, d4, chess.MustSquare(target)) {
			t.Errorf("knight d4 -> %s accepted", target)
		}
	}
}

func TestValidatePieceMove_Pawn(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		from   string
		to     string
		want   bool
	}{
		{"white single push", map[string]chess.Piece{"e2": chess.W(chess.Pawn)}, "e2", "e3", true},
		{"white double push", map[string]chess.Piece{"e2": chess.W(chess.Pawn)}, "e2", "e4", true},
		{"white double push jumped", map[string]chess.Piece{"e2": chess.W(chess.Pawn), "e3": chess.B(chess.Knight)}, "e2", "e4", false},
		{"white double push onto piece", map[string]chess.Piece{"e2": chess.W(chess.Pawn), "e4": chess.B(chess.Knight)}, "e2", "e4", false},
		{"white push onto piece", map[string]chess.Piece{"e2": chess.W(chess.Pawn), "e3": chess.B(chess.Knight)}, "e2", "e3", false},
		{"double push off start rank", map[string]chess.Piece{"e3": chess.W(chess.Pawn)}, "e3", "e5", false},
		{"triple push", map[string]chess.Piece{"e2": chess.W(chess.Pawn)}, "e2", "e5", false},
		{"backwards", map[string]chess.Piece{"e3": chess.W(chess.Pawn)}, "e3", "e2", false},
		{"sideways", map[string]chess.Piece{"e3": chess.W(chess.Pawn)}, "e3", "f3", false},
		{"diagonal onto empty", map[string]chess.Piece{"e2": chess.W(chess.Pawn)}, "e2", "d3", false},
		{"diagonal capture", map[string]chess.Piece{"e2": chess.W(chess.Pawn), "d3": chess.B(chess.Bishop)}, "e2", "d3", true},
		{"black single push", map[string]chess.Piece{"e7": chess.B(chess.Pawn)}, "e7", "e6", true},
		{"black double push", map[string]chess.Piece{"e7": chess.B(chess.Pawn)}, "e7", "e5", true},
		{"black wrong direction", map[string]chess.Piece{"e6": chess.B(chess.Pawn)}, "e6", "e7", false},
		{"black diagonal capture", map[string]chess.Piece{"e5": chess.B(chess.Pawn), "f4": chess.W(chess.Rook)}, "e5", "f4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(tt.pieces)
			got := ValidatePieceMove(board, chess.MustSquare(tt.from), chess.MustSquare(tt.to))
			if got != tt.want {
				t.Errorf("ValidatePieceMove(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidatePieceMove_KingOneStep(t *testing.T) {
	board := boardWith(map[string]chess.Piece{"e4": chess.W(chess.King)})
	e4 := chess.MustSquare("e4")

	for _, o := range kingOffsets {
		to := e4.Offset(o[0], o[1])
		if !ValidatePieceMove(board, e4, to) {
			t.Errorf("king e4 -> %s rejected", to)
		}
	}
	for _, target := range []string{"e6", "g4", "c2", "f6"} {
		if ValidatePieceMove(board, e4, chess.MustSquare(target)) {
			t.Errorf("king e4 -> %s accepted", target)
		}
	}
}

func TestValidatePieceMove_DoesNotModifyBoard(t *testing.T) {
	board := chess.NewInitialBoard()
	before := board.Copy()

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			ValidatePieceMove(board, chess.MustSquare("b1"), chess.Sq(rank, file))
			ValidatePieceMove(board, chess.MustSquare("d1"), chess.Sq(rank, file))
		}
	}

	if *board != *before {
		t.Error("ValidatePieceMove modified the board")
	}
}
