package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/fen"
)

// Standard perft test positions.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	PerftPos3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	PerftPos4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	PerftPos5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// MustPosition parses a FEN string and calls t.Fatal if it is invalid.
func MustPosition(t testing.TB, s string) (*chess.Board, chess.Context) {
	t.Helper()
	board, ctx, err := fen.Parse(s)
	if err != nil {
		t.Fatalf("invalid test position %q: %v", s, err)
	}
	return board, ctx
}

// Move builds a request from two square names, e.g. Move("e2", "e4").
// It panics on malformed names, so use it only with literals.
func Move(from, to string) chess.MoveRequest {
	return chess.NewMoveRequest(chess.MustSquare(from), chess.MustSquare(to))
}

// Promote builds a promoting request, e.g. Promote("e7", "e8", chess.Queen).
func Promote(from, to string, kind chess.Piece) chess.MoveRequest {
	return Move(from, to).WithPromotion(kind)
}

// MoveStrings renders requests in coordinate notation, sorted.
func MoveStrings(moves []chess.MoveRequest) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// AssertSameMoves compares two move sets ignoring order.
func AssertSameMoves(t *testing.T, got []chess.MoveRequest, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := make([]string, len(want))
	copy(sorted, want)
	sort.Strings(sorted)
	if diff := cmp.Diff(sorted, MoveStrings(got)); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: move sets differ (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("move sets differ (-want +got):\n%s", diff)
		}
	}
}
