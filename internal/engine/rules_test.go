package engine

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/hashing"
	"github.com/lgbarn/chess-arbiter-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "k4b2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "k4b2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"standard starting position", "", false}, // empty fen means use initial board
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := chess.NewInitialBoard()
			if tt.fen != "" {
				board, _ = testutil.MustPosition(t, tt.fen)
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		want     string
		terminal bool
		draw     bool
	}{
		{Normal, "Normal", false, false},
		{Check, "Check", false, false},
		{Checkmate, "Checkmate", true, false},
		{Stalemate, "Stalemate", true, true},
		{DrawByRepetition, "DrawByRepetition", true, true},
		{DrawByMoveLimit, "DrawByMoveLimit", true, true},
		{DrawByInsufficientMaterial, "DrawByInsufficientMaterial", true, true},
		{GameState(99), "Unknown", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			testutil.AssertEqual(t, tt.state.String(), tt.want)
			testutil.AssertEqual(t, tt.state.IsTerminal(), tt.terminal)
			testutil.AssertEqual(t, tt.state.IsDraw(), tt.draw)
		})
	}
}

func TestStatus_String(t *testing.T) {
	testutil.AssertEqual(t, Status{State: Check, Team: chess.White}.String(), "Check(White)")
	testutil.AssertEqual(t, Status{State: Checkmate, Team: chess.Black}.String(), "Checkmate(Black)")
	testutil.AssertEqual(t, Status{State: DrawByMoveLimit, Team: chess.Black}.String(), "DrawByMoveLimit")
	testutil.AssertEqual(t, Status{}.String(), "Normal")
}

// TestEvaluateState_Order checks that earlier rules win when several hold.
func TestEvaluateState_Order(t *testing.T) {
	rules := *config.NewRulesConfig()
	rules.InsufficientMaterial = true

	tests := []struct {
		name    string
		fen     string
		repeats int
		want    GameState
	}{
		{
			name: "checkmate beats move limit",
			fen:  "R5k1/5ppp/8/8/8/8/8/6K1 b - - 120 90",
			want: Checkmate,
		},
		{
			name: "stalemate beats insufficient material",
			fen:  "k1N5/2K5/8/8/8/8/8/8 b - - 0 1",
			want: Stalemate,
		},
		{
			name:    "repetition beats move limit",
			fen:     "4k3/8/8/8/8/8/8/R3K3 w - - 100 60",
			repeats: 3,
			want:    DrawByRepetition,
		},
		{
			name: "move limit beats insufficient material",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 100 60",
			want: DrawByMoveLimit,
		},
		{
			name: "insufficient material beats check",
			fen:  "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1",
			want: DrawByInsufficientMaterial,
		},
		{
			name: "check",
			fen:  "4k3/8/8/8/8/3n4/8/R3K3 w - - 0 1",
			want: Check,
		},
		{
			name:    "two occurrences are not a repetition",
			fen:     "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			repeats: 2,
			want:    Normal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, ctx := testutil.MustPosition(t, tt.fen)
			history := hashing.NewHistory()
			for i := 0; i < tt.repeats; i++ {
				history.Append(hashing.NewFingerprint(board, ctx))
			}

			got := EvaluateState(board, ctx, history, rules)
			testutil.AssertEqual(t, got.State, tt.want)
			testutil.AssertEqual(t, got.Team, ctx.ToMove)
		})
	}
}

func TestEvaluateState_NilHistory(t *testing.T) {
	status := EvaluateState(chess.NewInitialBoard(), chess.NewContext(), nil, *config.NewRulesConfig())
	testutil.AssertEqual(t, status, Status{State: Normal, Team: chess.White})
}
