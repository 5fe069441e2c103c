package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds},
		{"ErrNoPieceAtSource", ErrNoPieceAtSource},
		{"ErrWrongTeam", ErrWrongTeam},
		{"ErrIllegalPieceMove", ErrIllegalPieceMove},
		{"ErrInvalidPromotion", ErrInvalidPromotion},
		{"ErrSelfCheck", ErrSelfCheck},
		{"ErrCastlingForfeited", ErrCastlingForfeited},
		{"ErrNoEnPassant", ErrNoEnPassant},
		{"ErrGameOver", ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("e2e5: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
			if !IsRejection(wrapped) {
				t.Errorf("IsRejection(%v) = false, want true", wrapped)
			}
		})
	}
}

// TestIsRejection_SetupErrors verifies setup failures are not move rejections
func TestIsRejection_SetupErrors(t *testing.T) {
	for _, err := range []error{ErrInvalidFEN, ErrInvalidPosition, ErrParseFailure, ErrInvalidConfig, nil} {
		if IsRejection(err) {
			t.Errorf("IsRejection(%v) = true, want false", err)
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:  ErrSelfCheck,
				Game: "games/fool.txt",
				Ply:  12,
				Move: "e1e2",
			},
			contains: []string{"games/fool.txt", "ply 12", "e1e2", "own king in check"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrWrongTeam,
			},
			contains: []string{"wrong team"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrCastlingForfeited,
		Ply:  24,
		Move: "O-O-O",
	}

	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrCastlingForfeited) {
		t.Error("errors.Is(wrapped, ErrCastlingForfeited) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		File:     "game.txt",
		Line:     100,
		Column:   15,
		Expected: "coordinate move",
		Got:      "\"Nf3\"",
	}

	msg := err.Error()
	for _, s := range []string{"game.txt:100:15", "expected coordinate move", "Nf3", "parse failure"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}

	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

// TestParseError_NoFile verifies line-only locations
func TestParseError_NoFile(t *testing.T) {
	err := &ParseError{Err: ErrInvalidFEN, Line: 3}
	if got := err.Error(); !strings.HasPrefix(got, "line 3") {
		t.Errorf("ParseError.Error() = %q, want prefix %q", got, "line 3")
	}
}

// TestWrap verifies the Wrap helpers
func TestWrap(t *testing.T) {
	wrapped := Wrapf(ErrInvalidFEN, "field %d", 2)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "field 2") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
