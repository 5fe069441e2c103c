package engine

import (
	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/hashing"
)

// GameState classifies a position after a move.
type GameState int

const (
	Normal GameState = iota
	Check
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByMoveLimit
	DrawByInsufficientMaterial
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawByRepetition:
		return "DrawByRepetition"
	case DrawByMoveLimit:
		return "DrawByMoveLimit"
	case DrawByInsufficientMaterial:
		return "DrawByInsufficientMaterial"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true if no further moves may be played.
func (s GameState) IsTerminal() bool {
	return s != Normal && s != Check
}

// IsDraw returns true for every drawn outcome.
func (s GameState) IsDraw() bool {
	switch s {
	case Stalemate, DrawByRepetition, DrawByMoveLimit, DrawByInsufficientMaterial:
		return true
	default:
		return false
	}
}

// Status is the state of a game together with the team it concerns.
// For Check and Checkmate, Team is the side whose king is attacked.
// For the other states it is the side to move.
type Status struct {
	State GameState
	Team  chess.Colour
}

// String returns e.g. "Check(White)", "Checkmate(Black)" or "Stalemate".
func (s Status) String() string {
	if s.State == Check || s.State == Checkmate {
		return s.State.String() + "(" + s.Team.String() + ")"
	}
	return s.State.String()
}

// IsCheckmate returns true if the side to move is in check with no legal move.
func IsCheckmate(board *chess.Board, ctx chess.Context) bool {
	return IsInCheck(board, ctx.ToMove) && !HasLegalMoves(board, ctx)
}

// IsStalemate returns true if the side to move is not in check but has no legal move.
func IsStalemate(board *chess.Board, ctx chess.Context) bool {
	return !IsInCheck(board, ctx.ToMove) && !HasLegalMoves(board, ctx)
}

// IsRepetition returns true if the position fp has occurred the configured
// number of times.
func IsRepetition(history *hashing.History, fp hashing.Fingerprint, rules config.RulesConfig) bool {
	return history != nil && uint(history.Count(fp)) >= rules.RepetitionCount
}

// IsMoveLimitDraw returns true if the half-move clock has reached the limit.
func IsMoveLimitDraw(ctx chess.Context, rules config.RulesConfig) bool {
	return ctx.HalfmoveClock >= rules.MoveLimit
}

// EvaluateState classifies the position. The first matching rule wins:
// checkmate, stalemate, repetition, move limit, insufficient material (when
// enabled), check, normal. history may be nil, which disables repetition.
func EvaluateState(board *chess.Board, ctx chess.Context, history *hashing.History, rules config.RulesConfig) Status {
	mover := ctx.ToMove
	inCheck := IsInCheck(board, mover)
	hasMoves := HasLegalMoves(board, ctx)

	state := Normal
	switch {
	case inCheck && !hasMoves:
		state = Checkmate
	case !hasMoves:
		state = Stalemate
	case IsRepetition(history, hashing.NewFingerprint(board, ctx), rules):
		state = DrawByRepetition
	case IsMoveLimitDraw(ctx, rules):
		state = DrawByMoveLimit
	case rules.InsufficientMaterial && HasInsufficientMaterial(board):
		state = DrawByInsufficientMaterial
	case inCheck:
		state = Check
	}
	return Status{State: state, Team: mover}
}
