package engine

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/hashing"
)

// Arbiter owns one game: its board, context and position history. It judges
// proposed moves one at a time and reports the resulting state.
//
// An Arbiter is not safe for concurrent use. Parallel analysis should work on
// copies obtained from Board and Context.
type Arbiter struct {
	board   *chess.Board
	ctx     chess.Context
	history *hashing.History
	rules   config.RulesConfig
	status  Status
	ply     int

	startBoard *chess.Board
	startCtx   chess.Context
}

// Option configures an Arbiter.
type Option func(*Arbiter)

// WithRules sets the draw thresholds.
func WithRules(rules config.RulesConfig) Option {
	return func(a *Arbiter) {
		a.rules = rules
	}
}

// NewArbiter creates an arbiter for a game from the standard initial position.
func NewArbiter(opts ...Option) (*Arbiter, error) {
	return NewArbiterFromPosition(chess.NewInitialBoard(), chess.NewContext(), opts...)
}

// NewArbiterFromPosition creates an arbiter for a game starting from the
// given position. The position must hold exactly one king per side and the
// side not to move must not be in check. The arbiter keeps its own copies of
// board and ctx.
func NewArbiterFromPosition(board *chess.Board, ctx chess.Context, opts ...Option) (*Arbiter, error) {
	a := &Arbiter{
		rules: *config.NewRulesConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.rules.Validate(); err != nil {
		return nil, err
	}
	if err := validatePosition(board, ctx); err != nil {
		return nil, err
	}

	a.startBoard = board.Copy()
	a.startCtx = ctx.Clone()
	a.history = hashing.NewHistory()
	a.Reset()
	return a, nil
}

// validatePosition checks that play can start from the position.
func validatePosition(board *chess.Board, ctx chess.Context) error {
	if board == nil {
		return fmt.Errorf("no board: %w", errors.ErrInvalidPosition)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			return fmt.Errorf("%d %v kings: %w", n, colour, errors.ErrInvalidPosition)
		}
	}
	if IsInCheck(board, ctx.ToMove.Opposite()) {
		return fmt.Errorf("%v is in check with %v to move: %w", ctx.ToMove.Opposite(), ctx.ToMove, errors.ErrInvalidPosition)
	}
	return nil
}

// Reset returns the game to its starting position and clears the history.
func (a *Arbiter) Reset() {
	a.board = a.startBoard.Copy()
	a.ctx = a.startCtx.Clone()
	a.ply = 0
	a.history.Reset()
	a.history.Append(hashing.NewFingerprint(a.board, a.ctx))
	a.status = EvaluateState(a.board, a.ctx, a.history, a.rules)
}

// AttemptMove judges req against the current position. On success the move
// is committed and the new status is returned. On rejection the error wraps
// one of the rejection sentinels in internal/errors, the game is unchanged and
// the current status is returned.
func (a *Arbiter) AttemptMove(req chess.MoveRequest) (Status, error) {
	if !req.InBounds() {
		return a.status, fmt.Errorf("%s: %w", req, errors.ErrOutOfBounds)
	}
	if a.status.State.IsTerminal() {
		return a.status, fmt.Errorf("%s: %v: %w", req, a.status, errors.ErrGameOver)
	}

	board, ctx, err := ApplyMove(a.board, a.ctx, req)
	if err != nil {
		return a.status, err
	}

	a.board = board
	a.ctx = ctx
	a.ply++
	a.history.Append(hashing.NewFingerprint(board, ctx))
	a.status = EvaluateState(board, ctx, a.history, a.rules)
	return a.status, nil
}

// Replay resets the game and plays reqs in order, rebuilding the history.
// On the first rejection it stops and returns a *errors.MoveError giving the
// 1-based ply; the game is left after the last accepted move.
func (a *Arbiter) Replay(reqs []chess.MoveRequest) (Status, error) {
	a.Reset()
	for i, req := range reqs {
		if _, err := a.AttemptMove(req); err != nil {
			return a.status, &errors.MoveError{
				Err:  err,
				Ply:  i + 1,
				Move: req.String(),
			}
		}
	}
	return a.status, nil
}

// LegalMoves returns the moves AttemptMove would accept, or nil once the game
// is over.
func (a *Arbiter) LegalMoves() []chess.MoveRequest {
	if a.status.State.IsTerminal() {
		return nil
	}
	return LegalMoves(a.board, a.ctx)
}

// Status returns the state of the current position.
func (a *Arbiter) Status() Status {
	return a.status
}

// Board returns a copy of the current board.
func (a *Arbiter) Board() *chess.Board {
	return a.board.Copy()
}

// Context returns a copy of the current game context.
func (a *Arbiter) Context() chess.Context {
	return a.ctx.Clone()
}

// History returns a copy of the position history, starting position first.
func (a *Arbiter) History() *hashing.History {
	return a.history.Copy()
}

// Ply returns the number of moves accepted since the start.
func (a *Arbiter) Ply() int {
	return a.ply
}

// Rules returns the draw thresholds in use.
func (a *Arbiter) Rules() config.RulesConfig {
	return a.rules
}
