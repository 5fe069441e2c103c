package worker

import (
	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/engine"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Replayer builds ProcessFuncs that replay move lists from a fixed start.
type Replayer struct {
	Board *chess.Board
	Ctx   chess.Context
	Rules config.RulesConfig

	// Trace records every accepted ply in the result.
	Trace bool
}

// NewReplayer creates a replayer starting from the standard initial position.
func NewReplayer(rules config.RulesConfig) *Replayer {
	return &Replayer{
		Board: chess.NewInitialBoard(),
		Ctx:   chess.NewContext(),
		Rules: rules,
	}
}

// Replay decodes and plays every move of the item on a fresh arbiter. It
// stops at the first move that fails to decode or is rejected.
func (r *Replayer) Replay(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Name: item.Name}
	if item.Moves != nil {
		result.Result = item.Moves.Result
	}

	// The arbiter copies the start position, so workers never share it.
	arbiter, err := engine.NewArbiterFromPosition(r.Board, r.Ctx, engine.WithRules(r.Rules))
	if err != nil {
		result.Err = errors.Wrap(err, item.Name)
		return result
	}

	if item.Moves != nil {
		for i, tok := range item.Moves.Moves {
			req, err := tok.Decode(arbiter.Context())
			if err == nil {
				_, err = arbiter.AttemptMove(req)
			}
			if err != nil {
				result.Err = &errors.MoveError{Err: err, Game: item.Name, Ply: i + 1, Move: tok.Text}
				break
			}
			if r.Trace {
				result.Plies = append(result.Plies, PlyRecord{Move: tok.Text, Status: arbiter.Status()})
			}
		}
	}

	result.Status = arbiter.Status()
	result.Board = arbiter.Board()
	result.Ctx = arbiter.Context()
	result.Ply = arbiter.Ply()
	return result
}
