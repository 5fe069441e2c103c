package config

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Standard draw thresholds.
const (
	// DefaultMoveLimit is fifty full moves without a pawn move or capture, in half-moves.
	DefaultMoveLimit = 100

	// DefaultRepetitionCount is the number of occurrences of a position that draws.
	DefaultRepetitionCount = 3
)

// RulesConfig holds the thresholds the arbiter uses for draw detection.
type RulesConfig struct {
	// MoveLimit is the half-move clock value that draws the game.
	// 150 gives the seventy-five move rule.
	MoveLimit uint

	// RepetitionCount is how many times a position must occur to draw.
	// 5 gives the fivefold repetition rule.
	RepetitionCount uint

	// InsufficientMaterial draws the game when neither side can mate.
	InsufficientMaterial bool
}

// NewRulesConfig creates a RulesConfig with the standard thresholds.
// Insufficient material detection is off by default.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		MoveLimit:       DefaultMoveLimit,
		RepetitionCount: DefaultRepetitionCount,
	}
}

// Validate checks that the rules configuration is usable.
func (r *RulesConfig) Validate() error {
	if r.MoveLimit == 0 {
		return fmt.Errorf("move limit must be positive: %w", errors.ErrInvalidConfig)
	}
	if r.RepetitionCount < 2 {
		return fmt.Errorf("repetition count (%d) must be at least 2: %w",
			r.RepetitionCount, errors.ErrInvalidConfig)
	}
	return nil
}
