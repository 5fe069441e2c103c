// Package errors provides sentinel errors and error types for the chess arbiter.
// Every move rejection wraps one of the sentinels below so callers can inspect
// the reason with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Move rejection reasons. A rejected move leaves the game unchanged.
var (
	// ErrOutOfBounds indicates a request naming a square outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrNoPieceAtSource indicates there is no piece on the source square.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongTeam indicates the piece on the source square is not the side to move.
	ErrWrongTeam = errors.New("piece belongs to the wrong team")

	// ErrIllegalPieceMove indicates the piece cannot move that way.
	ErrIllegalPieceMove = errors.New("illegal piece move")

	// ErrInvalidPromotion indicates a missing or invalid promotion choice.
	ErrInvalidPromotion = errors.New("invalid promotion choice")

	// ErrSelfCheck indicates the move would leave the mover's king attacked.
	ErrSelfCheck = errors.New("move leaves own king in check")

	// ErrCastlingForfeited indicates castling rights are lost or the king's path is attacked.
	ErrCastlingForfeited = errors.New("castling not available")

	// ErrNoEnPassant indicates a pawn capture onto an empty square with no en passant target.
	ErrNoEnPassant = errors.New("no en passant capture available")

	// ErrGameOver indicates the game has already finished.
	ErrGameOver = errors.New("game is over")
)

// Setup and input failures.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPosition indicates a position that cannot be played from,
	// such as one without exactly one king per side.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrParseFailure indicates move text that could not be decoded.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with replay context: the ply at which it happened
// and the move that was refused. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying rejection
	Game string // Name of the game or source file (if known)
	Ply  int    // 1-based ply number (0 if not applicable)
	Move string // The move text or coordinates that were refused
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Game != "" {
		parts = append(parts, e.Game)
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a decoding error with file location context.
// It's used for FEN strings and move-list files.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if e.Line > 0 {
			if loc != "" {
				loc += ":"
			} else {
				loc = "line "
			}
			loc += fmt.Sprintf("%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsRejection reports whether err is one of the move rejection reasons.
func IsRejection(err error) bool {
	for _, sentinel := range rejections {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

var rejections = []error{
	ErrOutOfBounds,
	ErrNoPieceAtSource,
	ErrWrongTeam,
	ErrIllegalPieceMove,
	ErrInvalidPromotion,
	ErrSelfCheck,
	ErrCastlingForfeited,
	ErrNoEnPassant,
	ErrGameOver,
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
