package engine

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// ApplyMove validates req against the position and returns the position after
// it. The inputs are never modified; on rejection the returned error wraps one
// of the rejection sentinels in internal/errors.
//
// The checks run in a fixed order: bounds, source occupancy, side to move,
// movement pattern (castling and en passant included), promotion choice and
// finally king safety on a copy of the board.
func ApplyMove(board *chess.Board, ctx chess.Context, req chess.MoveRequest) (*chess.Board, chess.Context, error) {
	if !req.InBounds() {
		return nil, ctx, fmt.Errorf("%s: %w", req, errors.ErrOutOfBounds)
	}

	piece := board.Get(req.From)
	if !chess.IsOccupant(piece) {
		return nil, ctx, fmt.Errorf("%s: %w", req, errors.ErrNoPieceAtSource)
	}

	colour := chess.ExtractColour(piece)
	if colour != ctx.ToMove {
		return nil, ctx, fmt.Errorf("%s: %v to move: %w", req, ctx.ToMove, errors.ErrWrongTeam)
	}

	class, err := classifyMove(board, ctx, req, piece)
	if err != nil {
		return nil, ctx, err
	}

	if class == chess.PawnMoveWithPromotion {
		if err := validatePromotion(req); err != nil {
			return nil, ctx, err
		}
	}

	next := board.Copy()
	applyToBoard(next, req, piece, class)
	if IsInCheck(next, colour) {
		return nil, ctx, fmt.Errorf("%s: %w", req, errors.ErrSelfCheck)
	}

	return next, nextContext(board, ctx, req, piece, class), nil
}

// classifyMove checks the movement pattern of req and names its kind.
func classifyMove(board *chess.Board, ctx chess.Context, req chess.MoveRequest, piece chess.Piece) (chess.MoveClass, error) {
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.King:
		if isCastlingShape(req.From, req.To, colour) {
			kingside := req.To.File > req.From.File
			if err := validateCastling(board, ctx, colour, kingside); err != nil {
				return 0, err
			}
			if kingside {
				return chess.KingsideCastle, nil
			}
			return chess.QueensideCastle, nil
		}

	case chess.Pawn:
		if isEnPassantCapture(board, ctx, req.From, req.To, colour) {
			return chess.EnPassantPawnMove, nil
		}
		if isPawnDiagonalStep(req.From, req.To, colour) && board.IsEmpty(req.To) {
			return 0, fmt.Errorf("%s: %w", req, errors.ErrNoEnPassant)
		}
	}

	if !ValidatePieceMove(board, req.From, req.To) {
		return 0, fmt.Errorf("%s: %v cannot move there: %w", req, chess.ExtractPiece(piece), errors.ErrIllegalPieceMove)
	}

	switch {
	case isPromotion(piece, req.To):
		return chess.PawnMoveWithPromotion, nil
	case chess.ExtractPiece(piece) == chess.Pawn:
		return chess.PawnMove, nil
	default:
		return chess.PieceMove, nil
	}
}

// applyToBoard performs a validated move on board.
func applyToBoard(board *chess.Board, req chess.MoveRequest, piece chess.Piece, class chess.MoveClass) {
	colour := chess.ExtractColour(piece)

	switch class {
	case chess.KingsideCastle:
		applyCastle(board, colour, true)
		return
	case chess.QueensideCastle:
		applyCastle(board, colour, false)
		return
	case chess.EnPassantPawnMove:
		board.Set(enPassantVictim(req.From, req.To), chess.Empty)
	case chess.PawnMoveWithPromotion:
		piece = chess.MakeColouredPiece(colour, req.Promotion)
	}

	board.Set(req.From, chess.Empty)
	board.Set(req.To, piece)
}

// nextContext derives the context after a validated move. board is the
// position before the move.
func nextContext(board *chess.Board, ctx chess.Context, req chess.MoveRequest, piece chess.Piece, class chess.MoveClass) chess.Context {
	colour := chess.ExtractColour(piece)
	isPawn := chess.ExtractPiece(piece) == chess.Pawn
	capture := class == chess.EnPassantPawnMove || chess.IsOccupant(board.Get(req.To))

	next := ctx.Clone()

	if isPawn || capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	// The target lives for one ply only.
	next.EnPassant = nil
	if isPawn && isDoublePush(req.From, req.To) {
		ep := req.From.Offset(chess.ColourOffset(colour), 0)
		next.EnPassant = &ep
	}

	next.Castling = updateCastlingRights(next.Castling, req.From, req.To)

	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next
}
