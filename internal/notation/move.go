// Package notation decodes move text into move requests for the arbiter.
//
// Two forms are understood: coordinate notation ("e2e4", "e7e8q", with an
// optional '-', 'x' or '=' as in "e2-e4" or "e7e8=Q") and castling ("O-O",
// "O-O-O", or the same with zeros). Trailing check and annotation marks are
// ignored. Decoding never judges legality: that is the arbiter's job.
package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

const expectedMove = "coordinate move or castling"

// promotionLetters maps a promotion suffix to a piece kind. King and pawn are
// accepted here so the arbiter can reject them as invalid promotion choices.
var promotionLetters = map[byte]chess.Piece{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
	'k': chess.King,
	'p': chess.Pawn,
}

// ParseMove decodes a single move. ctx supplies the side to move, which
// decides the rank of a castling move.
func ParseMove(text string, ctx chess.Context) (chess.MoveRequest, error) {
	req, perr := parseMove(text, ctx.ToMove)
	if perr != nil {
		return chess.MoveRequest{}, perr
	}
	return req, nil
}

// Decode is like ParseMove but reports failures at the token's position.
func (t Token) Decode(ctx chess.Context) (chess.MoveRequest, error) {
	req, perr := parseMove(t.Text, ctx.ToMove)
	if perr != nil {
		perr.Line = t.Line
		perr.Column = t.Column
		return chess.MoveRequest{}, perr
	}
	return req, nil
}

func parseMove(text string, toMove chess.Colour) (chess.MoveRequest, *errors.ParseError) {
	s := strings.TrimRight(text, "+#!?")
	if s == "" {
		return chess.MoveRequest{}, parseFailure(text)
	}
	if req, ok := parseCastling(s, toMove); ok {
		return req, nil
	}
	return parseCoordinates(strings.ToLower(s), text)
}

// parseCastling recognises O-O and O-O-O and returns the king's move.
func parseCastling(s string, toMove chess.Colour) (chess.MoveRequest, bool) {
	s = strings.NewReplacer("0", "O", "o", "O").Replace(s)

	var file int
	switch s {
	case "O-O":
		file = 6
	case "O-O-O":
		file = 2
	default:
		return chess.MoveRequest{}, false
	}
	rank := chess.HomeRank(toMove)
	return chess.NewMoveRequest(chess.Sq(rank, 4), chess.Sq(rank, file)), true
}

func parseCoordinates(s, text string) (chess.MoveRequest, *errors.ParseError) {
	if len(s) < 4 {
		return chess.MoveRequest{}, parseFailure(text)
	}
	from, ok := chess.ParseSquare(s[:2])
	if !ok {
		return chess.MoveRequest{}, parseFailure(text)
	}

	rest := s[2:]
	if rest[0] == '-' || rest[0] == 'x' {
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return chess.MoveRequest{}, parseFailure(text)
	}
	to, ok := chess.ParseSquare(rest[:2])
	if !ok {
		return chess.MoveRequest{}, parseFailure(text)
	}

	req := chess.NewMoveRequest(from, to)
	rest = strings.TrimPrefix(rest[2:], "=")
	switch len(rest) {
	case 0:
		return req, nil
	case 1:
		kind, ok := promotionLetters[rest[0]]
		if !ok {
			return chess.MoveRequest{}, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Expected: "promotion piece",
				Got:      strconv.Quote(text),
			}
		}
		return req.WithPromotion(kind), nil
	default:
		return chess.MoveRequest{}, parseFailure(text)
	}
}

func parseFailure(text string) *errors.ParseError {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Expected: expectedMove,
		Got:      strconv.Quote(text),
	}
}
