// Package fen converts positions to and from Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// PieceLetter returns the FEN letter for a coloured piece: uppercase for
// White, lowercase for Black.
func PieceLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// Parse decodes a FEN string into a board and its game context.
// Only the piece placement field is mandatory; missing trailing fields take
// the values of a fresh game (White to move, no castling, no en passant,
// clocks 0 and 1).
func Parse(s string) (*chess.Board, chess.Context, error) {
	parts := strings.Fields(s)
	if len(parts) < 1 {
		return nil, chess.Context{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, chess.Context{}, fmt.Errorf("%d fields: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewEmptyBoard()
	ctx := chess.Context{ToMove: chess.White, MoveNumber: 1}

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.Context{}, err
	}
	if err := parseSideToMove(&ctx, parts); err != nil {
		return nil, chess.Context{}, err
	}
	if err := parseCastlingRights(&ctx, parts); err != nil {
		return nil, chess.Context{}, err
	}
	if err := parseEnPassant(&ctx, parts); err != nil {
		return nil, chess.Context{}, err
	}
	if err := parseClocks(&ctx, parts); err != nil {
		return nil, chess.Context{}, err
	}

	return board, ctx, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("rank %d too long: %w", rank+1, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Sq(rank, file), chess.MakeColouredPiece(colour, piece))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(ctx *chess.Context, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		ctx.ToMove = chess.White
	case "b":
		ctx.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(ctx *chess.Context, parts []string) error {
	ctx.Castling = chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			ctx.Castling |= chess.WhiteKingside
		case 'Q':
			ctx.Castling |= chess.WhiteQueenside
		case 'k':
			ctx.Castling |= chess.BlackKingside
		case 'q':
			ctx.Castling |= chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling flag: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(ctx *chess.Context, parts []string) error {
	ctx.EnPassant = nil
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	// The target lies behind a pawn that has just moved two squares.
	if sq.Rank != 2 && sq.Rank != 5 {
		return fmt.Errorf("en passant square on rank %d: %w", sq.Rank+1, errors.ErrInvalidFEN)
	}
	ctx.EnPassant = &sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(ctx *chess.Context, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		ctx.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		ctx.MoveNumber = uint(n)
	}
	return nil
}

// Encode converts a board and its context to a FEN string.
func Encode(board *chess.Board, ctx chess.Context) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if ctx.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(ctx.Castling.String())
	sb.WriteByte(' ')
	if ctx.EnPassant != nil {
		sb.WriteString(ctx.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", ctx.HalfmoveClock, ctx.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if !chess.IsOccupant(piece) {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
