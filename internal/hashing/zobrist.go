// Package hashing provides position fingerprints and the move history used for
// repetition detection.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// zobristSeed fixes the key tables so fingerprints are stable across runs.
const zobristSeed = 0x1BADB002

var (
	zobristPiece     [2][chess.NumPieceValues][chess.BoardSize * chess.BoardSize]uint64
	zobristCastling  [chess.AllCastling + 1]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristBlack     uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for colour := range zobristPiece {
		for piece := chess.Pawn; piece <= chess.King; piece++ {
			for sq := range zobristPiece[colour][piece] {
				zobristPiece[colour][piece][sq] = rng.Uint64()
			}
		}
	}
	// Entry 0 (no rights) stays zero.
	for rights := 1; rights < len(zobristCastling); rights++ {
		zobristCastling[rights] = rng.Uint64()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.Uint64()
	}
	zobristBlack = rng.Uint64()
}

// GenerateZobristHash computes the Zobrist hash of a position: the pieces,
// the side to move, the castling rights and a capturable en passant file.
func GenerateZobristHash(board *chess.Board, ctx chess.Context) uint64 {
	var hash uint64

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if !chess.IsOccupant(piece) {
				continue
			}
			colour := chess.ExtractColour(piece)
			kind := chess.ExtractPiece(piece)
			hash ^= zobristPiece[colour][kind][rank*chess.BoardSize+file]
		}
	}

	hash ^= zobristCastling[ctx.Castling&chess.AllCastling]

	if enPassantCapturable(board, ctx) {
		hash ^= zobristEnPassant[ctx.EnPassant.File]
	}

	if ctx.ToMove == chess.Black {
		hash ^= zobristBlack
	}

	return hash
}

// enPassantCapturable returns true if a pawn of the side to move stands next to
// the pawn that just made a double push. Only then does the target square
// distinguish the position.
func enPassantCapturable(board *chess.Board, ctx chess.Context) bool {
	if ctx.EnPassant == nil || !ctx.EnPassant.InBounds() {
		return false
	}
	pawn := chess.MakeColouredPiece(ctx.ToMove, chess.Pawn)
	from := ctx.EnPassant.Offset(-chess.ColourOffset(ctx.ToMove), 0)
	return board.Get(from.Offset(0, -1)) == pawn || board.Get(from.Offset(0, 1)) == pawn
}

// WeakHash is a fast, independent hash of the piece placement. It is kept next
// to the Zobrist hash to rule out false repetition matches on a Zobrist clash.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if !chess.IsOccupant(piece) {
				continue
			}
			sq := uint32(rank*chess.BoardSize + file + 1)
			hash += uint32(piece) * sq * sq
		}
	}
	return hash
}
