package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(rank, file)
			piece := board.Get(sq)
			if !chess.IsOccupant(piece) {
				continue
			}

			colour := chess.ExtractColour(piece)
			pieceType := chess.ExtractPiece(piece)

			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = sq.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = sq.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
