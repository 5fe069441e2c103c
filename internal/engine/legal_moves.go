package engine

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// LegalMoves returns every legal move for the side to move, in board order.
// Promotions appear once per promotion choice.
func LegalMoves(board *chess.Board, ctx chess.Context) []chess.MoveRequest {
	var moves []chess.MoveRequest
	forEachLegalMove(board, ctx, func(req chess.MoveRequest, _ *chess.Board, _ chess.Context) bool {
		moves = append(moves, req)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board, ctx chess.Context) bool {
	found := false
	forEachLegalMove(board, ctx, func(chess.MoveRequest, *chess.Board, chess.Context) bool {
		found = true
		return false
	})
	return found
}

// Perft counts the leaf positions of the legal move tree to the given depth.
func Perft(board *chess.Board, ctx chess.Context, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	forEachLegalMove(board, ctx, func(_ chess.MoveRequest, next *chess.Board, nextCtx chess.Context) bool {
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(next, nextCtx, depth-1)
		}
		return true
	})
	return nodes
}

// forEachLegalMove runs fn for each legal move with the resulting position
// until fn returns false. Candidates are checked by ApplyMove, the same path
// the arbiter uses.
func forEachLegalMove(board *chess.Board, ctx chess.Context, fn func(chess.MoveRequest, *chess.Board, chess.Context) bool) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(rank, file)
			piece := board.Get(from)
			if !chess.IsOccupant(piece) || chess.ExtractColour(piece) != ctx.ToMove {
				continue
			}
			for _, req := range candidateMoves(board, from, piece) {
				next, nextCtx, err := ApplyMove(board, ctx, req)
				if err != nil {
					continue
				}
				if !fn(req, next, nextCtx) {
					return
				}
			}
		}
	}
}

// candidateMoves lists the destinations the piece on from might reach,
// bounded to the board. They still need full validation.
func candidateMoves(board *chess.Board, from chess.Square, piece chess.Piece) []chess.MoveRequest {
	colour := chess.ExtractColour(piece)
	var targets []chess.Square

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		dir := chess.ColourOffset(colour)
		targets = append(targets,
			from.Offset(dir, 0), from.Offset(2*dir, 0),
			from.Offset(dir, -1), from.Offset(dir, 1))
	case chess.Knight:
		for _, o := range knightOffsets {
			targets = append(targets, from.Offset(o[0], o[1]))
		}
	case chess.King:
		for _, o := range kingOffsets {
			targets = append(targets, from.Offset(o[0], o[1]))
		}
		targets = append(targets, from.Offset(0, -2), from.Offset(0, 2))
	case chess.Bishop:
		targets = appendRays(targets, board, from, diagonalDirs[:])
	case chess.Rook:
		targets = appendRays(targets, board, from, straightDirs[:])
	case chess.Queen:
		targets = appendRays(targets, board, from, diagonalDirs[:])
		targets = appendRays(targets, board, from, straightDirs[:])
	}

	moves := make([]chess.MoveRequest, 0, len(targets))
	for _, to := range targets {
		if OutOfBoard(to) {
			continue
		}
		req := chess.NewMoveRequest(from, to)
		if isPromotion(piece, to) {
			for _, kind := range promotionChoices {
				moves = append(moves, req.WithPromotion(kind))
			}
			continue
		}
		moves = append(moves, req)
	}
	return moves
}

// appendRays adds the squares along each direction up to and including the
// first occupied one.
func appendRays(targets []chess.Square, board *chess.Board, from chess.Square, dirs [][2]int) []chess.Square {
	for _, dir := range dirs {
		for cur := from.Offset(dir[0], dir[1]); cur.InBounds(); cur = cur.Offset(dir[0], dir[1]) {
			targets = append(targets, cur)
			if !board.IsEmpty(cur) {
				break
			}
		}
	}
	return targets
}
