package chess

// Board is an 8x8 grid of optional coloured pieces.
// It holds no turn, castling or en passant state; see Context for that.
type Board struct {
	// Squares is indexed [rank][file]. Empty marks an unoccupied cell.
	Squares [BoardSize][BoardSize]Piece
}

// NewEmptyBoard creates a board with every square empty.
func NewEmptyBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewEmptyBoard()
	b.SetupInitialPosition()
	return b
}

// NewKingsOnlyBoard creates a board holding only the two kings.
// It is used for endgame fixtures where pieces are added afterwards.
func NewKingsOnlyBoard(whiteKing, blackKing Square) *Board {
	b := NewEmptyBoard()
	b.Set(whiteKing, W(King))
	b.Set(blackKing, B(King))
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			b.Squares[rank][file] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = W(backRank[file])
		b.Squares[1][file] = W(Pawn)
		b.Squares[6][file] = B(Pawn)
		b.Squares[7][file] = B(backRank[file])
	}
}

// Get returns the piece at the given square, Empty if it is unoccupied,
// or Off if the square lies outside the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.InBounds() {
		return Off
	}
	return b.Squares[sq.Rank][sq.File]
}

// Set places a piece at the given square. Squares outside the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.InBounds() {
		b.Squares[sq.Rank][sq.File] = piece
	}
}

// IsEmpty returns true if the square is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the given colour's king.
// The second return value is false if there is no such king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file] == king {
				return Square{Rank: rank, File: file}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many copies of the coloured piece are on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file] == piece {
				n++
			}
		}
	}
	return n
}

// String renders the board with White at the bottom, using FEN piece letters
// and '.' for empty squares.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if !IsOccupant(p) {
				buf = append(buf, '.')
				continue
			}
			letter := ExtractPiece(p).Letter()
			if ExtractColour(p) == Black {
				letter += 'a' - 'A'
			}
			buf = append(buf, letter)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
