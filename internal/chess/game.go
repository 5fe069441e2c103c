package chess

// CastlingRights is a bit set of the castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the right for the given colour and wing.
func CastlingRight(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has returns true if every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field ("KQkq", "-", ...).
func (c CastlingRights) String() string {
	var buf []byte
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// Context holds the game state that cannot be recovered from the board alone.
type Context struct {
	// Who has the next move.
	ToMove Colour

	// Castling options not yet forfeited.
	Castling CastlingRights

	// Square a pawn may capture onto en passant, valid for exactly one ply
	// after a double pawn push. Nil when no such capture is possible.
	EnPassant *Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	MoveNumber uint
}

// NewContext returns the context of a game at the standard starting position.
func NewContext() Context {
	return Context{
		ToMove:     White,
		Castling:   AllCastling,
		MoveNumber: 1,
	}
}

// Clone returns a copy of the context that shares no memory with c.
func (c Context) Clone() Context {
	if c.EnPassant != nil {
		ep := *c.EnPassant
		c.EnPassant = &ep
	}
	return c
}

// IsEnPassantTarget returns true if sq is the current en passant target.
func (c Context) IsEnPassantTarget(sq Square) bool {
	return c.EnPassant != nil && *c.EnPassant == sq
}
