package chess

// MoveRequest is a proposed move in board coordinates.
type MoveRequest struct {
	// Source square.
	From Square

	// Destination square.
	To Square

	// The piece kind a pawn promotes to (Empty if none was chosen).
	// It is required when a pawn reaches the last rank and ignored otherwise.
	Promotion Piece
}

// NewMoveRequest creates a request without a promotion choice.
func NewMoveRequest(from, to Square) MoveRequest {
	return MoveRequest{From: from, To: to, Promotion: Empty}
}

// WithPromotion returns a copy of the request with the given promotion choice.
func (m MoveRequest) WithPromotion(kind Piece) MoveRequest {
	m.Promotion = kind
	return m
}

// InBounds returns true if both squares of the request are on the board.
func (m MoveRequest) InBounds() bool {
	return m.From.InBounds() && m.To.InBounds()
}

// String returns the request in coordinate notation (e.g. "e2e4", "e7e8q").
func (m MoveRequest) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion.IsPromotionChoice() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
