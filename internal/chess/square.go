package chess

// Square identifies a board cell by rank and file, each in [0,8) when on the board.
// Rank 0 is White's back rank and file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from rank and file indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// InBounds returns true if both coordinates are inside the board.
func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// String returns the algebraic name of the square (e.g. "e4"), or "??" if it is
// off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return "??"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts an algebraic square name such as "e4".
// The second return value is false if the name is malformed.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file := int(name[0]) - 'a'
	rank := int(name[1]) - '1'
	sq := Square{Rank: rank, File: file}
	if !sq.InBounds() {
		return Square{}, false
	}
	return sq, true
}

// MustSquare is like ParseSquare but panics on a malformed name.
// It is intended for fixed tables and tests.
func MustSquare(name string) Square {
	sq, ok := ParseSquare(name)
	if !ok {
		panic("chess: invalid square " + name)
	}
	return sq
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.Rank+s.File)%2 == 1
}
