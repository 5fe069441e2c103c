package hashing

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// Fingerprint identifies a position for repetition detection.
type Fingerprint struct {
	// Hash is the Zobrist hash of board, side to move, castling rights and
	// en passant target.
	Hash uint64
	// Weak is a secondary hash of the piece placement.
	Weak uint32
}

// NewFingerprint computes the fingerprint of a position.
func NewFingerprint(board *chess.Board, ctx chess.Context) Fingerprint {
	return Fingerprint{
		Hash: GenerateZobristHash(board, ctx),
		Weak: WeakHash(board),
	}
}

// History is the append-only sequence of position fingerprints of one game.
// It is owned by a single arbiter and is not safe for concurrent use.
type History struct {
	entries []Fingerprint
	counts  map[Fingerprint]int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		counts: make(map[Fingerprint]int),
	}
}

// Append records a position and returns how many times it has now occurred.
func (h *History) Append(fp Fingerprint) int {
	h.entries = append(h.entries, fp)
	h.counts[fp]++
	return h.counts[fp]
}

// Count returns how many times the position has occurred.
func (h *History) Count(fp Fingerprint) int {
	return h.counts[fp]
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recently recorded position.
func (h *History) Last() (Fingerprint, bool) {
	if len(h.entries) == 0 {
		return Fingerprint{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// MaxCount returns the highest occurrence count of any recorded position.
func (h *History) MaxCount() int {
	max := 0
	for _, n := range h.counts {
		if n > max {
			max = n
		}
	}
	return max
}

// Entries returns a copy of the recorded fingerprints in order.
func (h *History) Entries() []Fingerprint {
	out := make([]Fingerprint, len(h.entries))
	copy(out, h.entries)
	return out
}

// Copy returns an independent copy of the history.
func (h *History) Copy() *History {
	c := &History{
		entries: h.Entries(),
		counts:  make(map[Fingerprint]int, len(h.counts)),
	}
	for fp, n := range h.counts {
		c.counts[fp] = n
	}
	return c
}

// Reset clears the history for a new game.
func (h *History) Reset() {
	h.entries = nil
	h.counts = make(map[Fingerprint]int)
}
