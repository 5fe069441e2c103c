package notation

import (
	"io"
	"strconv"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// MoveList is a saved game: its move tokens in order and the result marker,
// if one was present.
type MoveList struct {
	Moves  []Token
	Result string
}

// Texts returns the move texts in order.
func (m *MoveList) Texts() []string {
	out := make([]string, len(m.Moves))
	for i, tok := range m.Moves {
		out[i] = tok.Text
	}
	return out
}

// ParseMoveList reads a single game. Move numbers ("12." and "12..."),
// comments and tag pairs are skipped. A result marker ("1-0", "0-1",
// "1/2-1/2" or "*") ends the game; any move after it is an error.
func ParseMoveList(r io.Reader) (*MoveList, error) {
	lexer := NewLexer(r)
	list := &MoveList{}

	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case EOFToken:
			return list, nil
		case MoveNumber:
			continue
		case TerminatingResult:
			if list.Result != "" {
				return nil, unexpectedAfterResult(tok)
			}
			list.Result = tok.Text
		case MoveToken:
			if list.Result != "" {
				return nil, unexpectedAfterResult(tok)
			}
			list.Moves = append(list.Moves, tok)
		}
	}
}

func unexpectedAfterResult(tok Token) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: "end of game after result",
		Got:      strconv.Quote(tok.Text),
	}
}
