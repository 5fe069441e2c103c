package notation

// TokenType represents the type of a lexical token in a move list.
type TokenType int

const (
	EOFToken TokenType = iota
	MoveToken
	MoveNumber
	TerminatingResult
)

var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	MoveToken:         "MOVE",
	MoveNumber:        "MOVE_NUMBER",
	TerminatingResult: "TERMINATING_RESULT",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is a lexical token with its 1-based position in the input.
type Token struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// results lists the game termination markers.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// IsResult returns true if text is a game termination marker.
func IsResult(text string) bool {
	return results[text]
}
