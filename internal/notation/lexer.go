package notation

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Lexer splits a move list into tokens. Tag pairs ("[Event ...]"), brace
// comments, rest-of-line comments starting with ';' or '#', and numeric
// annotation glyphs ("$1") are skipped.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
	readErr error
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if err != io.EOF {
			l.readErr = err
			return false
		}
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isDelimiter reports whether c ends a word.
func isDelimiter(c byte) bool {
	return isSpace(c) || c == '{' || c == ';' || c == '[' || c == '$'
}

// NextToken returns the next token from the input. At the end of input it
// returns a token of type EOFToken.
func (l *Lexer) NextToken() (Token, error) {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				if l.readErr != nil {
					return Token{}, errors.Wrapf(l.readErr, "line %d", l.lineNum)
				}
				return Token{Type: EOFToken, Line: l.lineNum}, nil
			}
			continue
		}

		c := l.currentChar()
		switch {
		case isSpace(c):
			l.pos++
		case c == ';' || c == '#':
			l.pos = len(l.line)
		case c == '{':
			if err := l.skipComment(); err != nil {
				return Token{}, err
			}
		case c == '[':
			if err := l.skipTag(); err != nil {
				return Token{}, err
			}
		case c == '$':
			l.pos++
			for l.pos < len(l.line) && l.currentChar() >= '0' && l.currentChar() <= '9' {
				l.pos++
			}
		default:
			return l.readWord(), nil
		}
	}
}

// skipComment skips a brace comment, which may span lines.
func (l *Lexer) skipComment() error {
	startLine, startCol := l.lineNum, l.pos+1
	l.pos++
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			l.pos += end + 1
			return nil
		}
		if !l.readLine() {
			return &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Line:     startLine,
				Column:   startCol,
				Expected: "'}' closing comment",
				Got:      "end of input",
			}
		}
	}
}

// skipTag skips a tag pair, which must close on the same line.
func (l *Lexer) skipTag() error {
	end := strings.IndexByte(l.line[l.pos:], ']')
	if end < 0 {
		return &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Line:     l.lineNum,
			Column:   l.pos + 1,
			Expected: "']' closing tag pair",
			Got:      "end of line",
		}
	}
	l.pos += end + 1
	return nil
}

// readWord reads a whitespace-delimited word and classifies it. A move number
// glued to a move ("1.e4") yields the move.
func (l *Lexer) readWord() Token {
	start := l.pos
	for l.pos < len(l.line) && !isDelimiter(l.currentChar()) {
		l.pos++
	}
	word := l.line[start:l.pos]
	tok := Token{Text: word, Line: l.lineNum, Column: start + 1}

	if IsResult(word) {
		tok.Type = TerminatingResult
		return tok
	}

	digits := 0
	for digits < len(word) && word[digits] >= '0' && word[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(word) && word[digits] == '.' {
		dots := digits
		for dots < len(word) && word[dots] == '.' {
			dots++
		}
		if dots == len(word) {
			tok.Type = MoveNumber
			return tok
		}
		tok.Text = word[dots:]
		tok.Column += dots
	}

	tok.Type = MoveToken
	return tok
}
