package notation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/testutil"
)

func TestParseMoveList(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMoves  []string
		wantResult string
	}{
		{
			name:      "bare moves",
			input:     "e2e4 e7e5 g1f3",
			wantMoves: []string{"e2e4", "e7e5", "g1f3"},
		},
		{
			name:       "numbered with result",
			input:      "1. f2f3 e7e5 2. g2g4 d8h4# 0-1\n",
			wantMoves:  []string{"f2f3", "e7e5", "g2g4", "d8h4#"},
			wantResult: "0-1",
		},
		{
			name:      "black move number",
			input:     "12... e7e5 13. O-O",
			wantMoves: []string{"e7e5", "O-O"},
		},
		{
			name:      "move number glued to move",
			input:     "1.e2e4 1...e7e5 2.g1f3",
			wantMoves: []string{"e2e4", "e7e5", "g1f3"},
		},
		{
			name: "comments and tags",
			input: "[Event \"Casual\"]\n" +
				"# saved from the club\n" +
				"1. e2e4 {best by test} e7e5 ; open game\n" +
				"2. g1f3 {a comment\nover two lines} b8c6 $1 *\n",
			wantMoves:  []string{"e2e4", "e7e5", "g1f3", "b8c6"},
			wantResult: "*",
		},
		{
			name:       "draw marker",
			input:      "e2e4 e7e5 1/2-1/2",
			wantMoves:  []string{"e2e4", "e7e5"},
			wantResult: "1/2-1/2",
		},
		{
			name:       "castling zeros are moves not results",
			input:      "0-0 0-0-0 1-0",
			wantMoves:  []string{"0-0", "0-0-0"},
			wantResult: "1-0",
		},
		{
			name:      "empty",
			input:     "",
			wantMoves: []string{},
		},
		{
			name:      "no trailing newline",
			input:     "e2e4",
			wantMoves: []string{"e2e4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := ParseMoveList(strings.NewReader(tt.input))
			testutil.AssertNoError(t, err)
			if diff := cmp.Diff(tt.wantMoves, list.Texts()); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
			testutil.AssertEqual(t, list.Result, tt.wantResult)
		})
	}
}

func TestParseMoveList_Positions(t *testing.T) {
	list, err := ParseMoveList(strings.NewReader("1. e2e4 e7e5\n2.g1f3"))
	testutil.AssertNoError(t, err)

	want := []Token{
		{Type: MoveToken, Text: "e2e4", Line: 1, Column: 4},
		{Type: MoveToken, Text: "e7e5", Line: 1, Column: 9},
		{Type: MoveToken, Text: "g1f3", Line: 2, Column: 3},
	}
	if diff := cmp.Diff(want, list.Moves); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMoveList_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLoc string
	}{
		{"move after result", "e2e4 1-0 e7e5", "line 1:10"},
		{"two results", "e2e4 1-0\n0-1", "line 2:1"},
		{"unterminated comment", "e2e4 {never\nclosed", "line 1:6"},
		{"unterminated tag", "[Event \"x\"\ne2e4", "line 1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMoveList(strings.NewReader(tt.input))
			testutil.AssertErrorIs(t, err, chesserrors.ErrParseFailure)
			testutil.AssertContains(t, err.Error(), tt.wantLoc)
		})
	}
}

func TestLexer_TokenTypes(t *testing.T) {
	lexer := NewLexer(strings.NewReader("3. e2e4 3... 1-0"))
	var got []TokenType
	for {
		tok, err := lexer.NextToken()
		testutil.AssertNoError(t, err)
		got = append(got, tok.Type)
		if tok.Type == EOFToken {
			break
		}
	}

	want := []TokenType{MoveNumber, MoveToken, MoveNumber, TerminatingResult, EOFToken}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
	testutil.AssertEqual(t, TerminatingResult.String(), "TERMINATING_RESULT")
	testutil.AssertEqual(t, TokenType(42).String(), "UNKNOWN")
}
