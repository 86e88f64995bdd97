// Package parser reads PGN text into games.
//
// The Lexer turns input into tokens and the Parser replays each move
// through the rules engine, so a game is returned only when every move
// in it is legal.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	StringToken
	TagStart
	TagEnd
	IntegerToken
	Dot
	RAVStart
	RAVEnd
	NAGToken
	Star
	SymbolToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:     "EOF",
	StringToken:  "STRING",
	TagStart:     "TAG_START",
	TagEnd:       "TAG_END",
	IntegerToken: "INTEGER",
	Dot:          "DOT",
	RAVStart:     "RAV_START",
	RAVEnd:       "RAV_END",
	NAGToken:     "NAG",
	Star:         "STAR",
	SymbolToken:  "SYMBOL",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the string contents (unescaped), the NAG digits without
	// '$', or the symbol or integer as written.
	Text string

	// Line and column of the first character, both 1-based.
	Line   int
	Column int
}

// describe names a token for error messages.
func (t Token) describe() string {
	switch t.Type {
	case EOFToken:
		return "end of input"
	case StringToken:
		return "string \"" + t.Text + "\""
	case SymbolToken, IntegerToken:
		return t.Type.String() + " " + t.Text
	}
	return t.Type.String()
}
