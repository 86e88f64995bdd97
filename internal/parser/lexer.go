package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// char classes
const (
	chError = iota
	chWhitespace
	chTagStart
	chTagEnd
	chQuote
	chCommentStart
	chLineComment
	chNAG
	chDot
	chRAVStart
	chRAVEnd
	chStar
	chSymbolStart
)

// Character classification table
var chTab [256]uint8

// symbolChars holds the characters that may continue a symbol.
var symbolChars [256]bool

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		chTab[c] = chWhitespace
	}
	chTab['['] = chTagStart
	chTab[']'] = chTagEnd
	chTab['"'] = chQuote
	chTab['{'] = chCommentStart
	chTab[';'] = chLineComment
	chTab['$'] = chNAG
	chTab['.'] = chDot
	chTab['('] = chRAVStart
	chTab[')'] = chRAVEnd
	chTab['*'] = chStar

	for c := 'a'; c <= 'z'; c++ {
		chTab[c] = chSymbolStart
		chTab[c-'a'+'A'] = chSymbolStart
	}
	for c := '0'; c <= '9'; c++ {
		chTab[c] = chSymbolStart
	}

	for c := range symbolChars {
		symbolChars[c] = chTab[c] == chSymbolStart
	}
	for _, c := range []byte("_+#=:-/!?") {
		symbolChars[c] = true
	}
}

// Lexer tokenizes PGN input one line at a time. Comments and escape
// lines produce no tokens.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() (bool, error) {
	if l.eof {
		return false, nil
	}
	line, err := l.reader.ReadString('\n')
	switch {
	case err == io.EOF:
		l.eof = true
		if line == "" {
			return false, nil
		}
	case err != nil:
		return false, err
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true, nil
}

// NextToken returns the next token. At the end of input it returns an
// EOFToken and no error, however often it is called.
func (l *Lexer) NextToken() (Token, error) {
	for {
		if l.pos >= len(l.line) {
			ok, err := l.readLine()
			if err != nil {
				return Token{}, err
			}
			if !ok {
				return Token{Type: EOFToken, Line: l.lineNum}, nil
			}
			// A '%' in the first column escapes the whole line.
			if strings.HasPrefix(l.line, "%") {
				l.pos = len(l.line)
				continue
			}
		}

		start := l.pos
		ch := l.line[l.pos]
		l.pos++
		tok := Token{Line: l.lineNum, Column: start + 1}

		switch chTab[ch] {
		case chWhitespace:
			continue
		case chLineComment:
			l.pos = len(l.line)
			continue
		case chCommentStart:
			if err := l.skipComment(tok); err != nil {
				return Token{}, err
			}
			continue
		case chTagStart:
			tok.Type = TagStart
		case chTagEnd:
			tok.Type = TagEnd
		case chDot:
			tok.Type = Dot
		case chRAVStart:
			tok.Type = RAVStart
		case chRAVEnd:
			tok.Type = RAVEnd
		case chStar:
			tok.Type = Star
			tok.Text = "*"
		case chQuote:
			return l.gatherString(tok)
		case chNAG:
			return l.gatherNAG(tok)
		case chSymbolStart:
			return l.gatherSymbol(tok, start), nil
		default:
			return Token{}, &errors.ParseError{
				Err:    errors.ErrParseFailure,
				Line:   tok.Line,
				Column: tok.Column,
				Got:    "character " + quoteByte(ch),
			}
		}
		return tok, nil
	}
}

// skipComment skips a brace comment, which may span lines.
func (l *Lexer) skipComment(open Token) error {
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			l.pos += end + 1
			return nil
		}
		ok, err := l.readLine()
		if err != nil {
			return err
		}
		if !ok {
			return &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Line:     open.Line,
				Column:   open.Column,
				Expected: "'}' to close comment",
			}
		}
	}
}

// gatherString gathers a quoted string. Backslash escapes the next
// character.
func (l *Lexer) gatherString(tok Token) (Token, error) {
	var sb strings.Builder
	for l.pos < len(l.line) {
		ch := l.line[l.pos]
		l.pos++
		switch ch {
		case '\\':
			if l.pos < len(l.line) {
				sb.WriteByte(l.line[l.pos])
				l.pos++
			}
		case '"':
			tok.Type = StringToken
			tok.Text = sb.String()
			return tok, nil
		case '\n', '\r':
		default:
			sb.WriteByte(ch)
		}
	}
	return Token{}, &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: "closing quote",
	}
}

// gatherNAG gathers the digits after '$'.
func (l *Lexer) gatherNAG(tok Token) (Token, error) {
	start := l.pos
	for l.pos < len(l.line) && isDigit(l.line[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return Token{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Line:     tok.Line,
			Column:   tok.Column,
			Expected: "digits after '$'",
		}
	}
	tok.Type = NAGToken
	tok.Text = l.line[start:l.pos]
	return tok, nil
}

// gatherSymbol gathers a symbol. A symbol made only of digits is an
// integer, as in the move number "12.".
func (l *Lexer) gatherSymbol(tok Token, start int) Token {
	for l.pos < len(l.line) && symbolChars[l.line[l.pos]] {
		l.pos++
	}
	tok.Text = l.line[start:l.pos]
	tok.Type = SymbolToken
	if strings.Trim(tok.Text, "0123456789") == "" {
		tok.Type = IntegerToken
	}
	return tok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func quoteByte(c byte) string {
	return fmt.Sprintf("%q", rune(c))
}
