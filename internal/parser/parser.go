package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Parser parses PGN input into games.
type Parser struct {
	// File names the input in errors; it may be empty.
	File string

	lexer   *Lexer
	peeked  *Token
	gameNum int
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// ReadPGN parses the first game in text. Text holding no game at all
// gives a new game at the initial position.
func ReadPGN(text string) (*game.Game, error) {
	g, err := NewParser(strings.NewReader(text)).ParseGame()
	if err == io.EOF {
		return game.New(), nil
	}
	return g, err
}

// ParseAllGames parses all games from the input, stopping at the first
// error.
func (p *Parser) ParseAllGames() ([]*game.Game, error) {
	var games []*game.Game
	for {
		g, err := p.ParseGame()
		if err == io.EOF {
			return games, nil
		}
		if err != nil {
			return games, err
		}
		games = append(games, g)
	}
}

// GameNumber returns the 1-based number of the game last parsed.
func (p *Parser) GameNumber() int {
	return p.gameNum
}

// ParseGame parses the next game. It returns io.EOF when the input holds
// no more games. On error no game is returned and the rest of the
// failed game is skipped, so the next call starts with the following
// game.
func (p *Parser) ParseGame() (*game.Game, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type == EOFToken {
		return nil, io.EOF
	}
	p.unread(tok)
	p.gameNum++

	g := game.New()
	if err := p.parseTags(g); err != nil {
		return nil, p.abandon(err, false)
	}
	if err := p.parseMoves(g); err != nil {
		return nil, p.abandon(err, true)
	}
	return g, nil
}

func (p *Parser) next() (Token, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, nil
	}
	return p.lexer.NextToken()
}

func (p *Parser) unread(tok Token) {
	p.peeked = &tok
}

// parseTags parses zero or more [SYMBOL "STRING"] pairs.
func (p *Parser) parseTags(g *game.Game) error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.Type != TagStart {
			p.unread(tok)
			return nil
		}

		name, err := p.expect(SymbolToken, "tag name")
		if err != nil {
			return err
		}
		value, err := p.expect(StringToken, "tag value")
		if err != nil {
			return err
		}
		if _, err := p.expect(TagEnd, "']'"); err != nil {
			return err
		}
		g.Tags.Set(name.Text, value.Text)
	}
}

// expect reads one token of the given type or fails with a malformed
// tag error.
func (p *Parser) expect(typ TokenType, what string) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Type != typ {
		return Token{}, &errors.ParseError{
			Err:      errors.ErrMalformedTag,
			File:     p.File,
			Line:     tok.Line,
			Column:   tok.Column,
			Expected: what,
			Got:      tok.describe(),
		}
	}
	return tok, nil
}

// parseMoves plays the movetext up to and including its termination
// marker, the end of input or the tag section of the next game.
func (p *Parser) parseMoves(g *game.Game) error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}

		switch tok.Type {
		case EOFToken, TagStart:
			p.unread(tok)
			return nil

		case IntegerToken, Dot:

		case Star:
			g.Declare(chess.Undetermined)
			return nil

		case SymbolToken:
			if result, ok := chess.ParseResult(tok.Text); ok {
				g.Declare(result)
				return nil
			}
			if err := g.PlaySAN(tok.Text); err != nil {
				return p.gameError(err, g.Len()+1, tok)
			}

		case NAGToken:
			nag, err := strconv.Atoi(tok.Text)
			if err != nil || g.Len() == 0 {
				return p.parseError(tok, "a move before the annotation")
			}
			if err := g.SetNAG(g.Len()-1, nag); err != nil {
				return p.gameError(err, g.Len(), tok)
			}

		case RAVStart:
			if err := p.skipVariation(tok); err != nil {
				return err
			}

		default:
			return p.parseError(tok, "a move")
		}
	}
}

// skipVariation consumes a recursive annotation variation, nested ones
// included.
func (p *Parser) skipVariation(open Token) error {
	for depth := 1; depth > 0; {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken:
			p.unread(tok)
			return &errors.ParseError{
				Err:      errors.ErrParseFailure,
				File:     p.File,
				Line:     open.Line,
				Column:   open.Column,
				Expected: "')' to close variation",
			}
		}
	}
	return nil
}

func (p *Parser) gameError(err error, ply int, tok Token) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  p.gameNum,
		PlyNum:   ply,
		MoveText: tok.Text,
		File:     p.File,
		Line:     tok.Line,
	}
}

func (p *Parser) parseError(tok Token, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.File,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      tok.describe(),
	}
}

// abandon skips the rest of a failed game and returns err. Skipping ends
// after a termination marker, at the end of input, or, once movetext
// has started, before the next tag section.
func (p *Parser) abandon(err error, inMoves bool) error {
	depth := 0
	for {
		tok, lexErr := p.next()
		if lexErr != nil {
			var perr *errors.ParseError
			if errors.As(lexErr, &perr) {
				continue
			}
			// The reader failed; nothing more can be read.
			p.unread(Token{Type: EOFToken})
			return err
		}
		switch tok.Type {
		case EOFToken:
			p.unread(tok)
			return err
		case RAVStart:
			depth++
		case RAVEnd:
			if depth > 0 {
				depth--
			}
		case Star:
			if depth == 0 {
				return err
			}
		case SymbolToken:
			if _, ok := chess.ParseResult(tok.Text); ok && depth == 0 {
				return err
			}
		case TagStart:
			if inMoves && depth == 0 {
				p.unread(tok)
				return err
			}
		}
	}
}
