package mlparse

import (
	"log/slog"

	"github.com/reusee/miniml/logs"
	"github.com/reusee/miniml/mlast"
	"github.com/reusee/miniml/mllex"
	"github.com/reusee/miniml/mltoken"
)

const DefaultMaxDepth = 1000

type Options struct {
	MaxDepth      int         // nesting levels; if zero, default to DefaultMaxDepth
	Logger        logs.Logger // if nil, logs are discarded
	AllowTrailing bool        // ParseSource only
}

type Parser struct {
	cursor   *Cursor
	logger   logs.Logger
	maxDepth int
	depth    int
}

func NewParser(cursor *Cursor, options Options) *Parser {
	p := &Parser{
		cursor:   cursor,
		logger:   options.Logger,
		maxDepth: options.MaxDepth,
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}

// ParseExpression parses one expression from cursor and leaves the cursor
// right after it. Trailing tokens are not checked.
func ParseExpression(cursor *Cursor, options Options) (mlast.Exp, error) {
	return NewParser(cursor, options).ParseExpression()
}

// ParseType parses one type from cursor and leaves the cursor right after it.
func ParseType(cursor *Cursor) (mlast.Type, error) {
	return NewParser(cursor, Options{}).ParseType()
}

// Parse parses one expression from the start of tokens.
func Parse(tokens []mltoken.PosToken, options Options) (mlast.Exp, error) {
	return ParseExpression(NewCursor(tokens), options)
}

// ParseSource lexes and parses source as a whole program. Unless
// options.AllowTrailing is set, tokens left after the expression are an error.
func ParseSource(source string, options Options) (mlast.Exp, error) {
	tokens, err := mllex.Lex(source)
	if err != nil {
		return nil, err
	}
	cursor := NewCursor(tokens)
	exp, err := ParseExpression(cursor, options)
	if err != nil {
		return nil, err
	}
	if !options.AllowTrailing && !cursor.AtEOF() {
		tok := cursor.Peek()
		return nil, &ParseError{
			Err: ErrTrailingInput,
			Pos: tok.Pos,
			Got: tok.Token,
		}
	}
	return exp, nil
}

func (p *Parser) ParseExpression() (mlast.Exp, error) {
	return p.parseExpr()
}

func (p *Parser) ParseType() (mlast.Type, error) {
	return p.parseType()
}

// enter counts one nesting level. Each atom, parenthesized group, prefix
// operator, keyword form, right operand of := and type level is a level.
// Flat chains of binary, postfix or application operators are not.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		tok := p.cursor.Peek()
		return &ParseError{
			Err: ErrTooDeep,
			Pos: tok.Pos,
			Got: tok.Token,
		}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) expectIdent() (mltoken.PosToken, error) {
	tok := p.cursor.Peek()
	if tok.Kind != mltoken.Ident {
		return tok, &ParseError{
			Err:      ErrExpectedToken,
			Pos:      tok.Pos,
			Got:      tok.Token,
			Expected: mltoken.Token{Kind: mltoken.Ident},
		}
	}
	return p.cursor.Advance(), nil
}

func (p *Parser) expect(kind mltoken.Kind) error {
	_, err := p.cursor.Expect(mltoken.Sym(kind))
	return err
}
