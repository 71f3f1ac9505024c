package mllex

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/reusee/miniml/mltoken"
)

type scanner struct {
	src     string
	pos     int
	prevPos int
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *scanner) next() (byte, bool) {
	c, ok := s.peek()
	if ok {
		s.prevPos = s.pos
		s.pos++
	}
	return c, ok
}

// unread steps back over the last byte returned by next. Only one step is kept.
func (s *scanner) unread() {
	s.pos = s.prevPos
}

func (s *scanner) consume(c byte) bool {
	if got, ok := s.peek(); ok && got == c {
		s.next()
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// Lex converts source into tokens. It either returns every token of the
// input or an error; tokens are never returned alongside an error.
func Lex(source string) ([]mltoken.PosToken, error) {
	s := &scanner{src: source}
	var tokens []mltoken.PosToken
	for {
		start := s.pos
		c, ok := s.next()
		if !ok {
			break
		}
		if isSpace(c) {
			continue
		}

		var kind mltoken.Kind
		switch c {
		case '!':
			kind = mltoken.Bang
		case '&':
			if !s.consume('&') {
				return nil, unexpected(source, start)
			}
			kind = mltoken.And
		case '(':
			kind = mltoken.LParen
			if s.consume(')') {
				kind = mltoken.Unit
			}
		case ')':
			kind = mltoken.RParen
		case '*':
			kind = mltoken.Mult
		case '+':
			kind = mltoken.Plus
		case ',':
			kind = mltoken.Comma
		case '/':
			kind = mltoken.Div
			if s.consume('=') {
				kind = mltoken.Neq
			}
		case ':':
			kind = mltoken.Colon
			if s.consume('=') {
				kind = mltoken.Assign
			}
		case '<':
			kind = mltoken.Lt
			if s.consume('=') {
				kind = mltoken.Le
			}
		case '=':
			kind = mltoken.Eq
			if s.consume('=') {
				kind = mltoken.Eqeq
			}
		case '>':
			kind = mltoken.Gt
			if s.consume('=') {
				kind = mltoken.Ge
			}
		case '|':
			kind = mltoken.Bar
			if s.consume('|') {
				kind = mltoken.Or
			}
		case '~':
			kind = mltoken.Not
		case '-':
			if s.consume('>') {
				kind = mltoken.Arrow
				break
			}
			if d, ok := s.peek(); ok && isDigit(d) {
				s.unread()
				tok, err := s.literal()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
				continue
			}
			kind = mltoken.Minus
		default:
			switch {
			case isIdentStart(c):
				s.unread()
				tokens = append(tokens, s.word())
				continue
			case isDigit(c):
				s.unread()
				tok, err := s.literal()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
				continue
			}
			return nil, unexpected(source, start)
		}

		tokens = append(tokens, mltoken.PosToken{
			Token: mltoken.Sym(kind),
			Pos:   mltoken.Pos(start),
		})
	}
	return tokens, nil
}

func (s *scanner) word() mltoken.PosToken {
	start := s.pos
	for {
		c, ok := s.next()
		if !ok {
			break
		}
		if !isIdentPart(c) {
			s.unread()
			break
		}
	}
	text := s.src[start:s.pos]
	tok := mltoken.Token{Kind: mltoken.Lookup(text)}
	if tok.Kind == mltoken.Ident {
		tok.Text = text
	}
	return mltoken.PosToken{
		Token: tok,
		Pos:   mltoken.Pos(start),
	}
}

func (s *scanner) literal() (mltoken.PosToken, error) {
	start := s.pos
	s.consume('-')
	for {
		c, ok := s.next()
		if !ok {
			break
		}
		if !isDigit(c) {
			s.unread()
			break
		}
	}
	text := s.src[start:s.pos]
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return mltoken.PosToken{}, &LexError{
				Err:  ErrIntOverflow,
				Pos:  mltoken.Pos(start),
				Text: text,
			}
		}
		return mltoken.PosToken{}, &LexError{
			Err: err,
			Pos: mltoken.Pos(start),
		}
	}
	return mltoken.PosToken{
		Token: mltoken.Lit(n),
		Pos:   mltoken.Pos(start),
	}, nil
}

func unexpected(source string, pos int) error {
	r, _ := utf8.DecodeRuneInString(source[pos:])
	return &LexError{
		Err:  ErrUnexpectedChar,
		Pos:  mltoken.Pos(pos),
		Char: r,
	}
}
