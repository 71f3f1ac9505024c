package mlparse

import (
	"errors"
	"fmt"

	"github.com/reusee/miniml/mltoken"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrExpectedToken   = errors.New("expected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrTrailingInput   = errors.New("trailing input")
	ErrTooDeep         = errors.New("expression nested too deeply")
)

// ParseError reports the first failure of a parse. Pos is the offset of the
// offending token, or mltoken.EOFPos at end of input.
type ParseError struct {
	Err      error
	Pos      mltoken.Pos
	Got      mltoken.Token
	Expected mltoken.Token // set for ErrExpectedToken
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("at offset %d", e.Pos)
	if e.Pos == mltoken.EOFPos {
		where = "at end of input"
	}
	switch {
	case errors.Is(e.Err, ErrExpectedToken):
		return fmt.Sprintf("expected %s, got %s %s", describe(e.Expected), e.Got, where)
	case errors.Is(e.Err, ErrUnexpectedEOF):
		return fmt.Sprintf("%s %s", e.Err, where)
	}
	return fmt.Sprintf("%s %s %s", e.Err, e.Got, where)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every error raised at end of input match ErrUnexpectedEOF.
func (e *ParseError) Is(target error) bool {
	return target == ErrUnexpectedEOF && e.Got.Kind == mltoken.EOF
}

func describe(tok mltoken.Token) string {
	if tok.Kind == mltoken.Ident && tok.Text == "" {
		return "identifier"
	}
	return tok.String()
}

func unexpected(tok mltoken.PosToken) error {
	err := ErrUnexpectedToken
	if tok.Kind == mltoken.EOF {
		err = ErrUnexpectedEOF
	}
	return &ParseError{
		Err: err,
		Pos: tok.Pos,
		Got: tok.Token,
	}
}
