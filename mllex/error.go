package mllex

import (
	"errors"
	"fmt"

	"github.com/reusee/miniml/mltoken"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrIntOverflow    = errors.New("integer literal out of range")
)

type LexError struct {
	Err  error
	Pos  mltoken.Pos
	Char rune   // set for ErrUnexpectedChar
	Text string // set for ErrIntOverflow
}

func (e *LexError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnexpectedChar):
		return fmt.Sprintf("%s %q at offset %d", e.Err, e.Char, e.Pos)
	case e.Text != "":
		return fmt.Sprintf("%s: %s at offset %d", e.Err, e.Text, e.Pos)
	}
	return fmt.Sprintf("%s at offset %d", e.Err, e.Pos)
}

func (e *LexError) Unwrap() error {
	return e.Err
}
