package mlparse

import "github.com/reusee/miniml/mltoken"

var eof = mltoken.PosToken{
	Token: mltoken.Sym(mltoken.EOF),
	Pos:   mltoken.EOFPos,
}

// Cursor reads a token sequence front to back. Its read position is the
// only state a parse mutates.
type Cursor struct {
	tokens []mltoken.PosToken
	index  int
}

func NewCursor(tokens []mltoken.PosToken) *Cursor {
	return &Cursor{
		tokens: tokens,
	}
}

func (c *Cursor) Peek() mltoken.PosToken {
	if c.index >= len(c.tokens) {
		return eof
	}
	return c.tokens[c.index]
}

// PeekAt returns the token n places after the next unread one without
// moving. PeekAt(0) is Peek.
func (c *Cursor) PeekAt(n int) mltoken.PosToken {
	if n < 0 || c.index+n >= len(c.tokens) {
		return eof
	}
	return c.tokens[c.index+n]
}

// Advance returns the current token and moves past it. At end of input it
// keeps returning the EOF token.
func (c *Cursor) Advance() mltoken.PosToken {
	tok := c.Peek()
	if c.index < len(c.tokens) {
		c.index++
	}
	return tok
}

func (c *Cursor) ConsumeIf(expected mltoken.Token) bool {
	if c.Peek().Token != expected {
		return false
	}
	c.Advance()
	return true
}

func (c *Cursor) Expect(expected mltoken.Token) (mltoken.PosToken, error) {
	tok := c.Peek()
	if tok.Token != expected {
		return tok, &ParseError{
			Err:      ErrExpectedToken,
			Pos:      tok.Pos,
			Got:      tok.Token,
			Expected: expected,
		}
	}
	return c.Advance(), nil
}

// Pos returns the offset of the next unread token, or mltoken.EOFPos.
func (c *Cursor) Pos() mltoken.Pos {
	return c.Peek().Pos
}

func (c *Cursor) AtEOF() bool {
	return c.index >= len(c.tokens)
}

// Tx is a pending read-position snapshot.
type Tx struct {
	cursor *Cursor
	mark   int
	done   bool
}

func (c *Cursor) Begin() *Tx {
	return &Tx{
		cursor: c,
		mark:   c.index,
	}
}

// Consumed reports how many tokens were read since Begin.
func (t *Tx) Consumed() int {
	return t.cursor.index - t.mark
}

func (t *Tx) Commit() {
	t.done = true
}

func (t *Tx) Rollback() {
	if t.done {
		return
	}
	t.cursor.index = t.mark
	t.done = true
}

// TryParse runs f and keeps its result on success. A failure that did not get
// past the leading token of the attempt is rolled back and reported as no
// match. A failure further in means the production had committed, and its
// error is returned as is.
func TryParse[T any](c *Cursor, f func(*Cursor) (T, error)) (ret T, ok bool, err error) {
	tx := c.Begin()
	ret, err = f(c)
	if err == nil {
		tx.Commit()
		return ret, true, nil
	}
	if tx.Consumed() > 1 {
		tx.Commit()
		var zero T
		return zero, false, err
	}
	tx.Rollback()
	var zero T
	return zero, false, nil
}
