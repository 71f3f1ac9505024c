package mltoken

import (
	"fmt"
	"strconv"
)

// Pos is a byte offset into the source text.
type Pos int

// EOFPos is the position reported for the end of input.
const EOFPos Pos = -1

type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident
	Literal

	// keywords
	Let
	Rec
	In
	Fun
	Ref
	If
	Then
	Else
	Fst
	Snd
	True
	False
	Case
	Of
	Inl
	Inr
	Int
	Bool

	// symbols
	Assign // :=
	Arrow  // ->
	Bang   // !
	Plus   // +
	Minus  // -
	Mult   // *
	Div    // /
	Comma  // ,
	Colon  // :
	Le     // <=
	Lt     // <
	Eqeq   // ==
	Neq    // /=
	Eq     // =
	Ge     // >=
	Gt     // >
	Or     // ||
	And    // &&
	Bar    // |
	Not    // ~
	LParen // (
	RParen // )
	Unit   // ()
)

var kindNames = [...]string{
	Invalid: "invalid",
	EOF:     "end of input",
	Ident:   "identifier",
	Literal: "literal",
	Let:     "let",
	Rec:     "rec",
	In:      "in",
	Fun:     "fun",
	Ref:     "ref",
	If:      "if",
	Then:    "then",
	Else:    "else",
	Fst:     "fst",
	Snd:     "snd",
	True:    "true",
	False:   "false",
	Case:    "case",
	Of:      "of",
	Inl:     "inl",
	Inr:     "inr",
	Int:     "int",
	Bool:    "bool",
	Assign:  ":=",
	Arrow:   "->",
	Bang:    "!",
	Plus:    "+",
	Minus:   "-",
	Mult:    "*",
	Div:     "/",
	Comma:   ",",
	Colon:   ":",
	Le:      "<=",
	Lt:      "<",
	Eqeq:    "==",
	Neq:     "/=",
	Eq:      "=",
	Ge:      ">=",
	Gt:      ">",
	Or:      "||",
	And:     "&&",
	Bar:     "|",
	Not:     "~",
	LParen:  "(",
	RParen:  ")",
	Unit:    "()",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) IsKeyword() bool {
	return k >= Let && k <= Bool
}

func (k Kind) IsSymbol() bool {
	return k >= Assign && k <= Unit
}

var keywords = map[string]Kind{}

func init() {
	for k := Let; k <= Bool; k++ {
		keywords[kindNames[k]] = k
	}
}

// Lookup classifies an identifier-shaped word, returning the keyword kind
// or Ident.
func Lookup(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Ident
}

// Symbols lists every fixed punctuation kind.
func Symbols() []Kind {
	var ret []Kind
	for k := Assign; k <= Unit; k++ {
		ret = append(ret, k)
	}
	return ret
}

// Token is a comparable value; Text is set for Ident and Value for Literal.
type Token struct {
	Kind  Kind
	Text  string
	Value int64
}

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	case Literal:
		return fmt.Sprintf("literal %d", t.Value)
	case EOF, Invalid:
		return t.Kind.String()
	}
	return strconv.Quote(t.Kind.String())
}

func Sym(kind Kind) Token {
	return Token{Kind: kind}
}

func Name(text string) Token {
	return Token{Kind: Ident, Text: text}
}

func Lit(value int64) Token {
	return Token{Kind: Literal, Value: value}
}

type PosToken struct {
	Token
	Pos Pos
}

func (p PosToken) String() string {
	return fmt.Sprintf("%s@%d", p.Token, p.Pos)
}
