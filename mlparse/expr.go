package mlparse

import (
	"errors"

	"github.com/reusee/miniml/mlast"
	"github.com/reusee/miniml/mltoken"
)

// precedence classes, loosest first
type precedence int

const (
	precZero precedence = iota
	precAssign
	precArrow // reserved for types, never consumed in expressions
	precOr
	precAnd
	precCmp
	precAdd
	precMul
	precPostfix
)

var binaryOps = map[mltoken.Kind]mlast.Bop{
	mltoken.Or:    mlast.Or,
	mltoken.And:   mlast.And,
	mltoken.Eqeq:  mlast.Eq,
	mltoken.Neq:   mlast.Neq,
	mltoken.Ge:    mlast.Ge,
	mltoken.Le:    mlast.Le,
	mltoken.Gt:    mlast.Gt,
	mltoken.Lt:    mlast.Lt,
	mltoken.Plus:  mlast.Plus,
	mltoken.Minus: mlast.Minus,
	mltoken.Mult:  mlast.Mul,
	mltoken.Div:   mlast.Div,
}

// infixPrecedence returns precZero for tokens that do not continue an
// expression, which ends the climb.
func infixPrecedence(kind mltoken.Kind) precedence {
	switch kind {
	case mltoken.Assign:
		return precAssign
	case mltoken.Or:
		return precOr
	case mltoken.And:
		return precAnd
	case mltoken.Eqeq, mltoken.Neq, mltoken.Ge, mltoken.Le, mltoken.Gt, mltoken.Lt:
		return precCmp
	case mltoken.Plus, mltoken.Minus:
		return precAdd
	case mltoken.Mult, mltoken.Div:
		return precMul
	case mltoken.Ref, mltoken.Bang:
		return precPostfix
	}
	return precZero
}

func (p *Parser) parseExpr() (mlast.Exp, error) {
	var parse func() (mlast.Exp, error)
	switch p.cursor.Peek().Kind {
	case mltoken.Fun:
		parse = p.parseAbs
	case mltoken.If:
		parse = p.parseIf
	case mltoken.Let:
		parse = p.parseLet
	case mltoken.Case:
		parse = p.parseCase
	default:
		return p.parseSubexpr(precZero)
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return parse()
}

// parseSubexpr parses operators binding tighter than min.
func (p *Parser) parseSubexpr(min precedence) (mlast.Exp, error) {
	exp, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		next := infixPrecedence(p.cursor.Peek().Kind)
		if next <= min {
			return exp, nil
		}
		exp, err = p.parseInfix(exp, next)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseInfix(left mlast.Exp, prec precedence) (mlast.Exp, error) {
	op := p.cursor.Advance()
	switch op.Kind {

	case mltoken.Ref:
		return &mlast.Ref{At: op.Pos, X: left}, nil

	case mltoken.Bang:
		return &mlast.Deref{At: op.Pos, X: left}, nil

	case mltoken.Assign:
		// right-associative, so a chain of := nests
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		right, err := p.parseSubexpr(prec - 1)
		if err != nil {
			return nil, err
		}
		return &mlast.Assign{At: op.Pos, Target: left, Value: right}, nil

	}

	bop, ok := binaryOps[op.Kind]
	if !ok {
		return nil, unexpected(op)
	}
	right, err := p.parseSubexpr(prec)
	if err != nil {
		return nil, err
	}
	return &mlast.Binary{At: op.Pos, Op: bop, Left: left, Right: right}, nil
}

func (p *Parser) parsePrefix() (mlast.Exp, error) {
	tok := p.cursor.Peek()
	if !p.cursor.ConsumeIf(mltoken.Sym(mltoken.Not)) {
		return p.parseApp()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	x, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	return &mlast.Unary{At: tok.Pos, Op: mlast.Not, X: x}, nil
}

// parseApp parses a juxtaposition chain f a b ... as ((f a) b) ...
func (p *Parser) parseApp() (mlast.Exp, error) {
	fn, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.startsArgument() {
		arg, ok, err := p.try(p.parseUnary)
		if err != nil {
			return nil, err
		}
		if !ok {
			return fn, nil
		}
		fn = &mlast.App{At: fn.Pos(), Fun: fn, Arg: arg}
	}
	return fn, nil
}

// startsArgument reports whether the tokens ahead can form an application
// argument: a run of ref ! fst snd followed by an atom. Without an atom the
// run is left to the climbing loop as postfix operators.
func (p *Parser) startsArgument() bool {
	for i := 0; ; i++ {
		switch p.cursor.PeekAt(i).Kind {
		case mltoken.Ref, mltoken.Bang, mltoken.Fst, mltoken.Snd:
			continue
		case mltoken.Literal, mltoken.Ident, mltoken.True, mltoken.False,
			mltoken.Unit, mltoken.LParen, mltoken.Inl, mltoken.Inr:
			return true
		}
		return false
	}
}

func (p *Parser) try(parse func() (mlast.Exp, error)) (mlast.Exp, bool, error) {
	var failure error
	exp, ok, err := TryParse(p.cursor, func(*Cursor) (mlast.Exp, error) {
		exp, err := parse()
		failure = err
		return exp, err
	})
	if ok || err != nil {
		return exp, ok, err
	}
	if errors.Is(failure, ErrTooDeep) {
		return nil, false, failure
	}
	p.logger.Debug("backtrack",
		"pos", p.cursor.Pos(),
		"reason", failure,
	)
	return nil, false, nil
}

func (p *Parser) parseUnary() (mlast.Exp, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.cursor.Peek()
	switch tok.Kind {

	case mltoken.Ref, mltoken.Bang, mltoken.Fst, mltoken.Snd:
		p.cursor.Advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case mltoken.Ref:
			return &mlast.Ref{At: tok.Pos, X: x}, nil
		case mltoken.Bang:
			return &mlast.Deref{At: tok.Pos, X: x}, nil
		case mltoken.Fst:
			return &mlast.Fst{At: tok.Pos, X: x}, nil
		default:
			return &mlast.Snd{At: tok.Pos, X: x}, nil
		}

	case mltoken.Inl, mltoken.Inr:
		p.cursor.Advance()
		if err := p.expect(mltoken.LParen); err != nil {
			return nil, err
		}
		other, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(mltoken.RParen); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tok.Kind == mltoken.Inl {
			return &mlast.Inl{At: tok.Pos, Other: other, X: x}, nil
		}
		return &mlast.Inr{At: tok.Pos, Other: other, X: x}, nil

	case mltoken.True, mltoken.False:
		p.cursor.Advance()
		return &mlast.BoolLit{At: tok.Pos, Value: tok.Kind == mltoken.True}, nil

	case mltoken.Literal:
		p.cursor.Advance()
		return &mlast.IntLit{At: tok.Pos, Value: tok.Value}, nil

	case mltoken.Unit:
		p.cursor.Advance()
		return &mlast.UnitLit{At: tok.Pos}, nil

	case mltoken.Ident:
		p.cursor.Advance()
		return &mlast.Var{At: tok.Pos, Name: tok.Text}, nil

	case mltoken.LParen:
		p.cursor.Advance()
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.cursor.ConsumeIf(mltoken.Sym(mltoken.Comma)) {
			if err := p.expect(mltoken.RParen); err != nil {
				return nil, err
			}
			return first, nil
		}
		second, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(mltoken.RParen); err != nil {
			return nil, err
		}
		return &mlast.Pair{At: tok.Pos, First: first, Second: second}, nil

	}

	return nil, unexpected(tok)
}

// fun (x : T) -> e
func (p *Parser) parseAbs() (mlast.Exp, error) {
	tok := p.cursor.Advance()
	if err := p.expect(mltoken.LParen); err != nil {
		return nil, err
	}
	param, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Colon); err != nil {
		return nil, err
	}
	paramType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.RParen); err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Arrow); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &mlast.Abs{
		At:        tok.Pos,
		Param:     param.Text,
		ParamType: paramType,
		Body:      body,
	}, nil
}

// if e then e else e
func (p *Parser) parseIf() (mlast.Exp, error) {
	tok := p.cursor.Advance()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Then); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Else); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &mlast.If{At: tok.Pos, Cond: cond, Then: then, Else: els}, nil
}

// let x : T = e in e
// let rec f (x : T) : T = e in e
func (p *Parser) parseLet() (mlast.Exp, error) {
	tok := p.cursor.Advance()
	if p.cursor.ConsumeIf(mltoken.Sym(mltoken.Rec)) {
		return p.parseLetRec(tok)
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	bound, body, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	return &mlast.Let{
		At:    tok.Pos,
		Name:  name.Text,
		Type:  typ,
		Bound: bound,
		Body:  body,
	}, nil
}

func (p *Parser) parseLetRec(tok mltoken.PosToken) (mlast.Exp, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.LParen); err != nil {
		return nil, err
	}
	param, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Colon); err != nil {
		return nil, err
	}
	paramType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.RParen); err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Colon); err != nil {
		return nil, err
	}
	result, err := p.parseType()
	if err != nil {
		return nil, err
	}
	bound, body, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	return &mlast.LetRec{
		At:        tok.Pos,
		Name:      name.Text,
		Param:     param.Text,
		ParamType: paramType,
		Result:    result,
		Bound:     bound,
		Body:      body,
	}, nil
}

// = e in e
func (p *Parser) parseBinding() (bound mlast.Exp, body mlast.Exp, err error) {
	if err := p.expect(mltoken.Eq); err != nil {
		return nil, nil, err
	}
	bound, err = p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(mltoken.In); err != nil {
		return nil, nil, err
	}
	body, err = p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	return bound, body, nil
}

// case e of | inl x -> e | inr y -> e
func (p *Parser) parseCase() (mlast.Exp, error) {
	tok := p.cursor.Advance()
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(mltoken.Of); err != nil {
		return nil, err
	}
	leftName, left, err := p.parseArm(mltoken.Inl)
	if err != nil {
		return nil, err
	}
	rightName, right, err := p.parseArm(mltoken.Inr)
	if err != nil {
		return nil, err
	}
	return &mlast.Case{
		At:        tok.Pos,
		Scrutinee: scrutinee,
		LeftName:  leftName,
		Left:      left,
		RightName: rightName,
		Right:     right,
	}, nil
}

// | inl x -> e
func (p *Parser) parseArm(side mltoken.Kind) (string, mlast.Exp, error) {
	if err := p.expect(mltoken.Bar); err != nil {
		return "", nil, err
	}
	if err := p.expect(side); err != nil {
		return "", nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return "", nil, err
	}
	if err := p.expect(mltoken.Arrow); err != nil {
		return "", nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return "", nil, err
	}
	return name.Text, body, nil
}
