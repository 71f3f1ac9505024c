package mlparse

import (
	"github.com/reusee/miniml/mlast"
	"github.com/reusee/miniml/mltoken"
)

// Type grammar, loosest first, each binary level right-associative:
//
//	sum     = product [ "+" sum ]
//	product = arrow [ "*" product ]
//	arrow   = ref [ "->" arrow ]
//	ref     = "ref" ref | atom
//	atom    = "()" | "int" | "bool" | "(" sum ")"

func (p *Parser) parseType() (mlast.Type, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseProductType()
	if err != nil {
		return nil, err
	}
	if !p.cursor.ConsumeIf(mltoken.Sym(mltoken.Plus)) {
		return left, nil
	}
	right, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &mlast.TSum{Left: left, Right: right}, nil
}

func (p *Parser) parseProductType() (mlast.Type, error) {
	left, err := p.parseArrowType()
	if err != nil {
		return nil, err
	}
	if !p.cursor.ConsumeIf(mltoken.Sym(mltoken.Mult)) {
		return left, nil
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	right, err := p.parseProductType()
	if err != nil {
		return nil, err
	}
	return &mlast.TProd{Left: left, Right: right}, nil
}

func (p *Parser) parseArrowType() (mlast.Type, error) {
	left, err := p.parseRefType()
	if err != nil {
		return nil, err
	}
	if !p.cursor.ConsumeIf(mltoken.Sym(mltoken.Arrow)) {
		return left, nil
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	right, err := p.parseArrowType()
	if err != nil {
		return nil, err
	}
	return &mlast.TArrow{Dom: left, Cod: right}, nil
}

func (p *Parser) parseRefType() (mlast.Type, error) {
	if !p.cursor.ConsumeIf(mltoken.Sym(mltoken.Ref)) {
		return p.parseAtomType()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	elem, err := p.parseRefType()
	if err != nil {
		return nil, err
	}
	return &mlast.TRef{Elem: elem}, nil
}

func (p *Parser) parseAtomType() (mlast.Type, error) {
	tok := p.cursor.Advance()
	switch tok.Kind {
	case mltoken.Unit:
		return &mlast.TUnit{}, nil
	case mltoken.Int:
		return &mlast.TInt{}, nil
	case mltoken.Bool:
		return &mlast.TBool{}, nil
	case mltoken.LParen:
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(mltoken.RParen); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, unexpected(tok)
}
