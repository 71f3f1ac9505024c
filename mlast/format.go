package mlast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders e as an s-expression. Positions are omitted.
func Format(e Exp) string {
	var b strings.Builder
	writeExp(&b, e)
	return b.String()
}

func FormatType(t Type) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

func writeExp(b *strings.Builder, e Exp) {
	switch e := e.(type) {
	case *BoolLit:
		b.WriteString(strconv.FormatBool(e.Value))
	case *IntLit:
		b.WriteString(strconv.FormatInt(e.Value, 10))
	case *UnitLit:
		b.WriteString("()")
	case *Var:
		b.WriteString(e.Name)
	case *Unary:
		list(b, e.Op.String(), e.X)
	case *Binary:
		list(b, e.Op.String(), e.Left, e.Right)
	case *App:
		list(b, "app", e.Fun, e.Arg)
	case *Pair:
		list(b, "pair", e.First, e.Second)
	case *Fst:
		list(b, "fst", e.X)
	case *Snd:
		list(b, "snd", e.X)
	case *Inl:
		list(b, "inl", e.Other, e.X)
	case *Inr:
		list(b, "inr", e.Other, e.X)
	case *Ref:
		list(b, "ref", e.X)
	case *Deref:
		list(b, "!", e.X)
	case *Assign:
		list(b, ":=", e.Target, e.Value)
	case *Abs:
		list(b, "fun", e.Param, e.ParamType, e.Body)
	case *If:
		list(b, "if", e.Cond, e.Then, e.Else)
	case *Let:
		list(b, "let", e.Name, e.Type, e.Bound, e.Body)
	case *LetRec:
		list(b, "letrec", e.Name, e.Param, e.ParamType, e.Result, e.Bound, e.Body)
	case *Case:
		list(b, "case", e.Scrutinee, e.LeftName, e.Left, e.RightName, e.Right)
	case nil:
		b.WriteString("<nil>")
	default:
		panic(fmt.Errorf("unknown expression: %T", e))
	}
}

func writeType(b *strings.Builder, t Type) {
	switch t := t.(type) {
	case *TUnit:
		b.WriteString("unit")
	case *TInt:
		b.WriteString("int")
	case *TBool:
		b.WriteString("bool")
	case *TArrow:
		list(b, "->", t.Dom, t.Cod)
	case *TProd:
		list(b, "*", t.Left, t.Right)
	case *TSum:
		list(b, "+", t.Left, t.Right)
	case *TRef:
		list(b, "ref", t.Elem)
	case nil:
		b.WriteString("<nil>")
	default:
		panic(fmt.Errorf("unknown type: %T", t))
	}
}

func list(b *strings.Builder, head string, parts ...any) {
	b.WriteString("(")
	b.WriteString(head)
	for _, part := range parts {
		b.WriteString(" ")
		switch part := part.(type) {
		case Exp:
			writeExp(b, part)
		case Type:
			writeType(b, part)
		case string:
			b.WriteString(part)
		}
	}
	b.WriteString(")")
}
