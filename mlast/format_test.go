package mlast

import "testing"

func TestFormat(t *testing.T) {
	e := &LetRec{
		Name:      "f",
		Param:     "x",
		ParamType: &TInt{},
		Result:    &TSum{Left: &TUnit{}, Right: &TRef{Elem: &TBool{}}},
		Bound: &If{
			Cond: &Binary{Op: Le, Left: &Var{Name: "x"}, Right: &IntLit{Value: 0}},
			Then: &Inl{Other: &TRef{Elem: &TBool{}}, X: &UnitLit{}},
			Else: &App{Fun: &Var{Name: "f"}, Arg: &Binary{Op: Minus, Left: &Var{Name: "x"}, Right: &IntLit{Value: 1}}},
		},
		Body: &Case{
			Scrutinee: &App{Fun: &Var{Name: "f"}, Arg: &IntLit{Value: 3}},
			LeftName:  "u",
			Left:      &BoolLit{Value: false},
			RightName: "r",
			Right:     &Unary{Op: Not, X: &Deref{X: &Var{Name: "r"}}},
		},
	}
	expected := "(letrec f x int (+ unit (ref bool)) " +
		"(if (<= x 0) (inl (ref bool) ()) (app f (- x 1))) " +
		"(case (app f 3) u false r (not (! r))))"
	if got := Format(e); got != expected {
		t.Fatalf("got %s", got)
	}
}

func TestFormatType(t *testing.T) {
	typ := &TArrow{
		Dom: &TProd{Left: &TInt{}, Right: &TBool{}},
		Cod: &TArrow{Dom: &TUnit{}, Cod: &TInt{}},
	}
	if got := FormatType(typ); got != "(-> (* int bool) (-> unit int))" {
		t.Fatalf("got %s", got)
	}
}

func TestBopString(t *testing.T) {
	if And.String() != "&&" || Or.String() != "||" || Neq.String() != "/=" {
		t.Fatal()
	}
	if Bop(0).String() != "?" {
		t.Fatal()
	}
}
