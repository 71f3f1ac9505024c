package mlast

import "github.com/reusee/miniml/mltoken"

// Exp is an expression node. The set of implementations is closed; every
// node records the position of the token that introduced it.
type Exp interface {
	Pos() mltoken.Pos
	isExp()
}

type BoolLit struct {
	At    mltoken.Pos
	Value bool
}

type IntLit struct {
	At    mltoken.Pos
	Value int64
}

type UnitLit struct {
	At mltoken.Pos
}

type Var struct {
	At   mltoken.Pos
	Name string
}

type Unary struct {
	At mltoken.Pos
	Op Uop
	X  Exp
}

type Binary struct {
	At          mltoken.Pos
	Op          Bop
	Left, Right Exp
}

type App struct {
	At       mltoken.Pos
	Fun, Arg Exp
}

type Pair struct {
	At            mltoken.Pos
	First, Second Exp
}

type Fst struct {
	At mltoken.Pos
	X  Exp
}

type Snd struct {
	At mltoken.Pos
	X  Exp
}

// Inl injects X into the left side of a sum whose right side is Other.
type Inl struct {
	At    mltoken.Pos
	Other Type
	X     Exp
}

// Inr injects X into the right side of a sum whose left side is Other.
type Inr struct {
	At    mltoken.Pos
	Other Type
	X     Exp
}

type Ref struct {
	At mltoken.Pos
	X  Exp
}

type Deref struct {
	At mltoken.Pos
	X  Exp
}

type Assign struct {
	At            mltoken.Pos
	Target, Value Exp
}

// Abs is fun (Param : ParamType) -> Body.
type Abs struct {
	At        mltoken.Pos
	Param     string
	ParamType Type
	Body      Exp
}

type If struct {
	At               mltoken.Pos
	Cond, Then, Else Exp
}

// Let is let Name : Type = Bound in Body.
type Let struct {
	At    mltoken.Pos
	Name  string
	Type  Type
	Bound Exp
	Body  Exp
}

// LetRec is let rec Name (Param : ParamType) : Result = Bound in Body.
type LetRec struct {
	At        mltoken.Pos
	Name      string
	Param     string
	ParamType Type
	Result    Type
	Bound     Exp
	Body      Exp
}

// Case is case Scrutinee of | inl LeftName -> Left | inr RightName -> Right.
type Case struct {
	At        mltoken.Pos
	Scrutinee Exp
	LeftName  string
	Left      Exp
	RightName string
	Right     Exp
}

func (e *BoolLit) Pos() mltoken.Pos { return e.At }
func (e *IntLit) Pos() mltoken.Pos  { return e.At }
func (e *UnitLit) Pos() mltoken.Pos { return e.At }
func (e *Var) Pos() mltoken.Pos     { return e.At }
func (e *Unary) Pos() mltoken.Pos   { return e.At }
func (e *Binary) Pos() mltoken.Pos  { return e.At }
func (e *App) Pos() mltoken.Pos     { return e.At }
func (e *Pair) Pos() mltoken.Pos    { return e.At }
func (e *Fst) Pos() mltoken.Pos     { return e.At }
func (e *Snd) Pos() mltoken.Pos     { return e.At }
func (e *Inl) Pos() mltoken.Pos     { return e.At }
func (e *Inr) Pos() mltoken.Pos     { return e.At }
func (e *Ref) Pos() mltoken.Pos     { return e.At }
func (e *Deref) Pos() mltoken.Pos   { return e.At }
func (e *Assign) Pos() mltoken.Pos  { return e.At }
func (e *Abs) Pos() mltoken.Pos     { return e.At }
func (e *If) Pos() mltoken.Pos      { return e.At }
func (e *Let) Pos() mltoken.Pos     { return e.At }
func (e *LetRec) Pos() mltoken.Pos  { return e.At }
func (e *Case) Pos() mltoken.Pos    { return e.At }

func (*BoolLit) isExp() {}
func (*IntLit) isExp()  {}
func (*UnitLit) isExp() {}
func (*Var) isExp()     {}
func (*Unary) isExp()   {}
func (*Binary) isExp()  {}
func (*App) isExp()     {}
func (*Pair) isExp()    {}
func (*Fst) isExp()     {}
func (*Snd) isExp()     {}
func (*Inl) isExp()     {}
func (*Inr) isExp()     {}
func (*Ref) isExp()     {}
func (*Deref) isExp()   {}
func (*Assign) isExp()  {}
func (*Abs) isExp()     {}
func (*If) isExp()      {}
func (*Let) isExp()     {}
func (*LetRec) isExp()  {}
func (*Case) isExp()    {}
