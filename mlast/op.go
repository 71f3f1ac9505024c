package mlast

type Uop uint8

const (
	Not Uop = iota + 1
)

func (o Uop) String() string {
	switch o {
	case Not:
		return "not"
	}
	return "?"
}

type Bop uint8

const (
	Plus Bop = iota + 1
	Minus
	Mul
	Div
	And
	Or
	Lt
	Gt
	Le
	Ge
	Eq
	Neq
)

var bopNames = [...]string{
	Plus:  "+",
	Minus: "-",
	Mul:   "*",
	Div:   "/",
	And:   "&&",
	Or:    "||",
	Lt:    "<",
	Gt:    ">",
	Le:    "<=",
	Ge:    ">=",
	Eq:    "==",
	Neq:   "/=",
}

func (o Bop) String() string {
	if int(o) < len(bopNames) && bopNames[o] != "" {
		return bopNames[o]
	}
	return "?"
}
