package mlast

// Type is one of the type-grammar variants below.
type Type interface {
	isType()
}

type (
	TUnit struct{}
	TInt  struct{}
	TBool struct{}

	TArrow struct {
		Dom, Cod Type
	}

	TProd struct {
		Left, Right Type
	}

	TSum struct {
		Left, Right Type
	}

	TRef struct {
		Elem Type
	}
)

func (*TUnit) isType()  {}
func (*TInt) isType()   {}
func (*TBool) isType()  {}
func (*TArrow) isType() {}
func (*TProd) isType()  {}
func (*TSum) isType()   {}
func (*TRef) isType()   {}
