package sil

// Type is the type of an expression in the verification language.
type Type int

const (
	Int Type = iota
	Bool
	Ref
	Perm
)

func (t Type) String() string {
	switch t {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case Ref:
		return "Ref"
	case Perm:
		return "Perm"
	default:
		return "?"
	}
}

// ParseType maps a type name to its Type. The second result is false
// for unknown names.
func ParseType(name string) (Type, bool) {
	switch name {
	case "Int":
		return Int, true
	case "Bool":
		return Bool, true
	case "Ref":
		return Ref, true
	case "Perm":
		return Perm, true
	default:
		return Int, false
	}
}
