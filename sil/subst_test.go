package sil

import "testing"

func TestSubstituteVariable(t *testing.T) {
	x := &LocalVar{Name: "x", Type: Ref}
	y := &LocalVar{Name: "y", Type: Ref}

	got := SubstituteExp(x, map[string]Exp{"x": y})
	if got != Exp(y) {
		t.Errorf("got %s, want y", got)
	}
}

func TestSubstituteLeavesUnmatchedVariables(t *testing.T) {
	x := &LocalVar{Name: "x", Type: Ref}
	got := SubstituteExp(x, map[string]Exp{"z": &NullLit{}})
	if got != Exp(x) {
		t.Errorf("got %s, want x unchanged", got)
	}
}

func TestSubstituteNested(t *testing.T) {
	x := &LocalVar{Name: "x", Type: Ref}
	y := &LocalVar{Name: "y", Type: Ref}
	val := &Field{Name: "val", Type: Int}

	e := &BinExp{
		Op:    OpGt,
		Left:  &FieldAccess{Rcv: x, Field: val},
		Right: &IntLit{Val: 0},
	}
	got := SubstituteExp(e, map[string]Exp{"x": y})
	if got.String() != "(y.val > 0)" {
		t.Errorf("got %s", got)
	}
	// the input is not mutated
	if e.String() != "(x.val > 0)" {
		t.Errorf("input mutated: %s", e)
	}
}

func TestSubstitutePredicateAccess(t *testing.T) {
	x := &LocalVar{Name: "x", Type: Ref}
	y := &LocalVar{Name: "y", Type: Ref}

	e := &AccessPredicate{
		Loc:  &PredAccess{Predicate: "P", Args: []Exp{x, &FuncApp{Name: "f", Args: []Exp{x}, Return: Ref}}},
		Perm: &FullPerm{},
	}
	got := SubstituteExp(e, map[string]Exp{"x": y})
	if got.String() != "acc(P(y, f(y)), write)" {
		t.Errorf("got %s", got)
	}
}

func TestSubstituteEmptyReplacement(t *testing.T) {
	x := &LocalVar{Name: "x", Type: Ref}
	if got := SubstituteExp(x, nil); got != Exp(x) {
		t.Errorf("got %s, want identity", got)
	}
}
