package sil

// SubstituteExp returns a copy of e with every local variable whose name
// appears in repl replaced by the mapped expression. Expressions without
// matching variables are returned unchanged (possibly sharing structure
// with the input; expressions are treated as immutable).
func SubstituteExp(e Exp, repl map[string]Exp) Exp {
	if len(repl) == 0 {
		return e
	}
	switch x := e.(type) {
	case *LocalVar:
		if r, ok := repl[x.Name]; ok {
			return r
		}
		return x
	case *FieldAccess:
		return &FieldAccess{Rcv: SubstituteExp(x.Rcv, repl), Field: x.Field}
	case *BinExp:
		return &BinExp{Op: x.Op, Left: SubstituteExp(x.Left, repl), Right: SubstituteExp(x.Right, repl)}
	case *UnExp:
		return &UnExp{Op: x.Op, Operand: SubstituteExp(x.Operand, repl)}
	case *FuncApp:
		args := make([]Exp, len(x.Args))
		for i, a := range x.Args {
			args[i] = SubstituteExp(a, repl)
		}
		return &FuncApp{Name: x.Name, Args: args, Return: x.Return}
	case *PredAccess:
		args := make([]Exp, len(x.Args))
		for i, a := range x.Args {
			args[i] = SubstituteExp(a, repl)
		}
		return &PredAccess{Predicate: x.Predicate, Args: args}
	case *AccessPredicate:
		return &AccessPredicate{Loc: SubstituteExp(x.Loc, repl).(*PredAccess), Perm: x.Perm}
	case *FieldAccessPredicate:
		return &FieldAccessPredicate{Loc: SubstituteExp(x.Loc, repl).(*FieldAccess), Perm: x.Perm}
	default:
		// Literals and permission amounts contain no variables.
		return e
	}
}
