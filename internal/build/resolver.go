package build

import (
	"fmt"

	"github.com/dinanoe/silicon/infer"
	"github.com/dinanoe/silicon/sil"
)

// resolveInstance canonicalizes the arguments of a predicate access and
// asks the hypothesis for the matching specification instance. Arguments
// that are not plain variable references are first assigned into fresh
// temporaries, with the assignments appended to the current scope in
// argument order.
func (r *run) resolveInstance(acc *sil.AccessPredicate, sc *scope) (*infer.Instance, error) {
	loc := acc.Loc
	args := make([]*sil.LocalVar, 0, len(loc.Args))
	for _, a := range loc.Args {
		if v, ok := a.(*sil.LocalVar); ok {
			args = append(args, v)
			continue
		}
		tmp := &sil.LocalVar{Name: r.ns.Fresh(tmpBase, 0), Type: a.Typ()}
		sc.append(&sil.LocalVarAssign{Lhs: tmp, Rhs: a})
		args = append(args, tmp)
	}
	inst, err := r.hyp.ResolveInstance(loc.Predicate, args)
	if err != nil {
		return nil, fmt.Errorf("resolving instance of %s: %w", loc.Predicate, err)
	}
	return inst, nil
}

// adaptAccess rebuilds the access predicate from the resolved instance's
// canonical arguments, keeping the originally requested permission amount.
// Syntactically different accesses of the same instance normalize to one
// form this way.
func adaptAccess(orig *sil.AccessPredicate, inst *infer.Instance) *sil.AccessPredicate {
	args := make([]sil.Exp, len(inst.Args))
	for i, v := range inst.Args {
		args[i] = v
	}
	return &sil.AccessPredicate{
		Loc:  &sil.PredAccess{Predicate: inst.Predicate, Args: args},
		Perm: orig.Perm,
	}
}
