package build

import (
	"fmt"

	"github.com/dinanoe/silicon/infer"
	"github.com/dinanoe/silicon/sil"
)

// saveState records the values relevant to a specification instance into
// shadow variables and marks the program point with a fresh label. Shadow
// names are derived from the label: one per argument variable, then one
// per atom in index order. The caller registers the returned label in the
// Context.
func (r *run) saveState(inst *infer.Instance, sc *scope) string {
	label := r.ns.Fresh(labelBase, 0)
	for _, arg := range inst.Args {
		r.saveValue(label+"_"+arg.Name, arg, sc)
	}
	for i, atom := range inst.Atoms {
		r.saveValue(fmt.Sprintf("%s_%d", label, i), atom, sc)
	}
	sc.append(&sil.LabelStmt{Name: label})
	return label
}

// saveValue assigns an expression into a shadow variable typed to match
// it. With the branch-explicit policy, boolean values are captured through
// an explicit conditional instead of a boolean-valued assignment, so
// backends that reason about branches see the decision as control flow.
func (r *run) saveValue(name string, exp sil.Exp, sc *scope) {
	shadow := &sil.LocalVar{Name: name, Type: exp.Typ()}
	if r.branchBools && exp.Typ() == sil.Bool {
		sc.append(&sil.If{
			Cond: exp,
			Then: &sil.Seqn{Stmts: []sil.Stmt{&sil.LocalVarAssign{Lhs: shadow, Rhs: sil.True()}}},
			Els:  &sil.Seqn{Stmts: []sil.Stmt{&sil.LocalVarAssign{Lhs: shadow, Rhs: sil.False()}}},
		})
		return
	}
	sc.append(&sil.LocalVarAssign{Lhs: shadow, Rhs: exp})
}
