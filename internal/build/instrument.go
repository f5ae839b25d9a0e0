package build

import (
	"fmt"

	"github.com/dinanoe/silicon/sil"
)

// instrumentBlock instruments every statement of a block under a fresh
// scope and wraps the result into a new block node. Conditional branches
// and top-level check templates both go through here, so each gets an
// isolated accumulation context.
func (r *run) instrumentBlock(block *sil.Seqn) (*sil.Seqn, error) {
	sc := newScope()
	for _, st := range block.Stmts {
		if err := r.instrumentStmt(st, sc); err != nil {
			return nil, err
		}
	}
	return sc.seqn(), nil
}

// instrumentStmt dispatches over the closed set of statement kinds.
func (r *run) instrumentStmt(st sil.Stmt, sc *scope) error {
	switch s := st.(type) {
	case *sil.Seqn:
		inner, err := r.instrumentBlock(s)
		if err != nil {
			return err
		}
		sc.append(inner)

	case *sil.If:
		thn, err := r.instrumentBlock(s.Then)
		if err != nil {
			return err
		}
		var els *sil.Seqn
		if s.Els != nil {
			els, err = r.instrumentBlock(s.Els)
			if err != nil {
				return err
			}
		}
		sc.append(&sil.If{Cond: s.Cond, Then: thn, Els: els})

	case *sil.Inhale:
		inst, err := r.resolveInstance(s.Acc, sc)
		if err != nil {
			return err
		}
		acc := adaptAccess(s.Acc, inst)
		sc.append(&sil.Inhale{Acc: acc})
		sc.append(&sil.Unfold{Acc: acc})
		label := r.saveState(inst, sc)
		r.ctx.Add(label, inst, Inhaled)

	case *sil.Exhale:
		inst, err := r.resolveInstance(s.Acc, sc)
		if err != nil {
			return err
		}
		acc := adaptAccess(s.Acc, inst)
		// Values must be captured while the resource is still held, so
		// the snapshot precedes the consuming statements.
		label := r.saveState(inst, sc)
		r.ctx.Add(label, inst, Exhaled)
		sc.append(&sil.Fold{Acc: acc})
		sc.append(&sil.Exhale{Acc: acc})

	case *sil.MethodCall:
		return fmt.Errorf("%w: call to %s", ErrUnsupportedStmt, s.Method)

	default:
		// Assignments, labels, asserts, assumes, folds, unfolds carried
		// over from the template pass through unchanged.
		sc.append(st)
	}
	return nil
}
