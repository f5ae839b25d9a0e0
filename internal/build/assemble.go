package build

import (
	"github.com/dinanoe/silicon/infer"
	"github.com/dinanoe/silicon/sil"
)

// buildMethod wraps an instrumented block into a standalone check
// procedure: fresh name, no parameters or contracts, and a declaration
// for every distinct local variable the block references.
func (r *run) buildMethod(block *sil.Seqn) *sil.Method {
	return &sil.Method{
		Name:   r.ns.Fresh(methodBase, 0),
		Locals: sil.CollectLocalVars(block),
		Body:   block,
	}
}

// buildProgram merges the check procedures with the original program's
// field and predicate declarations plus the predicates derived from the
// hypothesis. No other declaration kinds are populated.
func (r *run) buildProgram(blocks []*sil.Seqn, hyp infer.Hypothesis) *sil.Program {
	methods := make([]*sil.Method, len(blocks))
	for i, b := range blocks {
		methods[i] = r.buildMethod(b)
	}

	derived := hyp.PredicateDecls()
	preds := make([]*sil.Predicate, 0, len(r.original.Predicates)+len(derived))
	preds = append(preds, r.original.Predicates...)
	preds = append(preds, derived...)

	return &sil.Program{
		Fields:     r.original.Fields,
		Predicates: preds,
		Methods:    methods,
	}
}
