// Package build turns check templates and a predicate hypothesis into a
// self-contained verification program plus the snapshot context that maps
// program points back to the specification instances active there.
package build

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dinanoe/silicon/infer"
	"github.com/dinanoe/silicon/sil"
)

// Config carries the construction-time knobs of a Builder.
type Config struct {
	// BranchExplicitBools selects the branch-explicit snapshot policy for
	// boolean values (see saveValue).
	BranchExplicitBools bool

	// Logger defaults to a no-op logger when nil.
	Logger *zap.Logger
}

// Builder assembles verification programs against one original program.
// A Builder is not safe for concurrent use; concurrent builds need
// independent Builder instances.
type Builder struct {
	original    *sil.Program
	branchBools bool
	log         *zap.Logger
}

// NewBuilder returns a builder that carries the original program's field
// and predicate declarations into every assembled program.
func NewBuilder(original *sil.Program, cfg Config) *Builder {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		original:    original,
		branchBools: cfg.BranchExplicitBools,
		log:         log,
	}
}

// run holds the session state of one BasicCheck invocation. Nothing in it
// survives across invocations.
type run struct {
	ns          *Namespace
	ctx         *Context
	hyp         infer.Hypothesis
	original    *sil.Program
	branchBools bool
	log         *zap.Logger
}

// BasicCheck instruments every check template against the hypothesis and
// assembles the results into one verification program. Session state is
// reset at the start of each call; on error no partial program is
// returned.
func (b *Builder) BasicCheck(templates []*sil.Seqn, hyp infer.Hypothesis) (*sil.Program, *Context, error) {
	r := &run{
		ns:          NewNamespace(),
		ctx:         NewContext(),
		hyp:         hyp,
		original:    b.original,
		branchBools: b.branchBools,
		log:         b.log.With(zap.String("build_id", uuid.NewString())),
	}

	blocks := make([]*sil.Seqn, 0, len(templates))
	for i, tpl := range templates {
		block, err := r.instrumentBlock(tpl)
		if err != nil {
			r.log.Error("instrumentation failed",
				zap.Int("template", i), zap.Error(err))
			return nil, nil, err
		}
		blocks = append(blocks, block)
	}

	prog := r.buildProgram(blocks, hyp)
	r.log.Debug("check program assembled",
		zap.Int("templates", len(templates)),
		zap.Int("snapshots", r.ctx.Len()),
		zap.Int("predicates", len(prog.Predicates)))
	return prog, r.ctx, nil
}
