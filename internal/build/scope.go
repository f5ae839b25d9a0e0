package build

import "github.com/dinanoe/silicon/sil"

// scope accumulates the statements of the innermost block being built.
// Every block instrumentation owns exactly one scope and passes it down
// explicitly; conditional branches get fresh scopes of their own, so no
// state is shared across branches.
type scope struct {
	stmts []sil.Stmt
}

func newScope() *scope {
	return &scope{}
}

// append adds a statement to the block under construction. Appending
// through a nil scope is a programming defect, not a runtime condition.
func (s *scope) append(st sil.Stmt) {
	if s == nil {
		panic("build: statement appended outside any open scope")
	}
	s.stmts = append(s.stmts, st)
}

// seqn wraps the accumulated statements into a block node.
func (s *scope) seqn() *sil.Seqn {
	return &sil.Seqn{Stmts: s.stmts}
}
