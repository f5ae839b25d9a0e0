// Package silicon drives check-program builds from session files: it
// loads the session, runs the instrumentation engine, and hands back the
// assembled verification program together with the snapshot context.
package silicon

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dinanoe/silicon/internal/build"
	"github.com/dinanoe/silicon/session"
	"github.com/dinanoe/silicon/sil"
)

// Options overrides per-session settings for one run.
type Options struct {
	// BranchBools overrides the session's snapshot policy when non-nil.
	BranchBools *bool

	// Logger defaults to a no-op logger when nil.
	Logger *zap.Logger
}

// Result is the outcome of one build.
type Result struct {
	Program *sil.Program
	Context *build.Context
	Elapsed time.Duration
}

// Run loads a session file and builds its check program.
func Run(path string, opts Options) (*Result, error) {
	sess, err := session.Load(path)
	if err != nil {
		return nil, err
	}
	return RunSession(sess, opts)
}

// RunSession builds the check program for an already loaded session.
func RunSession(sess *session.Session, opts Options) (*Result, error) {
	branchBools := sess.Options.BranchBools
	if opts.BranchBools != nil {
		branchBools = *opts.BranchBools
	}

	b := build.NewBuilder(sess.Program, build.Config{
		BranchExplicitBools: branchBools,
		Logger:              opts.Logger,
	})

	start := time.Now()
	prog, ctx, err := b.BasicCheck(sess.Templates, sess.Hypothesis)
	if err != nil {
		return nil, fmt.Errorf("building check program: %w", err)
	}
	return &Result{Program: prog, Context: ctx, Elapsed: time.Since(start)}, nil
}
