// Package infer defines the hypothesis surface the check builder depends
// on: resolving canonical predicate arguments into specification instances
// and materializing candidate predicate declarations.
package infer

import (
	"errors"

	"github.com/dinanoe/silicon/sil"
)

// ErrUnknownPredicate reports a predicate access the hypothesis has no
// candidate for.
var ErrUnknownPredicate = errors.New("unknown predicate")

// Instance is a specification instance: a predicate bound to canonical
// variable arguments plus the atoms relevant to its current candidate
// structure. Args never contain compound expressions.
type Instance struct {
	Predicate string
	Args      []*sil.LocalVar
	Atoms     []sil.Exp
}

// Hypothesis is the learner-owned view of every predicate's candidate
// structure. The builder uses exactly these two services.
type Hypothesis interface {
	// PredicateDecls materializes one declaration per predicate, with its
	// current candidate body.
	PredicateDecls() []*sil.Predicate

	// ResolveInstance binds a predicate to canonical variable arguments,
	// deriving the atom list from the candidate structure.
	ResolveInstance(predicate string, args []*sil.LocalVar) (*Instance, error)
}
