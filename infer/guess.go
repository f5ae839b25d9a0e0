package infer

import (
	"fmt"

	"github.com/dinanoe/silicon/sil"
)

// Candidate is the current structural guess for one predicate: its formal
// parameters, an optional candidate body, and the atom templates over the
// formals whose values snapshots record.
type Candidate struct {
	Params []*sil.LocalVar
	Body   sil.Exp
	Atoms  []sil.Exp
}

// Guess is a concrete Hypothesis backed by a per-predicate candidate
// table. Declaration order is preserved.
type Guess struct {
	candidates map[string]*Candidate
	order      []string
}

// NewGuess returns an empty hypothesis.
func NewGuess() *Guess {
	return &Guess{candidates: make(map[string]*Candidate)}
}

// Set installs or replaces the candidate for a predicate.
func (g *Guess) Set(predicate string, c *Candidate) {
	if _, ok := g.candidates[predicate]; !ok {
		g.order = append(g.order, predicate)
	}
	g.candidates[predicate] = c
}

// PredicateDecls implements Hypothesis.
func (g *Guess) PredicateDecls() []*sil.Predicate {
	decls := make([]*sil.Predicate, 0, len(g.order))
	for _, name := range g.order {
		c := g.candidates[name]
		decls = append(decls, &sil.Predicate{Name: name, Params: c.Params, Body: c.Body})
	}
	return decls
}

// ResolveInstance implements Hypothesis. Atoms are instantiated by
// substituting the canonical arguments for the formals, in template order.
func (g *Guess) ResolveInstance(predicate string, args []*sil.LocalVar) (*Instance, error) {
	c, ok := g.candidates[predicate]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPredicate, predicate)
	}
	if len(args) != len(c.Params) {
		return nil, fmt.Errorf("predicate %s expects %d arguments, got %d",
			predicate, len(c.Params), len(args))
	}
	repl := make(map[string]sil.Exp, len(c.Params))
	for i, p := range c.Params {
		repl[p.Name] = args[i]
	}
	atoms := make([]sil.Exp, len(c.Atoms))
	for i, tpl := range c.Atoms {
		atoms[i] = sil.SubstituteExp(tpl, repl)
	}
	return &Instance{Predicate: predicate, Args: args, Atoms: atoms}, nil
}
