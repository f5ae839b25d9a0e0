package sil

// Field declares a heap field.
type Field struct {
	Name string
	Type Type
}

// Predicate declares a specification predicate. Body is nil for abstract
// predicates; a hypothesis supplies candidate bodies during a build.
type Predicate struct {
	Name   string
	Params []*LocalVar
	Body   Exp
}

// Method declares a procedure. Check methods carry no parameters, results,
// or contracts; only local declarations and a body.
type Method struct {
	Name   string
	Locals []*LocalVar
	Body   *Seqn
}

// Domain and Function are declaration kinds this builder never populates;
// they exist so an assembled Program carries every declaration slot the
// verifier input schema has.
type Domain struct {
	Name string
}

type Function struct {
	Name string
}

// Program is a self-contained verifier input.
type Program struct {
	Fields     []*Field
	Predicates []*Predicate
	Methods    []*Method
	Domains    []*Domain
	Functions  []*Function
	Extensions []string
}
