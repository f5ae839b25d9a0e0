// Package sil models the subset of the verification language that check
// programs are written in: expressions, statements, and the top-level
// declarations assembled into a Program.
package sil

import (
	"fmt"
	"strings"
)

// Exp represents an expression in the verification language.
type Exp interface {
	isExp()
	Typ() Type
	String() string
}

// LocalVar represents a reference to a local variable.
type LocalVar struct {
	Name string
	Type Type
}

func (*LocalVar) isExp()        {}
func (e *LocalVar) Typ() Type   { return e.Type }
func (e *LocalVar) String() string { return e.Name }

// IntLit represents an integer literal.
type IntLit struct {
	Val int64
}

func (*IntLit) isExp()        {}
func (*IntLit) Typ() Type     { return Int }
func (e *IntLit) String() string { return fmt.Sprintf("%d", e.Val) }

// BoolLit represents a boolean literal.
type BoolLit struct {
	Val bool
}

func (*BoolLit) isExp()        {}
func (*BoolLit) Typ() Type     { return Bool }
func (e *BoolLit) String() string { return fmt.Sprintf("%t", e.Val) }

// True and False are convenience constructors for boolean literals.
func True() *BoolLit  { return &BoolLit{Val: true} }
func False() *BoolLit { return &BoolLit{Val: false} }

// NullLit represents the null reference.
type NullLit struct{}

func (*NullLit) isExp()        {}
func (*NullLit) Typ() Type     { return Ref }
func (*NullLit) String() string { return "null" }

// FieldAccess represents a heap field dereference: rcv.field.
type FieldAccess struct {
	Rcv   Exp
	Field *Field
}

func (*FieldAccess) isExp()      {}
func (e *FieldAccess) Typ() Type { return e.Field.Type }
func (e *FieldAccess) String() string {
	return e.Rcv.String() + "." + e.Field.Name
}

// BinOp enumerates binary operators.
type BinOp int

const (
	_ BinOp = iota
	OpAdd
	OpSub
	OpMul
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
	OpImplies
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpImplies:
		return "==>"
	default:
		return "?"
	}
}

// BinExp represents a binary expression.
type BinExp struct {
	Op    BinOp
	Left  Exp
	Right Exp
}

func (*BinExp) isExp() {}
func (e *BinExp) Typ() Type {
	switch e.Op {
	case OpAdd, OpSub, OpMul:
		return e.Left.Typ()
	default:
		return Bool
	}
}

func (e *BinExp) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// UnOp enumerates unary operators.
type UnOp int

const (
	OpNot UnOp = iota
	OpNeg
)

func (op UnOp) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

// UnExp represents a unary expression.
type UnExp struct {
	Op      UnOp
	Operand Exp
}

func (*UnExp) isExp() {}
func (e *UnExp) Typ() Type {
	if e.Op == OpNot {
		return Bool
	}
	return e.Operand.Typ()
}

func (e *UnExp) String() string {
	return e.Op.String() + e.Operand.String()
}

// FuncApp represents an application of an uninterpreted function.
// Check templates use these for compound predicate arguments.
type FuncApp struct {
	Name   string
	Args   []Exp
	Return Type
}

func (*FuncApp) isExp()      {}
func (e *FuncApp) Typ() Type { return e.Return }
func (e *FuncApp) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

// PermExp represents a permission amount.
type PermExp interface {
	Exp
	isPerm()
}

// FullPerm is the full (write) permission amount.
type FullPerm struct{}

func (*FullPerm) isExp()         {}
func (*FullPerm) isPerm()        {}
func (*FullPerm) Typ() Type      { return Perm }
func (*FullPerm) String() string { return "write" }

// WildcardPerm is a positive but unspecified permission amount.
type WildcardPerm struct{}

func (*WildcardPerm) isExp()         {}
func (*WildcardPerm) isPerm()        {}
func (*WildcardPerm) Typ() Type      { return Perm }
func (*WildcardPerm) String() string { return "wildcard" }

// PredAccess represents a predicate access: P(e1, ..., en).
type PredAccess struct {
	Predicate string
	Args      []Exp
}

func (*PredAccess) isExp()      {}
func (*PredAccess) Typ() Type   { return Bool }
func (e *PredAccess) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Predicate + "(" + strings.Join(args, ", ") + ")"
}

// AccessPredicate represents an accessibility assertion over a predicate
// access: acc(P(e1, ..., en), perm).
type AccessPredicate struct {
	Loc  *PredAccess
	Perm PermExp
}

func (*AccessPredicate) isExp()      {}
func (*AccessPredicate) Typ() Type   { return Bool }
func (e *AccessPredicate) String() string {
	return "acc(" + e.Loc.String() + ", " + e.Perm.String() + ")"
}

// FieldAccessPredicate represents an accessibility assertion over a heap
// field: acc(rcv.field, perm). Predicate bodies use these.
type FieldAccessPredicate struct {
	Loc  *FieldAccess
	Perm PermExp
}

func (*FieldAccessPredicate) isExp()      {}
func (*FieldAccessPredicate) Typ() Type   { return Bool }
func (e *FieldAccessPredicate) String() string {
	return "acc(" + e.Loc.String() + ", " + e.Perm.String() + ")"
}

// Stmt represents a statement in the verification language.
type Stmt interface {
	isStmt()
	String() string
}

// Seqn represents a block of statements.
type Seqn struct {
	Stmts []Stmt
}

func (*Seqn) isStmt() {}
func (s *Seqn) String() string {
	if len(s.Stmts) == 0 {
		return "{}"
	}
	parts := make([]string, len(s.Stmts))
	for i, st := range s.Stmts {
		parts[i] = st.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// If represents a conditional statement.
type If struct {
	Cond Exp
	Then *Seqn
	Els  *Seqn
}

func (*If) isStmt() {}
func (s *If) String() string {
	out := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Els != nil {
		out += " else " + s.Els.String()
	}
	return out
}

// Inhale assumes the permission described by an access predicate.
type Inhale struct {
	Acc *AccessPredicate
}

func (*Inhale) isStmt()        {}
func (s *Inhale) String() string { return "inhale " + s.Acc.String() }

// Exhale discharges the permission described by an access predicate.
type Exhale struct {
	Acc *AccessPredicate
}

func (*Exhale) isStmt()        {}
func (s *Exhale) String() string { return "exhale " + s.Acc.String() }

// Unfold opens a predicate instance into its body.
type Unfold struct {
	Acc *AccessPredicate
}

func (*Unfold) isStmt()        {}
func (s *Unfold) String() string { return "unfold " + s.Acc.String() }

// Fold closes a predicate body back into the predicate instance.
type Fold struct {
	Acc *AccessPredicate
}

func (*Fold) isStmt()        {}
func (s *Fold) String() string { return "fold " + s.Acc.String() }

// MethodCall represents a procedure call statement.
type MethodCall struct {
	Method  string
	Args    []Exp
	Targets []*LocalVar
}

func (*MethodCall) isStmt() {}
func (s *MethodCall) String() string {
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.String()
	}
	call := s.Method + "(" + strings.Join(args, ", ") + ")"
	if len(s.Targets) == 0 {
		return call
	}
	targets := make([]string, len(s.Targets))
	for i, tgt := range s.Targets {
		targets[i] = tgt.Name
	}
	return strings.Join(targets, ", ") + " := " + call
}

// LocalVarAssign represents an assignment to a local variable.
type LocalVarAssign struct {
	Lhs *LocalVar
	Rhs Exp
}

func (*LocalVarAssign) isStmt() {}
func (s *LocalVarAssign) String() string {
	return s.Lhs.Name + " := " + s.Rhs.String()
}

// LabelStmt marks a program point with a session-unique name.
type LabelStmt struct {
	Name string
}

func (*LabelStmt) isStmt()        {}
func (s *LabelStmt) String() string { return "label " + s.Name }

// Assert checks a condition without changing state.
type Assert struct {
	Cond Exp
}

func (*Assert) isStmt()        {}
func (s *Assert) String() string { return "assert " + s.Cond.String() }

// Assume adds a path condition without checking it.
type Assume struct {
	Cond Exp
}

func (*Assume) isStmt()        {}
func (s *Assume) String() string { return "assume " + s.Cond.String() }
