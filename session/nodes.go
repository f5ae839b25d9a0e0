package session

import (
	"fmt"

	"github.com/dinanoe/silicon/sil"
)

// Expression and statement nodes are tagged by key: exactly one of the
// struct fields must be set per node.

type expNode struct {
	Var   *varNode      `yaml:"var"`
	Int   *int64        `yaml:"int"`
	Bool  *bool         `yaml:"bool"`
	Null  bool          `yaml:"null"`
	Field *fieldRefNode `yaml:"field"`
	Bin   *binNode      `yaml:"bin"`
	Not   *expNode      `yaml:"not"`
	Call  *callNode     `yaml:"call"`
	Acc   *fieldAccNode `yaml:"acc"`
}

type fieldRefNode struct {
	Of   expNode `yaml:"of"`
	Name string  `yaml:"name"`
}

type binNode struct {
	Op    string  `yaml:"op"`
	Left  expNode `yaml:"left"`
	Right expNode `yaml:"right"`
}

type callNode struct {
	Func string    `yaml:"func"`
	Args []expNode `yaml:"args"`
	Type string    `yaml:"type"`
}

type fieldAccNode struct {
	Of   expNode `yaml:"of"`
	Name string  `yaml:"name"`
	Perm string  `yaml:"perm"`
}

type stmtNode struct {
	Inhale *accessNode     `yaml:"inhale"`
	Exhale *accessNode     `yaml:"exhale"`
	If     *ifNode         `yaml:"if"`
	Assign *assignNode     `yaml:"assign"`
	Assert *expNode        `yaml:"assert"`
	Assume *expNode        `yaml:"assume"`
	Call   *methodCallNode `yaml:"call"`
	Label  string          `yaml:"label"`
	Block  []stmtNode      `yaml:"block"`
}

type accessNode struct {
	Pred string    `yaml:"pred"`
	Args []expNode `yaml:"args"`
	Perm string    `yaml:"perm"`
}

type ifNode struct {
	Cond expNode    `yaml:"cond"`
	Then []stmtNode `yaml:"then"`
	Else []stmtNode `yaml:"else"`
}

type assignNode struct {
	Var   varNode `yaml:"var"`
	Value expNode `yaml:"value"`
}

type methodCallNode struct {
	Method string    `yaml:"method"`
	Args   []expNode `yaml:"args"`
}

var binOps = map[string]sil.BinOp{
	"+":   sil.OpAdd,
	"-":   sil.OpSub,
	"*":   sil.OpMul,
	"==":  sil.OpEq,
	"!=":  sil.OpNeq,
	"<":   sil.OpLt,
	"<=":  sil.OpLte,
	">":   sil.OpGt,
	">=":  sil.OpGte,
	"&&":  sil.OpAnd,
	"||":  sil.OpOr,
	"==>": sil.OpImplies,
}

func (d *decoder) exp(n *expNode) (sil.Exp, error) {
	switch {
	case n.Var != nil:
		return d.localVar(*n.Var)
	case n.Int != nil:
		return &sil.IntLit{Val: *n.Int}, nil
	case n.Bool != nil:
		return &sil.BoolLit{Val: *n.Bool}, nil
	case n.Null:
		return &sil.NullLit{}, nil
	case n.Field != nil:
		return d.fieldAccess(n.Field.Of, n.Field.Name)
	case n.Bin != nil:
		op, ok := binOps[n.Bin.Op]
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", n.Bin.Op)
		}
		left, err := d.exp(&n.Bin.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.exp(&n.Bin.Right)
		if err != nil {
			return nil, err
		}
		return &sil.BinExp{Op: op, Left: left, Right: right}, nil
	case n.Not != nil:
		operand, err := d.exp(n.Not)
		if err != nil {
			return nil, err
		}
		return &sil.UnExp{Op: sil.OpNot, Operand: operand}, nil
	case n.Call != nil:
		typ, ok := sil.ParseType(n.Call.Type)
		if !ok {
			return nil, fmt.Errorf("call %s: unknown return type %q", n.Call.Func, n.Call.Type)
		}
		args, err := d.exps(n.Call.Args)
		if err != nil {
			return nil, err
		}
		return &sil.FuncApp{Name: n.Call.Func, Args: args, Return: typ}, nil
	case n.Acc != nil:
		loc, err := d.fieldAccess(n.Acc.Of, n.Acc.Name)
		if err != nil {
			return nil, err
		}
		perm, err := parsePerm(n.Acc.Perm)
		if err != nil {
			return nil, err
		}
		return &sil.FieldAccessPredicate{Loc: loc, Perm: perm}, nil
	default:
		return nil, fmt.Errorf("empty expression node")
	}
}

func (d *decoder) exps(nodes []expNode) ([]sil.Exp, error) {
	out := make([]sil.Exp, len(nodes))
	for i := range nodes {
		e, err := d.exp(&nodes[i])
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (d *decoder) fieldAccess(of expNode, name string) (*sil.FieldAccess, error) {
	fld, ok := d.fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", name)
	}
	rcv, err := d.exp(&of)
	if err != nil {
		return nil, err
	}
	return &sil.FieldAccess{Rcv: rcv, Field: fld}, nil
}

func (d *decoder) block(nodes []stmtNode) (*sil.Seqn, error) {
	stmts := make([]sil.Stmt, 0, len(nodes))
	for i := range nodes {
		st, err := d.stmt(&nodes[i])
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return &sil.Seqn{Stmts: stmts}, nil
}

func (d *decoder) stmt(n *stmtNode) (sil.Stmt, error) {
	switch {
	case n.Inhale != nil:
		acc, err := d.access(n.Inhale)
		if err != nil {
			return nil, err
		}
		return &sil.Inhale{Acc: acc}, nil
	case n.Exhale != nil:
		acc, err := d.access(n.Exhale)
		if err != nil {
			return nil, err
		}
		return &sil.Exhale{Acc: acc}, nil
	case n.If != nil:
		cond, err := d.exp(&n.If.Cond)
		if err != nil {
			return nil, err
		}
		thn, err := d.block(n.If.Then)
		if err != nil {
			return nil, err
		}
		var els *sil.Seqn
		if len(n.If.Else) > 0 {
			els, err = d.block(n.If.Else)
			if err != nil {
				return nil, err
			}
		}
		return &sil.If{Cond: cond, Then: thn, Els: els}, nil
	case n.Assign != nil:
		lhs, err := d.localVar(n.Assign.Var)
		if err != nil {
			return nil, err
		}
		rhs, err := d.exp(&n.Assign.Value)
		if err != nil {
			return nil, err
		}
		return &sil.LocalVarAssign{Lhs: lhs, Rhs: rhs}, nil
	case n.Assert != nil:
		cond, err := d.exp(n.Assert)
		if err != nil {
			return nil, err
		}
		return &sil.Assert{Cond: cond}, nil
	case n.Assume != nil:
		cond, err := d.exp(n.Assume)
		if err != nil {
			return nil, err
		}
		return &sil.Assume{Cond: cond}, nil
	case n.Call != nil:
		args, err := d.exps(n.Call.Args)
		if err != nil {
			return nil, err
		}
		return &sil.MethodCall{Method: n.Call.Method, Args: args}, nil
	case n.Label != "":
		return &sil.LabelStmt{Name: n.Label}, nil
	case n.Block != nil:
		return d.block(n.Block)
	default:
		return nil, fmt.Errorf("empty statement node")
	}
}

func (d *decoder) access(n *accessNode) (*sil.AccessPredicate, error) {
	args, err := d.exps(n.Args)
	if err != nil {
		return nil, err
	}
	perm, err := parsePerm(n.Perm)
	if err != nil {
		return nil, err
	}
	return &sil.AccessPredicate{
		Loc:  &sil.PredAccess{Predicate: n.Pred, Args: args},
		Perm: perm,
	}, nil
}

func parsePerm(s string) (sil.PermExp, error) {
	switch s {
	case "", "write":
		return &sil.FullPerm{}, nil
	case "wildcard":
		return &sil.WildcardPerm{}, nil
	default:
		return nil, fmt.Errorf("unknown permission amount %q", s)
	}
}
