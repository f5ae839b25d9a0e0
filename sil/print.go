package sil

import (
	"strings"
)

const indentUnit = "  "

// String renders the program as verifier-ready source text.
func (p *Program) String() string {
	var b strings.Builder
	for _, f := range p.Fields {
		b.WriteString("field " + f.Name + ": " + f.Type.String() + "\n")
	}
	if len(p.Fields) > 0 {
		b.WriteString("\n")
	}
	for _, pred := range p.Predicates {
		writePredicate(&b, pred)
		b.WriteString("\n")
	}
	for i, m := range p.Methods {
		if i > 0 {
			b.WriteString("\n")
		}
		writeMethod(&b, m)
	}
	return b.String()
}

func writePredicate(b *strings.Builder, pred *Predicate) {
	params := make([]string, len(pred.Params))
	for i, p := range pred.Params {
		params[i] = p.Name + ": " + p.Type.String()
	}
	b.WriteString("predicate " + pred.Name + "(" + strings.Join(params, ", ") + ")")
	if pred.Body == nil {
		b.WriteString("\n")
		return
	}
	b.WriteString(" {\n" + indentUnit + pred.Body.String() + "\n}\n")
}

func writeMethod(b *strings.Builder, m *Method) {
	b.WriteString("method " + m.Name + "()\n{\n")
	for _, l := range m.Locals {
		b.WriteString(indentUnit + "var " + l.Name + ": " + l.Type.String() + "\n")
	}
	if len(m.Locals) > 0 && len(m.Body.Stmts) > 0 {
		b.WriteString("\n")
	}
	for _, st := range m.Body.Stmts {
		writeStmt(b, st, 1)
	}
	b.WriteString("}\n")
}

func writeStmt(b *strings.Builder, st Stmt, depth int) {
	ind := strings.Repeat(indentUnit, depth)
	switch s := st.(type) {
	case *Seqn:
		b.WriteString(ind + "{\n")
		for _, inner := range s.Stmts {
			writeStmt(b, inner, depth+1)
		}
		b.WriteString(ind + "}\n")
	case *If:
		b.WriteString(ind + "if (" + s.Cond.String() + ") {\n")
		for _, inner := range s.Then.Stmts {
			writeStmt(b, inner, depth+1)
		}
		if s.Els == nil || len(s.Els.Stmts) == 0 {
			b.WriteString(ind + "}\n")
			return
		}
		b.WriteString(ind + "} else {\n")
		for _, inner := range s.Els.Stmts {
			writeStmt(b, inner, depth+1)
		}
		b.WriteString(ind + "}\n")
	default:
		b.WriteString(ind + st.String() + "\n")
	}
}
