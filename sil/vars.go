package sil

// CollectLocalVars returns every local variable referenced anywhere within
// the block, de-duplicated by name, in first-occurrence order.
func CollectLocalVars(block *Seqn) []*LocalVar {
	c := &varCollector{seen: make(map[string]bool)}
	c.stmt(block)
	return c.vars
}

type varCollector struct {
	seen map[string]bool
	vars []*LocalVar
}

func (c *varCollector) add(v *LocalVar) {
	if c.seen[v.Name] {
		return
	}
	c.seen[v.Name] = true
	c.vars = append(c.vars, v)
}

func (c *varCollector) stmt(st Stmt) {
	switch s := st.(type) {
	case *Seqn:
		for _, inner := range s.Stmts {
			c.stmt(inner)
		}
	case *If:
		c.exp(s.Cond)
		c.stmt(s.Then)
		if s.Els != nil {
			c.stmt(s.Els)
		}
	case *Inhale:
		c.exp(s.Acc)
	case *Exhale:
		c.exp(s.Acc)
	case *Unfold:
		c.exp(s.Acc)
	case *Fold:
		c.exp(s.Acc)
	case *MethodCall:
		for _, a := range s.Args {
			c.exp(a)
		}
		for _, tgt := range s.Targets {
			c.add(tgt)
		}
	case *LocalVarAssign:
		c.add(s.Lhs)
		c.exp(s.Rhs)
	case *Assert:
		c.exp(s.Cond)
	case *Assume:
		c.exp(s.Cond)
	case *LabelStmt:
		// no variables
	}
}

func (c *varCollector) exp(e Exp) {
	switch x := e.(type) {
	case *LocalVar:
		c.add(x)
	case *FieldAccess:
		c.exp(x.Rcv)
	case *BinExp:
		c.exp(x.Left)
		c.exp(x.Right)
	case *UnExp:
		c.exp(x.Operand)
	case *FuncApp:
		for _, a := range x.Args {
			c.exp(a)
		}
	case *PredAccess:
		for _, a := range x.Args {
			c.exp(a)
		}
	case *AccessPredicate:
		c.exp(x.Loc)
	case *FieldAccessPredicate:
		c.exp(x.Loc)
	}
}
