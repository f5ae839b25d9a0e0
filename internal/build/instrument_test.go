package build

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinanoe/silicon/infer"
	"github.com/dinanoe/silicon/sil"
)

var valField = &sil.Field{Name: "val", Type: sil.Int}

func refVar(name string) *sil.LocalVar {
	return &sil.LocalVar{Name: name, Type: sil.Ref}
}

func intVar(name string) *sil.LocalVar {
	return &sil.LocalVar{Name: name, Type: sil.Int}
}

// testProgram is the carried-over original program: one field, one
// pre-existing predicate.
func testProgram() *sil.Program {
	return &sil.Program{
		Fields:     []*sil.Field{valField},
		Predicates: []*sil.Predicate{{Name: "Q", Params: []*sil.LocalVar{refVar("r")}}},
	}
}

// testHypothesis guesses one predicate P(x: Ref) with a single atom
// x != null.
func testHypothesis() *infer.Guess {
	x := refVar("x")
	g := infer.NewGuess()
	g.Set("P", &infer.Candidate{
		Params: []*sil.LocalVar{x},
		Body: &sil.FieldAccessPredicate{
			Loc:  &sil.FieldAccess{Rcv: x, Field: valField},
			Perm: &sil.FullPerm{},
		},
		Atoms: []sil.Exp{
			&sil.BinExp{Op: sil.OpNeq, Left: x, Right: &sil.NullLit{}},
		},
	})
	return g
}

func accP(args ...sil.Exp) *sil.AccessPredicate {
	return &sil.AccessPredicate{
		Loc:  &sil.PredAccess{Predicate: "P", Args: args},
		Perm: &sil.FullPerm{},
	}
}

func buildOne(t *testing.T, cfg Config, stmts ...sil.Stmt) (*sil.Program, *Context) {
	t.Helper()
	b := NewBuilder(testProgram(), cfg)
	prog, ctx, err := b.BasicCheck([]*sil.Seqn{{Stmts: stmts}}, testHypothesis())
	require.NoError(t, err)
	require.Len(t, prog.Methods, 1)
	return prog, ctx
}

func TestNoOpInstrumentation(t *testing.T) {
	input := []sil.Stmt{
		&sil.LocalVarAssign{Lhs: intVar("a"), Rhs: &sil.IntLit{Val: 1}},
		&sil.Assert{Cond: &sil.BinExp{Op: sil.OpGt, Left: intVar("a"), Right: &sil.IntLit{Val: 0}}},
		&sil.Assume{Cond: sil.True()},
	}

	prog, ctx := buildOne(t, Config{}, input...)

	if diff := cmp.Diff(input, prog.Methods[0].Body.Stmts); diff != "" {
		t.Errorf("statements changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, ctx.Len())
}

func TestOneSnapshotPerUse(t *testing.T) {
	x := refVar("x")
	y := refVar("y")
	b := NewBuilder(testProgram(), Config{})

	templates := []*sil.Seqn{
		{Stmts: []sil.Stmt{&sil.Inhale{Acc: accP(x)}, &sil.Exhale{Acc: accP(x)}}},
		{Stmts: []sil.Stmt{&sil.Inhale{Acc: accP(y)}}},
	}
	prog, ctx, err := b.BasicCheck(templates, testHypothesis())
	require.NoError(t, err)

	// one label per permission use, all distinct across templates
	require.Equal(t, 3, ctx.Len())
	seen := make(map[string]bool)
	for _, label := range ctx.Labels() {
		assert.False(t, seen[label])
		seen[label] = true
		assert.Len(t, ctx.At(label), 1)
	}

	markers := 0
	for _, m := range prog.Methods {
		markers += countLabels(m.Body)
	}
	assert.Equal(t, 3, markers)
}

func countLabels(block *sil.Seqn) int {
	n := 0
	for _, st := range block.Stmts {
		switch s := st.(type) {
		case *sil.LabelStmt:
			n++
		case *sil.Seqn:
			n += countLabels(s)
		case *sil.If:
			n += countLabels(s.Then)
			if s.Els != nil {
				n += countLabels(s.Els)
			}
		}
	}
	return n
}

func TestArgumentCanonicalization(t *testing.T) {
	y := refVar("y")
	compound := &sil.FuncApp{Name: "f", Args: []sil.Exp{y}, Return: sil.Ref}

	prog, _ := buildOne(t, Config{}, &sil.Inhale{Acc: accP(compound)})
	stmts := prog.Methods[0].Body.Stmts

	// exactly one temporary assignment, before the instance is used
	assign, ok := stmts[0].(*sil.LocalVarAssign)
	require.True(t, ok, "first statement should assign the temporary, got %s", stmts[0])
	assert.Equal(t, "t_0", assign.Lhs.Name)
	assert.Equal(t, sil.Ref, assign.Lhs.Type)
	if diff := cmp.Diff(sil.Exp(compound), assign.Rhs); diff != "" {
		t.Errorf("temporary rhs (-want +got):\n%s", diff)
	}

	inhale, ok := stmts[1].(*sil.Inhale)
	require.True(t, ok)
	require.Len(t, inhale.Acc.Loc.Args, 1)
	assert.Equal(t, "t_0", inhale.Acc.Loc.Args[0].(*sil.LocalVar).Name)
}

func TestAllVariableArgumentsEmitNoTemporaries(t *testing.T) {
	x := refVar("x")
	prog, _ := buildOne(t, Config{}, &sil.Inhale{Acc: accP(x)})

	for _, st := range prog.Methods[0].Body.Stmts {
		if assign, ok := st.(*sil.LocalVarAssign); ok {
			assert.NotEqual(t, "t", assign.Lhs.Name[:1], "unexpected temporary %s", assign.Lhs.Name)
		}
	}
}

func TestBranchIsolation(t *testing.T) {
	thenStmt := &sil.LocalVarAssign{Lhs: intVar("a"), Rhs: &sil.IntLit{Val: 1}}
	elseStmt := &sil.LocalVarAssign{Lhs: intVar("b"), Rhs: &sil.IntLit{Val: 2}}
	cond := &sil.BinExp{Op: sil.OpLt, Left: intVar("a"), Right: intVar("b")}

	prog, _ := buildOne(t, Config{}, &sil.If{
		Cond: cond,
		Then: &sil.Seqn{Stmts: []sil.Stmt{thenStmt}},
		Els:  &sil.Seqn{Stmts: []sil.Stmt{elseStmt}},
	})

	stmts := prog.Methods[0].Body.Stmts
	require.Len(t, stmts, 1, "parent scope should receive exactly one conditional")

	iff, ok := stmts[0].(*sil.If)
	require.True(t, ok)
	if diff := cmp.Diff([]sil.Stmt{thenStmt}, iff.Then.Stmts); diff != "" {
		t.Errorf("then branch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]sil.Stmt{elseStmt}, iff.Els.Stmts); diff != "" {
		t.Errorf("else branch (-want +got):\n%s", diff)
	}
}

func TestSnapshotOrderingInhale(t *testing.T) {
	x := refVar("x")
	prog, _ := buildOne(t, Config{}, &sil.Inhale{Acc: accP(x)})
	stmts := prog.Methods[0].Body.Stmts

	// inhale and unfold first, marker strictly last
	require.GreaterOrEqual(t, len(stmts), 3)
	_, ok := stmts[0].(*sil.Inhale)
	assert.True(t, ok, "got %s", stmts[0])
	_, ok = stmts[1].(*sil.Unfold)
	assert.True(t, ok, "got %s", stmts[1])
	_, ok = stmts[len(stmts)-1].(*sil.LabelStmt)
	assert.True(t, ok, "got %s", stmts[len(stmts)-1])
}

func TestSnapshotOrderingExhale(t *testing.T) {
	x := refVar("x")
	prog, _ := buildOne(t, Config{}, &sil.Exhale{Acc: accP(x)})
	stmts := prog.Methods[0].Body.Stmts

	// marker strictly before fold and exhale
	require.GreaterOrEqual(t, len(stmts), 3)
	_, ok := stmts[len(stmts)-2].(*sil.Fold)
	assert.True(t, ok, "got %s", stmts[len(stmts)-2])
	_, ok = stmts[len(stmts)-1].(*sil.Exhale)
	assert.True(t, ok, "got %s", stmts[len(stmts)-1])
	_, ok = stmts[len(stmts)-3].(*sil.LabelStmt)
	assert.True(t, ok, "got %s", stmts[len(stmts)-3])
}

func TestEndToEndInhale(t *testing.T) {
	x := refVar("x")
	prog, ctx := buildOne(t, Config{}, &sil.Inhale{Acc: accP(x)})

	want := []sil.Stmt{
		&sil.Inhale{Acc: accP(x)},
		&sil.Unfold{Acc: accP(x)},
		&sil.LocalVarAssign{Lhs: &sil.LocalVar{Name: "l_0_x", Type: sil.Ref}, Rhs: x},
		&sil.LocalVarAssign{
			Lhs: &sil.LocalVar{Name: "l_0_0", Type: sil.Bool},
			Rhs: &sil.BinExp{Op: sil.OpNeq, Left: x, Right: &sil.NullLit{}},
		},
		&sil.LabelStmt{Name: "l_0"},
	}
	if diff := cmp.Diff(want, prog.Methods[0].Body.Stmts); diff != "" {
		t.Errorf("instrumented block (-want +got):\n%s", diff)
	}

	require.Equal(t, []string{"l_0"}, ctx.Labels())
	recs := ctx.At("l_0")
	require.Len(t, recs, 1)
	assert.Equal(t, Inhaled, recs[0].Role)
	assert.Equal(t, "P", recs[0].Instance.Predicate)
	require.Len(t, recs[0].Instance.Args, 1)
	assert.Equal(t, "x", recs[0].Instance.Args[0].Name)
}

func TestEndToEndExhaleWithTemporary(t *testing.T) {
	y := refVar("y")
	compound := &sil.FuncApp{Name: "f", Args: []sil.Exp{y}, Return: sil.Ref}
	prog, ctx := buildOne(t, Config{}, &sil.Exhale{Acc: accP(compound)})

	tmp := &sil.LocalVar{Name: "t_0", Type: sil.Ref}
	want := []sil.Stmt{
		&sil.LocalVarAssign{Lhs: tmp, Rhs: compound},
		&sil.LocalVarAssign{Lhs: &sil.LocalVar{Name: "l_0_t_0", Type: sil.Ref}, Rhs: tmp},
		&sil.LocalVarAssign{
			Lhs: &sil.LocalVar{Name: "l_0_0", Type: sil.Bool},
			Rhs: &sil.BinExp{Op: sil.OpNeq, Left: tmp, Right: &sil.NullLit{}},
		},
		&sil.LabelStmt{Name: "l_0"},
		&sil.Fold{Acc: accP(tmp)},
		&sil.Exhale{Acc: accP(tmp)},
	}
	if diff := cmp.Diff(want, prog.Methods[0].Body.Stmts); diff != "" {
		t.Errorf("instrumented block (-want +got):\n%s", diff)
	}

	recs := ctx.At("l_0")
	require.Len(t, recs, 1)
	assert.Equal(t, Exhaled, recs[0].Role)
	require.Len(t, recs[0].Instance.Args, 1)
	assert.Equal(t, "t_0", recs[0].Instance.Args[0].Name)
}

func TestBranchExplicitBoolSnapshot(t *testing.T) {
	x := refVar("x")
	prog, _ := buildOne(t, Config{BranchExplicitBools: true}, &sil.Inhale{Acc: accP(x)})
	stmts := prog.Methods[0].Body.Stmts

	// the boolean atom is captured through an explicit conditional
	var conds []*sil.If
	for _, st := range stmts {
		if iff, ok := st.(*sil.If); ok {
			conds = append(conds, iff)
		}
	}
	require.Len(t, conds, 1)
	iff := conds[0]
	require.Len(t, iff.Then.Stmts, 1)
	require.Len(t, iff.Els.Stmts, 1)

	thn := iff.Then.Stmts[0].(*sil.LocalVarAssign)
	els := iff.Els.Stmts[0].(*sil.LocalVarAssign)
	assert.Equal(t, thn.Lhs.Name, els.Lhs.Name)
	assert.Equal(t, "true", thn.Rhs.String())
	assert.Equal(t, "false", els.Rhs.String())

	// the reference-typed argument still snapshots directly
	assign, ok := stmts[2].(*sil.LocalVarAssign)
	require.True(t, ok)
	assert.Equal(t, "l_0_x", assign.Lhs.Name)
}

func TestProcedureCallIsUnsupported(t *testing.T) {
	b := NewBuilder(testProgram(), Config{})
	templates := []*sil.Seqn{{Stmts: []sil.Stmt{
		&sil.MethodCall{Method: "helper"},
	}}}

	prog, ctx, err := b.BasicCheck(templates, testHypothesis())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedStmt))
	assert.Nil(t, prog)
	assert.Nil(t, ctx)
}

func TestUnknownPredicateAbortsBuild(t *testing.T) {
	x := refVar("x")
	b := NewBuilder(testProgram(), Config{})
	templates := []*sil.Seqn{{Stmts: []sil.Stmt{
		&sil.Inhale{Acc: &sil.AccessPredicate{
			Loc:  &sil.PredAccess{Predicate: "Unknown", Args: []sil.Exp{x}},
			Perm: &sil.FullPerm{},
		}},
	}}}

	prog, ctx, err := b.BasicCheck(templates, testHypothesis())
	require.Error(t, err)
	assert.True(t, errors.Is(err, infer.ErrUnknownPredicate))
	assert.Nil(t, prog)
	assert.Nil(t, ctx)
}

func TestBasicCheckResetsSessionState(t *testing.T) {
	x := refVar("x")
	b := NewBuilder(testProgram(), Config{})
	templates := []*sil.Seqn{{Stmts: []sil.Stmt{&sil.Inhale{Acc: accP(x)}}}}

	_, ctx1, err := b.BasicCheck(templates, testHypothesis())
	require.NoError(t, err)
	_, ctx2, err := b.BasicCheck(templates, testHypothesis())
	require.NoError(t, err)

	// a fresh session starts its namespaces over
	assert.Equal(t, ctx1.Labels(), ctx2.Labels())
}

func TestNestedConditionals(t *testing.T) {
	x := refVar("x")
	cond := &sil.BinExp{Op: sil.OpEq, Left: x, Right: &sil.NullLit{}}

	inner := &sil.If{
		Cond: cond,
		Then: &sil.Seqn{Stmts: []sil.Stmt{&sil.Inhale{Acc: accP(x)}}},
		Els:  &sil.Seqn{Stmts: []sil.Stmt{&sil.Exhale{Acc: accP(x)}}},
	}
	outer := &sil.If{
		Cond: cond,
		Then: &sil.Seqn{Stmts: []sil.Stmt{inner}},
		Els:  &sil.Seqn{Stmts: []sil.Stmt{}},
	}

	prog, ctx := buildOne(t, Config{}, outer)

	// both uses snapshot under distinct labels despite the nesting
	require.Equal(t, 2, ctx.Len())
	assert.NotEqual(t, ctx.Labels()[0], ctx.Labels()[1])

	stmts := prog.Methods[0].Body.Stmts
	require.Len(t, stmts, 1)
	got, ok := stmts[0].(*sil.If)
	require.True(t, ok)
	require.Len(t, got.Then.Stmts, 1)
	_, ok = got.Then.Stmts[0].(*sil.If)
	require.True(t, ok)
	assert.Empty(t, got.Els.Stmts)
}
