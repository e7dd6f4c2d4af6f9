package ast

import (
	"testing"

	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestArenaAllocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.ast")
	defer teardown()
	//
	in := intern.New()
	a := NewArena()
	x := in.Intern("x")
	dog := a.Pred(in.Intern("Dog"), a.Var(x))
	bark := a.Pred(in.Intern("Bark"), a.Var(x))
	all := a.Quant(Universal, x, a.Binary(dog, If, bark), 0)
	if q, ok := a.Expr(all).(Quantifier); !ok || q.Var != x {
		t.Fatalf("expected quantifier over x, have %v", a.Expr(all))
	}
	exprs, terms := a.Size()
	if exprs != 4 || terms != 2 {
		t.Errorf("expected 4 expressions and 2 terms, have %d/%d", exprs, terms)
	}
	t.Logf("tree = %s", a.Sexpr(in, all))
}

func TestStructuralEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.ast")
	defer teardown()
	//
	in := intern.New()
	a := NewArena()
	j := in.Intern("John")
	p1 := a.Pred(in.Intern("Run"), a.Const(j))
	p2 := a.Pred(in.Intern("Run"), a.Const(j))
	p3 := a.Pred(in.Intern("Run"), a.Var(j))
	if p1 == p2 {
		t.Fatalf("separate allocations should have separate handles")
	}
	if !a.Equal(p1, p2) {
		t.Errorf("expected Run(John) = Run(John)")
	}
	if a.Equal(p1, p3) {
		t.Errorf("constant and variable arguments should differ")
	}
	if !a.Equal(a.Not(p1), a.Not(p2)) {
		t.Errorf("expected ¬Run(John) = ¬Run(John)")
	}
}

func TestConjoinSkipsAbsent(t *testing.T) {
	in := intern.New()
	a := NewArena()
	p := a.Pred(in.Intern("P"))
	if a.Conjoin(NoExpr, p, NoExpr) != p {
		t.Errorf("conjunction with absent parts should yield the single part")
	}
	q := a.Pred(in.Intern("Q"))
	c := a.Conjoin(p, q)
	if b, ok := a.Expr(c).(BinaryOp); !ok || b.Op != And {
		t.Errorf("expected conjunction, have %v", a.Expr(c))
	}
}

func TestDumpTree(t *testing.T) {
	in := intern.New()
	a := NewArena()
	e := in.Intern("e")
	ev := a.NewExpr(NeoEvent{EventVar: e, Verb: in.Intern("Run"),
		Roles: []Role{{Role: Agent, Term: a.Const(in.Intern("John"))}}})
	count := 0
	a.Dump(in, ev).Walk(func(n *DumpNode, level int) {
		count++
	})
	if count != 5 {
		t.Errorf("expected 5 dump nodes, have %d", count)
	}
	if s := a.Sexpr(in, ev); s != "(NeoEvent e Run (Agent John))" {
		t.Errorf("unexpected s-expr %q", s)
	}
}

func TestNodeKindsBesideKindFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.ast")
	defer teardown()
	//
	in := intern.New()
	a := NewArena()
	x := in.Intern("x")
	q := a.Quant(AtLeast, x, a.Pred(in.Intern("Dog"), a.Var(x)), 0)
	f := a.NewExpr(Focus{Kind: Even, Focused: a.Const(in.Intern("John")), Scope: q})
	var cases = []struct {
		id   ExprID
		kind NodeKind
		name string
	}{
		{q, QuantifierNode, "Quantifier"},
		{f, FocusNode, "Focus"},
	}
	for _, c := range cases {
		if k := a.Expr(c.id).NodeKind(); k != c.kind || k.String() != c.name {
			t.Errorf("expected node kind %s, have %s", c.name, k)
		}
	}
	if a.Expr(q).(Quantifier).Kind != AtLeast || a.Expr(f).(Focus).Kind != Even {
		t.Errorf("quantifier and focus kinds should be kept")
	}
}
