package semantics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type fixture struct {
	a  *ast.Arena
	in *intern.Interner
	x  ast.TermID
}

func newFixture() fixture {
	in := intern.New()
	a := ast.NewArena()
	return fixture{a: a, in: in, x: a.Var(in.Intern("x"))}
}

func (f fixture) pred(name string, args ...ast.TermID) ast.ExprID {
	return f.a.Pred(f.in.Intern(name), args...)
}

func (f fixture) sexpr(id ast.ExprID) string {
	return f.a.Sexpr(f.in, id)
}

func TestHypernymChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.semantics")
	defer teardown()
	//
	f := newFixture()
	r := ApplyAxioms(f.pred("Dog", f.x), f.a, f.in, lexicon.Default())
	want := f.a.Conjoin(f.pred("Dog", f.x), f.pred("Mammal", f.x), f.pred("Animal", f.x),
		f.pred("Organism", f.x))
	if diff := cmp.Diff(f.sexpr(want), f.sexpr(r)); diff != "" {
		t.Errorf("hypernym expansion differs (-want +got):\n%s", diff)
	}
}

func TestAxiomIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.semantics")
	defer teardown()
	//
	f := newFixture()
	blorp := f.pred("Blorp", f.x)
	if r := ApplyAxioms(blorp, f.a, f.in, nil); r != blorp {
		t.Errorf("expected unchanged node, got %s", f.sexpr(r))
	}
	e := f.a.Binary(blorp, ast.Or, f.pred("Frob", f.x))
	r := ApplyAxioms(e, f.a, f.in, nil)
	if !f.a.Equal(e, r) {
		t.Errorf("expected structurally identical tree, got %s", f.sexpr(r))
	}
}

func TestCanonicalMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.semantics")
	defer teardown()
	//
	f := newFixture()
	y := f.a.Var(f.in.Intern("y"))
	r := ApplyAxioms(f.pred("Lack", f.x, y), f.a, f.in, nil)
	if want := f.sexpr(f.a.Not(f.pred("Have", f.x, y))); want != f.sexpr(r) {
		t.Errorf("expected %s, got %s", want, f.sexpr(r))
	}
	r = ApplyAxioms(f.pred("Possess", f.x, y), f.a, f.in, nil)
	if want := f.sexpr(f.pred("Have", f.x, y)); want != f.sexpr(r) {
		t.Errorf("expected %s, got %s", want, f.sexpr(r))
	}
}

func TestPrivativeCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.semantics")
	defer teardown()
	//
	f := newFixture()
	r := ApplyAxioms(f.pred("Fake-Gun", f.x), f.a, f.in, nil)
	b, ok := f.a.Expr(r).(ast.BinaryOp)
	if !ok || b.Op != ast.And {
		t.Fatalf("expected conjunction, got %s", f.sexpr(r))
	}
	if _, ok := f.a.Expr(b.Left).(ast.UnaryOp); !ok {
		t.Errorf("expected ¬Gun(x), got %s", f.sexpr(b.Left))
	}
	res := f.a.Expr(b.Right).(ast.Predicate)
	if f.in.Resolve(res.Name) != "Resembles" {
		t.Errorf("expected Resembles, got %s", f.sexpr(b.Right))
	}
	if _, ok := f.a.Term(res.Args[1]).(ast.Intension); !ok {
		t.Errorf("expected intension ^Gun as second argument")
	}
}

func TestVerbEntailment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.semantics")
	defer teardown()
	//
	f := newFixture()
	john := f.a.Const(f.in.Intern("John"))
	ev := f.a.NewExpr(ast.NeoEvent{
		EventVar: f.in.Intern("e"),
		Verb:     f.in.Intern("Murder"),
		Roles:    []ast.Role{{Role: ast.Agent, Term: john}, {Role: ast.Theme, Term: f.x}},
	})
	r := ApplyAxioms(ev, f.a, f.in, nil)
	var verbs []string
	intentional := false
	f.a.Inspect(r, func(_ ast.ExprID, e ast.Expr) bool {
		switch n := e.(type) {
		case ast.NeoEvent:
			verbs = append(verbs, f.in.Resolve(n.Verb))
		case ast.Predicate:
			intentional = intentional || f.in.Resolve(n.Name) == "Intentional"
		}
		return true
	})
	if diff := cmp.Diff([]string{"Murder", "Kill"}, verbs); diff != "" {
		t.Errorf("events differ (-want +got):\n%s", diff)
	}
	if !intentional {
		t.Errorf("expected Intentional(John) in %s", f.sexpr(r))
	}
}

func TestKripkeNecessity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.semantics")
	defer teardown()
	//
	f := newFixture()
	m := f.a.NewExpr(ast.Modal{
		Vector:  ast.ModalVector{Domain: ast.Alethic, Force: 1.0},
		Operand: f.pred("Run", f.x),
	})
	r := ApplyKripkeLowering(m, f.a, f.in)
	q, ok := f.a.Expr(r).(ast.Quantifier)
	if !ok || q.Kind != ast.Universal {
		t.Fatalf("expected ∀w as outermost node, got %s", f.sexpr(r))
	}
	b, ok := f.a.Expr(q.Body).(ast.BinaryOp)
	if !ok || b.Op != ast.If {
		t.Fatalf("expected implication, got %s", f.sexpr(q.Body))
	}
	acc := f.a.Expr(b.Left).(ast.Predicate)
	if f.in.Resolve(acc.Name) != "Accessible_Alethic" {
		t.Errorf("expected accessibility predicate, got %s", f.sexpr(b.Left))
	}
	run := f.a.Expr(b.Right).(ast.Predicate)
	if f.in.Resolve(run.World) != "w1" {
		t.Errorf("expected Run evaluated at w1, got %s", f.sexpr(b.Right))
	}
}

func TestKripkeNestedModals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.semantics")
	defer teardown()
	//
	f := newFixture()
	inner := f.a.NewExpr(ast.Modal{
		Vector:  ast.ModalVector{Domain: ast.Deontic, Force: 0.5},
		Operand: f.pred("Swim", f.x),
	})
	outer := f.a.NewExpr(ast.Modal{
		Vector:  ast.ModalVector{Domain: ast.Alethic, Force: 0.3, Flavor: ast.Epistemic},
		Operand: f.a.And(f.pred("Run", f.x), inner),
	})
	r := ApplyKripkeLowering(outer, f.a, f.in)
	worlds := map[string]bool{}
	f.a.Inspect(r, func(_ ast.ExprID, e ast.Expr) bool {
		if q, ok := e.(ast.Quantifier); ok {
			if q.Kind != ast.Existential {
				t.Errorf("possibility must lower to ∃, got %s", q.Kind)
			}
			worlds[f.in.Resolve(q.Var)] = true
		}
		if p, ok := e.(ast.Predicate); ok && f.in.Resolve(p.Name) == "Swim" {
			if f.in.Resolve(p.World) != "w2" {
				t.Errorf("expected Swim at w2, got %s", f.in.Resolve(p.World))
			}
		}
		return true
	})
	if !worlds["w1"] || !worlds["w2"] {
		t.Errorf("expected fresh worlds w1 and w2, got %v", worlds)
	}
}
