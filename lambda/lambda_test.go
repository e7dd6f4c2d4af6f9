package lambda

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type fixture struct {
	a  *ast.Arena
	in *intern.Interner
}

func newFixture() fixture {
	return fixture{a: ast.NewArena(), in: intern.New()}
}

func (f fixture) sym(s string) intern.Symbol {
	return f.in.Intern(s)
}

func (f fixture) pred(name string, vars ...string) ast.ExprID {
	args := make([]ast.TermID, len(vars))
	for i, v := range vars {
		args[i] = f.a.Var(f.sym(v))
	}
	return f.a.Pred(f.sym(name), args...)
}

func (f fixture) sexpr(id ast.ExprID) string {
	return f.a.Sexpr(f.in, id)
}

// chain builds a prefix of existential quantifiers over variables vars,
// quantifier i living in island islands[i], around a relation of all vars.
func (f fixture) chain(vars []string, islands []int) ast.ExprID {
	body := f.pred("R", vars...)
	for i := len(vars) - 1; i >= 0; i-- {
		restr := f.pred("P"+vars[i], vars[i])
		body = f.a.Quant(ast.Existential, f.sym(vars[i]), f.a.Binary(restr, ast.And, body), islands[i])
	}
	return body
}

func TestScopeCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	var cases = []struct {
		vars    []string
		islands []int
		count   int
	}{
		{[]string{"x"}, []int{0}, 1},
		{[]string{"x", "y"}, []int{0, 0}, 2},
		{[]string{"x", "y", "z"}, []int{0, 0, 0}, 6},
		{[]string{"x", "y"}, []int{0, 1}, 1},
		{[]string{"x", "y", "z", "w"}, []int{0, 0, 1, 1}, 4},
		{[]string{"x", "y", "z", "w"}, []int{1, 0, 0, 0}, 6},
	}
	for i, c := range cases {
		f := newFixture()
		it := EnumerateScopings(f.chain(c.vars, c.islands), f.a)
		if it.Len() != c.count {
			t.Errorf("case %d: expected %d readings announced, have %d", i, c.count, it.Len())
		}
		readings := it.Collect()
		if len(readings) != c.count {
			t.Errorf("case %d: expected %d readings, got %d", i, c.count, len(readings))
		}
		if it.Len() != 0 {
			t.Errorf("case %d: iterator not exhausted, %d left", i, it.Len())
		}
		seen := map[string]bool{}
		for _, r := range readings {
			seen[f.sexpr(r)] = true
		}
		if len(seen) != c.count {
			t.Errorf("case %d: expected %d distinct readings, got %d", i, c.count, len(seen))
		}
	}
}

func TestScopeSurfaceOrderFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	f := newFixture()
	x, y := f.sym("x"), f.sym("y")
	inner := f.a.Quant(ast.Existential, y, f.a.Binary(f.pred("Man", "y"), ast.And, f.pred("Love", "x", "y")), 0)
	expr := f.a.Quant(ast.Universal, x, f.a.Binary(f.pred("Woman", "x"), ast.If, inner), 0)
	readings := EnumerateScopings(expr, f.a).Collect()
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(readings))
	}
	if !f.a.Equal(expr, readings[0]) {
		t.Errorf("expected surface scope first, got %s", f.sexpr(readings[0]))
	}
	wide := f.a.Expr(readings[1]).(ast.Quantifier)
	if wide.Kind != ast.Existential || wide.Var != y {
		t.Errorf("expected ∃y outermost in inverse reading, got %s", f.sexpr(readings[1]))
	}
	if b := f.a.Expr(wide.Body).(ast.BinaryOp); b.Op != ast.And {
		t.Errorf("expected existential to keep its conjunction, got %s", b.Op)
	}
	narrow := f.a.Expr(f.a.Expr(wide.Body).(ast.BinaryOp).Right).(ast.Quantifier)
	if b := f.a.Expr(narrow.Body).(ast.BinaryOp); b.Op != ast.If {
		t.Errorf("expected universal to keep its implication, got %s", b.Op)
	}
}

func TestScopeWithoutQuantifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	f := newFixture()
	e := f.a.Pred(f.sym("Run"), f.a.Const(f.sym("John")))
	it := EnumerateScopings(e, f.a)
	r, ok := it.Next()
	if !ok || r != e {
		t.Errorf("expected the expression itself as only reading")
	}
	if _, ok := it.Next(); ok {
		t.Errorf("expected a single reading")
	}
}

func TestScopeNegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	f := newFixture()
	// ∀x(Dog(x) → ¬Bark(x)): "every dog does not bark" is ambiguous
	e := f.a.Quant(ast.Universal, f.sym("x"), f.a.Binary(f.pred("Dog", "x"), ast.If,
		f.a.Not(f.pred("Bark", "x"))), 0)
	readings := EnumerateScopings(e, f.a).Collect()
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(readings))
	}
	if _, ok := f.a.Expr(readings[1]).(ast.UnaryOp); !ok {
		t.Errorf("expected wide negation in second reading, got %s", f.sexpr(readings[1]))
	}
}

func TestIntensionalReadings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	f := newFixture()
	seek := func(theme ast.TermID) ast.ExprID {
		return f.a.NewExpr(ast.NeoEvent{
			EventVar: f.sym("e"),
			Verb:     f.sym("Seek"),
			Roles: []ast.Role{
				{Role: ast.Agent, Term: f.a.Const(f.sym("John"))},
				{Role: ast.Theme, Term: theme},
			},
		})
	}
	deDicto := seek(f.a.NewTerm(ast.Intension{Predicate: f.sym("Unicorn")}))
	readings := EnumerateIntensionalReadings(deDicto, f.a, f.in)
	if len(readings) != 2 || readings[1] != deDicto {
		t.Fatalf("expected de re and de dicto readings, got %d", len(readings))
	}
	q, ok := f.a.Expr(readings[0]).(ast.Quantifier)
	if !ok || q.Kind != ast.Existential {
		t.Errorf("expected existential de re reading, got %s", f.sexpr(readings[0]))
	}
	//
	x := f.sym("x")
	deRe := f.a.Quant(ast.Existential, x, f.a.Binary(f.pred("Unicorn", "x"), ast.And,
		seek(f.a.Var(x))), 0)
	readings = EnumerateIntensionalReadings(deRe, f.a, f.in)
	if len(readings) != 2 || readings[0] != deRe {
		t.Fatalf("expected de re and de dicto readings, got %d", len(readings))
	}
	ev, ok := f.a.Expr(readings[1]).(ast.NeoEvent)
	if !ok {
		t.Fatalf("expected bare event as de dicto reading, got %s", f.sexpr(readings[1]))
	}
	theme, _ := ev.RoleTerm(ast.Theme)
	if _, ok := f.a.Term(theme).(ast.Intension); !ok {
		t.Errorf("expected ^Unicorn as theme")
	}
	//
	love := f.a.Pred(f.sym("Love"), f.a.Const(f.sym("John")), f.a.Const(f.sym("Mary")))
	if readings = EnumerateIntensionalReadings(love, f.a, f.in); len(readings) != 1 {
		t.Errorf("expected a single reading for a transparent verb, got %d", len(readings))
	}
}

func TestBetaReduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	f := newFixture()
	x, y := f.sym("x"), f.sym("y")
	run := f.a.NewExpr(ast.Lambda{Var: x, Body: f.pred("Run", "x")})
	r := BetaReduce(f.a.NewExpr(ast.App{Fn: LiftProperName(f.sym("John"), f.a, f.in), Arg: run}), f.a)
	want := f.a.Pred(f.sym("Run"), f.a.Const(f.sym("John")))
	if diff := cmp.Diff(f.sexpr(want), f.sexpr(r)); diff != "" {
		t.Errorf("lifted proper name differs (-want +got):\n%s", diff)
	}
	//
	bark := f.a.NewExpr(ast.Lambda{Var: y, Body: f.pred("Bark", "y")})
	every := LiftQuantifier(ast.Universal, f.sym("Dog"), f.a, f.in)
	r = BetaReduce(f.a.NewExpr(ast.App{Fn: every, Arg: bark}), f.a)
	want = f.a.Quant(ast.Universal, x, f.a.Binary(f.pred("Dog", "x"), ast.If, f.pred("Bark", "x")), 0)
	if diff := cmp.Diff(f.sexpr(want), f.sexpr(r)); diff != "" {
		t.Errorf("lifted quantifier differs (-want +got):\n%s", diff)
	}
}

func TestSubstitutionRespectsOpacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	f := newFixture()
	c := f.sym("c")
	belief := f.a.NewExpr(ast.Intensional{Operator: f.sym("Believe"), Content: f.pred("Fly", "c")})
	e := f.a.And(f.pred("Fly", "c"), belief)
	superman := f.a.NewExpr(ast.Atom{Name: f.sym("Superman")})
	transparent := Substitute(e, c, superman, f.a)
	opaque := SubstituteRespectingOpacity(e, c, superman, f.a)
	b := f.a.Expr(opaque).(ast.BinaryOp)
	if b.Right != belief {
		t.Errorf("expected belief context untouched, got %s", f.sexpr(b.Right))
	}
	if f.a.Equal(transparent, opaque) {
		t.Errorf("expected plain substitution to enter the belief context")
	}
}

func TestEventSemantics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lambda")
	defer teardown()
	//
	f := newFixture()
	john, book := f.a.Const(f.sym("John")), f.a.Const(f.sym("Book"))
	e := ToEventSemantics(f.a.Pred(f.sym("Read"), john, book), f.a, f.in)
	e = ApplyAdverb(e, f.sym("slowly"), f.a, f.in)
	var preds []string
	f.a.Inspect(e, func(_ ast.ExprID, n ast.Expr) bool {
		if p, ok := n.(ast.Predicate); ok {
			preds = append(preds, f.in.Resolve(p.Name))
		}
		return true
	})
	if diff := cmp.Diff([]string{"Read", "Agent", "Theme", "Slowly"}, preds); diff != "" {
		t.Errorf("event predicates differ (-want +got):\n%s", diff)
	}
}
