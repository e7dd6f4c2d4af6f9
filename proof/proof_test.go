package proof

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	x        = Var("x")
	socrates = Const("Socrates")
)

func TestSocrates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.proof")
	defer teardown()
	//
	e := NewEngine()
	e.AddAxiom(ForAll("x", Implies(Pred("man", x), Pred("mortal", x))))
	e.AddAxiom(Pred("man", socrates))
	d, err := e.Prove(Pred("mortal", socrates))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Rule{ModusPonens, Axiom, PremiseMatch}, d.Rules()); diff != "" {
		t.Errorf("unexpected derivation (-want +got):\n%s", diff)
	}
	if major := d.Premise(0).Conclusion.String(); major != "(man(Socrates) → mortal(Socrates))" {
		t.Errorf("expected instantiated major premise, got %s", major)
	}
	t.Logf("\n%s", d)
}

func TestSyllogismChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.proof")
	defer teardown()
	//
	e := NewEngine()
	e.AddAxiom(ForAll("x", Implies(Pred("greek", x), Pred("man", x))))
	e.AddAxiom(ForAll("x", Implies(Pred("man", x), Pred("mortal", x))))
	e.AddAxiom(Pred("greek", socrates))
	d, err := e.Prove(Pred("mortal", socrates))
	if err != nil {
		t.Fatal(err)
	}
	if d.Depth() != 3 {
		t.Errorf("expected proof of depth 3, got %d:\n%s", d.Depth(), d)
	}
	if _, err := e.Prove(Pred("mortal", Const("Zeus"))); !errors.Is(err, ErrNotProved) {
		t.Errorf("expected mortality of Zeus to be unprovable, got %v", err)
	}
}

func TestPropositionalRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.proof")
	defer teardown()
	//
	rain, wet, sun := Atom("rain"), Atom("wet"), Atom("sun")
	var cases = []struct {
		axioms []*Expr
		goal   *Expr
		rule   Rule
	}{
		{[]*Expr{Or(rain, sun), Not(rain)}, sun, DisjunctiveSyllogism},
		{[]*Expr{Or(rain, sun), Not(sun)}, rain, DisjunctiveSyllogism},
		{[]*Expr{Implies(rain, wet), Not(wet)}, Not(rain), ModusTollens},
		{[]*Expr{Implies(rain, wet), rain}, wet, ModusPonens},
		{[]*Expr{Iff(rain, wet), wet}, rain, ModusPonens},
		{[]*Expr{rain, sun}, And(rain, sun), ConjunctionIntro},
	}
	for i, c := range cases {
		e := NewEngine()
		for _, ax := range c.axioms {
			e.AddAxiom(ax)
		}
		d, err := e.Prove(c.goal)
		if err != nil {
			t.Errorf("case %d: %v", i, err)
			continue
		}
		if d.Rule != c.rule {
			t.Errorf("case %d: expected %s, got %s", i, c.rule, d.Rule)
		}
	}
}

func TestLeibniz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.proof")
	defer teardown()
	//
	clark, superman := Const("Clark"), Const("Superman")
	e := NewEngine()
	e.AddAxiom(Ident(clark, superman))
	e.AddAxiom(Pred("fly", superman))
	d, err := e.Prove(Pred("fly", clark))
	if err != nil {
		t.Fatal(err)
	}
	if d.Rule != IdentityRewrite {
		t.Errorf("expected identity rewrite, got %s", d.Rule)
	}
	if _, err = e.Prove(Ident(clark, clark)); err != nil {
		t.Errorf("expected reflexivity, got %v", err)
	}
}

func TestExistentialIntro(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.proof")
	defer teardown()
	//
	e := NewEngine()
	e.AddAxiom(Pred("love", Const("John"), Const("Mary")))
	d, err := e.Prove(Exists("y", Pred("love", Const("John"), Var("y"))))
	if err != nil {
		t.Fatal(err)
	}
	if d.Rule != ExistentialIntro {
		t.Errorf("expected existential introduction, got %s", d.Rule)
	}
	if witness := d.Premise(0).Conclusion.String(); witness != "love(John, Mary)" {
		t.Errorf("expected Mary as witness, got %s", witness)
	}
}

func TestDepthBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.proof")
	defer teardown()
	//
	e := NewEngine()
	e.AddAxiom(ForAll("x", Implies(Pred("p", x), Pred("q", x))))
	e.AddAxiom(ForAll("x", Implies(Pred("q", x), Pred("p", x))))
	if _, err := e.Prove(Pred("p", socrates)); !errors.Is(err, ErrNotProved) {
		t.Errorf("expected cyclic rules to fail finitely, got %v", err)
	}
	if _, err := e.Prove(Unsupported("Question")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported goal to be rejected, got %v", err)
	}
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.proof")
	defer teardown()
	//
	a, in := ast.NewArena(), intern.New()
	sym := in.Intern
	love := a.NewExpr(ast.NeoEvent{
		EventVar: sym("e"),
		Verb:     sym("Love"),
		Roles: []ast.Role{
			{Role: ast.Theme, Term: a.Const(sym("Mary"))},
			{Role: ast.Agent, Term: a.Const(sym("John"))},
		},
	})
	past := a.NewExpr(ast.Temporal{Op: ast.Past, Body: love})
	if got := Convert(past, a, in).String(); got != "love(John, Mary)" {
		t.Errorf("expected flattened event, got %s", got)
	}
	xs := sym("x")
	all := a.Quant(ast.Universal, xs, a.Binary(a.Pred(sym("Man"), a.Var(xs)), ast.If,
		a.Pred(sym("Mortal"), a.Var(xs))), 0)
	if got := Convert(all, a, in).String(); got != "∀x((man(x) → mortal(x)))" {
		t.Errorf("unexpected conversion %s", got)
	}
	q := a.NewExpr(ast.YesNoQuestion{Body: love})
	if c := Convert(q, a, in); c.Supported() || !strings.Contains(c.String(), "YesNoQuestion") {
		t.Errorf("expected question to be unsupported, got %s", c)
	}
}
