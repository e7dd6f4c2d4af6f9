package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegistryLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	reg := NewSymbolRegistry()
	var cases = []struct {
		word, label string
	}{
		{"Dog", "D"},
		{"Duck", "D2"},
		{"dog", "D"},
		{"Deer", "D3"},
		{"Mary", "M"},
		{"DUCK", "D2"},
	}
	for i, c := range cases {
		if l := reg.Label(c.word); l != c.label {
			t.Errorf("case %d: expected %q labelled %s, got %s", i, c.word, c.label, l)
		}
	}
	if reg.Size() != 4 {
		t.Errorf("expected 4 registered words, have %d", reg.Size())
	}
	if f := reg.Full("socrates"); f != "Socrates" {
		t.Errorf("expected full name Socrates, got %s", f)
	}
}

func TestNotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	var cases = []struct {
		got, want string
	}{
		{Unicode.Binary(ast.And, "P", "Q"), "(P ∧ Q)"},
		{Unicode.Binary(ast.If, "P", "Q"), "(P → Q)"},
		{Unicode.Not("P"), "¬P"},
		{Unicode.Quantifier(ast.Universal, 0, "x", "D(x)"), "∀x(D(x))"},
		{Unicode.Quantifier(ast.Cardinal, 3, "x", "D(x)"), "∃=3.x(D(x))"},
		{Unicode.Quantifier(ast.AtLeast, 2, "x", "D(x)"), "∃≥2x(D(x))"},
		{Unicode.Lambda("x", "R(x)"), "λx.R(x)"},
		{Unicode.Counterfactual("P", "Q"), "(P □→ Q)"},
		{Unicode.Modal(ast.ModalVector{Domain: ast.Alethic, Force: 0.5}, "P"), "◇_{0.5} P"},
		{Unicode.Modal(ast.ModalVector{Domain: ast.Deontic, Force: 1.0}, "P"), "O_{1.0} P"},
		{LaTeX.Binary(ast.If, "P", "Q"), "(P \\supset Q)"},
		{LaTeX.Sanitize("x_1"), "x\\_1"},
		{SimpleFOL.Binary(ast.Or, "P", "Q"), "(P | Q)"},
		{SimpleFOL.Modal(ast.ModalVector{Domain: ast.Alethic, Force: 1.0}, "P"), "P"},
		{Kripke.Quantifier(ast.Universal, 0, "w", "P"), "Forall w(P)"},
		{GoBool.Binary(ast.If, "a", "b"), "(!a || b)"},
		{GoBool.Predicate("Taller", []string{"a", "b"}), "(a > b)"},
		{GoBool.Predicate("contains", []string{"s", "x"}), "s.Contains(x)"},
		{GoBool.Comparative("shorter", "a", "b", ""), "(a < b)"},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Errorf("case %d: expected %s, got %s", i, c.want, c.got)
		}
	}
	if f, ok := ByName("LaTeX"); !ok || f.Name() != "latex" {
		t.Errorf("expected to find LaTeX formatter by name")
	}
}

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

func (f fixture) event(verb string, roles ...ast.Role) ast.ExprID {
	return f.a.NewExpr(ast.NeoEvent{EventVar: f.sym("e"), Verb: f.sym(verb), Roles: roles})
}

func (f fixture) role(r ast.ThematicRole, name string) ast.Role {
	return ast.Role{Role: r, Term: f.a.Const(f.sym(name))}
}

func TestTranspileEvent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	f := newFixture()
	e := f.event("love", f.role(ast.Agent, "John"), f.role(ast.Theme, "Mary"))
	var cases = []struct {
		formatter Formatter
		want      string
	}{
		{Unicode, "∃e(Love(e) ∧ Agent(e, J) ∧ Theme(e, M))"},
		{SimpleFOL, "Love(John, Mary)"},
		{GoBool, "Love(John, Mary)"},
	}
	for _, c := range cases {
		got := Transpile(e, f.a, f.in, c.formatter)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s rendering differs (-want +got):\n%s", c.formatter.Name(), diff)
		}
	}
}

func TestTranspileQuantified(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	f := newFixture()
	x := f.sym("x")
	dog := f.a.Pred(f.sym("Dog"), f.a.Var(x))
	bark := f.a.Pred(f.sym("Bark"), f.a.Var(x))
	e := f.a.Quant(ast.Universal, x, f.a.Binary(dog, ast.If, bark), 0)
	tr := NewTranspiler(Unicode, nil, f.a, f.in)
	if got := tr.Transpile(e); got != "∀x((D(x) → B(x)))" {
		t.Errorf("unexpected rendering %s", got)
	}
	if got := tr.Transpile(f.a.Pred(f.sym("Duck"), f.a.Var(x))); got != "D2(x)" {
		t.Errorf("expected registry to disambiguate Duck from Dog, got %s", got)
	}
	if got := Transpile(e, f.a, f.in, SimpleFOL); got != "forall x((Dog(x) -> Bark(x)))" {
		t.Errorf("unexpected simple FOL rendering %s", got)
	}
}

func TestTranspileConditionalEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	f := newFixture()
	rain := f.a.NewExpr(ast.NeoEvent{EventVar: f.sym("e"), Verb: f.sym("rain"), SuppressExistential: true})
	wet := f.a.Pred(f.sym("Wet"), f.a.Const(f.sym("Street")))
	got := Transpile(f.a.Binary(rain, ast.If, wet), f.a, f.in, Unicode)
	if got != "∀e((Rain(e) → W(S)))" {
		t.Errorf("expected antecedent event bound universally, got %s", got)
	}
}

func TestTranspileKripke(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	f := newFixture()
	w := f.sym("w1")
	fly := f.a.NewExpr(ast.Predicate{Name: f.sym("Fly"), Args: []ast.TermID{f.a.Const(f.sym("Bird"))}, World: w})
	e := f.a.Quant(ast.Universal, w, f.a.Binary(f.a.Pred(f.sym("Accessible"),
		f.a.Var(f.sym("w0")), f.a.Var(w)), ast.If, fly), 0)
	got := Transpile(e, f.a, f.in, Kripke)
	if !strings.HasPrefix(got, "Forall w1(") || !strings.Contains(got, "F(B, w1)") {
		t.Errorf("unexpected Kripke rendering %s", got)
	}
}

func TestTranspileDiscourse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	f := newFixture()
	run := f.event("run", f.role(ast.Agent, "John"))
	sing := f.a.NewExpr(ast.NeoEvent{EventVar: f.sym("e2"), Verb: f.sym("sing"),
		Roles: []ast.Role{f.role(ast.Agent, "John")}})
	tr := NewTranspiler(Unicode, nil, f.a, f.in)
	got := tr.TranspileDiscourse(run, sing)
	want := "1) ∃e(Run(e) ∧ Agent(e, J))\n2) ∃e2(Sing(e2) ∧ Agent(e2, J))"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("discourse rendering differs (-want +got):\n%s", diff)
	}
	// a conjunction within one sentence is a single formula
	got = tr.TranspileDiscourse(f.a.Conjoin(run, sing))
	want = "(∃e(Run(e) ∧ Agent(e, J)) ∧ ∃e2(Sing(e2) ∧ Agent(e2, J)))"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sentence conjunction differs (-want +got):\n%s", diff)
	}
}

func TestTranspileTerms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.format")
	defer teardown()
	//
	f := newFixture()
	john, mary := f.a.Const(f.sym("John")), f.a.Const(f.sym("Mary"))
	group := f.a.NewTerm(ast.Group{Members: []ast.TermID{john, mary}})
	lift := f.a.Pred(f.sym("Lift"), group)
	if got := Transpile(lift, f.a, f.in, Unicode); got != "L(J ⊕ M)" {
		t.Errorf("unexpected group rendering %s", got)
	}
	tall := f.a.NewExpr(ast.Comparative{Adjective: f.sym("taller"), Subject: john, Object: mary,
		Difference: ast.NoTerm})
	if got := Transpile(tall, f.a, f.in, Unicode); got != "Taller(J, M)" {
		t.Errorf("unexpected comparative rendering %s", got)
	}
	if got := Transpile(tall, f.a, f.in, GoBool); got != "(John > Mary)" {
		t.Errorf("unexpected Go comparison %s", got)
	}
	seek := f.event("seek", f.role(ast.Agent, "John"),
		ast.Role{Role: ast.Theme, Term: f.a.NewTerm(ast.Intension{Predicate: f.sym("unicorn")})})
	if got := Transpile(seek, f.a, f.in, Unicode); !strings.Contains(got, "Theme(e, ^Unicorn)") {
		t.Errorf("expected intensional theme, got %s", got)
	}
}
