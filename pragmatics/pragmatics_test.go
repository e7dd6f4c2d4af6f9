package pragmatics

import (
	"testing"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/semantics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func question(a *ast.Arena, in *intern.Interner, agent string, force float32) ast.ExprID {
	ev := a.NewExpr(ast.NeoEvent{
		EventVar: in.Intern("e"),
		Verb:     in.Intern("Pass"),
		Roles: []ast.Role{
			{Role: ast.Agent, Term: a.Const(in.Intern(agent))},
			{Role: ast.Theme, Term: a.Const(in.Intern("Salt"))},
		},
	})
	m := a.NewExpr(ast.Modal{Vector: ast.ModalVector{Domain: ast.Alethic, Force: force}, Operand: ev})
	return a.NewExpr(ast.YesNoQuestion{Body: m})
}

func TestIndirectRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.pragmatics")
	defer teardown()
	//
	in := intern.New()
	a := ast.NewArena()
	r := Apply(question(a, in, "you", 0.5), a, in)
	imp, ok := a.Expr(r).(ast.Imperative)
	if !ok {
		t.Fatalf("expected imperative, got %s", a.Sexpr(in, r))
	}
	if _, ok := a.Expr(imp.Action).(ast.NeoEvent); !ok {
		t.Errorf("expected the event as action, got %s", a.Sexpr(in, imp.Action))
	}
}

func TestGenuineQuestionsStay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.pragmatics")
	defer teardown()
	//
	in := intern.New()
	a := ast.NewArena()
	var cases = []struct {
		agent string
		force float32
	}{
		{"John", 0.5}, // ability of a third party
		{"you", 1.0},  // necessity
	}
	for _, c := range cases {
		q := question(a, in, c.agent, c.force)
		if r := Apply(q, a, in); r != q {
			t.Errorf("%s/%.1f: expected question to stay unchanged, got %s", c.agent, c.force,
				a.Sexpr(in, r))
		}
	}
}

func TestLoweredRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.pragmatics")
	defer teardown()
	//
	in := intern.New()
	a := ast.NewArena()
	q := semantics.ApplyKripkeLowering(question(a, in, "you", 0.5), a, in)
	r := Apply(q, a, in)
	if _, ok := a.Expr(r).(ast.Imperative); !ok {
		t.Errorf("expected imperative, got %s", a.Sexpr(in, r))
	}
}
