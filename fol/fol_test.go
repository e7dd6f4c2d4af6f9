package fol

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/drs"
	"github.com/npillmayer/logos/format"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	var cases = []struct {
		input    string
		contains []string
	}{
		{"John runs.", []string{"Run(e)", "Agent(e, J)"}},
		{"Every dog barks.", []string{"∀x", "→"}},
		{"Does John run?", []string{"?"}},
	}
	for _, c := range cases {
		out, err := Compile(c.input)
		if err != nil {
			t.Errorf("%q: %v", c.input, err)
			continue
		}
		t.Logf("%s ⇒ %s", c.input, out)
		for _, s := range c.contains {
			if !strings.Contains(out, s) {
				t.Errorf("%q: expected %q in %s", c.input, s, out)
			}
		}
	}
}

func TestCompileNotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	out, err := CompileSimple("Every dog barks.")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "forall x") || strings.ContainsAny(out, "∀→") {
		t.Errorf("expected ASCII formula, got %s", out)
	}
	out, err = CompileKripke("John must run.")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Forall w") {
		t.Errorf("expected quantification over worlds, got %s", out)
	}
	out, err = CompileWithOptions("John runs.", Options{Format: format.LaTeX})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\\exists") {
		t.Errorf("expected LaTeX quantifier, got %s", out)
	}
}

func TestCompileMultipleSentences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	out, err := Compile("A man runs. He sings.")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "1) ") || !strings.Contains(out, "\n2) ") {
		t.Errorf("expected numbered formulas, got %s", out)
	}
}

func TestCompileWithDiscourse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	ws, in := drs.NewWorldState(), intern.New()
	if _, err := CompileWithDiscourse("A man runs.", ws, in); err != nil {
		t.Fatal(err)
	}
	out, err := CompileWithDiscourse("He sings.", ws, in)
	if err != nil {
		t.Fatalf("expected pronoun to find referent of earlier sentence, got %v", err)
	}
	t.Logf("He sings. ⇒ %s", out)
}

func TestCompileDiscourse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	out, err := CompileDiscourse([]string{"John runs.", "Mary sings."})
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("discourse ⇒ %s", out)
	for _, s := range []string{"Run(e1)", "Sing(e2)", "Precedes(e1, e2)"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %q in %s", s, out)
		}
	}
	if strings.Index(out, "Run(e1)") > strings.Index(out, "Sing(e2)") {
		t.Errorf("expected sentences in order of mention: %s", out)
	}
}

func TestCompileAmbiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	readings, err := CompileAmbiguous("John runs.")
	if err != nil {
		t.Fatal(err)
	}
	if len(readings) != 1 {
		t.Errorf("expected a single reading without attaching preposition, got %v", readings)
	}
}

func TestCompileForest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	if readings := CompileForest("John runs."); len(readings) != 1 {
		t.Errorf("expected one reading for unambiguous input, got %v", readings)
	}
	for _, input := range []string{
		"The men lifted the piano.",
		"John may run.",
		"John saw the man with the telescope.",
	} {
		readings := CompileForest(input)
		if len(readings) > MaxForestReadings {
			t.Errorf("%q: forest exceeds %d readings: %d", input, MaxForestReadings, len(readings))
		}
		seen := make(map[string]bool)
		for _, r := range readings {
			if seen[r] {
				t.Errorf("%q: duplicate reading %s", input, r)
			}
			seen[r] = true
		}
		t.Logf("%q: %d readings", input, len(readings))
	}
}

func TestCompileAllScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	readings, err := CompileAllScopes("Every woman loves a man.")
	if err != nil {
		t.Fatal(err)
	}
	if len(readings) != 2 {
		t.Fatalf("expected 2 scope readings, got %d: %v", len(readings), readings)
	}
	if readings[0] == readings[1] {
		t.Errorf("expected distinct readings, got %s twice", readings[0])
	}
	if strings.Index(readings[0], "∀") > strings.Index(readings[0], "∃") {
		t.Errorf("expected surface order first, got %s", readings[0])
	}
}

func TestCompileAllScopesLowering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	readings, err := CompileAllScopesWithOptions("Every man must run.", Options{Format: format.Kripke})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range readings {
		if !strings.Contains(r, "Forall w") {
			t.Errorf("expected every reading lowered to worlds, got %s", r)
		}
	}
	readings, err = CompileAllScopes("John seeks a unicorn.")
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, r := range readings {
		if seen[r] {
			t.Errorf("duplicate scope reading %s", r)
		}
		seen[r] = true
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	in, a := intern.New(), ast.NewArena()
	dog := func(v string) ast.ExprID {
		x := in.Intern(v)
		return a.Quant(ast.Universal, x, a.Pred(in.Intern("Dog"), a.Var(x)), 0)
	}
	fx1, err := fingerprint(a, in, dog("x"))
	if err != nil {
		t.Fatal(err)
	}
	fx2, _ := fingerprint(a, in, dog("x"))
	fy, _ := fingerprint(a, in, dog("y"))
	if fx1 != fx2 {
		t.Errorf("expected equal trees to share a fingerprint")
	}
	if fx1 == fy {
		t.Errorf("expected different variables to change the fingerprint")
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	for _, input := range []string{
		"Every woman loves a man.",
		"A man runs. He sings.",
		"If John had run, Mary would have sung.",
	} {
		first, err := Compile(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if second, _ := Compile(input); second != first {
			t.Errorf("%q: compiled differently\n%s\n%s", input, first, second)
		}
	}
}

func TestCompileEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	for _, input := range []string{"", "   ", "\n"} {
		var perr *parser.ParseError
		if _, err := Compile(input); !errors.As(err, &perr) {
			t.Errorf("%q: expected parse error, got %v", input, err)
		}
		if _, err := CompileAllScopes(input); err == nil {
			t.Errorf("%q: expected scope enumeration to fail", input)
		}
		if readings := CompileForest(input); len(readings) != 0 {
			t.Errorf("%q: expected no readings, got %v", input, readings)
		}
	}
}

func TestCompileSingleSentenceConjunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	for _, input := range []string{"John runs and Mary sings.", "John murdered Mary."} {
		out, err := Compile(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if strings.Contains(out, "1) ") || strings.Contains(out, "\n") {
			t.Errorf("%q: expected a single formula, got %s", input, out)
		}
	}
}

func TestCompilePerfect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	var cases = []struct {
		input    string
		contains []string
	}{
		{"John has run.", []string{"Run(e)", "Perf"}},
		{"John had run.", []string{"Run(e)", "Precedes(r1, S)"}},
		{"Mary has sung.", []string{"Sing(e)"}},
		{"John has eaten.", []string{"Eat(e)"}},
		{"If John had eaten, Mary would have sung.", []string{"∃e(Eat(e)", "□→"}},
	}
	for _, c := range cases {
		out, err := Compile(c.input)
		if err != nil {
			t.Errorf("%q: %v", c.input, err)
			continue
		}
		t.Logf("%s ⇒ %s", c.input, out)
		for _, s := range c.contains {
			if !strings.Contains(out, s) {
				t.Errorf("%q: expected %q in %s", c.input, s, out)
			}
		}
		if strings.Count(out, "Precedes(e, r1)") > 1 {
			t.Errorf("%q: duplicate time constraint in %s", c.input, out)
		}
	}
}

func TestCompileWithDiscourseConstraints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	ws, in := drs.NewWorldState(), intern.New()
	if _, err := CompileWithDiscourse("John had run.", ws, in); err != nil {
		t.Fatal(err)
	}
	out, err := CompileWithDiscourse("Mary sings.", ws, in)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Precedes") {
		t.Errorf("expected constraints of earlier sentences not to be repeated, got %s", out)
	}
}

const socrates = `## Theorem: Socrates_Mortality
Given: All men are mortal.
Given: Socrates is a man.
Prove: Socrates is mortal.
Proof: Auto.
`

func TestCompileTheorem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	out, err := CompileTheorem(socrates)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Theorem 'Socrates_Mortality' Proved!\n") {
		t.Errorf("unexpected result %s", out)
	}
	if !strings.Contains(out, "[ModusPonens] mortal(Socrates)") {
		t.Errorf("expected derivation by modus ponens, got\n%s", out)
	}
}

func TestCompileTheoremErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	_, err := CompileTheorem("John runs.")
	var perr *parser.ParseError
	if !errors.As(err, &perr) || perr.Kind != parser.Custom {
		t.Fatalf("expected custom parse error, got %v", err)
	}
	if perr.Error() != "No theorem block found in input" {
		t.Errorf("unexpected message %q", perr.Error())
	}
	unprovable := strings.Replace(socrates, "Socrates is a man.", "Plato is a man.", 1)
	_, err = CompileTheorem(unprovable)
	if !errors.As(err, &perr) || !strings.HasPrefix(perr.Error(), "Theorem 'Socrates_Mortality' failed.") {
		t.Errorf("expected failed proof, got %v", err)
	}
}

func TestCompileParseError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	_, err := Compile("John is taller Mary.")
	var perr *parser.ParseError
	if !errors.As(err, &perr) || perr.Kind != parser.ExpectedThan {
		t.Errorf("expected ExpectedThan, got %v", err)
	}
}

func TestCompileAST(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.fol")
	defer teardown()
	//
	a, err := CompileAST("Every dog barks.", Options{})
	if err != nil {
		t.Fatal(err)
	}
	root := a.Dump()
	if root.Label != "Quantifier" {
		t.Errorf("expected quantifier at root, got %s", root.Label)
	}
	n := 0
	root.Walk(func(_ *ast.DumpNode, _ int) { n++ })
	if n < 3 {
		t.Errorf("expected a tree of several nodes, got %d", n)
	}
}
