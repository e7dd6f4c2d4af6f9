package drs

import (
	"errors"
	"testing"

	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFreshVariables(t *testing.T) {
	d := New()
	want := []string{"x", "y", "z", "w", "v", "u", "x1", "y1"}
	for i, w := range want {
		if v := d.FreshVar(); v != w {
			t.Errorf("variable #%d: expected %s, have %s", i, w, v)
		}
	}
}

func TestPronounResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.drs")
	defer teardown()
	//
	in := intern.New()
	d := New()
	d.IntroduceProperName(in.Intern("John"), in.Intern("John"), lexicon.Male)
	d.Introduce(in.Intern("x"), in.Intern("woman"), lexicon.Female, lexicon.Singular)
	d.Introduce(in.Intern("y"), in.Intern("dog"), lexicon.Neuter, lexicon.Singular)
	tests := []struct {
		g    lexicon.Gender
		n    lexicon.Number
		want string
	}{
		{lexicon.Male, lexicon.Singular, "John"},
		{lexicon.Female, lexicon.Singular, "x"},
		{lexicon.Neuter, lexicon.Singular, "y"},
		{lexicon.Unknown, lexicon.Singular, "y"},
	}
	for _, test := range tests {
		v, ok := d.ResolvePronoun(test.g, test.n)
		if !ok || in.Resolve(v) != test.want {
			t.Errorf("pronoun %s/%s: expected %s, have %q", test.g, test.n, test.want, in.Resolve(v))
		}
	}
	if _, ok := d.ResolvePronoun(lexicon.Unknown, lexicon.Plural); ok {
		t.Errorf("plural pronoun must not resolve to singular referents")
	}
	ref, _ := d.Lookup(in.Intern("x"))
	if !ref.UsedByPronoun || !ref.Universal() {
		t.Errorf("referent picked up by a pronoun should get universal force")
	}
}

func TestNegationBlocksAccessibility(t *testing.T) {
	in := intern.New()
	d := New()
	d.EnterBox(NegationScope)
	d.Introduce(in.Intern("x"), in.Intern("car"), lexicon.Neuter, lexicon.Singular)
	if _, ok := d.ResolvePronoun(lexicon.Neuter, lexicon.Singular); !ok {
		t.Errorf("referent should be accessible within its own box")
	}
	d.ExitBox()
	if _, ok := d.ResolvePronoun(lexicon.Neuter, lexicon.Singular); ok {
		t.Errorf("referent inside negation must not be accessible from outside")
	}
}

func TestConditionalAccessibility(t *testing.T) {
	in := intern.New()
	d := New()
	ante := d.EnterBox(ConditionalAntecedent)
	d.Introduce(in.Intern("x"), in.Intern("farmer"), lexicon.Male, lexicon.Singular)
	d.Introduce(in.Intern("y"), in.Intern("donkey"), lexicon.Neuter, lexicon.Singular)
	d.ExitBox()
	cons := d.EnterBox(ConditionalConsequent)
	if !d.IsAccessible(ante, cons) {
		t.Fatalf("antecedent should be accessible from consequent")
	}
	if d.IsAccessible(cons, ante) {
		t.Errorf("consequent must not be accessible from antecedent")
	}
	v, ok := d.ResolvePronoun(lexicon.Neuter, lexicon.Singular)
	if !ok || in.Resolve(v) != "y" {
		t.Errorf("expected 'it' to resolve to the donkey, have %q", in.Resolve(v))
	}
	if u := d.UniversalReferents(); len(u) != 2 {
		t.Errorf("expected both antecedent referents to be universal, have %d", len(u))
	}
	if v, ok := d.ResolveDefinite(in.Intern("farmer")); !ok || in.Resolve(v) != "x" {
		t.Errorf("expected 'the farmer' to resolve to x")
	}
}

func TestWorldStateOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.drs")
	defer teardown()
	//
	ws := NewWorldState()
	d, err := ws.TakeDRS()
	if err != nil || d == nil {
		t.Fatalf("expected to take DRS, have error %v", err)
	}
	if _, err := ws.TakeDRS(); !errors.Is(err, ErrDRSNotOwned) {
		t.Errorf("expected second take to fail with ErrDRSNotOwned, have %v", err)
	}
	if err := ws.EndSentence(); err == nil {
		t.Errorf("expected EndSentence to fail while the DRS is lent out")
	}
	d.AddTimeConstraint("e1", Precedes, d.NextReferenceTime())
	d.AddTimeConstraint("e1", Precedes, d.ReferenceTime())
	if err := ws.Restore(d); err != nil {
		t.Fatal(err)
	}
	if ws.CurrentReferenceTime() != "r1" {
		t.Errorf("expected reference time r1, have %s", ws.CurrentReferenceTime())
	}
	if err := ws.EndSentence(); err != nil {
		t.Fatal(err)
	}
	if tc := ws.TimeConstraints(); len(tc) != 1 || tc[0].String() != "Precedes(e1, r1)" {
		t.Errorf("expected committed constraint Precedes(e1, r1), have %v", tc)
	}
	if err := ws.Restore(d); err == nil {
		t.Errorf("expected restore without take to fail")
	}
}

func TestEventHistory(t *testing.T) {
	ws := NewWorldState()
	if ws.CurrentReferenceTime() != "S" {
		t.Errorf("expected speech time S as initial reference time")
	}
	ws.NextEventVar()
	ws.NextEventVar()
	if h := ws.EventHistory(); len(h) != 2 || h[0] != "e1" || h[1] != "e2" {
		t.Errorf("expected history [e1 e2], have %v", h)
	}
}
