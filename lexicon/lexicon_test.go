package lexicon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultLexiconLoads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lexicon")
	defer teardown()
	//
	lex := Default()
	if lex == nil {
		t.Fatal("default lexicon is nil")
	}
	if _, ok := lex.Noun("dogs"); !ok {
		t.Errorf("expected to find plural 'dogs'")
	}
	nf, ok := lex.Noun("men")
	if !ok || !nf.Plural || nf.Entry.Lemma != "man" {
		t.Errorf("expected 'men' to be plural of 'man', have %+v", nf)
	}
}

func TestVerbForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lexicon")
	defer teardown()
	//
	lex := Default()
	var cases = []struct {
		word  string
		lemma string
		form  Form
	}{
		{"runs", "run", Third},
		{"ran", "run", PastForm},
		{"run", "run", Base},
		{"running", "run", Gerund},
		{"broken", "break", Participle},
		{"barked", "bark", PastForm},
		{"eaten", "eat", Participle},
		{"saw", "see", PastForm},
		{"has", "have", Third},
		{"tries", "try", Third},
	}
	for _, c := range cases {
		vf, ok := lex.Verb(c.word)
		if !ok {
			t.Errorf("verb form %q not found", c.word)
			continue
		}
		if vf.Entry.Lemma != c.lemma || vf.Form != c.form {
			t.Errorf("%q: expected %s/%s, have %s/%s", c.word, c.lemma, c.form, vf.Entry.Lemma, vf.Form)
		}
	}
}

func TestHypernymsAndEntailments(t *testing.T) {
	lex := Default()
	if diff := cmp.Diff([]string{"mammal"}, lex.Hypernyms("Dog")); diff != "" {
		t.Errorf("hypernyms of dog (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"unmarried", "male"}, lex.NounEntailments("bachelor")); diff != "" {
		t.Errorf("entailments of bachelor (-want +got):\n%s", diff)
	}
	e, ok := lex.VerbEntailment("murder")
	if !ok || e.Verb != "kill" {
		t.Errorf("expected murder ⊨ kill, have %+v", e)
	}
	c, ok := lex.Canonical("lack")
	if !ok || c.Lemma != "have" || !c.Negative {
		t.Errorf("expected lack ↦ ¬have, have %+v", c)
	}
	if !lex.IsPrivative("fake") || lex.IsPrivative("red") {
		t.Errorf("privative classification wrong")
	}
}

func TestNamesAndUnits(t *testing.T) {
	lex := Default()
	if g := lex.NameGender("mary"); g != Female {
		t.Errorf("expected Mary to be female, is %s", g)
	}
	if g := lex.NameGender("Zorblax"); g != Unknown {
		t.Errorf("expected unknown name to have unknown gender, is %s", g)
	}
	u, ok := lex.Unit("inches")
	if !ok || u.Name != "inch" || u.Dimension != "Length" {
		t.Errorf("unexpected unit %+v", u)
	}
}

func TestLoadRejectsBrokenInput(t *testing.T) {
	if _, err := Load([]byte("nouns: [ {plural: x} ]")); err == nil {
		t.Errorf("expected error for noun without lemma")
	}
	if _, err := Load([]byte("mwe: [ {words: [single], class: noun, lemma: X} ]")); err == nil {
		t.Errorf("expected error for one-word MWE")
	}
}

func TestRegularMorphology(t *testing.T) {
	var cases = []struct{ in, plural, past, ger string }{
		{"walk", "walks", "walked", "walking"},
		{"carry", "carries", "carried", "carrying"},
		{"dance", "dances", "danced", "dancing"},
		{"watch", "watches", "watched", "watching"},
	}
	for _, c := range cases {
		if p := pluralize(c.in); p != c.plural {
			t.Errorf("plural of %s: expected %s, have %s", c.in, c.plural, p)
		}
		if p := pastTense(c.in); p != c.past {
			t.Errorf("past of %s: expected %s, have %s", c.in, c.past, p)
		}
		if g := gerund(c.in); g != c.ger {
			t.Errorf("gerund of %s: expected %s, have %s", c.in, c.ger, g)
		}
	}
}

func TestComparisonOperators(t *testing.T) {
	lex := Default()
	if op, ok := lex.ComparisonOperator("taller"); !ok || op != ">" {
		t.Errorf("expected 'taller' to map to '>', have %q", op)
	}
	// method calls are not infix operators
	if op, ok := lex.ComparisonOperator("contains"); ok {
		t.Errorf("expected no operator for 'contains', have %q", op)
	}
}
