package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func kinds(tokens []Token) []Kind {
	r := make([]Kind, len(tokens))
	for i, t := range tokens {
		r[i] = t.Kind
	}
	return r
}

func TestTokenizeSimpleSentences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lexer")
	defer teardown()
	//
	var cases = []struct {
		input string
		kinds []Kind
	}{
		{"John runs.", []Kind{ProperName, Verb, Period, EOF}},
		{"Every dog barks.", []Kind{All, Noun, Verb, Period, EOF}},
		{"The man is not happy.", []Kind{Article, Noun, Be, Not, Adjective, Period, EOF}},
		{"John doesn't run.", []Kind{ProperName, Do, Not, Verb, Period, EOF}},
		{"Mary can't swim!", []Kind{ProperName, Cannot, Verb, Exclamation, EOF}},
		{"Who loves Mary?", []Kind{Who, Verb, ProperName, QuestionMark, EOF}},
		{"John's dog barks.", []Kind{ProperName, Possessive, Noun, Verb, Period, EOF}},
		{"Three boys lifted a piano.", []Kind{Cardinal, Noun, Verb, Article, Noun, Period, EOF}},
		{"John is 2 inches taller than Mary.", []Kind{ProperName, Be, Number, Noun, Comparative,
			Than, ProperName, Period, EOF}},
	}
	in := intern.New()
	lx := New(lexicon.Default(), in)
	for _, c := range cases {
		tokens := lx.Tokenize(c.input)
		got := make([]Kind, len(tokens))
		for i, tok := range tokens {
			got[i] = tok.Primary().Kind
		}
		if diff := cmp.Diff(c.kinds, got); diff != "" {
			t.Errorf("%q: token kinds differ (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestAmbiguousWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.lexer")
	defer teardown()
	//
	in := intern.New()
	lx := New(lexicon.Default(), in)
	tokens := lx.Tokenize("John saw her duck.")
	duck := tokens[3]
	if duck.Kind != Ambiguous {
		t.Fatalf("expected 'duck' to be ambiguous, is %s", duck.Kind)
	}
	if duck.Primary().Kind != Verb {
		t.Errorf("expected verb reading to be primary, is %s", duck.Primary().Kind)
	}
	if n, ok := duck.Reading(Noun); !ok || n.LemmaText(in) != "duck" {
		t.Errorf("expected noun reading 'duck'")
	}
	saw := tokens[1]
	if v, ok := saw.Reading(Verb); !ok || v.LemmaText(in) != "see" || v.Feat.Tense != PastTense {
		t.Errorf("expected 'saw' to have past-tense reading of 'see'")
	}
}

func TestSpansAreByteOffsets(t *testing.T) {
	in := intern.New()
	lx := New(lexicon.Default(), in)
	input := "Every  dog barks."
	tokens := lx.Tokenize(input)
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Span.Text(input) != tok.Text(in) {
			t.Errorf("span %s does not cover lexeme %q", tok.Span, tok.Text(in))
		}
	}
	if tokens[1].Span.From() != 7 {
		t.Errorf("expected 'dog' at byte 7, is at %d", tokens[1].Span.From())
	}
}

func TestNumbersKeepRawText(t *testing.T) {
	in := intern.New()
	lx := New(lexicon.Default(), in)
	tokens := lx.Tokenize("It weighs 3.50 kg.")
	var num Token
	for _, tok := range tokens {
		if tok.Kind == Number {
			num = tok
		}
	}
	if num.Text(in) != "3.50" {
		t.Errorf("expected raw number text '3.50', have %q", num.Text(in))
	}
}

func TestUnknownWords(t *testing.T) {
	in := intern.New()
	lx := New(lexicon.Default(), in)
	tokens := lx.Tokenize("Zorblax blorped the wug quickly.")
	want := []Kind{ProperName, Verb, Article, Noun, Adverb, Period, EOF}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("unknown word classification (-want +got):\n%s", diff)
	}
	if tokens[1].LemmaText(in) != "blorp" {
		t.Errorf("expected lemma 'blorp', have %q", tokens[1].LemmaText(in))
	}
}

func TestPronounFeatures(t *testing.T) {
	in := intern.New()
	lx := New(lexicon.Default(), in)
	tokens := lx.Tokenize("She loves himself.")
	if tokens[0].Kind != Pronoun || tokens[0].Feat.Gender != lexicon.Female {
		t.Errorf("expected female pronoun, have %+v", tokens[0])
	}
	if tokens[2].Kind != Reflexive || tokens[2].Feat.Gender != lexicon.Male {
		t.Errorf("expected male reflexive, have %+v", tokens[2])
	}
}

func TestUnknownVerbStems(t *testing.T) {
	in := intern.New()
	lx := New(lexicon.Default(), in)
	var cases = []struct {
		word, lemma string
		form        lexicon.Form
	}{
		{"smiled", "smile", lexicon.PastForm},
		{"walked", "walk", lexicon.PastForm},
		{"stopped", "stop", lexicon.PastForm},
		{"carried", "carry", lexicon.PastForm},
		{"danced", "dance", lexicon.PastForm},
		{"agreed", "agree", lexicon.PastForm},
		{"visited", "visit", lexicon.PastForm},
		{"smiling", "smile", lexicon.Gerund},
		{"jogging", "jog", lexicon.Gerund},
		{"taken", "take", lexicon.Participle},
		{"hidden", "hide", lexicon.Participle},
	}
	for _, c := range cases {
		tokens := lx.Tokenize(c.word)
		v, ok := tokens[0].Reading(Verb)
		if !ok {
			t.Errorf("%q: expected a verb reading, have %v", c.word, tokens[0].Kind)
			continue
		}
		if v.LemmaText(in) != c.lemma || v.Feat.Form != c.form {
			t.Errorf("%q: expected lemma %q form %v, have %q form %v", c.word, c.lemma, c.form,
				v.LemmaText(in), v.Feat.Form)
		}
	}
}
