package mwe

import (
	"testing"

	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lemmas(tokens []lexer.Token, in *intern.Interner) []string {
	r := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != lexer.EOF {
			r = append(r, in.Resolve(t.Lemma))
		}
	}
	return r
}

func TestCollapseNounCompounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.mwe")
	defer teardown()
	//
	in := intern.New()
	lex := lexicon.Default()
	trie := BuildTrie(lex)
	tokens := Apply(lexer.New(lex, in).Tokenize("The fire engine arrived."), trie, in)
	if len(tokens) != 5 { // The, FireEngine, arrived, '.', EOF
		t.Fatalf("expected 5 tokens, have %d: %v", len(tokens), lemmas(tokens, in))
	}
	if tokens[1].Kind != lexer.Noun || in.Resolve(tokens[1].Lemma) != "FireEngine" {
		t.Errorf("expected noun FireEngine, have %s %q", tokens[1].Kind, in.Resolve(tokens[1].Lemma))
	}
	if tokens[1].Span.From() != 4 || tokens[1].Span.To() != 15 {
		t.Errorf("expected collapsed span (4…15), have %s", tokens[1].Span)
	}
}

func TestIdiomInheritsTense(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.mwe")
	defer teardown()
	//
	in := intern.New()
	lex := lexicon.Default()
	tokens := Apply(lexer.New(lex, in).Tokenize("John kicked the bucket."), BuildTrie(lex), in)
	verb := tokens[1]
	if verb.Kind != lexer.Verb || in.Resolve(verb.Lemma) != "die" {
		t.Fatalf("expected verb 'die', have %s %q", verb.Kind, in.Resolve(verb.Lemma))
	}
	if verb.Feat.Tense != lexer.PastTense {
		t.Errorf("expected past tense inherited from 'kicked', have %s", verb.Feat.Tense)
	}
}

func TestIdempotentAndPunctuationBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "logos.mwe")
	defer teardown()
	//
	in := intern.New()
	lex := lexicon.Default()
	trie := BuildTrie(lex)
	once := Apply(lexer.New(lex, in).Tokenize("John ate ice cream in order to smile."), trie, in)
	twice := Apply(once, trie, in)
	if len(once) != len(twice) {
		t.Errorf("pipeline not idempotent: %v vs %v", lemmas(once, in), lemmas(twice, in))
	}
	split := Apply(lexer.New(lex, in).Tokenize("John likes fire. Engine trouble follows."), trie, in)
	for _, tok := range split {
		if in.Resolve(tok.Lemma) == "FireEngine" {
			t.Errorf("expression must not be collapsed across punctuation")
		}
	}
}

func TestLongestMatchWins(t *testing.T) {
	in := intern.New()
	trie := NewTrie()
	trie.Insert(lexicon.MWE{Words: []string{"fire", "engine"}, Class: "noun", Lemma: "FireEngine"})
	trie.Insert(lexicon.MWE{Words: []string{"fire", "engine", "red"}, Class: "noun", Lemma: "FireEngineRed"})
	if trie.Size() != 2 {
		t.Errorf("expected 2 entries, have %d", trie.Size())
	}
	tokens := Apply(lexer.New(lexicon.Default(), in).Tokenize("fire engine red paint"), trie, in)
	if in.Resolve(tokens[0].Lemma) != "FireEngineRed" {
		t.Errorf("expected longest match, have %v", lemmas(tokens, in))
	}
}
