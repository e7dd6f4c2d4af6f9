/*
Package mwe collapses multi-word expressions into single tokens.

A trie is built from the lexicon's multi-word expressions. Apply scans the
token stream and replaces the longest matching run of tokens by a single
synthetic token carrying the combined meaning, e.g. "kick the bucket" by
the verb "die" (keeping the tense of "kick"). Runs never extend across
punctuation, and applying the pipeline to its own output changes nothing.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mwe

import (
	"strings"

	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'logos.mwe'.
func tracer() tracing.Trace {
	return tracing.Select("logos.mwe")
}

// Trie is a word trie of multi-word expressions.
type Trie struct {
	root *node
	size int
}

type node struct {
	children map[string]*node
	entry    *lexicon.MWE
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// BuildTrie creates a trie holding all multi-word expressions of lex.
func BuildTrie(lex *lexicon.Lexicon) *Trie {
	t := NewTrie()
	for _, m := range lex.MWEs() {
		t.Insert(m)
	}
	tracer().Debugf("MWE trie holds %d expressions", t.size)
	return t
}

// Insert adds an expression to the trie. Re-inserting a word sequence
// replaces the previous entry.
func (t *Trie) Insert(m lexicon.MWE) {
	n := t.root
	for _, w := range m.Words {
		w = strings.ToLower(w)
		child, ok := n.children[w]
		if !ok {
			child = newNode()
			n.children[w] = child
		}
		n = child
	}
	if n.entry == nil {
		t.size++
	}
	entry := m
	n.entry = &entry
}

// Size returns the number of expressions in the trie.
func (t *Trie) Size() int {
	return t.size
}

// longest finds the longest expression starting at tokens[i].
func (t *Trie) longest(tokens []lexer.Token, i int, in *intern.Interner) (*lexicon.MWE, int) {
	var best *lexicon.MWE
	length := 0
	n := t.root
	for j := i; j < len(tokens); j++ {
		tok := tokens[j]
		if tok.Kind == lexer.EOF || tok.Primary().Kind.IsPunctuation() {
			break
		}
		child := n.step(tok, in)
		if child == nil {
			break
		}
		n = child
		if n.entry != nil {
			best, length = n.entry, j-i+1
		}
	}
	return best, length
}

// step follows the edge labelled by the token's lemma or its lower-cased
// surface form.
func (n *node) step(tok lexer.Token, in *intern.Interner) *node {
	if child, ok := n.children[strings.ToLower(in.Resolve(tok.Lemma))]; ok {
		return child
	}
	if child, ok := n.children[strings.ToLower(in.Resolve(tok.Lexeme))]; ok {
		return child
	}
	for _, alt := range tok.Alternatives() {
		if child, ok := n.children[strings.ToLower(in.Resolve(alt.Lemma))]; ok {
			return child
		}
	}
	return nil
}

// Apply collapses multi-word expressions in tokens. The input slice is not
// modified.
func Apply(tokens []lexer.Token, trie *Trie, in *intern.Interner) []lexer.Token {
	result := make([]lexer.Token, 0, len(tokens))
	for i := 0; i < len(tokens); {
		entry, length := trie.longest(tokens, i, in)
		if entry == nil {
			result = append(result, tokens[i])
			i++
			continue
		}
		run := tokens[i : i+length]
		tracer().Debugf("collapsing %d tokens into %q", length, entry.Lemma)
		result = append(result, collapse(run, entry, in))
		i += length
	}
	return result
}

func collapse(run []lexer.Token, entry *lexicon.MWE, in *intern.Interner) lexer.Token {
	words := make([]string, len(run))
	for i, t := range run {
		words[i] = in.Resolve(t.Lexeme)
	}
	first := run[0]
	span := first.Span.Extend(run[len(run)-1].Span)
	tok := lexer.Token{
		Lexeme: in.Intern(strings.Join(words, " ")),
		Lemma:  in.Intern(entry.Lemma),
		Span:   span,
	}
	switch entry.Class {
	case "verb":
		tok.Kind = lexer.Verb
		if v, ok := first.Reading(lexer.Verb); ok {
			tok.Feat = v.Feat // inherit tense and form
		} else {
			tok.Feat.Tense = lexer.Present
		}
	case "conj":
		tok.Kind = lexer.And
	case "particle":
		tok.Kind = lexer.To
	case "pronoun":
		tok.Kind = lexer.Pronoun
		tok.Feat.Number = lexicon.Plural
		tok.Feat.Case = lexicon.Object
		tok.Feat.Person = 3
	case "prep":
		tok.Kind = lexer.Preposition
	default:
		tok.Kind = lexer.Noun
		if last, ok := run[len(run)-1].Reading(lexer.Noun); ok {
			tok.Feat.Number = last.Feat.Number
		}
		tok.Feat.Gender = lexicon.Neuter
	}
	return tok
}
