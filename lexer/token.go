package lexer

import (
	"fmt"

	"github.com/npillmayer/logos"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
)

// Kind is the lexical category of a token.
type Kind int16

// Token kinds. Content words carry their lemma, function words are mostly
// identified by their kind alone.
const (
	EOF Kind = iota
	// quantifiers and determiners
	All
	Some
	No
	Most
	Few
	Many
	Any
	Cardinal
	Article
	Least
	More
	// connectives
	And
	Or
	If
	Then
	Not
	Because
	Either
	Neither
	Nor
	Unless
	// modals
	Must
	Can
	Cannot
	Could
	Would
	Shall
	Should
	May
	Might
	Will
	// auxiliaries
	Be
	Been
	Being
	Do
	Have
	// pronouns and wh-words
	Pronoun
	Reflexive
	Who
	What
	Where
	When
	Why
	Which
	That
	There
	// content words
	Noun
	ProperName
	Verb
	Adjective
	Comparative
	Superlative
	Adverb
	ScopalAdverb
	TemporalAdverb
	FrequencyAdverb
	Preposition
	To
	Than
	Only
	Even
	Just
	Possessive
	// literals
	Number
	String
	// punctuation
	Period
	Comma
	QuestionMark
	Exclamation
	Colon
	Semicolon
	LParen
	RParen
	Hash
	// wrapper for lexically ambiguous words
	Ambiguous
)

var kindNames = map[Kind]string{
	EOF: "EOF", All: "All", Some: "Some", No: "No", Most: "Most", Few: "Few", Many: "Many",
	Any: "Any", Cardinal: "Cardinal", Article: "Article", Least: "Least", More: "More",
	And: "And", Or: "Or", If: "If", Then: "Then", Not: "Not", Because: "Because",
	Either: "Either", Neither: "Neither", Nor: "Nor", Unless: "Unless",
	Must: "Must", Can: "Can", Cannot: "Cannot", Could: "Could", Would: "Would",
	Shall: "Shall", Should: "Should", May: "May", Might: "Might", Will: "Will",
	Be: "Be", Been: "Been", Being: "Being", Do: "Do", Have: "Have",
	Pronoun: "Pronoun", Reflexive: "Reflexive", Who: "Who", What: "What", Where: "Where",
	When: "When", Why: "Why", Which: "Which", That: "That", There: "There",
	Noun: "Noun", ProperName: "ProperName", Verb: "Verb", Adjective: "Adjective",
	Comparative: "Comparative", Superlative: "Superlative", Adverb: "Adverb",
	ScopalAdverb: "ScopalAdverb", TemporalAdverb: "TemporalAdverb",
	FrequencyAdverb: "FrequencyAdverb", Preposition: "Preposition", To: "To", Than: "Than",
	Only: "Only", Even: "Even", Just: "Just", Possessive: "Possessive",
	Number: "Number", String: "String",
	Period: "'.'", Comma: "','", QuestionMark: "'?'", Exclamation: "'!'", Colon: "':'",
	Semicolon: "';'", LParen: "'('", RParen: "')'", Hash: "'##'",
	Ambiguous: "Ambiguous",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsModal is true for modal auxiliaries.
func (k Kind) IsModal() bool {
	return k >= Must && k <= Will
}

// IsQuantifier is true for quantifying determiners.
func (k Kind) IsQuantifier() bool {
	return k >= All && k <= Cardinal
}

// IsPunctuation is true for sentence punctuation.
func (k Kind) IsPunctuation() bool {
	return k >= Period && k <= Hash
}

// Tense is the morphological tense of a verb or auxiliary.
type Tense int8

const (
	NoTense Tense = iota
	Present
	PastTense
	FutureTense
)

func (t Tense) String() string {
	switch t {
	case Present:
		return "Present"
	case PastTense:
		return "Past"
	case FutureTense:
		return "Future"
	}
	return "-"
}

// Features are the grammatical features attached to a token.
type Features struct {
	Tense    Tense
	Form     lexicon.Form
	Class    lexicon.VerbClass
	Number   lexicon.Number
	Gender   lexicon.Gender
	Case     lexicon.Case
	Person   int8
	Definite bool
	Count    int // value of cardinals
}

// Token is a classified input token. Ambiguous tokens hold their readings in
// Alts, primary reading first.
type Token struct {
	Kind   Kind
	Lexeme intern.Symbol
	Lemma  intern.Symbol
	Span   logos.Span
	Feat   Features
	Alts   []Token
}

// Primary returns the primary reading of an ambiguous token, or the token
// itself.
func (t Token) Primary() Token {
	if t.Kind == Ambiguous && len(t.Alts) > 0 {
		return t.Alts[0]
	}
	return t
}

// Alternatives returns the non-primary readings of an ambiguous token.
func (t Token) Alternatives() []Token {
	if t.Kind == Ambiguous && len(t.Alts) > 1 {
		return t.Alts[1:]
	}
	return nil
}

// Is checks whether t is of kind k, or has a reading of kind k.
func (t Token) Is(k Kind) bool {
	_, ok := t.Reading(k)
	return ok
}

// Reading returns the reading of kind k.
func (t Token) Reading(k Kind) (Token, bool) {
	if t.Kind == k {
		return t, true
	}
	if t.Kind == Ambiguous {
		for _, alt := range t.Alts {
			if alt.Kind == k {
				return alt, true
			}
		}
	}
	return Token{}, false
}

// Text returns the token's lexeme as a string.
func (t Token) Text(in *intern.Interner) string {
	return in.Resolve(t.Lexeme)
}

// LemmaText returns the token's lemma as a string.
func (t Token) LemmaText(in *intern.Interner) string {
	return in.Resolve(t.Lemma)
}

func ambiguous(readings []Token) Token {
	if len(readings) == 1 {
		return readings[0]
	}
	first := readings[0]
	return Token{
		Kind:   Ambiguous,
		Lexeme: first.Lexeme,
		Lemma:  first.Lemma,
		Span:   first.Span,
		Alts:   readings,
	}
}
