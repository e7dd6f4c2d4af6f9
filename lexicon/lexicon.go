/*
Package lexicon provides the read-only lexical knowledge used by the
compiler: word classes and inflection, verb frames and classes,
hypernym chains, lexical entailments, canonical mappings, privative
adjectives, units of measurement and multi-word expressions.

The lexicon is a data collaborator which is passed explicitly to every pass
that needs it. A default lexicon is embedded into the binary as YAML; clients
may load an alternative one with Load or LoadFile.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'logos.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("logos.lexicon")
}

//go:embed lexicon.yaml
var defaultLexicon []byte

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded lexicon. It is parsed once; a broken embedded
// lexicon is a build defect and panics.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Load(defaultLexicon)
		if err != nil {
			panic(fmt.Sprintf("lexicon: embedded lexicon is invalid: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

// LoadFile reads a YAML lexicon from a file.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: cannot read %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a YAML lexicon and builds its lookup indexes.
func Load(data []byte) (*Lexicon, error) {
	var src source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	lex := &Lexicon{src: src}
	if err := lex.index(); err != nil {
		return nil, err
	}
	tracer().Debugf("lexicon loaded: %d nouns, %d verbs, %d adjectives",
		len(src.Nouns), len(src.Verbs), len(src.Adjectives))
	return lex, nil
}

// --- YAML source -----------------------------------------------------------

type source struct {
	Nouns        []*Noun                   `yaml:"nouns"`
	Verbs        []*Verb                   `yaml:"verbs"`
	Adjectives   []*Adjective              `yaml:"adjectives"`
	Canonical    map[string]Canonical      `yaml:"canonical"`
	Entailments  map[string]VerbEntailment `yaml:"verb_entailments"`
	Prepositions map[string]string         `yaml:"prepositions"`
	Units        map[string]Unit           `yaml:"units"`
	Names        map[string][]string       `yaml:"names"`
	Adverbs      map[string][]string       `yaml:"adverbs"`
	MWEs         []MWE                     `yaml:"mwe"`
	Comparisons  map[string]string         `yaml:"comparison_operators"`
}

// Noun is a common noun entry.
type Noun struct {
	Lemma     string   `yaml:"lemma"`
	Plural    string   `yaml:"plural"`
	Gender    Gender   `yaml:"gender"`
	Hypernyms []string `yaml:"hypernyms"`
	Entails   []string `yaml:"entails"`
	Agentive  string   `yaml:"agentive"` // verb lemma for agentive nouns ("dancer")
	Inanimate bool     `yaml:"inanimate"`
	Mass      bool     `yaml:"mass"`
}

// Verb is a verb entry.
type Verb struct {
	Lemma      string    `yaml:"lemma"`
	Third      string    `yaml:"third"`
	Past       string    `yaml:"past"`
	Participle string    `yaml:"participle"`
	Gerund     string    `yaml:"gerund"`
	Class      VerbClass `yaml:"class"`
	Frame      []string  `yaml:"frame"`
	Flags      []string  `yaml:"flags"`
}

// Has checks for a verb flag, e.g. "opaque" or "collective".
func (v *Verb) Has(flag string) bool {
	for _, f := range v.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Adjective is an adjective entry.
type Adjective struct {
	Lemma       string   `yaml:"lemma"`
	Comparative string   `yaml:"comparative"`
	Superlative string   `yaml:"superlative"`
	Kinds       []string `yaml:"kinds"`
	Dimension   string   `yaml:"dimension"`
}

// Is checks for an adjective kind, e.g. "privative" or "event".
func (a *Adjective) Is(kind string) bool {
	for _, k := range a.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Canonical maps a lemma to a canonical lemma, possibly with negative
// polarity ("lack" ↦ ¬"have").
type Canonical struct {
	Lemma    string `yaml:"lemma"`
	Negative bool   `yaml:"negative"`
}

// VerbEntailment is a manner entailment: murder ⊨ kill ∧ intentional(agent).
type VerbEntailment struct {
	Verb   string   `yaml:"verb"`
	Manner []string `yaml:"manner"`
}

// Unit is a unit of measurement.
type Unit struct {
	Name      string `yaml:"name"`
	Dimension string `yaml:"dimension"`
}

// MWE is a multi-word expression and the single token it collapses to.
type MWE struct {
	Words []string `yaml:"words"`
	Class string   `yaml:"class"` // noun, verb, conj, particle, prep
	Lemma string   `yaml:"lemma"`
}

// --- Lexicon ---------------------------------------------------------------

// Lexicon is the indexed, read-only lexicon.
type Lexicon struct {
	src        source
	nouns      map[string]NounForm
	verbs      map[string]VerbForm
	adjectives map[string]AdjectiveForm
	lemmaNoun  map[string]*Noun
	lemmaVerb  map[string]*Verb
	agentive   map[string]string
	names      map[string]Gender
	adverbs    map[string]string
}

// NounForm is the result of a noun lookup.
type NounForm struct {
	Entry  *Noun
	Plural bool
}

// VerbForm is the result of a verb lookup.
type VerbForm struct {
	Entry *Verb
	Form  Form
}

// AdjectiveForm is the result of an adjective lookup.
type AdjectiveForm struct {
	Entry  *Adjective
	Degree Degree
}

func (lex *Lexicon) index() error {
	lex.nouns = make(map[string]NounForm)
	lex.verbs = make(map[string]VerbForm)
	lex.adjectives = make(map[string]AdjectiveForm)
	lex.lemmaNoun = make(map[string]*Noun)
	lex.lemmaVerb = make(map[string]*Verb)
	lex.agentive = make(map[string]string)
	lex.names = make(map[string]Gender)
	lex.adverbs = make(map[string]string)
	for _, n := range lex.src.Nouns {
		if n.Lemma == "" {
			return fmt.Errorf("lexicon: noun without lemma")
		}
		if n.Plural == "" {
			n.Plural = pluralize(n.Lemma)
		}
		lex.lemmaNoun[n.Lemma] = n
		lex.nouns[n.Lemma] = NounForm{Entry: n}
		if _, exists := lex.nouns[n.Plural]; !exists {
			lex.nouns[n.Plural] = NounForm{Entry: n, Plural: true}
		}
		if n.Agentive != "" {
			lex.agentive[n.Lemma] = n.Agentive
		}
	}
	for _, v := range lex.src.Verbs {
		if v.Lemma == "" {
			return fmt.Errorf("lexicon: verb without lemma")
		}
		v.fillForms()
		lex.lemmaVerb[v.Lemma] = v
		// later forms must not shadow the base form of another verb
		lex.addVerbForm(v.Gerund, v, Gerund)
		lex.addVerbForm(v.Participle, v, Participle)
		lex.addVerbForm(v.Past, v, PastForm)
		lex.addVerbForm(v.Third, v, Third)
		lex.verbs[v.Lemma] = VerbForm{Entry: v, Form: Base}
	}
	for _, a := range lex.src.Adjectives {
		if a.Lemma == "" {
			return fmt.Errorf("lexicon: adjective without lemma")
		}
		lex.adjectives[a.Lemma] = AdjectiveForm{Entry: a, Degree: Positive}
		if a.Comparative != "" {
			lex.adjectives[a.Comparative] = AdjectiveForm{Entry: a, Degree: ComparativeDegree}
		}
		if a.Superlative != "" {
			lex.adjectives[a.Superlative] = AdjectiveForm{Entry: a, Degree: SuperlativeDegree}
		}
	}
	for g, names := range lex.src.Names {
		gender := ParseGender(g)
		for _, n := range names {
			lex.names[strings.ToLower(n)] = gender
		}
	}
	for kind, words := range lex.src.Adverbs {
		for _, w := range words {
			lex.adverbs[w] = kind
		}
	}
	for _, m := range lex.src.MWEs {
		if len(m.Words) < 2 {
			return fmt.Errorf("lexicon: multi-word expression %q needs at least two words", m.Lemma)
		}
	}
	return nil
}

func (lex *Lexicon) addVerbForm(form string, v *Verb, f Form) {
	if form == "" {
		return
	}
	if old, exists := lex.verbs[form]; exists && old.Form == Base {
		return
	}
	lex.verbs[form] = VerbForm{Entry: v, Form: f}
}

// Noun looks up a noun by surface form (singular or plural).
func (lex *Lexicon) Noun(word string) (NounForm, bool) {
	nf, ok := lex.nouns[strings.ToLower(word)]
	return nf, ok
}

// NounLemma looks up a noun by lemma.
func (lex *Lexicon) NounLemma(lemma string) (*Noun, bool) {
	n, ok := lex.lemmaNoun[strings.ToLower(lemma)]
	return n, ok
}

// Verb looks up a verb by surface form.
func (lex *Lexicon) Verb(word string) (VerbForm, bool) {
	vf, ok := lex.verbs[strings.ToLower(word)]
	return vf, ok
}

// VerbLemma looks up a verb by lemma.
func (lex *Lexicon) VerbLemma(lemma string) (*Verb, bool) {
	v, ok := lex.lemmaVerb[strings.ToLower(lemma)]
	return v, ok
}

// Adjective looks up an adjective by surface form.
func (lex *Lexicon) Adjective(word string) (AdjectiveForm, bool) {
	af, ok := lex.adjectives[strings.ToLower(word)]
	return af, ok
}

// Canonical returns the canonical mapping of a lemma, if any.
func (lex *Lexicon) Canonical(lemma string) (Canonical, bool) {
	c, ok := lex.src.Canonical[strings.ToLower(lemma)]
	return c, ok
}

// Hypernyms returns the direct hypernyms of a noun lemma.
func (lex *Lexicon) Hypernyms(lemma string) []string {
	if n, ok := lex.NounLemma(lemma); ok {
		return n.Hypernyms
	}
	return nil
}

// NounEntailments returns the predicates entailed by a noun lemma
// ("bachelor" ⊨ unmarried, male).
func (lex *Lexicon) NounEntailments(lemma string) []string {
	if n, ok := lex.NounLemma(lemma); ok {
		return n.Entails
	}
	return nil
}

// VerbEntailment returns the manner entailment of a verb lemma, if any.
func (lex *Lexicon) VerbEntailment(lemma string) (VerbEntailment, bool) {
	e, ok := lex.src.Entailments[strings.ToLower(lemma)]
	return e, ok
}

// IsPrivative is true for adjectives like "fake" or "former".
func (lex *Lexicon) IsPrivative(adj string) bool {
	if af, ok := lex.Adjective(adj); ok {
		return af.Entry.Is("privative")
	}
	return false
}

// AgentiveVerb returns the verb underlying an agentive noun ("dancer" ↦ "dance").
func (lex *Lexicon) AgentiveVerb(noun string) (string, bool) {
	v, ok := lex.agentive[strings.ToLower(noun)]
	return v, ok
}

// PrepositionRole returns the thematic role name introduced by a preposition.
func (lex *Lexicon) PrepositionRole(prep string) (string, bool) {
	r, ok := lex.src.Prepositions[strings.ToLower(prep)]
	return r, ok
}

// IsPreposition is true for known prepositions.
func (lex *Lexicon) IsPreposition(word string) bool {
	_, ok := lex.src.Prepositions[strings.ToLower(word)]
	return ok
}

// Unit looks up a unit of measurement.
func (lex *Lexicon) Unit(word string) (Unit, bool) {
	u, ok := lex.src.Units[strings.ToLower(word)]
	return u, ok
}

// NameGender returns the gender of a known proper name, Unknown otherwise.
func (lex *Lexicon) NameGender(name string) Gender {
	if g, ok := lex.names[strings.ToLower(name)]; ok {
		return g
	}
	return Unknown
}

// AdverbClass returns the class of an adverb: "frequency", "scopal",
// "temporal" or "manner".
func (lex *Lexicon) AdverbClass(word string) (string, bool) {
	c, ok := lex.adverbs[strings.ToLower(word)]
	return c, ok
}

// MWEs returns the configured multi-word expressions.
func (lex *Lexicon) MWEs() []MWE {
	return lex.src.MWEs
}

// ComparisonOperator maps a comparison predicate or comparative form
// ("greater", "taller") to a target-language operator.
func (lex *Lexicon) ComparisonOperator(word string) (string, bool) {
	op, ok := lex.src.Comparisons[strings.ToLower(word)]
	return op, ok
}

// --- Morphology helpers ----------------------------------------------------

func (v *Verb) fillForms() {
	if v.Third == "" {
		v.Third = pluralize(v.Lemma)
	}
	if v.Past == "" {
		v.Past = pastTense(v.Lemma)
	}
	if v.Participle == "" {
		v.Participle = v.Past
	}
	if v.Gerund == "" {
		v.Gerund = gerund(v.Lemma)
	}
	if v.Class == "" {
		v.Class = Activity
	}
}

func pluralize(w string) string {
	switch {
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "x"), strings.HasSuffix(w, "z"),
		strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "sh"):
		return w + "es"
	case strings.HasSuffix(w, "y") && len(w) > 1 && !isVowel(w[len(w)-2]):
		return w[:len(w)-1] + "ies"
	}
	return w + "s"
}

func pastTense(w string) string {
	switch {
	case strings.HasSuffix(w, "e"):
		return w + "d"
	case strings.HasSuffix(w, "y") && len(w) > 1 && !isVowel(w[len(w)-2]):
		return w[:len(w)-1] + "ied"
	}
	return w + "ed"
}

func gerund(w string) string {
	if strings.HasSuffix(w, "ie") {
		return w[:len(w)-2] + "ying"
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ee") && len(w) > 2 {
		return w[:len(w)-1] + "ing"
	}
	return w + "ing"
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}
