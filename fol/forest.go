package fol

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/parser"
)

// MaxForestReadings caps the number of readings returned by CompileForest.
const MaxForestReadings = 12

// forestMode is a parser configuration tried when its ambiguity is present
// in the input. Modes are tried in order of their index.
type forestMode struct {
	name string
	opts []parser.Option
}

const (
	modeDefault = iota
	modeNounPriority
	modePPToNoun
	modeCollective
	modeEventAdjective
	modeWideNegation
	modeEpistemic
	modeDeontic
	modeWideNegationDeontic
)

var forestModes = [...]forestMode{
	modeDefault:        {"default", nil},
	modeNounPriority:   {"noun priority", []parser.Option{parser.NounPriority(true)}},
	modePPToNoun:       {"PP to noun", []parser.Option{parser.AttachPPToNoun(true)}},
	modeCollective:     {"collective", []parser.Option{parser.Collective(true)}},
	modeEventAdjective: {"event adjective", []parser.Option{parser.EventAdjectives(true)}},
	modeWideNegation:   {"wide negation", []parser.Option{parser.WideNegation(true)}},
	modeEpistemic:      {"epistemic", []parser.Option{parser.PreferModal(parser.PreferEpistemic)}},
	modeDeontic:        {"deontic", []parser.Option{parser.PreferModal(parser.PreferDeontic)}},
	modeWideNegationDeontic: {"wide negation + deontic", []parser.Option{parser.WideNegation(true),
		parser.PreferModal(parser.PreferDeontic)}},
}

// CompileForest returns all readings of text, in Unicode notation. See
// CompileForestWithOptions.
func CompileForest(text string) []string {
	return CompileForestWithOptions(text, Options{})
}

// CompileForestWithOptions parses text once per applicable ambiguity mode
// and returns the distinct readings, default reading first. Modes which fail
// to parse contribute no reading. At most MaxForestReadings readings are
// returned.
func CompileForestWithOptions(text string, opts Options) []string {
	fe := analyze(text, intern.New(), opts.lexicon())
	modes := fe.ambiguities()
	var readings []string
	seen := make(map[string]bool)
	it := modes.Iterator()
	for it.Next() {
		m := forestModes[it.Value().(int)]
		r, err := fe.reading(parser.NewConfig(m.opts...), opts)
		if err != nil {
			traceForest("forest mode %q failed: %v", m.name, err)
			continue
		}
		if seen[r] {
			traceForest("forest mode %q adds no new reading", m.name)
			continue
		}
		seen[r] = true
		readings = append(readings, r)
		if len(readings) == MaxForestReadings {
			break
		}
	}
	tracer().Debugf("forest of %d readings from %d modes", len(readings), modes.Size())
	return readings
}

// ambiguities collects the modes to try, as a set of mode indices ordered
// by priority.
func (fe *frontend) ambiguities() *treeset.Set {
	modes := treeset.NewWithIntComparator()
	modes.Add(modeDefault)
	var mixedVerb, pluralSubject, eventAdjective, agentiveNoun, negativeVerb, can bool
	for _, t := range fe.tokens {
		switch {
		case t.Kind == lexer.Ambiguous:
			modes.Add(modeNounPriority)
		case t.Kind == lexer.May || t.Kind == lexer.Could:
			modes.Add(modeEpistemic)
		case t.Kind == lexer.Can:
			can = true
		case t.Kind == lexer.Cardinal || t.Kind == lexer.Article && t.Feat.Definite:
			pluralSubject = true
		}
		if fe.attachingPreposition(t) {
			modes.Add(modePPToNoun)
		}
		if v, ok := t.Reading(lexer.Verb); ok {
			lemma := v.LemmaText(fe.in)
			if entry, ok := fe.lex.VerbLemma(lemma); ok && (entry.Has("mixed") || entry.Has("collective")) {
				mixedVerb = true
			}
			if c, ok := fe.lex.Canonical(strings.ToLower(lemma)); ok && c.Negative {
				negativeVerb = true
			}
		}
		if a, ok := t.Reading(lexer.Adjective); ok {
			if af, ok := fe.lex.Adjective(strings.ToLower(a.Text(fe.in))); ok && af.Entry.Is("event") {
				eventAdjective = true
			}
		}
		if n, ok := t.Reading(lexer.Noun); ok {
			if _, ok := fe.lex.AgentiveVerb(n.LemmaText(fe.in)); ok {
				agentiveNoun = true
			}
		}
	}
	if mixedVerb && pluralSubject {
		modes.Add(modeCollective)
	}
	if eventAdjective && agentiveNoun {
		modes.Add(modeEventAdjective)
	}
	if negativeVerb {
		modes.Add(modeWideNegation)
	}
	if can {
		modes.Add(modeDeontic)
		if negativeVerb {
			modes.Add(modeWideNegationDeontic)
		}
	}
	traceForest("forest modes %v", modes.Values())
	return modes
}

// attachingPreposition is true for prepositions which may attach to the
// preceding noun as well as to the verb.
func (fe *frontend) attachingPreposition(t lexer.Token) bool {
	p, ok := t.Reading(lexer.Preposition)
	if !ok {
		return false
	}
	switch strings.ToLower(p.Text(fe.in)) {
	case "with", "by", "for":
		return true
	}
	return false
}

// attachmentAmbiguity is true if the input contains an attaching
// preposition.
func (fe *frontend) attachmentAmbiguity() bool {
	for _, t := range fe.tokens {
		if fe.attachingPreposition(t) {
			return true
		}
	}
	return false
}
