/*
Package lexer converts English text into a stream of classified tokens.

Segmentation is done by a DFA (package lexmachine); every segment is then
classified by a closed-class word table and by lexicon lookup. Words with
more than one lexical category become Ambiguous tokens, wrapping a primary
reading and alternatives. The lexer never fails: unknown words are
classified permissively by their shape.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/logos"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'logos.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("logos.lexer")
}

// Lexer classifies words using a lexicon. A lexer is cheap to create; the
// segmenting DFA is shared.
type Lexer struct {
	lex *lexicon.Lexicon
	in  *intern.Interner
}

// New creates a lexer. Symbols are interned with in.
func New(lex *lexicon.Lexicon, in *intern.Interner) *Lexer {
	return &Lexer{lex: lex, in: in}
}

// Tokenize converts text into tokens, terminated by an EOF token.
func (l *Lexer) Tokenize(text string) []Token {
	segs, err := segments(text)
	if err != nil {
		tracer().Errorf("cannot segment input: %v", err)
	}
	tokens := make([]Token, 0, len(segs)+1)
	sentenceStart := true
	for _, seg := range segs {
		toks := l.classify(seg, sentenceStart)
		tokens = append(tokens, toks...)
		if len(toks) > 0 {
			last := toks[len(toks)-1]
			sentenceStart = last.Kind == Period || last.Kind == QuestionMark ||
				last.Kind == Exclamation || last.Kind == Colon || last.Kind == Hash
		}
	}
	end := uint64(len(text))
	tokens = append(tokens, Token{Kind: EOF, Span: logos.Span{end, end}})
	tracer().Debugf("tokenized %d tokens", len(tokens)-1)
	return tokens
}

func (l *Lexer) classify(seg segment, sentenceStart bool) []Token {
	switch seg.id {
	case segPunct:
		return []Token{l.make(punctKind(seg.text), seg.text, seg.text, seg.span)}
	case segHash:
		return []Token{l.make(Hash, seg.text, seg.text, seg.span)}
	case segString:
		inner := strings.Trim(seg.text, `"`)
		return []Token{l.make(String, seg.text, inner, seg.span)}
	case segNumber:
		t := l.make(Number, seg.text, seg.text, seg.span)
		if n, err := strconv.Atoi(seg.text); err == nil {
			t.Feat.Count = n
		}
		return []Token{t}
	}
	return l.word(seg.text, seg.span, sentenceStart)
}

func punctKind(p string) Kind {
	switch p {
	case ".":
		return Period
	case ",":
		return Comma
	case "?":
		return QuestionMark
	case "!":
		return Exclamation
	case ":":
		return Colon
	case ";":
		return Semicolon
	case "(":
		return LParen
	}
	return RParen
}

func (l *Lexer) make(k Kind, lexeme, lemma string, span logos.Span) Token {
	return Token{
		Kind:   k,
		Lexeme: l.in.Intern(lexeme),
		Lemma:  l.in.Intern(lemma),
		Span:   span,
	}
}

// word classifies a word segment, splitting off contractions and the
// possessive clitic.
func (l *Lexer) word(w string, span logos.Span, sentenceStart bool) []Token {
	lower := strings.ToLower(w)
	if strings.HasSuffix(lower, "n't") && len(lower) > 3 {
		return l.contraction(w, lower, span)
	}
	if strings.HasSuffix(lower, "'s") && len(lower) > 2 {
		cut := len(w) - 2
		head := l.word(w[:cut], logos.Span{span[0], span[0] + uint64(cut)}, sentenceStart)
		poss := l.make(Possessive, w[cut:], "'s", logos.Span{span[0] + uint64(cut), span[1]})
		return append(head, poss)
	}
	if strings.HasSuffix(lower, "'") && len(lower) > 1 { // plural possessive: "dogs'"
		cut := len(w) - 1
		head := l.word(w[:cut], logos.Span{span[0], span[0] + uint64(cut)}, sentenceStart)
		poss := l.make(Possessive, w[cut:], "'s", logos.Span{span[0] + uint64(cut), span[1]})
		return append(head, poss)
	}
	if t, ok := l.functionWord(w, lower, span); ok {
		return []Token{t}
	}
	return []Token{l.contentWord(w, lower, span, sentenceStart)}
}

var negatedAux = map[string]Kind{
	"do": Do, "does": Do, "did": Do, "is": Be, "are": Be, "was": Be, "were": Be,
	"has": Have, "have": Have, "had": Have, "could": Could, "would": Would,
	"should": Should, "must": Must, "might": Might, "may": May,
}

func (l *Lexer) contraction(w, lower string, span logos.Span) []Token {
	base := lower[:len(lower)-3]
	baseSpan := logos.Span{span[0], span[1] - 3}
	notSpan := logos.Span{span[1] - 3, span[1]}
	switch base {
	case "ca":
		return []Token{l.make(Cannot, w, "cannot", span)}
	case "wo":
		will := l.make(Will, w[:2], "will", baseSpan)
		will.Feat.Tense = FutureTense
		return []Token{will, l.make(Not, w[2:], "not", notSpan)}
	}
	if _, ok := negatedAux[base]; ok {
		if aux, ok := l.functionWord(w[:len(base)], base, baseSpan); ok {
			return []Token{aux, l.make(Not, w[len(base):], "not", notSpan)}
		}
	}
	tracer().Debugf("unknown contraction %q", w)
	return []Token{l.contentWord(w, lower, span, false)}
}

// --- Closed-class words ----------------------------------------------------

type fwEntry struct {
	kind  Kind
	lemma string
	feat  Features
}

var cardinals = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var functionWords = map[string]fwEntry{
	"every":   {kind: All, lemma: "every"},
	"all":     {kind: All, lemma: "all", feat: Features{Number: lexicon.Plural}},
	"each":    {kind: All, lemma: "each"},
	"some":    {kind: Some, lemma: "some"},
	"no":      {kind: No, lemma: "no"},
	"most":    {kind: Most, lemma: "most"},
	"few":     {kind: Few, lemma: "few"},
	"many":    {kind: Many, lemma: "many"},
	"any":     {kind: Any, lemma: "any"},
	"a":       {kind: Article, lemma: "a"},
	"an":      {kind: Article, lemma: "a"},
	"the":     {kind: Article, lemma: "the", feat: Features{Definite: true}},
	"least":   {kind: Least, lemma: "least"},
	"more":    {kind: More, lemma: "more"},
	"and":     {kind: And, lemma: "and"},
	"or":      {kind: Or, lemma: "or"},
	"if":      {kind: If, lemma: "if"},
	"then":    {kind: Then, lemma: "then"},
	"not":     {kind: Not, lemma: "not"},
	"never":   {kind: Not, lemma: "never"},
	"because": {kind: Because, lemma: "because"},
	"either":  {kind: Either, lemma: "either"},
	"neither": {kind: Neither, lemma: "neither"},
	"nor":     {kind: Nor, lemma: "nor"},
	"unless":  {kind: Unless, lemma: "unless"},
	"must":    {kind: Must, lemma: "must"},
	"can":     {kind: Can, lemma: "can"},
	"cannot":  {kind: Cannot, lemma: "cannot"},
	"could":   {kind: Could, lemma: "could"},
	"would":   {kind: Would, lemma: "would"},
	"shall":   {kind: Shall, lemma: "shall"},
	"should":  {kind: Should, lemma: "should"},
	"may":     {kind: May, lemma: "may"},
	"might":   {kind: Might, lemma: "might"},
	"will":    {kind: Will, lemma: "will", feat: Features{Tense: FutureTense}},
	"is":      {kind: Be, lemma: "be", feat: Features{Tense: Present}},
	"am":      {kind: Be, lemma: "be", feat: Features{Tense: Present}},
	"are":     {kind: Be, lemma: "be", feat: Features{Tense: Present, Number: lexicon.Plural}},
	"was":     {kind: Be, lemma: "be", feat: Features{Tense: PastTense}},
	"were":    {kind: Be, lemma: "be", feat: Features{Tense: PastTense, Number: lexicon.Plural}},
	"be":      {kind: Be, lemma: "be"},
	"been":    {kind: Been, lemma: "be"},
	"being":   {kind: Being, lemma: "be"},
	"do":      {kind: Do, lemma: "do", feat: Features{Tense: Present, Number: lexicon.Plural}},
	"does":    {kind: Do, lemma: "do", feat: Features{Tense: Present}},
	"did":     {kind: Do, lemma: "do", feat: Features{Tense: PastTense}},
	"has":     {kind: Have, lemma: "have", feat: Features{Tense: Present, Form: lexicon.Third}},
	"have":    {kind: Have, lemma: "have", feat: Features{Tense: Present, Number: lexicon.Plural}},
	"had":     {kind: Have, lemma: "have", feat: Features{Tense: PastTense, Form: lexicon.PastForm}},
	"who":     {kind: Who, lemma: "who"},
	"whom":    {kind: Who, lemma: "who"},
	"what":    {kind: What, lemma: "what"},
	"where":   {kind: Where, lemma: "where"},
	"when":    {kind: When, lemma: "when"},
	"why":     {kind: Why, lemma: "why"},
	"which":   {kind: Which, lemma: "which"},
	"that":    {kind: That, lemma: "that"},
	"there":   {kind: There, lemma: "there"},
	"to":      {kind: To, lemma: "to"},
	"than":    {kind: Than, lemma: "than"},
	"only":    {kind: Only, lemma: "only"},
	"even":    {kind: Even, lemma: "even"},
	"just":    {kind: Just, lemma: "just"},
}

type pronounEntry struct {
	gender lexicon.Gender
	number lexicon.Number
	cas    lexicon.Case
	person int8
	refl   bool
}

var pronouns = map[string]pronounEntry{
	"i":          {lexicon.Unknown, lexicon.Singular, lexicon.Subject, 1, false},
	"me":         {lexicon.Unknown, lexicon.Singular, lexicon.Object, 1, false},
	"my":         {lexicon.Unknown, lexicon.Singular, lexicon.Possessive, 1, false},
	"myself":     {lexicon.Unknown, lexicon.Singular, lexicon.Object, 1, true},
	"you":        {lexicon.Unknown, lexicon.Singular, lexicon.Subject, 2, false},
	"your":       {lexicon.Unknown, lexicon.Singular, lexicon.Possessive, 2, false},
	"yourself":   {lexicon.Unknown, lexicon.Singular, lexicon.Object, 2, true},
	"he":         {lexicon.Male, lexicon.Singular, lexicon.Subject, 3, false},
	"him":        {lexicon.Male, lexicon.Singular, lexicon.Object, 3, false},
	"his":        {lexicon.Male, lexicon.Singular, lexicon.Possessive, 3, false},
	"himself":    {lexicon.Male, lexicon.Singular, lexicon.Object, 3, true},
	"she":        {lexicon.Female, lexicon.Singular, lexicon.Subject, 3, false},
	"her":        {lexicon.Female, lexicon.Singular, lexicon.Object, 3, false},
	"hers":       {lexicon.Female, lexicon.Singular, lexicon.Possessive, 3, false},
	"herself":    {lexicon.Female, lexicon.Singular, lexicon.Object, 3, true},
	"it":         {lexicon.Neuter, lexicon.Singular, lexicon.Subject, 3, false},
	"its":        {lexicon.Neuter, lexicon.Singular, lexicon.Possessive, 3, false},
	"itself":     {lexicon.Neuter, lexicon.Singular, lexicon.Object, 3, true},
	"we":         {lexicon.Unknown, lexicon.Plural, lexicon.Subject, 1, false},
	"us":         {lexicon.Unknown, lexicon.Plural, lexicon.Object, 1, false},
	"our":        {lexicon.Unknown, lexicon.Plural, lexicon.Possessive, 1, false},
	"they":       {lexicon.Unknown, lexicon.Plural, lexicon.Subject, 3, false},
	"them":       {lexicon.Unknown, lexicon.Plural, lexicon.Object, 3, false},
	"their":      {lexicon.Unknown, lexicon.Plural, lexicon.Possessive, 3, false},
	"themselves": {lexicon.Unknown, lexicon.Plural, lexicon.Object, 3, true},
}

func (l *Lexer) functionWord(w, lower string, span logos.Span) (Token, bool) {
	if n, ok := cardinals[lower]; ok {
		t := l.make(Cardinal, w, lower, span)
		t.Feat.Count = n
		t.Feat.Number = lexicon.Plural
		if n == 1 {
			t.Feat.Number = lexicon.Singular
		}
		return t, true
	}
	if p, ok := pronouns[lower]; ok {
		kind := Pronoun
		if p.refl {
			kind = Reflexive
		}
		t := l.make(kind, w, lower, span)
		t.Feat.Gender, t.Feat.Number, t.Feat.Case, t.Feat.Person = p.gender, p.number, p.cas, p.person
		return t, true
	}
	if fw, ok := functionWords[lower]; ok {
		t := l.make(fw.kind, w, fw.lemma, span)
		t.Feat = fw.feat
		return t, true
	}
	if class, ok := l.lex.AdverbClass(lower); ok {
		kind := Adverb
		switch class {
		case "scopal":
			kind = ScopalAdverb
		case "temporal":
			kind = TemporalAdverb
		case "frequency":
			kind = FrequencyAdverb
		}
		return l.make(kind, w, lower, span), true
	}
	if l.lex.IsPreposition(lower) || lower == "of" || lower == "like" || lower == "about" {
		if _, isVerb := l.lex.Verb(lower); !isVerb {
			return l.make(Preposition, w, lower, span), true
		}
	}
	return Token{}, false
}

// --- Open-class words ------------------------------------------------------

func (l *Lexer) contentWord(w, lower string, span logos.Span, sentenceStart bool) Token {
	capitalized := unicode.IsUpper([]rune(w)[0])
	if capitalized && l.lex.NameGender(lower) != lexicon.Unknown {
		return l.properName(w, span)
	}
	var readings []Token
	if vf, ok := l.lex.Verb(lower); ok {
		readings = append(readings, l.verbToken(w, vf, span))
	}
	if af, ok := l.lex.Adjective(lower); ok {
		readings = append(readings, l.adjectiveToken(w, af, span))
	}
	if nf, ok := l.lex.Noun(lower); ok {
		readings = append(readings, l.nounToken(w, nf.Entry.Lemma, nf.Plural, nf.Entry.Gender, span))
	}
	if u, ok := l.lex.Unit(lower); ok && len(readings) == 0 {
		readings = append(readings, l.nounToken(w, u.Name, lower != u.Name, lexicon.Neuter, span))
	}
	if strings.Contains(lower, "-") {
		if t, ok := l.compound(w, lower, span); ok {
			readings = append(readings, t)
		}
	}
	if len(readings) > 0 && (!capitalized || sentenceStart) {
		return ambiguous(readings)
	}
	if capitalized {
		return l.properName(w, span)
	}
	return l.unknown(w, lower, span)
}

func (l *Lexer) properName(w string, span logos.Span) Token {
	t := l.make(ProperName, w, w, span)
	t.Feat.Gender = l.lex.NameGender(w)
	return t
}

func (l *Lexer) verbToken(w string, vf lexicon.VerbForm, span logos.Span) Token {
	t := l.make(Verb, w, vf.Entry.Lemma, span)
	t.Feat.Form = vf.Form
	t.Feat.Class = vf.Entry.Class
	switch vf.Form {
	case lexicon.Base:
		t.Feat.Tense = Present
		t.Feat.Number = lexicon.Plural
	case lexicon.Third:
		t.Feat.Tense = Present
	case lexicon.PastForm:
		t.Feat.Tense = PastTense
	}
	return t
}

func (l *Lexer) adjectiveToken(w string, af lexicon.AdjectiveForm, span logos.Span) Token {
	kind := Adjective
	switch af.Degree {
	case lexicon.ComparativeDegree:
		kind = Comparative
	case lexicon.SuperlativeDegree:
		kind = Superlative
	}
	return l.make(kind, w, af.Entry.Lemma, span)
}

func (l *Lexer) nounToken(w, lemma string, plural bool, g lexicon.Gender, span logos.Span) Token {
	t := l.make(Noun, w, lemma, span)
	t.Feat.Gender = g
	if plural {
		t.Feat.Number = lexicon.Plural
	}
	return t
}

// compound handles hyphenated nouns like "fake-gun"; the lemma keeps the
// hyphen and is resolved by axiom expansion.
func (l *Lexer) compound(w, lower string, span logos.Span) (Token, bool) {
	parts := strings.Split(lower, "-")
	last := parts[len(parts)-1]
	nf, ok := l.lex.Noun(last)
	if !ok {
		return Token{}, false
	}
	parts[len(parts)-1] = nf.Entry.Lemma
	return l.nounToken(w, strings.Join(parts, "-"), nf.Plural, nf.Entry.Gender, span), true
}

// unknown classifies a word not found in the lexicon by its shape.
func (l *Lexer) unknown(w, lower string, span logos.Span) Token {
	tracer().Debugf("unknown word %q", w)
	switch {
	case strings.HasSuffix(lower, "ly") && len(lower) > 4:
		return l.make(Adverb, w, lower, span)
	case strings.HasSuffix(lower, "ing") && len(lower) > 5:
		t := l.make(Verb, w, verbStem(strings.TrimSuffix(lower, "ing"), false), span)
		t.Feat.Form = lexicon.Gerund
		t.Feat.Class = lexicon.Activity
		return t
	case strings.HasSuffix(lower, "eed") && len(lower) > 4:
		t := l.make(Verb, w, strings.TrimSuffix(lower, "d"), span)
		t.Feat.Form = lexicon.PastForm
		t.Feat.Tense = PastTense
		t.Feat.Class = lexicon.Activity
		return t
	case strings.HasSuffix(lower, "ed") && len(lower) > 4:
		t := l.make(Verb, w, verbStem(strings.TrimSuffix(lower, "ed"), false), span)
		t.Feat.Form = lexicon.PastForm
		t.Feat.Tense = PastTense
		t.Feat.Class = lexicon.Activity
		return t
	case strings.HasSuffix(lower, "en") && len(lower) > 4:
		// "frozen" is a participle, "garden" a noun; the parser picks the reading
		v := l.make(Verb, w, verbStem(strings.TrimSuffix(lower, "en"), true), span)
		v.Feat.Form = lexicon.Participle
		v.Feat.Class = lexicon.Achievement
		n := l.nounToken(w, lower, false, lexicon.Unknown, span)
		return ambiguous([]Token{v, n})
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 3:
		stem := strings.TrimSuffix(lower, "s")
		v := l.make(Verb, w, stem, span)
		v.Feat.Form = lexicon.Third
		v.Feat.Tense = Present
		v.Feat.Class = lexicon.Activity
		n := l.nounToken(w, stem, true, lexicon.Unknown, span)
		return ambiguous([]Token{v, n})
	}
	return l.nounToken(w, lower, false, lexicon.Unknown, span)
}

// verbStem restores the base form of an unknown verb from the stem left over
// after removing an inflectional suffix: "carri" → "carry", "stopp" → "stop",
// "smil" → "smile". Strong participles keep the silent e after undoubling
// ("writt" → "write"), weak forms do not ("stopp" → "stop").
func verbStem(stem string, strong bool) string {
	n := len(stem)
	if n < 2 {
		return stem
	}
	last, prev := stem[n-1], stem[n-2]
	switch {
	case last == 'i' && !strong:
		return stem[:n-1] + "y"
	case last == 'u':
		return stem + "e"
	case last == prev && !isVowel(last) && !strings.ContainsRune("lsfz", rune(last)):
		stem = stem[:n-1]
		if !strong {
			return stem
		}
	}
	n, last = len(stem), stem[len(stem)-1]
	switch {
	case n < 2 || isVowel(last) || strings.ContainsRune("wxy", rune(last)):
		return stem
	case last == 'c' || last == 'v':
		return stem + "e"
	case isVowel(stem[n-2]) && (n == 2 || !isVowel(stem[n-3])) && vowelGroups(stem) == 1:
		return stem + "e"
	}
	return stem
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}

// vowelGroups counts runs of vowels, a rough syllable count.
func vowelGroups(w string) int {
	n, in := 0, false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i])
		if v && !in {
			n++
		}
		in = v
	}
	return n
}
