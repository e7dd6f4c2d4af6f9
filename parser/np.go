package parser

import (
	"strings"

	"github.com/npillmayer/logos"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/drs"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
)

type position int8

const (
	asSubject position = iota
	asObject
)

// nounPhrase is a parsed noun phrase. Quantified noun phrases are not turned
// into expressions right away: the verb phrase is parsed with term standing
// in for the noun phrase, and close builds the quantifier around it.
type nounPhrase struct {
	term       ast.TermID
	bound      bool // v is bound by a quantifier built in close
	quant      ast.QuantifierKind
	count      int
	negative   bool // "no N"
	v          intern.Symbol
	restr      ast.ExprID
	noun       intern.Symbol // head noun predicate
	plural     bool
	gender     lexicon.Gender
	island     int
	indefinite bool
	deferred   bool // donkey, binder is added by the enclosing construction
	boxed      bool // universal scope box open until close
	mark       int  // donkey mark
	name       bool
	members    []ast.TermID // coordinated names
	sigma      bool         // plural definite
	reciprocal bool
	collective bool
	group      intern.Symbol
	focused    bool
	focus      ast.FocusKind
	span       logos.Span
}

// distributes is true if a predicate applies to the members of a plural
// term one by one.
func (np *nounPhrase) distributes() bool {
	return !np.collective && (np.sigma || len(np.members) > 1)
}

// close builds the quantifier of np with scope body. Unbound noun phrases
// return body unchanged.
func (p *Parser) close(np *nounPhrase, body ast.ExprID) ast.ExprID {
	if np.focused && body.Valid() {
		body = p.arena.NewExpr(ast.Focus{Kind: np.focus, Focused: np.term, Scope: body})
	}
	if np.boxed {
		p.drs.ExitBox()
		np.boxed = false
	}
	switch {
	case !np.bound:
		return body
	case np.deferred:
		return p.arena.And(np.restr, body)
	case np.collective:
		if !body.Valid() {
			body = p.arena.Pred(p.sym("Exist"), np.term)
		}
		return p.arena.NewExpr(ast.GroupQuantifier{
			GroupVar:    np.group,
			Count:       np.count,
			MemberVar:   np.v,
			Restriction: np.restr,
			Body:        body,
		})
	}
	var inner ast.ExprID
	switch np.quant {
	case ast.Universal, ast.Generic:
		if !body.Valid() {
			body = p.arena.Pred(p.sym("Exist"), np.term)
		}
		if np.negative {
			body = p.arena.Not(body)
		}
		inner = p.bindDonkeys(np.mark, np.restr, ast.If, body)
	default:
		inner = p.arena.And(np.restr, body)
	}
	return p.arena.NewExpr(ast.Quantifier{
		Kind:   np.quant,
		Count:  np.count,
		Var:    np.v,
		Body:   inner,
		Island: np.island,
	})
}

// nounPhrase parses a noun phrase in subject or object position.
func (p *Parser) nounPhrase(pos position) (*nounPhrase, error) {
	t := p.peek()
	np := &nounPhrase{
		term:   ast.NoTerm,
		restr:  ast.NoExpr,
		island: p.island,
		mark:   len(p.donkeys),
		span:   t.Span,
	}
	if k, ok := focusKind(t.Kind); ok {
		p.advance()
		np.focused, np.focus = true, k
		t = p.peek()
	}
	var err error
	switch {
	case t.Kind == lexer.ProperName && !p.isTypeName(t):
		p.properName(np, pos)
	case t.Kind == lexer.Pronoun:
		err = p.pronoun(np)
	case t.Kind == lexer.Reflexive:
		err = p.reflexive(np)
	case t.Kind == lexer.Article:
		if p.advance().Feat.Definite {
			err = p.definite(np, pos)
		} else {
			err = p.indefinite(np, pos)
		}
	case t.Kind.IsQuantifier() || t.Kind == lexer.Number || p.boundAhead(0):
		err = p.quantified(np, pos)
	case t.Kind == lexer.String:
		p.advance()
		text := strings.Trim(p.in.Resolve(t.Lexeme), `"`)
		np.term = p.arena.Const(p.sym(text))
	case p.nominalAhead(0):
		err = p.bare(np, pos)
	default:
		return nil, p.errorAt(ExpectedNoun, t)
	}
	if err != nil {
		return nil, err
	}
	if err = p.possessives(np); err != nil {
		return nil, err
	}
	if p.pos > 0 {
		np.span = np.span.Extend(p.toks[p.pos-1].Span)
	}
	return np, nil
}

func focusKind(k lexer.Kind) (ast.FocusKind, bool) {
	switch k {
	case lexer.Only:
		return ast.Only, true
	case lexer.Even:
		return ast.Even, true
	case lexer.Just:
		return ast.Just, true
	}
	return ast.Only, false
}

// properName parses a name, or names coordinated by "and".
func (p *Parser) properName(np *nounPhrase, pos position) {
	save := p.pos
	members := []ast.TermID{p.nameTerm(p.advance())}
	for p.check(lexer.And) && p.peekAt(1).Kind == lexer.ProperName {
		p.advance()
		members = append(members, p.nameTerm(p.advance()))
	}
	if len(members) > 1 && pos == asObject && p.verbAhead(0) {
		// "John loves Mary and Sue sleeps": no coordination
		p.pos = save
		members = []ast.TermID{p.nameTerm(p.advance())}
	}
	first := p.toks[save]
	np.name = len(members) == 1
	np.noun, np.gender = first.Lexeme, first.Feat.Gender
	if len(members) == 1 {
		np.term = members[0]
		return
	}
	np.members, np.plural = members, true
	np.term = p.arena.NewTerm(ast.Group{Members: members})
}

func (p *Parser) nameTerm(t lexer.Token) ast.TermID {
	p.drs.IntroduceProperName(t.Lexeme, t.Lexeme, t.Feat.Gender)
	return p.arena.Const(t.Lexeme)
}

// pronoun parses personal and possessive pronouns. "her" followed by a word
// which may be a noun or a verb is a determiner only with noun priority.
func (p *Parser) pronoun(np *nounPhrase) error {
	t := p.advance()
	np.gender, np.plural = t.Feat.Gender, t.Feat.Number == lexicon.Plural
	if p.lemma(t) == "EachOther" {
		np.reciprocal = true
		np.term = p.arena.Const(t.Lemma)
		return nil
	}
	owner := p.pronounTerm(t)
	determiner := t.Feat.Case == lexicon.Possessive
	if !determiner && p.lemma(t) == "her" && p.nominalAhead(0) {
		next := p.peek()
		determiner = next.Kind != lexer.Ambiguous || !next.Is(lexer.Verb) || p.cfg.nounPriority
	}
	if !determiner {
		np.term = owner
		return nil
	}
	nom, err := p.nominal()
	if err != nil {
		return err
	}
	np.noun, np.gender, np.plural = nom.noun, nom.gender, nom.plural
	np.term = p.arena.NewTerm(ast.Possessed{Possessor: owner, Possessed: nom.noun})
	return nil
}

// pronounTerm resolves a pronoun against the DRS. Speaker and addressee are
// constants.
func (p *Parser) pronounTerm(t lexer.Token) ast.TermID {
	switch t.Feat.Person {
	case 1:
		if t.Feat.Number == lexicon.Plural {
			return p.arena.Const(p.sym("we"))
		}
		return p.arena.Const(p.sym("I"))
	case 2:
		return p.arena.Const(p.sym("you"))
	}
	if v, ok := p.drs.ResolvePronoun(t.Feat.Gender, t.Feat.Number); ok {
		if ref, ok := p.drs.Lookup(v); ok && ref.Source == drs.ProperName {
			return p.arena.Const(v)
		}
		return p.arena.Var(v)
	}
	tracer().Infof("pronoun %q has no accessible antecedent", p.lemma(t))
	return p.arena.Const(t.Lemma)
}

func (p *Parser) reflexive(np *nounPhrase) error {
	t := p.advance()
	if t.Feat.Person == 1 || t.Feat.Person == 2 {
		np.term = p.pronounTerm(t)
		return nil
	}
	if len(p.subjects) == 0 || !p.subjects[len(p.subjects)-1].Valid() {
		return p.errorAt(UnresolvedPronoun, t)
	}
	np.term = p.subjects[len(p.subjects)-1]
	return nil
}

// indefinite parses "a/an N". In a restrictor or a conditional antecedent
// the indefinite is deferred: whether it is bound universally or
// existentially is decided by its enclosing construction.
func (p *Parser) indefinite(np *nounPhrase, pos position) error {
	nom, err := p.nominal()
	if err != nil {
		return err
	}
	p.bind(np, nom, ast.Existential)
	np.indefinite = true
	if np.restr, err = p.postModifiers(np, np.restr, pos); err != nil {
		return err
	}
	if p.drs.InAntecedent() || p.drs.InRestrictor() {
		np.deferred = true
		p.donkeys = append(p.donkeys, donkey{v: np.v, island: np.island})
	}
	return nil
}

// definite parses "the N". A singular definite is resolved against the DRS,
// otherwise it gets a Russellian reading. Plural definites denote the sum
// of their members.
func (p *Parser) definite(np *nounPhrase, pos position) error {
	nom, err := p.nominal()
	if err != nil {
		return err
	}
	np.noun, np.gender, np.plural = nom.noun, nom.gender, nom.plural
	if nom.plural {
		np.sigma = true
		np.term = p.arena.NewTerm(ast.Sigma{Predicate: nom.noun})
		return nil
	}
	if !p.relativeAhead() {
		if v, ok := p.drs.ResolveDefinite(nom.noun); ok {
			tracer().Debugf("definite %s resolved to %s", p.in.Resolve(nom.noun), p.in.Resolve(v))
			np.term = p.arena.Var(v)
			return nil
		}
	}
	p.bind(np, nom, ast.Existential)
	if np.restr, err = p.postModifiers(np, np.restr, pos); err != nil {
		return err
	}
	y := p.fresh()
	unique := p.arena.Quant(ast.Universal, y, p.arena.Binary(
		p.arena.Pred(nom.noun, p.arena.Var(y)),
		ast.If,
		p.arena.NewExpr(ast.Identity{Left: p.arena.Var(y), Right: np.term}),
	), np.island)
	np.restr = p.arena.And(np.restr, unique)
	if p.drs.InAntecedent() {
		// the presupposition projects out of the antecedent
		np.deferred = true
		p.donkeys = append(p.donkeys, donkey{v: np.v, island: np.island, definite: true, restr: np.restr})
		np.restr = ast.NoExpr
	}
	return nil
}

// quantified parses determiners: every, some, no, most, cardinals, at least.
func (p *Parser) quantified(np *nounPhrase, pos position) error {
	t := p.advance()
	switch t.Kind {
	case lexer.All:
		np.quant = ast.Universal
		if p.check(lexer.Article) && p.peek().Feat.Definite {
			p.advance() // all the dogs
		}
	case lexer.Some:
		np.quant = ast.Existential
	case lexer.No:
		np.quant, np.negative = ast.Universal, true
	case lexer.Most:
		np.quant = ast.Most
	case lexer.Few:
		np.quant = ast.Few
	case lexer.Many:
		np.quant = ast.Many
	case lexer.Any:
		np.quant = ast.Universal
		if p.negative {
			np.quant = ast.Existential
		}
	case lexer.Cardinal, lexer.Number:
		np.quant, np.count = ast.Cardinal, p.count(t)
	default: // at least, at most
		np.quant = ast.AtLeast
		if p.advance().Kind == lexer.Most {
			np.quant = ast.AtMost
		}
		n := p.peek()
		if n.Kind != lexer.Cardinal && n.Kind != lexer.Number {
			return p.errorAt(ExpectedNumber, n)
		}
		np.count = p.count(p.advance())
	}
	restricted := np.quant == ast.Universal
	if restricted {
		p.drs.EnterBox(drs.UniversalRestrictor)
	}
	nom, err := p.nominal()
	if err != nil {
		return err
	}
	p.bind(np, nom, np.quant)
	if np.restr, err = p.postModifiers(np, np.restr, pos); err != nil {
		return err
	}
	if restricted {
		p.openScope(np, pos)
	}
	return nil
}

// bare parses bare plurals and mass nouns. In subject position they are
// generic, in object position existential.
func (p *Parser) bare(np *nounPhrase, pos position) error {
	quant := ast.Existential
	if pos == asSubject {
		quant = ast.Generic
		p.drs.EnterBox(drs.UniversalRestrictor)
	}
	nom, err := p.nominal()
	if err != nil {
		return err
	}
	p.bind(np, nom, quant)
	if np.restr, err = p.postModifiers(np, np.restr, pos); err != nil {
		return err
	}
	if quant == ast.Generic {
		p.openScope(np, pos)
	}
	return nil
}

// openScope leaves the restrictor box of a universal noun phrase. For
// subjects, the scope box stays open until the subject is closed.
func (p *Parser) openScope(np *nounPhrase, pos position) {
	p.drs.ExitBox()
	if pos == asSubject {
		p.drs.EnterBox(drs.UniversalScope)
		np.boxed = true
	}
}

// bind introduces a fresh variable for np, restricted by nom.
func (p *Parser) bind(np *nounPhrase, nom nominal, q ast.QuantifierKind) {
	np.bound, np.quant = true, q
	np.v = p.fresh()
	np.term = p.arena.Var(np.v)
	np.noun, np.gender, np.plural = nom.noun, nom.gender, nom.plural
	number := lexicon.Singular
	if nom.plural {
		number = lexicon.Plural
	}
	p.drs.Introduce(np.v, nom.noun, nom.gender, number)
	np.restr = p.describe(nom, np.term)
}

func (p *Parser) count(t lexer.Token) int {
	if t.Kind == lexer.Cardinal {
		return t.Feat.Count
	}
	n := 0
	for _, c := range p.in.Resolve(t.Lexeme) {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// possessives parses "'s" chains: "John's dog", "the farmer's wife's car".
func (p *Parser) possessives(np *nounPhrase) error {
	for p.match(lexer.Possessive) {
		nom, err := p.nominal()
		if err != nil {
			return err
		}
		np.term = p.arena.NewTerm(ast.Possessed{Possessor: np.term, Possessed: nom.noun})
		np.noun, np.gender, np.plural = nom.noun, nom.gender, nom.plural
		np.name, np.members = false, nil
	}
	return nil
}

// --- Nominals --------------------------------------------------------------

// nominal is a head noun with its prenominal adjectives.
type nominal struct {
	adjs      []intern.Symbol
	noun      intern.Symbol
	lemma     string
	plural    bool
	gender    lexicon.Gender
	eventVerb intern.Symbol // for event adjectives: "beautiful dancer"
	eventMods []intern.Symbol
}

// nominal parses adjectives and a head noun. Privative adjectives fuse with
// the noun ("fake gun" ↦ Fake-Gun).
func (p *Parser) nominal() (nominal, error) {
	var nom nominal
	var privative []string
	for {
		adj, ok := p.peek().Reading(lexer.Adjective)
		if !ok || !p.nominalAhead(1) {
			break
		}
		p.advance()
		lemma := p.lemma(adj)
		af, known := p.lex.Adjective(lemma)
		switch {
		case known && af.Entry.Is("privative"):
			privative = append(privative, lemma)
		case known && af.Entry.Is("event") && p.cfg.eventAdjectives:
			nom.eventMods = append(nom.eventMods, p.predSym(lemma))
		default:
			nom.adjs = append(nom.adjs, p.predSym(lemma))
		}
	}
	t := p.peek()
	n, ok := t.Reading(lexer.Noun)
	if !ok && p.isTypeName(t) {
		n, ok = t, true
		n.Lemma = t.Lexeme
	}
	if !ok {
		return nom, p.errorAt(ExpectedNoun, t)
	}
	p.advance()
	nom.lemma = p.lemma(n)
	if len(privative) > 0 {
		nom.lemma = strings.Join(privative, "-") + "-" + nom.lemma
	}
	nom.noun = p.predSym(nom.lemma)
	nom.plural = n.Feat.Number == lexicon.Plural
	nom.gender = n.Feat.Gender
	if len(nom.eventMods) > 0 {
		if verb, ok := p.lex.AgentiveVerb(p.lemma(n)); ok {
			nom.eventVerb = p.predSym(verb)
		} else {
			nom.adjs = append(nom.adjs, nom.eventMods...)
			nom.eventMods = nil
		}
	}
	return nom, nil
}

// describe builds the restriction of nom on t.
func (p *Parser) describe(nom nominal, t ast.TermID) ast.ExprID {
	e := ast.NoExpr
	for _, a := range nom.adjs {
		e = p.arena.And(e, p.arena.Pred(a, t))
	}
	e = p.arena.And(e, p.arena.Pred(nom.noun, t))
	if nom.eventVerb != intern.Empty {
		e = p.arena.And(e, p.arena.NewExpr(ast.NeoEvent{
			EventVar:  p.eventVar,
			Verb:      nom.eventVerb,
			Roles:     []ast.Role{{Role: ast.Agent, Term: t}},
			Modifiers: nom.eventMods,
		}))
	}
	return e
}

// postModifiers parses prepositional phrases and relative clauses after a
// head noun. In object position, prepositional phrases other than "of"
// attach to the verb unless configured otherwise.
func (p *Parser) postModifiers(np *nounPhrase, restr ast.ExprID, pos position) (ast.ExprID, error) {
	for {
		switch {
		case p.check(lexer.Preposition) && !p.boundAhead(0) &&
			(p.word(0) == "of" || pos == asSubject || p.cfg.ppToNoun):
			prep := p.advance()
			obj, err := p.nounPhrase(asObject)
			if err != nil {
				return ast.NoExpr, err
			}
			pp := p.arena.Pred(p.predSym(p.lemma(prep)), np.term, obj.term)
			restr = p.arena.And(restr, p.close(obj, pp))
		case p.relativeAhead():
			rel, err := p.relativeClause(np)
			if err != nil {
				return ast.NoExpr, err
			}
			restr = p.arena.And(restr, rel)
		default:
			return restr, nil
		}
	}
}

func (p *Parser) relativeAhead() bool {
	switch p.peek().Kind {
	case lexer.Who, lexer.Which:
		return true
	case lexer.That:
		return p.verbAhead(1) || p.nounPhraseAhead(1)
	}
	return false
}

// relativeClause parses "who VP" and "that NP V". Relative clauses are scope
// islands.
func (p *Parser) relativeClause(np *nounPhrase) (ast.ExprID, error) {
	p.advance() // who, which, that
	saved := p.island
	p.islands++
	p.island = p.islands
	defer func() { p.island = saved }()
	if p.nounPhraseAhead(0) && !p.verbAhead(0) {
		subj, err := p.nounPhrase(asSubject)
		if err != nil {
			return ast.NoExpr, err
		}
		gap := p.objGap
		p.objGap = np.term
		defer func() { p.objGap = gap }()
		return p.predication(subj, aux{})
	}
	head := &nounPhrase{
		term:   np.term,
		restr:  ast.NoExpr,
		island: p.island,
		mark:   len(p.donkeys),
		gender: np.gender,
		plural: np.plural,
	}
	return p.predication(head, aux{})
}
