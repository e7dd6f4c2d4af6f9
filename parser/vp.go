package parser

import (
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/drs"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
)

// aux collects the auxiliaries, adverbs and negation of a verb phrase.
type aux struct {
	tense       lexer.Tense
	tensed      bool // tense given by an auxiliary
	untensed    bool // infinitives, gerunds, small clauses
	future      bool
	perfect     bool
	pastPerfect bool
	progressive bool
	passive     bool
	habitual    bool
	copula      bool
	pendingBe   bool // inverted "be", classified after the subject
	negated     bool
	modals      []ast.ModalVector // outermost first
	modalNeg    bool              // cannot
	mods        []intern.Symbol   // manner adverbs
	scopal      []intern.Symbol
	focused     bool
	focus       ast.FocusKind
}

func (a *aux) setTense(t lexer.Tense) {
	if !a.tensed {
		a.tense, a.tensed = t, true
	}
}

// vpResult is a verb phrase. Epistemic modals in outer take scope over the
// subject.
type vpResult struct {
	body  ast.ExprID
	outer []ast.ModalVector
}

func (r vpResult) wrap(p *Parser, e ast.ExprID) ast.ExprID {
	for _, v := range r.outer {
		e = p.arena.NewExpr(ast.Modal{Vector: v, Operand: e})
	}
	return e
}

// arg is a noun phrase argument of a verb. Arguments without a role only
// contribute their quantifier.
type arg struct {
	np      *nounPhrase
	role    ast.ThematicRole
	hasRole bool
}

// verbPhrase parses a verb phrase predicated of subj. Quantifiers of objects
// are closed within the verb phrase, the subject is left to the caller.
func (p *Parser) verbPhrase(subj *nounPhrase, a aux) (vpResult, error) {
	var res vpResult
	p.adverbs(&a)
	if a.pendingBe {
		a.pendingBe = false
		p.resolveBe(&a)
	}
	if !a.copula {
		p.auxiliaries(&a)
	}
	for p.match(lexer.Not) {
		a.negated = !a.negated
	}
	p.adverbs(&a)
	negative := p.negative
	p.negative = negative || a.negated || a.modalNeg
	defer func() { p.negative = negative }()
	var body ast.ExprID
	var err error
	if a.copula {
		body, err = p.copula(subj, &a)
	} else {
		body, err = p.eventPhrase(subj, &a)
	}
	if err != nil {
		return res, err
	}
	res.body = p.finish(&a, body, &res)
	return res, nil
}

// finish applies negation, future tense and modals.
func (p *Parser) finish(a *aux, body ast.ExprID, res *vpResult) ast.ExprID {
	if a.negated {
		body = p.arena.Not(body)
	}
	if a.future {
		body = p.arena.NewExpr(ast.Temporal{Op: ast.Future, Body: body})
	}
	for i := len(a.modals) - 1; i >= 0; i-- {
		v := a.modals[i]
		if v.Flavor == ast.Epistemic {
			res.outer = append(res.outer, v)
			continue
		}
		body = p.arena.NewExpr(ast.Modal{Vector: v, Operand: body})
	}
	if a.modalNeg {
		body = p.arena.Not(body)
	}
	return body
}

// --- Auxiliaries -----------------------------------------------------------

func (p *Parser) auxiliaries(a *aux) {
	for {
		t := p.peek()
		switch {
		case t.Kind == lexer.Will:
			p.advance()
			a.future = true
		case t.Kind.IsModal():
			p.advance()
			a.modals = append(a.modals, p.modalVector(t.Kind))
			if t.Kind == lexer.Cannot || (t.Kind == lexer.Can && p.check(lexer.Not)) {
				p.match(lexer.Not)
				a.modalNeg = true
			}
		case t.Kind == lexer.Not:
			p.advance()
			a.negated = !a.negated
		case t.Kind == lexer.Do && (p.peekAt(1).Kind == lexer.Not || p.formAhead(1, lexicon.Base)):
			p.advance()
			a.setTense(t.Feat.Tense)
		case t.Kind == lexer.Have && p.participleAhead(1):
			p.advance()
			a.perfect = true
			a.pastPerfect = t.Feat.Tense == lexer.PastTense
			a.setTense(t.Feat.Tense)
		case (t.Kind == lexer.Be || t.Kind == lexer.Been) && p.ableAhead(0):
			p.pos += 3 // be able to
			if t.Kind == lexer.Be && t.Feat.Tense != lexer.NoTense {
				a.setTense(t.Feat.Tense)
			}
			a.modals = append(a.modals, ast.ModalVector{Domain: ast.Alethic, Force: 0.5, Flavor: ast.Root})
		case t.Kind == lexer.Be || t.Kind == lexer.Been:
			p.advance()
			if t.Kind == lexer.Be && t.Feat.Tense != lexer.NoTense {
				a.setTense(t.Feat.Tense)
			}
			p.resolveBe(a)
			if a.copula {
				return
			}
		case t.Kind == lexer.Being:
			p.advance()
			if !p.participleAhead(0) {
				a.copula = true
				return
			}
			a.passive = true
		default:
			return
		}
	}
}

// resolveBe classifies a form of "be" which has just been consumed: it is a
// progressive or passive auxiliary, or a copula.
func (p *Parser) resolveBe(a *aux) {
	i := p.skipAdverbs(0)
	t := p.peekAt(i)
	switch {
	case t.Kind == lexer.Being:
		a.progressive = true
	case p.formAhead(i, lexicon.Gerund) && !t.Is(lexer.Adjective):
		a.progressive = true
	case p.formAhead(i, lexicon.Participle, lexicon.PastForm) && !t.Is(lexer.Adjective):
		a.passive = true
	default:
		a.copula = true
	}
}

func (p *Parser) skipAdverbs(i int) int {
	for {
		switch p.peekAt(i).Kind {
		case lexer.Not, lexer.Adverb, lexer.FrequencyAdverb:
			i++
		default:
			return i
		}
	}
}

// formAhead checks if the token n ahead is a verb in one of forms.
func (p *Parser) formAhead(n int, forms ...lexicon.Form) bool {
	v, ok := p.peekAt(n).Reading(lexer.Verb)
	if !ok {
		return false
	}
	for _, f := range forms {
		if v.Feat.Form == f || p.sharedForm(v, f) {
			return true
		}
	}
	return false
}

// sharedForm checks the lexicon entry of verb token v for form f. A word is
// tagged with a single form, but forms may coincide: "run" is base form and
// participle, "put" is base, past and participle.
func (p *Parser) sharedForm(v lexer.Token, f lexicon.Form) bool {
	entry, ok := p.lex.VerbLemma(strings.ToLower(v.LemmaText(p.in)))
	if !ok {
		return false
	}
	word := strings.ToLower(v.Text(p.in))
	switch f {
	case lexicon.Participle:
		return entry.Participle == word
	case lexicon.PastForm:
		return entry.Past == word
	case lexicon.Base:
		return entry.Lemma == word
	}
	return false
}

func (p *Parser) participleAhead(n int) bool {
	i := p.skipAdverbs(n)
	return p.peekAt(i).Kind == lexer.Been || p.formAhead(i, lexicon.Participle, lexicon.PastForm)
}

func (p *Parser) ableAhead(n int) bool {
	return p.word(n+1) == "able" && p.peekAt(n+2).Kind == lexer.To
}

// modalVector maps a modal auxiliary to its position in modal space. The
// parser's modal preference resolves "can", "could" and "may".
func (p *Parser) modalVector(k lexer.Kind) ast.ModalVector {
	root := func(d ast.ModalDomain, force float32) ast.ModalVector {
		return ast.ModalVector{Domain: d, Force: force, Flavor: ast.Root}
	}
	epistemic := ast.ModalVector{Domain: ast.Alethic, Force: 0.5, Flavor: ast.Epistemic}
	switch k {
	case lexer.Must:
		return root(ast.Alethic, 1.0)
	case lexer.Can, lexer.Cannot:
		if p.cfg.modal == PreferDeontic {
			return root(ast.Deontic, 0.5)
		}
		return root(ast.Alethic, 0.5)
	case lexer.Could:
		if p.cfg.modal == PreferEpistemic {
			return epistemic
		}
		return root(ast.Alethic, 0.5)
	case lexer.Shall:
		return root(ast.Deontic, 0.9)
	case lexer.Should:
		return root(ast.Deontic, 0.6)
	case lexer.Might:
		return ast.ModalVector{Domain: ast.Alethic, Force: 0.3, Flavor: ast.Epistemic}
	case lexer.May:
		if p.cfg.modal == PreferEpistemic {
			return epistemic
		}
		return root(ast.Deontic, 0.5)
	}
	return root(ast.Alethic, 0.5) // would
}

// adverbs collects adverbs and pre-verbal focus particles.
func (p *Parser) adverbs(a *aux) {
	for {
		t := p.peek()
		switch t.Kind {
		case lexer.Adverb:
			a.mods = append(a.mods, p.predSym(p.lemma(t)))
		case lexer.FrequencyAdverb:
			a.habitual = true
		case lexer.ScopalAdverb:
			a.scopal = append(a.scopal, p.scopalAdverb())
			continue
		case lexer.TemporalAdverb:
			p.anchors = append(p.anchors, p.predSym(p.lemma(t)))
		case lexer.Only, lexer.Even, lexer.Just:
			if !p.verbAhead(1) {
				return
			}
			a.focused = true
			a.focus, _ = focusKind(t.Kind)
		default:
			return
		}
		p.advance()
	}
}

func (p *Parser) scopalAdverb() intern.Symbol {
	t := p.advance()
	return p.predSym(p.lemma(t))
}

// --- Events ----------------------------------------------------------------

// eventPhrase parses a main verb with its complements and builds the
// neo-Davidsonian event.
func (p *Parser) eventPhrase(subj *nounPhrase, a *aux) (ast.ExprID, error) {
	vt, ok := p.take(lexer.Verb)
	if !ok {
		switch t := p.peek(); t.Kind {
		case lexer.Have, lexer.Do:
			vt = p.advance()
		default:
			return ast.NoExpr, p.errorAt(ExpectedVerb, t)
		}
	}
	lemma := p.lemma(vt)
	tense := vt.Feat.Tense
	if a.tensed {
		tense = a.tense
	}
	negVerb := false
	if c, ok := p.lex.Canonical(lemma); ok {
		tracer().Debugf("verb %q is canonical %q, negative=%v", lemma, c.Lemma, c.Negative)
		lemma, negVerb = c.Lemma, c.Negative
	}
	entry, _ := p.lex.VerbLemma(lemma)
	has := func(flag string) bool { return entry != nil && entry.Has(flag) }
	class := vt.Feat.Class
	if entry != nil {
		class = entry.Class
	}
	verb := p.predSym(lemma)
	frame := verbFrame(entry)
	past := tense == lexer.PastTense && !a.perfect && !a.untensed

	// complements which are not plain events
	switch {
	case !a.passive && has("control") && p.check(lexer.To) && p.verbAhead(1):
		p.advance()
		inf, err := p.infinitive(subj.term)
		if err != nil {
			return ast.NoExpr, err
		}
		c := p.arena.NewExpr(ast.Control{Verb: verb, Subject: subj.term, Object: ast.NoTerm, Infinitive: inf})
		return p.aspect(a, class, p.past(c, past)), nil
	case !a.passive && has("object_control") && p.nounPhraseAhead(0):
		obj, err := p.nounPhrase(asObject)
		if err != nil {
			return ast.NoExpr, err
		}
		if _, err := p.expect(lexer.To); err != nil {
			return ast.NoExpr, err
		}
		inf, err := p.infinitive(obj.term)
		if err != nil {
			return ast.NoExpr, err
		}
		c := p.arena.NewExpr(ast.Control{Verb: verb, Subject: subj.term, Object: obj.term, Infinitive: inf})
		return p.close(obj, p.aspect(a, class, p.past(c, past))), nil
	case !a.passive && has("presupposition") && p.formAhead(0, lexicon.Gerund):
		e, err := p.presupposition(subj, lemma)
		if err != nil {
			return ast.NoExpr, err
		}
		return p.aspect(a, class, p.past(e, past)), nil
	}

	var args []arg
	var extra []ast.Role
	presupposed := ast.NoExpr
	switch {
	case a.passive:
	case (has("attitude") || has("performative")) && p.complementAhead():
		content, err := p.complementClause()
		if err != nil {
			return ast.NoExpr, err
		}
		extra = append(extra, ast.Role{Role: ast.Theme, Term: p.arena.NewTerm(ast.Proposition{Expr: content})})
		if has("factive") {
			presupposed = content
		}
	case has("perception") && p.nounPhraseAhead(0):
		obj, err := p.nounPhrase(asObject)
		if err != nil {
			return ast.NoExpr, err
		}
		if !p.formAhead(0, lexicon.Base, lexicon.Gerund) {
			args = append(args, arg{np: obj, role: ast.Theme, hasRole: true})
			break
		}
		sc, err := p.smallClause(obj)
		if err != nil {
			return ast.NoExpr, err
		}
		extra = append(extra, ast.Role{Role: ast.Theme, Term: p.arena.NewTerm(ast.Proposition{Expr: sc})})
		args = append(args, arg{np: obj})
	default:
		objs, err := p.objects(frame)
		if err != nil {
			return ast.NoExpr, err
		}
		objRoles := frame[1:]
		for i, o := range objs {
			role := ast.Theme
			if k := len(objRoles) - len(objs) + i; k >= 0 && k < len(objRoles) {
				role = objRoles[k]
			}
			if has("opaque") && o.indefinite && !o.deferred {
				// de dicto: "seeks a unicorn" relates to the concept
				o.term = p.arena.NewTerm(ast.Intension{Predicate: o.noun})
				o.bound = false
			}
			args = append(args, arg{np: o, role: role, hasRole: true})
		}
	}
	pps, err := p.prepositionalPhrases(frame, a.passive)
	if err != nil {
		return ast.NoExpr, err
	}
	args = append(args, pps...)
	p.adverbs(a)

	if has("collective") || (has("mixed") && p.cfg.collective) {
		p.collectivize(subj)
	}
	subjRole := frame[0]
	if a.passive {
		subjRole = frame[len(frame)-1]
	}
	var mods []intern.Symbol
	if past {
		mods = append(mods, p.sym("Past"))
	}
	mods = append(mods, a.mods...)

	var ev ast.ExprID
	if r := reciprocalArg(args); r >= 0 && len(subj.members) > 1 {
		ev = p.reciprocal(subj, subjRole, args, r, verb, mods)
	} else {
		ev = p.event(verb, p.roles(subj.term, subjRole, args, extra), mods)
		if subj.distributes() {
			ev = p.arena.NewExpr(ast.Distributive{Predicate: ev})
		}
	}
	if presupposed.Valid() {
		ev = p.arena.NewExpr(ast.Presupposition{Assertion: ev, Presupposition: presupposed})
	}
	if negVerb && !p.cfg.wideNegation {
		ev = p.arena.Not(ev)
	}
	ev = p.aspect(a, class, ev)
	for i := len(a.scopal) - 1; i >= 0; i-- {
		ev = p.arena.NewExpr(ast.Scopal{Operator: a.scopal[i], Body: ev})
	}
	if a.focused {
		focused := subj.term
		if len(args) > 0 {
			focused = args[0].np.term
		}
		ev = p.arena.NewExpr(ast.Focus{Kind: a.focus, Focused: focused, Scope: ev})
	}
	for i := len(args) - 1; i >= 0; i-- {
		ev = p.close(args[i].np, ev)
	}
	if negVerb && p.cfg.wideNegation {
		ev = p.arena.Not(ev)
	}
	return ev, nil
}

func verbFrame(entry *lexicon.Verb) []ast.ThematicRole {
	frame := []ast.ThematicRole{ast.Agent, ast.Theme}
	if entry == nil || len(entry.Frame) == 0 {
		return frame
	}
	frame = frame[:0]
	for _, name := range entry.Frame {
		if r, ok := ast.RoleFromString(name); ok {
			frame = append(frame, r)
		}
	}
	if len(frame) == 0 {
		frame = append(frame, ast.Agent)
	}
	return frame
}

// objects parses up to two object noun phrases, or fills an object gap.
func (p *Parser) objects(frame []ast.ThematicRole) ([]*nounPhrase, error) {
	var objs []*nounPhrase
	for p.nounPhraseAhead(0) && (len(objs) == 0 || len(frame) > 2) && len(objs) < 2 {
		if p.check(lexer.Preposition) && !p.boundAhead(0) {
			break
		}
		obj, err := p.nounPhrase(asObject)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	if len(objs) == 0 && p.objGap.Valid() && len(frame) > 1 {
		objs = append(objs, &nounPhrase{term: p.objGap, restr: ast.NoExpr})
		p.objGap = ast.NoTerm
	}
	return objs, nil
}

// prepositionalPhrases parses prepositional phrases attached to the verb.
func (p *Parser) prepositionalPhrases(frame []ast.ThematicRole, passive bool) ([]arg, error) {
	var pps []arg
	for {
		t := p.peek()
		isPrep := t.Kind == lexer.Preposition && !p.boundAhead(0)
		if !(isPrep || t.Kind == lexer.To) || !p.nounPhraseAhead(1) {
			return pps, nil
		}
		p.advance()
		role := p.prepositionRole(p.lemma(t), frame, passive)
		obj, err := p.nounPhrase(asObject)
		if err != nil {
			return nil, err
		}
		pps = append(pps, arg{np: obj, role: role, hasRole: true})
	}
}

func (p *Parser) prepositionRole(prep string, frame []ast.ThematicRole, passive bool) ast.ThematicRole {
	switch {
	case prep == "by" && passive:
		return frame[0]
	case prep == "to":
		for _, r := range frame {
			if r == ast.Recipient {
				return r
			}
		}
	}
	if name, ok := p.lex.PrepositionRole(prep); ok {
		if r, ok := ast.RoleFromString(name); ok {
			return r
		}
	}
	return ast.Theme
}

func (p *Parser) roles(subj ast.TermID, subjRole ast.ThematicRole, args []arg, extra []ast.Role) []ast.Role {
	var roles []ast.Role
	if subj.Valid() {
		roles = append(roles, ast.Role{Role: subjRole, Term: subj})
	}
	for _, g := range args {
		if g.hasRole {
			roles = append(roles, ast.Role{Role: g.role, Term: g.np.term})
		}
	}
	roles = append(roles, extra...)
	if p.whRole != nil {
		roles = append(roles, *p.whRole)
		p.whRole = nil
	}
	return roles
}

func (p *Parser) event(verb intern.Symbol, roles []ast.Role, mods []intern.Symbol) ast.ExprID {
	return p.arena.NewExpr(ast.NeoEvent{
		EventVar:            p.eventVar,
		Verb:                verb,
		Roles:               roles,
		Modifiers:           mods,
		SuppressExistential: p.drs.InAntecedent() && !p.irrealis,
	})
}

// past marks non-event predications for past tense.
func (p *Parser) past(e ast.ExprID, past bool) ast.ExprID {
	if !past {
		return e
	}
	return p.arena.NewExpr(ast.Temporal{Op: ast.Past, Body: e})
}

// aspect applies grammatical aspect and voice. The perfect adds time
// constraints to the DRS: the event precedes the reference time.
func (p *Parser) aspect(a *aux, class lexicon.VerbClass, e ast.ExprID) ast.ExprID {
	if a.habitual {
		e = p.arena.NewExpr(ast.Aspectual{Op: ast.Habitual, Body: e})
	}
	if a.progressive {
		op := ast.Progressive
		if class == lexicon.Semelfactive {
			op = ast.Iterative
		}
		e = p.arena.NewExpr(ast.Aspectual{Op: op, Body: e})
	}
	if a.passive {
		e = p.arena.NewExpr(ast.Voice{Op: ast.Passive, Body: e})
	}
	if a.perfect {
		switch {
		case a.pastPerfect:
			r := p.drs.NextReferenceTime()
			p.drs.AddTimeConstraint(r, drs.Precedes, "S")
		case a.future:
			r := p.drs.NextReferenceTime()
			p.drs.AddTimeConstraint("S", drs.Precedes, r)
		}
		p.drs.AddTimeConstraint(p.cfg.EventVar(), drs.Precedes, p.drs.ReferenceTime())
		e = p.arena.NewExpr(ast.Aspectual{Op: ast.Perfect, Body: e})
	}
	return e
}

// collectivize switches a plural subject to its collective reading.
func (p *Parser) collectivize(subj *nounPhrase) {
	switch {
	case subj.sigma || len(subj.members) > 1:
		subj.collective = true
	case subj.bound && !subj.deferred && subj.quant == ast.Cardinal && subj.count > 1:
		subj.collective = true
		subj.group = p.sym("g")
		subj.term = p.arena.Var(subj.group)
	}
}

func reciprocalArg(args []arg) int {
	for i, g := range args {
		if g.np.reciprocal {
			return i
		}
	}
	return -1
}

// reciprocal expands "John and Mary love each other" to one event per
// ordered pair of group members.
func (p *Parser) reciprocal(subj *nounPhrase, subjRole ast.ThematicRole, args []arg, r int,
	verb intern.Symbol, mods []intern.Symbol) ast.ExprID {
	//
	subj.collective = true
	e := ast.NoExpr
	for i, x := range subj.members {
		for j, y := range subj.members {
			if i == j {
				continue
			}
			pair := append([]arg(nil), args...)
			pair[r].np = &nounPhrase{term: y, restr: ast.NoExpr}
			e = p.arena.And(e, p.event(verb, p.roles(x, subjRole, pair, nil), mods))
		}
	}
	return e
}

// --- Complements -----------------------------------------------------------

// infinitive parses an infinitival verb phrase ("to" already consumed) with
// agent as its understood subject.
func (p *Parser) infinitive(agent ast.TermID) (ast.ExprID, error) {
	np := &nounPhrase{term: agent, restr: ast.NoExpr}
	p.subjects = append(p.subjects, agent)
	defer func() { p.subjects = p.subjects[:len(p.subjects)-1] }()
	res, err := p.verbPhrase(np, aux{untensed: true})
	if err != nil {
		return ast.NoExpr, err
	}
	return res.wrap(p, res.body), nil
}

// smallClause parses the bare verb phrase of a perception report: "saw Mary
// run". The object's quantifier is closed by the caller.
func (p *Parser) smallClause(obj *nounPhrase) (ast.ExprID, error) {
	return p.infinitive(obj.term)
}

// presupposition parses aspectual verbs with a gerund: "stopped smoking"
// asserts ¬Smoke and presupposes Smoke.
func (p *Parser) presupposition(subj *nounPhrase, lemma string) (ast.ExprID, error) {
	activity, err := p.infinitive(subj.term)
	if err != nil {
		return ast.NoExpr, err
	}
	assertion, presupposed := activity, activity
	switch lemma {
	case "stop", "quit":
		assertion = p.arena.Not(activity)
	case "start", "begin":
		presupposed = p.arena.Not(activity)
	}
	return p.arena.NewExpr(ast.Presupposition{Assertion: assertion, Presupposition: presupposed}), nil
}

// complementAhead checks for a that-clause, an embedded question or a bare
// finite clause.
func (p *Parser) complementAhead() bool {
	t := p.peek()
	switch {
	case t.Kind == lexer.That, isWhWord(t.Kind):
		return true
	case t.Kind == lexer.ProperName, t.Kind == lexer.Pronoun && t.Feat.Case == lexicon.Subject:
		return p.verbAhead(1)
	}
	return false
}

// complementClause parses the content of an attitude report.
func (p *Parser) complementClause() (ast.ExprID, error) {
	if isWhWord(p.peek().Kind) {
		saved := p.island
		p.islands++
		p.island = p.islands
		defer func() { p.island = saved }()
		return p.whClause()
	}
	p.match(lexer.That)
	return p.compound()
}
