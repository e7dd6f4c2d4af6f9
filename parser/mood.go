package parser

import (
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
)

// --- Questions -------------------------------------------------------------

func (p *Parser) whQuestion() (ast.ExprID, error) {
	return p.whClause()
}

// whClause parses a wh-question, main or embedded. The wh-word binds a fresh
// variable which fills the subject, object or adjunct gap.
func (p *Parser) whClause() (ast.ExprID, error) {
	wh := p.advance()
	v := p.fresh()
	gap := p.arena.Var(v)
	var body ast.ExprID
	var err error
	switch wh.Kind {
	case lexer.Where, lexer.When, lexer.Why:
		body, err = p.adjunctQuestion(wh.Kind, gap)
	default:
		restr := ast.NoExpr
		if (wh.Kind == lexer.Which || wh.Kind == lexer.What) && p.nominalAhead(0) && !p.verbAhead(0) {
			var nom nominal
			if nom, err = p.nominal(); err != nil {
				return ast.NoExpr, err
			}
			restr = p.describe(nom, gap)
		}
		if isAuxiliary(p.peek().Kind) && p.nounPhraseAhead(1) {
			body, err = p.objectQuestion(gap)
		} else {
			head := &nounPhrase{term: gap, restr: ast.NoExpr, island: p.island, mark: len(p.donkeys)}
			body, err = p.predication(head, aux{})
		}
		if err == nil {
			body = p.arena.And(restr, body)
		}
	}
	if err != nil {
		return ast.NoExpr, err
	}
	return p.arena.NewExpr(ast.Question{WhVar: v, Body: body}), nil
}

// objectQuestion parses "did John see" with gap as the object.
func (p *Parser) objectQuestion(gap ast.TermID) (ast.ExprID, error) {
	var a aux
	p.invertedAux(&a)
	subj, err := p.nounPhrase(asSubject)
	if err != nil {
		return ast.NoExpr, err
	}
	saved := p.objGap
	p.objGap = gap
	defer func() { p.objGap = saved }()
	return p.predication(subj, a)
}

// adjunctQuestion parses where/when/why questions.
func (p *Parser) adjunctQuestion(wh lexer.Kind, gap ast.TermID) (ast.ExprID, error) {
	var a aux
	if isAuxiliary(p.peek().Kind) {
		p.invertedAux(&a)
	}
	subj, err := p.nounPhrase(asSubject)
	if err != nil {
		return ast.NoExpr, err
	}
	switch wh {
	case lexer.Where:
		p.whRole = &ast.Role{Role: ast.Location, Term: gap}
	case lexer.When:
		p.whRole = &ast.Role{Role: ast.Time, Term: gap}
	}
	body, err := p.predication(subj, a)
	p.whRole = nil
	if err != nil {
		return ast.NoExpr, err
	}
	if wh == lexer.Why {
		body = p.arena.NewExpr(ast.Causal{Cause: p.arena.Pred(p.sym("Reason"), gap), Effect: body})
	}
	return body, nil
}

// yesNoQuestion parses questions with subject-auxiliary inversion.
func (p *Parser) yesNoQuestion() (ast.ExprID, error) {
	var a aux
	p.invertedAux(&a)
	subj, err := p.nounPhrase(asSubject)
	if err != nil {
		return ast.NoExpr, err
	}
	body, err := p.predication(subj, a)
	if err != nil {
		return ast.NoExpr, err
	}
	return p.arena.NewExpr(ast.YesNoQuestion{Body: body}), nil
}

// invertedAux consumes an auxiliary preceding the subject.
func (p *Parser) invertedAux(a *aux) {
	t := p.advance()
	switch {
	case t.Kind == lexer.Do:
		a.setTense(t.Feat.Tense)
	case t.Kind == lexer.Be:
		a.setTense(t.Feat.Tense)
		a.pendingBe = true
	case t.Kind == lexer.Have:
		a.setTense(t.Feat.Tense)
		a.perfect = true
		a.pastPerfect = t.Feat.Tense == lexer.PastTense
	case t.Kind == lexer.Will:
		a.future = true
	case t.Kind.IsModal():
		a.modals = append(a.modals, p.modalVector(t.Kind))
		a.modalNeg = t.Kind == lexer.Cannot
	}
	if p.match(lexer.Not) {
		a.negated = true
	}
}

// --- Imperatives and performatives ----------------------------------------

// imperativeAhead checks for a sentence starting with a bare verb: "Run!",
// "Pass the salt." A word which may be a noun followed by a verb is a
// subject ("Fish swim.").
func (p *Parser) imperativeAhead() bool {
	t := p.peek()
	if t.Kind == lexer.Do && p.peekAt(1).Kind == lexer.Not {
		return true
	}
	return p.formAhead(0, lexicon.Base) && !p.verbAhead(1)
}

// imperative parses a command. The addressee is the agent.
func (p *Parser) imperative() (ast.ExprID, error) {
	you := &nounPhrase{term: p.arena.Const(p.sym("you")), restr: ast.NoExpr}
	body, err := p.predication(you, aux{untensed: true})
	if err != nil {
		return ast.NoExpr, err
	}
	return p.arena.NewExpr(ast.Imperative{Action: body}), nil
}

// performative checks for "I promise …", "I declare …".
func (p *Parser) performative() bool {
	t := p.peek()
	if t.Kind != lexer.Pronoun || t.Feat.Person != 1 || t.Feat.Case != lexicon.Subject {
		return false
	}
	v, ok := p.peekAt(1).Reading(lexer.Verb)
	if !ok || v.Feat.Form != lexicon.Base {
		return false
	}
	entry, ok := p.lex.VerbLemma(p.lemma(v))
	return ok && entry.Has("performative")
}

// speechAct parses a performative utterance: "I promise that I will come",
// "I promise to come".
func (p *Parser) speechAct() (ast.ExprID, error) {
	speaker := p.pronounTerm(p.advance())
	v := p.advance()
	act := p.predSym(p.lemma(v.Primary()))
	if r, ok := v.Reading(lexer.Verb); ok {
		act = p.predSym(p.lemma(r))
	}
	var content ast.ExprID
	var err error
	switch {
	case p.match(lexer.To):
		content, err = p.infinitive(speaker)
	default:
		p.match(lexer.That)
		content, err = p.compound()
	}
	if err != nil {
		return ast.NoExpr, err
	}
	performer := p.arena.Term(speaker).(ast.Constant).Name
	return p.arena.NewExpr(ast.SpeechAct{Performer: performer, Act: act, Content: content}), nil
}

// --- Intensional contexts --------------------------------------------------

// itIsModal checks for "it is (not) possible/necessary that".
func (p *Parser) itIsModal() bool {
	t := p.peek()
	if t.Kind != lexer.Pronoun || p.lemma(t) != "it" || p.peekAt(1).Kind != lexer.Be {
		return false
	}
	i := 2
	if p.peekAt(i).Kind == lexer.Not {
		i++
	}
	adj, ok := p.peekAt(i).Reading(lexer.Adjective)
	if !ok || p.peekAt(i+1).Kind != lexer.That {
		return false
	}
	af, known := p.lex.Adjective(p.lemma(adj))
	return known && af.Entry.Is("modal")
}

// intensional parses "it is possible that S" as an intensional operator
// applied to S.
func (p *Parser) intensional() (ast.ExprID, error) {
	p.advance() // it
	be := p.advance()
	neg := p.match(lexer.Not)
	adj, _ := p.take(lexer.Adjective)
	p.advance() // that
	content, err := p.compound()
	if err != nil {
		return ast.NoExpr, err
	}
	e := p.arena.NewExpr(ast.Intensional{Operator: p.predSym(p.lemma(adj)), Content: content})
	if neg {
		e = p.arena.Not(e)
	}
	return p.past(e, be.Feat.Tense == lexer.PastTense), nil
}
