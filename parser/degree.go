package parser

import (
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
)

// --- Copula ----------------------------------------------------------------

// copula parses the complement of "be": adjectives, predicate nominals,
// identities, metaphors, comparatives and superlatives.
func (p *Parser) copula(subj *nounPhrase, a *aux) (ast.ExprID, error) {
	t := p.peek()
	var body ast.ExprID
	var err error
	switch {
	case t.Kind == lexer.Number || t.Is(lexer.Comparative) || t.Kind == lexer.More:
		body, err = p.comparative(subj)
	case t.Kind == lexer.Article && t.Feat.Definite &&
		(p.peekAt(1).Is(lexer.Superlative) || p.peekAt(1).Kind == lexer.Most):
		body, err = p.superlative(subj)
	case t.Kind == lexer.Article && t.Feat.Definite:
		body, err = p.definitePredicate(subj)
	case t.Kind == lexer.Article:
		p.advance()
		var nom nominal
		if nom, err = p.nominal(); err == nil {
			body = p.describe(nom, subj.term)
		}
	case t.Kind == lexer.ProperName:
		name := p.nameTerm(p.advance())
		body = p.arena.NewExpr(ast.Identity{Left: subj.term, Right: name})
	case t.Kind == lexer.Preposition:
		prep := p.advance()
		var obj *nounPhrase
		if obj, err = p.nounPhrase(asObject); err == nil {
			body = p.close(obj, p.arena.Pred(p.predSym(p.lemma(prep)), subj.term, obj.term))
		}
	case t.Is(lexer.Adjective) && !p.peekAt(1).Is(lexer.Noun):
		body, err = p.adjectives(subj)
	case p.nominalAhead(0):
		var nom nominal
		if nom, err = p.nominal(); err == nil {
			body = p.describe(nom, subj.term)
		}
	case p.objGap.Valid():
		// "Who is John?"
		body = p.arena.NewExpr(ast.Identity{Left: subj.term, Right: p.objGap})
		p.objGap = ast.NoTerm
	case p.whRole != nil:
		// "Where is John?"
		body = p.arena.Pred(p.sym(p.whRole.Role.String()), subj.term, p.whRole.Term)
		p.whRole = nil
	default:
		return ast.NoExpr, p.unexpected("predicate")
	}
	if err != nil {
		return ast.NoExpr, err
	}
	if subj.distributes() {
		body = p.arena.NewExpr(ast.Distributive{Predicate: body})
	}
	body = p.aspect(a, "", body)
	return p.past(body, a.tensed && a.tense == lexer.PastTense && !a.perfect), nil
}

// adjectives parses coordinated predicative adjectives.
func (p *Parser) adjectives(subj *nounPhrase) (ast.ExprID, error) {
	e := ast.NoExpr
	op := ast.And
	for {
		adj, ok := p.take(lexer.Adjective)
		if !ok {
			return ast.NoExpr, p.unexpected("adjective")
		}
		pred := p.arena.Pred(p.predSym(p.lemma(adj)), subj.term)
		if e.Valid() {
			e = p.arena.Binary(e, op, pred)
		} else {
			e = pred
		}
		next := p.peek().Kind
		if (next == lexer.And || next == lexer.Or || next == lexer.Comma) && p.peekAt(1).Is(lexer.Adjective) {
			switch next {
			case lexer.And:
				op = ast.And
			case lexer.Or:
				op = ast.Or
			}
			p.advance()
			continue
		}
		return e, nil
	}
}

// definitePredicate parses "is the N". A name equated with an inanimate
// thing is a metaphor ("Juliet is the sun"), anything else an identity with a
// definite description.
func (p *Parser) definitePredicate(subj *nounPhrase) (ast.ExprID, error) {
	start := p.pos
	p.advance() // the
	nom, err := p.nominal()
	if err != nil {
		return ast.NoExpr, err
	}
	if n, ok := p.lex.NounLemma(nom.lemma); ok && n.Inanimate && subj.name && !p.relativeAhead() {
		tracer().Debugf("metaphor: %s is the %s", p.in.Resolve(subj.noun), nom.lemma)
		return p.arena.NewExpr(ast.Metaphor{Tenor: subj.term, Vehicle: p.arena.Const(nom.noun)}), nil
	}
	p.pos = start
	obj, err := p.nounPhrase(asObject)
	if err != nil {
		return ast.NoExpr, err
	}
	return p.close(obj, p.arena.NewExpr(ast.Identity{Left: subj.term, Right: obj.term})), nil
}

// --- Degrees ---------------------------------------------------------------

// comparative parses "[n units] taller than NP" and "more A than NP".
func (p *Parser) comparative(subj *nounPhrase) (ast.ExprID, error) {
	diff := ast.NoTerm
	if p.check(lexer.Number) {
		diff = p.measure()
	}
	adj, err := p.comparativeAdjective()
	if err != nil {
		return ast.NoExpr, err
	}
	if !p.match(lexer.Than) {
		return ast.NoExpr, p.errorAt(ExpectedThan, p.peek())
	}
	obj, err := p.nounPhrase(asObject)
	if err != nil {
		return ast.NoExpr, err
	}
	c := p.arena.NewExpr(ast.Comparative{
		Adjective:  adj,
		Subject:    subj.term,
		Object:     obj.term,
		Difference: diff,
	})
	return p.close(obj, c), nil
}

func (p *Parser) comparativeAdjective() (intern.Symbol, error) {
	t := p.peek()
	if c, ok := p.take(lexer.Comparative); ok {
		return p.sym(strings.ToLower(p.in.Resolve(c.Lexeme))), nil
	}
	if t.Kind == lexer.More {
		p.advance()
		a, ok := p.take(lexer.Adjective)
		if !ok {
			return intern.Empty, p.errorAt(ExpectedComparativeAdjective, p.peek())
		}
		return p.sym(p.comparativeForm(p.lemma(a))), nil
	}
	return intern.Empty, p.errorAt(ExpectedComparativeAdjective, t)
}

// superlative parses "the tallest N" and "the most A N".
func (p *Parser) superlative(subj *nounPhrase) (ast.ExprID, error) {
	p.advance() // the
	var adj intern.Symbol
	if s, ok := p.take(lexer.Superlative); ok {
		adj = p.sym(p.comparativeForm(p.lemma(s)))
	} else if p.match(lexer.Most) {
		a, ok := p.take(lexer.Adjective)
		if !ok {
			return ast.NoExpr, p.errorAt(ExpectedSuperlativeAdjective, p.peek())
		}
		adj = p.sym(p.comparativeForm(p.lemma(a)))
	} else {
		return ast.NoExpr, p.errorAt(ExpectedSuperlativeAdjective, p.peek())
	}
	nom, err := p.nominal()
	if err != nil {
		return ast.NoExpr, err
	}
	return p.arena.NewExpr(ast.Superlative{Adjective: adj, Subject: subj.term, Domain: nom.noun}), nil
}

// comparativeForm returns the comparative of an adjective lemma, which names
// the degree relation.
func (p *Parser) comparativeForm(lemma string) string {
	if af, ok := p.lex.Adjective(lemma); ok && af.Entry.Comparative != "" {
		return af.Entry.Comparative
	}
	return "more-" + lemma
}

// measure parses a number with an optional unit: "2 inches".
func (p *Parser) measure() ast.TermID {
	raw := p.in.Resolve(p.advance().Lexeme)
	v := ast.Value{Kind: ast.Integer, Raw: raw}
	if strings.Contains(raw, ".") {
		v.Kind = ast.Real
	}
	if u, ok := p.lex.Unit(p.word(0)); ok {
		p.advance()
		v.Unit, v.Dimension = p.sym(u.Name), p.sym(u.Dimension)
	}
	return p.arena.NewTerm(v)
}
