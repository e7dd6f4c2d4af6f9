package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/discovery"
	"github.com/npillmayer/logos/drs"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexer"
	"github.com/npillmayer/logos/lexicon"
)

// Parser is a recursive descent parser for English sentences. It builds
// logical forms into an arena, threading a DRS through the sentences it
// parses. A Parser may be re-used for subsequent calls to Parse, but it is
// not safe for concurrent use.
type Parser struct {
	arena *ast.Arena
	in    *intern.Interner
	lex   *lexicon.Lexicon
	reg   *discovery.TypeRegistry
	cfg   Config

	toks     []lexer.Token
	pos      int
	drs      *drs.Drs
	island   int // island of the constituent currently parsed
	islands  int // highest island id handed out
	eventVar intern.Symbol
	donkeys  []donkey     // deferred indefinites, see bindDonkeys
	subjects []ast.TermID // clause subjects, innermost last
	anchors  []intern.Symbol
	objGap   ast.TermID // filler of an object gap
	whRole   *ast.Role  // extra role contributed by where/when questions
	negative bool       // parsing within the scope of clausal negation
	irrealis bool       // parsing a counterfactual antecedent

	sentences []ast.ExprID
}

// donkey is an indefinite in a restrictor or antecedent, waiting for its
// quantificational force. Definites of an antecedent carry their restriction
// and are always bound existentially over the whole construction.
type donkey struct {
	v        intern.Symbol
	island   int
	definite bool
	restr    ast.ExprID
}

// New creates a parser. Symbols are interned with in, nodes are allocated
// in arena. reg may be nil.
func New(arena *ast.Arena, in *intern.Interner, lex *lexicon.Lexicon, reg *discovery.TypeRegistry, cfg Config) *Parser {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Parser{
		arena:  arena,
		in:     in,
		lex:    lex,
		reg:    reg,
		cfg:    cfg,
		objGap: ast.NoTerm,
	}
}

// Config returns the parser's configuration.
func (p *Parser) Config() Config {
	return p.cfg
}

// Parse parses a sequence of sentences. Sentences are conjoined in order.
// Discourse referents are introduced into d, which is created if nil. The DRS
// is handed back to the caller in any case, even if parsing fails.
func (p *Parser) Parse(tokens []lexer.Token, d *drs.Drs) (ast.ExprID, *drs.Drs, error) {
	p.start(tokens, d)
	root := ast.NoExpr
	for !p.check(lexer.EOF) {
		if p.check(lexer.Hash) {
			p.skipBlock()
			continue
		}
		s, err := p.sentence()
		if err != nil {
			return ast.NoExpr, p.release(), err
		}
		root = p.arena.And(root, s)
		p.sentences = append(p.sentences, s)
	}
	if !root.Valid() {
		err := p.unexpected("sentence")
		return ast.NoExpr, p.release(), err
	}
	tracer().Debugf("parsed input with %s, %d islands", p.cfg, p.islands+1)
	return root, p.release(), nil
}

func (p *Parser) start(tokens []lexer.Token, d *drs.Drs) {
	if d == nil {
		d = drs.New()
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOF {
		eof := lexer.Token{Kind: lexer.EOF}
		if len(tokens) > 0 {
			end := tokens[len(tokens)-1].Span.To()
			eof.Span = [2]uint64{end, end}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	p.toks, p.pos, p.drs = tokens, 0, d
	p.island, p.islands = 0, 0
	p.eventVar = p.in.Intern(p.cfg.EventVar())
	p.donkeys, p.subjects, p.anchors = nil, nil, nil
	p.objGap, p.whRole, p.negative, p.irrealis = ast.NoTerm, nil, false, false
	p.sentences = nil
}

// Sentences returns the logical forms of the sentences seen by the last call
// to Parse, in order. Parse returns their conjunction.
func (p *Parser) Sentences() []ast.ExprID {
	return p.sentences
}

func (p *Parser) release() *drs.Drs {
	d := p.drs
	p.drs, p.toks = nil, nil
	return d
}

// skipBlock skips a block header. Declaration blocks have been consumed by
// type discovery and are skipped as a whole.
func (p *Parser) skipBlock() {
	p.advance() // ##
	header := p.word(0)
	p.advance()
	switch header {
	case "definition", "definitions", "type", "types", "policy", "policies", "a", "an":
		for !p.check(lexer.Hash) && !p.check(lexer.EOF) {
			p.advance()
		}
	default:
		if p.match(lexer.Colon) && !p.check(lexer.EOF) {
			p.advance() // block name
		}
	}
}

// --- Sentences -------------------------------------------------------------

func (p *Parser) sentence() (ast.ExprID, error) {
	p.drs.ResetToMain()
	p.island = 0
	p.donkeys, p.subjects, p.anchors = p.donkeys[:0], p.subjects[:0], p.anchors[:0]
	e, err := p.sentenceBody()
	if err != nil {
		return ast.NoExpr, err
	}
	for i := len(p.anchors) - 1; i >= 0; i-- {
		e = p.arena.NewExpr(ast.TemporalAnchor{Anchor: p.anchors[i], Body: e})
	}
	if !p.match(lexer.Period) && !p.match(lexer.QuestionMark) && !p.match(lexer.Exclamation) &&
		!p.check(lexer.EOF) {
		return ast.NoExpr, p.unexpected("end of sentence")
	}
	return e, nil
}

func (p *Parser) sentenceBody() (ast.ExprID, error) {
	t := p.peek()
	question := p.terminator() == lexer.QuestionMark
	switch {
	case question && isWhWord(t.Kind):
		return p.whQuestion()
	case question && isAuxiliary(t.Kind):
		return p.yesNoQuestion()
	case t.Kind == lexer.If:
		return p.conditional()
	case t.Kind == lexer.Either:
		return p.eitherOr()
	case t.Kind == lexer.Neither:
		return p.neitherNor()
	case t.Kind == lexer.TemporalAdverb:
		p.advance()
		p.anchors = append(p.anchors, p.predSym(p.lemma(t)))
		p.match(lexer.Comma)
		return p.sentenceBody()
	case p.itIsModal():
		return p.intensional()
	case p.performative():
		return p.speechAct()
	case p.imperativeAhead():
		return p.imperative()
	}
	return p.compound()
}

// compound parses clauses joined by sentential connectives.
func (p *Parser) compound() (ast.ExprID, error) {
	left, err := p.clause()
	if err != nil {
		return ast.NoExpr, err
	}
	for {
		i := 0
		if p.check(lexer.Comma) {
			i = 1
		}
		t := p.peekAt(i)
		switch {
		case t.Kind == lexer.Because:
			p.pos += i + 1
			cause, err := p.clause()
			if err != nil {
				return ast.NoExpr, err
			}
			left = p.arena.NewExpr(ast.Causal{Cause: cause, Effect: left})
		case t.Kind == lexer.Unless:
			p.pos += i + 1
			cond, err := p.clause()
			if err != nil {
				return ast.NoExpr, err
			}
			left = p.arena.Binary(p.arena.Not(cond), ast.If, left)
		case (t.Kind == lexer.And || t.Kind == lexer.Or) && p.clauseAhead(i+1):
			p.pos += i + 1
			right, err := p.clause()
			if err != nil {
				return ast.NoExpr, err
			}
			op := ast.And
			if t.Kind == lexer.Or {
				op = ast.Or
			}
			left = p.arena.Binary(left, op, right)
		default:
			return left, nil
		}
	}
}

// clause parses a subject and its predicate.
func (p *Parser) clause() (ast.ExprID, error) {
	if p.check(lexer.There) && p.peekAt(1).Kind == lexer.Be {
		return p.thereIs()
	}
	subj, err := p.nounPhrase(asSubject)
	if err != nil {
		return ast.NoExpr, err
	}
	return p.predication(subj, aux{})
}

// predication parses the verb phrase(s) of subj and closes the subject's
// quantifier around them.
func (p *Parser) predication(subj *nounPhrase, a aux) (ast.ExprID, error) {
	p.subjects = append(p.subjects, subj.term)
	defer func() { p.subjects = p.subjects[:len(p.subjects)-1] }()
	res, err := p.verbPhrase(subj, a)
	if err != nil {
		return ast.NoExpr, err
	}
	body := res.body
	for (p.check(lexer.And) || p.check(lexer.Or)) && p.verbAhead(1) {
		op := ast.And
		if p.check(lexer.Or) {
			op = ast.Or
		}
		p.advance()
		more, err := p.verbPhrase(subj, aux{})
		if err != nil {
			return ast.NoExpr, err
		}
		body = p.arena.Binary(body, op, more.body)
		res.outer = append(res.outer, more.outer...)
	}
	return res.wrap(p, p.close(subj, body)), nil
}

// conditional parses "if A, (then) B". Indefinites of the antecedent which
// are picked up by pronouns in the consequent are bound universally.
func (p *Parser) conditional() (ast.ExprID, error) {
	p.advance() // if
	counterfactual := p.counterfactualAhead()
	mark := len(p.donkeys)
	p.drs.EnterBox(drs.ConditionalAntecedent)
	irrealis := p.irrealis
	p.irrealis = counterfactual
	ante, err := p.compound()
	p.irrealis = irrealis
	p.drs.ExitBox()
	if err != nil {
		return ast.NoExpr, err
	}
	p.match(lexer.Comma)
	p.match(lexer.Then)
	p.drs.EnterBox(drs.ConditionalConsequent)
	cons, err := p.compound()
	p.drs.ExitBox()
	if err != nil {
		return ast.NoExpr, err
	}
	if counterfactual {
		ante, hoisted := p.splitDonkeys(mark, p.stripMood(ante))
		cf := p.arena.NewExpr(ast.Counterfactual{
			Antecedent: ante,
			Consequent: p.stripMood(cons),
		})
		return p.hoist(hoisted, cf), nil
	}
	return p.bindDonkeys(mark, ante, ast.If, cons), nil
}

// counterfactualAhead looks for "had"/"were" in the antecedent and "would"
// in the consequent.
func (p *Parser) counterfactualAhead() bool {
	irrealis := false
	for i := 0; ; i++ {
		t := p.peekAt(i)
		switch {
		case t.Kind == lexer.EOF || t.Kind == lexer.Period || t.Kind == lexer.QuestionMark:
			return false
		case t.Kind == lexer.Have && t.Feat.Tense == lexer.PastTense:
			irrealis = true
		case t.Kind == lexer.Be && t.Feat.Tense == lexer.PastTense && t.Feat.Number == lexicon.Plural:
			irrealis = true
		case t.Kind == lexer.Would:
			return irrealis
		}
	}
}

// stripMood removes the perfect, tense and modal wrappers of counterfactual
// clauses.
func (p *Parser) stripMood(e ast.ExprID) ast.ExprID {
	for {
		switch n := p.arena.Expr(e).(type) {
		case ast.Aspectual:
			if n.Op != ast.Perfect {
				return e
			}
			e = n.Body
		case ast.Modal:
			e = n.Operand
		case ast.Temporal:
			e = n.Body
		default:
			return e
		}
	}
}

// bindDonkeys closes the indefinites deferred since mark and builds
// left op right. Indefinites picked up by a pronoun get universal force over
// the whole construction, the others are bound existentially within left.
func (p *Parser) bindDonkeys(mark int, left ast.ExprID, op ast.BinaryOperator, right ast.ExprID) ast.ExprID {
	left, hoisted := p.splitDonkeys(mark, left)
	return p.hoist(hoisted, p.arena.Binary(left, op, right))
}

func (p *Parser) splitDonkeys(mark int, left ast.ExprID) (ast.ExprID, []donkey) {
	ds := append([]donkey(nil), p.donkeys[mark:]...)
	p.donkeys = p.donkeys[:mark]
	var hoisted []donkey
	for _, d := range ds {
		if d.definite {
			hoisted = append(hoisted, d)
		} else if ref, ok := p.drs.Lookup(d.v); ok && ref.UsedByPronoun {
			hoisted = append(hoisted, d)
		} else {
			left = p.arena.Quant(ast.Existential, d.v, left, d.island)
		}
	}
	return left, hoisted
}

func (p *Parser) hoist(hoisted []donkey, e ast.ExprID) ast.ExprID {
	for i := len(hoisted) - 1; i >= 0; i-- {
		d := hoisted[i]
		if d.definite {
			e = p.arena.Quant(ast.Existential, d.v, p.arena.And(d.restr, e), d.island)
			continue
		}
		e = p.arena.Quant(ast.Universal, d.v, e, d.island)
	}
	if len(hoisted) > 0 {
		tracer().Debugf("%d antecedent referent(s) hoisted", len(hoisted))
	}
	return e
}

// eitherOr parses "either A or B", where A and B are clauses or subjects
// sharing a predicate.
func (p *Parser) eitherOr() (ast.ExprID, error) {
	p.advance() // either
	if p.subjectsCoordinated(lexer.Or) {
		bodies, err := p.coordinatedSubjects(lexer.Or)
		if err != nil {
			return ast.NoExpr, err
		}
		return p.arena.Binary(bodies[0], ast.Or, bodies[1]), nil
	}
	left, err := p.clause()
	if err != nil {
		return ast.NoExpr, err
	}
	p.match(lexer.Comma)
	if _, err := p.expect(lexer.Or); err != nil {
		return ast.NoExpr, err
	}
	right, err := p.clause()
	if err != nil {
		return ast.NoExpr, err
	}
	return p.arena.Binary(left, ast.Or, right), nil
}

// neitherNor parses "neither A nor B" as ¬A ∧ ¬B.
func (p *Parser) neitherNor() (ast.ExprID, error) {
	p.advance() // neither
	if p.subjectsCoordinated(lexer.Nor) {
		bodies, err := p.coordinatedSubjects(lexer.Nor)
		if err != nil {
			return ast.NoExpr, err
		}
		return p.arena.Binary(p.arena.Not(bodies[0]), ast.And, p.arena.Not(bodies[1])), nil
	}
	left, err := p.clause()
	if err != nil {
		return ast.NoExpr, err
	}
	p.match(lexer.Comma)
	if _, err := p.expect(lexer.Nor); err != nil {
		return ast.NoExpr, err
	}
	right, err := p.clause()
	if err != nil {
		return ast.NoExpr, err
	}
	return p.arena.Binary(p.arena.Not(left), ast.And, p.arena.Not(right)), nil
}

// subjectsCoordinated checks if conj is reached before any verbal material.
func (p *Parser) subjectsCoordinated(conj lexer.Kind) bool {
	for i := 0; ; i++ {
		t := p.peekAt(i)
		switch {
		case t.Kind == conj:
			return i > 0
		case t.Kind == lexer.EOF || t.Kind.IsPunctuation() || t.Kind == lexer.Verb:
			return false
		case isAuxiliary(t.Kind) || t.Kind == lexer.Not:
			return false
		}
	}
}

// coordinatedSubjects parses "NP conj NP VP". The verb phrase is parsed once
// for each subject.
func (p *Parser) coordinatedSubjects(conj lexer.Kind) ([]ast.ExprID, error) {
	first, err := p.nounPhrase(asSubject)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(conj); err != nil {
		return nil, err
	}
	second, err := p.nounPhrase(asSubject)
	if err != nil {
		return nil, err
	}
	start, end := p.pos, p.pos
	bodies := make([]ast.ExprID, 2)
	for i, subj := range []*nounPhrase{first, second} {
		p.pos = start
		if bodies[i], err = p.predication(subj, aux{}); err != nil {
			return nil, err
		}
		end = p.pos
	}
	p.pos = end
	return bodies, nil
}

// thereIs parses existential sentences: "There is a dog (in the garden)."
func (p *Parser) thereIs() (ast.ExprID, error) {
	p.advance() // there
	be := p.advance()
	neg := p.match(lexer.Not)
	np, err := p.nounPhrase(asObject)
	if err != nil {
		return ast.NoExpr, err
	}
	body := ast.NoExpr
	if p.check(lexer.Preposition) {
		prep := p.advance()
		loc, err := p.nounPhrase(asObject)
		if err != nil {
			return ast.NoExpr, err
		}
		body = p.close(loc, p.arena.Pred(p.predSym(p.lemma(prep)), np.term, loc.term))
	}
	e := p.close(np, body)
	if !e.Valid() {
		e = p.arena.Pred(p.sym("Exist"), np.term)
	}
	if neg {
		e = p.arena.Not(e)
	}
	if be.Feat.Tense == lexer.PastTense {
		e = p.arena.NewExpr(ast.Temporal{Op: ast.Past, Body: e})
	}
	return e, nil
}

// --- Token cursor ----------------------------------------------------------

func (p *Parser) peek() lexer.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) lexer.Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	if len(p.toks) == 0 {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) advance() lexer.Token {
	t := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(k lexer.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) match(k lexer.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// take consumes the next token if it has a reading of kind k, and returns
// that reading.
func (p *Parser) take(k lexer.Kind) (lexer.Token, bool) {
	if r, ok := p.peek().Reading(k); ok {
		p.advance()
		return r, true
	}
	return lexer.Token{}, false
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if t, ok := p.take(k); ok {
		return t, nil
	}
	return lexer.Token{}, p.unexpected(k.String())
}

// terminator returns the kind of the punctuation ending the current sentence.
func (p *Parser) terminator() lexer.Kind {
	for i := p.pos; i < len(p.toks); i++ {
		switch k := p.toks[i].Kind; k {
		case lexer.Period, lexer.QuestionMark, lexer.Exclamation, lexer.EOF, lexer.Hash:
			return k
		}
	}
	return lexer.EOF
}

// word returns the lower-case lexeme of the token n ahead.
func (p *Parser) word(n int) string {
	return strings.ToLower(p.in.Resolve(p.peekAt(n).Lexeme))
}

func (p *Parser) lemma(t lexer.Token) string {
	return p.in.Resolve(t.Lemma)
}

func (p *Parser) sym(s string) intern.Symbol {
	return p.in.Intern(s)
}

// predSym returns the predicate symbol for a lemma.
func (p *Parser) predSym(lemma string) intern.Symbol {
	return p.in.Intern(capitalize(lemma))
}

func (p *Parser) fresh() intern.Symbol {
	return p.in.Intern(p.drs.FreshVar())
}

// --- Lookahead -------------------------------------------------------------

func isWhWord(k lexer.Kind) bool {
	switch k {
	case lexer.Who, lexer.What, lexer.Where, lexer.When, lexer.Why, lexer.Which:
		return true
	}
	return false
}

func isAuxiliary(k lexer.Kind) bool {
	switch k {
	case lexer.Be, lexer.Do, lexer.Have:
		return true
	}
	return k.IsModal()
}

// verbAhead checks if the token n ahead can start a verb phrase.
func (p *Parser) verbAhead(n int) bool {
	t := p.peekAt(n)
	if isAuxiliary(t.Kind) || t.Kind == lexer.Not {
		return true
	}
	return t.Is(lexer.Verb)
}

// clauseAhead checks if the token n ahead can start a clause.
func (p *Parser) clauseAhead(n int) bool {
	t := p.peekAt(n)
	switch {
	case t.Kind == lexer.There:
		return true
	case t.Kind == lexer.Pronoun && t.Feat.Case == lexicon.Subject:
		return true
	case t.Kind == lexer.ProperName, t.Kind == lexer.Article, t.Kind.IsQuantifier():
		return true
	case t.Kind == lexer.Ambiguous && t.Is(lexer.Noun) && p.verbAhead(n+1):
		return true
	}
	return t.Kind == lexer.Noun
}

// nounPhraseAhead checks if the token n ahead can start a noun phrase.
func (p *Parser) nounPhraseAhead(n int) bool {
	t := p.peekAt(n)
	switch t.Kind {
	case lexer.Article, lexer.ProperName, lexer.Pronoun, lexer.Reflexive, lexer.Number,
		lexer.String, lexer.Only, lexer.Even, lexer.Just:
		return true
	case lexer.Preposition:
		return p.boundAhead(n)
	}
	if t.Kind.IsQuantifier() {
		return true
	}
	return p.nominalAhead(n)
}

// nominalAhead checks if the token n ahead can start a nominal.
func (p *Parser) nominalAhead(n int) bool {
	t := p.peekAt(n)
	if t.Is(lexer.Noun) || p.isTypeName(t) {
		return true
	}
	return t.Is(lexer.Adjective) && (p.peekAt(n+1).Is(lexer.Noun) || p.peekAt(n+1).Is(lexer.Adjective))
}

// boundAhead checks for "at least"/"at most".
func (p *Parser) boundAhead(n int) bool {
	next := p.peekAt(n + 1).Kind
	return p.word(n) == "at" && (next == lexer.Least || next == lexer.Most)
}

func (p *Parser) isTypeName(t lexer.Token) bool {
	return p.reg.IsTypeName(p.in.Resolve(t.Lexeme))
}

// capitalize upper-cases the first letter of every hyphen-separated part.
func capitalize(s string) string {
	parts := strings.Split(s, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		r, n := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToUpper(r)) + part[n:]
	}
	return strings.Join(parts, "-")
}
