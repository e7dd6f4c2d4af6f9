package parser

import (
	"strings"

	"github.com/npillmayer/logos"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/drs"
	"github.com/npillmayer/logos/lexer"
)

// Statement is a top-level unit of a LOGOS program.
type Statement interface {
	StatementSpan() logos.Span
}

// Sentence is a plain declarative statement.
type Sentence struct {
	Expr ast.ExprID
	Span logos.Span
}

// StatementSpan returns the input range of the sentence.
func (s Sentence) StatementSpan() logos.Span { return s.Span }

// Theorem is a "## Theorem" block: premises introduced with "Given:" and a
// goal introduced with "Prove:". The proof strategy ("Proof: Auto.") is not
// recorded, as only automatic proofs are supported.
type Theorem struct {
	Name     string
	Premises []ast.ExprID
	Goal     ast.ExprID
	Span     logos.Span
}

// StatementSpan returns the input range of the theorem block.
func (t Theorem) StatementSpan() logos.Span { return t.Span }

// ParseProgram parses a sequence of blocks and sentences. Theorem blocks are
// turned into Theorem statements, declaration blocks are skipped and all
// other sentences become Sentence statements. As with Parse, the DRS is
// handed back in any case.
func (p *Parser) ParseProgram(tokens []lexer.Token, d *drs.Drs) ([]Statement, *drs.Drs, error) {
	p.start(tokens, d)
	var stmts []Statement
	for !p.check(lexer.EOF) {
		if p.check(lexer.Hash) {
			if p.word(1) == "theorem" {
				th, err := p.theorem()
				if err != nil {
					return stmts, p.release(), err
				}
				stmts = append(stmts, th)
				continue
			}
			p.skipBlock()
			continue
		}
		from := p.peek().Span
		s, err := p.sentence()
		if err != nil {
			return stmts, p.release(), err
		}
		stmts = append(stmts, Sentence{Expr: s, Span: from.Extend(p.toks[p.pos-1].Span)})
	}
	tracer().Debugf("parsed program with %d statements", len(stmts))
	return stmts, p.release(), nil
}

// theorem parses
//
//	## Theorem: Name
//	Given: premise.
//	Prove: goal.
//	Proof: Auto.
func (p *Parser) theorem() (Theorem, error) {
	from := p.advance().Span // ##
	p.advance()              // Theorem
	th := Theorem{Goal: ast.NoExpr}
	if p.match(lexer.Colon) {
		th.Name = p.theoremName()
	}
	for !p.check(lexer.EOF) && !p.check(lexer.Hash) {
		kw := p.word(0)
		if p.peekAt(1).Kind != lexer.Colon {
			return th, p.unexpected("Given, Prove or Proof")
		}
		switch kw {
		case "given", "prove":
			p.pos += 2
			s, err := p.sentence()
			if err != nil {
				return th, err
			}
			if kw == "given" {
				th.Premises = append(th.Premises, s)
			} else {
				th.Goal = s
			}
		case "proof":
			p.pos += 2
			for !p.check(lexer.EOF) && !p.check(lexer.Hash) && !p.match(lexer.Period) {
				p.advance()
			}
		default:
			return th, p.unexpected("Given, Prove or Proof")
		}
	}
	if !th.Goal.Valid() {
		return th, NewCustomError(from, "theorem %q has no goal", th.Name)
	}
	th.Span = from.Extend(p.toks[p.pos-1].Span)
	tracer().Debugf("theorem %q: %d premises", th.Name, len(th.Premises))
	return th, nil
}

// theoremName collects the words up to the first block keyword.
func (p *Parser) theoremName() string {
	var parts []string
	for !p.check(lexer.EOF) && !p.check(lexer.Hash) && !p.check(lexer.Period) {
		if p.peekAt(1).Kind == lexer.Colon {
			switch p.word(0) {
			case "given", "prove", "proof":
				return strings.Join(parts, " ")
			}
		}
		parts = append(parts, p.in.Resolve(p.advance().Lexeme))
	}
	p.match(lexer.Period)
	return strings.Join(parts, " ")
}
