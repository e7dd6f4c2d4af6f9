package fol

import (
	"errors"
	"strings"

	"github.com/npillmayer/logos"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/parser"
	"github.com/npillmayer/logos/proof"
)

// CompileTheorem proves the first theorem block of text:
//
//	## Theorem: Socrates_Mortality
//	Given: All men are mortal.
//	Given: Socrates is a man.
//	Prove: Socrates is mortal.
//	Proof: Auto.
//
// On success, the result names the theorem and shows the derivation. A
// missing theorem block or a failed proof is reported as a Custom
// *parser.ParseError.
func CompileTheorem(text string) (string, error) {
	in := intern.New()
	fe := analyze(text, in, DefaultLexicon())
	arena := ast.NewArena()
	stmts, _, err := fe.parser(arena, parser.NewConfig()).ParseProgram(fe.tokens, nil)
	if err != nil {
		return "", err
	}
	var th *parser.Theorem
	for _, s := range stmts {
		if t, ok := s.(parser.Theorem); ok {
			th = &t
			break
		}
	}
	if th == nil {
		return "", parser.NewCustomError(logos.Span{}, "No theorem block found in input")
	}
	if !th.Goal.Valid() {
		return "", parser.NewCustomError(th.Span, "Theorem '%s' has no goal", th.Name)
	}
	engine := proof.NewEngine()
	for _, p := range th.Premises {
		engine.AddAxiom(proof.Convert(p, arena, in))
	}
	goal := proof.Convert(th.Goal, arena, in)
	d, err := engine.Prove(goal)
	if err != nil {
		tracer().Infof("theorem %s: %v", th.Name, err)
		return "", parser.NewCustomError(th.Span, "Theorem '%s' failed.\n  Goal: %s\n  Premises: %d\n  Error: %s",
			th.Name, goal, len(th.Premises), reason(err))
	}
	return "Theorem '" + th.Name + "' Proved!\n" + d.String(), nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, proof.ErrUnsupported):
		return "goal contains constructs without a classical reading"
	case errors.Is(err, proof.ErrNotProved):
		return "no derivation found"
	}
	return strings.TrimSpace(err.Error())
}
