package lambda

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
)

// eventRoles are the roles assigned to predicate arguments, by position.
var eventRoles = []string{"Agent", "Theme", "Goal"}

// ToEventSemantics turns a predicate into a Davidsonian event description
// with explicit role predicates:
//
//	Give(John, Book, Mary) ⇒ ∃e(Give(e) ∧ Agent(e, John) ∧ Theme(e, Book) ∧ Goal(e, Mary))
//
// Arguments beyond the third are dropped. Other expressions are returned
// unchanged.
func ToEventSemantics(id ast.ExprID, arena *ast.Arena, in *intern.Interner) ast.ExprID {
	p, ok := arena.Expr(id).(ast.Predicate)
	if !ok {
		return id
	}
	e := in.Intern("e")
	body := arena.NewExpr(ast.Predicate{Name: p.Name, Args: []ast.TermID{arena.Var(e)}, World: p.World})
	for i, arg := range p.Args {
		if i >= len(eventRoles) {
			tracer().Infof("dropping argument %d of %s", i+1, in.Resolve(p.Name))
			break
		}
		role := ast.Predicate{
			Name:  in.Intern(eventRoles[i]),
			Args:  []ast.TermID{arena.Var(e), arg},
			World: p.World,
		}
		body = arena.And(body, arena.NewExpr(role))
	}
	return arena.Quant(ast.Existential, e, body, 0)
}

// ApplyAdverb adds an adverb as a predicate of the event variable e:
//
//	∃e(Run(e) ∧ Agent(e, John)) + quickly ⇒ ∃e(Run(e) ∧ Agent(e, John) ∧ Quickly(e))
//
// Neo-Davidsonian events receive the adverb as a modifier. Other expressions
// are returned unchanged.
func ApplyAdverb(id ast.ExprID, adverb intern.Symbol, arena *ast.Arena, in *intern.Interner) ast.ExprID {
	mod := in.Intern(capitalize(in.Resolve(adverb)))
	switch n := arena.Expr(id).(type) {
	case ast.Quantifier:
		if n.Var != in.Intern("e") {
			return id
		}
		pred := arena.Pred(mod, arena.Var(n.Var))
		n.Body = arena.And(n.Body, pred)
		return arena.NewExpr(n)
	case ast.NeoEvent:
		n.Modifiers = append(append([]intern.Symbol(nil), n.Modifiers...), mod)
		return arena.NewExpr(n)
	}
	return id
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
