package proof

import (
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"golang.org/x/exp/slices"
)

// Convert translates an expression of arena into the proof language.
//
// Predicate names are lower-cased, so that a noun and an adjective of the
// same word ("Mortal", "mortal") are the same predicate. Events become
// predicates over their participants, ordered by thematic role:
//
//	∃e(Love(e) ∧ Agent(e, John) ∧ Theme(e, Mary)) ⇒ love(John, Mary)
//
// Modal, temporal, aspectual and voice operators are stripped and
// counterfactuals become material implications. Constructs without a
// classical reading are marked Unsupported.
func Convert(id ast.ExprID, arena *ast.Arena, in *intern.Interner) *Expr {
	c := converter{arena: arena, in: in}
	return c.expr(id)
}

// ConvertTerm translates a term of arena into the proof language.
func ConvertTerm(id ast.TermID, arena *ast.Arena, in *intern.Interner) Term {
	c := converter{arena: arena, in: in}
	return c.term(id)
}

type converter struct {
	arena *ast.Arena
	in    *intern.Interner
}

func (c converter) name(sym intern.Symbol) string {
	return strings.ToLower(c.in.Resolve(sym))
}

func (c converter) expr(id ast.ExprID) *Expr {
	switch n := c.arena.Expr(id).(type) {
	case ast.Predicate:
		return Pred(c.name(n.Name), c.terms(n.Args)...)
	case ast.Identity:
		return Ident(c.term(n.Left), c.term(n.Right))
	case ast.Atom:
		return Atom(c.name(n.Name))
	case ast.Quantifier:
		v := c.in.Resolve(n.Var)
		switch n.Kind {
		case ast.Universal, ast.Generic:
			return ForAll(v, c.expr(n.Body))
		case ast.Existential, ast.Cardinal, ast.AtLeast:
			return Exists(v, c.expr(n.Body))
		}
		return Unsupported(n.Kind.String() + " quantifier")
	case ast.BinaryOp:
		l, r := c.expr(n.Left), c.expr(n.Right)
		switch n.Op {
		case ast.And:
			return And(l, r)
		case ast.Or:
			return Or(l, r)
		case ast.If:
			return Implies(l, r)
		}
		return Iff(l, r)
	case ast.UnaryOp:
		return Not(c.expr(n.Operand))
	case ast.Modal:
		return c.expr(n.Operand)
	case ast.Temporal:
		return c.expr(n.Body)
	case ast.Aspectual:
		return c.expr(n.Body)
	case ast.Voice:
		return c.expr(n.Body)
	case ast.Distributive:
		return c.expr(n.Predicate)
	case ast.Counterfactual:
		return Implies(c.expr(n.Antecedent), c.expr(n.Consequent))
	case ast.Presupposition:
		return And(c.expr(n.Assertion), c.expr(n.Presupposition))
	case ast.NeoEvent:
		return c.event(n)
	}
	kind := c.arena.Expr(id).NodeKind().String()
	tracer().Debugf("no classical reading for %s", kind)
	return Unsupported(kind)
}

// event flattens an event to a predicate over its participants. Roles
// without participant order (time, manner) are dropped.
func (c converter) event(n ast.NeoEvent) *Expr {
	roles := slices.Clone(n.Roles)
	slices.SortStableFunc(roles, func(a, b ast.Role) bool { return a.Role < b.Role })
	var args []Term
	for _, r := range roles {
		if r.Role == ast.Time || r.Role == ast.Manner {
			continue
		}
		args = append(args, c.term(r.Term))
	}
	return Pred(c.name(n.Verb), args...)
}

func (c converter) terms(ids []ast.TermID) []Term {
	ts := make([]Term, len(ids))
	for i, id := range ids {
		ts[i] = c.term(id)
	}
	return ts
}

func (c converter) term(id ast.TermID) Term {
	switch n := c.arena.Term(id).(type) {
	case ast.Constant:
		return Const(c.in.Resolve(n.Name))
	case ast.Variable:
		return Var(c.in.Resolve(n.Name))
	case ast.Function:
		return Fn(c.name(n.Name), c.terms(n.Args)...)
	case ast.Group:
		return Term{Kind: GroupTerm, Args: c.terms(n.Members)}
	case ast.Possessed:
		return Fn("poss", c.term(n.Possessor), Const(c.in.Resolve(n.Possessed)))
	case ast.Sigma:
		return Const("σ" + c.in.Resolve(n.Predicate))
	case ast.Intension:
		return Const("^" + c.in.Resolve(n.Predicate))
	case ast.Value:
		return Const(n.Raw)
	}
	return Const("prop")
}
