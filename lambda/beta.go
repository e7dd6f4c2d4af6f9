package lambda

import (
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
)

// LiftProperName lifts an individual to a generalized quantifier:
//
//	John ⇒ λP.P(John)
func LiftProperName(name intern.Symbol, arena *ast.Arena, in *intern.Interner) ast.ExprID {
	p := in.Intern("P")
	app := arena.NewExpr(ast.App{
		Fn:  arena.NewExpr(ast.Atom{Name: p}),
		Arg: arena.NewExpr(ast.Atom{Name: name}),
	})
	return arena.NewExpr(ast.Lambda{Var: p, Body: app})
}

// LiftQuantifier builds the generalized quantifier of a determiner and a
// restricting noun:
//
//	every dog ⇒ λQ.∀x(Dog(x) → Q(x))
//	a dog     ⇒ λQ.∃x(Dog(x) ∧ Q(x))
func LiftQuantifier(kind ast.QuantifierKind, restrictor intern.Symbol, arena *ast.Arena,
	in *intern.Interner) ast.ExprID {
	//
	x, q := in.Intern("x"), in.Intern("Q")
	restr := arena.Pred(restrictor, arena.Var(x))
	qx := arena.NewExpr(ast.App{
		Fn:  arena.NewExpr(ast.Atom{Name: q}),
		Arg: arena.NewExpr(ast.Atom{Name: x}),
	})
	op := ast.And
	if kind == ast.Universal {
		op = ast.If
	}
	body := arena.Quant(kind, x, arena.Binary(restr, op, qx), 0)
	return arena.NewExpr(ast.Lambda{Var: q, Body: body})
}

// BetaReduce reduces every redex (λx.M)N of the tree rooted at id, including
// redexes created by a reduction, i.e. the result is in β-normal form.
// Atoms naming a variable bound at the redex are substituted as variables,
// all other atoms as constants.
func BetaReduce(id ast.ExprID, arena *ast.Arena) ast.ExprID {
	r := reducer{arena: arena, bound: map[intern.Symbol]int{}}
	return r.reduce(id)
}

type reducer struct {
	arena *ast.Arena
	bound map[intern.Symbol]int // variables bound above the current node
}

func (r reducer) reduce(id ast.ExprID) ast.ExprID {
	if !id.Valid() {
		return id
	}
	switch n := r.arena.Expr(id).(type) {
	case ast.App:
		fn, arg := r.reduce(n.Fn), r.reduce(n.Arg)
		if l, ok := r.arena.Expr(fn).(ast.Lambda); ok {
			s := substituter{arena: r.arena, v: l.Var, expr: arg, term: r.termFor(arg)}
			return r.reduce(s.substitute(l.Body))
		}
		if fn == n.Fn && arg == n.Arg {
			return id
		}
		return r.arena.NewExpr(ast.App{Fn: fn, Arg: arg})
	case ast.Lambda:
		return r.under(n.Var, id)
	case ast.Quantifier:
		return r.under(n.Var, id)
	}
	return r.arena.MapChildren(id, r.reduce)
}

func (r reducer) under(v intern.Symbol, id ast.ExprID) ast.ExprID {
	r.bound[v]++
	defer func() { r.bound[v]-- }()
	return r.arena.MapChildren(id, r.reduce)
}

func (r reducer) termFor(arg ast.ExprID) ast.TermID {
	if atom, ok := r.arena.Expr(arg).(ast.Atom); ok && r.bound[atom.Name] > 0 {
		return r.arena.Var(atom.Name)
	}
	return termFor(r.arena, arg)
}

// Substitute replaces the free occurrences of v in the tree rooted at id.
// Atoms v are replaced by replacement; variables v in argument positions are
// replaced by a constant if replacement is an atom or a predicate (naming
// the constant), and left alone otherwise.
func Substitute(id ast.ExprID, v intern.Symbol, replacement ast.ExprID, arena *ast.Arena) ast.ExprID {
	s := substituter{arena: arena, v: v, expr: replacement, term: termFor(arena, replacement)}
	return s.substitute(id)
}

// SubstituteRespectingOpacity is Substitute, but leaves the content of
// intensional contexts untouched: in "John believes that Clark flies",
// substituting Superman for Clark must not change the belief.
func SubstituteRespectingOpacity(id ast.ExprID, v intern.Symbol, replacement ast.ExprID,
	arena *ast.Arena) ast.ExprID {
	//
	s := substituter{arena: arena, v: v, expr: replacement, term: termFor(arena, replacement),
		opaque: true}
	return s.substitute(id)
}

func termFor(a *ast.Arena, e ast.ExprID) ast.TermID {
	switch n := a.Expr(e).(type) {
	case ast.Atom:
		return a.Const(n.Name)
	case ast.Predicate:
		return a.Const(n.Name)
	}
	return ast.NoTerm
}

type substituter struct {
	arena  *ast.Arena
	v      intern.Symbol
	expr   ast.ExprID
	term   ast.TermID // NoTerm if expr has no term rendition
	opaque bool
}

func (s substituter) substitute(id ast.ExprID) ast.ExprID {
	a := s.arena
	switch n := a.Expr(id).(type) {
	case ast.Atom:
		if n.Name == s.v {
			return s.expr
		}
		return id
	case ast.Lambda:
		if n.Var == s.v {
			return id
		}
	case ast.Quantifier:
		if n.Var == s.v {
			return id
		}
	case ast.Intensional:
		if s.opaque {
			return id
		}
	case ast.Predicate:
		args, changed := s.terms(n.Args)
		if !changed {
			return id
		}
		n.Args = args
		return a.NewExpr(n)
	case ast.NeoEvent:
		roles := make([]ast.Role, len(n.Roles))
		changed := false
		for i, role := range n.Roles {
			roles[i] = role
			if t := s.substituteTerm(role.Term); t != role.Term {
				roles[i].Term, changed = t, true
			}
		}
		if !changed {
			return id
		}
		n.Roles = roles
		return a.NewExpr(n)
	case ast.Identity:
		l, r := s.substituteTerm(n.Left), s.substituteTerm(n.Right)
		if l == n.Left && r == n.Right {
			return id
		}
		return a.NewExpr(ast.Identity{Left: l, Right: r})
	}
	return a.MapChildren(id, s.substitute)
}

func (s substituter) terms(ts []ast.TermID) ([]ast.TermID, bool) {
	out := make([]ast.TermID, len(ts))
	changed := false
	for i, t := range ts {
		out[i] = s.substituteTerm(t)
		changed = changed || out[i] != t
	}
	return out, changed
}

func (s substituter) substituteTerm(t ast.TermID) ast.TermID {
	if !t.Valid() || !s.term.Valid() {
		return t
	}
	switch n := s.arena.Term(t).(type) {
	case ast.Variable:
		if n.Name == s.v {
			return s.term
		}
	case ast.Function:
		if args, changed := s.terms(n.Args); changed {
			return s.arena.NewTerm(ast.Function{Name: n.Name, Args: args})
		}
	case ast.Group:
		if members, changed := s.terms(n.Members); changed {
			return s.arena.NewTerm(ast.Group{Members: members})
		}
	}
	return t
}
