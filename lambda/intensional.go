package lambda

import (
	"fmt"
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/lexicon"
)

// EnumerateIntensionalReadings returns the de re and de dicto readings of
// a formula containing an opaque verb, using the default lexicon. See
// IntensionalReadings.
func EnumerateIntensionalReadings(expr ast.ExprID, arena *ast.Arena, in *intern.Interner) []ast.ExprID {
	return IntensionalReadings(expr, arena, in, lexicon.Default())
}

// IntensionalReadings returns the readings of expr with respect to the
// first opaque verb found, de re first:
//
//	John seeks a unicorn.
//	de re:    ∃x(Unicorn(x) ∧ Seek(e, John, x))
//	de dicto: Seek(e, John, ^Unicorn)
//
// Formulas without an opaque verb have a single reading, expr. The result
// never holds more than two readings.
func IntensionalReadings(expr ast.ExprID, arena *ast.Arena, in *intern.Interner,
	lex *lexicon.Lexicon) []ast.ExprID {
	//
	o := opacity{arena: arena, in: in, lex: lex}
	if deRe, ok := rewriteFirst(arena, expr, o.deReFromDeDicto(expr)); ok {
		return []ast.ExprID{deRe, expr}
	}
	if deDicto, ok := rewriteFirst(arena, expr, o.deDictoFromDeRe); ok {
		return []ast.ExprID{expr, deDicto}
	}
	return []ast.ExprID{expr}
}

type opacity struct {
	arena *ast.Arena
	in    *intern.Interner
	lex   *lexicon.Lexicon
}

func (o opacity) opaque(verb intern.Symbol) bool {
	v, ok := o.lex.VerbLemma(strings.ToLower(o.in.Resolve(verb)))
	return ok && v.Has("opaque")
}

// deReFromDeDicto returns a rewriter which exports the intension in the
// theme of an opaque event to an existential quantifier.
func (o opacity) deReFromDeDicto(root ast.ExprID) func(ast.ExprID) (ast.ExprID, bool) {
	return func(id ast.ExprID) (ast.ExprID, bool) {
		ev, ok := o.arena.Expr(id).(ast.NeoEvent)
		if !ok || !o.opaque(ev.Verb) {
			return id, false
		}
		for i, role := range ev.Roles {
			if role.Role != ast.Theme {
				continue
			}
			concept, ok := o.arena.Term(role.Term).(ast.Intension)
			if !ok {
				continue
			}
			x := freshVariable(o.arena, o.in, root)
			xterm := o.arena.Var(x)
			roles := append([]ast.Role(nil), ev.Roles...)
			roles[i].Term = xterm
			ev.Roles = roles
			restr := o.arena.NewExpr(ast.Predicate{Name: concept.Predicate, Args: []ast.TermID{xterm},
				World: ev.World})
			body := o.arena.And(restr, o.arena.NewExpr(ev))
			return o.arena.Quant(ast.Existential, x, body, 0), true
		}
		return id, false
	}
}

// deDictoFromDeRe matches ∃x(R(x) ∧ …Verb(…, Theme: x)…) for an opaque
// verb and replaces x by the intension ^R, dropping the quantifier.
func (o opacity) deDictoFromDeRe(id ast.ExprID) (ast.ExprID, bool) {
	q, ok := o.arena.Expr(id).(ast.Quantifier)
	if !ok || q.Kind != ast.Existential {
		return id, false
	}
	b, ok := o.arena.Expr(q.Body).(ast.BinaryOp)
	if !ok || b.Op != ast.And {
		return id, false
	}
	restr, ok := o.arena.Expr(b.Left).(ast.Predicate)
	if !ok || len(restr.Args) != 1 || !o.isVar(restr.Args[0], q.Var) {
		return id, false
	}
	if !o.opaqueTheme(b.Right, q.Var) {
		return id, false
	}
	concept := o.arena.NewTerm(ast.Intension{Predicate: restr.Name})
	return o.replaceTheme(b.Right, q.Var, concept), true
}

func (o opacity) isVar(t ast.TermID, v intern.Symbol) bool {
	variable, ok := o.arena.Term(t).(ast.Variable)
	return ok && variable.Name == v
}

// opaqueTheme checks if v is the theme of an opaque verb within id.
func (o opacity) opaqueTheme(id ast.ExprID, v intern.Symbol) bool {
	found := false
	o.arena.Inspect(id, func(_ ast.ExprID, e ast.Expr) bool {
		switch n := e.(type) {
		case ast.NeoEvent:
			if t, ok := n.RoleTerm(ast.Theme); ok && o.opaque(n.Verb) && o.isVar(t, v) {
				found = true
			}
		case ast.Predicate:
			if len(n.Args) >= 2 && o.opaque(n.Name) && o.isVar(n.Args[1], v) {
				found = true
			}
		}
		return !found
	})
	return found
}

func (o opacity) replaceTheme(id ast.ExprID, v intern.Symbol, concept ast.TermID) ast.ExprID {
	switch n := o.arena.Expr(id).(type) {
	case ast.NeoEvent:
		roles := make([]ast.Role, len(n.Roles))
		for i, role := range n.Roles {
			roles[i] = role
			if role.Role == ast.Theme && o.isVar(role.Term, v) {
				roles[i].Term = concept
			}
		}
		n.Roles = roles
		return o.arena.NewExpr(n)
	case ast.Predicate:
		args := make([]ast.TermID, len(n.Args))
		for i, arg := range n.Args {
			args[i] = arg
			if o.isVar(arg, v) {
				args[i] = concept
			}
		}
		n.Args = args
		return o.arena.NewExpr(n)
	}
	return o.arena.MapChildren(id, func(c ast.ExprID) ast.ExprID {
		return o.replaceTheme(c, v, concept)
	})
}

// --- Helpers ---------------------------------------------------------------

// rewriteFirst visits the tree rooted at id in pre-order and replaces the
// first node for which f succeeds.
func rewriteFirst(a *ast.Arena, id ast.ExprID, f func(ast.ExprID) (ast.ExprID, bool)) (ast.ExprID, bool) {
	done := false
	var walk func(ast.ExprID) ast.ExprID
	walk = func(n ast.ExprID) ast.ExprID {
		if done {
			return n
		}
		if r, ok := f(n); ok {
			done = true
			return r
		}
		return a.MapChildren(n, walk)
	}
	r := walk(id)
	return r, done
}

// freshVariable returns a variable name not bound anywhere in root.
func freshVariable(a *ast.Arena, in *intern.Interner, root ast.ExprID) intern.Symbol {
	used := map[intern.Symbol]bool{}
	a.Inspect(root, func(_ ast.ExprID, e ast.Expr) bool {
		switch n := e.(type) {
		case ast.Quantifier:
			used[n.Var] = true
		case ast.Lambda:
			used[n.Var] = true
		case ast.Question:
			used[n.WhVar] = true
		case ast.GroupQuantifier:
			used[n.GroupVar], used[n.MemberVar] = true, true
		case ast.NeoEvent:
			for _, r := range n.Roles {
				if v, ok := a.Term(r.Term).(ast.Variable); ok {
					used[v.Name] = true
				}
			}
		case ast.Predicate:
			for _, t := range n.Args {
				if v, ok := a.Term(t).(ast.Variable); ok {
					used[v.Name] = true
				}
			}
		}
		return true
	})
	for _, name := range []string{"x", "y", "z", "w", "v", "u"} {
		if s := in.Intern(name); !used[s] {
			return s
		}
	}
	for i := 1; ; i++ {
		if s := in.Intern(fmt.Sprintf("x%d", i)); !used[s] {
			return s
		}
	}
}
