package pragmatics

import (
	"strings"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
	"github.com/npillmayer/logos/semantics"
)

// addressee is the constant the parser uses for "you".
const addressee = "you"

var rules = []semantics.RewriteRule{
	{Name: "indirect-request", Pattern: yesNoQuestion, Rewrite: indirectRequest},
}

// Apply converts indirect requests into imperatives:
//
//	?◇Pass(e, you, salt) ⇒ !Pass(e, you, salt)
//
// A request is a yes/no question whose body is a modal of possibility
// (ability or permission) with the addressee as agent. Modals already lowered
// to quantification over worlds are recognized as well. Everything else is
// returned unchanged.
func Apply(id ast.ExprID, arena *ast.Arena, in *intern.Interner) ast.ExprID {
	env := &semantics.Environment{Arena: arena, In: in}
	return semantics.Rewrite(id, rules, env)
}

func yesNoQuestion(e ast.Expr, _ *semantics.Environment) bool {
	_, ok := e.(ast.YesNoQuestion)
	return ok
}

func indirectRequest(redex ast.ExprID, env *semantics.Environment) ast.ExprID {
	q := env.Arena.Expr(redex).(ast.YesNoQuestion)
	action, ok := possibility(q.Body, env)
	if !ok || !addressedAgent(action, env) {
		return redex
	}
	tracer().Debugf("yes/no question about addressee's ability is a request")
	return env.Arena.NewExpr(ast.Imperative{Action: action})
}

// possibility returns the operand of a modal of possibility.
func possibility(id ast.ExprID, env *semantics.Environment) (ast.ExprID, bool) {
	switch n := env.Arena.Expr(id).(type) {
	case ast.Modal:
		if n.Vector.Force <= 0.5 {
			return n.Operand, true
		}
	case ast.Quantifier: // ∃w(Accessible_D(w0, w) ∧ P)
		if n.Kind != ast.Existential {
			return ast.NoExpr, false
		}
		b, ok := env.Arena.Expr(n.Body).(ast.BinaryOp)
		if !ok || b.Op != ast.And {
			return ast.NoExpr, false
		}
		if acc, ok := env.Arena.Expr(b.Left).(ast.Predicate); ok &&
			strings.HasPrefix(env.Name(acc.Name), "Accessible_") {
			return b.Right, true
		}
	}
	return ast.NoExpr, false
}

// addressedAgent checks if the addressee is the agent of the action's
// outermost event.
func addressedAgent(action ast.ExprID, env *semantics.Environment) bool {
	found, result := false, false
	env.Arena.Inspect(action, func(_ ast.ExprID, e ast.Expr) bool {
		if found {
			return false
		}
		ev, ok := e.(ast.NeoEvent)
		if !ok {
			return true
		}
		found = true
		if agent, ok := ev.RoleTerm(ast.Agent); ok {
			if c, ok := env.Arena.Term(agent).(ast.Constant); ok {
				result = strings.EqualFold(env.Name(c.Name), addressee)
			}
		}
		return false
	})
	return result
}
