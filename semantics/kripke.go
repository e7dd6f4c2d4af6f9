package semantics

import (
	"fmt"

	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/intern"
)

// kripke is the context of Kripke lowering: the world the current sub-tree
// is evaluated at, and a counter for fresh world variables.
type kripke struct {
	arena   *ast.Arena
	in      *intern.Interner
	current intern.Symbol
	worlds  int
}

// ApplyKripkeLowering replaces modal operators by quantification over
// accessible worlds. Evaluation starts at world w0.
//
//	□P ⇒ ∀w1(Accessible_D(w0, w1) → P@w1)
//	◇P ⇒ ∃w1(Accessible_D(w0, w1) ∧ P@w1)
//
// D is the modal's domain (Alethic, Deontic). Predicates and events which
// are not yet relative to a world are evaluated at the current world.
func ApplyKripkeLowering(id ast.ExprID, arena *ast.Arena, in *intern.Interner) ast.ExprID {
	k := &kripke{arena: arena, in: in, current: in.Intern("w0")}
	r := k.lower(id)
	tracer().Debugf("Kripke lowering introduced %d worlds", k.worlds)
	return r
}

func (k *kripke) fresh() intern.Symbol {
	k.worlds++
	return k.in.Intern(fmt.Sprintf("w%d", k.worlds))
}

func (k *kripke) lower(id ast.ExprID) ast.ExprID {
	if !id.Valid() {
		return id
	}
	switch n := k.arena.Expr(id).(type) {
	case ast.Modal:
		return k.modal(n)
	case ast.Predicate:
		if n.World.IsEmpty() {
			n.World = k.current
			return k.arena.NewExpr(n)
		}
		return id
	case ast.NeoEvent:
		if n.World.IsEmpty() {
			n.World = k.current
			return k.arena.NewExpr(n)
		}
		return id
	case ast.SpeechAct:
		return id // performatives are evaluated at the utterance world
	}
	return k.arena.MapChildren(id, k.lower)
}

func (k *kripke) modal(m ast.Modal) ast.ExprID {
	source := k.current
	target := k.fresh()
	k.current = target
	operand := k.lower(m.Operand)
	k.current = source
	access := k.arena.Pred(k.in.Intern("Accessible_"+m.Vector.Domain.String()),
		k.arena.Var(source), k.arena.Var(target))
	if m.Vector.IsNecessity() {
		body := k.arena.Binary(access, ast.If, operand)
		return k.arena.Quant(ast.Universal, target, body, 0)
	}
	body := k.arena.Binary(access, ast.And, operand)
	return k.arena.Quant(ast.Existential, target, body, 0)
}
